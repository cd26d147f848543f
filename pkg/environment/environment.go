// Copyright 2025 The VITA Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package environment

import (
	"sort"
	"strings"

	"github.com/vitabench/vita/pkg/llms"
	"github.com/vitabench/vita/pkg/utils"
)

// Environment binds a domain's policy, database and toolkit into the
// surface the simulation loop talks to.
type Environment struct {
	DomainName string
	Policy     string

	toolkit      *Toolkit
	descriptions DescriptionTable
}

// New assembles an environment. The domain's tool documentation is merged
// on top of the shared world tools'.
func New(domainName, policy string, toolkit *Toolkit, descriptions DescriptionTable) *Environment {
	return &Environment{
		DomainName:   domainName,
		Policy:       policy,
		toolkit:      toolkit,
		descriptions: BaseDescriptions.Merge(descriptions),
	}
}

// Toolkit exposes the underlying tool registry.
func (e *Environment) Toolkit() *Toolkit { return e.toolkit }

// DB exposes the underlying domain database.
func (e *Environment) DB() Database { return e.toolkit.DB() }

// Language returns the environment's locale.
func (e *Environment) Language() string { return e.toolkit.Language() }

// Now returns the simulated time.
func (e *Environment) Now() string { return e.toolkit.Now() }

// ToolDefinitions renders every registered tool into the form sent to the
// model: the localized docstring plus the argument schema annotated with
// per-argument descriptions.
func (e *Environment) ToolDefinitions() []llms.ToolDefinition {
	tools := e.toolkit.Tools()
	defs := make([]llms.ToolDefinition, len(tools))
	for i, tool := range tools {
		def := llms.ToolDefinition{
			Name:       tool.Name,
			Parameters: tool.Parameters,
		}
		if desc, ok := e.descriptions.Lookup(tool.Name, e.Language()); ok {
			def.Description = desc.Docstring()
			def.Parameters = annotateParameters(tool.Parameters, desc.Args)
		}
		defs[i] = def
	}
	return defs
}

// annotateParameters copies the schema with argument descriptions filled in.
func annotateParameters(parameters map[string]any, args []ArgDescription) map[string]any {
	properties, ok := parameters["properties"].(map[string]any)
	if !ok || len(args) == 0 {
		return parameters
	}
	annotated := make(map[string]any, len(properties))
	for name, prop := range properties {
		annotated[name] = prop
	}
	for _, arg := range args {
		prop, ok := annotated[arg.Name].(map[string]any)
		if !ok {
			continue
		}
		withDesc := make(map[string]any, len(prop)+1)
		for k, v := range prop {
			withDesc[k] = v
		}
		withDesc["description"] = arg.Description
		annotated[arg.Name] = withDesc
	}

	result := make(map[string]any, len(parameters))
	for k, v := range parameters {
		result[k] = v
	}
	result["properties"] = annotated
	return result
}

// UseTool dispatches one tool call against the environment.
func (e *Environment) UseTool(name string, args map[string]any) (string, error) {
	return e.toolkit.Use(name, args)
}

// Statistics reports database and toolkit counters together.
func (e *Environment) Statistics() map[string]any {
	stats := e.toolkit.DB().Statistics()
	for k, v := range e.toolkit.Statistics() {
		stats[k] = v
	}
	return stats
}

// DBHash fingerprints the current database state.
func (e *Environment) DBHash() string {
	return e.toolkit.DB().Hash()
}

// Merge combines several single-domain environments into one cross-domain
// environment: policies are concatenated, tool catalogs are unioned with
// later domains winning name collisions, and the database hash covers every
// member in a member-order-independent way.
func Merge(domainName, policy string, envs ...*Environment) *Environment {
	if len(envs) == 0 {
		return nil
	}
	composite := &compositeDatabase{}
	merged := NewToolkit(composite, envs[0].Language())
	descriptions := BaseDescriptions
	var policies []string
	for _, env := range envs {
		composite.members = append(composite.members, env.DB())
		for _, tool := range env.Toolkit().Tools() {
			merged.Register(tool)
		}
		descriptions = descriptions.Merge(env.descriptions)
		if env.Policy != "" {
			policies = append(policies, env.Policy)
		}
	}
	if policy == "" {
		policy = strings.Join(policies, "\n\n")
	}
	return &Environment{
		DomainName:   domainName,
		Policy:       policy,
		toolkit:      merged,
		descriptions: descriptions,
	}
}

// compositeDatabase presents several domain databases as one. The shared
// core tables come from the last member; entity lookups union the members.
type compositeDatabase struct {
	members []Database
}

func (c *compositeDatabase) Core() *DB {
	if len(c.members) == 0 {
		return &DB{}
	}
	return c.members[len(c.members)-1].Core()
}

func (c *compositeDatabase) Statistics() map[string]any {
	stats := map[string]any{}
	for _, member := range c.members {
		for k, v := range member.Statistics() {
			stats[k] = v
		}
	}
	return stats
}

func (c *compositeDatabase) Nearby(longitude, latitude, rng float64) []string {
	var matches []string
	for _, member := range c.members {
		matches = append(matches, member.Nearby(longitude, latitude, rng)...)
	}
	return matches
}

func (c *compositeDatabase) Hash() string {
	hashes := make([]string, len(c.members))
	for i, member := range c.members {
		hashes[i] = member.Hash()
	}
	sort.Strings(hashes)
	return utils.Hash(strings.Join(hashes, "|"))
}
