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

// Package registry maps component names to their constructors: agents,
// user simulators, domain environments and task sets.
package registry

import (
	"fmt"
	"sort"

	"github.com/vitabench/vita/pkg/agent"
	"github.com/vitabench/vita/pkg/config"
	"github.com/vitabench/vita/pkg/domains/delivery"
	"github.com/vitabench/vita/pkg/domains/instore"
	"github.com/vitabench/vita/pkg/domains/ota"
	"github.com/vitabench/vita/pkg/environment"
	"github.com/vitabench/vita/pkg/llms"
	"github.com/vitabench/vita/pkg/model"
	"github.com/vitabench/vita/pkg/user"
)

// CrossDomainName is the merged three-domain environment and task set.
const CrossDomainName = "cross_domain"

// EnvironmentConstructor builds a fresh domain environment from a task's
// environment blob.
type EnvironmentConstructor func(blob map[string]any, language string) (*environment.Environment, error)

// TaskLoader reads a task set for a language.
type TaskLoader func(dataDir, language string) ([]model.Task, error)

// AgentConstructor builds a fresh agent for one simulation.
type AgentConstructor func(cfg *config.ModelConfig, tools []llms.ToolDefinition, policy, taskTime, language string) (agent.Agent, error)

// UserConstructor builds a fresh user for one simulation.
type UserConstructor func(cfg *config.ModelConfig, scenario model.UserScenario, language string) (user.User, error)

// Registry resolves component names. The zero value is empty; New returns
// one with the default components registered.
type Registry struct {
	users   map[string]UserConstructor
	agents  map[string]AgentConstructor
	domains map[string]EnvironmentConstructor
	tasks   map[string]TaskLoader
}

// Info lists every registered component name.
type Info struct {
	Domains  []string `json:"domains"`
	Agents   []string `json:"agents"`
	Users    []string `json:"users"`
	TaskSets []string `json:"task_sets"`
}

// New builds a registry with the built-in agents, users, domains and task
// sets registered.
func New() *Registry {
	r := &Registry{
		users:   map[string]UserConstructor{},
		agents:  map[string]AgentConstructor{},
		domains: map[string]EnvironmentConstructor{},
		tasks:   map[string]TaskLoader{},
	}

	r.RegisterUser("user_simulator", func(cfg *config.ModelConfig, scenario model.UserScenario, language string) (user.User, error) {
		return user.NewUserSimulator(cfg, scenario, language), nil
	})
	r.RegisterUser("dummy_user", func(cfg *config.ModelConfig, scenario model.UserScenario, language string) (user.User, error) {
		return user.NewDummyUser(), nil
	})

	r.RegisterAgent("llm_agent", func(cfg *config.ModelConfig, tools []llms.ToolDefinition, policy, taskTime, language string) (agent.Agent, error) {
		return agent.NewLLMAgent(cfg, tools, policy, taskTime, language)
	})
	r.RegisterAgent("llm_solo_agent", func(cfg *config.ModelConfig, tools []llms.ToolDefinition, policy, taskTime, language string) (agent.Agent, error) {
		return agent.NewLLMSoloAgent(cfg, tools, taskTime, language)
	})

	r.RegisterDomain(delivery.DomainName, delivery.NewEnvironment)
	r.RegisterTasks(delivery.DomainName, delivery.LoadTasks)
	r.RegisterDomain(ota.DomainName, ota.NewEnvironment)
	r.RegisterTasks(ota.DomainName, ota.LoadTasks)
	r.RegisterDomain(instore.DomainName, instore.NewEnvironment)
	r.RegisterTasks(instore.DomainName, instore.LoadTasks)

	r.RegisterDomain(CrossDomainName, newCrossDomainEnvironment)
	r.RegisterTasks(CrossDomainName, func(dataDir, language string) ([]model.Task, error) {
		return model.LoadTasksFile(model.TaskFilePath(dataDir, CrossDomainName, language))
	})
	return r
}

// newCrossDomainEnvironment builds the three domain environments over the
// same blob and merges them into one tool surface.
func newCrossDomainEnvironment(blob map[string]any, language string) (*environment.Environment, error) {
	deliveryEnv, err := delivery.NewEnvironment(blob, language)
	if err != nil {
		return nil, err
	}
	otaEnv, err := ota.NewEnvironment(blob, language)
	if err != nil {
		return nil, err
	}
	instoreEnv, err := instore.NewEnvironment(blob, language)
	if err != nil {
		return nil, err
	}
	return environment.Merge(CrossDomainName, environment.AgentPolicy(language), deliveryEnv, otaEnv, instoreEnv), nil
}

// RegisterUser adds a user implementation under name.
func (r *Registry) RegisterUser(name string, constructor UserConstructor) {
	r.users[name] = constructor
}

// RegisterAgent adds an agent implementation under name.
func (r *Registry) RegisterAgent(name string, constructor AgentConstructor) {
	r.agents[name] = constructor
}

// RegisterDomain adds a domain environment under name.
func (r *Registry) RegisterDomain(name string, constructor EnvironmentConstructor) {
	r.domains[name] = constructor
}

// RegisterTasks adds a task set under name.
func (r *Registry) RegisterTasks(name string, loader TaskLoader) {
	r.tasks[name] = loader
}

// User resolves a user implementation by name.
func (r *Registry) User(name string) (UserConstructor, error) {
	constructor, ok := r.users[name]
	if !ok {
		return nil, fmt.Errorf("User %s not found in registry", name)
	}
	return constructor, nil
}

// Agent resolves an agent implementation by name.
func (r *Registry) Agent(name string) (AgentConstructor, error) {
	constructor, ok := r.agents[name]
	if !ok {
		return nil, fmt.Errorf("Agent %s not found in registry", name)
	}
	return constructor, nil
}

// Domain resolves a domain environment by name.
func (r *Registry) Domain(name string) (EnvironmentConstructor, error) {
	constructor, ok := r.domains[name]
	if !ok {
		return nil, fmt.Errorf("Domain %s not found in registry", name)
	}
	return constructor, nil
}

// Tasks resolves a task set by name.
func (r *Registry) Tasks(name string) (TaskLoader, error) {
	loader, ok := r.tasks[name]
	if !ok {
		return nil, fmt.Errorf("Task Set %s not found in registry", name)
	}
	return loader, nil
}

// Info lists the registered component names, sorted.
func (r *Registry) Info() Info {
	return Info{
		Domains:  sortedNames(r.domains),
		Agents:   sortedNames(r.agents),
		Users:    sortedNames(r.users),
		TaskSets: sortedNames(r.tasks),
	}
}

func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
