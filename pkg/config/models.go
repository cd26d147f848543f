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

package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Env vars overriding the default config file locations.
const (
	ModelConfigPathEnv     = "VITA_MODEL_CONFIG_PATH"
	EvaluatorConfigPathEnv = "VITA_EVALUATOR_CONFIG_PATH"
)

// TokenPrices holds per-million-token dollar prices.
type TokenPrices struct {
	PromptPrice     *float64 `mapstructure:"prompt_price" json:"prompt_price,omitempty"`
	CompletionPrice *float64 `mapstructure:"completion_price" json:"completion_price,omitempty"`
}

// ModelConfig is one entry of models.yaml / evaluators.yaml after default
// merging, env expansion and normalization. Keys not named here are kept in
// Extra and passed through to the request body verbatim.
type ModelConfig struct {
	Name        string            `mapstructure:"name" json:"name"`
	Model       string            `mapstructure:"model" json:"model,omitempty"`
	BaseURL     string            `mapstructure:"base_url" json:"base_url"`
	APIKey      string            `mapstructure:"api_key" json:"api_key,omitempty"`
	Headers     map[string]string `mapstructure:"headers" json:"headers,omitempty"`
	Temperature *float64          `mapstructure:"temperature" json:"temperature,omitempty"`
	MaxTokens   *int              `mapstructure:"max_tokens" json:"max_tokens,omitempty"`
	Seed        *int64            `mapstructure:"seed" json:"seed,omitempty"`
	TimeoutSec  float64           `mapstructure:"timeout" json:"timeout,omitempty"`
	TokenPrices *TokenPrices      `mapstructure:"cost_1m_token_dollar" json:"cost_1m_token_dollar,omitempty"`

	Extra map[string]any `mapstructure:",remain" json:"extra,omitempty"`
}

// ModelID returns the wire model identifier: the explicit model field when
// set, the registry name otherwise.
func (c *ModelConfig) ModelID() string {
	if c.Model != "" {
		return c.Model
	}
	return c.Name
}

// WithSeed returns a shallow copy of the config with the seed replaced.
func (c *ModelConfig) WithSeed(seed int64) *ModelConfig {
	clone := *c
	clone.Seed = &seed
	return &clone
}

// ModelRegistry resolves model names to their configs.
type ModelRegistry struct {
	models map[string]*ModelConfig
}

// Get returns the config for name.
func (r *ModelRegistry) Get(name string) (*ModelConfig, error) {
	cfg, ok := r.models[name]
	if !ok {
		return nil, fmt.Errorf("model %q not found in configuration", name)
	}
	return cfg, nil
}

// Names lists all configured model names.
func (r *ModelRegistry) Names() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	return names
}

// LoadModelRegistry loads the model and evaluator YAML files into one
// registry. Evaluator entries are merged over model entries on name clash,
// matching the original lookup order.
func LoadModelRegistry(modelPath, evaluatorPath string) (*ModelRegistry, error) {
	if env := os.Getenv(ModelConfigPathEnv); env != "" {
		modelPath = env
	}
	if env := os.Getenv(EvaluatorConfigPathEnv); env != "" {
		evaluatorPath = env
	}

	registry := &ModelRegistry{models: make(map[string]*ModelConfig)}
	for _, path := range []string{modelPath, evaluatorPath} {
		if path == "" {
			continue
		}
		if err := registry.loadFile(path); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

type modelConfigFile struct {
	Default map[string]any   `yaml:"default"`
	Models  []map[string]any `yaml:"models"`
}

func (r *ModelRegistry) loadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("model configuration file %s does not exist, you should create it first: %w", path, err)
	}

	var file modelConfigFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for _, entry := range file.Models {
		merged := deepMerge(file.Default, entry)
		merged, _ = ExpandEnvVarsInData(merged).(map[string]any)
		normalizeAPIConfig(merged)

		var cfg ModelConfig
		if err := mapstructure.Decode(merged, &cfg); err != nil {
			return fmt.Errorf("invalid model entry in %s: %w", path, err)
		}
		if cfg.Name == "" {
			return fmt.Errorf("model entry without name in %s", path)
		}
		r.models[cfg.Name] = &cfg
	}
	return nil
}

// deepMerge overlays override onto base, merging nested maps key by key.
func deepMerge(base, override map[string]any) map[string]any {
	result := make(map[string]any, len(base)+len(override))
	for k, v := range base {
		result[k] = v
	}
	for k, v := range override {
		if baseMap, ok := result[k].(map[string]any); ok {
			if overrideMap, ok := v.(map[string]any); ok {
				result[k] = deepMerge(baseMap, overrideMap)
				continue
			}
		}
		result[k] = v
	}
	return result
}

// normalizeAPIConfig fills the default timeout and derives auth headers from
// the api key when none are given.
func normalizeAPIConfig(cfg map[string]any) {
	if cfg["timeout"] == nil {
		cfg["timeout"] = DefaultLLMTimeoutSec
	}
	apiKey, _ := cfg["api_key"].(string)
	if cfg["headers"] == nil && apiKey != "" {
		cfg["headers"] = map[string]any{
			"Content-Type":  "application/json",
			"Authorization": "Bearer " + apiKey,
		}
	}
}
