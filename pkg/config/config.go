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

// Package config loads the model registry and run options for the benchmark
// harness: YAML files with env-variable substitution, default deep-merging
// and run-level limits.
package config

import "fmt"

// Defaults for simulation and evaluation limits.
const (
	DefaultLLMTimeoutSec  = 600
	DefaultMaxSteps       = 120
	DefaultMaxRetries     = 3
	DefaultMaxErrors      = 10
	DefaultSeed           = 300
	DefaultMaxConcurrency = 30
	DefaultMaxEvaluations = 30
	DefaultNumTrials      = 1
	DefaultLogLevel       = "debug"
	DefaultLanguage       = "english"
	DefaultEvaluationType = "trajectory"

	DefaultAgentImplementation = "llm_agent"
	DefaultUserImplementation  = "user_simulator"
)

// RunConfig carries everything one benchmark run needs.
type RunConfig struct {
	Domain   string `json:"domain"`
	TaskSet  string `json:"task_set,omitempty"`
	Language string `json:"language"`

	AgentImplementation string   `json:"agent_implementation"`
	UserImplementation  string   `json:"user_implementation"`
	LLMAgent            string   `json:"llm_agent"`
	LLMUser             string   `json:"llm_user"`
	LLMEvaluators       []string `json:"llm_evaluators"`

	EvaluationType     string `json:"evaluation_type"`
	ParallelEvaluators bool   `json:"parallel_evaluators"`

	NumTrials      int     `json:"num_trials"`
	MaxSteps       int     `json:"max_steps"`
	MaxErrors      int     `json:"max_errors"`
	MaxConcurrency int     `json:"max_concurrency"`
	MaxDurationSec float64 `json:"max_duration_sec,omitempty"`
	Seed           int64   `json:"seed"`

	SaveTo         string `json:"save_to,omitempty"`
	CSVPath        string `json:"csv_path,omitempty"`
	ReEvaluateFile string `json:"re_evaluate_file,omitempty"`
	EnableThink    bool   `json:"enable_think,omitempty"`
}

// NewRunConfig returns a RunConfig populated with defaults.
func NewRunConfig() RunConfig {
	return RunConfig{
		Language:            DefaultLanguage,
		AgentImplementation: DefaultAgentImplementation,
		UserImplementation:  DefaultUserImplementation,
		EvaluationType:      DefaultEvaluationType,
		NumTrials:           DefaultNumTrials,
		MaxSteps:            DefaultMaxSteps,
		MaxErrors:           DefaultMaxErrors,
		MaxConcurrency:      DefaultMaxConcurrency,
		Seed:                DefaultSeed,
	}
}

// Validate checks run-level constraints that would otherwise fail mid-run.
func (c *RunConfig) Validate() error {
	if c.Domain == "" {
		return fmt.Errorf("domain is required")
	}
	if c.NumTrials < 1 {
		return fmt.Errorf("num_trials must be >= 1, got %d", c.NumTrials)
	}
	if c.MaxConcurrency < 1 {
		return fmt.Errorf("max_concurrency must be >= 1, got %d", c.MaxConcurrency)
	}
	if len(c.LLMEvaluators) > 0 && len(c.LLMEvaluators)%2 == 0 {
		return fmt.Errorf("llm_evaluators must have odd length, got %d", len(c.LLMEvaluators))
	}
	switch c.Language {
	case "english", "chinese":
	default:
		return fmt.Errorf("language must be english or chinese, got %q", c.Language)
	}
	return nil
}
