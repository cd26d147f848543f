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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modelsYAML = `
default:
  base_url: https://api.example.com/v1
  temperature: 0.0
  cost_1m_token_dollar:
    prompt_price: 1.0
    completion_price: 2.0
models:
  - name: gpt-test
    api_key: ${TEST_MODELS_KEY}
  - name: claude-test
    model: claude-x
    base_url: https://anthropic.example.com/v1
    temperature: 0.7
    max_tokens: 4096
    seed: 42
`

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "models.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadModelRegistry(t *testing.T) {
	t.Setenv("TEST_MODELS_KEY", "secret-key")
	path := writeTempYAML(t, modelsYAML)

	registry, err := LoadModelRegistry(path, "")
	require.NoError(t, err)

	gpt, err := registry.Get("gpt-test")
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/v1", gpt.BaseURL)
	assert.Equal(t, "secret-key", gpt.APIKey)
	assert.Equal(t, "Bearer secret-key", gpt.Headers["Authorization"])
	assert.Equal(t, float64(DefaultLLMTimeoutSec), gpt.TimeoutSec)
	require.NotNil(t, gpt.Temperature)
	assert.Equal(t, 0.0, *gpt.Temperature)
	require.NotNil(t, gpt.TokenPrices)
	assert.Equal(t, 1.0, *gpt.TokenPrices.PromptPrice)
	assert.Equal(t, "gpt-test", gpt.ModelID())

	claude, err := registry.Get("claude-test")
	require.NoError(t, err)
	assert.Equal(t, "claude-x", claude.ModelID())
	assert.Equal(t, "https://anthropic.example.com/v1", claude.BaseURL)
	require.NotNil(t, claude.Temperature)
	assert.Equal(t, 0.7, *claude.Temperature)
	require.NotNil(t, claude.MaxTokens)
	assert.Equal(t, 4096, *claude.MaxTokens)
	require.NotNil(t, claude.Seed)
	assert.Equal(t, int64(42), *claude.Seed)

	_, err = registry.Get("missing")
	assert.ErrorContains(t, err, "not found in configuration")
}

func TestLoadModelRegistryEvaluatorOverride(t *testing.T) {
	modelPath := writeTempYAML(t, `
models:
  - name: judge
    base_url: https://a.example.com
`)
	evalPath := filepath.Join(t.TempDir(), "evaluators.yaml")
	require.NoError(t, os.WriteFile(evalPath, []byte(`
models:
  - name: judge
    base_url: https://b.example.com
`), 0o644))

	registry, err := LoadModelRegistry(modelPath, evalPath)
	require.NoError(t, err)
	judge, err := registry.Get("judge")
	require.NoError(t, err)
	assert.Equal(t, "https://b.example.com", judge.BaseURL)
}

func TestLoadModelRegistryMissingFile(t *testing.T) {
	_, err := LoadModelRegistry(filepath.Join(t.TempDir(), "nope.yaml"), "")
	assert.ErrorContains(t, err, "does not exist")
}

func TestWithSeed(t *testing.T) {
	cfg := &ModelConfig{Name: "m"}
	seeded := cfg.WithSeed(7)
	require.NotNil(t, seeded.Seed)
	assert.Equal(t, int64(7), *seeded.Seed)
	assert.Nil(t, cfg.Seed)
}

func TestEnvDefaultSubstitution(t *testing.T) {
	os.Unsetenv("TEST_UNSET_VAR")
	path := writeTempYAML(t, `
models:
  - name: m
    base_url: ${TEST_UNSET_VAR:https://fallback.example.com}
`)
	registry, err := LoadModelRegistry(path, "")
	require.NoError(t, err)
	cfg, err := registry.Get("m")
	require.NoError(t, err)
	assert.Equal(t, "https://fallback.example.com", cfg.BaseURL)
}
