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

// Package llms provides the chat-completion client used by agents, user
// simulators and evaluators. Every configured model speaks the
// OpenAI-compatible wire protocol; provider quirks (prompt caching for
// claude and minimax families) are handled per model name.
package llms

import (
	"context"

	"github.com/vitabench/vita/pkg/model"
)

// ToolDefinition describes one callable tool in the form the chat API
// expects under tools[].function.
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// Provider generates one assistant message from a conversation.
//
// The returned message carries usage and dollar cost when the model config
// prices tokens. Tool calls, if any, are parsed into structured arguments.
type Provider interface {
	Generate(ctx context.Context, messages []model.Message, tools []ToolDefinition) (model.Message, error)
	ModelName() string
}
