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

// Package agent implements the assistant-side drivers of a simulation: the
// conversational LLMAgent and the tool-calls-only LLMSoloAgent.
package agent

import (
	"context"
	"fmt"

	"github.com/vitabench/vita/pkg/model"
)

// StopToken ends a solo-agent run when it appears in assistant content.
const StopToken = "###STOP###"

// State is an agent's conversation state: the pinned system messages plus
// the growing message history.
type State struct {
	SystemMessages []model.Message `json:"system_messages"`
	Messages       []model.Message `json:"messages"`
}

// Agent drives the assistant side of a simulation. The incoming slice holds
// what arrived since the agent's last turn: a single user message, or the
// tool responses of the agent's own previous turn. A nil incoming slice is
// only valid for drivers that open the conversation themselves.
type Agent interface {
	InitState(history []model.Message) (*State, error)
	GenerateNext(ctx context.Context, incoming []model.Message, state *State) (model.Message, error)
	SetSeed(seed int64)
}

func validateHistory(history []model.Message) error {
	for i := range history {
		switch history[i].Role {
		case model.RoleAssistant, model.RoleUser, model.RoleTool:
		default:
			return fmt.Errorf("message history must contain only assistant, user or tool messages, got %q", history[i].Role)
		}
	}
	return nil
}
