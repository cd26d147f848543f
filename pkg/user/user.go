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

// Package user implements the customer side of a simulation: the
// LLM-backed UserSimulator and the no-op DummyUser.
package user

import (
	"context"
	"strings"

	"github.com/vitabench/vita/pkg/model"
)

// StopToken ends a run when it appears in a simulated user message.
const StopToken = "###STOP###"

// State is a user's conversation state as seen from the user side: the
// pinned system messages plus the role-flipped message history.
type State struct {
	SystemMessages []model.Message `json:"system_messages"`
	Messages       []model.Message `json:"messages"`
}

// User drives the customer side of a simulation. incoming is the
// assistant's latest visible reply, or nil when the user opens the
// conversation. The returned message always carries the user role.
type User interface {
	InitState(history []model.Message) (*State, error)
	GenerateNext(ctx context.Context, incoming *model.Message, state *State) (model.Message, error)
	SetSeed(seed int64)
}

// IsStop reports whether a user message ends the run.
func IsStop(message *model.Message) bool {
	return strings.Contains(message.Content, StopToken)
}
