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

package agent

import (
	"context"
	"fmt"

	"github.com/vitabench/vita/pkg/config"
	"github.com/vitabench/vita/pkg/environment"
	"github.com/vitabench/vita/pkg/llms"
	"github.com/vitabench/vita/pkg/logger"
	"github.com/vitabench/vita/pkg/model"
	"github.com/vitabench/vita/pkg/utils"
)

// LLMAgent is the conversational assistant driver. Its system prompt is the
// domain policy rendered with the task's simulated time and localized
// weekday.
type LLMAgent struct {
	cfg          *config.ModelConfig
	provider     llms.Provider
	tools        []llms.ToolDefinition
	systemPrompt string
}

// NewLLMAgent builds the agent for one simulation. taskTime is the task's
// simulated wall-clock time and must be set.
func NewLLMAgent(cfg *config.ModelConfig, tools []llms.ToolDefinition, policy, taskTime, language string) (*LLMAgent, error) {
	if taskTime == "" {
		return nil, fmt.Errorf("agent requires a task time")
	}
	weekday, err := utils.Weekday(taskTime, language)
	if err != nil {
		return nil, fmt.Errorf("invalid task time %q: %w", taskTime, err)
	}
	return &LLMAgent{
		cfg:          cfg,
		provider:     llms.NewClient(cfg),
		tools:        tools,
		systemPrompt: environment.RenderPolicy(policy, taskTime+" "+weekday),
	}, nil
}

// InitState seeds the conversation with the task's message history.
func (a *LLMAgent) InitState(history []model.Message) (*State, error) {
	if err := validateHistory(history); err != nil {
		return nil, err
	}
	return &State{
		SystemMessages: []model.Message{model.SystemMessage(a.systemPrompt)},
		Messages:       append([]model.Message(nil), history...),
	}, nil
}

// GenerateNext appends the incoming messages, calls the LLM with the full
// conversation and tools, and records the assistant reply.
func (a *LLMAgent) GenerateNext(ctx context.Context, incoming []model.Message, state *State) (model.Message, error) {
	state.Messages = append(state.Messages, incoming...)

	conversation := make([]model.Message, 0, len(state.SystemMessages)+len(state.Messages))
	conversation = append(conversation, state.SystemMessages...)
	conversation = append(conversation, state.Messages...)

	reply, err := a.provider.Generate(ctx, conversation, a.tools)
	if err != nil {
		return model.Message{}, err
	}
	state.Messages = append(state.Messages, reply)
	return reply, nil
}

// SetSeed pins the LLM sampling seed for this trial.
func (a *LLMAgent) SetSeed(seed int64) {
	if a.cfg.Seed != nil {
		logger.GetLogger().Warn("Seed already set, resetting", "old", *a.cfg.Seed, "new", seed)
	}
	a.cfg = a.cfg.WithSeed(seed)
	a.provider = llms.NewClient(a.cfg)
}
