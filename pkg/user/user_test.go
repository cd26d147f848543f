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

package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitabench/vita/pkg/config"
	"github.com/vitabench/vita/pkg/llms"
	"github.com/vitabench/vita/pkg/model"
)

type scriptedProvider struct {
	replies []model.Message
	seen    [][]model.Message
}

func (p *scriptedProvider) Generate(_ context.Context, messages []model.Message, _ []llms.ToolDefinition) (model.Message, error) {
	p.seen = append(p.seen, append([]model.Message(nil), messages...))
	reply := p.replies[0]
	if len(p.replies) > 1 {
		p.replies = p.replies[1:]
	}
	return reply, nil
}

func (p *scriptedProvider) ModelName() string { return "scripted" }

func newSimulator(provider llms.Provider) *UserSimulator {
	u := NewUserSimulator(&config.ModelConfig{Name: "m"}, model.UserScenario{
		UserProfile: map[string]any{"name": "Li Lei", "goal": "order dinner"},
	}, "english")
	u.provider = provider
	return u
}

func TestFlip(t *testing.T) {
	flipped, err := flip(model.UserMessage("hi"))
	require.NoError(t, err)
	assert.Equal(t, model.RoleAssistant, flipped.Role)

	flipped, err = flip(model.AssistantMessage("hello"))
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, flipped.Role)

	_, err = flip(model.Message{Role: model.RoleAssistant, ToolCalls: []model.ToolCall{{ID: "1"}}})
	assert.ErrorContains(t, err, "without text content")

	_, err = flip(model.Message{Role: model.RoleTool, Content: "result"})
	assert.ErrorContains(t, err, "only accepts user or assistant messages")
}

func TestRenderProfile(t *testing.T) {
	rendered := renderProfile(map[string]any{
		"name":    "Li Lei",
		"age":     30,
		"address": "Hangzhou",
	})
	assert.Equal(t, "address: Hangzhou\nage: 30\nname: Li Lei", rendered)
}

func TestInitStateFlipsHistory(t *testing.T) {
	u := newSimulator(&scriptedProvider{})
	state, err := u.InitState([]model.Message{
		model.UserMessage("I want hotpot"),
		model.AssistantMessage("Which shop?"),
	})
	require.NoError(t, err)
	require.Len(t, state.Messages, 2)
	assert.Equal(t, model.RoleAssistant, state.Messages[0].Role)
	assert.Equal(t, model.RoleUser, state.Messages[1].Role)
	require.Len(t, state.SystemMessages, 1)
	assert.Contains(t, state.SystemMessages[0].Content, "name: Li Lei")
}

func TestGenerateNextSurfacesUserMessage(t *testing.T) {
	cost := 0.01
	provider := &scriptedProvider{replies: []model.Message{{
		Role: model.RoleAssistant, Content: "A table for two, please.", Cost: &cost,
	}}}
	u := newSimulator(provider)
	state, err := u.InitState(nil)
	require.NoError(t, err)

	incoming := model.AssistantMessage("How many people?")
	reply, err := u.GenerateNext(context.Background(), &incoming, state)
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, reply.Role)
	assert.Equal(t, "A table for two, please.", reply.Content)
	require.NotNil(t, reply.Cost)
	assert.Equal(t, 0.01, *reply.Cost)

	// The simulator's own view: flipped incoming plus its reply.
	require.Len(t, state.Messages, 2)
	assert.Equal(t, model.RoleUser, state.Messages[0].Role)
	assert.Equal(t, model.RoleAssistant, state.Messages[1].Role)
}

func TestGenerateNextOpensWithNudge(t *testing.T) {
	provider := &scriptedProvider{replies: []model.Message{
		model.AssistantMessage("Hi, I want to book a hotel."),
	}}
	u := newSimulator(provider)
	state, err := u.InitState(nil)
	require.NoError(t, err)

	reply, err := u.GenerateNext(context.Background(), nil, state)
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, reply.Role)

	require.Len(t, provider.seen, 1)
	conversation := provider.seen[0]
	require.Len(t, conversation, 2)
	assert.Equal(t, model.RoleSystem, conversation[0].Role)
	assert.Equal(t, openingNudge, conversation[1].Content)
}

func TestIsStop(t *testing.T) {
	stop := model.UserMessage("All done, thanks. " + StopToken)
	assert.True(t, IsStop(&stop))
	plain := model.UserMessage("thanks")
	assert.False(t, IsStop(&plain))
}

func TestDummyUser(t *testing.T) {
	u := NewDummyUser()
	state, err := u.InitState([]model.Message{model.UserMessage("ticket")})
	require.NoError(t, err)
	require.Len(t, state.Messages, 1)

	incoming := model.AssistantMessage(StopToken + " finished")
	reply, err := u.GenerateNext(context.Background(), &incoming, state)
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, reply.Role)
	assert.Equal(t, StopToken, reply.Content)
	assert.True(t, IsStop(&reply))
}
