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

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestMessagePredicates(t *testing.T) {
	plain := AssistantMessage("hello")
	assert.False(t, plain.IsToolCall())
	assert.True(t, plain.IsValidAssistantMessage())

	withCalls := Message{Role: RoleAssistant, ToolCalls: []ToolCall{{ID: "1", Name: "weather"}}}
	assert.True(t, withCalls.IsToolCall())
	assert.True(t, withCalls.IsValidAssistantMessage())

	empty := Message{Role: RoleAssistant, Content: "   "}
	assert.False(t, empty.IsValidAssistantMessage())

	userCalls := Message{Role: RoleUser, ToolCalls: []ToolCall{{ID: "1"}}}
	assert.False(t, userCalls.IsToolCall())
}

func TestToolMessageCarriesCallIdentity(t *testing.T) {
	call := ToolCall{ID: "abc", Name: "get_nearby", Requestor: RequestorAssistant}
	m := ToolMessage(call, "no results", false)
	assert.Equal(t, RoleTool, m.Role)
	assert.Equal(t, "abc", m.ToolCallID)
	assert.Equal(t, "get_nearby", m.Name)
	assert.False(t, m.Error)
}

func TestCostBySide(t *testing.T) {
	messages := []Message{
		{Role: RoleSystem},
		{Role: RoleUser, Cost: floatPtr(0.1)},
		{Role: RoleAssistant, Cost: floatPtr(0.2)},
		{Role: RoleTool},
		{Role: RoleAssistant, Cost: floatPtr(0.3)},
	}
	agent, user := CostBySide(messages)
	require.NotNil(t, agent)
	require.NotNil(t, user)
	assert.InDelta(t, 0.5, *agent, 1e-9)
	assert.InDelta(t, 0.1, *user, 1e-9)

	// Tool messages never carry cost and do not break the sum.
	agent, user = CostBySide([]Message{{Role: RoleTool}})
	require.NotNil(t, agent)
	require.NotNil(t, user)
	assert.Zero(t, *agent)
	assert.Zero(t, *user)
}

func TestCostBySideNilWhenUnpriced(t *testing.T) {
	messages := []Message{
		{Role: RoleAssistant, Cost: floatPtr(0.5)},
		{Role: RoleUser},
	}
	agent, user := CostBySide(messages)
	assert.Nil(t, agent)
	assert.Nil(t, user)

	messages[1].Cost = floatPtr(0.25)
	agent, user = CostBySide(messages)
	require.NotNil(t, agent)
	require.NotNil(t, user)
	assert.InDelta(t, 0.5, *agent, 1e-9)
	assert.InDelta(t, 0.25, *user, 1e-9)
}
