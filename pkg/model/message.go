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

// Package model defines the data types exchanged between the orchestrator,
// the drivers, the environment and the evaluator: conversation messages,
// tasks, domain entities and simulation results.
package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// ToolRequestor identifies which side of the conversation issued a tool call.
type ToolRequestor string

const (
	RequestorAssistant ToolRequestor = "assistant"
	RequestorUser      ToolRequestor = "user"
)

// Usage carries token accounting for one LLM call.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ToolCall is a request from the LLM to invoke one tool. The ID is opaque and
// assigned by the LLM provider.
type ToolCall struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
	Requestor ToolRequestor  `json:"requestor,omitempty"`
}

func (tc ToolCall) String() string {
	args, _ := json.Marshal(tc.Arguments)
	return fmt.Sprintf("%s(%s)", tc.Name, string(args))
}

// Message is one unit of the conversation trajectory. The Role discriminates
// the variant; unused fields stay zero.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content,omitempty"`

	// Assistant fields.
	ToolCalls []ToolCall     `json:"tool_calls,omitempty"`
	RawData   map[string]any `json:"raw_data,omitempty"`

	// Tool-response fields.
	ToolCallID string        `json:"tool_call_id,omitempty"`
	Name       string        `json:"name,omitempty"`
	Requestor  ToolRequestor `json:"requestor,omitempty"`
	Error      bool          `json:"error,omitempty"`

	Cost  *float64 `json:"cost,omitempty"`
	Usage *Usage   `json:"usage,omitempty"`
}

// IsToolCall reports whether an assistant message requests tool execution.
func (m *Message) IsToolCall() bool {
	return m.Role == RoleAssistant && len(m.ToolCalls) > 0
}

// HasTextContent reports whether the message carries non-empty text.
func (m *Message) HasTextContent() bool {
	return strings.TrimSpace(m.Content) != ""
}

// IsValidAssistantMessage reports whether an assistant turn carries either
// text content or at least one tool call.
func (m *Message) IsValidAssistantMessage() bool {
	return m.HasTextContent() || len(m.ToolCalls) > 0
}

// SystemMessage builds a system-role message.
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage builds a user-role message.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// AssistantMessage builds an assistant-role message with plain content.
func AssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// ToolMessage builds a tool-response message for one tool call.
func ToolMessage(call ToolCall, content string, isErr bool) Message {
	return Message{
		Role:       RoleTool,
		Content:    content,
		ToolCallID: call.ID,
		Name:       call.Name,
		Requestor:  call.Requestor,
		Error:      isErr,
	}
}

// MultiToolMessage groups the tool responses produced by one assistant turn,
// preserving the original tool-call order, so they can be handed back to the
// agent together.
type MultiToolMessage struct {
	ToolMessages []Message `json:"tool_messages"`
}

// CostBySide sums the cost of assistant messages (agent side) and user
// messages (user side) separately. It returns nil for both sides when any
// conversational message lacks a cost, because a partial sum would
// under-report.
func CostBySide(messages []Message) (agent, user *float64) {
	var agentSum, userSum float64
	for i := range messages {
		m := &messages[i]
		if m.Role == RoleTool || m.Role == RoleSystem {
			continue
		}
		if m.Cost == nil {
			return nil, nil
		}
		switch m.Role {
		case RoleAssistant:
			agentSum += *m.Cost
		case RoleUser:
			userSum += *m.Cost
		}
	}
	return &agentSum, &userSum
}
