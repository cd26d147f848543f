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
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/vitabench/vita/pkg/config"
	"github.com/vitabench/vita/pkg/llms"
	"github.com/vitabench/vita/pkg/logger"
	"github.com/vitabench/vita/pkg/model"
)

// UserSimulator role-plays the customer. Internally the conversation is
// kept from the simulator's own point of view: the assistant's replies
// arrive as user-role messages and the simulator's answers are assistant
// messages, flipped back to the user role before they reach the agent.
type UserSimulator struct {
	cfg          *config.ModelConfig
	provider     llms.Provider
	systemPrompt string
}

// NewUserSimulator builds the simulator for one scenario.
func NewUserSimulator(cfg *config.ModelConfig, scenario model.UserScenario, language string) *UserSimulator {
	prompt := userSystemPromptEN
	if language != "english" {
		prompt = userSystemPromptZH
	}
	return &UserSimulator{
		cfg:          cfg,
		provider:     llms.NewClient(cfg),
		systemPrompt: strings.ReplaceAll(prompt, "{profile}", renderProfile(scenario.UserProfile)),
	}
}

// InitState seeds the conversation with the task's message history, flipped
// into the simulator's point of view.
func (u *UserSimulator) InitState(history []model.Message) (*State, error) {
	messages := make([]model.Message, 0, len(history))
	for i := range history {
		flipped, err := flip(history[i])
		if err != nil {
			return nil, err
		}
		messages = append(messages, flipped)
	}
	return &State{
		SystemMessages: []model.Message{model.SystemMessage(u.systemPrompt)},
		Messages:       messages,
	}, nil
}

// GenerateNext produces the next user turn. incoming is the assistant's
// latest visible reply, nil when the user opens the conversation.
func (u *UserSimulator) GenerateNext(ctx context.Context, incoming *model.Message, state *State) (model.Message, error) {
	if incoming != nil {
		flipped, err := flip(*incoming)
		if err != nil {
			return model.Message{}, err
		}
		state.Messages = append(state.Messages, flipped)
	} else if len(state.Messages) == 0 {
		state.Messages = append(state.Messages, model.UserMessage(openingNudge))
	}

	conversation := make([]model.Message, 0, len(state.SystemMessages)+len(state.Messages))
	conversation = append(conversation, state.SystemMessages...)
	conversation = append(conversation, state.Messages...)

	reply, err := u.provider.Generate(ctx, conversation, nil)
	if err != nil {
		return model.Message{}, err
	}
	state.Messages = append(state.Messages, reply)

	surfaced := model.UserMessage(reply.Content)
	surfaced.Cost = reply.Cost
	surfaced.Usage = reply.Usage
	return surfaced, nil
}

// SetSeed pins the LLM sampling seed for this trial.
func (u *UserSimulator) SetSeed(seed int64) {
	if u.cfg.Seed != nil {
		logger.GetLogger().Warn("Seed already set, resetting", "old", *u.cfg.Seed, "new", seed)
	}
	u.cfg = u.cfg.WithSeed(seed)
	u.provider = llms.NewClient(u.cfg)
}

// flip swaps the user and assistant roles of a trajectory message so the
// simulator LLM sees the conversation from the customer's seat. Tool
// traffic is never shown to the user.
func flip(m model.Message) (model.Message, error) {
	switch m.Role {
	case model.RoleUser:
		out := model.AssistantMessage(m.Content)
		return out, nil
	case model.RoleAssistant:
		if !m.HasTextContent() {
			return model.Message{}, fmt.Errorf("user simulator received an assistant message without text content")
		}
		return model.UserMessage(m.Content), nil
	default:
		return model.Message{}, fmt.Errorf("user simulator only accepts user or assistant messages, got %q", m.Role)
	}
}

// renderProfile flattens the scenario profile into stable key: value lines.
func renderProfile(profile map[string]any) string {
	keys := make([]string, 0, len(profile))
	for k := range profile {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		value := profile[k]
		text, ok := value.(string)
		if !ok {
			encoded, err := json.Marshal(value)
			if err != nil {
				text = fmt.Sprintf("%v", value)
			} else {
				text = string(encoded)
			}
		}
		fmt.Fprintf(&b, "%s: %s\n", k, text)
	}
	return strings.TrimRight(b.String(), "\n")
}

const openingNudge = "Hello! How can I help you today?"

const userSystemPromptEN = `You are role-playing a customer talking to a life-service assistant. Stay in character for the whole conversation.

Your profile and goals:
{profile}

Rules:
1. You are the customer, not the assistant. Never offer help, never call tools, never reveal that you are simulated.
2. Pursue the goals in your profile one step at a time. Do not dump all requirements in a single message.
3. Only provide personal details (name, phone, address, user id) when the assistant asks, and only those listed in your profile. Never invent information that is not in your profile.
4. If the assistant asks something your profile does not cover, say you are not sure.
5. When every goal is resolved, or the assistant clearly cannot help further, reply with ###STOP### and nothing else.`

const userSystemPromptZH = `你正在扮演一位与生活服务助手对话的顾客。全程保持角色。

你的个人信息与目标：
{profile}

规则：
1. 你是顾客，不是助手。不要提供帮助，不要调用工具，不要透露你是模拟的。
2. 按照个人信息中的目标逐步推进，不要在一条消息里说出全部需求。
3. 只有在助手询问时才提供个人信息（姓名、电话、地址、用户 ID），且仅限个人信息中列出的内容，禁止编造。
4. 如果助手询问的内容不在你的个人信息中，就说不清楚。
5. 当所有目标都已解决，或助手明显无法继续帮忙时，只回复 ###STOP###。`
