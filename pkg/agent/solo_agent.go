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
	"strings"

	"github.com/vitabench/vita/pkg/config"
	"github.com/vitabench/vita/pkg/llms"
	"github.com/vitabench/vita/pkg/logger"
	"github.com/vitabench/vita/pkg/model"
	"github.com/vitabench/vita/pkg/utils"
)

// LLMSoloAgent solves a task from a written ticket without talking to a
// user. Every turn must either call tools or emit the stop token.
type LLMSoloAgent struct {
	cfg          *config.ModelConfig
	provider     llms.Provider
	tools        []llms.ToolDefinition
	systemPrompt string
}

// NewLLMSoloAgent builds the solo driver for one simulation.
func NewLLMSoloAgent(cfg *config.ModelConfig, tools []llms.ToolDefinition, taskTime, language string) (*LLMSoloAgent, error) {
	if taskTime == "" {
		return nil, fmt.Errorf("agent requires a task time")
	}
	weekday, err := utils.Weekday(taskTime, language)
	if err != nil {
		return nil, fmt.Errorf("invalid task time %q: %w", taskTime, err)
	}
	prompt := soloSystemPromptEN
	if language != "english" {
		prompt = soloSystemPromptZH
	}
	return &LLMSoloAgent{
		cfg:          cfg,
		provider:     llms.NewClient(cfg),
		tools:        tools,
		systemPrompt: strings.ReplaceAll(prompt, "{time}", taskTime+" "+weekday),
	}, nil
}

// IsStop reports whether an assistant message ends the run.
func IsStop(message *model.Message) bool {
	return strings.Contains(message.Content, StopToken)
}

func (a *LLMSoloAgent) InitState(history []model.Message) (*State, error) {
	if err := validateHistory(history); err != nil {
		return nil, err
	}
	return &State{
		SystemMessages: []model.Message{model.SystemMessage(a.systemPrompt)},
		Messages:       append([]model.Message(nil), history...),
	}, nil
}

// GenerateNext drives one solo turn. A nil incoming slice means nothing
// new arrived, which happens when the agent opens on the seeded ticket.
func (a *LLMSoloAgent) GenerateNext(ctx context.Context, incoming []model.Message, state *State) (model.Message, error) {
	state.Messages = append(state.Messages, incoming...)

	conversation := make([]model.Message, 0, len(state.SystemMessages)+len(state.Messages))
	conversation = append(conversation, state.SystemMessages...)
	conversation = append(conversation, state.Messages...)

	reply, err := a.provider.Generate(ctx, conversation, a.tools)
	if err != nil {
		return model.Message{}, err
	}
	if !reply.IsToolCall() && !IsStop(&reply) {
		return model.Message{}, fmt.Errorf("LLMSoloAgent only supports tool calls before %s.", StopToken)
	}
	state.Messages = append(state.Messages, reply)
	return reply, nil
}

func (a *LLMSoloAgent) SetSeed(seed int64) {
	if a.cfg.Seed != nil {
		logger.GetLogger().Warn("Seed already set, resetting", "old", *a.cfg.Seed, "new", seed)
	}
	a.cfg = a.cfg.WithSeed(seed)
	a.provider = llms.NewClient(a.cfg)
}

const soloSystemPromptEN = `You are a life-service assistant working on a written request. The current time is {time}.

The first message contains the full request. Complete it by calling the available tools. Do not address the user: there is no user in this session, only the request and the tools.

Rules:
1. Only use the tools provided. Never fabricate tool results, order ids, store information or prices.
2. Work step by step. Check store, product and schedule information with read tools before creating or changing orders.
3. If a step fails, read the error message and adjust; do not repeat a call unchanged.
4. When the request is fully handled, or cannot be completed with the available tools, reply with ###STOP### followed by a short summary.
5. Every reply before ###STOP### must contain tool calls.`

const soloSystemPromptZH = `你是一个处理书面工单的生活服务助手。当前时间是 {time}。

第一条消息包含完整的工单内容。请调用可用的工具完成工单。本次会话没有用户参与，只有工单和工具。

规则：
1. 只能使用提供的工具，禁止编造工具结果、订单号、商家信息或价格。
2. 逐步执行。创建或修改订单前，先用查询类工具核对商家、商品和时间信息。
3. 某一步失败时，阅读错误信息并调整，不要原样重复调用。
4. 工单全部处理完成，或无法用现有工具完成时，回复 ###STOP### 并附简短总结。
5. 在 ###STOP### 之前的每次回复都必须包含工具调用。`
