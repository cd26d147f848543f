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

package llms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vitabench/vita/pkg/config"
	"github.com/vitabench/vita/pkg/httpclient"
	"github.com/vitabench/vita/pkg/model"
	"github.com/vitabench/vita/pkg/utils"
)

// cachedMessageWindow is how many trailing messages get an ephemeral
// cache_control marker for prompt-caching model families.
const cachedMessageWindow = 3

// Client calls an OpenAI-compatible /chat/completions endpoint.
type Client struct {
	cfg        *config.ModelConfig
	endpoint   string
	httpClient *httpclient.Client
	counter    *utils.TokenCounter
}

// NewClient builds a Client from a model registry entry.
func NewClient(cfg *config.ModelConfig) *Client {
	timeout := time.Duration(config.DefaultLLMTimeoutSec) * time.Second
	if cfg.TimeoutSec > 0 {
		timeout = time.Duration(cfg.TimeoutSec * float64(time.Second))
	}
	// A missing encoding leaves counter nil; estimation then falls back to
	// the character heuristic.
	counter, _ := utils.NewTokenCounter(cfg.ModelID())
	return &Client{
		cfg:      cfg,
		endpoint: normalizeBaseURL(cfg.BaseURL) + "/chat/completions",
		httpClient: httpclient.New(
			httpclient.WithHTTPClient(&http.Client{Timeout: timeout}),
			httpclient.WithMaxRetries(config.DefaultMaxRetries),
			httpclient.WithBaseDelay(time.Second),
		),
		counter: counter,
	}
}

func (c *Client) ModelName() string {
	return c.cfg.ModelID()
}

// normalizeBaseURL accepts base urls with or without the completion path
// and with or without the /v1 suffix.
func normalizeBaseURL(raw string) string {
	base := strings.TrimRight(raw, "/")
	base = strings.TrimSuffix(base, "/chat/completions")
	if parsed, err := url.Parse(base); err == nil && parsed.Host != "" && (parsed.Path == "" || parsed.Path == "/") {
		base = strings.TrimRight(base, "/") + "/v1"
	}
	return base
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature *float64      `json:"temperature,omitempty"`
	MaxTokens   *int          `json:"max_tokens,omitempty"`
	Seed        *int64        `json:"seed,omitempty"`
	Tools       []chatTool    `json:"tools,omitempty"`
	ToolChoice  string        `json:"tool_choice,omitempty"`
}

type chatMessage struct {
	Role       string         `json:"role"`
	Content    any            `json:"content"`
	ToolCalls  []chatToolCall `json:"tool_calls,omitempty"`
	ToolCallID string         `json:"tool_call_id,omitempty"`
}

type chatContentPart struct {
	Type         string         `json:"type"`
	Text         string         `json:"text"`
	CacheControl map[string]any `json:"cache_control,omitempty"`
}

type chatTool struct {
	Type     string         `json:"type"`
	Function ToolDefinition `json:"function"`
}

type chatToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Function chatFunction `json:"function"`
}

type chatFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
	Usage   *chatUsage   `json:"usage,omitempty"`
	Error   *apiError    `json:"error,omitempty"`
}

type chatChoice struct {
	Message      chatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    any    `json:"code"`
}

// Generate sends the conversation and returns the assistant reply with
// usage and cost attached.
func (c *Client) Generate(ctx context.Context, messages []model.Message, tools []ToolDefinition) (model.Message, error) {
	body, err := c.buildBody(messages, tools)
	if err != nil {
		return model.Message{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return model.Message{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(body)), nil
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range c.cfg.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.Message{}, fmt.Errorf("chat completion request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.Message{}, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if apiErr := parseErrorBody(raw); apiErr != nil {
			return model.Message{}, fmt.Errorf("chat completion failed with status %d: %s", resp.StatusCode, apiErr.Message)
		}
		return model.Message{}, fmt.Errorf("chat completion failed with status %d: %s", resp.StatusCode, string(raw))
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return model.Message{}, fmt.Errorf("failed to decode response: %w", err)
	}
	if parsed.Error != nil {
		return model.Message{}, fmt.Errorf("chat completion error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return model.Message{}, fmt.Errorf("chat completion returned no choices")
	}

	msg, err := c.toMessage(parsed.Choices[0].Message, parsed.Usage, raw)
	if err != nil {
		return model.Message{}, err
	}
	if msg.Usage == nil || msg.Usage.TotalTokens == 0 {
		c.estimateUsage(messages, &msg)
	}
	return msg, nil
}

// estimateUsage fills in token counts and cost for providers that omit usage
// figures from the response.
func (c *Client) estimateUsage(prompt []model.Message, reply *model.Message) {
	var promptTokens int
	for i := range prompt {
		promptTokens += c.countMessage(&prompt[i])
	}
	completionTokens := c.countMessage(reply)

	usage := &chatUsage{
		PromptTokens:     promptTokens,
		CompletionTokens: completionTokens,
		TotalTokens:      promptTokens + completionTokens,
	}
	reply.Usage = &model.Usage{
		PromptTokens:     usage.PromptTokens,
		CompletionTokens: usage.CompletionTokens,
		TotalTokens:      usage.TotalTokens,
	}
	cost := c.computeCost(usage)
	reply.Cost = &cost
}

func (c *Client) countMessage(msg *model.Message) int {
	text := msg.Content
	for _, tc := range msg.ToolCalls {
		args, _ := json.Marshal(tc.Arguments)
		text += tc.Name + string(args)
	}
	if c.counter != nil {
		return c.counter.Count(text)
	}
	return utils.EstimateTokens(text)
}

// buildBody marshals the request, then overlays any passthrough keys from
// the model config on top.
func (c *Client) buildBody(messages []model.Message, tools []ToolDefinition) ([]byte, error) {
	request := chatRequest{
		Model:       c.cfg.ModelID(),
		Messages:    c.toWireMessages(messages),
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
		Seed:        c.cfg.Seed,
	}
	if len(tools) > 0 {
		request.Tools = make([]chatTool, len(tools))
		for i, tool := range tools {
			request.Tools[i] = chatTool{Type: "function", Function: tool}
		}
		request.ToolChoice = "auto"
	}

	encoded, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	if len(c.cfg.Extra) == 0 {
		return encoded, nil
	}

	var body map[string]any
	if err := json.Unmarshal(encoded, &body); err != nil {
		return nil, fmt.Errorf("failed to merge extra request fields: %w", err)
	}
	for k, v := range c.cfg.Extra {
		body[k] = v
	}
	return json.Marshal(body)
}

func (c *Client) toWireMessages(messages []model.Message) []chatMessage {
	wire := make([]chatMessage, len(messages))
	for i, msg := range messages {
		wm := chatMessage{
			Role:       msg.Role,
			Content:    msg.Content,
			ToolCallID: msg.ToolCallID,
		}
		for _, tc := range msg.ToolCalls {
			args, _ := json.Marshal(tc.Arguments)
			wm.ToolCalls = append(wm.ToolCalls, chatToolCall{
				ID:   tc.ID,
				Type: "function",
				Function: chatFunction{
					Name:      tc.Name,
					Arguments: string(args),
				},
			})
		}
		wire[i] = wm
	}

	if c.supportsPromptCaching() {
		start := len(wire) - cachedMessageWindow
		if start < 0 {
			start = 0
		}
		for i := start; i < len(wire); i++ {
			if text, ok := wire[i].Content.(string); ok && len(wire[i].ToolCalls) == 0 {
				wire[i].Content = []chatContentPart{{
					Type:         "text",
					Text:         text,
					CacheControl: map[string]any{"type": "ephemeral"},
				}}
			}
		}
	}
	return wire
}

func (c *Client) supportsPromptCaching() bool {
	name := strings.ToLower(c.cfg.ModelID())
	return strings.Contains(name, "claude") || strings.Contains(name, "minimax")
}

func (c *Client) toMessage(wire chatMessage, usage *chatUsage, raw []byte) (model.Message, error) {
	content, _ := wire.Content.(string)
	msg := model.Message{
		Role:    model.RoleAssistant,
		Content: content,
	}

	var rawData map[string]any
	if err := json.Unmarshal(raw, &rawData); err == nil {
		msg.RawData = rawData
	}

	for _, tc := range wire.ToolCalls {
		var args map[string]any
		if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
			return model.Message{}, fmt.Errorf("failed to parse arguments of tool call %s: %w", tc.Function.Name, err)
		}
		msg.ToolCalls = append(msg.ToolCalls, model.ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: args,
		})
	}

	if usage != nil {
		msg.Usage = &model.Usage{
			PromptTokens:     usage.PromptTokens,
			CompletionTokens: usage.CompletionTokens,
			TotalTokens:      usage.TotalTokens,
		}
		cost := c.computeCost(usage)
		msg.Cost = &cost
	}
	return msg, nil
}

// computeCost prices the call in dollars, 0 when the config carries no
// token prices.
func (c *Client) computeCost(usage *chatUsage) float64 {
	prices := c.cfg.TokenPrices
	if prices == nil || prices.PromptPrice == nil || prices.CompletionPrice == nil {
		return 0
	}
	return (*prices.PromptPrice*float64(usage.PromptTokens) +
		*prices.CompletionPrice*float64(usage.CompletionTokens)) / 1e6
}

func parseErrorBody(body []byte) *apiError {
	if len(body) == 0 {
		return nil
	}
	var wrapped struct {
		Error apiError `json:"error"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Error.Message != "" {
		return &wrapped.Error
	}
	return nil
}
