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

package evaluator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vitabench/vita/pkg/model"
)

// judgeWindowSize is how many trailing messages the windowed evaluation
// types show the judge.
const judgeWindowSize = 40

// judgeOnce performs one judge LLM call and parses the verdict.
func (e *Evaluator) judgeOnce(ctx context.Context, judge Judge, simulation model.SimulationRun, task model.Task) (*model.RewardInfo, error) {
	provider := e.newProvider(judge.Config)

	windowed := e.EvaluationType == model.EvalTrajectory || e.EvaluationType == model.EvalTrajectorySlidingNoRub
	withRubrics := e.EvaluationType == model.EvalTrajectory || e.EvaluationType == model.EvalTrajectoryFullRubric

	messages := simulation.Messages
	truncated := false
	if windowed && len(messages) > judgeWindowSize {
		messages = messages[len(messages)-judgeWindowSize:]
		truncated = true
	}

	var prompt strings.Builder
	prompt.WriteString("# Task\n")
	if task.Instructions != "" {
		prompt.WriteString(task.Instructions)
		prompt.WriteString("\n\n")
	}
	if profile, err := json.Marshal(task.UserScenario.UserProfile); err == nil && len(task.UserScenario.UserProfile) > 0 {
		fmt.Fprintf(&prompt, "User profile:\n%s\n\n", profile)
	}

	if withRubrics {
		prompt.WriteString("# Evaluation criteria\n")
		for _, rubric := range collectRubrics(task.EvaluationCriteria) {
			fmt.Fprintf(&prompt, "- %s\n", rubric)
		}
		if expected := expectedStatesJSON(task.EvaluationCriteria); expected != "" {
			fmt.Fprintf(&prompt, "\nExpected final states:\n%s\n", expected)
		}
		prompt.WriteString("\n")
	}

	prompt.WriteString("# Conversation\n")
	if truncated {
		fmt.Fprintf(&prompt, "(earlier turns omitted, showing the last %d messages)\n", judgeWindowSize)
	}
	prompt.WriteString(renderTrajectory(messages))
	prompt.WriteString("\n\n# Final database state\n")
	if state, err := json.Marshal(simulation.States); err == nil {
		prompt.Write(state)
	}

	system := judgeSystemPromptRubric
	if !withRubrics {
		system = judgeSystemPromptNoRubric
	}

	reply, err := provider.Generate(ctx, []model.Message{
		model.SystemMessage(system),
		model.UserMessage(prompt.String()),
	}, nil)
	if err != nil {
		return nil, err
	}
	return parseVerdict(reply.Content)
}

type judgeVerdict struct {
	Reward        float64 `json:"reward"`
	Explanation   string  `json:"explanation"`
	RubricResults []struct {
		Rubric    string `json:"rubric"`
		Satisfied bool   `json:"satisfied"`
		Reason    string `json:"reason"`
	} `json:"rubric_results"`
}

// parseVerdict extracts the JSON verdict from the judge's reply, tolerating
// surrounding prose and code fences.
func parseVerdict(content string) (*model.RewardInfo, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("judge response contains no JSON verdict: %q", content)
	}

	var verdict judgeVerdict
	if err := json.Unmarshal([]byte(content[start:end+1]), &verdict); err != nil {
		return nil, fmt.Errorf("failed to parse judge verdict: %w", err)
	}
	if verdict.Reward < 0 || verdict.Reward > 1 {
		return nil, fmt.Errorf("judge reward %v out of [0, 1]", verdict.Reward)
	}

	info := map[string]any{}
	if verdict.Explanation != "" {
		info["explanation"] = verdict.Explanation
	}
	var rubrics []string
	for _, r := range verdict.RubricResults {
		rubrics = append(rubrics, fmt.Sprintf("%s: satisfied=%t (%s)", r.Rubric, r.Satisfied, r.Reason))
	}
	return &model.RewardInfo{Reward: verdict.Reward, NLRubrics: rubrics, Info: info}, nil
}

// renderTrajectory flattens messages into the judge-readable transcript.
func renderTrajectory(messages []model.Message) string {
	var b strings.Builder
	for i := range messages {
		m := &messages[i]
		switch {
		case m.Role == model.RoleSystem:
			continue
		case m.IsToolCall():
			calls := make([]string, len(m.ToolCalls))
			for j, call := range m.ToolCalls {
				calls[j] = call.String()
			}
			fmt.Fprintf(&b, "assistant (tool calls): %s\n", strings.Join(calls, "; "))
			if m.HasTextContent() {
				fmt.Fprintf(&b, "assistant: %s\n", m.Content)
			}
		case m.Role == model.RoleTool:
			fmt.Fprintf(&b, "tool [%s]: %s\n", m.Name, m.Content)
		default:
			fmt.Fprintf(&b, "%s: %s\n", m.Role, m.Content)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// collectRubrics merges overall and per-state rubrics in task order.
func collectRubrics(criteria *model.EvaluationCriteria) []string {
	if criteria == nil {
		return nil
	}
	var rubrics []string
	for _, state := range criteria.ExpectedStates {
		rubrics = append(rubrics, state.StateRubrics...)
	}
	rubrics = append(rubrics, criteria.OverallRubrics...)
	return rubrics
}

func expectedStatesJSON(criteria *model.EvaluationCriteria) string {
	if criteria == nil || len(criteria.ExpectedStates) == 0 {
		return ""
	}
	type expectedOrders struct {
		RequiredOrders []any         `json:"required_orders,omitempty"`
		OptionalOrders []model.Order `json:"optional_orders,omitempty"`
	}
	states := make([]expectedOrders, 0, len(criteria.ExpectedStates))
	for _, state := range criteria.ExpectedStates {
		if len(state.RequiredOrders) == 0 && len(state.OptionalOrders) == 0 {
			continue
		}
		states = append(states, expectedOrders{
			RequiredOrders: state.RequiredOrders,
			OptionalOrders: state.OptionalOrders,
		})
	}
	if len(states) == 0 {
		return ""
	}
	encoded, err := json.Marshal(states)
	if err != nil {
		return ""
	}
	return string(encoded)
}

const judgeSystemPromptRubric = `You are a strict quality judge for a life-service assistant. You receive the task, the evaluation criteria, the conversation between the simulated user and the assistant, and the final database state.

Judge whether the assistant completed the task correctly: every criterion must be satisfied and the final database state must match the expected states (order ids may differ, compare the listed fields).

Reply with a JSON object and nothing else:
{"reward": <1.0 if the task was completed correctly, else 0.0>, "explanation": "<short reasoning>", "rubric_results": [{"rubric": "<criterion>", "satisfied": <true|false>, "reason": "<short reason>"}]}`

const judgeSystemPromptNoRubric = `You are a strict quality judge for a life-service assistant. You receive the task, the conversation between the simulated user and the assistant, and the final database state.

No explicit criteria are given: infer from the task and the user's requests what a correct completion requires, then judge whether the assistant achieved it without fabricating information or violating the user's constraints.

Reply with a JSON object and nothing else:
{"reward": <1.0 if the task was completed correctly, else 0.0>, "explanation": "<short reasoning>"}`
