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
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitabench/vita/pkg/config"
	"github.com/vitabench/vita/pkg/llms"
	"github.com/vitabench/vita/pkg/model"
)

type providerFunc func(ctx context.Context, messages []model.Message, tools []llms.ToolDefinition) (model.Message, error)

func (f providerFunc) Generate(ctx context.Context, messages []model.Message, tools []llms.ToolDefinition) (model.Message, error) {
	return f(ctx, messages, tools)
}

func (f providerFunc) ModelName() string { return "fake" }

// verdicts maps judge name to either a reward value or an error.
func newPanelEvaluator(verdicts map[string]any) *Evaluator {
	judges := make([]Judge, 0, len(verdicts))
	for _, name := range []string{"judge-a", "judge-b", "judge-c"} {
		if _, ok := verdicts[name]; ok {
			judges = append(judges, Judge{Name: name, Config: &config.ModelConfig{Name: name}})
		}
	}
	e := New("delivery", "english", model.EvalTrajectory, judges, false)
	e.newProvider = func(cfg *config.ModelConfig) llms.Provider {
		return providerFunc(func(context.Context, []model.Message, []llms.ToolDefinition) (model.Message, error) {
			switch v := verdicts[cfg.Name].(type) {
			case error:
				return model.Message{}, v
			case float64:
				return model.AssistantMessage(fmt.Sprintf(`{"reward": %v, "explanation": "ok"}`, v)), nil
			}
			return model.Message{}, errors.New("no verdict configured")
		})
	}
	return e
}

func judgedTask() model.Task {
	return model.Task{
		ID:           "t1",
		Domain:       "delivery",
		Instructions: "Order lunch for the user.",
		EvaluationCriteria: &model.EvaluationCriteria{
			OverallRubrics: []string{"a delivery order was created and paid"},
		},
	}
}

func finishedRun() model.SimulationRun {
	return model.SimulationRun{
		ID:                "sim-1",
		TaskID:            "t1",
		TerminationReason: model.TerminationUserStop,
		Messages: []model.Message{
			model.UserMessage("I want lunch"),
			model.AssistantMessage("Done."),
		},
	}
}

func TestPrematureTerminationScoresZero(t *testing.T) {
	e := newPanelEvaluator(map[string]any{"judge-a": 1.0})
	run := finishedRun()
	run.TerminationReason = model.TerminationTooManyErrors

	reward, err := e.Evaluate(context.Background(), run, judgedTask())
	require.NoError(t, err)
	assert.Equal(t, 0.0, reward.Reward)
	assert.Equal(t, "Simulation terminated prematurely. Termination reason: too_many_errors", reward.Info["note"])
}

func TestNoCriteriaScoresOne(t *testing.T) {
	e := newPanelEvaluator(map[string]any{"judge-a": 0.0})
	task := judgedTask()
	task.EvaluationCriteria = nil

	reward, err := e.Evaluate(context.Background(), finishedRun(), task)
	require.NoError(t, err)
	assert.Equal(t, 1.0, reward.Reward)
	assert.Equal(t, "No evaluation criteria", reward.Info["note"])
}

func TestPanelSizeChecks(t *testing.T) {
	e := newPanelEvaluator(map[string]any{})
	_, err := e.Evaluate(context.Background(), finishedRun(), judgedTask())
	assert.EqualError(t, err, "llm_evaluators must have length >= 1")

	e = newPanelEvaluator(map[string]any{"judge-a": 1.0, "judge-b": 1.0})
	_, err = e.Evaluate(context.Background(), finishedRun(), judgedTask())
	assert.EqualError(t, err, "llm_evaluators must have odd length")
}

func TestMajorityVote(t *testing.T) {
	e := newPanelEvaluator(map[string]any{"judge-a": 1.0, "judge-b": 0.0, "judge-c": 1.0})

	reward, err := e.Evaluate(context.Background(), finishedRun(), judgedTask())
	require.NoError(t, err)
	assert.Equal(t, 1.0, reward.Reward)
	assert.Nil(t, reward.NLRubrics)
	assert.Equal(t, 1, reward.Info["majority_vote"])
	assert.Equal(t, []string{"judge-a", "judge-b", "judge-c"}, reward.Info["llm_evaluators"])
	assert.Len(t, reward.Info["judge_records"], 3)
	assert.Empty(t, reward.Info["failed_evaluators"])

	votes := reward.Info["final_votes_by_evaluator"].(map[string]any)
	assert.Equal(t, 1, votes["judge-a"])
	assert.Equal(t, 0, votes["judge-b"])
}

func TestMajorityVoteRejects(t *testing.T) {
	e := newPanelEvaluator(map[string]any{"judge-a": 0.0, "judge-b": 0.0, "judge-c": 1.0})

	reward, err := e.Evaluate(context.Background(), finishedRun(), judgedTask())
	require.NoError(t, err)
	assert.Equal(t, 0.0, reward.Reward)
	assert.Equal(t, 0, reward.Info["majority_vote"])
}

func TestFailedJudgeAdoptsReplacementVote(t *testing.T) {
	e := newPanelEvaluator(map[string]any{
		"judge-a": 1.0,
		"judge-b": errors.New("boom"),
		"judge-c": 1.0,
	})

	reward, err := e.Evaluate(context.Background(), finishedRun(), judgedTask())
	require.NoError(t, err)
	assert.Equal(t, 1.0, reward.Reward)
	assert.Equal(t, []string{"judge-b"}, reward.Info["failed_evaluators"])

	replacements := reward.Info["replacements"].([]map[string]any)
	require.Len(t, replacements, 1)
	assert.Equal(t, "judge-b", replacements[0]["failed"])
	assert.Equal(t, 1, replacements[0]["vote"])

	// Both surviving judges vote 1, the replacement follows.
	votes := reward.Info["final_votes_by_evaluator"].(map[string]any)
	assert.Equal(t, 1, votes["judge-b"])
}

func TestAllJudgesFailAbortsEvaluation(t *testing.T) {
	e := newPanelEvaluator(map[string]any{"judge-a": errors.New("boom")})

	_, err := e.Evaluate(context.Background(), finishedRun(), judgedTask())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEvaluationAborted))
	assert.ErrorContains(t, err, "all evaluators failed after 3 retries (n=1)")
}

func TestEvaluateAll(t *testing.T) {
	e := newPanelEvaluator(map[string]any{"judge-a": 1.0})
	runs := []model.SimulationRun{finishedRun()}
	runs[0].TerminationReason = model.TerminationMaxSteps

	err := e.EvaluateAll(context.Background(), runs, []model.Task{judgedTask()}, 2)
	require.NoError(t, err)
	require.NotNil(t, runs[0].RewardInfo)
	assert.Equal(t, 0.0, runs[0].RewardInfo.Reward)
}

func TestEvaluateAllAbortLeavesRewardNil(t *testing.T) {
	e := newPanelEvaluator(map[string]any{"judge-a": errors.New("boom")})
	runs := []model.SimulationRun{finishedRun()}

	err := e.EvaluateAll(context.Background(), runs, []model.Task{judgedTask()}, 2)
	require.NoError(t, err)
	assert.Nil(t, runs[0].RewardInfo)
}

func TestEvaluateAllUnknownTask(t *testing.T) {
	e := newPanelEvaluator(map[string]any{"judge-a": 1.0})
	runs := []model.SimulationRun{finishedRun()}

	err := e.EvaluateAll(context.Background(), runs, nil, 2)
	assert.ErrorContains(t, err, `no task "t1"`)
}

func TestParseVerdict(t *testing.T) {
	reward, err := parseVerdict("Sure, here is my verdict:\n```json\n" +
		`{"reward": 1.0, "explanation": "done", "rubric_results": [{"rubric": "paid", "satisfied": true, "reason": "yes"}]}` +
		"\n```")
	require.NoError(t, err)
	assert.Equal(t, 1.0, reward.Reward)
	assert.Equal(t, "done", reward.Info["explanation"])
	require.Len(t, reward.NLRubrics, 1)
	assert.Equal(t, "paid: satisfied=true (yes)", reward.NLRubrics[0])

	_, err = parseVerdict("no verdict here")
	assert.ErrorContains(t, err, "no JSON verdict")

	_, err = parseVerdict(`{"reward": 2.0}`)
	assert.ErrorContains(t, err, "out of [0, 1]")
}

func TestRenderTrajectory(t *testing.T) {
	rendered := renderTrajectory([]model.Message{
		model.SystemMessage("hidden"),
		model.UserMessage("hi"),
		{Role: model.RoleAssistant, ToolCalls: []model.ToolCall{
			{ID: "1", Name: "weather", Arguments: map[string]any{"address": "Hangzhou"}},
		}},
		{Role: model.RoleTool, Name: "weather", Content: "sunny"},
		model.AssistantMessage("It is sunny."),
	})
	assert.NotContains(t, rendered, "hidden")
	assert.Contains(t, rendered, "user: hi")
	assert.Contains(t, rendered, `assistant (tool calls): weather({"address":"Hangzhou"})`)
	assert.Contains(t, rendered, "tool [weather]: sunny")
	assert.Contains(t, rendered, "assistant: It is sunny.")
}

func TestJudgePromptWindowing(t *testing.T) {
	var prompts []string
	judges := []Judge{{Name: "judge-a", Config: &config.ModelConfig{Name: "judge-a"}}}
	e := New("delivery", "english", model.EvalTrajectorySlidingNoRub, judges, false)
	e.newProvider = func(cfg *config.ModelConfig) llms.Provider {
		return providerFunc(func(_ context.Context, messages []model.Message, _ []llms.ToolDefinition) (model.Message, error) {
			prompts = append(prompts, messages[1].Content)
			return model.AssistantMessage(`{"reward": 1.0}`), nil
		})
	}

	run := finishedRun()
	run.Messages = nil
	for i := 0; i < 50; i++ {
		run.Messages = append(run.Messages, model.UserMessage(fmt.Sprintf("message %d", i)))
	}

	_, err := e.Evaluate(context.Background(), run, judgedTask())
	require.NoError(t, err)
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "(earlier turns omitted, showing the last 40 messages)")
	assert.NotContains(t, prompts[0], "message 9\n")
	assert.Contains(t, prompts[0], "message 10")
	// The sliding no-rubric type hides the criteria.
	assert.NotContains(t, prompts[0], "# Evaluation criteria")
}
