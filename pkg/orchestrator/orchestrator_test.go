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

package orchestrator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitabench/vita/pkg/agent"
	"github.com/vitabench/vita/pkg/domains/delivery"
	"github.com/vitabench/vita/pkg/environment"
	"github.com/vitabench/vita/pkg/model"
	"github.com/vitabench/vita/pkg/user"
)

type scriptedAgent struct {
	replies []model.Message
	idx     int
	seed    int64
}

func (a *scriptedAgent) InitState(history []model.Message) (*agent.State, error) {
	return &agent.State{Messages: append([]model.Message(nil), history...)}, nil
}

func (a *scriptedAgent) GenerateNext(_ context.Context, incoming []model.Message, state *agent.State) (model.Message, error) {
	state.Messages = append(state.Messages, incoming...)
	if a.idx >= len(a.replies) {
		return model.Message{}, errors.New("agent script exhausted")
	}
	reply := a.replies[a.idx]
	a.idx++
	state.Messages = append(state.Messages, reply)
	return reply, nil
}

func (a *scriptedAgent) SetSeed(seed int64) { a.seed = seed }

type scriptedUser struct {
	replies []model.Message
	idx     int
	seed    int64
}

func (u *scriptedUser) InitState(history []model.Message) (*user.State, error) {
	return &user.State{Messages: append([]model.Message(nil), history...)}, nil
}

func (u *scriptedUser) GenerateNext(_ context.Context, incoming *model.Message, state *user.State) (model.Message, error) {
	if u.idx >= len(u.replies) {
		return model.Message{}, errors.New("user script exhausted")
	}
	reply := u.replies[u.idx]
	u.idx++
	return reply, nil
}

func (u *scriptedUser) SetSeed(seed int64) { u.seed = seed }

func newDeliveryEnv(t *testing.T) *environment.Environment {
	t.Helper()
	env, err := delivery.NewEnvironment(map[string]any{
		"time": "2025-07-05 10:00:00", "user_id": "u1",
	}, "english")
	require.NoError(t, err)
	return env
}

func newSimulation(t *testing.T, a agent.Agent, u user.User, history []model.Message) *Simulation {
	t.Helper()
	return &Simulation{
		Task:        model.Task{ID: "t1", Domain: "delivery", MessageHistory: history},
		Trial:       0,
		Seed:        300,
		Agent:       a,
		User:        u,
		Environment: newDeliveryEnv(t),
		Limits:      Limits{MaxSteps: 20, MaxErrors: 3},
	}
}

func TestRunUserStop(t *testing.T) {
	a := &scriptedAgent{replies: []model.Message{
		model.AssistantMessage("Hello! What can I do for you?"),
	}}
	u := &scriptedUser{replies: []model.Message{
		model.UserMessage("Hi, just checking in."),
		model.UserMessage(user.StopToken),
	}}
	sim := newSimulation(t, a, u, nil)

	run, err := sim.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.TerminationUserStop, run.TerminationReason)
	require.Len(t, run.Messages, 3)
	assert.Equal(t, model.RoleUser, run.Messages[0].Role)
	assert.Equal(t, model.RoleAssistant, run.Messages[1].Role)
	assert.Equal(t, model.RoleUser, run.Messages[2].Role)

	assert.Equal(t, "t1", run.TaskID)
	assert.Equal(t, int64(300), run.Seed)
	assert.Equal(t, int64(300), a.seed)
	assert.Equal(t, int64(300), u.seed)
	assert.NotEmpty(t, run.ID)
	assert.NotNil(t, run.States)
}

func TestRunAgentOpensOnSeededHistory(t *testing.T) {
	history := []model.Message{model.UserMessage("Please order my usual lunch.")}
	a := &scriptedAgent{replies: []model.Message{
		model.AssistantMessage(agent.StopToken + " nothing to do"),
	}}
	// The user script stays untouched when the agent stops first.
	u := &scriptedUser{}
	sim := newSimulation(t, a, u, history)

	run, err := sim.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.TerminationAgentStop, run.TerminationReason)
	assert.Equal(t, 0, u.idx)
	// Trajectory keeps the seeded history in front.
	require.Len(t, run.Messages, 2)
	assert.Equal(t, "Please order my usual lunch.", run.Messages[0].Content)
}

func TestRunToolCallCycle(t *testing.T) {
	a := &scriptedAgent{replies: []model.Message{
		{Role: model.RoleAssistant, ToolCalls: []model.ToolCall{
			{ID: "1", Name: "get_user_all_orders", Arguments: map[string]any{}},
		}},
		model.AssistantMessage("You have no orders yet."),
	}}
	u := &scriptedUser{replies: []model.Message{
		model.UserMessage("Do I have any orders?"),
		model.UserMessage(user.StopToken),
	}}
	sim := newSimulation(t, a, u, nil)

	run, err := sim.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.TerminationUserStop, run.TerminationReason)

	// user, tool-call turn, tool response, assistant text, user stop.
	require.Len(t, run.Messages, 5)
	assert.True(t, run.Messages[1].IsToolCall())
	assert.Equal(t, model.RoleTool, run.Messages[2].Role)
	assert.Equal(t, "User currently has no order information", run.Messages[2].Content)
	assert.False(t, run.Messages[2].Error)
}

func TestRunTooManyToolErrors(t *testing.T) {
	badCall := model.Message{Role: model.RoleAssistant, ToolCalls: []model.ToolCall{
		{ID: "1", Name: "teleport", Arguments: map[string]any{}},
	}}
	a := &scriptedAgent{replies: []model.Message{badCall, badCall, badCall}}
	u := &scriptedUser{replies: []model.Message{model.UserMessage("go")}}
	sim := newSimulation(t, a, u, nil)
	sim.Limits.MaxErrors = 3

	run, err := sim.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.TerminationTooManyErrors, run.TerminationReason)

	var toolErrors int
	for _, m := range run.Messages {
		if m.Role == model.RoleTool && m.Error {
			toolErrors++
			assert.Equal(t, "Tool 'teleport' not found.", m.Content)
		}
	}
	assert.Equal(t, 3, toolErrors)
}

func TestRunMaxSteps(t *testing.T) {
	u := &scriptedUser{replies: []model.Message{model.UserMessage("hello")}}
	sim := newSimulation(t, &scriptedAgent{}, u, nil)
	sim.Limits.MaxSteps = 1

	run, err := sim.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.TerminationMaxSteps, run.TerminationReason)
	assert.Len(t, run.Messages, 1)
}

func TestRunZeroMaxSteps(t *testing.T) {
	// A zero step budget terminates before either side takes a turn.
	u := &scriptedUser{replies: []model.Message{model.UserMessage("hello")}}
	sim := newSimulation(t, &scriptedAgent{}, u, nil)
	sim.Limits.MaxSteps = 0

	run, err := sim.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.TerminationMaxSteps, run.TerminationReason)
	assert.Empty(t, run.Messages)
	assert.Equal(t, 0, u.idx)
}

func TestRunZeroMaxErrors(t *testing.T) {
	// With a zero error budget the first tool failure terminates the run.
	a := &scriptedAgent{replies: []model.Message{
		{Role: model.RoleAssistant, ToolCalls: []model.ToolCall{
			{ID: "1", Name: "teleport", Arguments: map[string]any{}},
		}},
	}}
	u := &scriptedUser{replies: []model.Message{model.UserMessage("go")}}
	sim := newSimulation(t, a, u, nil)
	sim.Limits.MaxErrors = 0

	run, err := sim.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.TerminationTooManyErrors, run.TerminationReason)
	// user, tool-call turn, the single error tool response.
	require.Len(t, run.Messages, 3)
	assert.True(t, run.Messages[2].Error)
}

func TestRunZeroMaxErrorsAllowsCleanToolCalls(t *testing.T) {
	// A zero error budget only bites on failures; successful tool calls run.
	a := &scriptedAgent{replies: []model.Message{
		{Role: model.RoleAssistant, ToolCalls: []model.ToolCall{
			{ID: "1", Name: "get_user_all_orders", Arguments: map[string]any{}},
		}},
		model.AssistantMessage("You have no orders yet."),
	}}
	u := &scriptedUser{replies: []model.Message{
		model.UserMessage("Do I have any orders?"),
		model.UserMessage(user.StopToken),
	}}
	sim := newSimulation(t, a, u, nil)
	sim.Limits.MaxErrors = 0

	run, err := sim.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.TerminationUserStop, run.TerminationReason)
	require.Len(t, run.Messages, 5)
	assert.False(t, run.Messages[2].Error)
}

func TestRunInvalidAgentMessage(t *testing.T) {
	a := &scriptedAgent{replies: []model.Message{
		{Role: model.RoleAssistant, Content: "   "},
	}}
	u := &scriptedUser{replies: []model.Message{model.UserMessage("hi")}}
	sim := newSimulation(t, a, u, nil)

	run, err := sim.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.TerminationInvalidAgentMessage, run.TerminationReason)
}

func TestRunAgentErrorTerminates(t *testing.T) {
	// An exhausted script surfaces as a generation error.
	a := &scriptedAgent{}
	u := &scriptedUser{replies: []model.Message{model.UserMessage("hi")}}
	sim := newSimulation(t, a, u, nil)

	run, err := sim.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.TerminationInvalidAgentMessage, run.TerminationReason)
}

func TestRunUserErrorTerminates(t *testing.T) {
	sim := newSimulation(t, &scriptedAgent{}, &scriptedUser{}, nil)

	run, err := sim.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.TerminationTooManyErrors, run.TerminationReason)
}

func TestRunAll(t *testing.T) {
	tasks := []model.Task{
		{ID: "t1", Domain: "delivery"},
		{ID: "t2", Domain: "delivery"},
	}
	var seeds []int64
	build := func(task model.Task, trial int, seed int64) (*Simulation, error) {
		seeds = append(seeds, seed)
		return &Simulation{
			Task:  task,
			Trial: trial,
			Seed:  seed,
			Agent: &scriptedAgent{replies: []model.Message{
				model.AssistantMessage("hello"),
			}},
			User: &scriptedUser{replies: []model.Message{
				model.UserMessage("hi"),
				model.UserMessage(user.StopToken),
			}},
			Environment: newDeliveryEnv(t),
			Limits:      Limits{MaxSteps: 10, MaxErrors: 3},
		}, nil
	}

	runs, err := RunAll(context.Background(), tasks, 2, 300, 1, build)
	require.NoError(t, err)
	require.Len(t, runs, 4)
	assert.Equal(t, "t1", runs[0].TaskID)
	assert.Equal(t, 0, runs[0].Trial)
	assert.Equal(t, int64(300), runs[0].Seed)
	assert.Equal(t, "t1", runs[1].TaskID)
	assert.Equal(t, int64(301), runs[1].Seed)
	assert.Equal(t, "t2", runs[2].TaskID)
	assert.ElementsMatch(t, []int64{300, 301, 300, 301}, seeds)
}
