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

// Package orchestrator runs simulations: the bounded step loop of one
// (task, trial) pair and the concurrent fan-out across a whole task set.
package orchestrator

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/vitabench/vita/pkg/agent"
	"github.com/vitabench/vita/pkg/environment"
	"github.com/vitabench/vita/pkg/logger"
	"github.com/vitabench/vita/pkg/model"
	"github.com/vitabench/vita/pkg/user"
	"github.com/vitabench/vita/pkg/utils"
)

// Limits bounds one simulation.
type Limits struct {
	MaxSteps    int
	MaxErrors   int
	MaxDuration time.Duration
}

// Simulation binds everything one (task, trial) execution needs. The
// environment, agent and user must be fresh: no state is shared between
// simulations.
type Simulation struct {
	Task        model.Task
	Trial       int
	Seed        int64
	Agent       agent.Agent
	User        user.User
	Environment *environment.Environment
	Limits      Limits
}

// Run drives the step loop until a terminal state and returns the full
// record. The conversation alternates user and agent turns; an agent turn
// repeats through tool-call cycles until the assistant replies without
// tool calls.
func (s *Simulation) Run(ctx context.Context) (model.SimulationRun, error) {
	log := logger.GetLogger().With("task_id", s.Task.ID, "trial", s.Trial)

	agentState, err := s.Agent.InitState(s.Task.MessageHistory)
	if err != nil {
		return model.SimulationRun{}, err
	}
	userState, err := s.User.InitState(s.Task.MessageHistory)
	if err != nil {
		return model.SimulationRun{}, err
	}
	s.Agent.SetSeed(s.Seed)
	s.User.SetSeed(s.Seed)

	if s.Limits.MaxDuration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Limits.MaxDuration)
		defer cancel()
	}

	start := time.Now()
	startStamp := utils.Now()
	trajectory := append([]model.Message(nil), s.Task.MessageHistory...)

	steps := 0
	numErrors := 0
	reason := model.TerminationReason("")

	// The task's seeded history decides who opens: the user by default,
	// the agent when the history ends with a user message.
	agentTurn := false
	var agentIncoming []model.Message
	if n := len(s.Task.MessageHistory); n > 0 && s.Task.MessageHistory[n-1].Role == model.RoleUser {
		agentTurn = true
	}

	var lastAssistant model.Message
	for reason == "" {
		if err := ctx.Err(); err != nil {
			log.Warn("Simulation deadline exceeded", "steps", steps)
			reason = model.TerminationMaxSteps
			break
		}
		// Checked at the top so a zero budget terminates before any turn.
		if steps >= s.Limits.MaxSteps {
			reason = model.TerminationMaxSteps
			break
		}

		if agentTurn {
			reply, err := s.Agent.GenerateNext(ctx, agentIncoming, agentState)
			if err != nil {
				log.Error("Agent turn failed", "error", err)
				reason = model.TerminationInvalidAgentMessage
				break
			}
			if !reply.IsValidAssistantMessage() {
				trajectory = append(trajectory, reply)
				reason = model.TerminationInvalidAgentMessage
				break
			}
			trajectory = append(trajectory, reply)
			steps++

			if reply.IsToolCall() {
				multi := s.executeToolCalls(reply.ToolCalls, &numErrors)
				trajectory = append(trajectory, multi.ToolMessages...)
				steps++
				agentIncoming = multi.ToolMessages
				if numErrors > 0 && numErrors >= s.Limits.MaxErrors {
					reason = model.TerminationTooManyErrors
					break
				}
				continue
			}

			if agent.IsStop(&reply) {
				reason = model.TerminationAgentStop
				break
			}
			lastAssistant = reply
			agentTurn = false
			continue
		}

		var incoming *model.Message
		if lastAssistant.Role != "" {
			incoming = &lastAssistant
		}
		userMessage, err := s.User.GenerateNext(ctx, incoming, userState)
		if err != nil {
			log.Error("User turn failed", "error", err)
			reason = model.TerminationTooManyErrors
			break
		}
		trajectory = append(trajectory, userMessage)
		steps++

		if user.IsStop(&userMessage) {
			reason = model.TerminationUserStop
			break
		}
		agentTurn = true
		agentIncoming = []model.Message{userMessage}
	}

	agentCost, userCost := model.CostBySide(trajectory)
	run := model.SimulationRun{
		ID:                uuid.NewString(),
		TaskID:            s.Task.ID,
		Trial:             s.Trial,
		Seed:              s.Seed,
		StartTime:         startStamp,
		EndTime:           utils.Now(),
		Duration:          time.Since(start).Seconds(),
		TerminationReason: reason,
		Messages:          trajectory,
		States:            snapshotDB(s.Environment),
		AgentCost:         agentCost,
		UserCost:          userCost,
	}
	log.Info("Simulation finished",
		"termination", reason, "steps", steps, "errors", numErrors, "duration", run.Duration)
	return run, nil
}

// executeToolCalls dispatches one assistant turn's tool calls in order.
// Failures become error tool messages and count toward the error budget.
func (s *Simulation) executeToolCalls(calls []model.ToolCall, numErrors *int) model.MultiToolMessage {
	multi := model.MultiToolMessage{ToolMessages: make([]model.Message, 0, len(calls))}
	for _, call := range calls {
		content, err := s.Environment.UseTool(call.Name, call.Arguments)
		isErr := err != nil
		if isErr {
			content = err.Error()
			*numErrors++
		}
		multi.ToolMessages = append(multi.ToolMessages, model.ToolMessage(call, content, isErr))
	}
	return multi
}

// snapshotDB captures the final database state as a plain map for the
// results file and the judges.
func snapshotDB(env *environment.Environment) map[string]any {
	encoded, err := json.Marshal(env.DB())
	if err != nil {
		logger.GetLogger().Error("Failed to snapshot database", "error", err)
		return nil
	}
	var snapshot map[string]any
	if err := json.Unmarshal(encoded, &snapshot); err != nil {
		return nil
	}
	return snapshot
}
