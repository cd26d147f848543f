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

// TerminationReason says why a simulation ended.
type TerminationReason string

const (
	TerminationCompleted           TerminationReason = "completed"
	TerminationUserStop            TerminationReason = "user_stop"
	TerminationAgentStop           TerminationReason = "agent_stop"
	TerminationMaxSteps            TerminationReason = "max_steps"
	TerminationTooManyErrors       TerminationReason = "too_many_errors"
	TerminationInvalidAgentMessage TerminationReason = "invalid_agent_message"
)

// IsPremature reports whether the reason forces reward 0 without judging.
func (t TerminationReason) IsPremature() bool {
	switch t {
	case TerminationTooManyErrors, TerminationMaxSteps, TerminationInvalidAgentMessage:
		return true
	}
	return false
}

// EvaluationType selects how the judge prompt is built and which slice of the
// trajectory it sees.
type EvaluationType string

const (
	EvalTrajectory             EvaluationType = "trajectory"
	EvalTrajectoryFullRubric   EvaluationType = "trajectory_full_traj_rubric"
	EvalTrajectorySlidingNoRub EvaluationType = "trajectory_sliding_wo_rubric"
	EvalTrajectoryFullNoRub    EvaluationType = "trajectory_full_traj_wo_rubric"
)

// RewardInfo is the evaluator's verdict for one simulation.
type RewardInfo struct {
	Reward    float64        `json:"reward"`
	NLRubrics []string       `json:"nl_rubrics,omitempty"`
	Info      map[string]any `json:"info,omitempty"`
}

// SimulationRun is the full record of one (task, trial) execution.
type SimulationRun struct {
	ID                string            `json:"id"`
	TaskID            string            `json:"task_id"`
	Trial             int               `json:"trial"`
	Seed              int64             `json:"seed"`
	StartTime         string            `json:"start_time"`
	EndTime           string            `json:"end_time"`
	Duration          float64           `json:"duration"`
	TerminationReason TerminationReason `json:"termination_reason"`
	Messages          []Message         `json:"messages"`
	States            map[string]any    `json:"states,omitempty"`
	RewardInfo        *RewardInfo       `json:"reward_info,omitempty"`
	AgentCost         *float64          `json:"agent_cost,omitempty"`
	UserCost          *float64          `json:"user_cost,omitempty"`
}

// AgentInfo describes the agent driver used for a run.
type AgentInfo struct {
	Implementation string         `json:"implementation"`
	LLM            string         `json:"llm"`
	LLMArgs        map[string]any `json:"llm_args,omitempty"`
}

// UserInfo describes the user simulator used for a run.
type UserInfo struct {
	Implementation string         `json:"implementation"`
	LLM            string         `json:"llm"`
	LLMArgs        map[string]any `json:"llm_args,omitempty"`
}

// EnvironmentInfo describes the domain environment used for a run.
type EnvironmentInfo struct {
	DomainName string         `json:"domain_name"`
	Statistics map[string]any `json:"statistics,omitempty"`
}

// RunInfo is the run-level header of a results file.
type RunInfo struct {
	GitCommit       string          `json:"git_commit"`
	Seed            int64           `json:"seed"`
	MaxSteps        int             `json:"max_steps"`
	MaxErrors       int             `json:"max_errors"`
	NumTrials       int             `json:"num_trials"`
	Language        string          `json:"language"`
	EnvironmentInfo EnvironmentInfo `json:"environment_info"`
	AgentInfo       AgentInfo       `json:"agent_info"`
	UserInfo        UserInfo        `json:"user_info"`
}

// Results is the top-level document dumped at the end of a run.
type Results struct {
	Timestamp   string          `json:"timestamp"`
	Info        RunInfo         `json:"info"`
	Tasks       []Task          `json:"tasks"`
	Simulations []SimulationRun `json:"simulations"`
}
