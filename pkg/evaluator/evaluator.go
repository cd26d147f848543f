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

// Package evaluator scores finished simulations with an odd panel of LLM
// judges and aggregates their votes into a binary reward.
package evaluator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/vitabench/vita/pkg/config"
	"github.com/vitabench/vita/pkg/llms"
	"github.com/vitabench/vita/pkg/logger"
	"github.com/vitabench/vita/pkg/model"
)

// ErrEvaluationAborted marks an evaluation where every judge failed all its
// retries. The caller must surface the abort instead of defaulting the
// reward to 0.
var ErrEvaluationAborted = errors.New("evaluation aborted")

// judgeRetries bounds the attempts per judge.
const judgeRetries = 3

// Judge is one member of the panel.
type Judge struct {
	Name   string
	Config *config.ModelConfig
}

// Evaluator runs the judge panel for one domain and evaluation type.
type Evaluator struct {
	Domain         string
	Language       string
	EvaluationType model.EvaluationType
	Judges         []Judge
	Parallel       bool

	// newProvider is swapped in tests.
	newProvider func(cfg *config.ModelConfig) llms.Provider
	rng         *rand.Rand
	rngMu       sync.Mutex
}

// New builds an evaluator over the given panel.
func New(domain, language string, evaluationType model.EvaluationType, judges []Judge, parallel bool) *Evaluator {
	return &Evaluator{
		Domain:         domain,
		Language:       language,
		EvaluationType: evaluationType,
		Judges:         judges,
		Parallel:       parallel,
		newProvider:    func(cfg *config.ModelConfig) llms.Provider { return llms.NewClient(cfg) },
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

type judgeResult struct {
	name     string
	reward   *model.RewardInfo
	attempts int
	err      error
}

// Evaluate scores one simulation. Premature terminations earn 0 without
// judging; tasks without criteria earn 1. Otherwise every judge votes, the
// votes of failed judges are adopted from randomly chosen successes, and
// the strict majority becomes the reward.
func (e *Evaluator) Evaluate(ctx context.Context, simulation model.SimulationRun, task model.Task) (*model.RewardInfo, error) {
	if simulation.TerminationReason.IsPremature() {
		return &model.RewardInfo{
			Reward: 0.0,
			Info: map[string]any{
				"note": fmt.Sprintf("Simulation terminated prematurely. Termination reason: %s", simulation.TerminationReason),
			},
		}, nil
	}
	if task.EvaluationCriteria.IsEmpty() {
		return &model.RewardInfo{
			Reward: 1.0,
			Info:   map[string]any{"note": "No evaluation criteria"},
		}, nil
	}

	if len(e.Judges) < 1 {
		return nil, fmt.Errorf("llm_evaluators must have length >= 1")
	}
	if len(e.Judges)%2 == 0 {
		return nil, fmt.Errorf("llm_evaluators must have odd length")
	}

	log := logger.GetLogger().With("domain", e.Domain, "task_id", simulation.TaskID)

	results := e.runPanel(ctx, simulation, task)

	var (
		judgeRecords        []map[string]any
		successes           []judgeResult
		failureNames        []string
		allEvaluatorDetails = map[string]any{}
	)
	for _, res := range results {
		if res.err == nil && res.reward != nil {
			vote := voteFromReward(res.reward.Reward)
			successes = append(successes, res)
			judgeRecords = append(judgeRecords, map[string]any{
				"llm_evaluator": res.name,
				"status":        "success",
				"attempts":      res.attempts,
				"reward":        res.reward.Reward,
				"vote":          vote,
			})
			allEvaluatorDetails[res.name] = map[string]any{
				"status":      "success",
				"attempts":    res.attempts,
				"reward":      res.reward.Reward,
				"vote":        vote,
				"reward_info": res.reward,
			}
			log.Info("Judge finished", "evaluator", res.name, "attempts", res.attempts,
				"reward", res.reward.Reward, "vote", vote)
		} else {
			judgeRecords = append(judgeRecords, map[string]any{
				"llm_evaluator": res.name,
				"status":        "failed",
				"attempts":      res.attempts,
				"error":         res.err.Error(),
			})
			allEvaluatorDetails[res.name] = map[string]any{
				"status":   "failed",
				"attempts": res.attempts,
				"error":    res.err.Error(),
			}
			failureNames = append(failureNames, res.name)
			log.Warn("Judge failed", "evaluator", res.name, "attempts", res.attempts, "error", res.err)
		}
	}

	if len(successes) == 0 {
		log.Error("All judges failed", "failures", len(e.Judges))
		return nil, fmt.Errorf("%w: all evaluators failed after %d retries (n=%d)",
			ErrEvaluationAborted, judgeRetries, len(e.Judges))
	}

	// Failed judges adopt the vote of a uniformly drawn success.
	var (
		replacements          []map[string]any
		finalVotes            []int
		finalVotesByEvaluator = map[string]any{}
	)
	for _, record := range judgeRecords {
		name := record["llm_evaluator"].(string)
		if record["status"] == "success" {
			vote := record["vote"].(int)
			finalVotes = append(finalVotes, vote)
			finalVotesByEvaluator[name] = vote
			continue
		}
		picked := successes[e.intn(len(successes))]
		vote := voteFromReward(picked.reward.Reward)
		finalVotes = append(finalVotes, vote)
		finalVotesByEvaluator[name] = vote
		record["replacement_picked"] = picked.name
		record["replacement_vote"] = vote
		replacements = append(replacements, map[string]any{
			"failed": name,
			"picked": picked.name,
			"vote":   vote,
		})
		if details, ok := allEvaluatorDetails[name].(map[string]any); ok {
			details["replacement_picked"] = picked.name
			details["replacement_vote"] = vote
		}
		log.Warn("Replacement vote", "failed", name, "picked", picked.name, "vote", vote)
	}

	sum := 0
	for _, vote := range finalVotes {
		sum += vote
	}
	majorityVote := 0
	if sum > len(finalVotes)/2 {
		majorityVote = 1
	}

	var chosen *judgeResult
	for i := range successes {
		if voteFromReward(successes[i].reward.Reward) == majorityVote {
			chosen = &successes[i]
			break
		}
	}
	if chosen == nil {
		// Every success disagrees with the majority, which only happens
		// when replacements flipped it. Fall back to the first success.
		chosen = &successes[0]
	}

	log.Info("Judge summary", "successes", len(successes), "failures", len(failureNames),
		"majority_vote", majorityVote, "chosen", chosen.name)

	verdict := *chosen.reward
	verdict.Reward = float64(majorityVote)
	verdict.NLRubrics = nil
	info := map[string]any{}
	for k, v := range chosen.reward.Info {
		info[k] = v
	}
	info["judge_mode"] = "majority_vote_reward"
	info["llm_evaluators"] = e.judgeNames()
	info["judge_records"] = judgeRecords
	info["replacements"] = replacements
	info["final_votes_by_evaluator"] = finalVotesByEvaluator
	info["majority_vote"] = majorityVote
	info["majority_reward"] = float64(majorityVote)
	info["failed_evaluators"] = failureNames
	info["all_evaluator_details"] = allEvaluatorDetails
	verdict.Info = info
	return &verdict, nil
}

// runPanel executes every judge, concurrently when configured, and returns
// the results in panel order.
func (e *Evaluator) runPanel(ctx context.Context, simulation model.SimulationRun, task model.Task) []judgeResult {
	results := make([]judgeResult, len(e.Judges))
	runOne := func(i int) {
		judge := e.Judges[i]
		reward, attempts, err := e.judgeWithRetries(ctx, judge, simulation, task)
		results[i] = judgeResult{name: judge.Name, reward: reward, attempts: attempts, err: err}
	}

	if e.Parallel && len(e.Judges) > 1 {
		var wg sync.WaitGroup
		for i := range e.Judges {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				runOne(i)
			}(i)
		}
		wg.Wait()
	} else {
		for i := range e.Judges {
			runOne(i)
		}
	}
	return results
}

// judgeWithRetries wraps the whole per-judge call, retrying on any error.
func (e *Evaluator) judgeWithRetries(ctx context.Context, judge Judge, simulation model.SimulationRun, task model.Task) (*model.RewardInfo, int, error) {
	var lastErr error
	for attempt := 1; attempt <= judgeRetries; attempt++ {
		reward, err := e.judgeOnce(ctx, judge, simulation, task)
		if err == nil {
			return reward, attempt, nil
		}
		lastErr = err
		logger.GetLogger().Warn("Judge attempt failed",
			"evaluator", judge.Name, "attempt", attempt, "retries", judgeRetries, "error", err)
	}
	return nil, judgeRetries, lastErr
}

func (e *Evaluator) judgeNames() []string {
	names := make([]string, len(e.Judges))
	for i, judge := range e.Judges {
		names[i] = judge.Name
	}
	return names
}

func (e *Evaluator) intn(n int) int {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	return e.rng.Intn(n)
}

// voteFromReward collapses a judge's scalar reward into a binary vote.
func voteFromReward(reward float64) int {
	if reward >= 0.5 {
		return 1
	}
	return 0
}
