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

// Package metrics aggregates simulation rewards into the benchmark's
// pass^k, pass@k and average@k numbers.
package metrics

import (
	"fmt"
	"sort"
	"time"

	"github.com/vitabench/vita/pkg/logger"
	"github.com/vitabench/vita/pkg/model"
	"github.com/vitabench/vita/pkg/utils"
)

// AgentMetrics is the aggregated outcome of one benchmark run.
type AgentMetrics struct {
	AvgReward     float64         `json:"avg_reward"`
	PassHatKs     map[int]float64 `json:"pass_hat_ks"`
	PassAtN       map[int]float64 `json:"pass_at_n,omitempty"`
	AverageAtN    map[int]float64 `json:"average_at_n,omitempty"`
	AvgAgentCost  float64         `json:"avg_agent_cost"`
	TotalDuration float64         `json:"total_duration,omitempty"`
}

// IsSuccessful reports whether a reward counts as a solved trial.
func IsSuccessful(reward float64) bool {
	return reward == 1.0
}

// PassHatK is C(c,k)/C(n,k): the probability that k trials drawn without
// replacement from n are all successful, given c successes.
func PassHatK(numTrials, successCount, k int) (float64, error) {
	if numTrials < k {
		return 0, fmt.Errorf("number of trials %d is less than k %d", numTrials, k)
	}
	return comb(successCount, k) / comb(numTrials, k), nil
}

// PassAtK is 1 - C(n-c,k)/C(n,k): the probability that at least one of k
// drawn trials succeeded.
func PassAtK(numTrials, successCount, k int) float64 {
	if numTrials < k {
		return 0.0
	}
	if successCount > numTrials {
		return 0.0
	}
	if numTrials-successCount >= k {
		return 1.0 - comb(numTrials-successCount, k)/comb(numTrials, k)
	}
	return 1.0
}

// AverageAtK is the mean reward when at least k trials exist, else 0.
func AverageAtK(rewards []float64, k int) float64 {
	if len(rewards) < k || k == 0 {
		return 0.0
	}
	sum := 0.0
	for _, r := range rewards {
		sum += r
	}
	return sum / float64(len(rewards))
}

// comb computes the binomial coefficient C(n, k) as a float.
func comb(n, k int) float64 {
	if k < 0 || k > n {
		return 0.0
	}
	if k > n-k {
		k = n - k
	}
	result := 1.0
	for i := 1; i <= k; i++ {
		result = result * float64(n-k+i) / float64(i)
	}
	return result
}

type taskGroup struct {
	taskID  string
	rewards []float64
}

// groupByTask collects rewards per task, keeping first-seen task order. A
// run without a reward counts as 0.
func groupByTask(runs []model.SimulationRun) []taskGroup {
	index := map[string]int{}
	var groups []taskGroup
	for i := range runs {
		reward := 0.0
		if runs[i].RewardInfo != nil {
			reward = runs[i].RewardInfo.Reward
		}
		at, ok := index[runs[i].TaskID]
		if !ok {
			at = len(groups)
			index[runs[i].TaskID] = at
			groups = append(groups, taskGroup{taskID: runs[i].TaskID})
		}
		groups[at].rewards = append(groups[at].rewards, reward)
	}
	return groups
}

// Compute aggregates a run's simulations. pass^k is averaged over tasks for
// every k up to the smallest per-task trial count; pass@k and average@k go
// up to the configured trial count.
func Compute(results *model.Results) AgentMetrics {
	runs := results.Simulations
	metrics := AgentMetrics{
		PassHatKs:  map[int]float64{},
		PassAtN:    map[int]float64{},
		AverageAtN: map[int]float64{},
	}
	if len(runs) == 0 {
		return metrics
	}

	groups := groupByTask(runs)

	totalReward := 0.0
	maxK := len(groups[0].rewards)
	for _, group := range groups {
		for _, r := range group.rewards {
			totalReward += r
		}
		if len(group.rewards) < maxK {
			maxK = len(group.rewards)
		}
	}
	metrics.AvgReward = totalReward / float64(len(runs))
	if maxK < results.Info.NumTrials {
		logger.GetLogger().Warn("Fewer trials than configured for some task",
			"min_trials", maxK, "num_trials", results.Info.NumTrials)
	}

	for k := 1; k <= maxK; k++ {
		sum := 0.0
		for _, group := range groups {
			value, err := PassHatK(len(group.rewards), successCount(group.rewards), k)
			if err != nil {
				continue
			}
			sum += value
		}
		metrics.PassHatKs[k] = sum / float64(len(groups))
	}

	for k := 1; k <= results.Info.NumTrials; k++ {
		var passValues, avgValues []float64
		for _, group := range groups {
			if len(group.rewards) < k {
				continue
			}
			passValues = append(passValues, PassAtK(len(group.rewards), successCount(group.rewards), k))
			avgValues = append(avgValues, AverageAtK(group.rewards, k))
		}
		if len(passValues) > 0 {
			metrics.PassAtN[k] = mean(passValues)
		}
		if len(avgValues) > 0 {
			metrics.AverageAtN[k] = mean(avgValues)
		}
	}

	costSum := 0.0
	for i := range runs {
		if runs[i].AgentCost != nil {
			costSum += *runs[i].AgentCost
		}
	}
	metrics.AvgAgentCost = costSum / float64(len(runs))
	metrics.TotalDuration = totalDuration(runs)
	return metrics
}

// totalDuration is max(end) - min(start) over the run timestamps, falling
// back to summed per-simulation durations when any timestamp fails to
// parse.
func totalDuration(runs []model.SimulationRun) float64 {
	var earliest, latest time.Time
	for i := range runs {
		start, err1 := time.Parse(utils.TimestampLayout, runs[i].StartTime)
		end, err2 := time.Parse(utils.TimestampLayout, runs[i].EndTime)
		if err1 != nil || err2 != nil {
			logger.GetLogger().Warn("Failed to parse simulation timestamps, summing durations",
				"simulation", runs[i].ID)
			sum := 0.0
			for j := range runs {
				sum += runs[j].Duration
			}
			return sum
		}
		if i == 0 || start.Before(earliest) {
			earliest = start
		}
		if i == 0 || end.After(latest) {
			latest = end
		}
	}
	return latest.Sub(earliest).Seconds()
}

func successCount(rewards []float64) int {
	count := 0
	for _, r := range rewards {
		if IsSuccessful(r) {
			count++
		}
	}
	return count
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Display prints the metrics in reading order.
func Display(metrics AgentMetrics) {
	fmt.Printf("Average reward: %v\n", metrics.AvgReward)
	fmt.Println("Pass^k")
	for _, k := range sortedKeys(metrics.PassHatKs) {
		fmt.Printf("  k=%d: %.4f\n", k, metrics.PassHatKs[k])
	}
	if len(metrics.PassAtN) > 0 {
		fmt.Println("Pass@k")
		for _, k := range sortedKeys(metrics.PassAtN) {
			fmt.Printf("  k=%d: %.4f\n", k, metrics.PassAtN[k])
		}
	}
	if len(metrics.AverageAtN) > 0 {
		fmt.Println("Average@k")
		for _, k := range sortedKeys(metrics.AverageAtN) {
			fmt.Printf("  k=%d: %.4f\n", k, metrics.AverageAtN[k])
		}
	}
	fmt.Printf("Average agent cost: %v\n", metrics.AvgAgentCost)
	if metrics.TotalDuration > 0 {
		fmt.Printf("Total duration: %.2fmin\n", metrics.TotalDuration/60)
	}
}

func sortedKeys(m map[int]float64) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
