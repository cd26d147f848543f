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

package metrics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitabench/vita/pkg/model"
)

func runWithReward(taskID string, trial int, reward float64) model.SimulationRun {
	return model.SimulationRun{
		ID:                fmt.Sprintf("%s-%d", taskID, trial),
		TaskID:            taskID,
		Trial:             trial,
		TerminationReason: model.TerminationUserStop,
		RewardInfo:        &model.RewardInfo{Reward: reward},
	}
}

func TestPassHatK(t *testing.T) {
	// All trials successful.
	v, err := PassHatK(4, 4, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	// C(2,2)/C(4,2) = 1/6.
	v, err = PassHatK(4, 2, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/6.0, v, 1e-12)

	// No successes.
	v, err = PassHatK(3, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	_, err = PassHatK(2, 1, 3)
	assert.EqualError(t, err, "number of trials 2 is less than k 3")
}

func TestPassAtK(t *testing.T) {
	// 1 - C(2,2)/C(4,2) = 5/6.
	assert.InDelta(t, 5.0/6.0, PassAtK(4, 2, 2), 1e-12)
	assert.Equal(t, 0.0, PassAtK(4, 0, 2))
	// Fewer failures than k means success is guaranteed.
	assert.Equal(t, 1.0, PassAtK(4, 3, 2))
	assert.Equal(t, 1.0, PassAtK(4, 4, 1))
	// Degenerate inputs.
	assert.Equal(t, 0.0, PassAtK(2, 1, 3))
	assert.Equal(t, 0.0, PassAtK(2, 5, 1))
}

func TestAverageAtK(t *testing.T) {
	rewards := []float64{1.0, 0.0, 0.5, 0.5}
	assert.Equal(t, 0.5, AverageAtK(rewards, 2))
	assert.Equal(t, 0.0, AverageAtK(rewards, 5))
	assert.Equal(t, 0.0, AverageAtK(rewards, 0))
}

func TestComb(t *testing.T) {
	assert.Equal(t, 1.0, comb(5, 0))
	assert.Equal(t, 10.0, comb(5, 2))
	assert.Equal(t, 252.0, comb(10, 5))
	assert.Equal(t, 0.0, comb(3, 4))
	assert.Equal(t, 0.0, comb(3, -1))
}

func TestGroupByTask(t *testing.T) {
	runs := []model.SimulationRun{
		runWithReward("t2", 0, 1.0),
		runWithReward("t1", 0, 0.0),
		runWithReward("t2", 1, 0.0),
		{TaskID: "t1", Trial: 1}, // no reward counts as 0
	}
	groups := groupByTask(runs)
	require.Len(t, groups, 2)
	assert.Equal(t, "t2", groups[0].taskID)
	assert.Equal(t, []float64{1.0, 0.0}, groups[0].rewards)
	assert.Equal(t, "t1", groups[1].taskID)
	assert.Equal(t, []float64{0.0, 0.0}, groups[1].rewards)
}

func TestCompute(t *testing.T) {
	cost := 0.1
	results := &model.Results{
		Info: model.RunInfo{NumTrials: 2},
		Simulations: []model.SimulationRun{
			runWithReward("t1", 0, 1.0),
			runWithReward("t1", 1, 1.0),
			runWithReward("t2", 0, 1.0),
			runWithReward("t2", 1, 0.0),
		},
	}
	for i := range results.Simulations {
		results.Simulations[i].AgentCost = &cost
		results.Simulations[i].Duration = 30
	}

	metrics := Compute(results)
	assert.Equal(t, 0.75, metrics.AvgReward)

	// t1: 2/2 successes, t2: 1/2.
	assert.InDelta(t, (1.0+0.5)/2, metrics.PassHatKs[1], 1e-12)
	assert.InDelta(t, (1.0+0.0)/2, metrics.PassHatKs[2], 1e-12)

	assert.InDelta(t, 0.75, metrics.PassAtN[1], 1e-12)
	assert.InDelta(t, 1.0, metrics.PassAtN[2], 1e-12)
	assert.InDelta(t, 0.75, metrics.AverageAtN[1], 1e-12)
	assert.InDelta(t, 0.75, metrics.AverageAtN[2], 1e-12)

	assert.InDelta(t, 0.1, metrics.AvgAgentCost, 1e-12)
	// Empty timestamps fall back to summed durations.
	assert.Equal(t, 120.0, metrics.TotalDuration)
}

func TestComputeEmpty(t *testing.T) {
	metrics := Compute(&model.Results{})
	assert.Equal(t, 0.0, metrics.AvgReward)
	assert.Empty(t, metrics.PassHatKs)
}

func TestTotalDurationSpansRuns(t *testing.T) {
	runs := []model.SimulationRun{
		{StartTime: "20250705_100000", EndTime: "20250705_100200"},
		{StartTime: "20250705_100100", EndTime: "20250705_100500"},
	}
	assert.Equal(t, 300.0, totalDuration(runs))
}

func TestTotalDurationFallsBackToSum(t *testing.T) {
	runs := []model.SimulationRun{
		{StartTime: "20250705_100000", EndTime: "20250705_100200", Duration: 120},
		{StartTime: "not-a-timestamp", EndTime: "", Duration: 40},
	}
	assert.Equal(t, 160.0, totalDuration(runs))
}
