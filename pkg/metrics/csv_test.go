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
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitabench/vita/pkg/config"
	"github.com/vitabench/vita/pkg/model"
)

func summaryFixture() (*model.Results, config.RunConfig) {
	agentCost, userCost := 0.25, 0.05
	results := &model.Results{
		Info: model.RunInfo{
			GitCommit: "abc1234",
			Seed:      300,
			MaxSteps:  120,
			MaxErrors: 10,
			NumTrials: 1,
			EnvironmentInfo: model.EnvironmentInfo{DomainName: "delivery"},
			AgentInfo:       model.AgentInfo{Implementation: "llm_agent", LLM: "gpt-test"},
			UserInfo:        model.UserInfo{Implementation: "user_simulator", LLM: "gpt-test"},
		},
		Simulations: []model.SimulationRun{
			{
				TaskID:            "t1",
				Trial:             0,
				Duration:          90,
				TerminationReason: model.TerminationUserStop,
				RewardInfo:        &model.RewardInfo{Reward: 1.0},
				AgentCost:         &agentCost,
				UserCost:          &userCost,
			},
		},
	}
	cfg := config.NewRunConfig()
	cfg.Domain = "delivery"
	cfg.LLMEvaluators = []string{"judge-a", "judge-b", "judge-c"}
	cfg.SaveTo = "runs/delivery.json"
	return results, cfg
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return records
}

func column(t *testing.T, records [][]string, name string) int {
	t.Helper()
	for i, c := range records[0] {
		if c == name {
			return i
		}
	}
	t.Fatalf("column %s not found in %v", name, records[0])
	return -1
}

func TestSaveRunSummaryCreatesFile(t *testing.T) {
	results, cfg := summaryFixture()
	path := filepath.Join(t.TempDir(), "summary", "runs.csv")
	metrics := Compute(results)

	require.NoError(t, SaveRunSummary(results, metrics, cfg, path))

	records := readCSV(t, path)
	require.Len(t, records, 2)
	row := records[1]
	assert.Equal(t, "delivery", row[column(t, records, "domain")])
	assert.Equal(t, "llm_agent", row[column(t, records, "agent_implementation")])
	assert.Equal(t, "judge-a,judge-b,judge-c", row[column(t, records, "evaluator_llm")])
	assert.Equal(t, "1", row[column(t, records, "num_tasks")])
	assert.Equal(t, "1.0000", row[column(t, records, "avg_reward")])
	assert.Equal(t, "0.2500", row[column(t, records, "total_agent_cost")])
	assert.Equal(t, "1.50", row[column(t, records, "total_duration")])
	assert.Equal(t, "user_stop: 1", row[column(t, records, "termination_reasons")])
	assert.Equal(t, "runs/delivery.json", row[column(t, records, "simulation_filename")])
	assert.Equal(t, "1.0000", row[column(t, records, "trajectory_pass_hat_1")])
}

func TestSaveRunSummaryAppends(t *testing.T) {
	results, cfg := summaryFixture()
	path := filepath.Join(t.TempDir(), "runs.csv")
	metrics := Compute(results)

	require.NoError(t, SaveRunSummary(results, metrics, cfg, path))
	require.NoError(t, SaveRunSummary(results, metrics, cfg, path))

	records := readCSV(t, path)
	require.Len(t, records, 3)
	assert.Equal(t, records[1][column(t, records, "domain")], records[2][column(t, records, "domain")])
}

func TestSaveRunSummaryReconcilesColumns(t *testing.T) {
	results, cfg := summaryFixture()
	path := filepath.Join(t.TempDir(), "runs.csv")
	metrics := Compute(results)
	require.NoError(t, SaveRunSummary(results, metrics, cfg, path))

	// A later run with more trials introduces new metric columns.
	results.Info.NumTrials = 2
	results.Simulations = append(results.Simulations, model.SimulationRun{
		TaskID:            "t1",
		Trial:             1,
		Duration:          60,
		TerminationReason: model.TerminationAgentStop,
		RewardInfo:        &model.RewardInfo{Reward: 0.0},
	})
	metrics = Compute(results)
	require.NoError(t, SaveRunSummary(results, metrics, cfg, path))

	records := readCSV(t, path)
	require.Len(t, records, 3)
	idx := column(t, records, "trajectory_pass_hat_2")
	// The old row is padded with an empty cell for the new column.
	assert.Equal(t, "", records[1][idx])
	assert.Equal(t, "0.0000", records[2][idx])
	for _, row := range records[1:] {
		assert.Len(t, row, len(records[0]))
	}
}

func TestSaveRunSummarySkipsEmptyResults(t *testing.T) {
	_, cfg := summaryFixture()
	path := filepath.Join(t.TempDir(), "runs.csv")

	require.NoError(t, SaveRunSummary(&model.Results{}, AgentMetrics{}, cfg, path))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
