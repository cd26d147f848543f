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
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/vitabench/vita/pkg/config"
	"github.com/vitabench/vita/pkg/logger"
	"github.com/vitabench/vita/pkg/model"
	"github.com/vitabench/vita/pkg/utils"
)

// summaryRow is one CSV line with a stable column order.
type summaryRow struct {
	columns []string
	values  map[string]string
}

func (r *summaryRow) set(column, value string) {
	if _, ok := r.values[column]; !ok {
		r.columns = append(r.columns, column)
	}
	r.values[column] = value
}

// SaveRunSummary appends one summary line per run to the tracking CSV.
// When the run introduces columns the file does not have yet (or the order
// changed), the whole file is rewritten with the reconciled layout and the
// old rows padded with empty cells.
func SaveRunSummary(results *model.Results, metrics AgentMetrics, cfg config.RunConfig, csvPath string) error {
	row := buildRunSummary(results, metrics, cfg)
	if row == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(csvPath), 0o755); err != nil {
		return err
	}

	existing, err := os.Open(csvPath)
	if os.IsNotExist(err) {
		return writeCSV(csvPath, row.columns, [][]string{rowValues(row.columns, row.values)})
	}
	if err != nil {
		return err
	}
	records, err := csv.NewReader(existing).ReadAll()
	existing.Close()
	if err != nil || len(records) == 0 {
		logger.GetLogger().Warn("Could not read existing CSV structure, rewriting", "path", csvPath, "error", err)
		return writeCSV(csvPath, row.columns, [][]string{rowValues(row.columns, row.values)})
	}

	header := records[0]
	if columnsEqual(header, row.columns) {
		file, err := os.OpenFile(csvPath, os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		defer file.Close()
		writer := csv.NewWriter(file)
		if err := writer.Write(rowValues(header, row.values)); err != nil {
			return err
		}
		writer.Flush()
		return writer.Error()
	}

	// Reconcile: prefer the new layout when it is at least as wide, keep
	// the file's layout otherwise, and append any columns the chosen side
	// is missing.
	final := append([]string(nil), header...)
	if len(header) <= len(row.columns) {
		final = append([]string(nil), row.columns...)
	}
	known := map[string]bool{}
	for _, c := range final {
		known[c] = true
	}
	for _, c := range append(append([]string(nil), header...), row.columns...) {
		if !known[c] {
			known[c] = true
			final = append(final, c)
		}
	}
	logger.GetLogger().Info("Rewriting CSV with updated column structure", "path", csvPath, "columns", len(final))

	var rows [][]string
	for _, record := range records[1:] {
		values := map[string]string{}
		for i, c := range header {
			if i < len(record) {
				values[c] = record[i]
			}
		}
		rows = append(rows, rowValues(final, values))
	}
	rows = append(rows, rowValues(final, row.values))
	return writeCSV(csvPath, final, rows)
}

func buildRunSummary(results *model.Results, metrics AgentMetrics, cfg config.RunConfig) *summaryRow {
	if len(results.Simulations) == 0 {
		return nil
	}
	info := results.Info

	taskIDs := map[string]bool{}
	trials := map[int]bool{}
	var rewards []float64
	totalAgentCost, totalUserCost, totalDuration := 0.0, 0.0, 0.0
	terminationCounts := map[string]int{}
	for i := range results.Simulations {
		sim := &results.Simulations[i]
		taskIDs[sim.TaskID] = true
		trials[sim.Trial] = true
		if sim.RewardInfo != nil {
			rewards = append(rewards, sim.RewardInfo.Reward)
		}
		if sim.AgentCost != nil {
			totalAgentCost += *sim.AgentCost
		}
		if sim.UserCost != nil {
			totalUserCost += *sim.UserCost
		}
		totalDuration += sim.Duration
		terminationCounts[string(sim.TerminationReason)]++
	}

	avgReward, minReward, maxReward := 0.0, 0.0, 0.0
	if len(rewards) > 0 {
		minReward, maxReward = rewards[0], rewards[0]
		for _, r := range rewards {
			avgReward += r
			if r < minReward {
				minReward = r
			}
			if r > maxReward {
				maxReward = r
			}
		}
		avgReward /= float64(len(rewards))
	}

	simulationFilename := cfg.SaveTo
	if simulationFilename == "" {
		simulationFilename = cfg.ReEvaluateFile
	}
	runID := fmt.Sprintf("%s_%s_%s_%s", utils.Now(),
		info.EnvironmentInfo.DomainName, info.AgentInfo.Implementation, info.UserInfo.Implementation)
	if cfg.EnableThink {
		runID += "_think"
	}

	row := &summaryRow{values: map[string]string{}}
	row.set("run_timestamp", utils.Now())
	row.set("run_id", runID)
	row.set("simulation_filename", simulationFilename)
	row.set("domain", info.EnvironmentInfo.DomainName)
	row.set("agent_implementation", info.AgentInfo.Implementation)
	row.set("agent_llm", info.AgentInfo.LLM)
	row.set("user_implementation", info.UserInfo.Implementation)
	row.set("user_llm", info.UserInfo.LLM)
	row.set("evaluator_llm", strings.Join(cfg.LLMEvaluators, ","))
	row.set("num_tasks", strconv.Itoa(len(taskIDs)))
	row.set("num_trials", strconv.Itoa(len(trials)))
	row.set("total_simulations", strconv.Itoa(len(results.Simulations)))
	row.set("avg_reward", fmt.Sprintf("%.4f", avgReward))
	row.set("min_reward", fmt.Sprintf("%.4f", minReward))
	row.set("max_reward", fmt.Sprintf("%.4f", maxReward))
	row.set("total_agent_cost", fmt.Sprintf("%.4f", totalAgentCost))
	row.set("total_user_cost", fmt.Sprintf("%.4f", totalUserCost))
	row.set("total_duration", fmt.Sprintf("%.2f", totalDuration/60))
	row.set("termination_reasons", formatTerminationCounts(terminationCounts))
	row.set("git_commit", info.GitCommit)
	row.set("seed", strconv.FormatInt(info.Seed, 10))
	row.set("max_steps", strconv.Itoa(info.MaxSteps))
	row.set("max_errors", strconv.Itoa(info.MaxErrors))
	row.set("max_concurrency", strconv.Itoa(cfg.MaxConcurrency))
	row.set("enable_think", strconv.FormatBool(cfg.EnableThink))
	row.set("evaluation_type", cfg.EvaluationType)

	for _, k := range sortedKeys(metrics.PassAtN) {
		row.set(fmt.Sprintf("%s_pass_at_%d", cfg.EvaluationType, k), fmt.Sprintf("%.4f", metrics.PassAtN[k]))
	}
	for _, k := range sortedKeys(metrics.PassHatKs) {
		row.set(fmt.Sprintf("%s_pass_hat_%d", cfg.EvaluationType, k), fmt.Sprintf("%.4f", metrics.PassHatKs[k]))
	}
	return row
}

func formatTerminationCounts(counts map[string]int) string {
	reasons := make([]string, 0, len(counts))
	for reason := range counts {
		reasons = append(reasons, reason)
	}
	sort.Strings(reasons)
	parts := make([]string, len(reasons))
	for i, reason := range reasons {
		parts[i] = fmt.Sprintf("%s: %d", reason, counts[reason])
	}
	return strings.Join(parts, ", ")
}

func rowValues(columns []string, values map[string]string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = values[c]
	}
	return out
}

func columnsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func writeCSV(path string, header []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
