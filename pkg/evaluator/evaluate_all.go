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

	"golang.org/x/sync/errgroup"

	"github.com/vitabench/vita/pkg/logger"
	"github.com/vitabench/vita/pkg/model"
)

// EvaluateAll scores every simulation in place, at most maxConcurrency
// evaluations in flight. An aborted evaluation (every judge failed) leaves
// the run's RewardInfo nil and is logged; it never defaults to reward 0.
func (e *Evaluator) EvaluateAll(ctx context.Context, runs []model.SimulationRun, tasks []model.Task, maxConcurrency int) error {
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}
	tasksByID := make(map[string]model.Task, len(tasks))
	for _, task := range tasks {
		tasksByID[task.ID] = task
	}

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrency)
	for i := range runs {
		i := i
		group.Go(func() error {
			task, ok := tasksByID[runs[i].TaskID]
			if !ok {
				return fmt.Errorf("no task %q for simulation %s", runs[i].TaskID, runs[i].ID)
			}
			reward, err := e.Evaluate(ctx, runs[i], task)
			if err != nil {
				if errors.Is(err, ErrEvaluationAborted) {
					logger.GetLogger().Error("Evaluation aborted",
						"task_id", runs[i].TaskID, "trial", runs[i].Trial, "error", err)
					return nil
				}
				return err
			}
			runs[i].RewardInfo = reward
			return nil
		})
	}
	return group.Wait()
}
