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

	"golang.org/x/sync/errgroup"

	"github.com/vitabench/vita/pkg/logger"
	"github.com/vitabench/vita/pkg/model"
)

// BuildSimulation constructs one fresh simulation for a (task, trial) pair.
// Every call must return new environment, agent and user instances.
type BuildSimulation func(task model.Task, trial int, seed int64) (*Simulation, error)

// RunAll executes tasks x trials simulations, at most maxConcurrency in
// flight. The per-trial seed is baseSeed + trial, so trial i is reproducible
// regardless of scheduling. Results keep (task, trial) order.
func RunAll(ctx context.Context, tasks []model.Task, numTrials int, baseSeed int64, maxConcurrency int, build BuildSimulation) ([]model.SimulationRun, error) {
	if numTrials < 1 {
		numTrials = 1
	}
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}
	logger.GetLogger().Info("Starting simulations",
		"tasks", len(tasks), "trials", numTrials, "max_concurrency", maxConcurrency)

	runs := make([]model.SimulationRun, len(tasks)*numTrials)
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrency)

	for taskIdx, task := range tasks {
		for trial := 0; trial < numTrials; trial++ {
			taskIdx, task, trial := taskIdx, task, trial
			group.Go(func() error {
				sim, err := build(task, trial, baseSeed+int64(trial))
				if err != nil {
					return err
				}
				run, err := sim.Run(ctx)
				if err != nil {
					return err
				}
				runs[taskIdx*numTrials+trial] = run
				return nil
			})
		}
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return runs, nil
}
