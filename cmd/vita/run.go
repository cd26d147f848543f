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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/vitabench/vita/pkg/config"
	"github.com/vitabench/vita/pkg/environment"
	"github.com/vitabench/vita/pkg/evaluator"
	"github.com/vitabench/vita/pkg/logger"
	"github.com/vitabench/vita/pkg/metrics"
	"github.com/vitabench/vita/pkg/model"
	"github.com/vitabench/vita/pkg/orchestrator"
	"github.com/vitabench/vita/pkg/registry"
	"github.com/vitabench/vita/pkg/utils"
)

// RunCmd runs a full benchmark: simulations, judging, metrics.
type RunCmd struct {
	Domain   string   `required:"" help:"Domain to run (delivery, ota, instore, cross_domain)."`
	TaskSet  string   `name:"task-set" help:"Task set name (defaults to the domain)."`
	Language string   `help:"Task language (english, chinese)." default:"english"`
	DataDir  string   `name:"data-dir" help:"Directory holding the task files." default:"data" type:"path"`
	TaskIDs  []string `name:"task-ids" help:"Run only these task ids."`
	NumTasks int      `name:"num-tasks" help:"Run only the first N tasks."`

	Agent         string   `help:"Agent implementation." default:"llm_agent"`
	User          string   `help:"User implementation." default:"user_simulator"`
	AgentLLM      string   `name:"agent-llm" required:"" help:"Model name for the agent."`
	UserLLM       string   `name:"user-llm" help:"Model name for the user simulator."`
	EvaluatorLLMs []string `name:"evaluator-llms" help:"Judge model names (odd count)."`

	EvaluationType     string `name:"evaluation-type" help:"Judge prompt variant." default:"trajectory"`
	ParallelEvaluators bool   `name:"parallel-evaluators" help:"Run the judge panel concurrently."`

	NumTrials      int     `name:"num-trials" default:"1"`
	MaxSteps       int     `name:"max-steps" default:"120"`
	MaxErrors      int     `name:"max-errors" default:"10"`
	MaxConcurrency int     `name:"max-concurrency" default:"30"`
	MaxEvaluations int     `name:"max-evaluations" default:"30"`
	MaxDurationSec float64 `name:"max-duration" help:"Per-simulation wall-clock budget in seconds."`
	Seed           int64   `default:"300"`
	EnableThink    bool    `name:"enable-think" help:"Mark the run as using a thinking agent in the summary CSV."`

	Models     string `help:"Model configuration YAML." default:"models.yaml" type:"path"`
	Evaluators string `help:"Evaluator configuration YAML." default:"evaluators.yaml" type:"path"`
	SaveTo     string `name:"save-to" help:"Results JSON path (default results/<run id>.json)." type:"path"`
	CSVPath    string `name:"csv-path" help:"Append a run summary line to this CSV." type:"path"`
}

func (c *RunCmd) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.GetLogger().Info("Shutting down...")
		cancel()
	}()

	cfg := c.runConfig()
	reg := registry.New()
	models, err := config.LoadModelRegistry(c.Models, c.Evaluators)
	if err != nil {
		return err
	}

	tasks, err := c.loadTasks(reg)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		return fmt.Errorf("no tasks to run for domain %s", cfg.Domain)
	}
	logger.GetLogger().Info("Loaded tasks", "domain", cfg.Domain, "count", len(tasks))

	build, sampleEnv, err := c.simulationBuilder(reg, models, cfg)
	if err != nil {
		return err
	}

	runs, err := orchestrator.RunAll(ctx, tasks, cfg.NumTrials, cfg.Seed, cfg.MaxConcurrency, build)
	if err != nil {
		return err
	}

	if len(cfg.LLMEvaluators) > 0 {
		panel, err := judgePanel(models, cfg.LLMEvaluators)
		if err != nil {
			return err
		}
		ev := evaluator.New(cfg.Domain, cfg.Language, model.EvaluationType(cfg.EvaluationType), panel, cfg.ParallelEvaluators)
		if err := ev.EvaluateAll(ctx, runs, tasks, c.MaxEvaluations); err != nil {
			return err
		}
	} else {
		logger.GetLogger().Warn("No evaluator models configured, skipping evaluation")
	}

	results := &model.Results{
		Timestamp: utils.Now(),
		Info: model.RunInfo{
			GitCommit: gitCommit(),
			Seed:      cfg.Seed,
			MaxSteps:  cfg.MaxSteps,
			MaxErrors: cfg.MaxErrors,
			NumTrials: cfg.NumTrials,
			Language:  cfg.Language,
			EnvironmentInfo: model.EnvironmentInfo{
				DomainName: cfg.Domain,
				Statistics: sampleEnv.Statistics(),
			},
			AgentInfo: model.AgentInfo{Implementation: cfg.AgentImplementation, LLM: cfg.LLMAgent},
			UserInfo:  model.UserInfo{Implementation: cfg.UserImplementation, LLM: cfg.LLMUser},
		},
		Tasks:       tasks,
		Simulations: runs,
	}

	saveTo := cfg.SaveTo
	if saveTo == "" {
		saveTo = fmt.Sprintf("results/%s_%s_%s_%s.json",
			results.Timestamp, cfg.Domain, cfg.AgentImplementation, cfg.UserImplementation)
		cfg.SaveTo = saveTo
	}
	if err := model.SaveResultsFile(results, saveTo); err != nil {
		return err
	}
	logger.GetLogger().Info("Saved results", "path", saveTo)

	agentMetrics := metrics.Compute(results)
	metrics.Display(agentMetrics)
	if cfg.CSVPath != "" {
		if err := metrics.SaveRunSummary(results, agentMetrics, cfg, cfg.CSVPath); err != nil {
			return err
		}
	}
	return nil
}

func (c *RunCmd) runConfig() config.RunConfig {
	cfg := config.NewRunConfig()
	cfg.Domain = c.Domain
	cfg.TaskSet = c.TaskSet
	cfg.Language = c.Language
	cfg.AgentImplementation = c.Agent
	cfg.UserImplementation = c.User
	cfg.LLMAgent = c.AgentLLM
	cfg.LLMUser = c.UserLLM
	cfg.LLMEvaluators = c.EvaluatorLLMs
	cfg.EvaluationType = c.EvaluationType
	cfg.ParallelEvaluators = c.ParallelEvaluators
	cfg.NumTrials = c.NumTrials
	cfg.MaxSteps = c.MaxSteps
	cfg.MaxErrors = c.MaxErrors
	cfg.MaxConcurrency = c.MaxConcurrency
	cfg.MaxDurationSec = c.MaxDurationSec
	cfg.Seed = c.Seed
	cfg.EnableThink = c.EnableThink
	cfg.SaveTo = c.SaveTo
	cfg.CSVPath = c.CSVPath
	return cfg
}

func (c *RunCmd) loadTasks(reg *registry.Registry) ([]model.Task, error) {
	taskSet := c.TaskSet
	if taskSet == "" {
		taskSet = c.Domain
	}
	loader, err := reg.Tasks(taskSet)
	if err != nil {
		return nil, err
	}
	tasks, err := loader(c.DataDir, c.Language)
	if err != nil {
		return nil, err
	}
	if len(c.TaskIDs) > 0 {
		wanted := map[string]bool{}
		for _, id := range c.TaskIDs {
			wanted[id] = true
		}
		filtered := tasks[:0]
		for _, task := range tasks {
			if wanted[task.ID] {
				filtered = append(filtered, task)
			}
		}
		tasks = filtered
	}
	if c.NumTasks > 0 && c.NumTasks < len(tasks) {
		tasks = tasks[:c.NumTasks]
	}
	return tasks, nil
}

// simulationBuilder wires the registry constructors into a per-trial
// factory. It also builds one environment up front for the run's
// statistics header.
func (c *RunCmd) simulationBuilder(reg *registry.Registry, models *config.ModelRegistry, cfg config.RunConfig) (orchestrator.BuildSimulation, *environment.Environment, error) {
	envCtor, err := reg.Domain(cfg.Domain)
	if err != nil {
		return nil, nil, err
	}
	agentCtor, err := reg.Agent(cfg.AgentImplementation)
	if err != nil {
		return nil, nil, err
	}
	userCtor, err := reg.User(cfg.UserImplementation)
	if err != nil {
		return nil, nil, err
	}

	agentCfg, err := models.Get(cfg.LLMAgent)
	if err != nil {
		return nil, nil, err
	}
	var userCfg *config.ModelConfig
	if cfg.LLMUser != "" {
		if userCfg, err = models.Get(cfg.LLMUser); err != nil {
			return nil, nil, err
		}
	} else if cfg.UserImplementation != "dummy_user" {
		return nil, nil, fmt.Errorf("user implementation %s requires --user-llm", cfg.UserImplementation)
	}

	sampleEnv, err := envCtor(map[string]any{}, cfg.Language)
	if err != nil {
		return nil, nil, err
	}

	solo := cfg.AgentImplementation == "llm_solo_agent"
	build := func(task model.Task, trial int, seed int64) (*orchestrator.Simulation, error) {
		if solo && len(task.MessageHistory) == 0 {
			task.MessageHistory = []model.Message{model.UserMessage(task.Instructions)}
		}
		env, err := envCtor(task.Environment, cfg.Language)
		if err != nil {
			return nil, err
		}
		ag, err := agentCtor(agentCfg, env.ToolDefinitions(), env.Policy, env.Now(), cfg.Language)
		if err != nil {
			return nil, err
		}
		us, err := userCtor(userCfg, task.UserScenario, cfg.Language)
		if err != nil {
			return nil, err
		}
		return &orchestrator.Simulation{
			Task:        task,
			Trial:       trial,
			Seed:        seed,
			Agent:       ag,
			User:        us,
			Environment: env,
			Limits: orchestrator.Limits{
				MaxSteps:    cfg.MaxSteps,
				MaxErrors:   cfg.MaxErrors,
				MaxDuration: time.Duration(cfg.MaxDurationSec * float64(time.Second)),
			},
		}, nil
	}
	return build, sampleEnv, nil
}

// ReEvaluateCmd re-runs the judge panel over a saved results file.
type ReEvaluateCmd struct {
	Results string `arg:"" help:"Path to a results JSON file." type:"path"`

	EvaluatorLLMs      []string `name:"evaluator-llms" required:"" help:"Judge model names (odd count)."`
	EvaluationType     string   `name:"evaluation-type" default:"trajectory"`
	ParallelEvaluators bool     `name:"parallel-evaluators"`
	MaxEvaluations     int      `name:"max-evaluations" default:"30"`

	Models     string `help:"Model configuration YAML." default:"models.yaml" type:"path"`
	Evaluators string `help:"Evaluator configuration YAML." default:"evaluators.yaml" type:"path"`
	SaveTo     string `name:"save-to" help:"Where to write the re-evaluated results." type:"path"`
}

func (c *ReEvaluateCmd) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	results, err := model.LoadResultsFile(c.Results)
	if err != nil {
		return err
	}
	models, err := config.LoadModelRegistry(c.Models, c.Evaluators)
	if err != nil {
		return err
	}
	panel, err := judgePanel(models, c.EvaluatorLLMs)
	if err != nil {
		return err
	}

	ev := evaluator.New(results.Info.EnvironmentInfo.DomainName, results.Info.Language,
		model.EvaluationType(c.EvaluationType), panel, c.ParallelEvaluators)
	if err := ev.EvaluateAll(ctx, results.Simulations, results.Tasks, c.MaxEvaluations); err != nil {
		return err
	}

	saveTo := c.SaveTo
	if saveTo == "" {
		saveTo = strings.TrimSuffix(c.Results, ".json") + "_re_evaluated.json"
	}
	if err := model.SaveResultsFile(results, saveTo); err != nil {
		return err
	}
	logger.GetLogger().Info("Saved re-evaluated results", "path", saveTo)

	metrics.Display(metrics.Compute(results))
	return nil
}

func judgePanel(models *config.ModelRegistry, names []string) ([]evaluator.Judge, error) {
	panel := make([]evaluator.Judge, 0, len(names))
	for _, name := range names {
		cfg, err := models.Get(name)
		if err != nil {
			return nil, err
		}
		panel = append(panel, evaluator.Judge{Name: name, Config: cfg})
	}
	return panel, nil
}

// gitCommit reads the VCS revision stamped into the binary.
func gitCommit() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			return setting.Value
		}
	}
	return "unknown"
}
