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

// Command vita runs the benchmark: simulated users talking to tool-using
// agents over domain environments, scored by a panel of LLM judges.
//
// Usage:
//
//	vita run --domain delivery --agent-llm gpt-4o --user-llm gpt-4o
//	vita re-evaluate results/run.json --evaluator-llms judge
//	vita metrics results/run.json
//	vita list
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/alecthomas/kong"

	"github.com/vitabench/vita/pkg/config"
	"github.com/vitabench/vita/pkg/logger"
	"github.com/vitabench/vita/pkg/metrics"
	"github.com/vitabench/vita/pkg/model"
	"github.com/vitabench/vita/pkg/registry"
)

// CLI defines the command-line interface.
type CLI struct {
	Version    VersionCmd    `cmd:"" help:"Show version information."`
	Run        RunCmd        `cmd:"" help:"Run the benchmark for a task set."`
	ReEvaluate ReEvaluateCmd `cmd:"" name:"re-evaluate" help:"Re-run the judge panel over saved results."`
	Metrics    MetricsCmd    `cmd:"" help:"Compute metrics for a saved results file."`
	List       ListCmd       `cmd:"" help:"List registered agents, users, domains and task sets."`

	LogLevel string `help:"Log level (debug, info, warn, error)." default:"debug"`
	LogFile  string `help:"Log file path (empty = stderr)."`
	EnvFile  string `name:"env-file" help:"Extra dotenv file to load." type:"path"`
}

// VersionCmd shows version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	version := "dev"
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "(devel)" && info.Main.Version != "" {
			version = info.Main.Version
		}
	}
	fmt.Printf("vita version %s\n", version)
	return nil
}

// ListCmd prints the registry contents.
type ListCmd struct{}

func (c *ListCmd) Run() error {
	info := registry.New().Info()
	encoded, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))
	return nil
}

// MetricsCmd recomputes and prints metrics for a saved run.
type MetricsCmd struct {
	Results string `arg:"" help:"Path to a results JSON file." type:"path"`
}

func (c *MetricsCmd) Run() error {
	results, err := model.LoadResultsFile(c.Results)
	if err != nil {
		return err
	}
	metrics.Display(metrics.Compute(results))
	return nil
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("vita"),
		kong.Description("VITA benchmark - versatile interactive tool-using agents."),
		kong.UsageOnError(),
	)

	envFiles := []string{".env"}
	if cli.EnvFile != "" {
		envFiles = append(envFiles, cli.EnvFile)
	}
	if err := config.LoadEnvFiles(envFiles...); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load env files: %v\n", err)
		os.Exit(1)
	}

	output := os.Stderr
	if cli.LogFile != "" {
		file, cleanup, err := logger.OpenLogFile(cli.LogFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer cleanup()
		output = file
	}
	logger.Init(logger.ParseLevel(cli.LogLevel), output)

	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
