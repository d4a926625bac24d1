// Copyright 2025 Lumina Labs
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
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/lumina-dev/searchlight"
	"github.com/lumina-dev/searchlight/analyze"
	"github.com/lumina-dev/searchlight/core"
	"github.com/lumina-dev/searchlight/corpus"
	"github.com/lumina-dev/searchlight/session"
)

func main() {
	app := &cli.App{
		Name:  "searchlight",
		Usage: "Fuzzy search over dashboard services, metrics, and users",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Run a search against the built-in demo corpus",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "db",
						Usage: "Path to the history database directory (in-memory if empty)",
					},
					&cli.StringFlag{
						Name:  "type",
						Usage: "Filter by source type (services, metrics, users, logs, all)",
						Value: core.FilterAll,
					},
					&cli.StringFlag{
						Name:  "status",
						Usage: "Filter by status (active, error, inactive, all)",
						Value: core.FilterAll,
					},
					&cli.BoolFlag{
						Name:  "raw",
						Usage: "Dispatch the query as typed, without analyzer enhancement",
					},
					&cli.StringFlag{
						Name:  "rules",
						Usage: "Path to a YAML analyzer rules file",
					},
				},
			},
			{
				Name:      "analyze",
				Usage:     "Show the query analysis without searching",
				ArgsUsage: "<query>",
				Action:    analyzeCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "rules",
						Usage: "Path to a YAML analyzer rules file",
					},
				},
			},
			{
				Name:   "history",
				Usage:  "Show persisted search history, most recent first",
				Action: historyCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Usage:    "Path to the history database directory",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "clear",
						Usage: "Delete all persisted history",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func searchCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query is required")
	}

	engine, err := openEngine(c.String("db"), demoSources())
	if err != nil {
		return err
	}
	defer engine.Close()

	ctx := context.Background()
	if err := engine.RefreshCorpus(ctx); err != nil {
		var loadErr *corpus.LoadError
		if !errors.As(err, &loadErr) {
			return fmt.Errorf("failed to load corpus: %w", err)
		}
		fmt.Fprintf(os.Stderr, "warning: %v\n", loadErr)
	}

	analyzer, err := buildAnalyzer(c.String("rules"))
	if err != nil {
		return err
	}

	cfg := session.DefaultConfig()
	cfg.EnhanceQueries = !c.Bool("raw")

	sess, err := engine.NewSession(
		session.WithConfig(cfg),
		session.WithAnalyzer(analyzer),
	)
	if err != nil {
		return err
	}

	sess.OnFilterChange(core.FilterState{
		Type:   c.String("type"),
		Status: c.String("status"),
	})
	sess.OnSubmit(query)

	view := waitForResolution(sess)
	switch view.State {
	case session.StateError:
		return fmt.Errorf("search failed: %s", view.Message)
	case session.StateNoResults:
		fmt.Printf("no results for %q\n", query)
		return nil
	}

	for i, item := range view.Items {
		printResult(i+1, item.Result, query)
	}
	return nil
}

func analyzeCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query is required")
	}

	analyzer, err := buildAnalyzer(c.String("rules"))
	if err != nil {
		return err
	}

	analysis := analyzer.Analyze(query)
	printAnalysis(analysis, analyzer.EnhanceQuery(query, analysis))
	return nil
}

func historyCommand(c *cli.Context) error {
	engine, err := openEngine(c.String("db"), demoSources())
	if err != nil {
		return err
	}
	defer engine.Close()

	if c.Bool("clear") {
		if err := engine.HistoryRepository().Save(context.Background(), nil); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		fmt.Println("search history cleared")
		return nil
	}

	entries, err := engine.HistoryRepository().Load(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println("no search history")
		return nil
	}

	for _, entry := range entries {
		fmt.Printf("%s  %3dx  %s\n",
			entry.LastUsed.Local().Format(time.DateTime),
			entry.Count,
			nameColor.Sprint(entry.Query),
		)
	}
	return nil
}

func openEngine(dbPath string, sources []corpus.Source) (*searchlight.Engine, error) {
	opts := []searchlight.EngineOption{}
	if dbPath == "" {
		opts = append(opts, searchlight.WithInMemoryStorage())
	}
	engine, err := searchlight.NewEngine(dbPath, sources, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open engine: %w", err)
	}
	return engine, nil
}

func buildAnalyzer(rulesPath string) (*analyze.Analyzer, error) {
	opts := []analyze.Option{}
	if rulesPath != "" {
		rules, err := analyze.LoadRulesFile(rulesPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load rules: %w", err)
		}
		opts = append(opts, analyze.WithRules(rules))
	}
	return analyze.NewAnalyzer(opts...)
}

// waitForResolution polls the session until the submitted search
// leaves the Searching state. OnSubmit resolves synchronously today,
// so a handful of polls is plenty.
func waitForResolution(sess *session.Controller) session.View {
	view := sess.CurrentView()
	for i := 0; view.State == session.StateSearching && i < 100; i++ {
		time.Sleep(10 * time.Millisecond)
		view = sess.CurrentView()
	}
	return view
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
