package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/job-ranker/internal/config"
	"github.com/jonathan/job-ranker/internal/logger"
	"github.com/jonathan/job-ranker/internal/observability"
	"github.com/jonathan/job-ranker/internal/ranking"
	"github.com/jonathan/job-ranker/internal/skills"
)

// runtime is the per-invocation state shared by all subcommands
type runtime struct {
	cfg     config.Config
	log     *zap.Logger
	dict    *skills.Dictionary
	engine  *ranking.Engine
	printer *observability.Printer // nil unless verbose
}

// newRuntime resolves configuration, logging, vocabulary and the ranking engine.
// Precedence is flag, then config file, then environment, then built-in defaults.
func newRuntime(cmd *cobra.Command) (*runtime, error) {
	// 1. Environment
	env, err := config.NewEnvConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	// 2. Config file
	var fileCfg config.Config
	path := configPath
	if path == "" {
		path = env.ConfigPath
	}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		if err := loaded.Validate(); err != nil {
			return nil, err
		}
		fileCfg = *loaded
	}
	cfg := fileCfg.MergeWithDefaults(env.Defaults())

	// 3. Logger
	base, err := logger.New(jsonLogs, debugLogs)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	log := logger.WithCommand(base, cmd.Name(), uuid.NewString())

	// 4. Skill vocabulary
	dict := skills.Default()
	vocab := vocabularyPath
	if vocab == "" {
		vocab = cfg.Vocabulary
	}
	if vocab != "" {
		dict, err = skills.LoadDictionary(vocab)
		if err != nil {
			return nil, err
		}
		log.Debug("loaded skill vocabulary", zap.String("path", vocab), zap.Int("terms", dict.Len()))
	}

	// 5. Ranking engine
	policy, err := cfg.RankingPolicy()
	if err != nil {
		return nil, fmt.Errorf("invalid ranking policy: %w", err)
	}
	engine, err := ranking.NewEngine(
		ranking.WithPolicy(policy),
		ranking.WithDictionary(dict),
		ranking.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ranking engine: %w", err)
	}

	rt := &runtime{cfg: cfg, log: log, dict: dict, engine: engine}
	if verbose || cfg.Verbose {
		rt.printer = observability.NewPrinter(cmd.ErrOrStderr())
	}
	return rt, nil
}

func (rt *runtime) close() {
	_ = rt.log.Sync()
}

// pick returns the first non-empty value
func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
