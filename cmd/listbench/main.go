package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/pavanmanishd/arraylist/internal/config"
	"github.com/pavanmanishd/arraylist/internal/logutil"
	"github.com/pavanmanishd/arraylist/internal/measure"
)

func main() {
	cfg, err := loadConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(2)
	}

	logger, err := logutil.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(2)
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger.Info("listbench starting",
		zap.Int64("seed", cfg.Seed),
		zap.Int("elements", cfg.Elements),
		zap.Int("operations", cfg.Operations),
		zap.Strings("implementations", cfg.Implementations),
		zap.Int("workers", cfg.Workers),
	)
	reports, err := measure.Run(ctx, cfg, logger)
	if err != nil {
		logger.Error("measurement failed", zap.Error(err))
		os.Exit(1)
	}
	if err := measure.Write(os.Stdout, cfg.Format, reports); err != nil {
		logger.Error("write report", zap.Error(err))
		os.Exit(1)
	}
}

// loadConfig parses args into fs, reads the config file, if any, and applies
// the flags that were set explicitly on top of it.
func loadConfig(fs *flag.FlagSet, args []string) (config.Config, error) {
	var (
		configPath = fs.String("config", "", "Configuration file (.toml, .yaml or .yml)")
		elements   = fs.Int("elements", 0, "Number of random elements each list is filled with")
		operations = fs.Int("operations", -1, "Number of random accesses and removals")
		seed       = fs.Int64("seed", 0, "Random seed")
		workers    = fs.Int("workers", 0, "Implementations measured at once")
		format     = fs.String("format", "", "Output format (text, tree)")
		impl       = fs.String("impl", "", "Comma separated implementations: "+strings.Join(measure.Implementations(), ", "))
		logLevel   = fs.String("log-level", "", "Log level (debug, info, warn, error)")
		logFile    = fs.String("log-file", "", "Write logs to this rotated file instead of stderr")
	)
	cfg := config.Default()
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return cfg, err
		}
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	if set["elements"] {
		cfg.Elements = *elements
	}
	if set["operations"] {
		cfg.Operations = *operations
	}
	if set["seed"] {
		cfg.Seed = *seed
	}
	if set["workers"] {
		cfg.Workers = *workers
	}
	if set["format"] {
		cfg.Format = *format
	}
	if set["impl"] {
		cfg.Implementations = splitList(*impl)
	}
	if set["log-level"] {
		cfg.Log.Level = *logLevel
	}
	if set["log-file"] {
		cfg.Log.Filename = *logFile
	}
	return cfg, cfg.Validate()
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
