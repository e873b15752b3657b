package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"encard/internal/bank"
	"encard/internal/config"
	"encard/internal/logging"
)

// loadConfig is a test seam for configuration loading.
var loadConfig = config.Load

// newLogger is a test seam for logger construction.
var newLogger = logging.New

// appEnv bundles what every command needs.
type appEnv struct {
	cfg    config.Config
	logger *zap.Logger
	store  *bank.Store
}

// close flushes the logger.
func (env *appEnv) close() {
	_ = env.logger.Sync()
}

// openEnv loads config, opens the log file, and builds the bank store.
func openEnv(configPath string, stderr io.Writer) (*appEnv, bool) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return nil, false
	}
	logger, err := newLogger(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to open log: %v\n", err)
		return nil, false
	}
	return &appEnv{
		cfg:    cfg,
		logger: logger,
		store:  bank.NewStore(cfg.QuestionsPath(), logger),
	}, true
}

// newFlagSet builds a flag set that writes errors to stderr and registers --config.
func newFlagSet(cmd *Command, stderr io.Writer) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Path to config file (default: $ENCARD_CONFIG or ~/.enc/config.yml)")
	return fs, configPath
}

// parseFlags parses args and reports the exit code to use when parsing fails.
func parseFlags(cmd *Command, fs *flag.FlagSet, args []string, stdout, stderr io.Writer) (int, bool) {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return ExitOK, false
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	return ExitOK, true
}
