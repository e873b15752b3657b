package cli

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"encard/internal/screen"
	"encard/internal/ui"
)

// runUI is a test seam for the interactive loop.
var runUI = ui.Run

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs, configPath := newFlagSet(cmd, stderr)
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}
		if err := requireTerminal(stdout); err != nil {
			fmt.Fprintln(stderr, err)
			return ExitError
		}

		env, ok := openEnv(*configPath, stderr)
		if !ok {
			return ExitError
		}
		defer env.close()

		env.logger.Info("quiz started", zap.String("bank", env.store.Path()))
		s := screen.New(env.store, nil)
		if err := runUI(s, ui.Options{NoColor: env.cfg.NoColor, Logger: env.logger}); err != nil {
			env.logger.Error("quiz ui failed", zap.Error(err))
			fmt.Fprintf(stderr, "Game failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Final score: %d\n", s.Score.Value)
		return ExitOK
	}
}
