package cli

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"encard/internal/bank"
)

// loadSpec is a test seam for reading question files.
var loadSpec = bank.LoadSpec

// runImport builds the handler for the import command.
func runImport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs, configPath := newFlagSet(cmd, stderr)
		filePath := fs.String("file", "", "YAML or JSON question file")
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}
		if strings.TrimSpace(*filePath) == "" {
			fmt.Fprintln(stderr, "Missing --file")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		questions, err := loadSpec(*filePath)
		if err != nil {
			fmt.Fprintf(stderr, "Import failed:\n%v\n", err)
			return ExitError
		}

		env, ok := openEnv(*configPath, stderr)
		if !ok {
			return ExitError
		}
		defer env.close()

		current := env.store.Load()
		if err := env.store.Add(&current, questions...); err != nil {
			env.logger.Error("save question bank failed", zap.Error(err))
			fmt.Fprintf(stderr, "Failed to save questions: %v\n", err)
			return ExitError
		}
		env.logger.Info("questions imported",
			zap.String("file", *filePath),
			zap.Int("questions", len(questions)),
		)
		fmt.Fprintf(stdout, "Imported %d questions (%d questions in %s)\n", len(questions), current.Len(), env.store.Path())
		return ExitOK
	}
}
