package cli

import (
	"fmt"
	"io"
)

const shortIDLength = 8

// runList builds the handler for the list command.
func runList(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs, configPath := newFlagSet(cmd, stderr)
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}

		env, ok := openEnv(*configPath, stderr)
		if !ok {
			return ExitError
		}
		defer env.close()

		current, err := env.store.Read()
		if err != nil {
			fmt.Fprintf(stderr, "Failed to read question bank: %v\n", err)
			return ExitError
		}
		if current.Len() == 0 {
			fmt.Fprintf(stdout, "No questions in %s\n", env.store.Path())
			return ExitOK
		}
		for _, q := range current.Questions {
			line := fmt.Sprintf("%-*s  %s  (%d choices)", shortIDLength, shortID(q.ID), q.Prompt, len(q.Choices))
			if err := q.Validate(); err != nil {
				line += "  [" + err.Error() + "]"
			}
			fmt.Fprintln(stdout, line)
		}
		return ExitOK
	}
}

// shortID trims an id for display.
func shortID(id string) string {
	if id == "" {
		return "-"
	}
	if len(id) > shortIDLength {
		return id[:shortIDLength]
	}
	return id
}
