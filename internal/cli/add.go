package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"encard/internal/quiz"
)

// runAdd builds the handler for the add command.
func runAdd(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		if len(args) == 0 {
			printCommandUsage(cmd, stdout)
			return ExitUsage
		}
		fs, configPath := newFlagSet(cmd, stderr)
		var question, choices string
		answer := -1
		fs.StringVar(&question, "question", "", "Question text")
		fs.StringVar(&question, "q", "", "Question text (shorthand)")
		fs.StringVar(&choices, "choices", "", "Comma separated choices")
		fs.StringVar(&choices, "c", "", "Comma separated choices (shorthand)")
		fs.IntVar(&answer, "answer", -1, "Zero-based index of the correct choice")
		fs.IntVar(&answer, "a", -1, "Zero-based index of the correct choice (shorthand)")
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}

		var missing []string
		if question == "" {
			missing = append(missing, "--question")
		}
		if choices == "" {
			missing = append(missing, "--choices")
		}
		if !flagGiven(fs, "answer", "a") {
			missing = append(missing, "--answer")
		}
		if len(missing) > 0 {
			fmt.Fprintf(stderr, "Missing %s\n", strings.Join(missing, ", "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		q, err := quiz.NewQuestion(question, choices, answer)
		if err != nil {
			fmt.Fprintf(stderr, "Invalid question: %v\n", err)
			return ExitUsage
		}

		env, ok := openEnv(*configPath, stderr)
		if !ok {
			return ExitError
		}
		defer env.close()

		current := env.store.Load()
		if err := env.store.Add(&current, q); err != nil {
			env.logger.Error("save question bank failed", zap.Error(err))
			fmt.Fprintf(stderr, "Failed to save question: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Added question %q (%d questions in %s)\n", q.Prompt, current.Len(), env.store.Path())
		return ExitOK
	}
}

// flagGiven reports whether any of the named flags was set on the command line.
func flagGiven(fs *flag.FlagSet, names ...string) bool {
	given := false
	fs.Visit(func(f *flag.Flag) {
		for _, name := range names {
			if f.Name == name {
				given = true
			}
		}
	})
	return given
}
