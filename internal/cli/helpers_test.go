package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"encard/internal/bank"
	"encard/internal/config"
	"encard/internal/logging"
)

// useDataDir points the config at a fresh data directory for the test.
func useDataDir(t *testing.T) string {
	t.Helper()
	for _, key := range []string{"ENCARD_CONFIG", "ENCARD_LOG_LEVEL", "ENCARD_NO_COLOR", "NO_COLOR"} {
		key := key
		if value, ok := os.LookupEnv(key); ok {
			if err := os.Unsetenv(key); err != nil {
				t.Fatalf("unset %s: %v", key, err)
			}
			t.Cleanup(func() { _ = os.Setenv(key, value) })
		}
	}
	dir := filepath.Join(t.TempDir(), ".enc")
	t.Setenv("ENCARD_DATA_DIR", dir)
	return dir
}

// readBank loads the bank written under dataDir.
func readBank(t *testing.T, dataDir string) bank.Bank {
	t.Helper()
	b, err := bank.NewStore(config.QuestionsPath(dataDir), logging.Nop()).Read()
	if err != nil {
		t.Fatalf("read bank: %v", err)
	}
	return b
}

// fakeTerminal makes the TTY check report isTTY for the test.
func fakeTerminal(t *testing.T, isTTY bool) {
	t.Helper()
	orig := isTerminal
	isTerminal = func(io.Writer) bool { return isTTY }
	t.Cleanup(func() { isTerminal = orig })
}
