package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestImportAndListCommands verifies imported questions are listed.
func TestImportAndListCommands(t *testing.T) {
	dataDir := useDataDir(t)
	path := filepath.Join(t.TempDir(), "questions.yml")
	payload := `version: 1
questions:
  - question: Capital of Japan?
    choices: [Kyoto, Tokyo]
    answer: 1
  - question: 3*3?
    choices: ["6", "9"]
    answer: 1
`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write questions: %v", err)
	}

	var stdout, stderr bytes.Buffer
	if code := Run([]string{"import", "--file", path}, &stdout, &stderr); code != ExitOK {
		t.Fatalf("import exit %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Imported 2 questions") {
		t.Fatalf("unexpected import output %q", stdout.String())
	}
	if b := readBank(t, dataDir); b.Len() != 2 {
		t.Fatalf("expected 2 questions, got %d", b.Len())
	}

	stdout.Reset()
	if code := Run([]string{"list"}, &stdout, &stderr); code != ExitOK {
		t.Fatalf("list exit %d, stderr: %s", code, stderr.String())
	}
	for _, want := range []string{"Capital of Japan?  (2 choices)", "3*3?"} {
		if !strings.Contains(stdout.String(), want) {
			t.Fatalf("expected %q in list output, got %q", want, stdout.String())
		}
	}
}

// TestImportInvalidFile verifies validation errors are reported.
func TestImportInvalidFile(t *testing.T) {
	dataDir := useDataDir(t)
	path := filepath.Join(t.TempDir(), "questions.json")
	if err := os.WriteFile(path, []byte(`{"version":1,"questions":[{"question":"Q","choices":["a"],"answer":4}]}`), 0o644); err != nil {
		t.Fatalf("write questions: %v", err)
	}
	var stdout, stderr bytes.Buffer
	if code := Run([]string{"import", "--file", path}, &stdout, &stderr); code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(stderr.String(), "answer") {
		t.Fatalf("expected answer issue, got %q", stderr.String())
	}
	if b := readBank(t, dataDir); b.Len() != 0 {
		t.Fatalf("expected bank untouched")
	}
}

// TestImportMissingFileFlag verifies --file is required.
func TestImportMissingFileFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := Run([]string{"import"}, &stdout, &stderr); code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
}

// TestListEmptyAndCorruptBank verifies list output for empty and corrupt banks.
func TestListEmptyAndCorruptBank(t *testing.T) {
	dataDir := useDataDir(t)
	var stdout, stderr bytes.Buffer
	if code := Run([]string{"list"}, &stdout, &stderr); code != ExitOK {
		t.Fatalf("list exit %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "No questions") {
		t.Fatalf("expected empty notice, got %q", stdout.String())
	}

	if err := os.WriteFile(filepath.Join(dataDir, "questions.json"), []byte("garbage"), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	stdout.Reset()
	if code := Run([]string{"list"}, &stdout, &stderr); code != ExitError {
		t.Fatalf("expected exit %d for corrupt bank, got %d", ExitError, code)
	}
	if !strings.Contains(stderr.String(), "corrupt") {
		t.Fatalf("expected corrupt error, got %q", stderr.String())
	}
}
