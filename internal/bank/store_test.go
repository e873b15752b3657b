package bank

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"encard/internal/logging"
	"encard/internal/quiz"
)

func sampleQuestion(prompt string, labels []string, answer int) quiz.Question {
	return quiz.FromLabels(prompt, labels, answer)
}

// assertSameBank compares banks treating nil and empty question lists as equal.
func assertSameBank(t *testing.T, want, got Bank) {
	t.Helper()
	if want.Len() != got.Len() {
		t.Fatalf("expected %d questions, got %d", want.Len(), got.Len())
	}
	for i := range want.Questions {
		if !reflect.DeepEqual(want.Questions[i], got.Questions[i]) {
			t.Fatalf("question %d: expected %+v, got %+v", i, want.Questions[i], got.Questions[i])
		}
	}
}

// TestReadMissingCreatesFile verifies a missing bank is created and empty.
func TestReadMissingCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".enc", "questions.json")
	store := NewStore(path, logging.Nop())

	bank, err := store.Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if bank.Len() != 0 {
		t.Fatalf("expected empty bank, got %d questions", bank.Len())
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected bank file to be created: %v", err)
	}
	if info.Size() != 0 {
		t.Fatalf("expected empty file, got %d bytes", info.Size())
	}
	if again := store.Load(); again.Len() != 0 {
		t.Fatalf("expected empty bank from empty file")
	}
}

// TestSaveLoadRoundTrip verifies saved banks load back unchanged.
func TestSaveLoadRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		bank Bank
	}{
		{name: "empty", bank: Bank{}},
		{name: "plain", bank: Bank{Questions: []quiz.Question{
			sampleQuestion("What is 2+2?", []string{"3", "4", "5"}, 1),
		}}},
		{name: "special characters", bank: Bank{Questions: []quiz.Question{
			sampleQuestion(`Say "hello", please`, []string{`"quoted"`, "a, b", "日本語 ✓"}, 2),
			{ID: "fixed", Prompt: "Ünïcödé?", Choices: []quiz.Choice{{Text: "\\back\nslash"}}, Index: 0},
		}}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			store := NewStore(filepath.Join(t.TempDir(), "questions.json"), logging.Nop())
			if err := store.Save(tc.bank); err != nil {
				t.Fatalf("save: %v", err)
			}
			got, err := store.Read()
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			assertSameBank(t, tc.bank, got)
		})
	}
}

// TestReadCorruptReportsError verifies corrupt content is an explicit error.
func TestReadCorruptReportsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	store := NewStore(path, logging.Nop())

	bank, err := store.Read()
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected corrupt error, got %v", err)
	}
	if bank.Len() != 0 {
		t.Fatalf("expected empty bank on error")
	}
	if loaded := store.Load(); loaded.Len() != 0 {
		t.Fatalf("expected Load to fall back to an empty bank")
	}
}

// TestReadLegacyFormat verifies files without ids still load.
func TestReadLegacyFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.json")
	payload := `{"questions":[{"question":"Q","choices":[{"text":"a","correct":true},{"text":"b","correct":false}],"index":1}]}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	bank, err := NewStore(path, logging.Nop()).Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if bank.Len() != 1 || bank.Questions[0].Prompt != "Q" || !bank.Questions[0].Choices[0].Correct {
		t.Fatalf("unexpected bank: %+v", bank)
	}
}

// TestSaveCreatesDirectory verifies Save creates a missing parent directory.
func TestSaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "questions.json")
	store := NewStore(path, logging.Nop())
	if err := store.Save(Bank{}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected bank file: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("expected temp file to be gone, got %v", err)
	}
}

// TestAddPersistsImmediately verifies Add writes through to disk.
func TestAddPersistsImmediately(t *testing.T) {
	origID := newID
	newID = func() string { return "id-1" }
	t.Cleanup(func() { newID = origID })

	path := filepath.Join(t.TempDir(), "questions.json")
	store := NewStore(path, logging.Nop())
	bank := store.Load()
	q := sampleQuestion("Capital of Italy?", []string{"Rome", "Milan"}, 0)
	q.Index = 1
	if err := store.Add(&bank, q); err != nil {
		t.Fatalf("add: %v", err)
	}
	if bank.Len() != 1 {
		t.Fatalf("expected in-memory append, got %d", bank.Len())
	}

	reloaded := NewStore(path, logging.Nop()).Load()
	if reloaded.Len() != 1 {
		t.Fatalf("expected 1 persisted question, got %d", reloaded.Len())
	}
	got := reloaded.Questions[0]
	if got.ID != "id-1" || got.Prompt != "Capital of Italy?" || got.Index != 0 {
		t.Fatalf("unexpected persisted question: %+v", got)
	}
}

// TestAddKeepsExistingID verifies caller supplied ids are preserved.
func TestAddKeepsExistingID(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "questions.json"), logging.Nop())
	bank := Bank{}
	q := sampleQuestion("Q", []string{"a"}, 0)
	q.ID = "mine"
	if err := store.Add(&bank, q); err != nil {
		t.Fatalf("add: %v", err)
	}
	if bank.Questions[0].ID != "mine" {
		t.Fatalf("expected id to be kept, got %q", bank.Questions[0].ID)
	}
}
