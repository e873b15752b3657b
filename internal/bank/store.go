package bank

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"encard/internal/quiz"
)

// ErrCorrupt indicates that the bank file exists but could not be parsed.
var ErrCorrupt = errors.New("question bank is corrupt")

// Store reads and writes a bank file. It does no locking: two processes adding
// questions at the same time race and the last writer wins.
type Store struct {
	path   string
	logger *zap.Logger
}

// newID is a test seam for question id generation.
var newID = uuid.NewString

// NewStore returns a store for the bank file at path.
func NewStore(path string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{path: path, logger: logger}
}

// Path returns the bank file location.
func (s *Store) Path() string {
	return s.path
}

// Read loads the bank. A missing file is created empty and yields an empty bank.
// Unparseable content yields an empty bank and an error wrapping ErrCorrupt.
func (s *Store) Read() (Bank, error) {
	if s.path == "" {
		return Bank{}, fmt.Errorf("bank path is required")
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return Bank{}, fmt.Errorf("read bank: %w", err)
		}
		if err := s.createEmpty(); err != nil {
			return Bank{}, err
		}
		return Bank{}, nil
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return Bank{}, nil
	}
	var bank Bank
	if err := json.Unmarshal(data, &bank); err != nil {
		return Bank{}, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
	}
	return bank, nil
}

// Load reads the bank and resolves any failure into an empty bank. Failures are
// logged so silent data loss stays visible in the log file.
func (s *Store) Load() Bank {
	bank, err := s.Read()
	if err != nil {
		s.logger.Warn("question bank unreadable, using empty bank",
			zap.String("path", s.path),
			zap.Error(err),
		)
		return Bank{}
	}
	s.logger.Debug("question bank loaded",
		zap.String("path", s.path),
		zap.Int("questions", bank.Len()),
	)
	return bank
}

// Save rewrites the whole bank file using an atomic rename.
func (s *Store) Save(bank Bank) error {
	if s.path == "" {
		return fmt.Errorf("bank path is required")
	}
	if bank.Questions == nil {
		bank.Questions = []quiz.Question{}
	}
	payload, err := json.MarshalIndent(bank, "", "  ")
	if err != nil {
		return fmt.Errorf("encode bank: %w", err)
	}
	tmpPath := s.path + ".tmp"
	file, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		if mkErr := os.MkdirAll(filepath.Dir(s.path), 0o755); mkErr != nil {
			return fmt.Errorf("create bank directory: %w", mkErr)
		}
		file, err = os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return fmt.Errorf("open bank: %w", err)
		}
	}
	_, writeErr := file.Write(payload)
	syncErr := file.Sync()
	closeErr := file.Close()
	for _, err := range []error{writeErr, syncErr, closeErr} {
		if err != nil {
			_ = os.Remove(tmpPath)
			return fmt.Errorf("write bank: %w", err)
		}
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace bank: %w", err)
	}
	s.logger.Debug("question bank saved",
		zap.String("path", s.path),
		zap.Int("questions", bank.Len()),
	)
	return nil
}

// Add appends questions to bank and saves it before returning.
func (s *Store) Add(bank *Bank, questions ...quiz.Question) error {
	for _, q := range questions {
		if q.ID == "" {
			q.ID = newID()
		}
		q.Index = 0
		bank.Questions = append(bank.Questions, q)
		s.logger.Info("question added",
			zap.String("id", q.ID),
			zap.String("question", q.Prompt),
			zap.Int("choices", len(q.Choices)),
		)
	}
	return s.Save(*bank)
}

func (s *Store) createEmpty() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create bank directory: %w", err)
	}
	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("create bank file: %w", err)
	}
	return file.Close()
}
