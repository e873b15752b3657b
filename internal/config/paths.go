package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Path constants used by the CLI and loaders.
const (
	DataDirName       = ".enc"
	QuestionsFileName = "questions.json"
	LogFileName       = "encard.log"
	ConfigFileName    = "config.yml"
)

// userHomeDir is a test seam for resolving the home directory.
var userHomeDir = os.UserHomeDir

// DefaultDataDir returns the .enc directory under the user's home.
func DefaultDataDir() (string, error) {
	home, err := userHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, DataDirName), nil
}

// QuestionsPath returns the question bank file under a data directory.
func QuestionsPath(dataDir string) string {
	return filepath.Join(dataDir, QuestionsFileName)
}

// LogPath returns the log file under a data directory.
func LogPath(dataDir string) string {
	return filepath.Join(dataDir, LogFileName)
}

// ConfigPath returns the optional config file under a data directory.
func ConfigPath(dataDir string) string {
	return filepath.Join(dataDir, ConfigFileName)
}
