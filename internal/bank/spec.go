package bank

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"encard/internal/quiz"
)

// SpecVersion is the only supported question file version.
const SpecVersion = 1

// Spec is the schema of a question file accepted by the import command.
type Spec struct {
	Version   int         `json:"version" yaml:"version"`
	Questions []SpecEntry `json:"questions" yaml:"questions"`
}

// SpecEntry describes one question with the index of its correct choice.
type SpecEntry struct {
	Question string   `json:"question" yaml:"question"`
	Choices  []string `json:"choices" yaml:"choices"`
	Answer   int      `json:"answer" yaml:"answer"`
}

// LoadSpec reads, parses, and validates a question file into questions.
func LoadSpec(path string) ([]quiz.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question file: %w", err)
	}
	spec, err := parseSpec(data, path)
	if err != nil {
		return nil, err
	}
	return BuildSpec(spec)
}

// BuildSpec converts a parsed spec into questions, collecting every issue.
func BuildSpec(spec Spec) ([]quiz.Question, error) {
	collector := &quiz.IssueCollector{}
	if spec.Version == 0 {
		collector.Add("version", "is required")
	} else if spec.Version != SpecVersion {
		collector.Add("version", fmt.Sprintf("unsupported version %d", spec.Version))
	}
	if len(spec.Questions) == 0 {
		collector.Add("questions", "must include at least one entry")
	}

	questions := make([]quiz.Question, 0, len(spec.Questions))
	for i, entry := range spec.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		if entry.Answer < 0 || entry.Answer >= len(entry.Choices) {
			collector.Add(prefix+".answer", fmt.Sprintf("index %d out of range [0, %d)", entry.Answer, len(entry.Choices)))
		}
		q := quiz.FromLabels(strings.TrimSpace(entry.Question), entry.Choices, entry.Answer)
		q.CollectIssues(collector, prefix)
		questions = append(questions, q)
	}

	if err := collector.Result(); err != nil {
		return nil, err
	}
	return questions, nil
}

// documentDecoder is satisfied by both the JSON and the YAML decoder.
type documentDecoder interface {
	Decode(v any) error
}

// parseSpec picks the decoder by file extension; anything but .json is YAML.
// Both decoders reject unknown fields.
func parseSpec(data []byte, path string) (Spec, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return decodeSpec("json", dec)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return decodeSpec("yaml", dec)
}

// decodeSpec reads exactly one document from dec.
func decodeSpec(format string, dec documentDecoder) (Spec, error) {
	var spec Spec
	if err := dec.Decode(&spec); err != nil {
		return Spec{}, fmt.Errorf("decode %s question file: %w", format, err)
	}
	var extra any
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
		return spec, nil
	case err == nil:
		return Spec{}, fmt.Errorf("decode %s question file: expected a single document, found multiple", format)
	default:
		return Spec{}, fmt.Errorf("decode %s question file: trailing data: %w", format, err)
	}
}
