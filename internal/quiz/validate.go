package quiz

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a question.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question validation failed: %s", strings.Join(parts, "; "))
}

// Unwrap lets errors.Is match ErrInvalidArgument.
func (err *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

// IssueCollector accumulates issues under a field prefix.
type IssueCollector struct {
	issues []Issue
}

// Add records a single issue.
func (collector *IssueCollector) Add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

// Result returns a *ValidationError when any issue was recorded.
func (collector *IssueCollector) Result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Validate checks that a question can be displayed and answered.
func (q Question) Validate() error {
	collector := &IssueCollector{}
	q.collectIssues(collector, "")
	return collector.Result()
}

// CollectIssues validates q and records issues under prefix.
func (q Question) CollectIssues(collector *IssueCollector, prefix string) {
	q.collectIssues(collector, prefix)
}

func (q Question) collectIssues(collector *IssueCollector, prefix string) {
	field := func(name string) string {
		if prefix == "" {
			return name
		}
		return prefix + "." + name
	}
	if strings.TrimSpace(q.Prompt) == "" {
		collector.Add(field("question"), "is required")
	}
	if len(q.Choices) == 0 {
		collector.Add(field("choices"), "must include at least one entry")
		return
	}
	correct := 0
	for i, choice := range q.Choices {
		if strings.TrimSpace(choice.Text) == "" {
			collector.Add(fmt.Sprintf("%s[%d]", field("choices"), i), "is required")
		}
		if choice.Correct {
			correct++
		}
	}
	if correct > 1 {
		collector.Add(field("choices"), fmt.Sprintf("has %d correct entries, expected at most one", correct))
	}
	if q.Index < 0 || q.Index >= len(q.Choices) {
		collector.Add(field("index"), fmt.Sprintf("out of range [0, %d)", len(q.Choices)))
	}
}
