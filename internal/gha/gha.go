// Package gha writes GitHub Actions step outputs and job summaries. All
// operations are no-ops outside an Actions environment, so the CLI behaves
// the same locally.
package gha

import (
	"fmt"
	"os"
	"strings"
)

const (
	outputEnv  = "GITHUB_OUTPUT"
	summaryEnv = "GITHUB_STEP_SUMMARY"

	appendPerm = 0o644

	// multilineDelimiter fences multiline output values, per the Actions
	// output file protocol.
	multilineDelimiter = "GATEDIFF_EOF"
)

// SetOutput appends a name=value pair to the step's output file.
func SetOutput(name, value string) error {
	path := os.Getenv(outputEnv)
	if path == "" {
		return nil
	}

	line := fmt.Sprintf("%s=%s\n", name, value)
	if strings.Contains(value, "\n") {
		line = fmt.Sprintf("%s<<%s\n%s\n%s\n", name, multilineDelimiter, value, multilineDelimiter)
	}

	return appendFile(path, line)
}

// AppendSummary appends markdown to the job summary.
func AppendSummary(markdown string) error {
	path := os.Getenv(summaryEnv)
	if path == "" {
		return nil
	}

	if !strings.HasSuffix(markdown, "\n") {
		markdown += "\n"
	}

	return appendFile(path, markdown)
}

func appendFile(path, content string) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, appendPerm)
	if err != nil {
		return fmt.Errorf("open actions file %s: %w", path, err)
	}

	_, writeErr := file.WriteString(content)

	closeErr := file.Close()
	if writeErr != nil {
		return fmt.Errorf("append actions file %s: %w", path, writeErr)
	}

	if closeErr != nil {
		return fmt.Errorf("close actions file %s: %w", path, closeErr)
	}

	return nil
}
