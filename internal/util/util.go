package util

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kubev2v/search-task-gang/internal/models"
)

// maxLineSize bounds a single input line read from a file.
const maxLineSize = 1024 * 1024

// InputsFromStrings wraps inline strings into inputs named input-<i>.
func InputsFromStrings(texts []string) []models.Input {
	inputs := make([]models.Input, 0, len(texts))
	for i, t := range texts {
		inputs = append(inputs, models.Input{ID: fmt.Sprintf("input-%d", i), Text: t})
	}
	return inputs
}

// ReadInputs returns one input per non blank line of r. Each input is named
// <source>:<line>, line numbers start at 1.
func ReadInputs(source string, r io.Reader) ([]models.Input, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var inputs []models.Input
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		inputs = append(inputs, models.Input{ID: fmt.Sprintf("%s:%d", source, line), Text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s at line %d: %w", source, line+1, err)
	}

	return inputs, nil
}

// ReadInputFile opens path and reads its inputs.
func ReadInputFile(path string) ([]models.Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ReadInputs(path, f)
}
