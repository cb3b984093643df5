package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/heuristiq/strategist/pkg/domain/assessment"
)

// AppendRun records a run to runs.jsonl. Callers treat this as
// fire-and-forget: a failed append never blocks report delivery.
func (r *FilesystemRepository) AppendRun(run assessment.AssessmentRun) error {
	path, err := r.ResolvePath(RunsFile)
	if err != nil {
		return err
	}

	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to marshal run: %w", err)
	}
	data = append(data, '\n')

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open runs file: %w", err)
	}
	defer f.Close() //nolint:errcheck

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write run: %w", err)
	}

	return nil
}

func (r *FilesystemRepository) LoadRuns() ([]assessment.AssessmentRun, error) {
	path, err := r.ResolvePath(RunsFile)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []assessment.AssessmentRun{}, nil
		}
		return nil, fmt.Errorf("failed to read runs file: %w", err)
	}

	var runs []assessment.AssessmentRun
	lines := bytes.Split(data, []byte("\n"))
	for _, line := range lines {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		var run assessment.AssessmentRun
		if err := json.Unmarshal(line, &run); err != nil {
			continue // Skip malformed lines
		}
		runs = append(runs, run)
	}

	return runs, nil
}
