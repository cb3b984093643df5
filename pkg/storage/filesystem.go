// Package storage persists strategist artifacts under the .strategist/
// workspace directory.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/felixgeelhaar/fortify/retry"

	"github.com/heuristiq/strategist/pkg/domain"
	"github.com/heuristiq/strategist/pkg/domain/assessment"
)

const StrategistDir = ".strategist"
const StoriesFile = "stories.yaml"
const SpecsFile = "specs.yaml"
const ArchitectureFile = "architecture.yaml"
const PolicyFile = "policy.yaml"
const AssessmentFile = "assessment.json"
const RunsFile = "runs.jsonl"
const EventsFile = "events.jsonl"
const UsageFile = "usage.json"

type FilesystemRepository struct {
	root        string
	retryConfig retry.Config
}

var _ domain.WorkspaceRepository = (*FilesystemRepository)(nil)

func NewFilesystemRepository(root string) *FilesystemRepository {
	return &FilesystemRepository{
		root: root,
		retryConfig: retry.Config{
			MaxAttempts:   3,
			InitialDelay:  10 * time.Millisecond,
			BackoffPolicy: retry.BackoffExponential,
		},
	}
}

// Root returns the workspace root directory.
func (r *FilesystemRepository) Root() string {
	return r.root
}

// ResolvePath ensures the path is within the .strategist directory and
// prevents traversal.
func (r *FilesystemRepository) ResolvePath(filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("filename cannot be empty")
	}

	baseDir := filepath.Join(r.root, StrategistDir)
	fullPath := filepath.Join(baseDir, filename)
	cleanPath := filepath.Clean(fullPath)

	// Check for traversal and ensure it's a direct child (no nested subdirs)
	if !strings.HasPrefix(cleanPath, baseDir) || filepath.Dir(cleanPath) != baseDir {
		return "", fmt.Errorf("invalid file path: %s", filename)
	}

	return cleanPath, nil
}

func (r *FilesystemRepository) Initialize() error {
	path := filepath.Join(r.root, StrategistDir)
	// G301: Use 0700 for directories
	if err := os.MkdirAll(path, 0700); err != nil {
		return fmt.Errorf("failed to create .strategist directory: %w", err)
	}
	return nil
}

func (r *FilesystemRepository) IsInitialized() bool {
	_, err := os.Stat(filepath.Join(r.root, StrategistDir))
	return err == nil
}

func (r *FilesystemRepository) SaveAssessment(a *assessment.Assessment) error {
	path, err := r.ResolvePath(AssessmentFile)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal assessment: %w", err)
	}

	// G306: Use 0600 for files
	return os.WriteFile(path, data, 0600)
}

// LoadAssessment retries on read failure: the watch path can race a
// writer mid-save.
func (r *FilesystemRepository) LoadAssessment() (*assessment.Assessment, error) {
	retryer := retry.New[*assessment.Assessment](r.retryConfig)

	return retryer.Do(context.Background(), func(ctx context.Context) (*assessment.Assessment, error) {
		path, err := r.ResolvePath(AssessmentFile)
		if err != nil {
			return nil, err
		}

		// #nosec G304 -- Path is resolved and validated via ResolvePath
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read assessment file: %w", err)
		}

		var a assessment.Assessment
		if err := json.Unmarshal(data, &a); err != nil {
			return nil, fmt.Errorf("failed to unmarshal assessment: %w", err)
		}

		return &a, nil
	})
}
