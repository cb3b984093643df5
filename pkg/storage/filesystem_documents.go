package storage

import (
	"context"
	"fmt"
	"os"

	"github.com/felixgeelhaar/fortify/retry"
	"gopkg.in/yaml.v3"

	"github.com/heuristiq/strategist/pkg/domain/requirements"
)

func (r *FilesystemRepository) SaveStories(stories []requirements.UserStory) error {
	return r.saveYAML(StoriesFile, stories, "stories")
}

// LoadStories returns an empty slice when no stories were imported yet;
// missing documents are not an error.
func (r *FilesystemRepository) LoadStories() ([]requirements.UserStory, error) {
	retryer := retry.New[[]requirements.UserStory](r.retryConfig)
	return retryer.Do(context.Background(), func(ctx context.Context) ([]requirements.UserStory, error) {
		var stories []requirements.UserStory
		if err := r.loadYAML(StoriesFile, &stories, "stories"); err != nil {
			return nil, err
		}
		return stories, nil
	})
}

func (r *FilesystemRepository) SaveSpecs(specs []requirements.FunctionalSpec) error {
	return r.saveYAML(SpecsFile, specs, "specs")
}

func (r *FilesystemRepository) LoadSpecs() ([]requirements.FunctionalSpec, error) {
	retryer := retry.New[[]requirements.FunctionalSpec](r.retryConfig)
	return retryer.Do(context.Background(), func(ctx context.Context) ([]requirements.FunctionalSpec, error) {
		var specs []requirements.FunctionalSpec
		if err := r.loadYAML(SpecsFile, &specs, "specs"); err != nil {
			return nil, err
		}
		return specs, nil
	})
}

func (r *FilesystemRepository) SaveArchitecture(arch *requirements.TechnicalArchitecture) error {
	return r.saveYAML(ArchitectureFile, arch, "architecture")
}

// LoadArchitecture returns nil without error when no architecture was
// recorded; the engine degrades gracefully.
func (r *FilesystemRepository) LoadArchitecture() (*requirements.TechnicalArchitecture, error) {
	path, err := r.ResolvePath(ArchitectureFile)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read architecture file: %w", err)
	}

	var arch requirements.TechnicalArchitecture
	if err := yaml.Unmarshal(data, &arch); err != nil {
		return nil, fmt.Errorf("failed to unmarshal architecture: %w", err)
	}

	return &arch, nil
}

func (r *FilesystemRepository) saveYAML(file string, v interface{}, what string) error {
	path, err := r.ResolvePath(file)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", what, err)
	}

	return os.WriteFile(path, data, 0600)
}

func (r *FilesystemRepository) loadYAML(file string, v interface{}, what string) error {
	path, err := r.ResolvePath(file)
	if err != nil {
		return err
	}

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s file: %w", what, err)
	}

	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", what, err)
	}
	return nil
}
