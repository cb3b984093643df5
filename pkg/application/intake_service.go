// Package application wires the domain engine to storage, AI providers
// and the audit trail.
package application

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/heuristiq/strategist/pkg/domain"
	"github.com/heuristiq/strategist/pkg/domain/requirements"
)

// IntakeService imports requirement documents into the workspace.
type IntakeService struct {
	repo domain.WorkspaceRepository
}

func NewIntakeService(repo domain.WorkspaceRepository) *IntakeService {
	return &IntakeService{repo: repo}
}

// ImportStories reads a markdown or YAML file of user stories and saves
// them, replacing any previously imported stories.
func (s *IntakeService) ImportStories(path string) ([]requirements.UserStory, error) {
	var stories []requirements.UserStory
	var err error

	if isYAML(path) {
		err = loadYAMLFile(path, &stories)
	} else {
		stories, err = s.parseStoriesMarkdown(path)
	}
	if err != nil {
		return nil, err
	}
	if len(stories) == 0 {
		return nil, fmt.Errorf("no user stories found in %s", path)
	}

	if err := s.repo.SaveStories(stories); err != nil {
		return nil, fmt.Errorf("failed to save stories: %w", err)
	}
	return stories, nil
}

// ImportSpecs reads a markdown or YAML file of functional specifications.
func (s *IntakeService) ImportSpecs(path string) ([]requirements.FunctionalSpec, error) {
	var specs []requirements.FunctionalSpec
	var err error

	if isYAML(path) {
		err = loadYAMLFile(path, &specs)
	} else {
		var sp *requirements.FunctionalSpec
		sp, err = s.parseSpecMarkdown(path)
		if sp != nil {
			specs = []requirements.FunctionalSpec{*sp}
		}
	}
	if err != nil {
		return nil, err
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("no specifications found in %s", path)
	}

	if err := s.repo.SaveSpecs(specs); err != nil {
		return nil, fmt.Errorf("failed to save specs: %w", err)
	}
	return specs, nil
}

// ImportArchitecture reads an architecture description. Architecture is
// optional input; assessments degrade gracefully without it.
func (s *IntakeService) ImportArchitecture(path string) (*requirements.TechnicalArchitecture, error) {
	var arch *requirements.TechnicalArchitecture
	var err error

	if isYAML(path) {
		arch = &requirements.TechnicalArchitecture{}
		err = loadYAMLFile(path, arch)
	} else {
		arch, err = s.parseArchitectureMarkdown(path)
	}
	if err != nil {
		return nil, err
	}
	if arch == nil || (len(arch.Components) == 0 && len(arch.Interfaces) == 0 && len(arch.Technologies) == 0) {
		return nil, fmt.Errorf("no architecture elements found in %s", path)
	}

	if err := s.repo.SaveArchitecture(arch); err != nil {
		return nil, fmt.Errorf("failed to save architecture: %w", err)
	}
	return arch, nil
}

// AnalyzeDirectory crawls a directory for markdown files, classifies each
// as stories, spec or architecture by content, and imports everything it
// finds into the workspace.
func (s *IntakeService) AnalyzeDirectory(root string) (*requirements.DocumentSet, error) {
	var stories []requirements.UserStory
	var specs []requirements.FunctionalSpec
	var arch *requirements.TechnicalArchitecture

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || (!strings.HasSuffix(info.Name(), ".md") && !strings.HasSuffix(info.Name(), ".markdown")) {
			return nil
		}
		// Skip strategist internals and hidden files
		if strings.Contains(path, ".strategist") || strings.HasPrefix(info.Name(), ".") {
			return nil
		}

		switch classifyDocument(path) {
		case "stories":
			parsed, err := s.parseStoriesMarkdown(path)
			if err != nil {
				return nil // Skip files that fail to parse
			}
			stories = append(stories, parsed...)
		case "architecture":
			parsed, err := s.parseArchitectureMarkdown(path)
			if err != nil {
				return nil
			}
			if arch == nil {
				arch = parsed
			} else {
				arch.Components = append(arch.Components, parsed.Components...)
				arch.Interfaces = append(arch.Interfaces, parsed.Interfaces...)
				arch.DataFlows = append(arch.DataFlows, parsed.DataFlows...)
				arch.Technologies = append(arch.Technologies, parsed.Technologies...)
			}
		default:
			parsed, err := s.parseSpecMarkdown(path)
			if err != nil {
				return nil
			}
			specs = append(specs, *parsed)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	set := &requirements.DocumentSet{Stories: stories, Specs: specs, Architecture: arch}
	if set.IsEmpty() {
		return nil, fmt.Errorf("no requirement documents found in directory: %s", root)
	}

	if len(stories) > 0 {
		if err := s.repo.SaveStories(stories); err != nil {
			return nil, fmt.Errorf("failed to save stories: %w", err)
		}
	}
	if len(specs) > 0 {
		if err := s.repo.SaveSpecs(specs); err != nil {
			return nil, fmt.Errorf("failed to save specs: %w", err)
		}
	}
	if arch != nil {
		if err := s.repo.SaveArchitecture(arch); err != nil {
			return nil, fmt.Errorf("failed to save architecture: %w", err)
		}
	}

	return set, nil
}

// LoadDocumentSet assembles the current workspace documents.
func (s *IntakeService) LoadDocumentSet() (*requirements.DocumentSet, error) {
	stories, err := s.repo.LoadStories()
	if err != nil {
		return nil, fmt.Errorf("failed to load stories: %w", err)
	}
	specs, err := s.repo.LoadSpecs()
	if err != nil {
		return nil, fmt.Errorf("failed to load specs: %w", err)
	}
	arch, err := s.repo.LoadArchitecture()
	if err != nil {
		return nil, fmt.Errorf("failed to load architecture: %w", err)
	}
	return &requirements.DocumentSet{Stories: stories, Specs: specs, Architecture: arch}, nil
}

// classifyDocument peeks at a markdown file's content to decide what kind
// of requirement artifact it holds.
func classifyDocument(path string) string {
	// #nosec G304 -- Caller controls the import path
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "spec"
	}
	lower := strings.ToLower(string(data))
	if strings.Contains(lower, "as a ") && strings.Contains(lower, "i want ") {
		return "stories"
	}
	if strings.Contains(lower, "## components") || strings.Contains(lower, "## interfaces") || strings.Contains(lower, "## technologies") {
		return "architecture"
	}
	return "spec"
}

// parseStoriesMarkdown reads stories from a markdown file. Each "## "
// heading starts a story; "As a" / "I want" / "So that" lines fill the
// narrative, "Priority:" / "Tags:" / "Epic:" lines fill metadata, and
// bullets after "Acceptance Criteria" become criteria.
func (s *IntakeService) parseStoriesMarkdown(path string) ([]requirements.UserStory, error) {
	cleanPath := filepath.Clean(path)
	file, err := os.Open(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close() //nolint:errcheck // best-effort close on read path

	var stories []requirements.UserStory
	var current *requirements.UserStory
	inCriteria := false

	flush := func() {
		if current != nil {
			stories = append(stories, *current)
			current = nil
		}
		inCriteria = false
	}

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case strings.HasPrefix(line, "## "):
			flush()
			title := strings.TrimSpace(strings.TrimPrefix(line, "## "))
			current = &requirements.UserStory{
				ID:    "story-" + slug(title),
				Title: title,
			}
		case current == nil:
			continue
		case strings.HasPrefix(strings.ToLower(line), "as a "):
			current.AsA = strings.TrimSpace(line[len("as a "):])
		case strings.HasPrefix(strings.ToLower(line), "as an "):
			current.AsA = strings.TrimSpace(line[len("as an "):])
		case strings.HasPrefix(strings.ToLower(line), "i want "):
			current.IWant = strings.TrimSpace(line[len("i want "):])
		case strings.HasPrefix(strings.ToLower(line), "so that "):
			current.SoThat = strings.TrimSpace(line[len("so that "):])
		case strings.HasPrefix(strings.ToLower(line), "priority:"):
			current.Priority = strings.TrimSpace(line[len("priority:"):])
		case strings.HasPrefix(strings.ToLower(line), "epic:"):
			current.EpicID = strings.TrimSpace(line[len("epic:"):])
		case strings.HasPrefix(strings.ToLower(line), "tags:"):
			for _, tag := range strings.Split(line[len("tags:"):], ",") {
				if t := strings.TrimSpace(tag); t != "" {
					current.Tags = append(current.Tags, t)
				}
			}
		case strings.HasPrefix(strings.ToLower(line), "acceptance criteria"):
			inCriteria = true
		case inCriteria && strings.HasPrefix(line, "- "):
			desc := strings.TrimSpace(strings.TrimPrefix(line, "- "))
			current.AcceptanceCriteria = append(current.AcceptanceCriteria, requirements.AcceptanceCriterion{
				ID:          fmt.Sprintf("%s-ac-%d", current.ID, len(current.AcceptanceCriteria)+1),
				Description: desc,
			})
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return stories, nil
}

// parseSpecMarkdown reads one functional specification from a markdown
// file. Bullets under "## Requirements" become requirements; a "NFR:"
// prefix marks a requirement non-functional.
func (s *IntakeService) parseSpecMarkdown(path string) (*requirements.FunctionalSpec, error) {
	cleanPath := filepath.Clean(path)
	file, err := os.Open(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close() //nolint:errcheck // best-effort close on read path

	spec := &requirements.FunctionalSpec{}
	section := ""
	var overview strings.Builder

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case strings.HasPrefix(line, "# "):
			spec.Title = strings.TrimSpace(strings.TrimPrefix(line, "# "))
			spec.ID = "spec-" + slug(spec.Title)
		case strings.HasPrefix(line, "## "):
			section = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(line, "## ")))
		case strings.HasPrefix(line, "- "):
			item := strings.TrimSpace(strings.TrimPrefix(line, "- "))
			switch section {
			case "requirements":
				reqType := "functional"
				if strings.HasPrefix(strings.ToUpper(item), "NFR:") {
					reqType = "non-functional"
					item = strings.TrimSpace(item[len("NFR:"):])
				}
				spec.Requirements = append(spec.Requirements, requirements.Requirement{
					ID:          fmt.Sprintf("%s-req-%d", spec.ID, len(spec.Requirements)+1),
					Description: item,
					Type:        reqType,
				})
			case "constraints":
				spec.Constraints = append(spec.Constraints, item)
			case "assumptions":
				spec.Assumptions = append(spec.Assumptions, item)
			}
		case section == "" && line != "":
			overview.WriteString(line + " ")
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	spec.Overview = strings.TrimSpace(overview.String())
	if spec.ID == "" {
		spec.ID = "spec-" + slug(filepath.Base(cleanPath))
	}
	return spec, nil
}

// parseArchitectureMarkdown reads architecture elements from a markdown
// file. Bullet format: "name (type): detail, detail". The part after the
// colon holds dependencies for components and endpoints for interfaces.
func (s *IntakeService) parseArchitectureMarkdown(path string) (*requirements.TechnicalArchitecture, error) {
	cleanPath := filepath.Clean(path)
	file, err := os.Open(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close() //nolint:errcheck // best-effort close on read path

	arch := &requirements.TechnicalArchitecture{}
	section := ""

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case strings.HasPrefix(line, "## "):
			section = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(line, "## ")))
		case strings.HasPrefix(line, "- "):
			item := strings.TrimSpace(strings.TrimPrefix(line, "- "))
			name, kind, rest := parseArchBullet(item)
			switch section {
			case "components":
				arch.Components = append(arch.Components, requirements.Component{
					Name:         name,
					Type:         kind,
					Dependencies: splitList(rest),
				})
			case "interfaces":
				arch.Interfaces = append(arch.Interfaces, requirements.Interface{
					Name:      name,
					Type:      kind,
					Endpoints: splitList(rest),
				})
			case "data flows":
				arch.DataFlows = append(arch.DataFlows, item)
			case "technologies":
				arch.Technologies = append(arch.Technologies, requirements.Technology{
					Name:     name,
					Category: kind,
					Version:  rest,
				})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return arch, nil
}

// parseArchBullet splits "name (type): rest" into its parts. Both the
// parenthesized type and the trailing detail are optional.
func parseArchBullet(item string) (name, kind, rest string) {
	if idx := strings.Index(item, ":"); idx >= 0 {
		rest = strings.TrimSpace(item[idx+1:])
		item = strings.TrimSpace(item[:idx])
	}
	if open := strings.Index(item, "("); open >= 0 {
		if end := strings.Index(item[open:], ")"); end >= 0 {
			kind = strings.TrimSpace(item[open+1 : open+end])
			item = strings.TrimSpace(item[:open])
		}
	}
	return item, kind, rest
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func loadYAMLFile(path string, v interface{}) error {
	// #nosec G304 -- Caller controls the import path
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}
