package requirements

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// UserStory represents a single user story with its acceptance criteria.
type UserStory struct {
	ID                 string                `json:"id" yaml:"id"`
	Title              string                `json:"title" yaml:"title"`
	AsA                string                `json:"as_a" yaml:"as_a"`
	IWant              string                `json:"i_want" yaml:"i_want"`
	SoThat             string                `json:"so_that" yaml:"so_that"`
	AcceptanceCriteria []AcceptanceCriterion `json:"acceptance_criteria" yaml:"acceptance_criteria"`
	Priority           string                `json:"priority,omitempty" yaml:"priority,omitempty"`
	EpicID             string                `json:"epic_id,omitempty" yaml:"epic_id,omitempty"`
	Tags               []string              `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// AcceptanceCriterion is a single testable condition attached to a story.
type AcceptanceCriterion struct {
	ID          string `json:"id" yaml:"id"`
	Description string `json:"description" yaml:"description"`
}

// HasTag reports whether the story carries the given tag (case-insensitive).
func (s *UserStory) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Intent renders the story's narrative as a single sentence.
func (s *UserStory) Intent() string {
	parts := []string{}
	if s.AsA != "" {
		parts = append(parts, "As a "+s.AsA)
	}
	if s.IWant != "" {
		parts = append(parts, "I want "+s.IWant)
	}
	if s.SoThat != "" {
		parts = append(parts, "so that "+s.SoThat)
	}
	if len(parts) == 0 {
		return s.Title
	}
	return strings.Join(parts, ", ")
}

// FunctionalSpec represents a functional specification document.
type FunctionalSpec struct {
	ID           string        `json:"id" yaml:"id"`
	Title        string        `json:"title" yaml:"title"`
	Overview     string        `json:"overview" yaml:"overview"`
	Requirements []Requirement `json:"requirements" yaml:"requirements"`
	Constraints  []string      `json:"constraints,omitempty" yaml:"constraints,omitempty"`
	Assumptions  []string      `json:"assumptions,omitempty" yaml:"assumptions,omitempty"`
}

// Requirement is a granular requirement inside a functional spec.
type Requirement struct {
	ID          string `json:"id" yaml:"id"`
	Description string `json:"description" yaml:"description"`
	Type        string `json:"type,omitempty" yaml:"type,omitempty"` // functional | non-functional | constraint
	Priority    string `json:"priority,omitempty" yaml:"priority,omitempty"`
}

// TechnicalArchitecture describes the known system structure.
type TechnicalArchitecture struct {
	Components   []Component  `json:"components" yaml:"components"`
	Interfaces   []Interface  `json:"interfaces" yaml:"interfaces"`
	DataFlows    []string     `json:"data_flows,omitempty" yaml:"data_flows,omitempty"`
	Technologies []Technology `json:"technologies,omitempty" yaml:"technologies,omitempty"`
}

// Component is a named architectural unit.
type Component struct {
	Name         string   `json:"name" yaml:"name"`
	Type         string   `json:"type" yaml:"type"`
	Dependencies []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// Interface is a boundary through which the system is exercised.
type Interface struct {
	Name      string   `json:"name" yaml:"name"`
	Type      string   `json:"type" yaml:"type"` // rest | graphql | ui | cli | queue | file
	Endpoints []string `json:"endpoints,omitempty" yaml:"endpoints,omitempty"`
}

// Technology is a named technology choice.
type Technology struct {
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category" yaml:"category"`
	Version  string `json:"version,omitempty" yaml:"version,omitempty"`
}

// DocumentSet is the full input to one assessment run. Architecture is
// optional; the engine degrades gracefully when it is nil.
type DocumentSet struct {
	Stories      []UserStory            `json:"stories" yaml:"stories"`
	Specs        []FunctionalSpec       `json:"specs" yaml:"specs"`
	Architecture *TechnicalArchitecture `json:"architecture,omitempty" yaml:"architecture,omitempty"`
}

// IsEmpty reports whether the set contains no requirement artifacts at all.
func (d *DocumentSet) IsEmpty() bool {
	return len(d.Stories) == 0 && len(d.Specs) == 0 &&
		(d.Architecture == nil || (len(d.Architecture.Components) == 0 && len(d.Architecture.Interfaces) == 0))
}

// CorpusText returns the lower-cased concatenation of all document text.
// Theme inference runs over this once per assessment.
func (d *DocumentSet) CorpusText() string {
	var b strings.Builder
	for _, s := range d.Stories {
		b.WriteString(s.Title)
		b.WriteString(" ")
		b.WriteString(s.Intent())
		b.WriteString(" ")
		for _, ac := range s.AcceptanceCriteria {
			b.WriteString(ac.Description)
			b.WriteString(" ")
		}
		for _, tag := range s.Tags {
			b.WriteString(tag)
			b.WriteString(" ")
		}
	}
	for _, sp := range d.Specs {
		b.WriteString(sp.Title)
		b.WriteString(" ")
		b.WriteString(sp.Overview)
		b.WriteString(" ")
		for _, r := range sp.Requirements {
			b.WriteString(r.Description)
			b.WriteString(" ")
		}
		for _, c := range sp.Constraints {
			b.WriteString(c)
			b.WriteString(" ")
		}
		for _, a := range sp.Assumptions {
			b.WriteString(a)
			b.WriteString(" ")
		}
	}
	if d.Architecture != nil {
		for _, c := range d.Architecture.Components {
			b.WriteString(c.Name)
			b.WriteString(" ")
			b.WriteString(c.Type)
			b.WriteString(" ")
		}
		for _, i := range d.Architecture.Interfaces {
			b.WriteString(i.Name)
			b.WriteString(" ")
			b.WriteString(i.Type)
			b.WriteString(" ")
		}
		for _, f := range d.Architecture.DataFlows {
			b.WriteString(f)
			b.WriteString(" ")
		}
		for _, t := range d.Architecture.Technologies {
			b.WriteString(t.Name)
			b.WriteString(" ")
			b.WriteString(t.Category)
			b.WriteString(" ")
		}
	}
	return strings.ToLower(b.String())
}

// Hash returns a deterministic hash of the document set, used to detect
// document changes between assessment runs.
func (d *DocumentSet) Hash() string {
	h := sha256.New()
	for _, s := range d.Stories {
		h.Write([]byte(s.ID))
		h.Write([]byte(s.Title))
		h.Write([]byte(s.Intent()))
		for _, ac := range s.AcceptanceCriteria {
			h.Write([]byte(ac.ID))
			h.Write([]byte(ac.Description))
		}
	}
	for _, sp := range d.Specs {
		h.Write([]byte(sp.ID))
		h.Write([]byte(sp.Title))
		for _, r := range sp.Requirements {
			h.Write([]byte(r.ID))
			h.Write([]byte(r.Description))
		}
	}
	if d.Architecture != nil {
		for _, c := range d.Architecture.Components {
			h.Write([]byte(c.Name))
			h.Write([]byte(c.Type))
		}
		for _, i := range d.Architecture.Interfaces {
			h.Write([]byte(i.Name))
			h.Write([]byte(i.Type))
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Validate checks the document set for structural integrity.
func (d *DocumentSet) Validate() []error {
	var errs []error

	seenStories := make(map[string]bool)
	for i, s := range d.Stories {
		if s.ID == "" {
			errs = append(errs, fmt.Errorf("story at index %d missing ID", i))
			continue
		}
		if seenStories[s.ID] {
			errs = append(errs, fmt.Errorf("duplicate story ID: %s", s.ID))
		}
		seenStories[s.ID] = true
		if s.Title == "" && s.IWant == "" {
			errs = append(errs, fmt.Errorf("story '%s' has neither title nor narrative", s.ID))
		}
		seenACs := make(map[string]bool)
		for j, ac := range s.AcceptanceCriteria {
			if ac.ID == "" {
				errs = append(errs, fmt.Errorf("story '%s' criterion at index %d missing ID", s.ID, j))
				continue
			}
			if seenACs[ac.ID] {
				errs = append(errs, fmt.Errorf("story '%s' has duplicate criterion ID: %s", s.ID, ac.ID))
			}
			seenACs[ac.ID] = true
		}
	}

	seenSpecs := make(map[string]bool)
	for i, sp := range d.Specs {
		if sp.ID == "" {
			errs = append(errs, fmt.Errorf("spec at index %d missing ID", i))
			continue
		}
		if seenSpecs[sp.ID] {
			errs = append(errs, fmt.Errorf("duplicate spec ID: %s", sp.ID))
		}
		seenSpecs[sp.ID] = true
		for j, r := range sp.Requirements {
			if r.ID == "" {
				errs = append(errs, fmt.Errorf("spec '%s' requirement at index %d missing ID", sp.ID, j))
			}
			if r.Description == "" {
				errs = append(errs, fmt.Errorf("spec '%s' requirement '%s' missing description", sp.ID, r.ID))
			}
		}
	}

	if d.Architecture != nil {
		seenComponents := make(map[string]bool)
		for i, c := range d.Architecture.Components {
			if c.Name == "" {
				errs = append(errs, fmt.Errorf("architecture component at index %d missing name", i))
				continue
			}
			if seenComponents[c.Name] {
				errs = append(errs, fmt.Errorf("duplicate architecture component: %s", c.Name))
			}
			seenComponents[c.Name] = true
		}
	}

	return errs
}
