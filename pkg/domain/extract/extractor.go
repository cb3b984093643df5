// Package extract turns requirement artifacts into classified fragments.
// Extraction is structural: every story intent, acceptance criterion,
// requirement, component, and interface becomes exactly one fragment, with
// keyword-derived candidate categories as hints for the classifier.
package extract

import (
	"fmt"
	"regexp"

	"github.com/heuristiq/strategist/pkg/domain/assessment"
	"github.com/heuristiq/strategist/pkg/domain/requirements"
)

// categoryHints maps each category to the keyword families that suggest a
// fragment touches it. Hints are additive; a fragment can carry several.
var categoryHints = []struct {
	category assessment.Category
	re       *regexp.Regexp
}{
	{assessment.CategoryStructure, regexp.MustCompile(`(?i)\b(component|module|librar|dependenc|deploy|artifact|package|build)`)},
	{assessment.CategoryFunction, regexp.MustCompile(`(?i)\b(calculat|comput|validat|process|transform|workflow|rule|authenticat|authoriz|encrypt)`)},
	{assessment.CategoryData, regexp.MustCompile(`(?i)\b(data|record|field|input|output|file|database|stor|import|export|payload)`)},
	{assessment.CategoryInterfaces, regexp.MustCompile(`(?i)\b(api|endpoint|ui|screen|page|interface|integrat|webhook|sdk|cli)`)},
	{assessment.CategoryPlatform, regexp.MustCompile(`(?i)\b(browser|mobile|device|os\b|platform|cloud|server|environment|docker|kubernetes)`)},
	{assessment.CategoryOperations, regexp.MustCompile(`(?i)\b(user|admin|operator|monitor|support|maintain|backup|restore|upgrade|migrat)`)},
	{assessment.CategoryTime, regexp.MustCompile(`(?i)\b(schedul|timeout|concurren|parallel|daily|hourly|cron|latency|rate|expir|real.?time)`)},
}

// Extractor produces fragments from a document set.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract walks the document set in declaration order and emits fragments
// with deterministic IDs (frag-<sourceID>-<seq>). Sequence numbers restart
// per source artifact so a reordered document list cannot renumber
// fragments of an unchanged artifact.
func (e *Extractor) Extract(set *requirements.DocumentSet) []assessment.Fragment {
	var frags []assessment.Fragment

	for _, s := range set.Stories {
		seq := 0
		prio := assessment.ParsePriority(s.Priority)

		frags = append(frags, e.fragment(s.ID, &seq, s.Intent(), assessment.FragmentAction, "story", prio, s.Tags))
		for _, ac := range s.AcceptanceCriteria {
			frags = append(frags, e.fragment(s.ID, &seq, ac.Description, assessment.FragmentCondition, "criterion", prio, s.Tags))
		}
	}

	for _, sp := range set.Specs {
		seq := 0
		for _, r := range sp.Requirements {
			kind := assessment.FragmentAction
			if r.Type == "non-functional" || r.Type == "constraint" {
				kind = assessment.FragmentConstraint
			}
			frags = append(frags, e.fragment(sp.ID, &seq, r.Description, kind, "spec", assessment.ParsePriority(r.Priority), nil))
		}
		for _, c := range sp.Constraints {
			frags = append(frags, e.fragment(sp.ID, &seq, c, assessment.FragmentConstraint, "spec", assessment.PriorityP2, nil))
		}
	}

	if set.Architecture != nil {
		seq := 0
		for _, c := range set.Architecture.Components {
			text := fmt.Sprintf("%s (%s)", c.Name, c.Type)
			frags = append(frags, e.fragment("arch", &seq, text, assessment.FragmentAction, "architecture", assessment.PriorityP2, nil))
		}
		for _, i := range set.Architecture.Interfaces {
			text := fmt.Sprintf("%s (%s)", i.Name, i.Type)
			frags = append(frags, e.fragment("arch", &seq, text, assessment.FragmentInterface, "architecture", assessment.PriorityP2, nil))
		}
		for _, f := range set.Architecture.DataFlows {
			frags = append(frags, e.fragment("arch", &seq, f, assessment.FragmentData, "architecture", assessment.PriorityP2, nil))
		}
		for _, t := range set.Architecture.Technologies {
			text := fmt.Sprintf("%s (%s)", t.Name, t.Category)
			frags = append(frags, e.fragment("arch", &seq, text, assessment.FragmentConstraint, "architecture", assessment.PriorityP2, nil))
		}
	}

	return frags
}

func (e *Extractor) fragment(sourceID string, seq *int, text string, kind assessment.FragmentKind, sourceType string, prio assessment.Priority, tags []string) assessment.Fragment {
	f := assessment.Fragment{
		ID:                  fmt.Sprintf("frag-%s-%d", sourceID, *seq),
		Text:                text,
		Kind:                kind,
		SourceID:            sourceID,
		SourceType:          sourceType,
		CandidateCategories: candidateCategories(text),
		Priority:            prio,
		Tags:                tags,
	}
	*seq++
	return f
}

// candidateCategories returns the categories whose keyword families match
// the fragment text, in canonical category order.
func candidateCategories(text string) []assessment.Category {
	var cats []assessment.Category
	for _, h := range categoryHints {
		if h.re.MatchString(text) {
			cats = append(cats, h.category)
		}
	}
	return cats
}
