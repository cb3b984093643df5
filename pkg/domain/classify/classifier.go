// Package classify implements the seven category passes that turn
// fragments and theme context into test opportunities. Each pass is a pure
// function; passes share no mutable state and run in parallel.
package classify

import (
	"sync"

	"github.com/heuristiq/strategist/pkg/domain/assessment"
	"github.com/heuristiq/strategist/pkg/domain/requirements"
	"github.com/heuristiq/strategist/pkg/domain/theme"
)

// Input bundles the read-only data every category pass consumes.
type Input struct {
	Set       *requirements.DocumentSet
	Fragments []assessment.Fragment
	Theme     *theme.ThemeContext
}

// Classifier runs the SFDIPOT category passes.
type Classifier struct{}

func NewClassifier() *Classifier {
	return &Classifier{}
}

type categoryPass func(in Input) []assessment.TestOpportunity

var passes = map[assessment.Category]categoryPass{
	assessment.CategoryStructure:  classifyStructure,
	assessment.CategoryFunction:   classifyFunction,
	assessment.CategoryData:       classifyData,
	assessment.CategoryInterfaces: classifyInterfaces,
	assessment.CategoryPlatform:   classifyPlatform,
	assessment.CategoryOperations: classifyOperations,
	assessment.CategoryTime:       classifyTime,
}

// ClassifyAll runs all seven passes concurrently. Each goroutine writes
// into its own fixed slot, so results are ordered and race-free without
// locking.
func (c *Classifier) ClassifyAll(in Input) map[assessment.Category][]assessment.TestOpportunity {
	cats := assessment.Categories()
	results := make([][]assessment.TestOpportunity, len(cats))

	var wg sync.WaitGroup
	for i, cat := range cats {
		wg.Add(1)
		go func(slot int, pass categoryPass) {
			defer wg.Done()
			results[slot] = pass(in)
		}(i, passes[cat])
	}
	wg.Wait()

	out := make(map[assessment.Category][]assessment.TestOpportunity, len(cats))
	for i, cat := range cats {
		out[cat] = results[i]
	}
	return out
}

// builder accumulates a pass's opportunities. The first opportunity for a
// given identity wins; later rule hits on the same placement merge their
// fragment references instead of duplicating the ID.
type builder struct {
	opps  []assessment.TestOpportunity
	index map[string]int
}

func newBuilder() *builder {
	return &builder{index: make(map[string]int)}
}

func (b *builder) derived(cat assessment.Category, sub assessment.Subcategory, frag assessment.Fragment, description string, tech assessment.Technique, prio assessment.Priority) {
	id := assessment.OpportunityID(cat, sub, frag.ID)
	if i, ok := b.index[id]; ok {
		b.opps[i].SourceFragmentIDs = appendUnique(b.opps[i].SourceFragmentIDs, frag.ID)
		return
	}
	b.index[id] = len(b.opps)
	b.opps = append(b.opps, assessment.TestOpportunity{
		ID:                id,
		Category:          cat,
		Subcategory:       sub,
		Description:       description,
		Technique:         tech,
		Priority:          prio,
		Source:            frag.ID,
		SourceFragmentIDs: []string{frag.ID},
	})
}

func (b *builder) synthetic(cat assessment.Category, sub assessment.Subcategory, description string, tech assessment.Technique, prio assessment.Priority) {
	id := assessment.OpportunityID(cat, sub, "baseline")
	if _, ok := b.index[id]; ok {
		return
	}
	b.index[id] = len(b.opps)
	b.opps = append(b.opps, assessment.TestOpportunity{
		ID:          id,
		Category:    cat,
		Subcategory: sub,
		Description: description,
		Technique:   tech,
		Priority:    prio,
		Source:      "baseline",
	})
}

func appendUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
