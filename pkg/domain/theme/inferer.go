package theme

import (
	"sort"
	"strings"
)

// DefaultGenericThreshold is the number of domain-tier matches that
// suppresses the generic tier entirely.
const DefaultGenericThreshold = 2

// Inferer derives a ThemeContext from a requirement corpus.
type Inferer struct {
	// GenericThreshold gates the generic pattern tier: generic patterns
	// are only evaluated when fewer than this many domain-tier patterns
	// matched. A corpus rich in specific domain signal never gets diluted
	// with generic themes.
	GenericThreshold int
}

func NewInferer() *Inferer {
	return &Inferer{GenericThreshold: DefaultGenericThreshold}
}

type match struct {
	pattern Pattern
	order   int
}

// Infer runs the domain pattern tier over the lower-cased corpus, then the
// generic tier only if fewer than GenericThreshold domain patterns matched.
// Within the merged result, higher priority wins and declaration order
// breaks ties; domain matches outrank generic ones by construction
// (priority > 50). With no matches the fallback theme stands alone.
func (i *Inferer) Infer(corpus string) *ThemeContext {
	corpus = strings.ToLower(corpus)

	var matches []match
	order := 0
	for _, p := range domainPatterns {
		if patternMatches(corpus, p) {
			matches = append(matches, match{pattern: p, order: order})
		}
		order++
	}
	if len(matches) < i.GenericThreshold {
		for _, p := range genericPatterns {
			if patternMatches(corpus, p) {
				matches = append(matches, match{pattern: p, order: order})
			}
			order++
		}
	}

	// Stable sort plus the order field makes the tie-break explicit even
	// if the slice is ever rebuilt out of declaration order.
	sort.SliceStable(matches, func(a, b int) bool {
		if matches[a].pattern.Priority != matches[b].pattern.Priority {
			return matches[a].pattern.Priority > matches[b].pattern.Priority
		}
		return matches[a].order < matches[b].order
	})

	ctx := &ThemeContext{}
	if len(matches) == 0 {
		ctx.PrimaryTheme = FallbackTheme
		ctx.RankedThemes = []RankedTheme{{Theme: FallbackTheme, Score: 0}}
	} else {
		ctx.PrimaryTheme = matches[0].pattern.Theme
		for _, m := range matches {
			ctx.RankedThemes = append(ctx.RankedThemes, RankedTheme{
				Theme: m.pattern.Theme,
				Score: m.pattern.Priority,
			})
		}
		for _, m := range matches[1:] {
			ctx.SecondaryThemes = append(ctx.SecondaryThemes, m.pattern.Theme)
		}
	}

	ctx.Actors, ctx.DataTypes, ctx.Integrations, ctx.Actions = extractFacets(corpus)
	return ctx
}

func patternMatches(corpus string, p Pattern) bool {
	for _, kw := range p.Keywords {
		if strings.Contains(corpus, kw) {
			return true
		}
	}
	return false
}
