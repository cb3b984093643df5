// Package questions synthesizes clarifying questions for weakly covered
// subcategories. The catalog is a declarative table covering every
// subcategory of every category; each entry renders through an ordered
// list of theme flavors so specific domains get specific wording.
package questions

import (
	"github.com/heuristiq/strategist/pkg/domain/assessment"
	"github.com/heuristiq/strategist/pkg/domain/theme"
)

// Text is one rendered rationale plus its question set.
type Text struct {
	Rationale string
	Questions []string
}

// Template is the catalog entry for one subcategory. Flavors holds
// domain-specific wording keyed by flavor name; Generic always exists and
// substitutes theme facets into neutral wording.
type Template struct {
	Definition string
	Flavors    map[string]Text
	Generic    func(ctx *theme.ThemeContext) Text
}

// Flavor names. Precedence is fixed: the flavorOrder list below is the
// single place that encodes it.
const (
	FlavorSustainability = "sustainability"
	FlavorML             = "ml"
	FlavorAccessibility  = "accessibility"
	FlavorInfrastructure = "infrastructure"
)

var flavorOrder = []struct {
	name    string
	applies func(ctx *theme.ThemeContext) bool
}{
	{FlavorSustainability, func(c *theme.ThemeContext) bool { return c.IsSustainability() }},
	{FlavorML, func(c *theme.ThemeContext) bool { return c.IsML() }},
	{FlavorAccessibility, func(c *theme.ThemeContext) bool { return c.IsAccessibility() }},
	{FlavorInfrastructure, func(c *theme.ThemeContext) bool { return c.IsInfrastructure() }},
}

// Render picks the highest-precedence flavor the theme context satisfies,
// falling back to the generic text. At most one flavor fires.
func (t Template) Render(ctx *theme.ThemeContext) Text {
	for _, f := range flavorOrder {
		if !f.applies(ctx) {
			continue
		}
		if text, ok := t.Flavors[f.name]; ok {
			return text
		}
	}
	return t.Generic(ctx)
}

// Catalog returns the full template table. Every subcategory of every
// category has exactly one entry; the parity test enforces it.
func Catalog() map[assessment.Category]map[assessment.Subcategory]Template {
	return map[assessment.Category]map[assessment.Subcategory]Template{
		assessment.CategoryStructure:  structureTemplates,
		assessment.CategoryFunction:   functionTemplates,
		assessment.CategoryData:       dataTemplates,
		assessment.CategoryInterfaces: interfaceTemplates,
		assessment.CategoryPlatform:   platformTemplates,
		assessment.CategoryOperations: operationsTemplates,
		assessment.CategoryTime:       timeTemplates,
	}
}

// categoryPreambles introduce each category's question block in reports.
var categoryPreambles = map[assessment.Category]string{
	assessment.CategoryStructure:  "Structure: what the product is made of",
	assessment.CategoryFunction:   "Function: what the product does",
	assessment.CategoryData:       "Data: what the product processes",
	assessment.CategoryInterfaces: "Interfaces: how the product is exercised",
	assessment.CategoryPlatform:   "Platform: what the product depends on",
	assessment.CategoryOperations: "Operations: how the product will be used",
	assessment.CategoryTime:       "Time: when things happen",
}

// Preamble returns the report heading for a category's questions.
func Preamble(cat assessment.Category) string {
	return categoryPreambles[cat]
}
