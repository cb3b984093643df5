package theme

import "strings"

// RankedTheme pairs a detected theme with the priority of the pattern that
// matched it. Higher scores rank first; the fallback theme scores zero.
type RankedTheme struct {
	Theme string `json:"theme"`
	Score int    `json:"score"`
}

// ThemeContext is the inferred domain profile of a document set. It steers
// question flavoring; it never changes which categories or subcategories
// exist. RankedThemes carries every match with its score; PrimaryTheme and
// SecondaryThemes are the same list split for convenience.
type ThemeContext struct {
	PrimaryTheme    string        `json:"primary_theme"`
	SecondaryThemes []string      `json:"secondary_themes,omitempty"`
	RankedThemes    []RankedTheme `json:"ranked_themes,omitempty"`
	Actors          []string      `json:"actors,omitempty"`
	DataTypes       []string      `json:"data_types,omitempty"`
	Integrations    []string      `json:"integrations,omitempty"`
	Actions         []string      `json:"actions,omitempty"`
}

func (c *ThemeContext) hasTheme(substr string) bool {
	if strings.Contains(c.PrimaryTheme, substr) {
		return true
	}
	for _, t := range c.SecondaryThemes {
		if strings.Contains(t, substr) {
			return true
		}
	}
	return false
}

// IsSustainability reports whether any inferred theme is sustainability
// related.
func (c *ThemeContext) IsSustainability() bool { return c.hasTheme("sustainab") }

// IsML reports whether any inferred theme involves ML or personalization.
func (c *ThemeContext) IsML() bool { return c.hasTheme("ML-driven") || c.hasTheme("personaliz") }

// IsAccessibility reports whether any inferred theme is accessibility
// related.
func (c *ThemeContext) IsAccessibility() bool { return c.hasTheme("accessibility") }

// IsInfrastructure reports whether any inferred theme is infrastructure
// performance related.
func (c *ThemeContext) IsInfrastructure() bool { return c.hasTheme("infrastructure") }

// PrimaryActor returns the first detected actor, or a neutral default.
func (c *ThemeContext) PrimaryActor() string {
	if len(c.Actors) > 0 {
		return c.Actors[0]
	}
	return "user"
}

// PrimaryDataType returns the first detected data type, or a neutral
// default.
func (c *ThemeContext) PrimaryDataType() string {
	if len(c.DataTypes) > 0 {
		return c.DataTypes[0]
	}
	return "application data"
}

// PrimaryIntegration returns the first detected integration, or a neutral
// default.
func (c *ThemeContext) PrimaryIntegration() string {
	if len(c.Integrations) > 0 {
		return c.Integrations[0]
	}
	return "external service"
}
