// Package theme infers the product domain from the requirement corpus.
// Inference is keyword-driven and deterministic: the same corpus always
// yields the same themes, in the same order.
package theme

// Pattern describes one recognizable domain theme. Keywords match against
// the lower-cased corpus; Priority orders competing matches, with higher
// values winning. Priorities above 50 are specific business domains;
// 50 and below are generic application concerns.
type Pattern struct {
	Theme    string
	Keywords []string
	Priority int
}

// FallbackTheme is reported when nothing in the corpus matches any pattern.
const FallbackTheme = "general application functionality"

// domainPatterns is the specific-domain tier. Declaration order is the
// tie-break for equal priorities, so entries must stay in a deliberate
// order.
var domainPatterns = []Pattern{
	{
		Theme:    "sustainability-focused commerce",
		Keywords: []string{"carbon", "offset", "emission", "sustainab", "eco-friendly", "green", "footprint", "renewable", "fair trade"},
		Priority: 95,
	},
	{
		Theme:    "ML-driven personalization",
		Keywords: []string{"recommendation", "personaliz", "machine learning", "model training", "inference", "relevance score", "collaborative filtering"},
		Priority: 90,
	},
	{
		Theme:    "accessibility-first experience",
		Keywords: []string{"accessibility", "screen reader", "wcag", "aria", "assistive", "keyboard navigation", "a11y"},
		Priority: 85,
	},
	{
		Theme:    "infrastructure performance",
		Keywords: []string{"latency", "throughput", "cdn", "caching layer", "load balanc", "autoscal", "sharding"},
		Priority: 80,
	},
	{
		Theme:    "payments and commerce",
		Keywords: []string{"payment", "checkout", "cart", "refund", "invoice", "pricing", "subscription billing"},
		Priority: 75,
	},
	{
		Theme:    "security and compliance",
		Keywords: []string{"encryption", "audit trail", "gdpr", "pci", "compliance", "authentication", "authorization"},
		Priority: 70,
	},
}

// genericPatterns is the generic tier. These only surface when no or few
// domain-tier patterns match.
var genericPatterns = []Pattern{
	{
		Theme:    "user management",
		Keywords: []string{"user account", "profile", "registration", "login", "password", "session"},
		Priority: 50,
	},
	{
		Theme:    "search and discovery",
		Keywords: []string{"search", "filter", "sort", "browse", "facet", "autocomplete"},
		Priority: 45,
	},
	{
		Theme:    "content management",
		Keywords: []string{"content", "publish", "draft", "editor", "media library", "versioning"},
		Priority: 40,
	},
	{
		Theme:    "general workflow",
		Keywords: []string{"workflow", "approval", "task", "notification", "dashboard", "report"},
		Priority: 30,
	},
}
