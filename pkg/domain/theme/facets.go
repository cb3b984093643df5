package theme

import "strings"

// Facet keyword tables. Each facet is extracted independently of theme
// matching; a corpus can have payment actors without a payment theme.
var actorKeywords = map[string]string{
	"shopper":       "shopper",
	"customer":      "customer",
	"administrator": "administrator",
	"admin":         "administrator",
	"operator":      "operator",
	"developer":     "developer",
	"analyst":       "analyst",
	"merchant":      "merchant",
	"guest":         "guest",
}

var dataTypeKeywords = map[string]string{
	"order":       "order data",
	"payment":     "payment data",
	"product":     "product catalog data",
	"inventory":   "inventory data",
	"profile":     "user profile data",
	"emission":    "emissions data",
	"carbon":      "emissions data",
	"telemetry":   "telemetry data",
	"media":       "media assets",
	"transaction": "transaction data",
}

var integrationKeywords = map[string]string{
	"payment gateway": "payment gateway",
	"stripe":          "payment gateway",
	"email":           "email service",
	"sms":             "SMS gateway",
	"webhook":         "webhook consumer",
	"third-party api": "third-party API",
	"erp":             "ERP system",
	"crm":             "CRM system",
	"analytics":       "analytics platform",
}

var actionKeywords = []string{
	"create", "update", "delete", "submit", "approve", "cancel",
	"export", "import", "upload", "download", "schedule", "retry",
}

// extractFacets scans the corpus once per facet table, preserving a
// deterministic order by iterating fixed keyword lists rather than map
// order.
func extractFacets(corpus string) (actors, dataTypes, integrations, actions []string) {
	actors = matchOrdered(corpus, []string{
		"shopper", "customer", "administrator", "admin", "operator",
		"developer", "analyst", "merchant", "guest",
	}, actorKeywords)

	dataTypes = matchOrdered(corpus, []string{
		"order", "payment", "product", "inventory", "profile",
		"emission", "carbon", "telemetry", "media", "transaction",
	}, dataTypeKeywords)

	integrations = matchOrdered(corpus, []string{
		"payment gateway", "stripe", "email", "sms", "webhook",
		"third-party api", "erp", "crm", "analytics",
	}, integrationKeywords)

	for _, a := range actionKeywords {
		if strings.Contains(corpus, a) {
			actions = append(actions, a)
		}
	}
	return actors, dataTypes, integrations, actions
}

func matchOrdered(corpus string, order []string, table map[string]string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, kw := range order {
		if !strings.Contains(corpus, kw) {
			continue
		}
		label := table[kw]
		if seen[label] {
			continue
		}
		seen[label] = true
		out = append(out, label)
	}
	return out
}
