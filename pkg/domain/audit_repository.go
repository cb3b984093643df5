package domain

// AuditRepository is the persistence slice for the hash-chained event
// trail and the assessment usage counters. Audit and usage services
// depend on it instead of the full workspace repository.
type AuditRepository interface {
	RecordEvent(event Event) error
	LoadEvents() ([]Event, error)
	UpdateUsage(stats UsageStats) error
	LoadUsage() (*UsageStats, error)
}
