package application

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heuristiq/strategist/pkg/domain"
)

// AuditService maintains the hash-chained event trail of the workspace.
// It depends only on the audit slice of the repository.
type AuditService struct {
	repo domain.AuditRepository
}

// Compile-time check that AuditService implements AuditLogger
var _ domain.AuditLogger = (*AuditService)(nil)

func NewAuditService(repo domain.AuditRepository) *AuditService {
	return &AuditService{repo: repo}
}

func (s *AuditService) Log(action string, actor string, metadata map[string]interface{}) error {
	// Get the latest event to continue the hash chain
	events, _ := s.repo.LoadEvents()
	prevHash := ""
	if len(events) > 0 {
		prevHash = events[len(events)-1].Hash
	}

	event := domain.Event{
		ID:        uuid.New().String(),
		Timestamp: time.Now(),
		Action:    action,
		Actor:     actor,
		Metadata:  metadata,
		PrevHash:  prevHash,
	}
	event.Hash = event.CalculateHash()

	return s.repo.RecordEvent(event)
}

func (s *AuditService) GetTimeline() ([]domain.Event, error) {
	return s.repo.LoadEvents()
}

func (s *AuditService) VerifyIntegrity() ([]string, error) {
	events, err := s.repo.LoadEvents()
	if err != nil {
		return nil, err
	}

	var violations []string
	lastHash := ""

	for i, e := range events {
		// 1. Verify links
		if e.PrevHash != lastHash {
			violations = append(violations, fmt.Sprintf("Event %d (%s): PrevHash mismatch. Audit trail broken.", i, e.ID))
		}

		// 2. Verify self-hash
		expected := e.CalculateHash()
		if e.Hash != expected {
			violations = append(violations, fmt.Sprintf("Event %d (%s): Content hash mismatch. Possible tampering.", i, e.ID))
		}

		lastHash = e.Hash
	}

	return violations, nil
}

// GetAssessmentCadence returns the average completed assessments per day
// since the first recorded assessment.
func (s *AuditService) GetAssessmentCadence() (float64, error) {
	events, err := s.repo.LoadEvents()
	if err != nil {
		return 0, err
	}

	if len(events) == 0 {
		return 0, nil
	}

	var first time.Time
	completed := 0

	for _, e := range events {
		if e.Action == "assessment.completed" {
			if first.IsZero() {
				first = e.Timestamp
			}
			completed++
		}
	}

	if completed == 0 {
		return 0, nil
	}

	days := time.Since(first).Hours() / 24.0
	if days < 1 {
		days = 1 // Floor at 1 day to avoid infinity/large spikes
	}

	return float64(completed) / days, nil
}
