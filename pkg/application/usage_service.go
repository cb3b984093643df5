package application

import (
	"strings"
	"time"

	"github.com/heuristiq/strategist/pkg/domain"
)

// UsageService tracks assessment activity and AI token usage separately
// from audit logging.
type UsageService struct {
	repo domain.AuditRepository
}

func NewUsageService(repo domain.AuditRepository) *UsageService {
	return &UsageService{repo: repo}
}

// RecordAssessment records a completed assessment against the provider
// that produced its questions ("template" when AI was not used).
func (s *UsageService) RecordAssessment(provider string) error {
	stats, err := s.loadOrInitStats()
	if err != nil {
		return err
	}

	stats.TotalAssessments++
	stats.LastAssessmentAt = time.Now()
	stats.ProviderStats[provider]++

	return s.repo.UpdateUsage(*stats)
}

// RecordTokenUsage records AI token usage for a specific model.
func (s *UsageService) RecordTokenUsage(model string, inputTokens, outputTokens int) error {
	stats, err := s.loadOrInitStats()
	if err != nil {
		return err
	}

	if inputTokens > 0 {
		stats.ProviderStats[model+":input"] += inputTokens
	}
	if outputTokens > 0 {
		stats.ProviderStats[model+":output"] += outputTokens
	}

	return s.repo.UpdateUsage(*stats)
}

// GetUsage returns the current usage statistics.
func (s *UsageService) GetUsage() (*domain.UsageStats, error) {
	stats, err := s.repo.LoadUsage()
	if err != nil || stats == nil {
		// Return empty stats if no usage file exists
		return &domain.UsageStats{ProviderStats: make(map[string]int)}, nil
	}
	return stats, nil
}

// GetTotalTokens returns the total token count across all models.
func (s *UsageService) GetTotalTokens() (int, error) {
	stats, err := s.repo.LoadUsage()
	if err != nil || stats == nil {
		return 0, nil
	}

	total := 0
	for key, count := range stats.ProviderStats {
		if strings.HasSuffix(key, ":input") || strings.HasSuffix(key, ":output") {
			total += count
		}
	}
	return total, nil
}

// WithinBudget reports whether total token usage is under the policy
// limit. A zero or negative limit means unlimited.
func (s *UsageService) WithinBudget(limit int) (bool, error) {
	if limit <= 0 {
		return true, nil
	}
	total, err := s.GetTotalTokens()
	if err != nil {
		return false, err
	}
	return total < limit, nil
}

func (s *UsageService) loadOrInitStats() (*domain.UsageStats, error) {
	stats, err := s.repo.LoadUsage()
	if err != nil || stats == nil {
		stats = &domain.UsageStats{
			ProviderStats: make(map[string]int),
		}
	}
	if stats.ProviderStats == nil {
		stats.ProviderStats = make(map[string]int)
	}
	return stats, nil
}
