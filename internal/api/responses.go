package api

import (
	"time"

	"github.com/nyayasetu/classifier/internal/domain"
)

const (
	// Priority bands for dashboard to database conversion.
	priorityHigh            = 20
	priorityNormal          = 10
	priorityLow             = 5
	priorityHighThreshold   = 20
	priorityNormalThreshold = 10
)

// ClassifyRequest represents a single classification request.
type ClassifyRequest struct {
	ComplaintID string `json:"complaint_id"`
	Text        string `json:"text" binding:"required"`
	Channel     string `json:"channel"`
	Language    string `json:"language"`
}

// ClassifyResponse represents a classification response.
type ClassifyResponse struct {
	Result *domain.Classification `json:"result"`
	Error  string                 `json:"error,omitempty"`
}

// BatchClassifyRequest represents a batch classification request.
type BatchClassifyRequest struct {
	Complaints []*domain.Complaint `json:"complaints" binding:"required,min=1,max=100"`
}

// BatchItemResult is the outcome for one complaint in a batch.
type BatchItemResult struct {
	ComplaintID string                 `json:"complaint_id"`
	Result      *domain.Classification `json:"result,omitempty"`
	Error       string                 `json:"error,omitempty"`
}

// BatchClassifyResponse represents a batch classification response.
type BatchClassifyResponse struct {
	Results []BatchItemResult `json:"results"`
	Total   int               `json:"total"`
	Success int               `json:"success"`
	Failed  int               `json:"failed"`
}

// FeedbackRequest represents citizen feedback on a classification.
type FeedbackRequest struct {
	Query      string  `json:"query" binding:"required"`
	Domain     string  `json:"domain" binding:"required"`
	Confidence float64 `json:"confidence" binding:"gte=0,lte=1"`
	Feedback   string  `json:"feedback" binding:"required"`
}

// PatternResponse represents a scenario pattern for the dashboard.
type PatternResponse struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Phrases         []string  `json:"phrases"`
	Domain          string    `json:"domain"`
	Subdomain       string    `json:"subdomain,omitempty"`
	FixedConfidence float64   `json:"fixed_confidence"`
	SectionNumbers  []string  `json:"section_numbers,omitempty"`
	Priority        string    `json:"priority"` // "high", "normal", "low"
	Enabled         bool      `json:"enabled"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PatternsListResponse represents a list of patterns with metadata.
type PatternsListResponse struct {
	Patterns []PatternResponse `json:"patterns"`
	Total    int               `json:"total"`
}

// CreatePatternRequest represents a request to create a scenario pattern.
// All phrases must appear in a complaint for the pattern to match.
type CreatePatternRequest struct {
	Name            string   `json:"name" binding:"required"`
	Phrases         []string `json:"phrases" binding:"required,min=1"`
	Domain          string   `json:"domain" binding:"required"`
	Subdomain       string   `json:"subdomain"`
	FixedConfidence float64  `json:"fixed_confidence" binding:"required,gte=0.5,lte=1"`
	SectionNumbers  []string `json:"section_numbers"`
	Priority        string   `json:"priority"` // "high", "normal", "low"
	Enabled         bool     `json:"enabled"`
}

// MatchPatternsRequest represents a dry-run pattern match request.
type MatchPatternsRequest struct {
	Text string `json:"text" binding:"required"`
}

// MatchPatternsResponse lists the patterns a text would trigger.
type MatchPatternsResponse struct {
	Matches []PatternResponse `json:"matches"`
	Total   int               `json:"total"`
}

// DomainInfo describes one legal domain and its subdomains.
type DomainInfo struct {
	Domain     string   `json:"domain"`
	Subdomains []string `json:"subdomains"`
}

// DomainsResponse lists the supported legal domains.
type DomainsResponse struct {
	Domains []DomainInfo `json:"domains"`
	Total   int          `json:"total"`
}

// HistoryListResponse represents recent classification history.
type HistoryListResponse struct {
	History []*domain.ClassificationHistory `json:"history"`
	Total   int                             `json:"total"`
}

// StatsResponse combines engine and history statistics.
type StatsResponse struct {
	Trained             bool           `json:"trained"`
	ModelVersion        string         `json:"model_version"`
	Domains             int            `json:"domains"`
	PatternCount        int            `json:"pattern_count"`
	SubdomainModels     int            `json:"subdomain_models"`
	FeedbackQueries     int            `json:"feedback_queries"`
	FeedbackTotal       int            `json:"feedback_total"`
	CacheEntries        int            `json:"cache_entries"`
	TotalClassified     int            `json:"total_classified"`
	AvgConfidence       float64        `json:"avg_confidence"`
	AvgProcessingTimeMs float64        `json:"avg_processing_time_ms"`
	ByDomain            map[string]int `json:"by_domain,omitempty"`
}

// priorityStringToInt converts dashboard priority strings to the override
// priority bands.
func priorityStringToInt(priority string) int {
	switch priority {
	case "high":
		return priorityHigh
	case "low":
		return priorityLow
	default:
		return priorityNormal
	}
}

// priorityIntToString converts override priority bands to dashboard strings.
func priorityIntToString(priority int) string {
	if priority >= priorityHighThreshold {
		return "high"
	}
	if priority >= priorityNormalThreshold {
		return "normal"
	}
	return "low"
}

// toPatternResponse converts a scenario pattern to an API response.
func toPatternResponse(pattern *domain.ScenarioPattern) PatternResponse {
	return PatternResponse{
		ID:              pattern.ID,
		Name:            pattern.Name,
		Phrases:         pattern.Phrases,
		Domain:          pattern.Domain,
		Subdomain:       pattern.Subdomain,
		FixedConfidence: pattern.FixedConfidence,
		SectionNumbers:  pattern.SectionNumbers,
		Priority:        priorityIntToString(pattern.Priority),
		Enabled:         pattern.Enabled,
		UpdatedAt:       pattern.UpdatedAt,
	}
}

// ptr returns a pointer to a boolean value.
func ptr(b bool) *bool {
	return &b
}
