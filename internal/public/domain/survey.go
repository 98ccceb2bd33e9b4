package domain

import (
	"strings"
	"time"
)

// Survey status values. New submissions default to active.
const (
	SurveyStatusActive   = "active"
	SurveyStatusInactive = "inactive"
	SurveyStatusDraft    = "draft"
)

// Survey is a free-form visitor survey response.
type Survey struct {
	ID              string
	Status          string
	Name            string
	Phone           string
	Email           string
	City            string
	VisitFrequency  string
	PreferredPlants []string
	PurchaseChannel string
	Satisfaction    string
	HeardFrom       string
	Suggestions     string
	SubmittedAt     time.Time
	UpdatedAt       time.Time
}

// NormalizeSurveyStatus maps arbitrary input onto a known status, defaulting
// to active.
func NormalizeSurveyStatus(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case SurveyStatusInactive:
		return SurveyStatusInactive
	case SurveyStatusDraft:
		return SurveyStatusDraft
	default:
		return SurveyStatusActive
	}
}
