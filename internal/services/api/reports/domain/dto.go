// Package domain holds DTOs for the report http and service contracts
package domain

import (
	"strings"

	"cubewars/internal/core/querybuild"
)

// Query is the query string every report accepts
// report specific params are ignored where they do not apply
type Query struct {
	StartDate string `query:"startDate" validate:"omitempty,datetime=2006-01-02" example:"2025-03-01"`
	EndDate   string `query:"endDate" validate:"omitempty,datetime=2006-01-02" example:"2025-03-31"`
	Platform  string `query:"platform" validate:"omitempty,oneof=all ios android" example:"ios"`
	Country   string `query:"country" validate:"omitempty,max=64" example:"Germany"`
	Version   string `query:"version" validate:"omitempty,max=32" example:"1.4.2"`

	// level reports
	LevelCount int `query:"levelCount" validate:"omitempty,min=1,max=500" example:"50"`
	// unit loadout; an integer or "all"
	Level string `query:"level" validate:"omitempty,max=16" example:"12"`

	// cohort drill downs
	EventName string `query:"eventName" validate:"omitempty,max=128" example:"RV_Watched_Double_Reward"`
	AdFormat  string `query:"adFormat" validate:"omitempty,max=64" example:"interstitial"`
}

// Normalize lower cases the platform so ALL, iOS and Android validate
func (q *Query) Normalize() {
	q.Platform = strings.ToLower(q.Platform)
}

// Filter returns the warehouse filter for q
func (q Query) Filter() querybuild.Filter {
	return querybuild.Filter{
		StartDate:  q.StartDate,
		EndDate:    q.EndDate,
		Platform:   q.Platform,
		Country:    q.Country,
		Version:    q.Version,
		Level:      q.Level,
		LevelCount: q.LevelCount,
	}
}

// Cohort reports whether q restricts players to an install window
func (q Query) Cohort() bool { return q.Filter().HasRange() }
