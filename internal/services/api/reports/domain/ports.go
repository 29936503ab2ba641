package domain

import (
	"context"

	"cubewars/internal/core/shape"
)

// ServicePort is consumed by handlers and the dashboard
type ServicePort interface {
	RewardedAds(ctx context.Context, q Query) (shape.RewardedReport, error)
	LevelAnalysis(ctx context.Context, q Query) ([]shape.LevelRow, error)
	SilverCoinBoost(ctx context.Context, q Query) ([]shape.BoostRow, error)
	UnitLoadout(ctx context.Context, q Query) (shape.LoadoutReport, error)
	UnitUpgrades(ctx context.Context, q Query) ([]shape.UpgradeRow, error)
	Churn(ctx context.Context, q Query) ([]shape.ChurnRow, error)
	BoosterBoxes(ctx context.Context, q Query) ([]shape.BoosterRow, error)
	BaseStation(ctx context.Context, q Query) ([]shape.BaseStationRow, error)

	// OverallStats returns nil when the window has no events
	OverallStats(ctx context.Context, q Query) (*shape.OverallStats, error)

	Countries(ctx context.Context, q Query) ([]shape.CountryOption, error)
	Versions(ctx context.Context, q Query) ([]shape.VersionOption, error)

	RewardedAdsCohort(ctx context.Context, q Query) ([]shape.DayBucketRow, error)
	AdImpressionsCohort(ctx context.Context, q Query) ([]shape.DayBucketRow, error)
}
