// Package service contains report workflows
package service

import (
	"context"
	"errors"

	"cubewars/internal/core/querybuild"
	"cubewars/internal/core/shape"
	"cubewars/internal/modkit/repokit"
	perr "cubewars/internal/platform/errors"
	"cubewars/internal/platform/logger"
	"cubewars/internal/services/api/reports/domain"
	"cubewars/internal/services/api/reports/repo"
)

// Service defines the report service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the report service
type Svc struct {
	Repo     repo.Repo
	composer *querybuild.Composer
}

var _ Service = (*Svc)(nil)

// New constructs a report service over the warehouse
func New(w repokit.Warehouse, binder repokit.Binder[repokit.Warehouse, repo.Repo], c *querybuild.Composer) *Svc {
	if w == nil {
		panic("reports.Service requires a non nil Warehouse")
	}
	if binder == nil {
		panic("reports.Service requires a non nil Repo binder")
	}
	if c == nil {
		panic("reports.Service requires a non nil Composer")
	}
	return &Svc{Repo: binder.Bind(w), composer: c}
}

// compose builds the query for kind, mapping filter mistakes to 400s
func (s *Svc) compose(kind querybuild.Kind, q domain.Query) (querybuild.Query, error) {
	qq, err := s.composer.Compose(kind, q.Filter())
	switch {
	case err == nil:
		return qq, nil
	case errors.Is(err, querybuild.ErrInvalidLevel):
		return qq, perr.WithField(perr.Validationf("level must be an integer or all"), "level")
	default:
		return qq, perr.Wrap(err, perr.ErrorCodeUnknown, perr.MsgInternal)
	}
}

func list[T any](ctx context.Context, s *Svc, kind querybuild.Kind, q domain.Query) ([]T, error) {
	qq, err := s.compose(kind, q)
	if err != nil {
		return nil, err
	}
	return repo.Rows[T](ctx, s.Repo, qq)
}

// RewardedAds returns rewarded ad counts per event with a TOTAL row
func (s *Svc) RewardedAds(ctx context.Context, q domain.Query) (shape.RewardedReport, error) {
	rows, err := list[shape.RewardedRow](ctx, s, querybuild.KindRewardedAds, q)
	if err != nil {
		return shape.RewardedReport{}, err
	}
	return shape.RewardedReportOf(rows), nil
}

// LevelAnalysis returns completion stats for the first levelCount levels
func (s *Svc) LevelAnalysis(ctx context.Context, q domain.Query) ([]shape.LevelRow, error) {
	return list[shape.LevelRow](ctx, s, querybuild.KindLevelAnalysis, q)
}

// SilverCoinBoost compares level attempts with and without a prior silver coin ad
func (s *Svc) SilverCoinBoost(ctx context.Context, q domain.Query) ([]shape.BoostRow, error) {
	return list[shape.BoostRow](ctx, s, querybuild.KindSilverCoinBoost, q)
}

// UnitLoadout returns unit frequency and the most used loadouts
func (s *Svc) UnitLoadout(ctx context.Context, q domain.Query) (shape.LoadoutReport, error) {
	rows, err := list[shape.TaggedLoadoutRow](ctx, s, querybuild.KindUnitLoadout, q)
	if err != nil {
		return shape.LoadoutReport{}, err
	}
	return shape.SplitLoadout(rows), nil
}

// UnitUpgrades aggregates unit upgrades per unit
func (s *Svc) UnitUpgrades(ctx context.Context, q domain.Query) ([]shape.UpgradeRow, error) {
	return list[shape.UpgradeRow](ctx, s, querybuild.KindUnitUpgrade, q)
}

// Churn returns reach, churn and difficulty per level
func (s *Svc) Churn(ctx context.Context, q domain.Query) ([]shape.ChurnRow, error) {
	return list[shape.ChurnRow](ctx, s, querybuild.KindChurn, q)
}

// BoosterBoxes counts booster box openings per box
func (s *Svc) BoosterBoxes(ctx context.Context, q domain.Query) ([]shape.BoosterRow, error) {
	return list[shape.BoosterRow](ctx, s, querybuild.KindBoosterBox, q)
}

// BaseStation counts base station upgrades per skill and level
func (s *Svc) BaseStation(ctx context.Context, q domain.Query) ([]shape.BaseStationRow, error) {
	return list[shape.BaseStationRow](ctx, s, querybuild.KindBaseStation, q)
}

// OverallStats returns the headline counters, nil without a row
func (s *Svc) OverallStats(ctx context.Context, q domain.Query) (*shape.OverallStats, error) {
	rows, err := list[shape.OverallStats](ctx, s, querybuild.KindOverallStats, q)
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}

// Countries lists the countries players come from, busiest first
func (s *Svc) Countries(ctx context.Context, q domain.Query) ([]shape.CountryOption, error) {
	return list[shape.CountryOption](ctx, s, querybuild.KindAvailableCountries, q)
}

// Versions lists the app versions seen, newest first
func (s *Svc) Versions(ctx context.Context, q domain.Query) ([]shape.VersionOption, error) {
	return list[shape.VersionOption](ctx, s, querybuild.KindAvailableVersions, q)
}

// RewardedAdsCohort buckets one rewarded event by days since install
func (s *Svc) RewardedAdsCohort(ctx context.Context, q domain.Query) ([]shape.DayBucketRow, error) {
	return s.dayBuckets(ctx, q, querybuild.EventSelector{Name: q.EventName})
}

// AdImpressionsCohort buckets ad impressions of one format by days since install
func (s *Svc) AdImpressionsCohort(ctx context.Context, q domain.Query) ([]shape.DayBucketRow, error) {
	return s.dayBuckets(ctx, q, querybuild.AdFormatSelector{Format: q.AdFormat})
}

func (s *Svc) dayBuckets(ctx context.Context, q domain.Query, sel querybuild.Selector) ([]shape.DayBucketRow, error) {
	qq, err := s.composer.DayBuckets(q.Filter(), sel)
	if errors.Is(err, querybuild.ErrMissingSelector) {
		return nil, perr.WithField(perr.Validationf("%s parameter is required", sel.Param()), sel.Param())
	}
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, perr.MsgInternal)
	}

	logger.C(ctx).Info().
		Str("kind", string(qq.Kind)).
		Str(sel.Param(), sel.Value()).
		Str("start", q.StartDate).
		Str("end", q.EndDate).
		Str("platform", q.Platform).
		Str("country", q.Country).
		Str("version", q.Version).
		Msg("cohort drill down")

	return repo.Rows[shape.DayBucketRow](ctx, s.Repo, qq)
}
