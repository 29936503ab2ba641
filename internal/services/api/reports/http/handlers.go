// Package http provides http transport for reports
package http

import (
	stdhttp "net/http"

	"cubewars/internal/modkit/httpkit"
	"cubewars/internal/services/api/reports/domain"
	svc "cubewars/internal/services/api/reports/service"
)

// Register mounts report endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.GetQuery[domain.Query](r, "/rewarded-ads", h.rewardedAds)
	httpkit.GetQuery[domain.Query](r, "/level-analysis", h.levelAnalysis)
	httpkit.GetQuery[domain.Query](r, "/level-silver-coin-boost", h.silverCoinBoost)
	httpkit.GetQuery[domain.Query](r, "/unit-loadout-analysis", h.unitLoadout)
	httpkit.GetQuery[domain.Query](r, "/unit-upgrade-analysis", h.unitUpgrades)
	httpkit.GetQuery[domain.Query](r, "/churn-analysis", h.churn)
	httpkit.GetQuery[domain.Query](r, "/booster-box-analysis", h.boosterBoxes)
	httpkit.GetQuery[domain.Query](r, "/base-station-analysis", h.baseStation)
	httpkit.GetQuery[domain.Query](r, "/overall-stats", h.overallStats)

	// filter pickers
	httpkit.GetQuery[domain.Query](r, "/available-countries", h.countries)
	httpkit.GetQuery[domain.Query](r, "/available-versions", h.versions)

	// drill downs by days since install
	httpkit.GetQuery[domain.Query](r, "/rewarded-ads-cohort", h.rewardedAdsCohort)
	httpkit.GetQuery[domain.Query](r, "/ad-impressions-cohort", h.adImpressionsCohort)
}

type handlers struct{ svc svc.Service }

// @Summary Rewarded ads per event type
// @Tags Reports
// @Produce json
// @Param query query domain.Query false "Filters"
// @Success 200 {object} shape.RewardedReport "ok"
// @Router /rewarded-ads [get]
func (h *handlers) rewardedAds(r *stdhttp.Request, q domain.Query) (any, error) {
	return h.svc.RewardedAds(r.Context(), q)
}

// @Summary Level completion analysis
// @Tags Reports
// @Produce json
// @Param query query domain.Query false "Filters"
// @Success 200 {array} shape.LevelRow "ok"
// @Router /level-analysis [get]
func (h *handlers) levelAnalysis(r *stdhttp.Request, q domain.Query) (any, error) {
	return h.svc.LevelAnalysis(r.Context(), q)
}

// @Summary Silver coin boost effect per level
// @Tags Reports
// @Produce json
// @Param query query domain.Query false "Filters"
// @Success 200 {array} shape.BoostRow "ok"
// @Router /level-silver-coin-boost [get]
func (h *handlers) silverCoinBoost(r *stdhttp.Request, q domain.Query) (any, error) {
	return h.svc.SilverCoinBoost(r.Context(), q)
}

// @Summary Unit frequency and top loadouts
// @Tags Reports
// @Produce json
// @Param query query domain.Query false "Filters"
// @Success 200 {object} shape.LoadoutReport "ok"
// @Router /unit-loadout-analysis [get]
func (h *handlers) unitLoadout(r *stdhttp.Request, q domain.Query) (any, error) {
	return h.svc.UnitLoadout(r.Context(), q)
}

// @Summary Unit upgrades per unit
// @Tags Reports
// @Produce json
// @Param query query domain.Query false "Filters"
// @Success 200 {array} shape.UpgradeRow "ok"
// @Router /unit-upgrade-analysis [get]
func (h *handlers) unitUpgrades(r *stdhttp.Request, q domain.Query) (any, error) {
	return h.svc.UnitUpgrades(r.Context(), q)
}

// @Summary Churn per level
// @Tags Reports
// @Produce json
// @Param query query domain.Query false "Filters"
// @Success 200 {array} shape.ChurnRow "ok"
// @Router /churn-analysis [get]
func (h *handlers) churn(r *stdhttp.Request, q domain.Query) (any, error) {
	return h.svc.Churn(r.Context(), q)
}

// @Summary Booster box openings
// @Tags Reports
// @Produce json
// @Param query query domain.Query false "Filters"
// @Success 200 {array} shape.BoosterRow "ok"
// @Router /booster-box-analysis [get]
func (h *handlers) boosterBoxes(r *stdhttp.Request, q domain.Query) (any, error) {
	return h.svc.BoosterBoxes(r.Context(), q)
}

// @Summary Base station upgrades per skill and level
// @Tags Reports
// @Produce json
// @Param query query domain.Query false "Filters"
// @Success 200 {array} shape.BaseStationRow "ok"
// @Router /base-station-analysis [get]
func (h *handlers) baseStation(r *stdhttp.Request, q domain.Query) (any, error) {
	return h.svc.BaseStation(r.Context(), q)
}

// @Summary Headline counters
// @Description An empty object when the window has no events
// @Tags Reports
// @Produce json
// @Param query query domain.Query false "Filters"
// @Success 200 {object} shape.OverallStats "ok"
// @Router /overall-stats [get]
func (h *handlers) overallStats(r *stdhttp.Request, q domain.Query) (any, error) {
	out, err := h.svc.OverallStats(r.Context(), q)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return struct{}{}, nil
	}
	return out, nil
}

// @Summary Countries for the filter picker
// @Tags Filters
// @Produce json
// @Param query query domain.Query false "Filters"
// @Success 200 {array} shape.CountryOption "ok"
// @Router /available-countries [get]
func (h *handlers) countries(r *stdhttp.Request, q domain.Query) (any, error) {
	return h.svc.Countries(r.Context(), q)
}

// @Summary App versions for the filter picker
// @Tags Filters
// @Produce json
// @Param query query domain.Query false "Filters"
// @Success 200 {array} shape.VersionOption "ok"
// @Router /available-versions [get]
func (h *handlers) versions(r *stdhttp.Request, q domain.Query) (any, error) {
	return h.svc.Versions(r.Context(), q)
}

// @Summary Rewarded event by days since install
// @Description Rows carry day_K_events and day_K_users for K in 0-7, 14, 30, 45, 60, 75, 90
// @Tags Cohorts
// @Produce json
// @Param query query domain.Query true "Filters; eventName is required and may contain %"
// @Success 200 {array} shape.DayBucketRow "ok"
// @Router /rewarded-ads-cohort [get]
func (h *handlers) rewardedAdsCohort(r *stdhttp.Request, q domain.Query) (any, error) {
	return h.svc.RewardedAdsCohort(r.Context(), q)
}

// @Summary Ad impressions of one format by days since install
// @Tags Cohorts
// @Produce json
// @Param query query domain.Query true "Filters; adFormat is required"
// @Success 200 {array} shape.DayBucketRow "ok"
// @Router /ad-impressions-cohort [get]
func (h *handlers) adImpressionsCohort(r *stdhttp.Request, q domain.Query) (any, error) {
	return h.svc.AdImpressionsCohort(r.Context(), q)
}
