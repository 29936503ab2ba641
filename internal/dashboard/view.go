package dashboard

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"cubewars/internal/core/querybuild"
	"cubewars/internal/core/shape"
	perr "cubewars/internal/platform/errors"

	"golang.org/x/sync/errgroup"
)

// Section names one report of the dashboard page by its API path
type Section string

const (
	SectionRewarded    Section = "/rewarded-ads"
	SectionLevels      Section = "/level-analysis"
	SectionBoost       Section = "/level-silver-coin-boost"
	SectionLoadout     Section = "/unit-loadout-analysis"
	SectionUpgrades    Section = "/unit-upgrade-analysis"
	SectionChurn       Section = "/churn-analysis"
	SectionBoosters    Section = "/booster-box-analysis"
	SectionBaseStation Section = "/base-station-analysis"
	SectionOverall     Section = "/overall-stats"
)

// Sections lists the page sections in display order
var Sections = []Section{
	SectionOverall,
	SectionRewarded,
	SectionLevels,
	SectionBoost,
	SectionChurn,
	SectionLoadout,
	SectionUpgrades,
	SectionBoosters,
	SectionBaseStation,
}

// View is one load of the dashboard page
// every field holds a usable value; failed sections are empty and listed in Errors
type View struct {
	Rewarded    shape.RewardedReport
	Levels      []shape.LevelRow
	Boost       []shape.BoostRow
	Loadout     shape.LoadoutReport
	Upgrades    []shape.UpgradeRow
	Churn       []shape.ChurnRow
	Boosters    []shape.BoosterRow
	BaseStation []shape.BaseStationRow
	Overall     shape.OverallStats

	Errors map[Section]error
}

// Failed reports whether a section fell back to its default
func (v View) Failed(s Section) bool { return v.Errors[s] != nil }

// Params encodes a filter as API query parameters; blank values are left out
func Params(f querybuild.Filter) url.Values {
	q := url.Values{}
	set := func(k, v string) {
		if v = strings.TrimSpace(v); v != "" {
			q.Set(k, v)
		}
	}
	set("startDate", f.StartDate)
	set("endDate", f.EndDate)
	set("platform", f.Platform)
	set("country", f.Country)
	set("version", f.Version)
	set("level", f.Level)
	if f.LevelCount > 0 {
		q.Set("levelCount", strconv.Itoa(f.LevelCount))
	}
	return q
}

// fetch gets one section and decodes it, leaving the default on failure
func fetch[T any](ctx context.Context, c *Client, s Section, q url.Values, decode func([]byte) (T, error), dst *T, errp *error) {
	raw, err := c.do(ctx, http.MethodGet, string(s), q, nil, false)
	if err == nil {
		*dst, err = decode(raw)
		if err != nil {
			err = perr.Wrapf(err, perr.ErrorCodeJSON, "dashboard decode %s", s)
		}
		*errp = err
		return
	}
	// decoding an empty body yields the contract default
	*dst, _ = decode(nil)
	*errp = err
}

// Load fetches every section concurrently and joins them
// a failing section does not cancel the others
func (c *Client) Load(ctx context.Context, f querybuild.Filter) View {
	q := Params(f)
	var v View
	errs := make([]error, len(Sections))

	var g errgroup.Group
	for i, s := range Sections {
		g.Go(func() error {
			switch s {
			case SectionRewarded:
				fetch(ctx, c, s, q, DecodeRewarded, &v.Rewarded, &errs[i])
			case SectionLevels:
				fetch(ctx, c, s, q, DecodeLevels, &v.Levels, &errs[i])
			case SectionBoost:
				fetch(ctx, c, s, q, DecodeBoost, &v.Boost, &errs[i])
			case SectionLoadout:
				fetch(ctx, c, s, q, DecodeLoadout, &v.Loadout, &errs[i])
			case SectionUpgrades:
				fetch(ctx, c, s, q, DecodeUpgrades, &v.Upgrades, &errs[i])
			case SectionChurn:
				fetch(ctx, c, s, q, DecodeChurn, &v.Churn, &errs[i])
			case SectionBoosters:
				fetch(ctx, c, s, q, DecodeBoosters, &v.Boosters, &errs[i])
			case SectionBaseStation:
				fetch(ctx, c, s, q, DecodeBaseStation, &v.BaseStation, &errs[i])
			case SectionOverall:
				fetch(ctx, c, s, q, DecodeOverall, &v.Overall, &errs[i])
			}
			return nil
		})
	}
	_ = g.Wait()

	v.Errors = map[Section]error{}
	for i, err := range errs {
		if err != nil {
			v.Errors[Sections[i]] = err
			c.log.Warn().Err(err).Str("section", string(Sections[i])).Msg("dashboard section degraded")
		}
	}
	return v
}

// Pickers are the filter dropdown values
type Pickers struct {
	Countries []shape.CountryOption
	Versions  []shape.VersionOption
}

// FilterOptions fetches the country and version pickers for the current date range
func (c *Client) FilterOptions(ctx context.Context, f querybuild.Filter) (Pickers, error) {
	q := url.Values{}
	if f.HasRange() {
		q.Set("startDate", strings.TrimSpace(f.StartDate))
		q.Set("endDate", strings.TrimSpace(f.EndDate))
	}

	var p Pickers
	var cErr, vErr error
	var g errgroup.Group
	g.Go(func() error {
		fetch(ctx, c, "/available-countries", q, DecodeCountries, &p.Countries, &cErr)
		return nil
	})
	g.Go(func() error {
		fetch(ctx, c, "/available-versions", q, DecodeVersions, &p.Versions, &vErr)
		return nil
	})
	_ = g.Wait()

	if cErr != nil {
		return p, cErr
	}
	return p, vErr
}

// RewardedCohort fetches the day buckets for one rewarded ad event, bypassing caches
func (c *Client) RewardedCohort(ctx context.Context, f querybuild.Filter, eventName string) ([]shape.DayBucketRow, error) {
	return c.cohort(ctx, "/rewarded-ads-cohort", f, "eventName", eventName)
}

// AdCohort fetches the day buckets for one ad format, bypassing caches
func (c *Client) AdCohort(ctx context.Context, f querybuild.Filter, adFormat string) ([]shape.DayBucketRow, error) {
	return c.cohort(ctx, "/ad-impressions-cohort", f, "adFormat", adFormat)
}

func (c *Client) cohort(ctx context.Context, path string, f querybuild.Filter, key, value string) ([]shape.DayBucketRow, error) {
	q := Params(f)
	q.Del("level")
	q.Del("levelCount")
	q.Set(key, value)
	raw, err := c.do(ctx, http.MethodGet, path, q, nil, true)
	if err != nil {
		return []shape.DayBucketRow{}, err
	}
	rows, err := DecodeDayBuckets(raw)
	if err != nil {
		return rows, perr.Wrapf(err, perr.ErrorCodeJSON, "dashboard decode %s", path)
	}
	return rows, nil
}
