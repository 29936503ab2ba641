package querybuild

// Kind names a report; the values double as metric labels
type Kind string

const (
	KindRewardedAds        Kind = "rewarded_ads"
	KindLevelAnalysis      Kind = "level_analysis"
	KindSilverCoinBoost    Kind = "silver_coin_boost"
	KindUnitLoadout        Kind = "unit_loadout"
	KindUnitUpgrade        Kind = "unit_upgrade"
	KindChurn              Kind = "churn"
	KindBoosterBox         Kind = "booster_box"
	KindBaseStation        Kind = "base_station"
	KindOverallStats       Kind = "overall_stats"
	KindAvailableCountries Kind = "available_countries"
	KindAvailableVersions  Kind = "available_versions"

	// day bucket kinds are built by DayBuckets
	KindRewardedAdsCohort   Kind = "rewarded_ads_cohort"
	KindAdImpressionsCohort Kind = "ad_impressions_cohort"
)

// Kinds lists every kind Compose builds, in dashboard order
var Kinds = []Kind{
	KindRewardedAds, KindLevelAnalysis, KindSilverCoinBoost, KindUnitLoadout,
	KindUnitUpgrade, KindChurn, KindBoosterBox, KindBaseStation, KindOverallStats,
	KindAvailableCountries, KindAvailableVersions,
}

// Query is a finished statement ready for the warehouse
type Query struct {
	Kind Kind
	SQL  string
	Args []any
}

// Composer builds report queries against one events table
type Composer struct {
	table string
}

// NewComposer validates table as db.table or table; blank means DefaultTable
func NewComposer(table string) (*Composer, error) {
	if table == "" {
		table = DefaultTable
	}
	if !tableRe.MatchString(table) {
		return nil, ErrInvalidTable
	}
	return &Composer{table: table}, nil
}

// Table returns the events table queries read from
func (c *Composer) Table() string { return c.table }

// Compose builds the query for kind
// empty filters never fail; only a malformed level or unknown kind does
func (c *Composer) Compose(kind Kind, f Filter) (Query, error) {
	spec, ok := reports[kind]
	if !ok {
		return Query{}, ErrUnknownKind
	}
	vars := c.vars(f, spec.dims)
	if spec.extra != nil {
		if err := spec.extra(f, vars); err != nil {
			return Query{}, err
		}
	}
	sql, args := render(spec.tpl, vars)
	return Query{Kind: kind, SQL: sql, Args: args}, nil
}

// vars holds the markers every template may use
// dims drive both the cohort definition and the metric filters
func (c *Composer) vars(f Filter, dims Dim) map[string]Fragment {
	return map[string]Fragment{
		"table":   raw(c.table),
		"cohort":  CohortCTE(f, c.table, dims),
		"filters": Filters(f, dims),
		"date":    DateFragment(f),
		"join":    CohortJoin(f, "e"),
		"limit":   Fragment{SQL: "?", Args: []any{f.Limit()}},
		"level":   IntParam("level"),
	}
}

// report is one template plus the dims it filters on
type report struct {
	tpl   string
	dims  Dim
	extra func(f Filter, vars map[string]Fragment) error
}

func withLevelFilter(f Filter, vars map[string]Fragment) error {
	fr, err := LevelFragment(f)
	if err != nil {
		return err
	}
	vars["level_filter"] = fr
	return nil
}

var reports = map[Kind]report{
	KindRewardedAds:        {tpl: rewardedAdsSQL, dims: AllDims},
	KindLevelAnalysis:      {tpl: levelAnalysisSQL, dims: AllDims, extra: durationVar},
	KindSilverCoinBoost:    {tpl: silverCoinBoostSQL, dims: AllDims},
	KindUnitLoadout:        {tpl: unitLoadoutSQL, dims: AllDims, extra: loadoutVars},
	KindUnitUpgrade:        {tpl: unitUpgradeSQL, dims: AllDims, extra: stringVars("unit_name", "unit_name")},
	KindChurn:              {tpl: churnSQL, dims: AllDims},
	KindBoosterBox:         {tpl: boosterBoxSQL, dims: AllDims, extra: stringVars("box_id", "booster_box_ID")},
	KindBaseStation:        {tpl: baseStationSQL, dims: AllDims, extra: stringVars("skill", "Skill")},
	KindOverallStats:       {tpl: overallStatsSQL, dims: AllDims},
	KindAvailableCountries: {tpl: availableCountriesSQL, dims: DimPlatform | DimVersion},
	KindAvailableVersions:  {tpl: availableVersionsSQL, dims: DimPlatform | DimCountry},
}

func durationVar(_ Filter, vars map[string]Fragment) error {
	vars["duration"] = FloatParam("duration_seconds")
	return nil
}

func loadoutVars(f Filter, vars map[string]Fragment) error {
	vars["unit_names"] = StringParam("unit_names")
	return withLevelFilter(f, vars)
}

// stringVars exposes StringParam(key) under marker
func stringVars(marker, key string) func(Filter, map[string]Fragment) error {
	return func(_ Filter, vars map[string]Fragment) error {
		vars[marker] = StringParam(key)
		return nil
	}
}
