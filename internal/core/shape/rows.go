// Package shape holds the report row contracts and turns warehouse rows into
// the JSON the dashboard reads
//
// ch tags name the warehouse columns; json tags are the wire contract.
// Aggregates that can be NULL are pointers and encode as null
package shape

// RewardedRow is one rewarded ad event type, or the synthetic TOTAL row
type RewardedRow struct {
	EventName      string   `ch:"event_name" json:"event_name"`
	TotalCount     uint64   `ch:"total_count" json:"total_count"`
	UniqueUsers    uint64   `ch:"unique_users" json:"unique_users"`
	AvgPerUser     float64  `ch:"avg_per_user" json:"avg_per_user"`
	TotalUsers     uint64   `ch:"total_users" json:"total_users"`
	AvgPerAllUsers *float64 `ch:"avg_per_all_users" json:"avg_per_all_users"`
}

// RewardedReport is the rewarded ads payload; Totals is null without rows
type RewardedReport struct {
	Rows   []RewardedRow `json:"rows"`
	Totals *RewardedRow  `json:"totals"`
}

// LevelRow is one level of the completion report
type LevelRow struct {
	Level                 int64    `ch:"level" json:"level"`
	Completions           uint64   `ch:"completions" json:"completions"`
	Failures              uint64   `ch:"failures" json:"failures"`
	TotalAttempts         uint64   `ch:"total_attempts" json:"total_attempts"`
	UniqueUsers           uint64   `ch:"unique_users" json:"unique_users"`
	CompletionRate        *float64 `ch:"completion_rate" json:"completion_rate"`
	AvgDurationComplete   *float64 `ch:"avg_duration_complete" json:"avg_duration_complete"`
	AvgDurationFail       *float64 `ch:"avg_duration_fail" json:"avg_duration_fail"`
	AvgAttemptsToComplete *float64 `ch:"avg_attempts_to_complete" json:"avg_attempts_to_complete"`
}

// BoostRow compares attempts with and without a prior silver coin ad
type BoostRow struct {
	Level                      int64    `ch:"level" json:"level"`
	TotalAttempts              uint64   `ch:"total_attempts" json:"total_attempts"`
	AttemptsWithBoost          uint64   `ch:"attempts_with_boost" json:"attempts_with_boost"`
	CompletionsWithBoost       uint64   `ch:"completions_with_boost" json:"completions_with_boost"`
	CompletionsWithoutBoost    uint64   `ch:"completions_without_boost" json:"completions_without_boost"`
	BoostUsageRate             float64  `ch:"boost_usage_rate" json:"boost_usage_rate"`
	CompletionRateWithBoost    *float64 `ch:"completion_rate_with_boost" json:"completion_rate_with_boost"`
	CompletionRateWithoutBoost *float64 `ch:"completion_rate_without_boost" json:"completion_rate_without_boost"`
}

// UpgradeRow aggregates unit upgrades per unit
type UpgradeRow struct {
	UnitName        string  `ch:"unit_name" json:"unit_name"`
	TotalUpgrades   uint64  `ch:"total_upgrades" json:"total_upgrades"`
	AvgUpgradeLevel float64 `ch:"avg_upgrade_level" json:"avg_upgrade_level"`
	MinLevel        int64   `ch:"min_level" json:"min_level"`
	MaxLevel        int64   `ch:"max_level" json:"max_level"`
}

// ChurnRow is one level of the churn report
type ChurnRow struct {
	Level               int64    `ch:"level" json:"level"`
	UsersReachedLevel   uint64   `ch:"users_reached_level" json:"users_reached_level"`
	UsersChurnedAtLevel int64    `ch:"users_churned_at_level" json:"users_churned_at_level"`
	ChurnRate           float64  `ch:"churn_rate" json:"churn_rate"`
	FailureRate         *float64 `ch:"failure_rate" json:"failure_rate"`
	DifficultyScore     *float64 `ch:"difficulty_score" json:"difficulty_score"`
}

// BoosterRow counts openings per booster box
type BoosterRow struct {
	BoxID       string  `ch:"box_id" json:"box_id"`
	TimesOpened uint64  `ch:"times_opened" json:"times_opened"`
	UniqueUsers uint64  `ch:"unique_users" json:"unique_users"`
	AvgPerUser  float64 `ch:"avg_per_user" json:"avg_per_user"`
}

// BaseStationRow counts upgrades per skill and level; the level may be missing
type BaseStationRow struct {
	Skill        string `ch:"skill" json:"skill"`
	UpgradeLevel *int64 `ch:"upgrade_level" json:"upgrade_level"`
	UpgradeCount uint64 `ch:"upgrade_count" json:"upgrade_count"`
	UniqueUsers  uint64 `ch:"unique_users" json:"unique_users"`
}

// OverallStats is the headline counters row
type OverallStats struct {
	TotalUsers              uint64 `ch:"total_users" json:"total_users"`
	UsersWhoPlayed          uint64 `ch:"users_who_played" json:"users_who_played"`
	TotalRewardedAds        uint64 `ch:"total_rewarded_ads" json:"total_rewarded_ads"`
	TotalLevelCompletions   uint64 `ch:"total_level_completions" json:"total_level_completions"`
	TotalLevelFailures      uint64 `ch:"total_level_failures" json:"total_level_failures"`
	TotalUnitUpgrades       uint64 `ch:"total_unit_upgrades" json:"total_unit_upgrades"`
	TotalBoosterBoxesOpened uint64 `ch:"total_booster_boxes_opened" json:"total_booster_boxes_opened"`
}

// CountryOption is one entry of the country picker
type CountryOption struct {
	Country   string `ch:"country" json:"country"`
	UserCount uint64 `ch:"user_count" json:"user_count"`
}

// VersionOption is one entry of the version picker
type VersionOption struct {
	Version   string `ch:"version" json:"version"`
	UserCount uint64 `ch:"user_count" json:"user_count"`
}
