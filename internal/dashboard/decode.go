package dashboard

import (
	"cubewars/internal/core/shape"

	json "github.com/goccy/go-json"
)

// Each decoder maps one report contract. On any mismatch it returns the typed
// empty default alongside the error, so a bad section never breaks the page

func decodeList[T any](raw []byte) ([]T, error) {
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return []T{}, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// DecodeRewarded reads {rows, totals}; totals stays nil when absent
func DecodeRewarded(raw []byte) (shape.RewardedReport, error) {
	var out shape.RewardedReport
	if err := json.Unmarshal(raw, &out); err != nil {
		return shape.RewardedReportOf(nil), err
	}
	if out.Rows == nil {
		out.Rows = []shape.RewardedRow{}
	}
	return out, nil
}

// DecodeLevels reads the level analysis rows
func DecodeLevels(raw []byte) ([]shape.LevelRow, error) { return decodeList[shape.LevelRow](raw) }

// DecodeBoost reads the silver coin boost rows
func DecodeBoost(raw []byte) ([]shape.BoostRow, error) { return decodeList[shape.BoostRow](raw) }

// DecodeLoadout reads {unitFrequency, topLoadouts}; missing halves are empty
func DecodeLoadout(raw []byte) (shape.LoadoutReport, error) {
	var out shape.LoadoutReport
	if err := json.Unmarshal(raw, &out); err != nil {
		return shape.SplitLoadout(nil), err
	}
	if out.UnitFrequency == nil {
		out.UnitFrequency = []shape.FrequencyRow{}
	}
	if out.TopLoadouts == nil {
		out.TopLoadouts = []shape.LoadoutRow{}
	}
	return out, nil
}

// DecodeUpgrades reads the unit upgrade rows
func DecodeUpgrades(raw []byte) ([]shape.UpgradeRow, error) { return decodeList[shape.UpgradeRow](raw) }

// DecodeChurn reads the churn rows
func DecodeChurn(raw []byte) ([]shape.ChurnRow, error) { return decodeList[shape.ChurnRow](raw) }

// DecodeBoosters reads the booster box rows
func DecodeBoosters(raw []byte) ([]shape.BoosterRow, error) { return decodeList[shape.BoosterRow](raw) }

// DecodeBaseStation reads the base station rows
func DecodeBaseStation(raw []byte) ([]shape.BaseStationRow, error) {
	return decodeList[shape.BaseStationRow](raw)
}

// DecodeOverall reads the headline counters; {} decodes to all zeros
func DecodeOverall(raw []byte) (shape.OverallStats, error) {
	var out shape.OverallStats
	if err := json.Unmarshal(raw, &out); err != nil {
		return shape.OverallStats{}, err
	}
	return out, nil
}

// DecodeCountries reads the country picker entries
func DecodeCountries(raw []byte) ([]shape.CountryOption, error) {
	return decodeList[shape.CountryOption](raw)
}

// DecodeVersions reads the version picker entries
func DecodeVersions(raw []byte) ([]shape.VersionOption, error) {
	return decodeList[shape.VersionOption](raw)
}

// DecodeDayBuckets reads a cohort drill down
func DecodeDayBuckets(raw []byte) ([]shape.DayBucketRow, error) {
	return decodeList[shape.DayBucketRow](raw)
}
