package shape

// Loadout result types as tagged by the warehouse query
const (
	ResultUnitFrequency = "unit_frequency"
	ResultTopLoadouts   = "top_loadouts"
)

// TaggedLoadoutRow is one row of the loadout union before splitting
type TaggedLoadoutRow struct {
	ResultType     string  `ch:"result_type"`
	Name           string  `ch:"name"`
	UsageCount     uint64  `ch:"usage_count"`
	AdditionalInfo *uint64 `ch:"additional_info"`
}

// FrequencyRow is how often a single unit appears across loadouts
// additional_info carries the number of distinct loadouts it appeared in
type FrequencyRow struct {
	ResultType     string `json:"result_type"`
	Name           string `json:"name"`
	UsageCount     uint64 `json:"usage_count"`
	UniqueLoadouts uint64 `json:"additional_info"`
}

// LoadoutRow is one full loadout string and how often it was used
type LoadoutRow struct {
	ResultType     string  `json:"result_type"`
	Name           string  `json:"name"`
	UsageCount     uint64  `json:"usage_count"`
	AdditionalInfo *uint64 `json:"additional_info"`
}

// LoadoutReport is the unit loadout payload
type LoadoutReport struct {
	UnitFrequency []FrequencyRow `json:"unitFrequency"`
	TopLoadouts   []LoadoutRow   `json:"topLoadouts"`
}

// SplitLoadout splits the tagged rows by result_type keeping each stream's order
// unknown tags are dropped; both slices are non nil
func SplitLoadout(rows []TaggedLoadoutRow) LoadoutReport {
	out := LoadoutReport{UnitFrequency: []FrequencyRow{}, TopLoadouts: []LoadoutRow{}}
	for _, r := range rows {
		switch r.ResultType {
		case ResultUnitFrequency:
			fr := FrequencyRow{ResultType: r.ResultType, Name: r.Name, UsageCount: r.UsageCount}
			if r.AdditionalInfo != nil {
				fr.UniqueLoadouts = *r.AdditionalInfo
			}
			out.UnitFrequency = append(out.UnitFrequency, fr)
		case ResultTopLoadouts:
			out.TopLoadouts = append(out.TopLoadouts, LoadoutRow{ResultType: r.ResultType, Name: r.Name, UsageCount: r.UsageCount})
		}
	}
	return out
}
