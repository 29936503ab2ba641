package shape

import (
	"strconv"

	"cubewars/internal/core/querybuild"

	json "github.com/goccy/go-json"
)

// DayBucketRow is one install date of a cohort drill-down
// Events[i] and Users[i] belong to querybuild.DayOffsets[i]
//
// On the wire the buckets are flat: day_0_events, day_0_users, day_1_events...
type DayBucketRow struct {
	InstallDate string   `ch:"install_date"`
	CohortSize  uint64   `ch:"cohort_size"`
	Events      []uint64 `ch:"day_events"`
	Users       []uint64 `ch:"day_users"`
}

// EventsOn returns the matching events on day k, 0 for unknown offsets
func (r DayBucketRow) EventsOn(k int) uint64 { return at(r.Events, k) }

// UsersOn returns the active users on day k, 0 for unknown offsets
func (r DayBucketRow) UsersOn(k int) uint64 { return at(r.Users, k) }

func at(vals []uint64, k int) uint64 {
	for i, off := range querybuild.DayOffsets {
		if off == k && i < len(vals) {
			return vals[i]
		}
	}
	return 0
}

// MarshalJSON writes install_date, cohort_size, then each offset's events and users
func (r DayBucketRow) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, 640)
	b = append(b, `{"install_date":`...)
	b = strconv.AppendQuote(b, r.InstallDate)
	b = append(b, `,"cohort_size":`...)
	b = strconv.AppendUint(b, r.CohortSize, 10)
	for _, k := range querybuild.DayOffsets {
		day := strconv.Itoa(k)
		b = append(b, `,"day_`+day+`_events":`...)
		b = strconv.AppendUint(b, r.EventsOn(k), 10)
		b = append(b, `,"day_`+day+`_users":`...)
		b = strconv.AppendUint(b, r.UsersOn(k), 10)
	}
	return append(b, '}'), nil
}

// UnmarshalJSON reads the flat form; missing buckets read as 0
func (r *DayBucketRow) UnmarshalJSON(data []byte) error {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	var out DayBucketRow
	if raw, ok := m["install_date"]; ok {
		if err := json.Unmarshal(raw, &out.InstallDate); err != nil {
			return err
		}
	}
	if err := readUint(m, "cohort_size", &out.CohortSize); err != nil {
		return err
	}
	out.Events = make([]uint64, len(querybuild.DayOffsets))
	out.Users = make([]uint64, len(querybuild.DayOffsets))
	for i, k := range querybuild.DayOffsets {
		day := strconv.Itoa(k)
		if err := readUint(m, "day_"+day+"_events", &out.Events[i]); err != nil {
			return err
		}
		if err := readUint(m, "day_"+day+"_users", &out.Users[i]); err != nil {
			return err
		}
	}
	*r = out
	return nil
}

func readUint(m map[string]json.RawMessage, key string, dst *uint64) error {
	raw, ok := m[key]
	if !ok || string(raw) == "null" {
		return nil
	}
	return json.Unmarshal(raw, dst)
}
