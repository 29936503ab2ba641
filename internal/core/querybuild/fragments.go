package querybuild

import (
	"strconv"
	"strings"

	pstrings "cubewars/internal/platform/strings"
)

// Fragment is a piece of SQL with the arguments for its ? placeholders, in order
// the zero value is the empty fragment
type Fragment struct {
	SQL  string
	Args []any
}

// Empty reports whether the fragment adds nothing
func (f Fragment) Empty() bool { return f.SQL == "" && len(f.Args) == 0 }

// Join concatenates fragments; args follow the order of the SQL
func Join(frags ...Fragment) Fragment {
	var (
		sb   strings.Builder
		args []any
	)
	for _, fr := range frags {
		sb.WriteString(fr.SQL)
		args = append(args, fr.Args...)
	}
	return Fragment{SQL: sb.String(), Args: args}
}

func raw(sql string) Fragment { return Fragment{SQL: sql} }

// DateFragment limits events to [StartDate, EndDate] by event day
// both bounds are required, otherwise the fragment is empty
func DateFragment(f Filter) Fragment {
	if !f.HasRange() {
		return Fragment{}
	}
	return Fragment{SQL: " AND toDate(event_ts) BETWEEN ? AND ?", Args: []any{f.start(), f.end()}}
}

// PlatformFragment matches the stored upper case platform
func PlatformFragment(f Filter) Fragment {
	if !pstrings.Selected(f.Platform) {
		return Fragment{}
	}
	return Fragment{SQL: " AND platform = ?", Args: []any{strings.ToUpper(strings.TrimSpace(f.Platform))}}
}

// CountryFragment matches the geo country
func CountryFragment(f Filter) Fragment {
	if !pstrings.Selected(f.Country) {
		return Fragment{}
	}
	return Fragment{SQL: " AND country = ?", Args: []any{strings.TrimSpace(f.Country)}}
}

// VersionFragment matches the app version
func VersionFragment(f Filter) Fragment {
	if !pstrings.Selected(f.Version) {
		return Fragment{}
	}
	return Fragment{SQL: " AND app_version = ?", Args: []any{strings.TrimSpace(f.Version)}}
}

// LevelFragment matches the integer level parameter
// returns ErrInvalidLevel when the level is set but not an integer
func LevelFragment(f Filter) (Fragment, error) {
	if !pstrings.Selected(f.Level) {
		return Fragment{}, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(f.Level), 10, 64)
	if err != nil {
		return Fragment{}, ErrInvalidLevel
	}
	return Fragment{SQL: " AND " + IntParam("level").SQL + " = ?", Args: []any{n}}, nil
}

// Filters joins the platform, country and version fragments selected by dims
func Filters(f Filter, dims Dim) Fragment {
	var out []Fragment
	if dims.Has(DimPlatform) {
		out = append(out, PlatformFragment(f))
	}
	if dims.Has(DimCountry) {
		out = append(out, CountryFragment(f))
	}
	if dims.Has(DimVersion) {
		out = append(out, VersionFragment(f))
	}
	return Join(out...)
}

// CohortCTE defines user_cohorts: users whose first first_open day lies in the range
// only dims narrow the first_open events. Empty without a date range
// the fragment ends with a comma so it can open any WITH list
func CohortCTE(f Filter, table string, dims Dim) Fragment {
	if !f.HasRange() {
		return Fragment{}
	}
	return Join(
		raw(`user_cohorts AS (
    SELECT user_pseudo_id, min(toDate(event_ts)) AS cohort_date
    FROM `+table+`
    WHERE event_name = 'first_open'`),
		Filters(f, dims),
		Fragment{SQL: `
    GROUP BY user_pseudo_id
    HAVING cohort_date BETWEEN ? AND ?
  ),
  `, Args: []any{f.start(), f.end()}},
	)
}

// CohortJoin restricts alias to cohort users; empty without a date range
func CohortJoin(f Filter, alias string) Fragment {
	if !f.HasRange() {
		return Fragment{}
	}
	return raw(" INNER JOIN user_cohorts uc ON " + alias + ".user_pseudo_id = uc.user_pseudo_id")
}
