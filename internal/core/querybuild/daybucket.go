package querybuild

import (
	"strconv"
	"strings"

	pstrings "cubewars/internal/platform/strings"
)

// DayOffsets are the days since install reported by the cohort drill-downs
var DayOffsets = [...]int{0, 1, 2, 3, 4, 5, 6, 7, 14, 30, 45, 60, 75, 90}

// DayBucketLimit caps the install dates returned by a drill-down
const DayBucketLimit = 100

// Selector picks the events counted per day bucket
type Selector interface {
	// Param is the query parameter that carries the selector value
	Param() string
	// Value is the trimmed selector value
	Value() string
	kind() Kind
	match() Fragment
}

// EventSelector counts events by name; a name containing % is a LIKE pattern
type EventSelector struct{ Name string }

func (s EventSelector) Param() string { return "eventName" }
func (s EventSelector) kind() Kind    { return KindRewardedAdsCohort }
func (s EventSelector) Value() string { return strings.TrimSpace(s.Name) }
func (s EventSelector) match() Fragment {
	op := " = ?"
	if strings.Contains(s.Value(), "%") {
		op = " LIKE ?"
	}
	return Fragment{SQL: "e.event_name" + op, Args: []any{s.Value()}}
}

// AdFormatSelector counts ad impressions of one format
type AdFormatSelector struct{ Format string }

func (s AdFormatSelector) Param() string { return "adFormat" }
func (s AdFormatSelector) kind() Kind    { return KindAdImpressionsCohort }
func (s AdFormatSelector) Value() string { return strings.TrimSpace(s.Format) }
func (s AdFormatSelector) match() Fragment {
	return Fragment{
		SQL:  "e.event_name = 'ad_impression' AND " + StringParam("ad_format").SQL + " = ?",
		Args: []any{s.Value()},
	}
}

// DayBuckets builds the day since install pivot for sel
// each row is one install date with the cohort size and, per offset k, the
// matching events on day k and the users active at all on day k
func (c *Composer) DayBuckets(f Filter, sel Selector) (Query, error) {
	if sel == nil || pstrings.Blank(sel.Value()) {
		return Query{}, ErrMissingSelector
	}
	vars := c.vars(f, AllDims)
	vars["join_ufo"] = CohortJoin(f, "ufo")
	vars["match"] = sel.match()
	vars["events"] = raw(bucketColumns("countIf(matched = 1 AND days_since_install = %d)"))
	vars["users"] = raw(bucketColumns("uniqExactIf(user_pseudo_id, days_since_install = %d)"))
	vars["bucket_limit"] = raw(strconv.Itoa(DayBucketLimit))

	sql, args := render(dayBucketSQL, vars)
	return Query{Kind: sel.kind(), SQL: sql, Args: args}, nil
}

// bucketColumns renders one array element per offset from a %d pattern
func bucketColumns(pattern string) string {
	parts := make([]string, len(DayOffsets))
	for i, k := range DayOffsets {
		parts[i] = strings.Replace(pattern, "%d", strconv.Itoa(k), 1)
	}
	return "[\n    " + strings.Join(parts, ",\n    ") + "\n  ]"
}

// every cohort user has at least the first_open event, so joining the small
// user set onto the events yields the same rows as the outer join would
// days_since_install and matched are never NULL, so empty buckets read 0
const dayBucketSQL = `
WITH {{cohort}}user_first_open AS (
    SELECT e.user_pseudo_id AS user_pseudo_id, min(toDate(e.event_ts)) AS install_day
    FROM {{table}} e
    WHERE event_name = 'first_open'{{filters}}
    GROUP BY e.user_pseudo_id
  ),
  cohorted_users AS (
    SELECT ufo.user_pseudo_id AS user_pseudo_id, ufo.install_day AS install_day
    FROM user_first_open ufo{{join_ufo}}
  ),
  all_events AS (
    SELECT
      cu.install_day AS install_day,
      cu.user_pseudo_id AS user_pseudo_id,
      ifNull({{match}}, 0) AS matched,
      ifNull(dateDiff('day', cu.install_day, toDate(e.event_ts)), -1) AS days_since_install
    FROM {{table}} e
    INNER JOIN cohorted_users cu ON e.user_pseudo_id = cu.user_pseudo_id
  )
SELECT
  toString(install_day) AS install_date,
  uniqExact(user_pseudo_id) AS cohort_size,
  {{events}} AS day_events,
  {{users}} AS day_users
FROM all_events
GROUP BY install_day
ORDER BY install_day ASC
LIMIT {{bucket_limit}}
`
