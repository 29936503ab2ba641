package shape

import (
	"github.com/cockroachdb/apd/v3"
)

// TotalEventName labels the synthetic totals row
const TotalEventName = "TOTAL"

// RewardedTotals sums the per event rows into one TOTAL row, nil without rows
//
// unique_users is summed across event types, so a user who watched two kinds
// of ads counts twice. Dashboards are calibrated to that number
func RewardedTotals(rows []RewardedRow) *RewardedRow {
	if len(rows) == 0 {
		return nil
	}
	var total, unique uint64
	for _, r := range rows {
		total += r.TotalCount
		unique += r.UniqueUsers
	}
	totalUsers := rows[0].TotalUsers

	out := &RewardedRow{
		EventName:   TotalEventName,
		TotalCount:  total,
		UniqueUsers: unique,
		TotalUsers:  totalUsers,
	}
	if total > 0 {
		out.AvgPerUser = Ratio2(total, unique)
	}
	perAll := Ratio2(total, totalUsers)
	out.AvgPerAllUsers = &perAll
	return out
}

// RewardedReportOf pairs rows with their totals; nil rows become an empty list
func RewardedReportOf(rows []RewardedRow) RewardedReport {
	if rows == nil {
		rows = []RewardedRow{}
	}
	return RewardedReport{Rows: rows, Totals: RewardedTotals(rows)}
}

// Ratio2 is num/den rounded half up to two decimals; 0 when den is 0
func Ratio2(num, den uint64) float64 {
	if den == 0 {
		return 0
	}
	ctx := apd.BaseContext.WithPrecision(34)
	ctx.Rounding = apd.RoundHalfUp

	var n, d, q, r apd.Decimal
	n.SetFinite(int64(num), 0)
	d.SetFinite(int64(den), 0)
	if _, err := ctx.Quo(&q, &n, &d); err != nil {
		return 0
	}
	if _, err := ctx.Quantize(&r, &q, -2); err != nil {
		return 0
	}
	f, err := r.Float64()
	if err != nil {
		return 0
	}
	return f
}
