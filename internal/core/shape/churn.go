package shape

// WorstChurn returns the level losing the largest share of its players
// ties go to the lower level; ok is false for an empty report
func WorstChurn(rows []ChurnRow) (ChurnRow, bool) {
	if len(rows) == 0 {
		return ChurnRow{}, false
	}
	worst := rows[0]
	for _, r := range rows[1:] {
		if r.ChurnRate > worst.ChurnRate {
			worst = r
		}
	}
	return worst, true
}
