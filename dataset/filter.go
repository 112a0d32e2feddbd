package dataset

// Filter returns the rows whose segment label is in segments and whose churn
// flag matches mode. An empty segment set yields an empty view, not the full
// table. Row order is preserved; the source slice is never mutated.
func Filter(records []CustomerRecord, segments []string, mode ChurnFilter) []CustomerRecord {
	allowed := make(map[string]bool, len(segments))
	for _, s := range segments {
		allowed[s] = true
	}

	view := make([]CustomerRecord, 0, len(records))
	for _, r := range records {
		if !allowed[r.SegmentName] {
			continue
		}
		if !mode.Matches(r.Churned) {
			continue
		}
		view = append(view, r)
	}
	return view
}
