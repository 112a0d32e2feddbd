// Package dataset holds the in-memory customer segment table and the pure
// filtering and aggregation operations the dashboard recomputes on every
// interaction.
package dataset

import "fmt"

// ChurnThresholdDays is the recency cutoff used by the upstream segmentation
// to classify a customer as churned. Exposed for the recency histogram marker.
const ChurnThresholdDays = 90.0

// CustomerRecord is one row of the customer segment table. Records are
// immutable once loaded; filtering produces new slices, never mutation.
type CustomerRecord struct {
	CustomerID     string  `json:"customer_id"`
	SegmentName    string  `json:"segment_name"`
	Churned        bool    `json:"churned"`
	Recency        float64 `json:"recency"`
	Frequency      float64 `json:"frequency"`
	Monetary       float64 `json:"monetary"`
	AvgOrderValue  float64 `json:"avg_order_value"`
	AvgDaysBetween float64 `json:"avg_days_between"`
	OneTimeBuyer   bool    `json:"one_time_buyer"`
}

// ChurnFilter selects rows by churn status.
type ChurnFilter int

const (
	// ChurnAll matches both active and churned customers.
	ChurnAll ChurnFilter = iota
	// ChurnActiveOnly matches customers with Churned == false.
	ChurnActiveOnly
	// ChurnChurnedOnly matches customers with Churned == true.
	ChurnChurnedOnly
)

// String returns the string representation of ChurnFilter
func (f ChurnFilter) String() string {
	switch f {
	case ChurnAll:
		return "all"
	case ChurnActiveOnly:
		return "active"
	case ChurnChurnedOnly:
		return "churned"
	default:
		return "unknown"
	}
}

// ParseChurnFilter parses the API token for a churn filter mode.
func ParseChurnFilter(s string) (ChurnFilter, error) {
	switch s {
	case "", "all":
		return ChurnAll, nil
	case "active", "active_only":
		return ChurnActiveOnly, nil
	case "churned", "churned_only":
		return ChurnChurnedOnly, nil
	default:
		return ChurnAll, fmt.Errorf("unknown churn filter: %q", s)
	}
}

// Matches reports whether a record's churn flag satisfies the filter.
func (f ChurnFilter) Matches(churned bool) bool {
	switch f {
	case ChurnActiveOnly:
		return !churned
	case ChurnChurnedOnly:
		return churned
	default:
		return true
	}
}
