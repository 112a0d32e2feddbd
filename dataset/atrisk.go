package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/dustin/go-humanize"
)

// AtRiskDisplayLimit is the number of at-risk customers shown in the
// dashboard table. The CSV export is never truncated.
const AtRiskDisplayLimit = 20

// ExportFileName is the fixed download name for the at-risk customer export.
const ExportFileName = "at_risk_customers.csv"

// AtRisk selects the churned customers from a view, sorted by total spend
// descending. The sort is stable so equal-spend rows keep their table order.
func AtRisk(view []CustomerRecord) []CustomerRecord {
	var atRisk []CustomerRecord
	for _, r := range view {
		if r.Churned {
			atRisk = append(atRisk, r)
		}
	}

	sort.SliceStable(atRisk, func(i, j int) bool {
		return atRisk[i].Monetary > atRisk[j].Monetary
	})
	return atRisk
}

// AtRiskRow is the formatted display projection of one at-risk customer.
type AtRiskRow struct {
	CustomerID    string `json:"customer_id"`
	Segment       string `json:"segment"`
	DaysSinceLast int    `json:"days_since_purchase"`
	TotalOrders   int    `json:"total_orders"`
	TotalSpent    string `json:"total_spent"`
	AvgOrderValue string `json:"avg_order_value"`
}

// FormatAtRisk renders at most limit rows for display, with currency columns
// formatted with the £ symbol and thousands separators.
func FormatAtRisk(atRisk []CustomerRecord, limit int) []AtRiskRow {
	if limit > 0 && len(atRisk) > limit {
		atRisk = atRisk[:limit]
	}

	rows := make([]AtRiskRow, len(atRisk))
	for i, r := range atRisk {
		rows[i] = AtRiskRow{
			CustomerID:    r.CustomerID,
			Segment:       r.SegmentName,
			DaysSinceLast: int(r.Recency),
			TotalOrders:   int(r.Frequency),
			TotalSpent:    FormatCurrency(r.Monetary),
			AvgOrderValue: FormatCurrency(r.AvgOrderValue),
		}
	}
	return rows
}

// FormatCurrency renders a monetary value as £ with thousands separators and
// two decimal places.
func FormatCurrency(v float64) string {
	return "£" + humanize.FormatFloat("#,###.##", v)
}

// ExportCSV writes the full, unformatted at-risk selection as comma-separated
// text with all columns, suitable for download.
func ExportCSV(w io.Writer, atRisk []CustomerRecord) error {
	writer := csv.NewWriter(w)

	header := []string{
		"CustomerID", "Segment_Name", "Churned",
		"Recency", "Frequency", "Monetary", "AvgOrderValue",
		"AvgDaysBetween", "IsOneTimeBuyer",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}

	for _, r := range atRisk {
		row := []string{
			r.CustomerID,
			r.SegmentName,
			flagString(r.Churned),
			formatFloat(r.Recency),
			formatFloat(r.Frequency),
			formatFloat(r.Monetary),
			formatFloat(r.AvgOrderValue),
			formatFloat(r.AvgDaysBetween),
			flagString(r.OneTimeBuyer),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write export row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func flagString(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}
