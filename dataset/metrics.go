package dataset

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary holds the scalar reductions shown in the dashboard KPI row. All
// four are recomputed in full on every filter change; the table is small
// enough that incremental maintenance would be the wrong trade.
type Summary struct {
	Count        int     `json:"count"`
	ChurnRate    float64 `json:"churn_rate"`
	TotalRevenue float64 `json:"total_revenue"`
	AvgValue     float64 `json:"avg_value"`
}

// Summarize computes the KPI summary over a view. An empty view yields zero
// values, never NaN.
func Summarize(view []CustomerRecord) Summary {
	summary := Summary{Count: len(view)}
	if len(view) == 0 {
		return summary
	}

	churned := make([]float64, len(view))
	monetary := make([]float64, len(view))
	for i, r := range view {
		if r.Churned {
			churned[i] = 1
		}
		monetary[i] = r.Monetary
		summary.TotalRevenue += r.Monetary
	}

	summary.ChurnRate = stat.Mean(churned, nil)
	summary.AvgValue = stat.Mean(monetary, nil)
	return summary
}

// SegmentCount is one slice of the segment distribution chart.
type SegmentCount struct {
	Segment string `json:"segment"`
	Count   int    `json:"count"`
}

// SegmentRevenue is one bar of the revenue-by-segment chart.
type SegmentRevenue struct {
	Segment string  `json:"segment"`
	Revenue float64 `json:"revenue"`
}

// SegmentCounts returns per-segment row counts over a view, largest first.
// Ties break alphabetically so the output is deterministic.
func SegmentCounts(view []CustomerRecord) []SegmentCount {
	counts := make(map[string]int)
	for _, r := range view {
		counts[r.SegmentName]++
	}

	result := make([]SegmentCount, 0, len(counts))
	for segment, count := range counts {
		result = append(result, SegmentCount{Segment: segment, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Segment < result[j].Segment
	})
	return result
}

// RevenueBySegment returns total monetary per segment over a view, largest
// first, ties breaking alphabetically.
func RevenueBySegment(view []CustomerRecord) []SegmentRevenue {
	revenue := make(map[string]float64)
	for _, r := range view {
		revenue[r.SegmentName] += r.Monetary
	}

	result := make([]SegmentRevenue, 0, len(revenue))
	for segment, total := range revenue {
		result = append(result, SegmentRevenue{Segment: segment, Revenue: total})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Revenue != result[j].Revenue {
			return result[i].Revenue > result[j].Revenue
		}
		return result[i].Segment < result[j].Segment
	})
	return result
}

// Histogram is a binned distribution of one numeric column, for the RFM
// distribution charts.
type Histogram struct {
	Edges  []float64 `json:"edges"`
	Counts []float64 `json:"counts"`
}

// HistogramOf bins values into the given number of equal-width bins spanning
// [min, max]. Empty input yields an empty histogram.
func HistogramOf(values []float64, bins int) Histogram {
	if len(values) == 0 || bins < 1 {
		return Histogram{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	min, max := sorted[0], sorted[len(sorted)-1]
	if min == max {
		// Degenerate range: everything lands in a single bin.
		return Histogram{
			Edges:  []float64{min, max},
			Counts: []float64{float64(len(sorted))},
		}
	}

	dividers := make([]float64, bins+1)
	width := (max - min) / float64(bins)
	for i := range dividers {
		dividers[i] = min + width*float64(i)
	}
	// stat.Histogram buckets x in [dividers[i], dividers[i+1]); nudge the last
	// edge so the maximum value is counted.
	dividers[bins] = math.Nextafter(max, math.Inf(1))

	counts := stat.Histogram(nil, dividers, sorted, nil)
	return Histogram{Edges: dividers, Counts: counts}
}

// RFMHistogramBins is the bin count used by the dashboard distribution charts.
const RFMHistogramBins = 30

// RFMDistributions holds the three distribution charts of the dashboard.
type RFMDistributions struct {
	Recency   Histogram `json:"recency"`
	Frequency Histogram `json:"frequency"`
	Monetary  Histogram `json:"monetary"`
	// ChurnThresholdDays marks the churn cutoff on the recency chart.
	ChurnThresholdDays float64 `json:"churn_threshold_days"`
}

// RFMHistograms computes the recency, frequency and monetary distributions
// over a view.
func RFMHistograms(view []CustomerRecord) RFMDistributions {
	recency := make([]float64, len(view))
	frequency := make([]float64, len(view))
	monetary := make([]float64, len(view))
	for i, r := range view {
		recency[i] = r.Recency
		frequency[i] = r.Frequency
		monetary[i] = r.Monetary
	}

	return RFMDistributions{
		Recency:            HistogramOf(recency, RFMHistogramBins),
		Frequency:          HistogramOf(frequency, RFMHistogramBins),
		Monetary:           HistogramOf(monetary, RFMHistogramBins),
		ChurnThresholdDays: ChurnThresholdDays,
	}
}
