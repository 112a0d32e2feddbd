package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSummarizeEmptyView checks that an empty view yields zero metrics, not NaN
func TestSummarizeEmptyView(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, 0, summary.Count)
	assert.Equal(t, 0.0, summary.ChurnRate, "churn rate over zero rows must be 0, not NaN")
	assert.Equal(t, 0.0, summary.TotalRevenue)
	assert.Equal(t, 0.0, summary.AvgValue, "average over zero rows must be 0, not NaN")
}

// TestSummarizeFilteredScenario walks a filter through a known three-row table
// and checks every downstream metric
func TestSummarizeFilteredScenario(t *testing.T) {
	table := []CustomerRecord{
		{CustomerID: "c1", SegmentName: "A", Churned: true, Monetary: 100},
		{CustomerID: "c2", SegmentName: "B", Churned: false, Monetary: 200},
		{CustomerID: "c3", SegmentName: "A", Churned: true, Monetary: 300},
	}

	view := Filter(table, []string{"A"}, ChurnAll)
	require.Len(t, view, 2)

	summary := Summarize(view)
	assert.Equal(t, 2, summary.Count)
	assert.InDelta(t, 1.0, summary.ChurnRate, 1e-12, "both selected rows are churned")
	assert.InDelta(t, 400.0, summary.TotalRevenue, 1e-12)
	assert.InDelta(t, 200.0, summary.AvgValue, 1e-12)
}

// TestSummarizeChurnRate checks the churned-fraction computation
func TestSummarizeChurnRate(t *testing.T) {
	table := []CustomerRecord{
		{CustomerID: "c1", Churned: true, Monetary: 10},
		{CustomerID: "c2", Churned: false, Monetary: 20},
		{CustomerID: "c3", Churned: false, Monetary: 30},
		{CustomerID: "c4", Churned: true, Monetary: 40},
	}

	summary := Summarize(table)
	assert.InDelta(t, 0.5, summary.ChurnRate, 1e-12)
	assert.InDelta(t, 100.0, summary.TotalRevenue, 1e-12)
	assert.InDelta(t, 25.0, summary.AvgValue, 1e-12)
}

// TestSegmentCounts checks per-segment row counts
func TestSegmentCounts(t *testing.T) {
	table := []CustomerRecord{
		{CustomerID: "c1", SegmentName: "Champions"},
		{CustomerID: "c2", SegmentName: "At Risk"},
		{CustomerID: "c3", SegmentName: "Champions"},
		{CustomerID: "c4", SegmentName: "Champions"},
	}

	counts := SegmentCounts(table)
	require.Len(t, counts, 2)
	assert.Equal(t, SegmentCount{Segment: "Champions", Count: 3}, counts[0])
	assert.Equal(t, SegmentCount{Segment: "At Risk", Count: 1}, counts[1])
}

// TestRevenueBySegment checks descending revenue ordering with alphabetical ties
func TestRevenueBySegment(t *testing.T) {
	table := []CustomerRecord{
		{CustomerID: "c1", SegmentName: "B", Monetary: 100},
		{CustomerID: "c2", SegmentName: "A", Monetary: 250},
		{CustomerID: "c3", SegmentName: "C", Monetary: 150},
		{CustomerID: "c4", SegmentName: "B", Monetary: 150},
	}

	revenue := RevenueBySegment(table)
	require.Len(t, revenue, 3)
	assert.Equal(t, "B", revenue[0].Segment, "B has the highest total revenue")
	assert.InDelta(t, 250.0, revenue[0].Revenue, 1e-12)
	assert.Equal(t, "A", revenue[1].Segment, "ties broken alphabetically")
	assert.Equal(t, "C", revenue[2].Segment)
}

// TestHistogramOf checks bin coverage of the value range
func TestHistogramOf(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	hist := HistogramOf(values, 5)
	require.Len(t, hist.Counts, 5)
	require.Len(t, hist.Edges, 6)

	total := 0.0
	for _, c := range hist.Counts {
		total += c
	}
	assert.InDelta(t, float64(len(values)), total, 1e-12,
		"every value, including the maximum, must land in a bin")

	assert.InDelta(t, 1.0, hist.Edges[0], 1e-12)
}

// TestHistogramOfDegenerate checks the single-value edge cases
func TestHistogramOfDegenerate(t *testing.T) {
	hist := HistogramOf([]float64{5, 5, 5}, 10)
	require.Len(t, hist.Counts, 1, "equal min and max collapse to a single bin")
	assert.InDelta(t, 3.0, hist.Counts[0], 1e-12)

	hist = HistogramOf(nil, 10)
	assert.Empty(t, hist.Counts)
}

// TestRFMHistograms checks that all three distributions are produced
func TestRFMHistograms(t *testing.T) {
	table := []CustomerRecord{
		{Recency: 10, Frequency: 1, Monetary: 100},
		{Recency: 120, Frequency: 4, Monetary: 900},
		{Recency: 45, Frequency: 2, Monetary: 300},
	}

	dist := RFMHistograms(table)
	assert.NotEmpty(t, dist.Recency.Counts)
	assert.NotEmpty(t, dist.Frequency.Counts)
	assert.NotEmpty(t, dist.Monetary.Counts)
	assert.InDelta(t, ChurnThresholdDays, dist.ChurnThresholdDays, 1e-12,
		"recency chart carries the churn cutoff marker")
}
