package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureCSV = `CustomerID,Segment_Name,Churned,Recency,Frequency,Monetary,AvgOrderValue,AvgDaysBetween,IsOneTimeBuyer
c1,Champions,0,12,8,2400.50,300.06,15.5,0
c2,At Risk,1,150,2,180,90,60,0
c3,Champions,0,30,5,900,180,22,0
c4,Hibernating,1,300,1,45.99,45.99,0,1
`

// writeFixture writes CSV content to a temp file and returns its path
func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "customer_segments.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TestStoreLoadsRecords checks parsing of a well-formed dataset
func TestStoreLoadsRecords(t *testing.T) {
	store := NewStore(writeFixture(t, fixtureCSV))

	records, err := store.Records()
	require.NoError(t, err)
	require.Len(t, records, 4)

	first := records[0]
	assert.Equal(t, "c1", first.CustomerID)
	assert.Equal(t, "Champions", first.SegmentName)
	assert.False(t, first.Churned)
	assert.InDelta(t, 12.0, first.Recency, 1e-12)
	assert.InDelta(t, 8.0, first.Frequency, 1e-12)
	assert.InDelta(t, 2400.50, first.Monetary, 1e-12)
	assert.InDelta(t, 300.06, first.AvgOrderValue, 1e-12)
	assert.InDelta(t, 15.5, first.AvgDaysBetween, 1e-12)
	assert.False(t, first.OneTimeBuyer)

	last := records[3]
	assert.True(t, last.Churned)
	assert.True(t, last.OneTimeBuyer)
}

// TestStoreLoadsOnce checks that the table is read a single time per process
func TestStoreLoadsOnce(t *testing.T) {
	path := writeFixture(t, fixtureCSV)
	store := NewStore(path)

	first, err := store.Records()
	require.NoError(t, err)
	require.Len(t, first, 4)

	// Rewriting the file must not affect an already-loaded store.
	require.NoError(t, os.WriteFile(path, []byte("CustomerID\n"), 0644))

	second, err := store.Records()
	require.NoError(t, err)
	assert.Equal(t, first, second, "store must serve the cached table, never re-read")
}

// TestStoreMissingFile checks the error path for an absent dataset
func TestStoreMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nope.csv"))

	_, err := store.Records()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open dataset")

	// The failure is sticky.
	_, err2 := store.Records()
	assert.Equal(t, err, err2)
}

// TestStoreMissingColumn checks header validation
func TestStoreMissingColumn(t *testing.T) {
	store := NewStore(writeFixture(t, "CustomerID,Segment_Name,Churned\nc1,A,0\n"))

	_, err := store.Records()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required column")
}

// TestStoreMalformedRow checks that bad cell values are rejected with the row number
func TestStoreMalformedRow(t *testing.T) {
	bad := `CustomerID,Segment_Name,Churned,Recency,Frequency,Monetary,AvgOrderValue
c1,A,0,10,2,100,50
c2,A,yes,10,2,100,50
`
	store := NewStore(writeFixture(t, bad))

	_, err := store.Records()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed dataset row 3")
	assert.Contains(t, err.Error(), "Churned")
}

// TestStoreOptionalColumns checks that a dataset without the optional columns loads
func TestStoreOptionalColumns(t *testing.T) {
	minimal := `CustomerID,Segment_Name,Churned,Recency,Frequency,Monetary,AvgOrderValue
c1,A,1,95,2,180.5,90.25
`
	store := NewStore(writeFixture(t, minimal))

	records, err := store.Records()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 0.0, records[0].AvgDaysBetween)
	assert.False(t, records[0].OneTimeBuyer)
}

// TestStoreSegments checks distinct labels in first-seen order
func TestStoreSegments(t *testing.T) {
	store := NewStore(writeFixture(t, fixtureCSV))

	segments, err := store.Segments()
	require.NoError(t, err)
	assert.Equal(t, []string{"Champions", "At Risk", "Hibernating"}, segments)
}

// TestParseChurnFilter checks the accepted wire spellings of each mode
func TestParseChurnFilter(t *testing.T) {
	tests := []struct {
		input   string
		want    ChurnFilter
		wantErr bool
	}{
		{"", ChurnAll, false},
		{"all", ChurnAll, false},
		{"active", ChurnActiveOnly, false},
		{"active_only", ChurnActiveOnly, false},
		{"churned", ChurnChurnedOnly, false},
		{"churned_only", ChurnChurnedOnly, false},
		{"bogus", ChurnAll, true},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			mode, err := ParseChurnFilter(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, mode)
		})
	}
}
