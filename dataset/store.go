package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
)

// Store reads the customer segment table from a CSV file exactly once per
// process and shares the loaded records read-only thereafter.
type Store struct {
	path    string
	once    sync.Once
	records []CustomerRecord
	err     error
}

// NewStore creates a store for the CSV file at path. Nothing is read until
// the first call to Records.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the dataset file path the store was created with.
func (s *Store) Path() string {
	return s.path
}

// Records returns the full table, loading it on first use. A load failure is
// sticky: every subsequent call returns the same error without re-reading.
func (s *Store) Records() ([]CustomerRecord, error) {
	s.once.Do(func() {
		s.records, s.err = loadCSV(s.path)
	})
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

// Segments returns the distinct segment labels in first-seen order.
func (s *Store) Segments() ([]string, error) {
	records, err := s.Records()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var segments []string
	for _, r := range records {
		if !seen[r.SegmentName] {
			seen[r.SegmentName] = true
			segments = append(segments, r.SegmentName)
		}
	}
	return segments, nil
}

// Required dataset columns. AvgDaysBetween and IsOneTimeBuyer are optional;
// the dashboard functions without them and the scorer takes its inputs from
// the request, not from this file.
var requiredColumns = []string{
	"CustomerID", "Segment_Name", "Churned",
	"Recency", "Frequency", "Monetary", "AvgOrderValue",
}

// loadCSV parses the customer segment CSV into records.
func loadCSV(path string) ([]CustomerRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset header: %w", err)
	}

	colIndex := make(map[string]int, len(header))
	for i, name := range header {
		colIndex[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := colIndex[name]; !ok {
			return nil, fmt.Errorf("dataset missing required column: %s", name)
		}
	}

	var records []CustomerRecord
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset row %d: %w", line, err)
		}
		line++

		record, err := parseRecord(row, colIndex)
		if err != nil {
			return nil, fmt.Errorf("malformed dataset row %d: %w", line, err)
		}
		records = append(records, record)
	}

	return records, nil
}

// parseRecord converts one CSV row into a CustomerRecord.
func parseRecord(row []string, colIndex map[string]int) (CustomerRecord, error) {
	record := CustomerRecord{
		CustomerID:  row[colIndex["CustomerID"]],
		SegmentName: row[colIndex["Segment_Name"]],
	}

	churned, err := parseFlag(row[colIndex["Churned"]])
	if err != nil {
		return record, fmt.Errorf("column Churned: %w", err)
	}
	record.Churned = churned

	numeric := []struct {
		column string
		dest   *float64
	}{
		{"Recency", &record.Recency},
		{"Frequency", &record.Frequency},
		{"Monetary", &record.Monetary},
		{"AvgOrderValue", &record.AvgOrderValue},
	}
	for _, n := range numeric {
		v, err := strconv.ParseFloat(row[colIndex[n.column]], 64)
		if err != nil {
			return record, fmt.Errorf("column %s: %w", n.column, err)
		}
		*n.dest = v
	}

	// Optional columns
	if idx, ok := colIndex["AvgDaysBetween"]; ok && row[idx] != "" {
		v, err := strconv.ParseFloat(row[idx], 64)
		if err != nil {
			return record, fmt.Errorf("column AvgDaysBetween: %w", err)
		}
		record.AvgDaysBetween = v
	}
	if idx, ok := colIndex["IsOneTimeBuyer"]; ok && row[idx] != "" {
		v, err := parseFlag(row[idx])
		if err != nil {
			return record, fmt.Errorf("column IsOneTimeBuyer: %w", err)
		}
		record.OneTimeBuyer = v
	}

	return record, nil
}

// parseFlag parses a 0/1 boolean flag column.
func parseFlag(s string) (bool, error) {
	switch s {
	case "0":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, fmt.Errorf("expected 0 or 1, got %q", s)
	}
}
