package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/churnboard/churnboard-go/dataset"
)

// DashboardRequest selects the view every dashboard endpoint works on: a set
// of allowed segments and a churn status mode.
type DashboardRequest struct {
	Segments    []string `json:"segments"`
	ChurnFilter string   `json:"churn_filter"` // "all", "active" or "churned"
}

// DashboardResponse carries everything the dashboard page renders for one
// filter state.
type DashboardResponse struct {
	Metrics          dataset.Summary          `json:"metrics"`
	SegmentCounts    []dataset.SegmentCount   `json:"segment_counts"`
	RevenueBySegment []dataset.SegmentRevenue `json:"revenue_by_segment"`
	Distributions    dataset.RFMDistributions `json:"distributions"`
}

// handleSegments handles GET /api/v1/segments
func (s *Server) handleSegments(w http.ResponseWriter, r *http.Request) {
	segments, err := s.store.Segments()
	if err != nil {
		writeDatasetUnavailableResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, map[string]any{
		"segments": segments,
	})
}

// handleDashboard handles POST /api/v1/dashboard
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	view, ok := s.filteredView(w, r)
	if !ok {
		return
	}

	writeJSONResponse(w, http.StatusOK, DashboardResponse{
		Metrics:          dataset.Summarize(view),
		SegmentCounts:    dataset.SegmentCounts(view),
		RevenueBySegment: dataset.RevenueBySegment(view),
		Distributions:    dataset.RFMHistograms(view),
	})
}

// filteredView decodes the filter request and derives the view. On failure it
// writes the error response and returns ok=false.
func (s *Server) filteredView(w http.ResponseWriter, r *http.Request) ([]dataset.CustomerRecord, bool) {
	var req DashboardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequestResponse(w, fmt.Sprintf("Invalid request body: %v", err))
		return nil, false
	}

	mode, err := dataset.ParseChurnFilter(req.ChurnFilter)
	if err != nil {
		writeBadRequestResponse(w, err.Error())
		return nil, false
	}

	records, err := s.store.Records()
	if err != nil {
		writeDatasetUnavailableResponse(w, err)
		return nil, false
	}

	return dataset.Filter(records, req.Segments, mode), true
}
