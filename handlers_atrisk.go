package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/churnboard/churnboard-go/dataset"
	"github.com/churnboard/churnboard-go/utils"
)

// handleAtRisk handles POST /api/v1/dashboard/at-risk: the top-N
// highest-value churned customers in the current filter, formatted for
// display. An empty selection is a valid state, not an error.
func (s *Server) handleAtRisk(w http.ResponseWriter, r *http.Request) {
	view, ok := s.filteredView(w, r)
	if !ok {
		return
	}

	atRisk := dataset.AtRisk(view)
	writeJSONResponse(w, http.StatusOK, map[string]any{
		"rows":          dataset.FormatAtRisk(atRisk, dataset.AtRiskDisplayLimit),
		"total_churned": len(atRisk),
		"display_limit": dataset.AtRiskDisplayLimit,
	})
}

// handleAtRiskExport handles GET/POST /api/v1/dashboard/at-risk/export: the
// full churned selection (not display-truncated) as a CSV download under a
// fixed file name. GET takes the filter from query parameters so the export
// works as a plain download link.
func (s *Server) handleAtRiskExport(w http.ResponseWriter, r *http.Request) {
	var view []dataset.CustomerRecord
	var ok bool

	if r.Method == http.MethodGet {
		view, ok = s.filteredViewFromQuery(w, r)
	} else {
		view, ok = s.filteredView(w, r)
	}
	if !ok {
		return
	}

	atRisk := dataset.AtRisk(view)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%s", dataset.ExportFileName))
	if err := dataset.ExportCSV(w, atRisk); err != nil {
		utils.GetLogger().Error("Failed to write at-risk export", err, utils.Component("export"))
	}
}

// filteredViewFromQuery derives the view from query parameters:
// ?segments=A,B&churn_filter=all
func (s *Server) filteredViewFromQuery(w http.ResponseWriter, r *http.Request) ([]dataset.CustomerRecord, bool) {
	var segments []string
	if raw := r.URL.Query().Get("segments"); raw != "" {
		segments = strings.Split(raw, ",")
	}

	mode, err := dataset.ParseChurnFilter(r.URL.Query().Get("churn_filter"))
	if err != nil {
		writeBadRequestResponse(w, err.Error())
		return nil, false
	}

	records, err := s.store.Records()
	if err != nil {
		writeDatasetUnavailableResponse(w, err)
		return nil, false
	}

	return dataset.Filter(records, segments, mode), true
}
