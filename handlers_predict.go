package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/churnboard/churnboard-go/risk"
	"github.com/churnboard/churnboard-go/utils"
)

// GaugeBand is one colored band of the risk gauge widget.
type GaugeBand struct {
	From  float64 `json:"from"`  // percent
	To    float64 `json:"to"`    // percent
	Level string  `json:"level"` // "low", "moderate", "high"
}

// gaugeBands are the fixed display bands of the churn risk gauge, matching
// the tier thresholds.
var gaugeBands = []GaugeBand{
	{From: 0, To: 50, Level: "low"},
	{From: 50, To: 70, Level: "moderate"},
	{From: 70, To: 100, Level: "high"},
}

// PredictResponse is the assessment of one prediction request plus the gauge
// rendering data.
type PredictResponse struct {
	Assessment risk.Assessment `json:"assessment"`
	Gauge      struct {
		ValuePercent     float64     `json:"value_percent"`
		ThresholdPercent float64     `json:"threshold_percent"`
		Bands            []GaugeBand `json:"bands"`
	} `json:"gauge"`
}

// handlePredict handles POST /api/v1/predict. When the artifact pair failed
// to load the endpoint is disabled and answers 503 with a visible warning;
// the rest of the dashboard is unaffected.
func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	if !s.modelOK {
		writeJSONResponse(w, http.StatusServiceUnavailable, map[string]any{
			"error":   "Churn prediction model not loaded",
			"status":  "error",
			"warning": "Make sure model files exist; see /api/v1/diagnostics",
		})
		return
	}

	var input risk.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadRequestResponse(w, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	// The scorer assumes its input domain; enforce it here.
	if err := input.Validate(); err != nil {
		writeBadRequestResponse(w, err.Error())
		return
	}

	assessment, err := s.scorer.Assess(input)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Prediction failed: %v", err))
		return
	}

	utils.GetLogger().Info("Churn prediction served",
		utils.Float("churn_probability", assessment.Probability),
		utils.String("risk_tier", string(assessment.Tier)),
		utils.Component("predict"))

	resp := PredictResponse{Assessment: assessment}
	resp.Gauge.ValuePercent = assessment.Probability * 100
	resp.Gauge.ThresholdPercent = 70
	resp.Gauge.Bands = gaugeBands

	writeJSONResponse(w, http.StatusOK, resp)
}
