package model

import (
	"encoding/json"
	"fmt"
	"os"
)

// StandardScaler is a fitted standardization transform deserialized from a
// JSON artifact: per-feature mean and scale, in the same positional order the
// classifier was trained with.
type StandardScaler struct {
	FeatureNames []string  `json:"feature_names"`
	Mean         []float64 `json:"mean"`
	Scale        []float64 `json:"scale"`
}

// LoadScaler reads a fitted scaler from a JSON artifact file.
func LoadScaler(path string) (*StandardScaler, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scaler file: %w", err)
	}

	var scaler StandardScaler
	if err := json.Unmarshal(data, &scaler); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scaler: %w", err)
	}
	if err := scaler.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scaler artifact: %w", err)
	}

	return &scaler, nil
}

// Validate checks that the artifact is internally consistent.
func (s *StandardScaler) Validate() error {
	if len(s.Mean) == 0 {
		return fmt.Errorf("scaler has no fitted means")
	}
	if len(s.Mean) != len(s.Scale) {
		return fmt.Errorf("mean count %d does not match scale count %d",
			len(s.Mean), len(s.Scale))
	}
	if len(s.FeatureNames) != 0 && len(s.FeatureNames) != len(s.Mean) {
		return fmt.Errorf("feature name count %d does not match mean count %d",
			len(s.FeatureNames), len(s.Mean))
	}
	return nil
}

// NumFeatures returns the number of features the scaler was fitted with.
func (s *StandardScaler) NumFeatures() int {
	return len(s.Mean)
}

// Transform standardizes a raw feature vector: (x - mean) / scale per
// feature. A stored scale of zero is treated as one, matching the fitted
// behavior for constant features.
func (s *StandardScaler) Transform(x []float64) ([]float64, error) {
	if len(x) != len(s.Mean) {
		return nil, fmt.Errorf("expected %d features, got %d", len(s.Mean), len(x))
	}

	scaled := make([]float64, len(x))
	for i, v := range x {
		scale := s.Scale[i]
		if scale == 0 {
			scale = 1
		}
		scaled[i] = (v - s.Mean[i]) / scale
	}
	return scaled, nil
}
