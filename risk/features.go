// Package risk turns a six-feature customer behavior vector into a churn
// probability, a risk tier and a recommended retention action.
package risk

import (
	"fmt"
	"math"
)

// FeatureOrder is the positional layout the fitted scaler and classifier
// expect. Reordering silently produces a wrong prediction, so the vector is
// always assembled through Input.Vector, never by hand.
var FeatureOrder = [6]string{
	"Recency",
	"Frequency",
	"Monetary",
	"AvgOrderValue",
	"AvgDaysBetween",
	"IsOneTimeBuyer",
}

// Input holds the six raw customer behavior features of one prediction
// request.
type Input struct {
	Recency        float64 `json:"recency"`
	Frequency      float64 `json:"frequency"`
	Monetary       float64 `json:"monetary"`
	AvgOrderValue  float64 `json:"avg_order_value"`
	AvgDaysBetween float64 `json:"avg_days_between"`
	OneTimeBuyer   float64 `json:"one_time_buyer"`
}

// Validate enforces the input domain the model was trained on. It must pass
// before the input reaches the scorer.
func (in Input) Validate() error {
	if in.Recency < 0 || in.Recency > 400 {
		return fmt.Errorf("recency must be in [0, 400], got %g", in.Recency)
	}
	if in.Frequency != math.Trunc(in.Frequency) {
		return fmt.Errorf("frequency must be an integer, got %g", in.Frequency)
	}
	if in.Frequency < 1 || in.Frequency > 200 {
		return fmt.Errorf("frequency must be in [1, 200], got %g", in.Frequency)
	}
	if in.Monetary < 0 || in.Monetary > 300000 {
		return fmt.Errorf("monetary must be in [0, 300000], got %g", in.Monetary)
	}
	if in.AvgOrderValue < 0 {
		return fmt.Errorf("avg_order_value must be >= 0, got %g", in.AvgOrderValue)
	}
	if in.AvgDaysBetween < 0 {
		return fmt.Errorf("avg_days_between must be >= 0, got %g", in.AvgDaysBetween)
	}
	if in.OneTimeBuyer != 0 && in.OneTimeBuyer != 1 {
		return fmt.Errorf("one_time_buyer must be 0 or 1, got %g", in.OneTimeBuyer)
	}
	return nil
}

// Vector assembles the features in the fixed positional order of
// FeatureOrder.
func (in Input) Vector() []float64 {
	return []float64{
		in.Recency,
		in.Frequency,
		in.Monetary,
		in.AvgOrderValue,
		in.AvgDaysBetween,
		in.OneTimeBuyer,
	}
}
