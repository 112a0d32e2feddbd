package risk

import "fmt"

// Tier is the discrete risk classification of a churn probability.
type Tier string

const (
	TierLow      Tier = "LOW"
	TierModerate Tier = "MODERATE"
	TierHigh     Tier = "HIGH"
)

// Tier thresholds. HIGH is a strict inequality: a probability of exactly
// 0.70 is MODERATE, exactly 0.50 is LOW.
const (
	highRiskThreshold     = 0.70
	moderateRiskThreshold = 0.50
)

// highValueMonetary splits HIGH-tier customers between personal outreach and
// the standard discount intervention. The boundary value itself (2000) gets
// the standard intervention.
const highValueMonetary = 2000

// Recommended retention actions by tier.
const (
	ActionHighValueOutreach = "High-Value Customer: personal outreach from account manager plus VIP perks"
	ActionStandardDiscount  = "Standard Intervention: send 20% discount code and product recommendations"
	ActionReengagementEmail = "Early Warning: re-engagement email with personalized offers"
	ActionContinueJourney   = "Healthy Customer: continue normal customer journey"
)

// churnedClassIndex is the position of the churned class in the classifier's
// two-class probability output.
const churnedClassIndex = 1

// Transformer normalizes a raw feature vector into the distribution the
// classifier was trained on.
type Transformer interface {
	Transform(x []float64) ([]float64, error)
}

// Classifier maps a scaled feature vector to class probabilities.
type Classifier interface {
	PredictProba(x []float64) ([]float64, error)
}

// Assessment is the transient result of one prediction request. It is
// computed fresh every time and never stored.
type Assessment struct {
	Probability float64 `json:"churn_probability"`
	Tier        Tier    `json:"risk_tier"`
	Action      string  `json:"recommended_action"`
	// Delta is the probability relative to the historical baseline churn
	// rate, for display alongside the gauge.
	Delta float64 `json:"delta_vs_baseline"`
}

// Scorer applies the fitted scaler and classifier pair and maps the churn
// probability to a tier and action. It is stateless and deterministic: the
// same artifacts and input always produce the same assessment.
type Scorer struct {
	scaler     Transformer
	classifier Classifier
	baseline   float64
}

// NewScorer creates a scorer around a fitted transformer/classifier pair and
// a baseline churn rate used as the delta anchor.
func NewScorer(scaler Transformer, classifier Classifier, baseline float64) *Scorer {
	return &Scorer{
		scaler:     scaler,
		classifier: classifier,
		baseline:   baseline,
	}
}

// Assess scores one input. The caller is responsible for validating the
// input domain first (Input.Validate).
func (s *Scorer) Assess(in Input) (Assessment, error) {
	scaled, err := s.scaler.Transform(in.Vector())
	if err != nil {
		return Assessment{}, fmt.Errorf("failed to scale features: %w", err)
	}

	proba, err := s.classifier.PredictProba(scaled)
	if err != nil {
		return Assessment{}, fmt.Errorf("prediction failed: %w", err)
	}
	if len(proba) <= churnedClassIndex {
		return Assessment{}, fmt.Errorf("classifier returned %d probabilities, want 2", len(proba))
	}

	churnProb := proba[churnedClassIndex]
	tier := classifyTier(churnProb)

	return Assessment{
		Probability: churnProb,
		Tier:        tier,
		Action:      recommendAction(tier, in.Monetary),
		Delta:       churnProb - s.baseline,
	}, nil
}

// classifyTier maps a churn probability to a risk tier.
func classifyTier(churnProb float64) Tier {
	switch {
	case churnProb > highRiskThreshold:
		return TierHigh
	case churnProb > moderateRiskThreshold:
		return TierModerate
	default:
		return TierLow
	}
}

// recommendAction picks the retention action for a tier. HIGH splits on
// customer value.
func recommendAction(tier Tier, monetary float64) string {
	switch tier {
	case TierHigh:
		if monetary > highValueMonetary {
			return ActionHighValueOutreach
		}
		return ActionStandardDiscount
	case TierModerate:
		return ActionReengagementEmail
	default:
		return ActionContinueJourney
	}
}
