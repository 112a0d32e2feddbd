package model

// Artifacts pairs the fitted classifier with its fitted scaler. The two are
// only ever usable together: a vector scaled by a different fit would produce
// a silently wrong prediction.
type Artifacts struct {
	Classifier *TreeClassifier
	Scaler     *StandardScaler
}

// LoadArtifacts deserializes the classifier and scaler pair. If either load
// fails for any reason the pair degrades to (nil, false) instead of an error:
// the prediction feature is disabled and the rest of the dashboard stays
// usable. Callers check ok once at the feature gate, not per use.
func LoadArtifacts(modelPath, scalerPath string) (*Artifacts, bool) {
	classifier, err := LoadClassifier(modelPath)
	if err != nil {
		return nil, false
	}

	scaler, err := LoadScaler(scalerPath)
	if err != nil {
		return nil, false
	}

	if scaler.NumFeatures() != classifier.NumFeatures {
		return nil, false
	}

	return &Artifacts{Classifier: classifier, Scaler: scaler}, true
}
