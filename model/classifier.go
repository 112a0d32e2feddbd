// Package model loads the pre-trained churn classifier and feature scaler
// artifacts. Both are opaque, fitted elsewhere, and treated as read-only for
// the process lifetime.
package model

import (
	"encoding/json"
	"fmt"
	"os"
)

// TreeNode is one node of the serialized decision tree.
type TreeNode struct {
	IsLeaf       bool           `json:"is_leaf"`
	Class        string         `json:"class,omitempty"`
	ClassCounts  map[string]int `json:"class_counts,omitempty"`
	Feature      string         `json:"feature,omitempty"`
	FeatureIndex int            `json:"feature_index,omitempty"`
	Threshold    float64        `json:"threshold,omitempty"`
	Left         *TreeNode      `json:"left,omitempty"`
	Right        *TreeNode      `json:"right,omitempty"`
}

// TreeClassifier is a fitted decision tree deserialized from a JSON artifact.
// It only predicts; training happens upstream of this service.
type TreeClassifier struct {
	Root         *TreeNode `json:"root"`
	FeatureNames []string  `json:"feature_names"`
	Classes      []string  `json:"classes"`
	NumFeatures  int       `json:"num_features"`
}

// LoadClassifier reads a fitted classifier from a JSON artifact file.
func LoadClassifier(path string) (*TreeClassifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file: %w", err)
	}

	var clf TreeClassifier
	if err := json.Unmarshal(data, &clf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal model: %w", err)
	}
	if err := clf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid model artifact: %w", err)
	}

	return &clf, nil
}

// Validate checks that the artifact is usable for predictions.
func (c *TreeClassifier) Validate() error {
	if c.Root == nil {
		return fmt.Errorf("model has no root node")
	}
	if len(c.Classes) < 2 {
		return fmt.Errorf("model must have at least two classes, got %d", len(c.Classes))
	}
	if c.NumFeatures <= 0 {
		return fmt.Errorf("model has no features")
	}
	if len(c.FeatureNames) != c.NumFeatures {
		return fmt.Errorf("feature name count %d does not match num_features %d",
			len(c.FeatureNames), c.NumFeatures)
	}
	return nil
}

// PredictProba returns the class probabilities for a single sample, in the
// order of the Classes slice.
func (c *TreeClassifier) PredictProba(x []float64) ([]float64, error) {
	if c.Root == nil {
		return nil, fmt.Errorf("model not loaded")
	}
	if len(x) != c.NumFeatures {
		return nil, fmt.Errorf("expected %d features, got %d", c.NumFeatures, len(x))
	}

	leaf := traverseToLeaf(c.Root, x)

	total := 0
	for _, count := range leaf.ClassCounts {
		total += count
	}
	if total == 0 {
		return nil, fmt.Errorf("leaf node has no class counts")
	}

	proba := make([]float64, len(c.Classes))
	for i, class := range c.Classes {
		proba[i] = float64(leaf.ClassCounts[class]) / float64(total)
	}
	return proba, nil
}

// traverseToLeaf walks the tree to the leaf matching the sample.
func traverseToLeaf(node *TreeNode, x []float64) *TreeNode {
	if node.IsLeaf {
		return node
	}

	if x[node.FeatureIndex] <= node.Threshold {
		return traverseToLeaf(node.Left, x)
	}
	return traverseToLeaf(node.Right, x)
}
