package service

import (
	"github.com/accrypt/accrypt-go/internal/classifier"
	"github.com/accrypt/accrypt-go/internal/model"
	"github.com/accrypt/accrypt-go/internal/textutil"
)

// LabelModelNotLoaded is returned by Predict for every request when the
// classifier artifacts failed to load at startup. The service stays up;
// only predictions degrade.
const LabelModelNotLoaded = "Model not loaded"

// AnalysisService serves the classification and text utility endpoints.
type AnalysisService struct {
	clf *classifier.Classifier
}

// NewAnalysisService creates an AnalysisService. clf may be nil when the
// model artifacts were not available; Predict then reports the degraded
// state instead of failing requests.
func NewAnalysisService(clf *classifier.Classifier) *AnalysisService {
	return &AnalysisService{clf: clf}
}

// Predict classifies a text as Sensitive or Safe, or reports the
// degraded state when no model is loaded.
func (s *AnalysisService) Predict(text string) string {
	if s.clf == nil {
		return LabelModelNotLoaded
	}
	return s.clf.Classify(text)
}

// ValidateEmail reports whether the address is syntactically valid.
func (s *AnalysisService) ValidateEmail(email string) bool {
	return textutil.IsValidEmail(email)
}

// TopWords returns the most frequent tokens across the given texts.
func (s *AnalysisService) TopWords(emails []string) []model.WordCount {
	return textutil.TopWords(emails, textutil.DefaultTopN)
}

// Threshold labels each probability against the threshold, preserving
// input order and length.
func (s *AnalysisService) Threshold(probs []float64, threshold float64) []string {
	labels := make([]string, len(probs))
	for i, p := range probs {
		labels[i] = textutil.Label(p, threshold)
	}
	return labels
}
