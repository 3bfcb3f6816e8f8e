package apimodels

import (
	"errors"
	"fmt"
)

// ErrValidation marks a result constructed with out-of-range fields.
var ErrValidation = errors.New("validation error")

// Source records which path produced an AnalysisResult. The reasoning text of
// degraded results keeps its legacy wording, but Source is the authoritative
// signal for callers that need to tell a model verdict from a degraded one.
type Source string

const (
	// SourceModel marks a verdict parsed from a structured model response.
	SourceModel Source = "model"
	// SourceFallback marks a verdict from the keyword fallback rule.
	SourceFallback Source = "fallback"
	// SourceParseError marks the degenerate verdict returned when a model
	// response could not be converted into a valid result.
	SourceParseError Source = "parse_error"
)

// AnalysisResult is the decision engine's verdict for a single query.
type AnalysisResult struct {
	NeedsWebSearch      bool      `json:"needs_web_search"`
	Confidence          float64   `json:"confidence"`
	Triggers            []Trigger `json:"triggers"`
	Reasoning           string    `json:"reasoning"`
	SuggestedQueries    []string  `json:"suggested_queries"`
	AlternativeApproach string    `json:"alternative_approach,omitempty"`
	Source              Source    `json:"source"`
}

// NewAnalysisResult validates and normalizes a result. Confidence outside
// [0.0, 1.0] fails with ErrValidation; nil slices become empty so the JSON
// encoding always carries arrays.
func NewAnalysisResult(r AnalysisResult) (*AnalysisResult, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if r.Triggers == nil {
		r.Triggers = []Trigger{}
	}
	if r.SuggestedQueries == nil {
		r.SuggestedQueries = []string{}
	}
	return &r, nil
}

// Validate checks the confidence bound invariant.
func (r *AnalysisResult) Validate() error {
	if r.Confidence < 0.0 || r.Confidence > 1.0 {
		return fmt.Errorf("%w: confidence %v outside [0.0, 1.0]", ErrValidation, r.Confidence)
	}
	return nil
}
