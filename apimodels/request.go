package apimodels

// AnalysisRequest asks the decision engine whether a query needs web search.
type AnalysisRequest struct {
	// Query is the natural language text to evaluate.
	Query string `json:"query"`

	// Context optionally carries presentation metadata. Recognized keys are
	// "topic", "domain" and "previous_slides"; anything else is ignored.
	Context map[string]any `json:"context,omitempty"`

	// Sensitivity controls how liberally search is recommended: low, medium
	// or high. Unrecognized values behave like medium.
	Sensitivity string `json:"sensitivity,omitempty"`

	// Language is a tag such as "en" or "ru", defaulting to "en". It only
	// affects prompt phrasing.
	Language string `json:"language,omitempty"`
}

// BatchRequest is a list of analysis requests processed in order.
type BatchRequest struct {
	Queries []AnalysisRequest `json:"queries"`
}

// BatchResponse carries per-item results plus summary counters.
type BatchResponse struct {
	Results       []AnalysisResult `json:"results"`
	TotalAnalyzed int              `json:"total_analyzed"`
	SuccessCount  int              `json:"success_count"`
	ErrorCount    int              `json:"error_count"`
}

// NewBatchResponse derives the summary counters from each result's Source. A
// result counts as successful only when the model produced the verdict;
// keyword-fallback and parse-error verdicts count as errors.
func NewBatchResponse(results []AnalysisResult) BatchResponse {
	if results == nil {
		results = []AnalysisResult{}
	}
	resp := BatchResponse{
		Results:       results,
		TotalAnalyzed: len(results),
	}
	for _, r := range results {
		if r.Source == SourceModel {
			resp.SuccessCount++
		} else {
			resp.ErrorCount++
		}
	}
	return resp
}
