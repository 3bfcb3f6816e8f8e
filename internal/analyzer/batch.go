package analyzer

import (
	"context"
	"log/slog"

	"github.com/slidekit/search-advisor/apimodels"
)

// BatchAnalyze runs Analyze over requests sequentially, preserving order:
// result[i] corresponds to requests[i]. An item whose analysis fails outright
// gets the keyword fallback verdict; the batch itself never aborts.
func (a *Analyzer) BatchAnalyze(ctx context.Context, requests []apimodels.AnalysisRequest) []apimodels.AnalysisResult {
	results := make([]apimodels.AnalysisResult, 0, len(requests))
	for _, req := range requests {
		result, err := a.Analyze(ctx, req)
		if err != nil {
			slog.Error("Error analyzing query", "query", req.Query, "error", err)
			result = fallbackAnalysis(req)
		}
		results = append(results, *result)
	}
	return results
}
