package analyzer

import (
	"strings"

	"github.com/slidekit/search-advisor/apimodels"
)

// FallbackReasoning is the literal carried by keyword-derived verdicts. Some
// consumers of the original service matched on this exact text, so it is kept
// verbatim; AnalysisResult.Source is the authoritative flag.
const FallbackReasoning = "Fallback analysis based on simple keyword matching"

var (
	temporalKeywords = []string{"current", "latest", "recent", "today", "now", "2024", "2025", "текущий", "последний", "недавно"}
	newsKeywords     = []string{"news", "events", "announcements", "developments", "новости", "события", "объявления"}
	statsKeywords    = []string{"statistics", "data", "figures", "analysis", "report", "статистика", "данные", "анализ"}
)

// fallbackAnalysis is the deterministic keyword rule used when the model path
// is unavailable. Pure: no I/O, identical input gives identical output.
func fallbackAnalysis(req apimodels.AnalysisRequest) *apimodels.AnalysisResult {
	query := strings.ToLower(req.Query)

	hasTemporal := containsAny(query, temporalKeywords)
	hasNews := containsAny(query, newsKeywords)
	hasStats := containsAny(query, statsKeywords)

	needsSearch := hasTemporal || hasNews || hasStats

	confidence := 0.4
	if needsSearch {
		confidence = 0.6
	}

	triggers := []apimodels.Trigger{}
	if hasTemporal {
		triggers = append(triggers, apimodels.TriggerTemporal)
	}
	if hasNews {
		triggers = append(triggers, apimodels.TriggerNews)
	}
	if hasStats {
		triggers = append(triggers, apimodels.TriggerStatistics)
	}

	queries := []string{}
	if needsSearch {
		queries = []string{req.Query}
	}

	return &apimodels.AnalysisResult{
		NeedsWebSearch:   needsSearch,
		Confidence:       confidence,
		Triggers:         triggers,
		Reasoning:        FallbackReasoning,
		SuggestedQueries: queries,
		Source:           apimodels.SourceFallback,
	}
}

func containsAny(query string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(query, kw) {
			return true
		}
	}
	return false
}
