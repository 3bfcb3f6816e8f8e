package grounding

import (
	"context"
	"log/slog"
	"strings"

	"github.com/slidekit/search-advisor/apimodels"
)

// QueryAnalyzer is the slice of the decision engine the gate consumes.
type QueryAnalyzer interface {
	Analyze(ctx context.Context, req apimodels.AnalysisRequest) (*apimodels.AnalysisResult, error)
}

// Capabilities reports provider-level support for web grounding.
type Capabilities interface {
	SupportsWebGrounding() bool
}

// Gate decides whether a generation request should carry a web search tool.
type Gate struct {
	analyzer QueryAnalyzer
	caps     Capabilities
}

func NewGate(analyzer QueryAnalyzer, caps Capabilities) *Gate {
	return &Gate{analyzer: analyzer, caps: caps}
}

// ShouldSearch reports whether the generation for query should include web
// search. When the provider cannot ground at all this returns false without
// running any analysis.
func (g *Gate) ShouldSearch(ctx context.Context, query string, presentationContext map[string]any) bool {
	if !g.caps.SupportsWebGrounding() {
		slog.Debug("Web grounding not supported by provider")
		return false
	}

	analysis, err := g.analyzer.Analyze(ctx, apimodels.AnalysisRequest{
		Query:       query,
		Context:     presentationContext,
		Sensitivity: "medium",
	})
	if err != nil {
		slog.Error("Web search analysis failed, using keyword decision", "error", err)
		return keywordDecision(query)
	}

	slog.Info("Web search analysis",
		"query", truncate(query, 50),
		"needs_search", analysis.NeedsWebSearch,
		"confidence", analysis.Confidence,
		"triggers", analysis.Triggers,
	)
	return analysis.NeedsWebSearch
}

// keywordDecision is the gate's own last-resort rule. It is deliberately
// independent of the analyzer's fallback so the gate still degrades when the
// engine's error handling is itself broken.
func keywordDecision(query string) bool {
	q := strings.ToLower(query)

	keywordSets := [][]string{
		{"current", "latest", "recent", "today", "now", "2024", "2025", "текущий", "последний", "недавно", "сейчас"},
		{"news", "events", "announcements", "developments", "новости", "события", "объявления"},
		{"statistics", "data", "figures", "analysis", "report", "статистика", "данные", "анализ", "отчет"},
	}
	for _, set := range keywordSets {
		for _, kw := range set {
			if strings.Contains(q, kw) {
				return true
			}
		}
	}
	return false
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
