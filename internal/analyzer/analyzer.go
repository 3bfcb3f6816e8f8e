package analyzer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/slidekit/search-advisor/apimodels"
	"github.com/slidekit/search-advisor/internal/llm"
)

// Analyzer decides whether a query needs a web search before content
// generation by asking the model for a structured verdict. Every anticipated
// failure mode degrades to a deterministic result instead of an error.
type Analyzer struct {
	provider llm.Provider
}

func New(provider llm.Provider) *Analyzer {
	return &Analyzer{provider: provider}
}

// Analyze produces a verdict for a single request. Transport failures fall
// back to keyword matching and malformed responses yield a diagnostic result;
// the returned error is nil under normal operation and is reserved for
// programming errors.
func (a *Analyzer) Analyze(ctx context.Context, req apimodels.AnalysisRequest) (*apimodels.AnalysisResult, error) {
	slog.Info("Starting web search analysis", "query", req.Query)

	messages := []llm.Message{
		llm.SystemMessage(buildSystemPrompt(req.Sensitivity, req.Language)),
		llm.UserMessage(buildUserPrompt(req)),
	}

	payload, err := a.provider.GenerateStructured(ctx, messages, analysisSchema())
	if err != nil {
		slog.Error("LLM analysis failed, using fallback", "query", req.Query, "error", err)
		return fallbackAnalysis(req), nil
	}

	return parseResponse(payload), nil
}

// parseResponse converts the model payload into a typed result. Field-level
// problems (wrong types, out-of-range confidence) produce the degenerate
// parse-error verdict rather than an error.
func parseResponse(payload map[string]any) *apimodels.AnalysisResult {
	result, err := buildResult(payload)
	if err != nil {
		slog.Error("Error parsing LLM response", "error", err)
		return &apimodels.AnalysisResult{
			NeedsWebSearch:   false,
			Confidence:       0.0,
			Triggers:         []apimodels.Trigger{},
			Reasoning:        fmt.Sprintf("Error parsing LLM response: %v", err),
			SuggestedQueries: []string{},
			Source:           apimodels.SourceParseError,
		}
	}
	return result
}

func buildResult(payload map[string]any) (*apimodels.AnalysisResult, error) {
	needsSearch, err := boolField(payload, "needs_web_search")
	if err != nil {
		return nil, err
	}
	confidence, err := floatField(payload, "confidence")
	if err != nil {
		return nil, err
	}
	reasoning, err := stringField(payload, "reasoning")
	if err != nil {
		return nil, err
	}
	queries, err := stringListField(payload, "suggested_queries")
	if err != nil {
		return nil, err
	}
	alternative, err := stringField(payload, "alternative_approach")
	if err != nil {
		return nil, err
	}

	return apimodels.NewAnalysisResult(apimodels.AnalysisResult{
		NeedsWebSearch:      needsSearch,
		Confidence:          confidence,
		Triggers:            parseTriggers(payload["triggers"]),
		Reasoning:           reasoning,
		SuggestedQueries:    queries,
		AlternativeApproach: alternative,
		Source:              apimodels.SourceModel,
	})
}

// parseTriggers filters the payload's trigger list down to the closed
// taxonomy. Unknown or non-string entries are dropped with a warning and
// never abort the parse.
func parseTriggers(v any) []apimodels.Trigger {
	triggers := []apimodels.Trigger{}
	items, ok := v.([]any)
	if !ok {
		return triggers
	}
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			slog.Warn("Unknown trigger", "trigger", item)
			continue
		}
		t, ok := apimodels.ParseTrigger(s)
		if !ok {
			slog.Warn("Unknown trigger", "trigger", s)
			continue
		}
		triggers = append(triggers, t)
	}
	return triggers
}

func boolField(payload map[string]any, key string) (bool, error) {
	v, ok := payload[key]
	if !ok || v == nil {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("field %q: expected bool, got %T", key, v)
	}
	return b, nil
}

func floatField(payload map[string]any, key string) (float64, error) {
	v, ok := payload[key]
	if !ok || v == nil {
		return 0.0, nil
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	}
	return 0.0, fmt.Errorf("field %q: expected number, got %T", key, v)
}

func stringField(payload map[string]any, key string) (string, error) {
	v, ok := payload[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %q: expected string, got %T", key, v)
	}
	return s, nil
}

func stringListField(payload map[string]any, key string) ([]string, error) {
	v, ok := payload[key]
	if !ok || v == nil {
		return []string{}, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("field %q: expected array, got %T", key, v)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("field %q: expected string element, got %T", key, item)
		}
		out = append(out, s)
	}
	return out, nil
}
