package analyzer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slidekit/search-advisor/apimodels"
	"github.com/slidekit/search-advisor/internal/llm"
)

// stubProvider returns a canned payload or error and records what it was
// called with.
type stubProvider struct {
	payload    map[string]any
	err        error
	calls      int
	lastSchema llm.StructuredSchema
	lastMsgs   []llm.Message
}

func (s *stubProvider) GenerateStructured(_ context.Context, messages []llm.Message, schema llm.StructuredSchema, _ ...llm.Option) (map[string]any, error) {
	s.calls++
	s.lastSchema = schema
	s.lastMsgs = messages
	if s.err != nil {
		return nil, s.err
	}
	return s.payload, nil
}

func (s *stubProvider) Generate(_ context.Context, _ []llm.Message, _ ...llm.Option) (*llm.Response, error) {
	return &llm.Response{Content: "ok"}, nil
}

func (s *stubProvider) SupportsWebGrounding() bool { return true }

func TestAnalyzeModelVerdict(t *testing.T) {
	provider := &stubProvider{payload: map[string]any{
		"needs_web_search":     true,
		"confidence":           0.9,
		"triggers":             []any{"temporal", "news"},
		"reasoning":            "Query asks about recent developments",
		"suggested_queries":    []any{"AI regulation news 2025"},
		"alternative_approach": "",
	}}

	result, err := New(provider).Analyze(context.Background(), apimodels.AnalysisRequest{
		Query: "What happened in AI regulation recently?",
	})
	require.NoError(t, err)

	assert.True(t, result.NeedsWebSearch)
	assert.Equal(t, 0.9, result.Confidence)
	assert.Equal(t, []apimodels.Trigger{apimodels.TriggerTemporal, apimodels.TriggerNews}, result.Triggers)
	assert.Equal(t, []string{"AI regulation news 2025"}, result.SuggestedQueries)
	assert.Equal(t, apimodels.SourceModel, result.Source)
	assert.Equal(t, 1, provider.calls)
}

func TestAnalyzeSendsStrictSchema(t *testing.T) {
	provider := &stubProvider{payload: map[string]any{"needs_web_search": false}}

	_, err := New(provider).Analyze(context.Background(), apimodels.AnalysisRequest{Query: "test"})
	require.NoError(t, err)

	assert.True(t, provider.lastSchema.Strict)
	assert.Equal(t, "web_search_analysis", provider.lastSchema.Name)
	require.Len(t, provider.lastMsgs, 2)
	assert.Equal(t, llm.RoleSystem, provider.lastMsgs[0].Role)
	assert.Equal(t, llm.RoleUser, provider.lastMsgs[1].Role)
}

func TestAnalyzePromptCarriesContext(t *testing.T) {
	provider := &stubProvider{payload: map[string]any{"needs_web_search": false}}

	_, err := New(provider).Analyze(context.Background(), apimodels.AnalysisRequest{
		Query: "renewable energy outlook",
		Context: map[string]any{
			"topic":           "Energy markets",
			"domain":          "finance",
			"previous_slides": []any{"intro", "overview"},
		},
	})
	require.NoError(t, err)

	user := provider.lastMsgs[1].Content
	assert.Contains(t, user, `Query to analyze: "renewable energy outlook"`)
	assert.Contains(t, user, "Presentation topic: Energy markets")
	assert.Contains(t, user, "Number of previous slides: 2")
	assert.Contains(t, user, "Domain: finance")
}

func TestAnalyzeOmitsEmptyContext(t *testing.T) {
	provider := &stubProvider{payload: map[string]any{"needs_web_search": false}}

	_, err := New(provider).Analyze(context.Background(), apimodels.AnalysisRequest{Query: "plain query"})
	require.NoError(t, err)

	assert.NotContains(t, provider.lastMsgs[1].Content, "Context:")
}

func TestAnalyzeDropsUnknownTriggers(t *testing.T) {
	provider := &stubProvider{payload: map[string]any{
		"needs_web_search":  true,
		"confidence":        0.7,
		"triggers":          []any{"bogus_category", "statistics", 42},
		"reasoning":         "stats",
		"suggested_queries": []any{},
	}}

	result, err := New(provider).Analyze(context.Background(), apimodels.AnalysisRequest{Query: "q"})
	require.NoError(t, err)

	assert.Equal(t, []apimodels.Trigger{apimodels.TriggerStatistics}, result.Triggers)
	assert.Equal(t, apimodels.SourceModel, result.Source)
}

func TestAnalyzeDefaultsMissingFields(t *testing.T) {
	provider := &stubProvider{payload: map[string]any{}}

	result, err := New(provider).Analyze(context.Background(), apimodels.AnalysisRequest{Query: "q"})
	require.NoError(t, err)

	assert.False(t, result.NeedsWebSearch)
	assert.Equal(t, 0.0, result.Confidence)
	assert.Empty(t, result.Triggers)
	assert.Empty(t, result.Reasoning)
	assert.Empty(t, result.SuggestedQueries)
	assert.Empty(t, result.AlternativeApproach)
	assert.Equal(t, apimodels.SourceModel, result.Source)
}

func TestAnalyzeCallFailureFallsBack(t *testing.T) {
	provider := &stubProvider{err: errors.New("transport down")}

	result, err := New(provider).Analyze(context.Background(), apimodels.AnalysisRequest{
		Query: "Latest AI trends in 2024",
	})
	require.NoError(t, err)

	assert.True(t, result.NeedsWebSearch)
	assert.Equal(t, 0.6, result.Confidence)
	assert.Equal(t, FallbackReasoning, result.Reasoning)
	assert.Equal(t, apimodels.SourceFallback, result.Source)
}

func TestAnalyzeParseFailureYieldsDiagnosticResult(t *testing.T) {
	provider := &stubProvider{payload: map[string]any{
		"needs_web_search":  true,
		"confidence":        1.5, // out of range
		"triggers":          []any{"temporal"},
		"reasoning":         "sure",
		"suggested_queries": []any{"x"},
	}}

	result, err := New(provider).Analyze(context.Background(), apimodels.AnalysisRequest{Query: "q"})
	require.NoError(t, err)

	assert.False(t, result.NeedsWebSearch)
	assert.Equal(t, 0.0, result.Confidence)
	assert.Empty(t, result.Triggers)
	assert.Contains(t, result.Reasoning, "Error parsing LLM response")
	assert.Equal(t, apimodels.SourceParseError, result.Source)
}

func TestAnalyzeParseFailureOnWrongFieldType(t *testing.T) {
	provider := &stubProvider{payload: map[string]any{
		"needs_web_search": "yes",
	}}

	result, err := New(provider).Analyze(context.Background(), apimodels.AnalysisRequest{Query: "q"})
	require.NoError(t, err)

	assert.Equal(t, apimodels.SourceParseError, result.Source)
	assert.Contains(t, result.Reasoning, "needs_web_search")
}

func TestBuildSystemPromptFramings(t *testing.T) {
	prompt := buildSystemPrompt("high", "ru")
	assert.Contains(t, prompt, "Analyze Russian queries")
	assert.Contains(t, prompt, "Be liberal")
	assert.Contains(t, prompt, "TEMPORAL INDICATORS (High Priority)")

	// Unrecognized values fall back to medium / any-language framings.
	prompt = buildSystemPrompt("extreme", "tlh")
	assert.Contains(t, prompt, "Analyze queries in any language")
	assert.Contains(t, prompt, "Balance between accuracy and efficiency")

	// Empty values use the defaults.
	prompt = buildSystemPrompt("", "")
	assert.Contains(t, prompt, "Analyze English queries")
	assert.Contains(t, prompt, "Balance between accuracy and efficiency")
}
