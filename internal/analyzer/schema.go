package analyzer

import (
	"github.com/slidekit/search-advisor/apimodels"
	"github.com/slidekit/search-advisor/internal/llm"
)

// analysisSchema is the structured-output contract sent with every analysis
// call. Strict: the transport rejects non-conforming payloads outright.
func analysisSchema() llm.StructuredSchema {
	all := apimodels.Triggers()
	triggerValues := make([]any, 0, len(all))
	for _, t := range all {
		triggerValues = append(triggerValues, string(t))
	}

	return llm.StructuredSchema{
		Name:        "web_search_analysis",
		Description: "Decision on whether a query requires web search before content generation",
		Strict:      true,
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"needs_web_search": map[string]any{
					"type":        "boolean",
					"description": "Whether the query requires web search for accurate, up-to-date information",
				},
				"confidence": map[string]any{
					"type":        "number",
					"minimum":     0.0,
					"maximum":     1.0,
					"description": "Confidence level in the decision (0.0 = not confident, 1.0 = very confident)",
				},
				"triggers": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "string",
						"enum": triggerValues,
					},
					"description": "Categories that indicate need for web search",
				},
				"reasoning": map[string]any{
					"type":        "string",
					"description": "Detailed explanation of why web search is or isn't needed",
				},
				"suggested_queries": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Suggested search queries if web search is needed",
				},
				"alternative_approach": map[string]any{
					"type":        "string",
					"description": "Alternative approach if web search is not needed",
				},
			},
			"required": []any{"needs_web_search", "confidence", "triggers", "reasoning", "suggested_queries"},
		},
	}
}
