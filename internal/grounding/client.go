package grounding

import (
	"context"
	"log/slog"

	"github.com/openai/openai-go"
	"github.com/slidekit/search-advisor/internal/llm"
)

// SearchWebTool is the tool definition attached to generations that should be
// grounded with live web results.
var SearchWebTool = openai.ChatCompletionToolParam{
	Type: openai.F(openai.ChatCompletionToolTypeFunction),
	Function: openai.F(openai.FunctionDefinitionParam{
		Name:        openai.String("search_web"),
		Description: openai.String("Search the web for current information relevant to the user's request"),
		Parameters: openai.F(openai.FunctionParameters(map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "the search query to run",
				},
			},
			"required": []string{"query"},
		})),
	}),
}

// SmartClient wraps a provider so that generations pick up the web search
// tool whenever the gate approves the originating user query.
type SmartClient struct {
	provider llm.Provider
	gate     *Gate
}

func NewSmartClient(provider llm.Provider, gate *Gate) *SmartClient {
	return &SmartClient{provider: provider, gate: gate}
}

// Generate runs a completion, attaching SearchWebTool when userQuery warrants
// grounding. An empty userQuery skips the gate entirely.
func (c *SmartClient) Generate(ctx context.Context, messages []llm.Message, userQuery string, presentationContext map[string]any, opts ...llm.Option) (*llm.Response, error) {
	if userQuery != "" && c.gate.ShouldSearch(ctx, userQuery, presentationContext) {
		slog.Info("Attaching web search tool", "query", truncate(userQuery, 50))
		opts = append(opts, llm.WithTools(SearchWebTool))
	}
	return c.provider.Generate(ctx, messages, opts...)
}
