package analyzer

import (
	"fmt"
	"strings"

	"github.com/slidekit/search-advisor/apimodels"
)

const (
	defaultSensitivity = "medium"
	defaultLanguage    = "en"
)

// Static framing tables keep prompt construction total: any sensitivity or
// language value produces a usable prompt.
var sensitivityFramings = map[string]string{
	"low":    "Be conservative - only recommend web search for clearly time-sensitive queries",
	"medium": "Balance between accuracy and efficiency - recommend web search for queries that likely need current information",
	"high":   "Be liberal - recommend web search for most queries that could benefit from current information",
}

var languageFramings = map[string]string{
	"en": "Analyze English queries",
	"ru": "Analyze Russian queries",
	"es": "Analyze Spanish queries",
	"fr": "Analyze French queries",
	"de": "Analyze German queries",
}

const anyLanguageFraming = "Analyze queries in any language"

const taxonomyPrompt = `Consider these factors when determining if web search is needed:

TEMPORAL INDICATORS (High Priority):
- Current year (2024, 2025)
- Time-sensitive words: "current", "latest", "recent", "today", "now", "up-to-date"
- Trend analysis: "trends", "changes", "developments"
- News and events: "news", "events", "announcements"

STATISTICS & DATA (High Priority):
- Statistical queries: "statistics", "data", "figures", "numbers"
- Research requests: "studies", "reports", "analysis"
- Rankings and comparisons: "top", "best", "worst", "rankings"
- Market data: "prices", "rates", "indexes", "performance"

CURRENT EVENTS (High Priority):
- Political events: "elections", "government", "policy"
- Economic events: "market", "economy", "crisis", "recession"
- Social events: "protests", "movements", "social issues"
- Global events: "war", "conflict", "disasters", "pandemic"

TECHNOLOGY & INNOVATION (Medium Priority):
- Latest tech: "AI", "blockchain", "quantum", "latest technology"
- Startups and companies: "startups", "unicorns", "IPO"
- Research and development: "breakthrough", "innovation", "discovery"

FINANCE & BUSINESS (Medium Priority):
- Financial data: "stocks", "bonds", "investments", "earnings"
- Business news: "mergers", "acquisitions", "partnerships"
- Economic indicators: "GDP", "inflation", "unemployment"

GENERAL KNOWLEDGE (Low Priority):
- Historical facts that don't change
- Basic definitions and concepts
- Established scientific principles
- General educational content

For each query, provide:
1. A clear decision (needs_web_search: true/false)
2. Confidence level (0.0-1.0)
3. Specific triggers that influenced your decision
4. Detailed reasoning
5. Suggested search queries (if web search is needed)
6. Alternative approach (if web search is not needed)

Be precise and explain your reasoning clearly.`

func buildSystemPrompt(sensitivity, language string) string {
	if language == "" {
		language = defaultLanguage
	}
	if sensitivity == "" {
		sensitivity = defaultSensitivity
	}

	langLine, ok := languageFramings[language]
	if !ok {
		langLine = anyLanguageFraming
	}
	sensLine, ok := sensitivityFramings[sensitivity]
	if !ok {
		sensLine = sensitivityFramings[defaultSensitivity]
	}

	return fmt.Sprintf(`You are an expert AI assistant that determines whether a user query requires web search for accurate, up-to-date information.

%s

%s

%s`, langLine, sensLine, taxonomyPrompt)
}

func buildUserPrompt(req apimodels.AnalysisRequest) string {
	language := req.Language
	if language == "" {
		language = defaultLanguage
	}
	sensitivity := req.Sensitivity
	if sensitivity == "" {
		sensitivity = defaultSensitivity
	}

	parts := []string{
		fmt.Sprintf("Query to analyze: %q", req.Query),
		"Language: " + language,
		"Sensitivity level: " + sensitivity,
	}

	if lines := contextLines(req.Context); len(lines) > 0 {
		parts = append(parts, "Context:")
		for _, line := range lines {
			parts = append(parts, "- "+line)
		}
	}

	return strings.Join(parts, "\n")
}

// contextLines extracts the recognized presentation-context fields, one line
// each, in a fixed order. Unknown keys are ignored.
func contextLines(ctx map[string]any) []string {
	if len(ctx) == 0 {
		return nil
	}

	var lines []string
	if topic, ok := ctx["topic"].(string); ok && topic != "" {
		lines = append(lines, "Presentation topic: "+topic)
	}
	if slides, ok := ctx["previous_slides"].([]any); ok && len(slides) > 0 {
		lines = append(lines, fmt.Sprintf("Number of previous slides: %d", len(slides)))
	}
	if domain, ok := ctx["domain"].(string); ok && domain != "" {
		lines = append(lines, "Domain: "+domain)
	}
	return lines
}
