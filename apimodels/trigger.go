package apimodels

import "strings"

// Trigger is a taxonomy category indicating a reason web search may be needed.
type Trigger string

const (
	TriggerTemporal         Trigger = "temporal"
	TriggerNews             Trigger = "news"
	TriggerStatistics       Trigger = "statistics"
	TriggerCurrentEvents    Trigger = "current_events"
	TriggerPrices           Trigger = "prices"
	TriggerResearch         Trigger = "research"
	TriggerTechnology       Trigger = "technology"
	TriggerFinance          Trigger = "finance"
	TriggerGeneralKnowledge Trigger = "general_knowledge"
)

// Triggers returns the full taxonomy in declaration order.
func Triggers() []Trigger {
	return []Trigger{
		TriggerTemporal,
		TriggerNews,
		TriggerStatistics,
		TriggerCurrentEvents,
		TriggerPrices,
		TriggerResearch,
		TriggerTechnology,
		TriggerFinance,
		TriggerGeneralKnowledge,
	}
}

// ParseTrigger maps a raw string onto the taxonomy. The boolean is false for
// anything outside the closed set; callers are expected to drop such values
// rather than fail.
func ParseTrigger(s string) (Trigger, bool) {
	switch t := Trigger(s); t {
	case TriggerTemporal, TriggerNews, TriggerStatistics, TriggerCurrentEvents,
		TriggerPrices, TriggerResearch, TriggerTechnology, TriggerFinance,
		TriggerGeneralKnowledge:
		return t, true
	}
	return "", false
}

// Label returns a human-readable name, e.g. "current_events" -> "Current Events".
func (t Trigger) Label() string {
	parts := strings.Split(string(t), "_")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}

// TriggerInfo is one catalog entry served by the triggers discovery endpoint.
type TriggerInfo struct {
	Value       string `json:"value"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TriggerCatalog lists every trigger with its identifier and display label.
func TriggerCatalog() []TriggerInfo {
	triggers := Triggers()
	catalog := make([]TriggerInfo, 0, len(triggers))
	for _, t := range triggers {
		catalog = append(catalog, TriggerInfo{
			Value:       string(t),
			Name:        strings.ToUpper(string(t)),
			Description: t.Label(),
		})
	}
	return catalog
}
