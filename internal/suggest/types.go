// Package suggest generates context-aware prompt suggestions for the
// marketing assistant. Rules are data, not branches: each trigger is a
// predicate plus a template plus fixed metadata, so new rules slot into
// the table without touching control flow.
package suggest

// Category classifies why a prompt is being suggested.
type Category string

const (
	CategoryUrgent      Category = "urgent"
	CategoryOpportunity Category = "opportunity"
	CategoryFollowUp    Category = "follow_up"
	CategoryGeneral     Category = "general"
)

// Suggestion is one ranked prompt candidate.
type Suggestion struct {
	Prompt    string   `json:"prompt"`
	Relevance float64  `json:"relevance"`
	Category  Category `json:"category"`
	Rationale string   `json:"rationale"`
	Tags      []string `json:"tags"`
}

// ChannelSignal is the slice of channel state the rules inspect.
type ChannelSignal struct {
	Name            string  `json:"name"`
	EfficiencyScore float64 `json:"efficiency_score"`
	ROAS            float64 `json:"roas"`
}

// CampaignSignal is the slice of campaign state the rules inspect.
type CampaignSignal struct {
	Name         string  `json:"name"`
	Status       string  `json:"status"`
	OverallScore float64 `json:"overall_score"`
	Budget       float64 `json:"budget"`
	Spent        float64 `json:"spent"`
}

// Context is the business snapshot rules evaluate against. Metrics and
// Benchmark are sparse maps; a rule that needs an absent key simply
// does not trigger.
type Context struct {
	Metrics   map[string]float64 `json:"metrics"`
	Channels  []ChannelSignal    `json:"channels"`
	Campaigns []CampaignSignal   `json:"campaigns"`
	Benchmark map[string]float64 `json:"benchmark"`
}

// Message is one turn of conversation history, most recent last.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request carries everything one suggestion call needs. Discussed and
// Dismissed come from the caller's session store; the engine never
// touches persistence itself.
type Request struct {
	Mode           string    `json:"mode"`
	Context        Context   `json:"context"`
	History        []Message `json:"history"`
	Discussed      []string  `json:"discussed_topics"`
	Dismissed      []string  `json:"dismissed_prompts"`
	MaxSuggestions int       `json:"max_suggestions"`
}

// Rule is one context trigger: predicate, template and fixed metadata.
type Rule struct {
	Name      string
	Condition func(Context) bool
	Template  string
	Category  Category
	Relevance float64
	Tags      []string
}
