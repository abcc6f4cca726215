package suggest

import "strings"

// topicKeywords maps a topic tag to the substrings that imply it.
// topicOrder fixes the scan order so extraction output is deterministic.
var (
	topicOrder = []string{
		"roi", "campaigns", "channels", "content", "conversion",
		"budget", "benchmarks", "retention", "engagement",
	}
	topicKeywords = map[string][]string{
		"roi":        {"roi", "return", "roas", "profitability"},
		"campaigns":  {"campaign", "campaigns", "ads", "advertising"},
		"channels":   {"channel", "channels", "paid", "organic", "social"},
		"content":    {"content", "blog", "video", "article"},
		"conversion": {"conversion", "convert", "funnel", "leads"},
		"budget":     {"budget", "spend", "investment", "cost"},
		"benchmarks": {"benchmark", "compare", "industry", "competitors"},
		"retention":  {"retention", "churn", "loyalty", "customer lifetime"},
		"engagement": {"engagement", "engagement rate", "interaction"},
	}
)

// ExtractTopics returns the topic tags whose keywords appear in the
// message, case-insensitive, in the fixed table order. Callers feed the
// result back into a session's discussed-topics set.
func ExtractTopics(message string) []string {
	lower := strings.ToLower(message)

	var topics []string
	for _, topic := range topicOrder {
		if containsAny(lower, topicKeywords[topic]) {
			topics = append(topics, topic)
		}
	}
	return topics
}
