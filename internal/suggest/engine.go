package suggest

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strconv"
	"strings"
)

// ErrUnknownMode is returned for a conversation mode the platform does
// not define. Unknown modes are caller bugs and fail fast.
var ErrUnknownMode = errors.New("unknown conversation mode")

// DefaultMaxSuggestions bounds the returned list when the request does
// not say otherwise.
const DefaultMaxSuggestions = 4

// Engine ranks prompt suggestions from a fixed rule table. Stateless;
// safe for concurrent use.
type Engine struct {
	rules []Rule
}

// NewEngine builds an engine with the default trigger table.
func NewEngine() *Engine {
	return &Engine{rules: defaultRules()}
}

// Suggest produces up to MaxSuggestions prompts, context triggers
// first, then mode defaults, then follow-ups from recent history, all
// sorted by relevance with stable ties.
func (e *Engine) Suggest(req Request) ([]Suggestion, error) {
	defaults, ok := basePrompts[req.Mode]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, req.Mode)
	}

	maxSuggestions := req.MaxSuggestions
	if maxSuggestions <= 0 {
		maxSuggestions = DefaultMaxSuggestions
	}

	var suggestions []Suggestion

	for _, rule := range e.rules {
		if !rule.Condition(req.Context) {
			continue
		}
		prompt := renderTemplate(rule.Template, req.Context)
		if topicDiscussed(rule.Tags, req.Discussed) || slices.Contains(req.Dismissed, prompt) {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Prompt:    prompt,
			Relevance: rule.Relevance,
			Category:  rule.Category,
			Rationale: fmt.Sprintf("Based on your current %s metrics", strings.ReplaceAll(rule.Name, "_", " ")),
			Tags:      rule.Tags,
		})
	}

	for _, p := range defaults {
		if topicDiscussed(p.Tags, req.Discussed) || slices.Contains(req.Dismissed, p.Text) {
			continue
		}
		// Defaults decay 5 points per suggestion already queued, so
		// triggered prompts outrank them even as the list fills.
		relevance := 50 - float64(len(suggestions))*5
		if relevance < 20 {
			relevance = 20
		}
		suggestions = append(suggestions, Suggestion{
			Prompt:    p.Text,
			Relevance: relevance,
			Category:  CategoryGeneral,
			Rationale: fmt.Sprintf("Common question for %s", strings.ReplaceAll(req.Mode, "_", " ")),
			Tags:      p.Tags,
		})
	}

	suggestions = append(suggestions, followUps(req.History, req.Discussed, req.Dismissed)...)

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Relevance > suggestions[j].Relevance
	})
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions, nil
}

// followUps derives at most two prompts from the last assistant message
// within the final four turns of history.
func followUps(history []Message, discussed, dismissed []string) []Suggestion {
	if len(history) == 0 {
		return nil
	}
	window := history
	if len(window) > 4 {
		window = window[len(window)-4:]
	}
	lastResponse := ""
	for _, m := range window {
		if m.Role == "assistant" {
			lastResponse = m.Content
		}
	}
	if lastResponse == "" {
		return nil
	}
	lastResponse = strings.ToLower(lastResponse)

	var out []Suggestion
	for _, trigger := range followUpTriggers {
		if !containsAny(lastResponse, trigger.Keywords) {
			continue
		}
		if topicDiscussed(trigger.Tags, discussed) || slices.Contains(dismissed, trigger.Prompt) {
			continue
		}
		out = append(out, Suggestion{
			Prompt:    trigger.Prompt,
			Relevance: 70,
			Category:  CategoryFollowUp,
			Rationale: "Follow up on our previous discussion",
			Tags:      trigger.Tags,
		})
		if len(out) == 2 {
			break
		}
	}
	return out
}

var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z_][a-zA-Z0-9_]*)\}`)

// renderTemplate resolves {name} placeholders from the flattened merge
// of metrics and benchmark, benchmark winning on key clashes. Any
// missing placeholder leaves the whole template unrendered, literal
// braces and all.
func renderTemplate(template string, ctx Context) string {
	values := make(map[string]float64, len(ctx.Metrics)+len(ctx.Benchmark))
	for k, v := range ctx.Metrics {
		values[k] = v
	}
	for k, v := range ctx.Benchmark {
		values[k] = v
	}

	rendered := template
	for _, match := range placeholderPattern.FindAllStringSubmatch(template, -1) {
		v, ok := values[match[1]]
		if !ok {
			return template
		}
		rendered = strings.ReplaceAll(rendered, match[0], strconv.FormatFloat(v, 'g', -1, 64))
	}
	return rendered
}

func topicDiscussed(tags, discussed []string) bool {
	for _, tag := range tags {
		if slices.Contains(discussed, tag) {
			return true
		}
	}
	return false
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
