package agent

import (
	"context"
	"encoding/json"
	"fmt"
)

// historyWindow bounds how many prior turns travel with each request.
const historyWindow = 10

// Completer is the LLM backend the engine talks to.
type Completer interface {
	Chat(ctx context.Context, system string, messages []ChatMessage) (string, error)
}

// Engine drives mode-aware CMO conversations.
type Engine struct {
	client Completer
}

// NewEngine builds a chat engine over an LLM backend.
func NewEngine(client Completer) *Engine {
	return &Engine{client: client}
}

// ChatRequest is one user turn plus its conversational setting.
type ChatRequest struct {
	Message string        `json:"message"`
	Mode    Mode          `json:"mode"`
	History []ChatMessage `json:"history,omitempty"`
	Context *ContextData  `json:"context,omitempty"`
}

// Chat sends a message in the given mode and returns the assistant
// reply.
func (e *Engine) Chat(ctx context.Context, req ChatRequest) (string, error) {
	mode, err := ParseMode(string(req.Mode))
	if err != nil {
		return "", err
	}

	system := buildSystemPrompt(mode, req.Context)
	messages := buildMessages(req.Message, req.History)

	reply, err := e.client.Chat(ctx, system, messages)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	return reply, nil
}

// analysisPrompts frame one-shot analyses of raw marketing data.
var analysisPrompts = map[string]string{
	"campaign_performance":  "Analyze this campaign performance data and provide insights on what's working, what's not, and specific recommendations for improvement.",
	"channel_mix":           "Analyze this channel performance data and recommend an optimized budget allocation strategy.",
	"content_effectiveness": "Analyze this content performance data and recommend a content strategy to improve results.",
	"funnel_optimization":   "Analyze this funnel data and identify the biggest opportunities to improve conversion rates.",
	"roi_analysis":          "Analyze this marketing ROI data and recommend ways to improve marketing efficiency.",
}

// Analyze runs a one-shot analysis over arbitrary report data. Unknown
// analysis types get a generic framing rather than failing; the data
// still constrains the answer.
func (e *Engine) Analyze(ctx context.Context, analysisType string, data any) (string, error) {
	prompt, ok := analysisPrompts[analysisType]
	if !ok {
		prompt = "Analyze this marketing data and provide actionable insights."
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("encode analysis data: %w", err)
	}

	messages := []ChatMessage{{
		Role:    "user",
		Content: fmt.Sprintf("%s\n\nData for analysis:\n```json\n%s\n```", prompt, encoded),
	}}
	reply, err := e.client.Chat(ctx, ModeGeneral.SystemPrompt(), messages)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	return reply, nil
}

func buildSystemPrompt(mode Mode, ctx *ContextData) string {
	base := mode.SystemPrompt()
	if ctx == nil {
		return base
	}
	return fmt.Sprintf("%s\n\n## Current Context\n%s", base, FormatContext(*ctx))
}

func buildMessages(message string, history []ChatMessage) []ChatMessage {
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	messages := make([]ChatMessage, 0, len(history)+1)
	messages = append(messages, history...)
	messages = append(messages, ChatMessage{Role: "user", Content: message})
	return messages
}
