// Package storage persists per-session conversation state in Redis.
// The engines stay pure; handlers read state here, pass it in, and
// write the diff back out.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// sessionTTL keeps abandoned sessions from accumulating forever.
const sessionTTL = 7 * 24 * time.Hour

// SessionStore tracks discussed topics and dismissed prompts per chat
// session, backed by Redis sets.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore wraps an existing Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func topicsKey(sessionID string) string {
	return fmt.Sprintf("session:%s:topics", sessionID)
}

func dismissedKey(sessionID string) string {
	return fmt.Sprintf("session:%s:dismissed", sessionID)
}

// DiscussedTopics returns the topics covered so far in a session.
func (s *SessionStore) DiscussedTopics(ctx context.Context, sessionID string) ([]string, error) {
	topics, err := s.client.SMembers(ctx, topicsKey(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("load discussed topics: %w", err)
	}
	return topics, nil
}

// AddDiscussedTopics records topics extracted from the latest turn.
func (s *SessionStore) AddDiscussedTopics(ctx context.Context, sessionID string, topics ...string) error {
	if len(topics) == 0 {
		return nil
	}
	key := topicsKey(sessionID)
	members := make([]interface{}, len(topics))
	for i, t := range topics {
		members[i] = t
	}
	pipe := s.client.TxPipeline()
	pipe.SAdd(ctx, key, members...)
	pipe.Expire(ctx, key, sessionTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save discussed topics: %w", err)
	}
	return nil
}

// DismissedPrompts returns the exact prompt texts the user waved away.
func (s *SessionStore) DismissedPrompts(ctx context.Context, sessionID string) ([]string, error) {
	prompts, err := s.client.SMembers(ctx, dismissedKey(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("load dismissed prompts: %w", err)
	}
	return prompts, nil
}

// DismissPrompt records one dismissed prompt text.
func (s *SessionStore) DismissPrompt(ctx context.Context, sessionID, prompt string) error {
	key := dismissedKey(sessionID)
	pipe := s.client.TxPipeline()
	pipe.SAdd(ctx, key, prompt)
	pipe.Expire(ctx, key, sessionTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save dismissed prompt: %w", err)
	}
	return nil
}

// ClearSession drops all state for a session.
func (s *SessionStore) ClearSession(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, topicsKey(sessionID), dismissedKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
