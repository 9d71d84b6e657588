package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// SaveDocument stores the canonical rendered document text. The text is
// the round-trip form of the shelf file, so a fresh instance can recover
// the full document without re-reading the file.
func (s *Store) SaveDocument(ctx context.Context, text string) error {
	if err := s.client.Set(ctx, DocumentKey(), text, DefaultDocumentTTL).Err(); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

// GetDocument retrieves the canonical document text. Returns ok=false on
// a clean miss.
func (s *Store) GetDocument(ctx context.Context) (string, bool, error) {
	text, err := s.client.Get(ctx, DocumentKey()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get document: %w", err)
	}
	return text, true, nil
}
