package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MrSnakeDoc/shelf/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	// DefaultEntryTTL is the default TTL for entry keys (48 hours).
	// Entries are refreshed on every shelf reload; the TTL only cleans
	// up after the service stops running.
	DefaultEntryTTL = 48 * time.Hour
	// DefaultDocumentTTL is the default TTL for the canonical document text
	DefaultDocumentTTL = 48 * time.Hour
)

// Store handles Redis operations for shelf entries and the document
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// SaveEntry stores an entry in Redis
func (s *Store) SaveEntry(ctx context.Context, entry *domain.Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}

	key := EntryKey(entry.ID)

	// Store entry data
	if err := s.client.Set(ctx, key, data, DefaultEntryTTL).Err(); err != nil {
		return fmt.Errorf("failed to save entry: %w", err)
	}

	// Add to set of all entries
	if err := s.client.SAdd(ctx, AllEntriesKey(), entry.ID).Err(); err != nil {
		return fmt.Errorf("failed to add entry to set: %w", err)
	}

	return nil
}

// GetEntry retrieves an entry from Redis by ID
func (s *Store) GetEntry(ctx context.Context, id string) (*domain.Entry, error) {
	key := EntryKey(id)
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("entry not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}

	var entry domain.Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal entry: %w", err)
	}

	return &entry, nil
}

// GetAllEntries retrieves all entries from Redis
func (s *Store) GetAllEntries(ctx context.Context) ([]*domain.Entry, error) {
	// Get all entry IDs
	ids, err := s.client.SMembers(ctx, AllEntriesKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get entry IDs: %w", err)
	}

	if len(ids) == 0 {
		return []*domain.Entry{}, nil
	}

	entries := make([]*domain.Entry, 0, len(ids))
	for _, id := range ids {
		entry, err := s.GetEntry(ctx, id)
		if err != nil {
			// Skip entries that couldn't be retrieved (expired key still
			// referenced by the set)
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// DeleteEntry removes an entry from Redis
func (s *Store) DeleteEntry(ctx context.Context, id string) error {
	key := EntryKey(id)

	// Delete entry data
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	// Remove from set of all entries
	if err := s.client.SRem(ctx, AllEntriesKey(), id).Err(); err != nil {
		return fmt.Errorf("failed to remove entry from set: %w", err)
	}

	return nil
}

// SaveEntriesMany stores multiple entries in Redis (bulk operation)
func (s *Store) SaveEntriesMany(ctx context.Context, entries []*domain.Entry) error {
	pipe := s.client.Pipeline()

	for _, entry := range entries {
		data, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("failed to marshal entry %s: %w", entry.ID, err)
		}

		key := EntryKey(entry.ID)
		pipe.Set(ctx, key, data, DefaultEntryTTL)
		pipe.SAdd(ctx, AllEntriesKey(), entry.ID)
	}

	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save entries: %w", err)
	}

	return nil
}
