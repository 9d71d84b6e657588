package scheduler

import (
	"context"

	"github.com/MrSnakeDoc/shelf/internal/index"
	"github.com/MrSnakeDoc/shelf/internal/logger"
	"github.com/MrSnakeDoc/shelf/internal/sbm"
	redisstore "github.com/MrSnakeDoc/shelf/internal/store/redis"
)

// RedisSyncer restores entries and the document from Redis into the
// memory index on startup, so a broken shelf file on boot does not leave
// the service empty.
type RedisSyncer struct {
	store  *redisstore.Store
	index  *index.MemoryIndex
	logger logger.Logger
}

// NewRedisSyncer creates a new Redis syncer
func NewRedisSyncer(
	store *redisstore.Store,
	idx *index.MemoryIndex,
	log logger.Logger,
) *RedisSyncer {
	return &RedisSyncer{
		store:  store,
		index:  idx,
		logger: log,
	}
}

// Sync loads entries and the canonical document from Redis and updates
// the memory index
func (rs *RedisSyncer) Sync(ctx context.Context) error {
	rs.logger.Info("syncing shelf from redis to memory")

	entries, err := rs.store.GetAllEntries(ctx)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		rs.logger.Info("no entries found in redis")
		return nil
	}

	rs.index.UpdateEntries(entries)

	rs.logger.Info("synced entries from redis",
		logger.Int("count", len(entries)))

	text, ok, err := rs.store.GetDocument(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	doc, err := sbm.Parse(text)
	if err != nil {
		// The stored document is always a canonical rendering, so this
		// only happens if someone edited the key by hand.
		rs.logger.Warn("stored document does not parse, skipping",
			logger.Error(err))
		return nil
	}

	rs.index.SetDocument(doc)
	rs.logger.Info("synced document from redis",
		logger.Int("categories", len(doc.Categories)))

	return nil
}
