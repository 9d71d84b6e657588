package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/MrSnakeDoc/shelf/internal/domain"
	"github.com/MrSnakeDoc/shelf/internal/index"
	"github.com/MrSnakeDoc/shelf/internal/logger"
	"github.com/MrSnakeDoc/shelf/internal/sources/shelffile"
	redisstore "github.com/MrSnakeDoc/shelf/internal/store/redis"
)

// ShelfReloader handles periodic reloading of the shelf bookmark file
type ShelfReloader struct {
	loader        *shelffile.Loader
	mapper        *shelffile.Mapper
	store         *redisstore.Store
	index         *index.MemoryIndex
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewShelfReloader creates a new shelf reloader
func NewShelfReloader(
	shelfFile string,
	store *redisstore.Store,
	idx *index.MemoryIndex,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *ShelfReloader {
	return &ShelfReloader{
		loader:        shelffile.NewLoader(shelfFile),
		mapper:        shelffile.NewMapper(),
		store:         store,
		index:         idx,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start begins the periodic reload process
func (sr *ShelfReloader) Start(ctx context.Context) error {
	// Load immediately on start
	if err := sr.Reload(ctx); err != nil {
		return fmt.Errorf("initial shelf reload failed: %w", err)
	}

	// Start periodic reload
	ticker := time.NewTicker(sr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := sr.Reload(ctx); err != nil {
					sr.logger.Error("failed to reload shelf",
						logger.Error(err))
				}
			case <-sr.manualTrigger:
				sr.logger.Info("manual shelf reload triggered")
				if err := sr.Reload(ctx); err != nil {
					sr.logger.Error("failed to reload shelf",
						logger.Error(err))
				}
			case <-sr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader
func (sr *ShelfReloader) Stop() {
	close(sr.stopCh)
}

// Reload re-reads the shelf file and updates store + index. A parse
// error leaves the previous document and entries in place.
func (sr *ShelfReloader) Reload(ctx context.Context) error {
	sr.logger.Info("reloading shelf file")

	doc, err := sr.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load shelf: %w", err)
	}

	newEntries, err := sr.mapper.MapEntries(doc)
	if err != nil {
		return fmt.Errorf("failed to map shelf entries: %w", err)
	}

	sr.logger.Info("loaded entries from shelf file",
		logger.Int("categories", len(doc.Categories)),
		logger.Int("count", len(newEntries)))

	// Get existing shelf-sourced entries to detect removals
	existingEntries := sr.getShelfEntries()

	// Build map of new entry IDs for quick lookup
	newEntryIDs := make(map[string]bool, len(newEntries))
	for _, e := range newEntries {
		newEntryIDs[e.ID] = true
	}

	// Find entries that were removed from the shelf file
	var disabledEntries []*domain.Entry
	for _, existing := range existingEntries {
		if !newEntryIDs[existing.ID] {
			// Entry no longer in the shelf file - mark as disabled
			existing.Disabled = true
			existing.UpdatedAt = time.Now()
			disabledEntries = append(disabledEntries, existing)
		}
	}

	if len(disabledEntries) > 0 {
		sr.logger.Info("marking removed entries as disabled",
			logger.Int("count", len(disabledEntries)))
	}

	// Combine active and disabled entries for storage
	newEntries = append(newEntries, disabledEntries...)

	// Update memory index
	sr.index.SetDocument(doc)
	sr.index.UpdateEntries(newEntries)

	// Update Redis store (best effort)
	if sr.store != nil {
		if err := sr.store.SaveEntriesMany(ctx, newEntries); err != nil {
			sr.logger.Warn("failed to save entries to redis",
				logger.Error(err))
			// Don't fail - memory index is the primary source
		} else if err := sr.store.SaveDocument(ctx, doc.String()); err != nil {
			sr.logger.Warn("failed to save document to redis",
				logger.Error(err))
		} else {
			sr.logger.Info("shelf saved to redis")
		}
	}

	return nil
}

// getShelfEntries returns existing entries that came from the shelf file
func (sr *ShelfReloader) getShelfEntries() []*domain.Entry {
	all := sr.index.GetAllEntries()
	var shelfEntries []*domain.Entry

	for _, e := range all {
		for _, source := range e.Sources {
			if source == shelffile.SourceTag {
				shelfEntries = append(shelfEntries, e)
				break
			}
		}
	}

	return shelfEntries
}
