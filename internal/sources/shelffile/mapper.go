package shelffile

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/MrSnakeDoc/shelf/internal/domain"
	"github.com/MrSnakeDoc/shelf/internal/sbm"
)

// SourceTag marks entries that came from the shelf file.
const SourceTag = "shelf"

// Mapper converts a parsed shelf document to domain entries
type Mapper struct{}

// NewMapper creates a new mapper
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapEntries flattens a document into domain.Entry values, one per
// bookmark, carrying the owning category's name and icon.
func (m *Mapper) MapEntries(doc sbm.Document) ([]*domain.Entry, error) {
	entries := make([]*domain.Entry, 0)
	now := time.Now()

	for _, category := range doc.Categories {
		for _, bookmark := range category.Bookmarks {
			// Skip bookmarks without a URL; they cannot be opened and
			// would all collide on the same derived ID.
			if bookmark.URL == "" {
				continue
			}

			entry := &domain.Entry{
				ID:           EntryID(bookmark.URL),
				Name:         bookmark.Name,
				Description:  bookmark.Description,
				URL:          bookmark.URL,
				Category:     category.Header.Name,
				CategoryIcon: category.Header.Icon,
				Sources:      []string{SourceTag},
				CreatedAt:    now,
				UpdatedAt:    now,
				Disabled:     false,
			}

			entries = append(entries, entry)
		}
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("no usable bookmarks found in shelf document")
	}

	return entries, nil
}

// EntryID creates a stable ID from a URL using a SHA-256 hash prefix.
// The same URL always produces the same ID, even when the bookmark is
// renamed or moved between categories.
func EntryID(url string) string {
	hash := sha256.Sum256([]byte(url))
	return hex.EncodeToString(hash[:])[:16]
}
