package index

import (
	"sync"
	"time"

	"github.com/MrSnakeDoc/shelf/internal/domain"
	"github.com/MrSnakeDoc/shelf/internal/sbm"
)

// MemoryIndex provides in-memory storage and lookup for shelf entries.
// It holds both the flattened entries (for search) and the last parsed
// document (for canonical rendering), and acts as the source of truth
// when Redis is unavailable.
type MemoryIndex struct {
	mu         sync.RWMutex
	entries    map[string]*domain.Entry // ID -> Entry
	document   sbm.Document             // last successfully parsed document
	hasDoc     bool                     // false until the first successful reload
	lastReload time.Time                // timestamp of last entries reload
}

// NewMemoryIndex creates a new memory index
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{
		entries: make(map[string]*domain.Entry),
	}
}

// UpdateEntries replaces all entries in the index
func (idx *MemoryIndex) UpdateEntries(entries []*domain.Entry) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	// Clear and rebuild
	idx.entries = make(map[string]*domain.Entry, len(entries))
	for _, entry := range entries {
		idx.entries[entry.ID] = entry
	}
	idx.lastReload = time.Now()
}

// SetDocument replaces the stored document
func (idx *MemoryIndex) SetDocument(doc sbm.Document) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.document = doc
	idx.hasDoc = true
}

// Document returns the last successfully parsed document and whether one
// has been stored yet.
func (idx *MemoryIndex) Document() (sbm.Document, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.document, idx.hasDoc
}

// GetEntry retrieves an entry by ID
func (idx *MemoryIndex) GetEntry(id string) (*domain.Entry, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	entry, ok := idx.entries[id]
	return entry, ok
}

// GetAllEntries returns all entries
func (idx *MemoryIndex) GetAllEntries() []*domain.Entry {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	entries := make([]*domain.Entry, 0, len(idx.entries))
	for _, entry := range idx.entries {
		entries = append(entries, entry)
	}
	return entries
}

// AddEntry adds or updates a single entry
func (idx *MemoryIndex) AddEntry(entry *domain.Entry) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.entries[entry.ID] = entry
}

// DeleteEntry removes an entry from the index
func (idx *MemoryIndex) DeleteEntry(id string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	delete(idx.entries, id)
}

// Count returns the number of entries in the index
func (idx *MemoryIndex) Count() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.entries)
}

// GetLastReload returns the timestamp of the last entries reload
func (idx *MemoryIndex) GetLastReload() time.Time {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.lastReload
}
