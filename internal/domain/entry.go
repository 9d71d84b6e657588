package domain

import "time"

// Entry is the runtime view of one bookmark from the shelf file, flattened
// with its category so it can be indexed and searched independently of the
// document structure.
//
// An Entry is uniquely identified by its ID, derived from the URL.
type Entry struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the canonical unique identifier.
	// Derived from URL (sha256 prefix) so that renames keep the identity.
	ID string

	// Name is the bookmark's short name from the shelf file.
	// Example: "Rust", "Docker Hub"
	Name string

	// URL is the full external URL to open.
	// Example: https://www.rust-lang.org/
	URL string

	// ─────────────────────────────
	// Functional description
	// (overwritten on shelf reload)
	// ─────────────────────────────

	// Description is the bookmark's longer description.
	Description string

	// Category is the name of the category header the bookmark sits under.
	Category string

	// CategoryIcon is the category's icon, empty when the header has none.
	CategoryIcon string

	// ─────────────────────────────
	// Provenance & observation
	// ─────────────────────────────

	// Sources indicates where this entry was discovered from.
	// Example: shelf, redis
	Sources []string

	// ─────────────────────────────
	// Metadata
	// ─────────────────────────────

	// CreatedAt is the first time the entry was discovered.
	CreatedAt time.Time

	// UpdatedAt is updated on any mutation.
	UpdatedAt time.Time

	// ─────────────────────────────
	// Liveness & cleanup
	// ─────────────────────────────

	// Disabled marks an entry as soft-deleted after it disappears from
	// the shelf file. It is kept around so Redis and the index agree.
	Disabled bool
}
