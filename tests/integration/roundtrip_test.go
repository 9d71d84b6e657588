package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MrSnakeDoc/shelf/internal/domain"
	"github.com/MrSnakeDoc/shelf/internal/index"
	"github.com/MrSnakeDoc/shelf/internal/sbm"
	"github.com/MrSnakeDoc/shelf/internal/sources/shelffile"
)

const shelfText = "// homelab shelf\n" +
	"#Programming Languages\n" +
	"Rust|Systems programming language|https://www.rust-lang.org/\n" +
	"Go|Compiled language from Google|https://go.dev/\n" +
	"\n" +
	"#Web Development|🌐\n" +
	"MDN|Web documentation|https://developer.mozilla.org/\n" +
	"#Misc|\n" +
	"HN|Tech news aggregator|https://news.ycombinator.com/"

// TestFileToSearchPipeline exercises the full path a shelf file takes:
// load from disk, parse, map to entries, index, search, and render the
// document back out.
func TestFileToSearchPipeline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks.shelf")
	if err := os.WriteFile(path, []byte(shelfText+"\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	// Load and parse
	loader := shelffile.NewLoader(path)
	doc, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(doc.Categories) != 3 {
		t.Fatalf("got %d categories, want 3", len(doc.Categories))
	}

	// Map to entries
	mapper := shelffile.NewMapper()
	entries, err := mapper.MapEntries(doc)
	if err != nil {
		t.Fatalf("MapEntries() error = %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("got %d entries, want 4", len(entries))
	}

	// Index
	memIndex := index.NewMemoryIndex()
	memIndex.SetDocument(doc)
	memIndex.UpdateEntries(entries)
	if memIndex.Count() != 4 {
		t.Errorf("index count = %d, want 4", memIndex.Count())
	}

	// Search
	tests := []struct {
		name        string
		query       string
		expectedTop string // expected top result URL
	}{
		{
			name:        "exact match",
			query:       "rust",
			expectedTop: "https://www.rust-lang.org/",
		},
		{
			name:        "exact match on short name",
			query:       "go",
			expectedTop: "https://go.dev/",
		},
		{
			name:        "prefix match",
			query:       "md",
			expectedTop: "https://developer.mozilla.org/",
		},
		{
			name:        "description fallback",
			query:       "aggregator",
			expectedTop: "https://news.ycombinator.com/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates := domain.RankCandidates(tt.query, memIndex.GetAllEntries())
			if len(candidates) == 0 {
				t.Fatalf("no candidates for query %q", tt.query)
			}

			top := candidates[0].Entry
			if top.URL != tt.expectedTop {
				t.Logf("Query: %s", tt.query)
				t.Logf("Results:")
				for i, c := range candidates {
					t.Logf("  %d. %s (score: %.2f)", i+1, c.Entry.URL, c.Score)
				}
				t.Errorf("top result = %s, want %s", top.URL, tt.expectedTop)
			}
		})
	}

	// Render: the canonical form must parse back to an equal document.
	rendered := doc.String()
	reparsed, err := sbm.Parse(rendered)
	if err != nil {
		t.Fatalf("rendered document does not parse: %v", err)
	}
	if !doc.Equal(reparsed) {
		t.Error("rendered document does not round-trip")
	}

	// Comments and blank lines are noise, not data; the canonical form
	// drops them, so a second render must be byte-identical.
	if got := reparsed.String(); got != rendered {
		t.Errorf("second render differs:\n%q\nwant:\n%q", got, rendered)
	}
}

// TestDisabledEntriesHiddenFromSearch verifies soft-disabled entries
// stay in the index but never surface in results.
func TestDisabledEntriesHiddenFromSearch(t *testing.T) {
	doc, err := sbm.Parse(shelfText)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	mapper := shelffile.NewMapper()
	entries, err := mapper.MapEntries(doc)
	if err != nil {
		t.Fatalf("MapEntries() error = %v", err)
	}

	memIndex := index.NewMemoryIndex()
	memIndex.UpdateEntries(entries)

	// Disable the Rust entry the way the reloader does when a bookmark
	// disappears from the file.
	id := shelffile.EntryID("https://www.rust-lang.org/")
	entry, ok := memIndex.GetEntry(id)
	if !ok {
		t.Fatalf("entry %s not found", id)
	}
	entry.Disabled = true
	memIndex.AddEntry(entry)

	candidates := domain.RankCandidates("rust", memIndex.GetAllEntries())
	for _, c := range candidates {
		if c.Entry.ID == id {
			t.Error("disabled entry surfaced in search results")
		}
	}
}

// TestStableIDsAcrossReloads verifies the same URL keeps its ID across
// parses, so usage data keyed by ID survives file edits.
func TestStableIDsAcrossReloads(t *testing.T) {
	mapper := shelffile.NewMapper()

	first, err := sbm.Parse("#A\nRust|desc one|https://www.rust-lang.org/")
	if err != nil {
		t.Fatal(err)
	}
	// Renamed, recategorized, new description. Same URL.
	second, err := sbm.Parse("#B|📦\nRust Lang|desc two|https://www.rust-lang.org/")
	if err != nil {
		t.Fatal(err)
	}

	e1, err := mapper.MapEntries(first)
	if err != nil {
		t.Fatal(err)
	}
	e2, err := mapper.MapEntries(second)
	if err != nil {
		t.Fatal(err)
	}

	if e1[0].ID != e2[0].ID {
		t.Errorf("ID changed across reloads: %s vs %s", e1[0].ID, e2[0].ID)
	}
}
