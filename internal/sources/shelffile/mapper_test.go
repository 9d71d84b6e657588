package shelffile

import (
	"testing"

	"github.com/MrSnakeDoc/shelf/internal/sbm"
)

func TestMapperMapEntries(t *testing.T) {
	doc := sbm.NewDocument([]sbm.Category{
		{
			Header: sbm.NewHeader("Programming Languages"),
			Bookmarks: []sbm.Bookmark{
				sbm.NewBookmark("Rust", "Systems programming language", "https://www.rust-lang.org/"),
				sbm.NewBookmark("Python", "Python Programming Language", "https://www.python.org/"),
			},
		},
		{
			Header: sbm.NewHeaderWithIcon("Web Development", "🌐"),
			Bookmarks: []sbm.Bookmark{
				sbm.NewBookmark("MDN", "Web documentation", "https://developer.mozilla.org/"),
			},
		},
	})

	mapper := NewMapper()
	entries, err := mapper.MapEntries(doc)
	if err != nil {
		t.Fatalf("MapEntries() error = %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("MapEntries() returned %d entries, want 3", len(entries))
	}

	found := false
	for _, e := range entries {
		if e.URL == "https://developer.mozilla.org/" {
			found = true
			if e.Category != "Web Development" {
				t.Errorf("entry Category = %v, want Web Development", e.Category)
			}
			if e.CategoryIcon != "🌐" {
				t.Errorf("entry CategoryIcon = %v, want 🌐", e.CategoryIcon)
			}
			if len(e.Sources) != 1 || e.Sources[0] != SourceTag {
				t.Errorf("entry Sources = %v, want [%s]", e.Sources, SourceTag)
			}
		}
	}
	if !found {
		t.Error("MapEntries() did not map the MDN bookmark")
	}
}

func TestMapperMapEntriesEmptyDocument(t *testing.T) {
	mapper := NewMapper()
	entries, err := mapper.MapEntries(sbm.Document{})

	if err == nil {
		t.Error("MapEntries() with empty document should return error")
	}
	if entries != nil {
		t.Errorf("MapEntries() with empty document should return nil entries, got %v", len(entries))
	}
}

func TestMapperSkipsBookmarksWithoutURL(t *testing.T) {
	doc := sbm.NewDocument([]sbm.Category{
		{
			Header: sbm.NewHeader("Tools"),
			Bookmarks: []sbm.Bookmark{
				sbm.NewBookmark("No URL", "placeholder", ""),
				sbm.NewBookmark("Go", "The Go language", "https://go.dev/"),
			},
		},
	})

	mapper := NewMapper()
	entries, err := mapper.MapEntries(doc)
	if err != nil {
		t.Fatalf("MapEntries() error = %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("MapEntries() returned %d entries, want 1 (empty URL skipped)", len(entries))
	}
}

func TestEntryIDStable(t *testing.T) {
	a := EntryID("https://go.dev/")
	b := EntryID("https://go.dev/")
	if a != b {
		t.Errorf("EntryID() is not stable: %s != %s", a, b)
	}
	if len(a) != 16 {
		t.Errorf("EntryID() length = %d, want 16", len(a))
	}
	if a == EntryID("https://www.rust-lang.org/") {
		t.Error("EntryID() should differ for different URLs")
	}
}
