package domain

import "testing"

func TestScoreEntry(t *testing.T) {
	tests := []struct {
		name           string
		queryStr       string
		entryName      string
		description    string
		expectPositive bool
	}{
		{
			name:           "exact match",
			queryStr:       "rust",
			entryName:      "Rust",
			expectPositive: true,
		},
		{
			name:           "prefix match",
			queryStr:       "doc",
			entryName:      "Docker Hub",
			expectPositive: true,
		},
		{
			name:           "substring match",
			queryStr:       "hub",
			entryName:      "Docker Hub",
			expectPositive: true,
		},
		{
			name:           "description match",
			queryStr:       "systems",
			entryName:      "Rust",
			description:    "Systems programming language",
			expectPositive: true,
		},
		{
			name:           "multi-word match",
			queryStr:       "docker hub",
			entryName:      "Docker Hub",
			expectPositive: true,
		},
		{
			name:           "no match",
			queryStr:       "xyz",
			entryName:      "MDN",
			expectPositive: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := &Entry{
				ID:          "test-id",
				Name:        tt.entryName,
				Description: tt.description,
				URL:         "https://example.com",
			}

			score := ScoreEntry(tt.queryStr, entry)

			if tt.expectPositive && score <= 0 {
				t.Errorf("Expected positive score, got %f", score)
			}
			if !tt.expectPositive && score > 0 {
				t.Errorf("Expected zero score, got %f", score)
			}
		})
	}
}

func TestScoreEntryNameBeatsDescription(t *testing.T) {
	byName := &Entry{ID: "a", Name: "Rust", Description: "language"}
	byDescription := &Entry{ID: "b", Name: "MDN", Description: "rust docs"}

	if ScoreEntry("rust", byName) <= ScoreEntry("rust", byDescription) {
		t.Error("name match should outrank description match")
	}
}

func TestRankCandidates(t *testing.T) {
	entries := []*Entry{
		{ID: "rustup", Name: "Rustup", URL: "https://rustup.rs/"},
		{ID: "rust", Name: "Rust", URL: "https://www.rust-lang.org/"},
		{ID: "mdn", Name: "MDN", URL: "https://developer.mozilla.org/"},
	}

	candidates := RankCandidates("rust", entries)
	if len(candidates) != 2 {
		t.Fatalf("RankCandidates() returned %d candidates, want 2", len(candidates))
	}
	if candidates[0].Entry.ID != "rust" {
		t.Errorf("top candidate = %s, want rust (exact match first)", candidates[0].Entry.ID)
	}
}

func TestRankCandidatesDisabledFilter(t *testing.T) {
	entries := []*Entry{
		{ID: "active", Name: "Rust", URL: "https://www.rust-lang.org/", Disabled: false},
		{ID: "gone", Name: "Rust Playground", URL: "https://play.rust-lang.org/", Disabled: true},
	}

	candidates := RankCandidates("rust", entries)
	for _, c := range candidates {
		if c.Entry.Disabled {
			t.Error("disabled entry should not be in candidates")
		}
	}
}

func TestFindBestEntry(t *testing.T) {
	entries := []*Entry{
		{ID: "go", Name: "Go", URL: "https://go.dev/"},
		{ID: "rust", Name: "Rust", URL: "https://www.rust-lang.org/"},
	}

	if best := FindBestEntry("go", entries); best == nil || best.ID != "go" {
		t.Errorf("FindBestEntry() = %+v, want go", best)
	}
	if best := FindBestEntry("nothing here", entries); best != nil {
		t.Errorf("FindBestEntry() = %+v, want nil for no match", best)
	}
}
