package homepage

import (
	"strings"
	"testing"

	"github.com/MrSnakeDoc/shelf/internal/sbm"
)

const sampleYAML = `
- Developer:
    - Github:
        - abbr: GH
          href: https://github.com/
          description: Code hosting
    - MDN:
        - href: https://developer.mozilla.org/
          description: Web documentation
- Social:
    - Reddit:
        - abbr: RD
          href: https://reddit.com/
`

func TestConverterConvert(t *testing.T) {
	converter := NewConverter()
	doc, err := converter.Convert([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	if len(doc.Categories) != 2 {
		t.Fatalf("Convert() returned %d categories, want 2", len(doc.Categories))
	}
	if doc.Categories[0].Header.Name != "Developer" {
		t.Errorf("first category = %q, want Developer", doc.Categories[0].Header.Name)
	}
	if n := len(doc.Categories[0].Bookmarks); n != 2 {
		t.Errorf("Developer category has %d bookmarks, want 2", n)
	}

	// Abbr wins over the bookmark key when present.
	var github *sbm.Bookmark
	for i := range doc.Categories[0].Bookmarks {
		if doc.Categories[0].Bookmarks[i].URL == "https://github.com/" {
			github = &doc.Categories[0].Bookmarks[i]
		}
	}
	if github == nil {
		t.Fatal("Convert() did not map the Github bookmark")
	}
	if github.Name != "GH" {
		t.Errorf("bookmark name = %q, want GH (abbr preferred)", github.Name)
	}
	if github.Description != "Code hosting" {
		t.Errorf("bookmark description = %q, want Code hosting", github.Description)
	}

	// The converted document must survive the shelf round trip.
	reparsed, err := sbm.Parse(doc.String())
	if err != nil {
		t.Fatalf("Parse(render(converted)) error = %v", err)
	}
	if !doc.Equal(reparsed) {
		t.Error("converted document does not round-trip through the shelf format")
	}
}

func TestConverterConvertTemplateVariables(t *testing.T) {
	yamlWithVars := `
- Infra:
    - AdGuard:
        - href: "{{HOMEPAGE_VAR_ADGUARD_URL}}"
    - Grafana:
        - href: https://grafana.example.com/
`
	converter := NewConverter()
	doc, err := converter.Convert([]byte(yamlWithVars))
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	// The templated href collapses to empty and is skipped.
	if n := len(doc.Categories[0].Bookmarks); n != 1 {
		t.Errorf("Infra category has %d bookmarks, want 1", n)
	}
}

func TestConverterConvertSanitizesPipes(t *testing.T) {
	yamlWithPipe := `
- Reading:
    - "Docs | Index":
        - href: https://docs.example.com/
          description: "one | two"
`
	converter := NewConverter()
	doc, err := converter.Convert([]byte(yamlWithPipe))
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	rendered := doc.String()
	if strings.Count(rendered, "|") != 2 {
		t.Errorf("rendered output should only contain the two structural pipes, got %q", rendered)
	}
	if _, err := sbm.Parse(rendered); err != nil {
		t.Errorf("sanitized output should re-parse, got %v", err)
	}
}

func TestConverterConvertErrors(t *testing.T) {
	converter := NewConverter()

	if _, err := converter.Convert([]byte("not: [valid")); err == nil {
		t.Error("Convert() should fail on invalid yaml")
	}
	if _, err := converter.Convert([]byte("")); err == nil {
		t.Error("Convert() should fail when no bookmarks are found")
	}
}
