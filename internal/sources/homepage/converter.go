// Package homepage converts gethomepage.dev bookmarks.yaml files into
// shelf-format documents, so an existing Homepage setup can be migrated
// onto the shelf file with one request.
package homepage

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MrSnakeDoc/shelf/internal/sbm"
)

// Converter turns Homepage bookmark config into a shelf document
type Converter struct{}

// NewConverter creates a new converter
func NewConverter() *Converter {
	return &Converter{}
}

// Convert parses raw bookmarks.yaml content and builds the equivalent
// shelf document. Returns an error when the YAML is invalid or contains
// no usable bookmarks.
func (c *Converter) Convert(data []byte) (sbm.Document, error) {
	// Strip Homepage template variables ({{HOMEPAGE_VAR_...}})
	data = stripTemplateVariables(data)

	var config BookmarksConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return sbm.Document{}, fmt.Errorf("failed to parse bookmarks yaml: %w", err)
	}

	var doc sbm.Document
	total := 0

	for _, categoryMap := range config {
		// Homepage uses single-key maps inside a list; sort keys so a
		// multi-key map still converts deterministically.
		for _, categoryName := range sortedKeys(categoryMap) {
			category := sbm.NewCategory(sbm.NewHeader(sanitizeField(categoryName)))

			for _, bookmarkMap := range categoryMap[categoryName] {
				for _, bookmarkName := range sortedKeys(bookmarkMap) {
					entryList := bookmarkMap[bookmarkName]
					// Each bookmark holds a list with a single entry
					if len(entryList) == 0 {
						continue
					}
					entry := entryList[0]

					if entry.Href == "" {
						continue
					}

					name := bookmarkName
					if entry.Abbr != "" {
						name = entry.Abbr
					}

					category.Bookmarks = append(category.Bookmarks, sbm.NewBookmark(
						sanitizeBookmarkName(name),
						sanitizeField(entry.Description),
						sanitizeField(entry.Href),
					))
					total++
				}
			}

			doc.Categories = append(doc.Categories, category)
		}
	}

	if total == 0 {
		return sbm.Document{}, fmt.Errorf("no valid bookmarks found in config")
	}

	return doc, nil
}

// stripTemplateVariables removes Homepage template variables from YAML
// Example: {{HOMEPAGE_VAR_ADGUARD_USER}} -> ""
func stripTemplateVariables(data []byte) []byte {
	re := regexp.MustCompile(`\{\{[^}]+\}\}`)
	return re.ReplaceAll(data, []byte(`""`))
}

// sanitizeField makes a value safe for the shelf format, which has no
// escaping: pipes would shift field boundaries on re-parse.
func sanitizeField(s string) string {
	return strings.ReplaceAll(s, "|", "/")
}

// sanitizeBookmarkName additionally strips a leading '#', which would
// turn the bookmark line into a header on re-parse.
func sanitizeBookmarkName(s string) string {
	return strings.TrimLeft(sanitizeField(s), "#")
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
