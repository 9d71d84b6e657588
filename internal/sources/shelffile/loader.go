package shelffile

import (
	"fmt"
	"os"

	"github.com/MrSnakeDoc/shelf/internal/sbm"
)

// Loader reads and parses the shelf bookmark file.
type Loader struct {
	filePath string
}

// NewLoader creates a new shelf file loader
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads the shelf file and parses it into a document.
// Parse errors carry the 1-based line number of the offending line.
func (l *Loader) Load() (sbm.Document, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return sbm.Document{}, fmt.Errorf("failed to read shelf file: %w", err)
	}

	doc, err := sbm.Parse(string(data))
	if err != nil {
		return sbm.Document{}, fmt.Errorf("failed to parse shelf file %s: %w", l.filePath, err)
	}

	return doc, nil
}
