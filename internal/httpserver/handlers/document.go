package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/MrSnakeDoc/shelf/internal/httpserver/deps"
	"github.com/MrSnakeDoc/shelf/internal/logger"
)

// Document serves the canonical rendering of the current shelf document
// as plain text. The output re-parses to an equal document, so it can be
// saved straight back to a shelf file.
func Document(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, ok := d.MemoryIndex.Document()
		if !ok {
			http.Error(w, "no document loaded yet", http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write([]byte(doc.String())); err != nil {
			d.Logger.Debug("failed to write response", logger.Error(err))
		}
	}
}

type categoryView struct {
	Name      string         `json:"name"`
	Icon      *string        `json:"icon,omitempty"`
	Bookmarks []bookmarkView `json:"bookmarks"`
}

type bookmarkView struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

type categoriesResponse struct {
	Categories []categoryView `json:"categories"`
	Total      int            `json:"total_bookmarks"`
}

// Categories serves a JSON view of the current document, category by
// category in source order.
func Categories(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, ok := d.MemoryIndex.Document()
		if !ok {
			http.Error(w, "no document loaded yet", http.StatusServiceUnavailable)
			return
		}

		resp := categoriesResponse{
			Categories: make([]categoryView, 0, len(doc.Categories)),
		}
		for _, c := range doc.Categories {
			view := categoryView{
				Name:      c.Header.Name,
				Bookmarks: make([]bookmarkView, 0, len(c.Bookmarks)),
			}
			if c.Header.HasIcon {
				icon := c.Header.Icon
				view.Icon = &icon
			}
			for _, b := range c.Bookmarks {
				view.Bookmarks = append(view.Bookmarks, bookmarkView{
					Name:        b.Name,
					Description: b.Description,
					URL:         b.URL,
				})
				resp.Total++
			}
			resp.Categories = append(resp.Categories, view)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
