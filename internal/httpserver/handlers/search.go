package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MrSnakeDoc/shelf/internal/domain"
	"github.com/MrSnakeDoc/shelf/internal/httpserver/deps"
)

const defaultSearchLimit = 10

type searchResult struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	Category    string  `json:"category"`
	Score       float64 `json:"score"`
}

type searchResponse struct {
	Query   string         `json:"query"`
	Results []searchResult `json:"results"`
}

// Search ranks index entries against the q parameter and returns the top
// matches. limit caps the result count (default 10).
func Search(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		if query == "" {
			http.Error(w, "missing query parameter q", http.StatusBadRequest)
			return
		}

		limit := defaultSearchLimit
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				limit = n
			}
		}

		entries := d.MemoryIndex.GetAllEntries()
		candidates := domain.RankCandidates(query, entries)
		if len(candidates) > limit {
			candidates = candidates[:limit]
		}

		resp := searchResponse{
			Query:   query,
			Results: make([]searchResult, 0, len(candidates)),
		}
		for _, c := range candidates {
			resp.Results = append(resp.Results, searchResult{
				Name:        c.Entry.Name,
				Description: c.Entry.Description,
				URL:         c.Entry.URL,
				Category:    c.Entry.Category,
				Score:       c.Score,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
