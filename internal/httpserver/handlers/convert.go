package handlers

import (
	"io"
	"net/http"

	"github.com/MrSnakeDoc/shelf/internal/httpserver/deps"
	"github.com/MrSnakeDoc/shelf/internal/logger"
	"github.com/MrSnakeDoc/shelf/internal/sources/homepage"
)

// maxConvertBody caps the accepted YAML payload (1 MiB).
const maxConvertBody = 1 << 20

// ConvertHomepage accepts a gethomepage.dev bookmarks.yaml body and
// responds with the equivalent shelf-format text, ready to be saved as
// the shelf file.
func ConvertHomepage(d deps.Deps) http.HandlerFunc {
	converter := homepage.NewConverter()

	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxConvertBody+1))
		if err != nil {
			http.Error(w, "failed to read request body", http.StatusBadRequest)
			return
		}
		if len(body) > maxConvertBody {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}

		doc, err := converter.Convert(body)
		if err != nil {
			d.Logger.Warn("homepage conversion failed", logger.Error(err))
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		d.Logger.Info("converted homepage bookmarks",
			logger.Int("categories", len(doc.Categories)))

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write([]byte(doc.String())); err != nil {
			d.Logger.Debug("failed to write response", logger.Error(err))
		}
	}
}
