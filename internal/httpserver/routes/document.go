package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/shelf/internal/httpserver/deps"
	"github.com/MrSnakeDoc/shelf/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/shelf/internal/httpserver/mw"
)

func init() { Register(registerDocument) }

func registerDocument(r chi.Router, d deps.Deps) {
	guarded := r.With(mw.EnforceHost(d.AllowedHosts, d.Logger))
	guarded.Get("/document", handlers.Document(d))
	guarded.Get("/categories", handlers.Categories(d))
}
