// Package server wires the HTTP surface: credential-proxy endpoints,
// purchase-order persistence, the session guard, and health.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/poflow/po-upload/internal/session"
)

// Deps collects everything the router mounts. PO may be nil when persistence
// is disabled; Checker may be nil when the guard is disabled.
type Deps struct {
	Proxy      *ProxyHandlers
	PO         *PurchaseOrderHandlers
	Docs       *DocumentHandlers
	Checker    session.Checker
	CookieName string
	Logger     *slog.Logger
}

func NewRouter(d Deps) *chi.Mux {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(session.Guard(d.Checker, d.CookieName, d.Logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(api chi.Router) {
		api.Use(session.RequireSession(d.Checker, d.CookieName, d.Logger))

		api.Post("/upload", d.Proxy.Upload)
		api.Get("/file-url", d.Proxy.FileURL)
		api.Post("/ocr", d.Proxy.OCR)
		api.Post("/extract-po", d.Proxy.ExtractPO)

		if d.Docs != nil {
			api.Post("/documents", d.Docs.Create)
		}
		if d.PO != nil {
			api.Post("/purchase-orders", d.PO.Create)
			api.Get("/purchase-orders", d.PO.List)
			api.Get("/purchase-orders/export", d.PO.Export)
		}
	})

	return r
}
