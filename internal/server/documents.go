package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/poflow/po-upload/internal/entity"
)

// DocumentStore records stored-file metadata.
type DocumentStore interface {
	Create(ctx context.Context, doc *entity.Document) (*entity.Document, error)
}

// DocumentHandlers serve the stored-document registration endpoint. Clients
// call it after the storage side-step so a confirmed record can link back to
// its source file.
type DocumentHandlers struct {
	store  DocumentStore
	logger *slog.Logger
}

func NewDocumentHandlers(store DocumentStore, logger *slog.Logger) *DocumentHandlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentHandlers{store: store, logger: logger}
}

type createDocumentRequest struct {
	ObjectKey   string `json:"objectKey"`
	Filename    string `json:"filename"`
	FileSize    int    `json:"fileSize"`
	ContentType string `json:"contentType,omitempty"`
	PublicURL   string `json:"publicUrl,omitempty"`
}

func (h *DocumentHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var in createDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if in.ObjectKey == "" || in.Filename == "" {
		writeErrorMessage(w, http.StatusBadRequest, "objectKey and filename are required")
		return
	}

	created, err := h.store.Create(r.Context(), &entity.Document{
		ObjectKey:   in.ObjectKey,
		Filename:    in.Filename,
		FileSize:    in.FileSize,
		ContentType: in.ContentType,
		PublicURL:   in.PublicURL,
	})
	if err != nil {
		writeStoreError(w, r, h.logger, "documents.create", err)
		return
	}

	h.logger.Info("documents.create",
		"req_id", middleware.GetReqID(r.Context()),
		"id", created.ID,
		"object_key", created.ObjectKey,
	)
	writeJSON(w, http.StatusCreated, created)
}
