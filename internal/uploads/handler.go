package uploads

import (
	"log/slog"
	"net/http"
	"time"

	"folio-backend/internal/middleware"
	"folio-backend/internal/storage"
	"folio-backend/internal/transport"
)

// maxUploadBytes caps a whole multipart request; portfolio media is images
// and short clips, not raw footage.
const maxUploadBytes = 64 << 20

type Handler struct {
	store storage.Store
	log   *slog.Logger
}

func NewHandler(store storage.Store, log *slog.Logger) *Handler {
	return &Handler{
		store: store,
		log:   log,
	}
}

type uploadResponse struct {
	URLs []string `json:"urls"`
}

// Create accepts a multipart form with a "role" field and one or more
// "files" parts. Files are stored one at a time; a failure mid-sequence
// reports the URLs stored so far alongside the error, because earlier
// uploads are not rolled back.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	if h.store == nil {
		log.Warn("upload: storage not configured")
		transport.WriteError(w, http.StatusServiceUnavailable, "storage not configured", nil)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		log.Warn("upload: invalid multipart form", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, "invalid multipart form", nil)
		return
	}

	role := r.FormValue("role")
	if !storage.ValidRole(role) {
		log.Warn("upload: invalid role", slog.String("role", role))
		transport.WriteError(w, http.StatusBadRequest, "invalid role", nil)
		return
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		log.Warn("upload: no files")
		transport.WriteError(w, http.StatusBadRequest, "no files", nil)
		return
	}

	urls := make([]string, 0, len(files))
	for i, header := range files {
		f, err := header.Open()
		if err != nil {
			log.Error("upload: open part failed", slog.String("filename", header.Filename), slog.String("error", err.Error()))
			h.writePartialFailure(w, urls, header.Filename)
			return
		}

		// The index keeps two files in the same request from colliding on
		// the millisecond timestamp.
		objectPath := storage.ObjectPath(role, header.Filename, time.Now().Add(time.Duration(i)*time.Millisecond))
		contentType := header.Header.Get("Content-Type")

		err = h.store.Put(r.Context(), objectPath, contentType, f, header.Size)
		f.Close()
		if err != nil {
			log.Error("upload: store failed",
				slog.String("path", objectPath),
				slog.String("error", err.Error()),
			)
			h.writePartialFailure(w, urls, header.Filename)
			return
		}

		urls = append(urls, h.store.PublicURL(objectPath))
	}

	log.Info("upload: ok", slog.String("role", role), slog.Int("count", len(urls)))
	transport.WriteJSON(w, http.StatusCreated, uploadResponse{URLs: urls})
}

func (h *Handler) writePartialFailure(w http.ResponseWriter, stored []string, failedFile string) {
	transport.WriteJSON(w, http.StatusBadGateway, map[string]interface{}{
		"error":  "upload failed",
		"failed": failedFile,
		"urls":   stored,
	})
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
