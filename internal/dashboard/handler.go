package dashboard

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"folio-backend/internal/messages"
	"folio-backend/internal/middleware"
	"folio-backend/internal/projects"
	"folio-backend/internal/skills"
	"folio-backend/internal/transport"
)

type Handler struct {
	projects *projects.Service
	skills   *skills.Service
	messages *messages.Service
	log      *slog.Logger
}

func NewHandler(p *projects.Service, s *skills.Service, m *messages.Service, log *slog.Logger) *Handler {
	return &Handler{
		projects: p,
		skills:   s,
		messages: m,
		log:      log,
	}
}

type statsResponse struct {
	Projects       int64              `json:"projects"`
	Skills         int64              `json:"skills"`
	Messages       int64              `json:"messages"`
	RecentProjects []projects.Project `json:"recent_projects"`
}

// Stats backs the admin dashboard header: entity counts plus the three most
// recently created projects.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	projectCount, err := h.projects.Count(ctx)
	if err != nil {
		log.Error("admin stats: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}
	skillCount, err := h.skills.Count(ctx)
	if err != nil {
		log.Error("admin stats: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}
	messageCount, err := h.messages.Count(ctx)
	if err != nil {
		log.Error("admin stats: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}
	recent, err := h.projects.Recent(ctx, 3)
	if err != nil {
		log.Error("admin stats: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin stats: ok")
	transport.WriteJSON(w, http.StatusOK, statsResponse{
		Projects:       projectCount,
		Skills:         skillCount,
		Messages:       messageCount,
		RecentProjects: recent,
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
