package dashboard

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"folio-backend/internal/messages"
	"folio-backend/internal/projects"
	"folio-backend/internal/skills"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeProjectRepo struct {
	items []projects.Project
}

func (f *fakeProjectRepo) Create(ctx context.Context, item projects.Project) error {
	f.items = append(f.items, item)
	return nil
}

func (f *fakeProjectRepo) Update(ctx context.Context, id string, set bson.M) (projects.Project, error) {
	return projects.Project{}, mongo.ErrNoDocuments
}

func (f *fakeProjectRepo) Delete(ctx context.Context, id string) (bool, error) {
	return false, nil
}

func (f *fakeProjectRepo) List(ctx context.Context) ([]projects.Project, error) {
	return f.items, nil
}

func (f *fakeProjectRepo) ListRecent(ctx context.Context, limit int64) ([]projects.Project, error) {
	if limit > int64(len(f.items)) {
		limit = int64(len(f.items))
	}
	return f.items[:limit], nil
}

func (f *fakeProjectRepo) GetBySlug(ctx context.Context, slug string) (projects.Project, error) {
	return projects.Project{}, mongo.ErrNoDocuments
}

func (f *fakeProjectRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.items)), nil
}

type fakeSkillRepo struct {
	count int64
}

func (f *fakeSkillRepo) Create(ctx context.Context, item skills.Skill) error { return nil }

func (f *fakeSkillRepo) Update(ctx context.Context, id string, set bson.M) (skills.Skill, error) {
	return skills.Skill{}, mongo.ErrNoDocuments
}

func (f *fakeSkillRepo) Delete(ctx context.Context, id string) (bool, error) { return false, nil }

func (f *fakeSkillRepo) List(ctx context.Context) ([]skills.Skill, error) { return nil, nil }

func (f *fakeSkillRepo) Count(ctx context.Context) (int64, error) { return f.count, nil }

type fakeMessageRepo struct {
	count int64
}

func (f *fakeMessageRepo) Create(ctx context.Context, item messages.Message) error { return nil }

func (f *fakeMessageRepo) Delete(ctx context.Context, id string) (bool, error) { return false, nil }

func (f *fakeMessageRepo) List(ctx context.Context, limit, offset int64) ([]messages.Message, error) {
	return nil, nil
}

func (f *fakeMessageRepo) Count(ctx context.Context) (int64, error) { return f.count, nil }

func TestStats(t *testing.T) {
	projectRepo := &fakeProjectRepo{items: []projects.Project{
		{ID: "1", Title: "Cloud City"},
		{ID: "2", Title: "Neon Identity"},
		{ID: "3", Title: "Wanderer"},
		{ID: "4", Title: "Tidal"},
	}}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := NewHandler(
		projects.NewService(projectRepo, time.UTC),
		skills.NewService(&fakeSkillRepo{count: 7}, time.UTC),
		messages.NewService(&fakeMessageRepo{count: 2}, time.UTC, nil, log),
		log,
	)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
	handler.Stats(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Projects       int64              `json:"projects"`
		Skills         int64              `json:"skills"`
		Messages       int64              `json:"messages"`
		RecentProjects []projects.Project `json:"recent_projects"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Projects != 4 || resp.Skills != 7 || resp.Messages != 2 {
		t.Fatalf("unexpected counts: %+v", resp)
	}
	if len(resp.RecentProjects) != 3 {
		t.Fatalf("expected 3 recent projects, got %d", len(resp.RecentProjects))
	}
	if resp.RecentProjects[0].Title != "Cloud City" {
		t.Fatalf("unexpected recent ordering: %+v", resp.RecentProjects)
	}
}
