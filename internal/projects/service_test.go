package projects

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeRepo struct {
	items []Project
}

func (f *fakeRepo) Create(ctx context.Context, item Project) error {
	f.items = append(f.items, item)
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, id string, set bson.M) (Project, error) {
	for i, p := range f.items {
		if p.ID != id {
			continue
		}
		p.Title = set["title"].(string)
		p.DescriptionShort = set["description_short"].(string)
		p.DescriptionLong = set["description_long"].(string)
		p.Category = set["category"].(string)
		p.ThumbnailURL = set["thumbnail_url"].(string)
		p.Gallery = set["gallery"].([]MediaItem)
		p.Tools = set["tools"].([]string)
		p.UpdatedAt = set["updated_at"].(time.Time)
		f.items[i] = p
		return p, nil
	}
	return Project{}, mongo.ErrNoDocuments
}

func (f *fakeRepo) Delete(ctx context.Context, id string) (bool, error) {
	for i, p := range f.items {
		if p.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) List(ctx context.Context) ([]Project, error) {
	return append([]Project(nil), f.items...), nil
}

func (f *fakeRepo) ListRecent(ctx context.Context, limit int64) ([]Project, error) {
	if limit > int64(len(f.items)) {
		limit = int64(len(f.items))
	}
	return append([]Project(nil), f.items[:limit]...), nil
}

func (f *fakeRepo) GetBySlug(ctx context.Context, slug string) (Project, error) {
	for _, p := range f.items {
		if p.Slug == slug {
			return p, nil
		}
	}
	return Project{}, mongo.ErrNoDocuments
}

func (f *fakeRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.items)), nil
}

func newTestService(repo *fakeRepo) *Service {
	return NewService(repo, time.UTC)
}

func TestUpsertWithoutIDCreates(t *testing.T) {
	repo := &fakeRepo{}
	service := newTestService(repo)

	item, created, err := service.Upsert(context.Background(), UpsertRequest{
		Title:            "  Cloud City  ",
		DescriptionShort: "A floating metropolis.",
		Category:         "Environment",
		Gallery:          []string{"https://cdn.example.com/a.jpg", " ", "https://cdn.example.com/b.mp4"},
		Tools:            []string{" Blender ", ""},
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if !created {
		t.Fatal("expected a created row")
	}
	if len(repo.items) != 1 {
		t.Fatalf("expected exactly one row, got %d", len(repo.items))
	}

	if item.ID == "" {
		t.Fatal("expected a generated id")
	}
	if item.Title != "Cloud City" {
		t.Fatalf("title not trimmed: %q", item.Title)
	}
	if item.Slug != "cloud-city" {
		t.Fatalf("unexpected slug %q", item.Slug)
	}
	if !reflect.DeepEqual(item.Tools, []string{"Blender"}) {
		t.Fatalf("tools not normalized: %v", item.Tools)
	}

	wantGallery := []MediaItem{
		{URL: "https://cdn.example.com/a.jpg", Type: MediaImage},
		{URL: "https://cdn.example.com/b.mp4", Type: MediaVideo},
	}
	if !reflect.DeepEqual(item.Gallery, wantGallery) {
		t.Fatalf("gallery not classified: %v", item.Gallery)
	}
}

func TestUpsertWithIDUpdatesInPlace(t *testing.T) {
	repo := &fakeRepo{}
	service := newTestService(repo)

	item, _, err := service.Upsert(context.Background(), UpsertRequest{Title: "Cloud City", Category: "Environment"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, created, err := service.Upsert(context.Background(), UpsertRequest{
		ID:       item.ID,
		Title:    "Cloud City v2",
		Category: "Environment",
		Tools:    []string{"Houdini"},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if created {
		t.Fatal("update must not report a created row")
	}
	if len(repo.items) != 1 {
		t.Fatalf("update must not add rows, got %d", len(repo.items))
	}
	if updated.Title != "Cloud City v2" {
		t.Fatalf("unexpected title %q", updated.Title)
	}
	if updated.Slug != "cloud-city" {
		t.Fatalf("slug must stay stable across edits, got %q", updated.Slug)
	}
}

func TestUpsertUnknownID(t *testing.T) {
	service := newTestService(&fakeRepo{})

	_, _, err := service.Upsert(context.Background(), UpsertRequest{ID: "missing", Title: "X", Category: "VFX"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteNotFound(t *testing.T) {
	service := newTestService(&fakeRepo{})

	if err := service.Delete(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListAdminWindows(t *testing.T) {
	repo := &fakeRepo{items: []Project{
		{ID: "1", Title: "A", Category: "VFX"},
		{ID: "2", Title: "B", Category: "VFX"},
		{ID: "3", Title: "C", Category: "VFX"},
	}}
	service := newTestService(repo)

	page, total, err := service.ListAdmin(context.Background(), ListFilter{}, 2, 1)
	if err != nil {
		t.Fatalf("list admin: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected total 3, got %d", total)
	}
	if len(page) != 2 || page[0].ID != "2" || page[1].ID != "3" {
		t.Fatalf("unexpected window: %v", page)
	}

	page, total, err = service.ListAdmin(context.Background(), ListFilter{}, 10, 5)
	if err != nil {
		t.Fatalf("list admin: %v", err)
	}
	if total != 3 || len(page) != 0 {
		t.Fatalf("offset past end must yield an empty page, got %v", page)
	}
}
