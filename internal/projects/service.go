package projects

import (
	"context"
	"errors"
	"strings"
	"time"

	"folio-backend/internal/tags"
	"folio-backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("project not found")

type Service struct {
	repo     Repository
	location *time.Location
}

func NewService(repo Repository, location *time.Location) *Service {
	return &Service{
		repo:     repo,
		location: location,
	}
}

// Upsert branches on identifier presence: no ID inserts a new row, an ID
// updates exactly that row. The returned bool reports whether a row was
// created.
func (s *Service) Upsert(ctx context.Context, req UpsertRequest) (Project, bool, error) {
	if strings.TrimSpace(req.ID) == "" {
		item, err := s.create(ctx, req)
		return item, err == nil, err
	}
	item, err := s.update(ctx, strings.TrimSpace(req.ID), req)
	return item, false, err
}

func (s *Service) create(ctx context.Context, req UpsertRequest) (Project, error) {
	now := time.Now().In(s.location)
	item := Project{
		ID:               primitive.NewObjectID().Hex(),
		Title:            strings.TrimSpace(req.Title),
		Slug:             utils.Slugify(req.Title),
		DescriptionShort: strings.TrimSpace(req.DescriptionShort),
		DescriptionLong:  strings.TrimSpace(req.DescriptionLong),
		Category:         strings.TrimSpace(req.Category),
		ThumbnailURL:     strings.TrimSpace(req.ThumbnailURL),
		Gallery:          buildGallery(req.Gallery),
		Tools:            tags.Normalize(req.Tools),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err := s.repo.Create(ctx, item)
	if mongo.IsDuplicateKeyError(err) {
		// Slug collision with an existing project; disambiguate once.
		item.Slug = item.Slug + "-" + item.ID[len(item.ID)-6:]
		err = s.repo.Create(ctx, item)
	}
	if err != nil {
		return Project{}, err
	}
	return item, nil
}

func (s *Service) update(ctx context.Context, id string, req UpsertRequest) (Project, error) {
	// The slug stays stable across edits so published links keep working.
	set := bson.M{
		"title":             strings.TrimSpace(req.Title),
		"description_short": strings.TrimSpace(req.DescriptionShort),
		"description_long":  strings.TrimSpace(req.DescriptionLong),
		"category":          strings.TrimSpace(req.Category),
		"thumbnail_url":     strings.TrimSpace(req.ThumbnailURL),
		"gallery":           buildGallery(req.Gallery),
		"tools":             tags.Normalize(req.Tools),
		"updated_at":        time.Now().In(s.location),
	}

	updated, err := s.repo.Update(ctx, id, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Project{}, ErrNotFound
		}
		return Project{}, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// ListPublic fetches the full list once and applies the pure filter to it;
// filtering never issues a second query.
func (s *Service) ListPublic(ctx context.Context, filter ListFilter) ([]Project, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(items, filter), nil
}

func (s *Service) ListAdmin(ctx context.Context, filter ListFilter, limit, offset int64) ([]Project, int64, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	filtered := Filter(items, filter)
	total := int64(len(filtered))

	if offset >= total {
		return []Project{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return filtered[offset:end], total, nil
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (Project, error) {
	item, err := s.repo.GetBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Project{}, ErrNotFound
		}
		return Project{}, err
	}
	return item, nil
}

func (s *Service) Recent(ctx context.Context, limit int64) ([]Project, error) {
	return s.repo.ListRecent(ctx, limit)
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func buildGallery(urls []string) []MediaItem {
	gallery := make([]MediaItem, 0, len(urls))
	for _, raw := range urls {
		url := strings.TrimSpace(raw)
		if url == "" {
			continue
		}
		gallery = append(gallery, MediaItem{
			URL:  url,
			Type: ClassifyMedia(url),
		})
	}
	return gallery
}
