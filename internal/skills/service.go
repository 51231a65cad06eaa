package skills

import (
	"context"
	"errors"
	"strings"
	"time"

	"folio-backend/internal/tags"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("skill not found")

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

// Upsert inserts when the request carries no ID, otherwise updates that row.
func (s *Service) Upsert(ctx context.Context, req UpsertRequest) (Skill, bool, error) {
	if strings.TrimSpace(req.ID) == "" {
		item, err := s.create(ctx, req)
		return item, err == nil, err
	}
	item, err := s.update(ctx, strings.TrimSpace(req.ID), req)
	return item, false, err
}

func (s *Service) create(ctx context.Context, req UpsertRequest) (Skill, error) {
	now := time.Now().In(s.location)
	item := Skill{
		ID:          primitive.NewObjectID().Hex(),
		Name:        strings.TrimSpace(req.Name),
		ImageURL:    strings.TrimSpace(req.ImageURL),
		Description: strings.TrimSpace(req.Description),
		Tags:        tags.Normalize(req.Tags),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return Skill{}, err
	}
	return item, nil
}

func (s *Service) update(ctx context.Context, id string, req UpsertRequest) (Skill, error) {
	set := bson.M{
		"name":        strings.TrimSpace(req.Name),
		"image_url":   strings.TrimSpace(req.ImageURL),
		"description": strings.TrimSpace(req.Description),
		"tags":        tags.Normalize(req.Tags),
		"updated_at":  time.Now().In(s.location),
	}

	updated, err := s.repo.Update(ctx, id, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Skill{}, ErrNotFound
		}
		return Skill{}, err
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

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Skill, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(items, filter), nil
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// Filter matches the query case-insensitively against name and tags. Pure;
// never touches the repository.
func Filter(items []Skill, filter ListFilter) []Skill {
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	if query == "" {
		return items
	}

	out := make([]Skill, 0, len(items))
	for _, s := range items {
		if matchesQuery(s, query) {
			out = append(out, s)
		}
	}
	return out
}

func matchesQuery(s Skill, query string) bool {
	if strings.Contains(strings.ToLower(s.Name), query) {
		return true
	}
	for _, tag := range s.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
