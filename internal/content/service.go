package content

import (
	"context"
	"strings"
	"time"
)

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

// Get returns the stored copy, or the default empty shape when the row has
// never been written.
func (s *Service) Get(ctx context.Context) (SiteContent, error) {
	item, found, err := s.repo.Get(ctx)
	if err != nil {
		return SiteContent{}, err
	}
	if !found {
		return SiteContent{Key: singletonKey}, nil
	}
	return item, nil
}

func (s *Service) Save(ctx context.Context, req UpsertRequest) (SiteContent, error) {
	item := SiteContent{
		Key:            singletonKey,
		HomeHeading:    strings.TrimSpace(req.HomeHeading),
		HomeSubheading: strings.TrimSpace(req.HomeSubheading),
		AboutBio:       strings.TrimSpace(req.AboutBio),
		AboutImageURL:  strings.TrimSpace(req.AboutImageURL),
		UpdatedAt:      time.Now().In(s.location),
	}

	if err := s.repo.Upsert(ctx, item); err != nil {
		return SiteContent{}, err
	}
	return item, nil
}
