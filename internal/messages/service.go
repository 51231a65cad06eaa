package messages

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = errors.New("message not found")

// Mailer notifies the site owner about a new inquiry. Implemented by the
// notifications package; nil means notifications are disabled.
type Mailer interface {
	SendMessageNotification(ctx context.Context, msg Message) (string, error)
}

type Service struct {
	repo     Repository
	location *time.Location
	mailer   Mailer
	log      *slog.Logger
}

func NewService(repo Repository, location *time.Location, mailer Mailer, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		location: location,
		mailer:   mailer,
		log:      log,
	}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Message, error) {
	msg := Message{
		ID:        primitive.NewObjectID().Hex(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(strings.ToLower(req.Email)),
		Message:   strings.TrimSpace(req.Message),
		CreatedAt: time.Now().In(s.location),
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return Message{}, err
	}

	// Best effort: a broken mailer must not fail the contact form.
	if s.mailer != nil {
		if _, err := s.mailer.SendMessageNotification(ctx, msg); err != nil {
			s.log.Warn("message notification failed",
				slog.String("message_id", msg.ID),
				slog.String("error", err.Error()),
			)
		}
	}

	return msg, nil
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

func (s *Service) List(ctx context.Context, limit, offset int64) ([]Message, int64, error) {
	items, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
