package booking

import (
	"context"
	"log/slog"
	"time"

	"github.com/hanksha/strajk-bowling/confirmation"
	"github.com/patrickmn/go-cache"
)

// Service keeps one booking Controller per session and submits its draft.
type Service struct {
	drafts    *cache.Cache
	submitter *Submitter
	logger    *slog.Logger
}

func NewService(submitter *Submitter, draftTTL time.Duration) *Service {
	return &Service{
		drafts:    cache.New(draftTTL, 2*draftTTL),
		submitter: submitter,
		logger:    slog.Default().With("component", "booking"),
	}
}

func (s *Service) controller(sessionID string) *Controller {
	if cached, found := s.drafts.Get(sessionID); found {
		controller := cached.(*Controller)
		s.drafts.Set(sessionID, controller, cache.DefaultExpiration)
		return controller
	}

	controller := NewController()
	if err := s.drafts.Add(sessionID, controller, cache.DefaultExpiration); err != nil {
		if cached, found := s.drafts.Get(sessionID); found {
			return cached.(*Controller)
		}
	}

	return controller
}

func (s *Service) Draft(_ context.Context, sessionID string) Draft {
	return s.controller(sessionID).Draft()
}

// SetFields applies every field in fields. Nothing is applied when one of
// the names is not a form field.
func (s *Service) SetFields(_ context.Context, sessionID string, fields map[Field]string) (Draft, error) {
	controller := s.controller(sessionID)

	for field := range fields {
		if !IsField(string(field)) {
			return controller.Draft(), ErrUnknownField
		}
	}

	for field, value := range fields {
		if _, err := controller.SetField(field, value); err != nil {
			return controller.Draft(), err
		}
	}

	return controller.Draft(), nil
}

func (s *Service) AddShoe(_ context.Context, sessionID string) Draft {
	return s.controller(sessionID).AddShoe()
}

func (s *Service) UpdateShoe(_ context.Context, sessionID, id, size string) (Draft, error) {
	return s.controller(sessionID).UpdateShoe(id, size)
}

func (s *Service) RemoveShoe(_ context.Context, sessionID, id string) Draft {
	return s.controller(sessionID).RemoveShoe(id)
}

// Submit books the current draft of the session. The draft is discarded
// once the booking is confirmed.
func (s *Service) Submit(ctx context.Context, sessionID string, navigator Navigator) (confirmation.Details, error) {
	draft := s.controller(sessionID).Draft()

	details, err := s.submitter.Submit(ctx, sessionID, draft, navigator)
	if err != nil {
		if IsValidationError(err) {
			s.logger.Info("booking draft rejected", "session", sessionID, "reason", reason(err))
		}
		return details, err
	}

	s.drafts.Delete(sessionID)

	return details, nil
}
