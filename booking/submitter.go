package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hanksha/strajk-bowling/bookingapi"
	"github.com/hanksha/strajk-bowling/confirmation"
	"github.com/hanksha/strajk-bowling/metrics"
	"github.com/hanksha/strajk-bowling/session"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=submitter.go -destination=mocks/submitter_mock.go

type Navigator interface {
	NavigateTo(path string, state confirmation.NavigationState) error
}

// Submitter sends validated drafts to the booking API. Concurrent submits of
// the same session share a single API call.
type Submitter struct {
	client   bookingapi.BookingClient
	sessions session.Manager
	inflight singleflight.Group
	logger   *slog.Logger
}

func NewSubmitter(client bookingapi.BookingClient, sessions session.Manager) *Submitter {
	return &Submitter{
		client:   client,
		sessions: sessions,
		logger:   slog.Default().With("component", "submitter"),
	}
}

// Submit validates draft, books it, stores the confirmation in the session
// and navigates to the confirmation view. Validation errors are returned
// as is; API failures wrap ErrBookingFailed.
func (s *Submitter) Submit(ctx context.Context, sessionID string, draft Draft, navigator Navigator) (confirmation.Details, error) {
	if err := Validate(draft); err != nil {
		metrics.RecordValidationFailure(reason(err))
		metrics.RecordSubmission(metrics.OutcomeInvalid)
		return confirmation.Details{}, err
	}

	// The shared booking ignores caller cancellation; each caller stops
	// waiting on its own ctx.
	flight := s.inflight.DoChan(sessionID, func() (any, error) {
		return s.book(context.WithoutCancel(ctx), sessionID, draft)
	})

	var result singleflight.Result
	select {
	case <-ctx.Done():
		s.logger.Info("submit abandoned while booking in flight", "session", sessionID, "err", ctx.Err())
		return confirmation.Details{}, fmt.Errorf("submit abandoned: %w", ctx.Err())
	case result = <-flight:
	}

	if result.Err != nil {
		return confirmation.Details{}, result.Err
	}

	if result.Shared {
		s.logger.Info("joined booking already in flight", "session", sessionID)
	}

	details := result.Val.(confirmation.Details)

	err := navigator.NavigateTo(confirmation.Path, confirmation.NavigationState{ConfirmationDetails: &details})
	if err != nil {
		return details, fmt.Errorf("failed to navigate to confirmation: %w", err)
	}

	return details, nil
}

func (s *Submitter) book(ctx context.Context, sessionID string, draft Draft) (confirmation.Details, error) {
	details, err := s.client.Book(ctx, draft.Request())

	if err != nil {
		s.logger.Error("booking request failed", "session", sessionID, "err", err)
		metrics.RecordSubmission(metrics.OutcomeFailed)
		return confirmation.Details{}, fmt.Errorf("%w: %w", ErrBookingFailed, err)
	}

	metrics.RecordSubmission(metrics.OutcomeBooked)
	s.logger.Info("booking confirmed", "session", sessionID, "bookingId", details.BookingID, "price", details.Price)

	encoded, err := json.Marshal(details)
	if err != nil {
		s.logger.Error("failed to encode confirmation", "bookingId", details.BookingID, "err", err)
		return details, nil
	}

	if err := s.sessions.Open(sessionID).Set(ctx, confirmation.SessionKey, string(encoded)); err != nil {
		s.logger.Error("failed to persist confirmation", "bookingId", details.BookingID, "err", err)
	}

	return details, nil
}
