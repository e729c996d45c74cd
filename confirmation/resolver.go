package confirmation

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/hanksha/strajk-bowling/metrics"
	"github.com/hanksha/strajk-bowling/session"
)

// Resolver picks the confirmation to display. Navigation state always wins
// over the copy kept in the session store.
type Resolver struct {
	validate *validator.Validate
	logger   *slog.Logger
}

func NewResolver() *Resolver {
	return &Resolver{
		validate: validator.New(),
		logger:   slog.Default().With("component", "confirmation"),
	}
}

// Resolve returns the details to display and false when there is nothing to
// show. A navigation payload is written back to the store so that it
// survives a reload.
func (r *Resolver) Resolve(ctx context.Context, state NavigationState, store session.Store) (Details, bool) {
	if state.ConfirmationDetails != nil {
		details := *state.ConfirmationDetails
		r.remember(ctx, details, store)
		r.checkPrice(details)
		metrics.RecordConfirmationResolved(metrics.SourceNavigation)
		return details, true
	}

	raw, found, err := store.Get(ctx, SessionKey)

	if err != nil {
		r.logger.Warn("failed to read stored confirmation", "err", err)
		metrics.RecordConfirmationResolved(metrics.SourceNone)
		return Details{}, false
	}

	if !found || len(raw) == 0 {
		metrics.RecordConfirmationResolved(metrics.SourceNone)
		return Details{}, false
	}

	var details Details
	if err := json.Unmarshal([]byte(raw), &details); err != nil {
		r.logger.Warn("stored confirmation is not valid JSON", "err", err)
		metrics.RecordConfirmationResolved(metrics.SourceNone)
		return Details{}, false
	}

	if err := r.validate.Struct(details); err != nil {
		r.logger.Warn("stored confirmation is incomplete", "err", err)
		metrics.RecordConfirmationResolved(metrics.SourceNone)
		return Details{}, false
	}

	r.checkPrice(details)
	metrics.RecordConfirmationResolved(metrics.SourceSession)

	return details, true
}

func (r *Resolver) remember(ctx context.Context, details Details, store session.Store) {
	encoded, err := json.Marshal(details)
	if err != nil {
		r.logger.Error("failed to encode confirmation", "err", err)
		return
	}

	if err := store.Set(ctx, SessionKey, string(encoded)); err != nil {
		r.logger.Warn("failed to store confirmation", "bookingId", details.BookingID, "err", err)
	}
}

// checkPrice only logs. The price shown is always the one from the API.
func (r *Resolver) checkPrice(details Details) {
	if expected := Price(details.People, details.Lanes); expected != details.Price {
		r.logger.Warn("booking price differs from local calculation",
			"bookingId", details.BookingID,
			"price", details.Price,
			"expected", expected,
		)
	}
}
