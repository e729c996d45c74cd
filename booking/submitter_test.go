package booking_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	bk "github.com/hanksha/strajk-bowling/booking"
	bk_mocks "github.com/hanksha/strajk-bowling/booking/mocks"
	"github.com/hanksha/strajk-bowling/bookingapi"
	api_mocks "github.com/hanksha/strajk-bowling/bookingapi/mocks"
	"github.com/hanksha/strajk-bowling/confirmation"
	"github.com/hanksha/strajk-bowling/session"
	session_mocks "github.com/hanksha/strajk-bowling/session/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	client    *api_mocks.MockBookingClient
	navigator *bk_mocks.MockNavigator
	sessions  *session.MemoryManager
	submitter *bk.Submitter
	ctx       context.Context
}

func newTestDeps(t *testing.T) (*gomock.Controller, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	client := api_mocks.NewMockBookingClient(ctrl)
	navigator := bk_mocks.NewMockNavigator(ctrl)
	sessions := session.NewMemoryManager(time.Hour)
	submitter := bk.NewSubmitter(client, sessions)

	return ctrl, testDeps{
		client: client, navigator: navigator, sessions: sessions, submitter: submitter, ctx: context.Background(),
	}
}

func filledDraft(players, lanes int, sizes ...string) bk.Draft {
	return bk.Draft{Date: "2023-12-25", Time: "18:00", Players: players, Lanes: lanes, Shoes: shoes(sizes...)}
}

func storedConfirmation(t *testing.T, deps testDeps, sessionID string) (confirmation.Details, bool) {
	t.Helper()
	raw, found, err := deps.sessions.Open(sessionID).Get(deps.ctx, confirmation.SessionKey)
	require.Nil(t, err)
	if !found {
		return confirmation.Details{}, false
	}

	var details confirmation.Details
	require.Nil(t, json.Unmarshal([]byte(raw), &details))
	return details, true
}

func TestSubmit(t *testing.T) {
	booked := confirmation.Details{
		When:      "2023-12-25T18:00",
		Lanes:     1,
		People:    4,
		Shoes:     []string{"42", "42", "42", "42"},
		BookingID: "STR1234ABCD",
		Price:     580,
		Active:    true,
	}

	t.Run("four players on one lane", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		expectedRequest := bookingapi.Request{When: "2023-12-25T18:00", Lanes: 1, People: 4, Shoes: []string{"42", "42", "42", "42"}}
		deps.client.EXPECT().Book(gomock.Any(), expectedRequest).Return(booked, nil).Times(1)
		deps.navigator.EXPECT().NavigateTo("/confirmation", confirmation.NavigationState{ConfirmationDetails: &booked}).
			DoAndReturn(func(path string, state confirmation.NavigationState) error {
				stored, found := storedConfirmation(t, deps, "s1")
				require.True(t, found)
				require.Equal(t, booked, stored)
				return nil
			}).Times(1)

		details, err := deps.submitter.Submit(deps.ctx, "s1", filledDraft(4, 1, "42", "42", "42", "42"), deps.navigator)

		require.Nil(t, err)
		require.Equal(t, 580, details.Price)
	})

	t.Run("five players on one lane", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.client.EXPECT().Book(gomock.Any(), gomock.Any()).Times(0)
		deps.navigator.EXPECT().NavigateTo(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.submitter.Submit(deps.ctx, "s1", filledDraft(5, 1, "42", "42", "42", "42", "42"), deps.navigator)

		require.ErrorIs(t, err, bk.ErrLaneCapacityExceeded)
		require.Equal(t, "Det får max vara 4 spelare per bana", bk.Message(err))
	})

	t.Run("two players without shoes", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.client.EXPECT().Book(gomock.Any(), gomock.Any()).Times(0)
		deps.navigator.EXPECT().NavigateTo(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.submitter.Submit(deps.ctx, "s1", filledDraft(2, 1), deps.navigator)

		require.ErrorIs(t, err, bk.ErrShoeCountMismatch)
		require.Equal(t, "Antalet skor måste stämma överens med antal spelare", bk.Message(err))
	})

	t.Run("api error", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.client.EXPECT().Book(gomock.Any(), gomock.Any()).Return(confirmation.Details{}, errors.New("api error")).Times(1)
		deps.navigator.EXPECT().NavigateTo(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.submitter.Submit(deps.ctx, "s1", filledDraft(2, 1, "42", "39"), deps.navigator)

		require.ErrorIs(t, err, bk.ErrBookingFailed)
		_, found := storedConfirmation(t, deps, "s1")
		require.False(t, found)
	})

	t.Run("new booking replaces stored confirmation", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		require.Nil(t, deps.sessions.Open("s1").Set(deps.ctx, confirmation.SessionKey, `{"bookingId":"OLD"}`))
		deps.client.EXPECT().Book(gomock.Any(), gomock.Any()).Return(booked, nil).Times(1)
		deps.navigator.EXPECT().NavigateTo(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		_, err := deps.submitter.Submit(deps.ctx, "s1", filledDraft(4, 1, "42", "42", "42", "42"), deps.navigator)

		require.Nil(t, err)
		stored, _ := storedConfirmation(t, deps, "s1")
		require.Equal(t, "STR1234ABCD", stored.BookingID)
	})

	t.Run("persist failure still navigates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := api_mocks.NewMockBookingClient(ctrl)
		navigator := bk_mocks.NewMockNavigator(ctrl)
		sessions := session_mocks.NewMockManager(ctrl)
		store := session_mocks.NewMockStore(ctrl)
		submitter := bk.NewSubmitter(client, sessions)

		client.EXPECT().Book(gomock.Any(), gomock.Any()).Return(booked, nil).Times(1)
		sessions.EXPECT().Open("s1").Return(store).Times(1)
		store.EXPECT().Set(gomock.Any(), confirmation.SessionKey, gomock.Any()).Return(errors.New("readonly")).Times(1)
		navigator.EXPECT().NavigateTo("/confirmation", gomock.Any()).Return(nil).Times(1)

		details, err := submitter.Submit(context.Background(), "s1", filledDraft(4, 1, "42", "42", "42", "42"), navigator)

		require.Nil(t, err)
		require.Equal(t, "STR1234ABCD", details.BookingID)
	})

	t.Run("navigation error", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.client.EXPECT().Book(gomock.Any(), gomock.Any()).Return(booked, nil).Times(1)
		deps.navigator.EXPECT().NavigateTo(gomock.Any(), gomock.Any()).Return(errors.New("no route")).Times(1)

		_, err := deps.submitter.Submit(deps.ctx, "s1", filledDraft(4, 1, "42", "42", "42", "42"), deps.navigator)

		require.Error(t, err)
		require.NotErrorIs(t, err, bk.ErrBookingFailed)
	})

	t.Run("concurrent submits both confirm", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		book, started, release := blockingBook(booked)
		deps.client.EXPECT().Book(gomock.Any(), gomock.Any()).DoAndReturn(book).MinTimes(1).MaxTimes(2)
		deps.navigator.EXPECT().NavigateTo("/confirmation", gomock.Any()).Return(nil).Times(2)

		draft := filledDraft(4, 1, "42", "42", "42", "42")
		results := make([]confirmation.Details, 2)
		errs := make([]error, 2)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			results[0], errs[0] = deps.submitter.Submit(deps.ctx, "s1", draft, deps.navigator)
		}()
		<-started
		go func() {
			defer wg.Done()
			results[1], errs[1] = deps.submitter.Submit(deps.ctx, "s1", draft, deps.navigator)
		}()
		close(release)
		wg.Wait()

		require.Nil(t, errs[0])
		require.Nil(t, errs[1])
		require.Equal(t, results[0], results[1])
	})

	t.Run("cancelled caller does not fail the booking", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		book, started, release := blockingBook(booked)
		deps.client.EXPECT().Book(gomock.Any(), gomock.Any()).DoAndReturn(book).MinTimes(1).MaxTimes(2)
		deps.navigator.EXPECT().NavigateTo("/confirmation", gomock.Any()).Return(nil).Times(1)

		draft := filledDraft(4, 1, "42", "42", "42", "42")
		firstCtx, cancel := context.WithCancel(deps.ctx)

		firstErr := make(chan error, 1)
		go func() {
			_, err := deps.submitter.Submit(firstCtx, "s1", draft, deps.navigator)
			firstErr <- err
		}()
		<-started
		cancel()
		require.ErrorIs(t, <-firstErr, context.Canceled)

		type outcome struct {
			details confirmation.Details
			err     error
		}
		second := make(chan outcome, 1)
		go func() {
			details, err := deps.submitter.Submit(deps.ctx, "s1", draft, deps.navigator)
			second <- outcome{details, err}
		}()
		close(release)

		result := <-second
		require.Nil(t, result.err)
		require.Equal(t, "STR1234ABCD", result.details.BookingID)

		stored, found := storedConfirmation(t, deps, "s1")
		require.True(t, found)
		require.Equal(t, booked, stored)
	})
}

// blockingBook answers the first booking call only after release is closed
// and fails any call whose context is already done. Later calls answer at once.
func blockingBook(details confirmation.Details) (func(context.Context, bookingapi.Request) (confirmation.Details, error), <-chan struct{}, chan struct{}) {
	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32

	book := func(ctx context.Context, request bookingapi.Request) (confirmation.Details, error) {
		if calls.Add(1) == 1 {
			close(started)
			<-release
		}
		if err := ctx.Err(); err != nil {
			return confirmation.Details{}, err
		}
		return details, nil
	}

	return book, started, release
}
