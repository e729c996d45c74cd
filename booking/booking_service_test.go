package booking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	bk "github.com/hanksha/strajk-bowling/booking"
	"github.com/hanksha/strajk-bowling/confirmation"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func fillDraft(t *testing.T, service *bk.Service, sessionID string, players, lanes string, sizes ...string) bk.Draft {
	t.Helper()

	draft, err := service.SetFields(context.Background(), sessionID, map[bk.Field]string{
		bk.FieldDate:   "2023-12-25",
		bk.FieldTime:   "18:00",
		bk.FieldPeople: players,
		bk.FieldLanes:  lanes,
	})
	require.Nil(t, err)

	for _, size := range sizes {
		draft = service.AddShoe(context.Background(), sessionID)
		draft, err = service.UpdateShoe(context.Background(), sessionID, draft.Shoes[len(draft.Shoes)-1].ID, size)
		require.Nil(t, err)
	}

	return draft
}

func TestServiceDraft(t *testing.T) {

	t.Run("sessions have separate drafts", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()
		service := bk.NewService(deps.submitter, time.Hour)

		fillDraft(t, service, "s1", "2", "1", "42")

		require.Equal(t, 2, service.Draft(deps.ctx, "s1").Players)
		require.Len(t, service.Draft(deps.ctx, "s1").Shoes, 1)
		require.Equal(t, bk.Draft{Shoes: []bk.ShoeEntry{}}, service.Draft(deps.ctx, "s2"))
	})

	t.Run("unknown field applies nothing", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()
		service := bk.NewService(deps.submitter, time.Hour)

		draft, err := service.SetFields(deps.ctx, "s1", map[bk.Field]string{
			bk.FieldPeople: "3",
			"color":        "red",
		})

		require.ErrorIs(t, err, bk.ErrUnknownField)
		require.Equal(t, 0, draft.Players)
	})

	t.Run("update unknown shoe", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()
		service := bk.NewService(deps.submitter, time.Hour)

		_, err := service.UpdateShoe(deps.ctx, "s1", "missing", "42")

		require.ErrorIs(t, err, bk.ErrShoeNotFound)
	})

	t.Run("remove shoe", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()
		service := bk.NewService(deps.submitter, time.Hour)

		draft := fillDraft(t, service, "s1", "2", "1", "42", "39")
		draft = service.RemoveShoe(deps.ctx, "s1", draft.Shoes[0].ID)

		require.Equal(t, []string{"39"}, draft.ShoeSizes())
	})
}

func TestServiceSubmit(t *testing.T) {
	booked := confirmation.Details{
		When:      "2023-12-25T18:00",
		Lanes:     1,
		People:    2,
		Shoes:     []string{"42", "39"},
		BookingID: "STR0042WXYZ",
		Price:     340,
		Active:    true,
	}

	t.Run("success discards draft", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()
		service := bk.NewService(deps.submitter, time.Hour)

		fillDraft(t, service, "s1", "2", "1", "42", "39")
		deps.client.EXPECT().Book(gomock.Any(), gomock.Any()).Return(booked, nil).Times(1)
		deps.navigator.EXPECT().NavigateTo("/confirmation", gomock.Any()).Return(nil).Times(1)

		details, err := service.Submit(deps.ctx, "s1", deps.navigator)

		require.Nil(t, err)
		require.Equal(t, booked, details)
		require.Equal(t, bk.Draft{Shoes: []bk.ShoeEntry{}}, service.Draft(deps.ctx, "s1"))
	})

	t.Run("validation error keeps draft", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()
		service := bk.NewService(deps.submitter, time.Hour)

		fillDraft(t, service, "s1", "2", "1", "42")
		deps.client.EXPECT().Book(gomock.Any(), gomock.Any()).Times(0)
		deps.navigator.EXPECT().NavigateTo(gomock.Any(), gomock.Any()).Times(0)

		_, err := service.Submit(deps.ctx, "s1", deps.navigator)

		require.ErrorIs(t, err, bk.ErrShoeCountMismatch)
		require.Len(t, service.Draft(deps.ctx, "s1").Shoes, 1)
	})

	t.Run("api error keeps draft", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()
		service := bk.NewService(deps.submitter, time.Hour)

		fillDraft(t, service, "s1", "2", "1", "42", "39")
		deps.client.EXPECT().Book(gomock.Any(), gomock.Any()).Return(confirmation.Details{}, errors.New("timeout")).Times(1)
		deps.navigator.EXPECT().NavigateTo(gomock.Any(), gomock.Any()).Times(0)

		_, err := service.Submit(deps.ctx, "s1", deps.navigator)

		require.ErrorIs(t, err, bk.ErrBookingFailed)
		require.Equal(t, "Bokningen kunde inte genomföras, försök igen", bk.Message(err))
		require.Equal(t, 2, service.Draft(deps.ctx, "s1").Players)
	})
}
