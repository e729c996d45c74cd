package api

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	bk "github.com/hanksha/strajk-bowling/booking"
	"github.com/hanksha/strajk-bowling/confirmation"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	actionAdd    = "add"
	actionSubmit = "submit"
	actionUpdate = "update"

	removePrefix = "remove:"
	shoePrefix   = "shoe-"
)

// Templates parses the HTML views served by WebHandler.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

type shoeField struct {
	ID       string
	Size     string
	Position int
}

type bookingPage struct {
	Draft bk.Draft
	Shoes []shoeField
	Error string
}

type confirmationPage struct {
	Found        bool
	View         confirmation.View
	EmptyMessage string
}

// WebHandler serves the booking form and the confirmation view as HTML.
type WebHandler struct {
	bookings      BookingService
	confirmations ConfirmationService
	flash         *FlashStore
	limiter       *RateLimiter
	logger        *slog.Logger
}

func NewWebHandler(bookings BookingService, confirmations ConfirmationService, flash *FlashStore, limiter *RateLimiter) *WebHandler {
	return &WebHandler{
		bookings:      bookings,
		confirmations: confirmations,
		flash:         flash,
		limiter:       limiter,
		logger:        slog.Default().With("component", "web"),
	}
}

func (h *WebHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/", h.BookingForm)
	rg.POST("/", h.PostBookingForm)
	rg.GET(confirmation.Path, h.Confirmation)
}

func (h *WebHandler) BookingForm(c *gin.Context) {
	h.renderBooking(c, http.StatusOK, h.bookings.Draft(c.Request.Context(), sessionID(c)), "")
}

// PostBookingForm applies the posted form values to the draft and then
// performs the requested action.
func (h *WebHandler) PostBookingForm(c *gin.Context) {
	ctx := c.Request.Context()
	id := sessionID(c)

	draft, err := h.applyForm(ctx, c, id)
	if err != nil {
		c.Error(err)
		h.renderBooking(c, http.StatusBadRequest, draft, "")
		return
	}

	action := c.PostForm("action")

	switch {
	case action == actionAdd:
		h.bookings.AddShoe(ctx, id)
	case strings.HasPrefix(action, removePrefix):
		h.bookings.RemoveShoe(ctx, id, strings.TrimPrefix(action, removePrefix))
	case action == actionSubmit:
		h.submit(c, id)
		return
	case action == actionUpdate, action == "":
	default:
		c.String(http.StatusBadRequest, "unknown action")
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func (h *WebHandler) applyForm(ctx context.Context, c *gin.Context, id string) (bk.Draft, error) {
	fields := map[bk.Field]string{}
	for _, field := range []bk.Field{bk.FieldDate, bk.FieldTime, bk.FieldPeople, bk.FieldLanes} {
		if value, ok := c.GetPostForm(string(field)); ok {
			fields[field] = value
		}
	}

	draft, err := h.bookings.SetFields(ctx, id, fields)
	if err != nil {
		return draft, err
	}

	for _, shoe := range draft.Shoes {
		size, ok := c.GetPostForm(shoePrefix + shoe.ID)
		if !ok || size == shoe.Size {
			continue
		}

		draft, err = h.bookings.UpdateShoe(ctx, id, shoe.ID, size)
		if err != nil && !errors.Is(err, bk.ErrShoeNotFound) {
			return draft, err
		}
	}

	return draft, nil
}

func (h *WebHandler) submit(c *gin.Context, id string) {
	ctx := c.Request.Context()

	if !h.limiter.Allow(c.ClientIP()) {
		h.renderBooking(c, http.StatusTooManyRequests, h.bookings.Draft(ctx, id), "")
		return
	}

	navigator := &redirectNavigator{c: c, flash: h.flash, sessionID: id}

	_, err := h.bookings.Submit(ctx, id, navigator)
	if err == nil {
		return
	}

	c.Error(err)

	status := http.StatusInternalServerError
	switch {
	case bk.IsValidationError(err):
		status = http.StatusBadRequest
	case errors.Is(err, bk.ErrBookingFailed):
		status = http.StatusBadGateway
	}

	h.logger.Info("booking submit rejected", "session", id, "status", status, "err", err)

	message := bk.Message(err)
	if len(message) == 0 {
		message = bk.MsgBookingFailed
	}

	h.renderBooking(c, status, h.bookings.Draft(ctx, id), message)
}

func (h *WebHandler) Confirmation(c *gin.Context) {
	id := sessionID(c)
	state, _ := h.flash.Take(c.Query("state"), id)

	details, found := h.confirmations.Confirmation(c.Request.Context(), id, state)

	page := confirmationPage{Found: found, EmptyMessage: confirmation.EmptyMessage}
	if found {
		page.View = confirmation.NewView(details)
	}

	c.HTML(http.StatusOK, "confirmation.html", page)
}

func (h *WebHandler) renderBooking(c *gin.Context, status int, draft bk.Draft, message string) {
	shoes := make([]shoeField, 0, len(draft.Shoes))
	for i, shoe := range draft.Shoes {
		shoes = append(shoes, shoeField{ID: shoe.ID, Size: shoe.Size, Position: i + 1})
	}

	c.HTML(status, "booking.html", bookingPage{Draft: draft, Shoes: shoes, Error: message})
}
