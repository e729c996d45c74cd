package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	bk "github.com/hanksha/strajk-bowling/booking"
	"github.com/hanksha/strajk-bowling/confirmation"
)

//go:generate mockgen -source=booking_handler.go -destination=mocks/booking_handler_mock.go

type BookingService interface {
	Draft(ctx context.Context, sessionID string) bk.Draft
	SetFields(ctx context.Context, sessionID string, fields map[bk.Field]string) (bk.Draft, error)
	AddShoe(ctx context.Context, sessionID string) bk.Draft
	UpdateShoe(ctx context.Context, sessionID, id, size string) (bk.Draft, error)
	RemoveShoe(ctx context.Context, sessionID, id string) bk.Draft
	Submit(ctx context.Context, sessionID string, navigator bk.Navigator) (confirmation.Details, error)
}

type ConfirmationService interface {
	Confirmation(ctx context.Context, sessionID string, state confirmation.NavigationState) (confirmation.Details, bool)
}

type BookingHandler struct {
	bookings      BookingService
	confirmations ConfirmationService
	flash         *FlashStore
	limiter       *RateLimiter
}

func NewBookingHandler(bookings BookingService, confirmations ConfirmationService, flash *FlashStore, limiter *RateLimiter) *BookingHandler {
	return &BookingHandler{
		bookings:      bookings,
		confirmations: confirmations,
		flash:         flash,
		limiter:       limiter,
	}
}

func (h *BookingHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/draft", h.GetDraft)
	rg.PUT("/draft/fields", h.SetFields)
	rg.POST("/draft/shoes", h.AddShoe)
	rg.PUT("/draft/shoes/:id", h.UpdateShoe)
	rg.DELETE("/draft/shoes/:id", h.RemoveShoe)
	rg.POST("/submit", RateLimit(h.limiter), h.Submit)
	rg.GET("/confirmation", h.GetConfirmation)
}

func (h *BookingHandler) GetDraft(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, h.bookings.Draft(c.Request.Context(), sessionID(c)))
}

func (h *BookingHandler) SetFields(c *gin.Context) {
	var body map[string]string

	if err := c.BindJSON(&body); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	fields := make(map[bk.Field]string, len(body))
	for name, value := range body {
		fields[bk.Field(name)] = value
	}

	draft, err := h.bookings.SetFields(c.Request.Context(), sessionID(c), fields)

	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, draft)
}

func (h *BookingHandler) AddShoe(c *gin.Context) {
	c.IndentedJSON(http.StatusCreated, h.bookings.AddShoe(c.Request.Context(), sessionID(c)))
}

type shoeSizeBody struct {
	Size *string `json:"size" binding:"required"`
}

func (h *BookingHandler) UpdateShoe(c *gin.Context) {
	var body shoeSizeBody

	if err := c.BindJSON(&body); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	draft, err := h.bookings.UpdateShoe(c.Request.Context(), sessionID(c), c.Param("id"), *body.Size)

	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, draft)
}

func (h *BookingHandler) RemoveShoe(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, h.bookings.RemoveShoe(c.Request.Context(), sessionID(c), c.Param("id")))
}

func (h *BookingHandler) Submit(c *gin.Context) {
	id := sessionID(c)
	navigator := &jsonNavigator{flash: h.flash, sessionID: id}

	_, err := h.bookings.Submit(c.Request.Context(), id, navigator)

	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.IndentedJSON(http.StatusCreated, navigationResponse{
		NavigateTo: navigator.path,
		State:      navigator.state,
		Token:      navigator.token,
	})
}

// GetConfirmation resolves the confirmation of the session. A state token
// from a previous submit of the same session takes precedence over the
// stored booking.
func (h *BookingHandler) GetConfirmation(c *gin.Context) {
	id := sessionID(c)
	state, _ := h.flash.Take(c.Query("state"), id)

	details, found := h.confirmations.Confirmation(c.Request.Context(), id, state)

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": confirmation.EmptyMessage})
		return
	}

	c.IndentedJSON(http.StatusOK, details)
}

func writeBookingError(c *gin.Context, err error) {
	c.Error(err)

	switch {
	case bk.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": bk.Message(err)})
	case errors.Is(err, bk.ErrBookingFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": bk.Message(err)})
	case errors.Is(err, bk.ErrShoeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "shoe entry not found"})
	case errors.Is(err, bk.ErrUnknownField):
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown booking field"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit booking"})
	}
}
