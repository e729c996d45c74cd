package bookingapi

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hanksha/strajk-bowling/confirmation"
)

// Stub serves the booking API locally so the front end can run without the
// hosted backend.
type Stub struct {
	key    string
	logger *slog.Logger
}

func NewStub(key string) *Stub {
	return &Stub{
		key:    key,
		logger: slog.Default().With("component", "bookingapi-stub"),
	}
}

func (s *Stub) Register(rg *gin.RouterGroup) {
	rg.GET("/key", s.Key)
	rg.POST("/booking", s.Book)
}

func (s *Stub) Key(c *gin.Context) {
	c.JSON(http.StatusOK, KeyResponse{Key: s.key})
}

func (s *Stub) Book(c *gin.Context) {
	if c.GetHeader("x-api-key") != s.key {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid api key"})
		return
	}

	var request Request

	if err := c.BindJSON(&request); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	if len(strings.TrimSpace(request.When)) == 0 || request.People <= 0 || request.Lanes <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "when, people and lanes are required"})
		return
	}

	details := confirmation.Details{
		When:      request.When,
		Lanes:     request.Lanes,
		People:    request.People,
		Shoes:     request.Shoes,
		BookingID: NewBookingID(),
		Price:     confirmation.Price(request.People, request.Lanes),
		Active:    true,
	}

	s.logger.Info("booking created", "bookingId", details.BookingID, "people", details.People, "lanes", details.Lanes)

	c.JSON(http.StatusOK, Response{BookingDetails: details})
}

// NewBookingID returns an id like "STR4821QKZA".
func NewBookingID() string {
	id := uuid.New()

	digits := (int(id[0])<<8 | int(id[1])) % 10000

	var letters strings.Builder
	for _, b := range id[2:6] {
		letters.WriteByte('A' + b%26)
	}

	return fmt.Sprintf("STR%04d%s", digits, letters.String())
}
