package confirmation

import (
	"fmt"
	"strconv"
	"strings"
)

// SessionKey is the session store key holding the JSON encoded Details of
// the latest booking.
const SessionKey = "confirmation"

// Path of the confirmation view.
const Path = "/confirmation"

const EmptyMessage = "Inga bokning gjord!"

const (
	PricePerPlayer = 120
	PricePerLane   = 100
)

// Details is the booking confirmation returned by the booking API.
type Details struct {
	When      string   `json:"when"`
	Lanes     int      `json:"lanes" validate:"gte=0"`
	People    int      `json:"people" validate:"gte=0"`
	Shoes     []string `json:"shoes"`
	BookingID string   `json:"bookingId" validate:"required"`
	Price     int      `json:"price" validate:"gte=0"`
	Active    bool     `json:"active"`
}

// NavigationState is the payload carried along when navigating to the
// confirmation view.
type NavigationState struct {
	ConfirmationDetails *Details `json:"confirmationDetails,omitempty"`
}

// Price is the total the booking API charges: 120 sek per player and 100 sek
// per lane.
func Price(players, lanes int) int {
	return players*PricePerPlayer + lanes*PricePerLane
}

// View holds the display strings of the confirmation view.
type View struct {
	When          string
	Who           string
	Lanes         string
	BookingNumber string
	Total         string
}

func NewView(details Details) View {
	return View{
		When:          strings.Replace(details.When, "T", " ", 1),
		Who:           strconv.Itoa(details.People),
		Lanes:         strconv.Itoa(details.Lanes),
		BookingNumber: details.BookingID,
		Total:         fmt.Sprintf("%d sek", details.Price),
	}
}
