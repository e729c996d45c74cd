package bookingapi

import "github.com/hanksha/strajk-bowling/confirmation"

// Request is the booking payload sent to the booking API.
type Request struct {
	When   string   `json:"when"`
	Lanes  int      `json:"lanes"`
	People int      `json:"people"`
	Shoes  []string `json:"shoes"`
}

type Response struct {
	BookingDetails confirmation.Details `json:"bookingDetails"`
}

type KeyResponse struct {
	Key string `json:"key"`
}
