package booking

import "errors"

var ErrIncompleteFields = errors.New("date, time, players and lanes are required")
var ErrLaneCapacityExceeded = errors.New("too many players per lane")
var ErrIncompleteShoes = errors.New("every shoe entry needs a size")
var ErrShoeCountMismatch = errors.New("shoe count does not match player count")

var ErrBookingFailed = errors.New("booking request failed")
var ErrShoeNotFound = errors.New("shoe entry not found")
var ErrUnknownField = errors.New("unknown booking field")

const (
	MsgIncompleteFields     = "Alla fälten måste vara ifyllda"
	MsgLaneCapacityExceeded = "Det får max vara 4 spelare per bana"
	MsgIncompleteShoes      = "Alla skor måste vara ifyllda"
	MsgShoeCountMismatch    = "Antalet skor måste stämma överens med antal spelare"
	MsgBookingFailed        = "Bokningen kunde inte genomföras, försök igen"
)

// Message returns the text shown to the user for err, or an empty string
// when err is not a booking error.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrIncompleteFields):
		return MsgIncompleteFields
	case errors.Is(err, ErrLaneCapacityExceeded):
		return MsgLaneCapacityExceeded
	case errors.Is(err, ErrIncompleteShoes):
		return MsgIncompleteShoes
	case errors.Is(err, ErrShoeCountMismatch):
		return MsgShoeCountMismatch
	case errors.Is(err, ErrBookingFailed):
		return MsgBookingFailed
	default:
		return ""
	}
}

// IsValidationError reports whether err is one of the draft validation errors.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrIncompleteFields) ||
		errors.Is(err, ErrLaneCapacityExceeded) ||
		errors.Is(err, ErrIncompleteShoes) ||
		errors.Is(err, ErrShoeCountMismatch)
}

func reason(err error) string {
	switch {
	case errors.Is(err, ErrIncompleteFields):
		return "incomplete_fields"
	case errors.Is(err, ErrLaneCapacityExceeded):
		return "lane_capacity_exceeded"
	case errors.Is(err, ErrIncompleteShoes):
		return "incomplete_shoes"
	case errors.Is(err, ErrShoeCountMismatch):
		return "shoe_count_mismatch"
	default:
		return "unknown"
	}
}
