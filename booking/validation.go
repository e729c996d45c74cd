package booking

import "strings"

const MaxPlayersPerLane = 4

// Validate checks a draft before it is sent to the booking API. Rules are
// checked in order and the first failing one is returned.
func Validate(draft Draft) error {
	if isBlank(draft.Date) || isBlank(draft.Time) || draft.Players <= 0 || draft.Lanes <= 0 {
		return ErrIncompleteFields
	}

	// players > lanes*MaxPlayersPerLane without the multiply, which can overflow.
	if (draft.Players-1)/MaxPlayersPerLane >= draft.Lanes {
		return ErrLaneCapacityExceeded
	}

	for _, shoe := range draft.Shoes {
		if isBlank(shoe.Size) {
			return ErrIncompleteShoes
		}
	}

	if len(draft.Shoes) != draft.Players {
		return ErrShoeCountMismatch
	}

	return nil
}

func isBlank(s string) bool {
	return len(strings.TrimSpace(s)) == 0
}
