package bookingapi

import "errors"

var ErrUnauthorized = errors.New("booking api rejected the api key")
var ErrInvalidResponse = errors.New("invalid booking api response")
