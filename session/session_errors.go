package session

import "errors"

var ErrEmptySessionID = errors.New("session id cannot be empty")
