package config

import "errors"

var ErrUnknownSessionBackend = errors.New("unknown session backend")
var ErrMissingSetting = errors.New("missing setting")
