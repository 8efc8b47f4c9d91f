package errs

import "errors"

// Sentinels mapped to HTTP status codes in the rest layer.
var (
	ErrUpstream    = errors.New("twitch request failed")
	ErrJoin        = errors.New("no unique match for account")
	ErrInvalidSize = errors.New("invalid size")
)
