package domain

import "errors"

// ErrServiceUnavailable is returned when the chain RPC or database cannot be
// reached; callers treat it as transient and retry on the next cycle
var ErrServiceUnavailable = errors.New("service temporarily unavailable")
