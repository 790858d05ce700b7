package domain

import "errors"

// Token verification failure kinds. The transport layer collapses all three
// into a single authentication failure so callers cannot probe verification
// internals; the distinction exists for logging and metrics only.
var ErrTokenMalformed = errors.New("token malformed")
var ErrTokenSignature = errors.New("token signature invalid")
var ErrTokenExpired = errors.New("token expired")
