package usecase

import "errors"

// ErrSessionNotFound is returned for an out of range session index.
var ErrSessionNotFound = errors.New("session not found")
