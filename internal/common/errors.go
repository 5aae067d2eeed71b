// Package common defines shared constants and sentinel errors used across
// the gestor-ia client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("producto no encontrado")

	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")

	// Auth errors. ErrSessionExpired carries the message shown to the user
	// when a request comes back 401 and the session is torn down.
	ErrUnauthorized   = errors.New("unauthorized")
	ErrSessionExpired = errors.New("Sesión expirada. Por favor inicia sesión nuevamente.")
)
