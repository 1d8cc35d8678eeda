// internal/errors/mapper.go
package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

// Domain error kinds. Services return these (possibly wrapped); the HTTP
// layer turns them into status codes via Map. Conflict-on-match-insert is
// deliberately absent: a duplicate match row is resolved by re-fetch inside
// the swipe engine and never reaches a caller as an error.
var (
	// ErrNotFound covers a missing requester, candidate or preference owner.
	ErrNotFound = errors.New("record not found")

	// ErrSelfSwipe rejects a swipe where swiper and swiped are the same user.
	ErrSelfSwipe = errors.New("cannot swipe yourself")

	// ErrAlreadySwiped rejects a second swipe on an ordered pair.
	ErrAlreadySwiped = errors.New("pair already evaluated")

	// ErrTargetInactive rejects swiping a deactivated account.
	ErrTargetInactive = errors.New("target no longer active")
)

// NotFoundf wraps ErrNotFound with a description of what was missing.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}

// IsInvalidInteraction reports whether err is one of the swipe validation
// rejections.
func IsInvalidInteraction(err error) bool {
	return errors.Is(err, ErrSelfSwipe) ||
		errors.Is(err, ErrAlreadySwiped) ||
		errors.Is(err, ErrTargetInactive)
}

// Map converts service/infra errors into an HTTP status and client-safe
// message. Keeps handlers clean by centralizing the mapping.
func Map(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusOK, ""

	case IsNotFound(err):
		return http.StatusNotFound, err.Error()

	case errors.Is(err, ErrSelfSwipe):
		return http.StatusBadRequest, err.Error()

	case errors.Is(err, ErrAlreadySwiped), errors.Is(err, ErrTargetInactive):
		return http.StatusConflict, err.Error()

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "request timed out"

	case errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout, "request was canceled"

	default:
		return http.StatusInternalServerError, "internal error"
	}
}
