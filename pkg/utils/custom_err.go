package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes carried in APIResponse.ErrorCode.
const (
	CodeNotFound           = "NOT_FOUND"
	CodeValidation         = "VALIDATION_ERROR"
	CodeConflict           = "CONFLICT"
	CodeInternal           = "INTERNAL_ERROR"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeForbidden          = "FORBIDDEN"
	CodeRateLimited        = "RATE_LIMITED"
)

var (
	ErrTripNotFound       = errors.New("trip not found")
	ErrDayNotFound        = errors.New("trip day not found")
	ErrPlaceNotFound      = errors.New("place not found")
	ErrCityNotFound       = errors.New("city not found")
	ErrActivityNotFound   = errors.New("activity not found")
	ErrAttachmentNotFound = errors.New("day attachment not found")
	ErrGroupNotFound      = errors.New("group not found")
	ErrMemberNotFound     = errors.New("group member not found")
	ErrAccountNotFound    = errors.New("account not found")

	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidDateRange = errors.New("start date must be on or before end date")
	ErrPartialDateRange = errors.New("provide both start and end date")
	ErrTripHasNoDates   = errors.New("trip has no date range")
	ErrInvalidTimeZone  = errors.New("unknown time zone")
	ErrInvalidPosition  = errors.New("position out of range")
	ErrInvalidOrder     = errors.New("ordered ids must list every item in scope exactly once")
	ErrInvalidKind      = errors.New("unknown attachment kind")
	ErrOwnerRole        = errors.New("owner role cannot be assigned")
	ErrOwnerMembership  = errors.New("group owner cannot be removed")

	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrCityAlreadyExists  = errors.New("city already exists")
	ErrAlreadyMember      = errors.New("user is already a member")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("not authorized")
	ErrRateLimited        = errors.New("too many requests")

	ErrDatabaseError = errors.New("database error")
)

type errorKind struct {
	status int
	code   string
	errs   []error
}

var errorKinds = []errorKind{
	{http.StatusNotFound, CodeNotFound, []error{
		ErrTripNotFound, ErrDayNotFound, ErrPlaceNotFound, ErrCityNotFound,
		ErrActivityNotFound, ErrAttachmentNotFound, ErrGroupNotFound, ErrMemberNotFound, ErrAccountNotFound,
	}},
	{http.StatusBadRequest, CodeValidation, []error{
		ErrInvalidInput, ErrInvalidDateRange, ErrPartialDateRange, ErrTripHasNoDates, ErrInvalidTimeZone,
		ErrInvalidPosition, ErrInvalidOrder, ErrInvalidKind, ErrOwnerRole, ErrOwnerMembership,
	}},
	{http.StatusConflict, CodeConflict, []error{ErrEmailAlreadyExists, ErrCityAlreadyExists, ErrAlreadyMember}},
	{http.StatusUnauthorized, CodeInvalidCredentials, []error{ErrInvalidCredentials}},
	{http.StatusForbidden, CodeForbidden, []error{ErrForbidden}},
	{http.StatusTooManyRequests, CodeRateLimited, []error{ErrRateLimited}},
	{http.StatusInternalServerError, CodeInternal, []error{ErrDatabaseError}},
}

// Classify returns the HTTP status and error code for err. Unknown errors are internal.
func Classify(err error) (int, string) {
	for _, kind := range errorKinds {
		for _, target := range kind.errs {
			if errors.Is(err, target) {
				return kind.status, kind.code
			}
		}
	}
	return http.StatusInternalServerError, CodeInternal
}

// IsDomainError reports whether err is one of the sentinels above other than ErrDatabaseError.
func IsDomainError(err error) bool {
	if err == nil || errors.Is(err, ErrDatabaseError) {
		return false
	}
	for _, kind := range errorKinds {
		for _, target := range kind.errs {
			if errors.Is(err, target) {
				return true
			}
		}
	}
	return false
}

// DatabaseError wraps a store failure so it classifies as INTERNAL_ERROR while keeping the cause.
func DatabaseError(err error) error {
	return fmt.Errorf("%w: %v", ErrDatabaseError, err)
}
