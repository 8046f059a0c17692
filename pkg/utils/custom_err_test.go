package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{ErrTripNotFound, http.StatusNotFound, CodeNotFound},
		{fmt.Errorf("load day: %w", ErrDayNotFound), http.StatusNotFound, CodeNotFound},
		{ErrInvalidOrder, http.StatusBadRequest, CodeValidation},
		{ErrCityAlreadyExists, http.StatusConflict, CodeConflict},
		{ErrInvalidCredentials, http.StatusUnauthorized, CodeInvalidCredentials},
		{ErrForbidden, http.StatusForbidden, CodeForbidden},
		{ErrRateLimited, http.StatusTooManyRequests, CodeRateLimited},
		{DatabaseError(errors.New("conn reset")), http.StatusInternalServerError, CodeInternal},
		{errors.New("anything else"), http.StatusInternalServerError, CodeInternal},
	}
	for _, tc := range cases {
		status, code := Classify(tc.err)
		assert.Equal(t, tc.status, status, tc.err.Error())
		assert.Equal(t, tc.code, code, tc.err.Error())
	}
}

func TestIsDomainError(t *testing.T) {
	assert.True(t, IsDomainError(ErrPlaceNotFound))
	assert.True(t, IsDomainError(fmt.Errorf("wrapped: %w", ErrInvalidPosition)))
	assert.False(t, IsDomainError(nil))
	assert.False(t, IsDomainError(DatabaseError(errors.New("boom"))))
	assert.False(t, IsDomainError(errors.New("boom")))
}
