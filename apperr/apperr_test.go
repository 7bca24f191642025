package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		kind   Kind
		status int
	}{
		{Invalid, http.StatusBadRequest},
		{Unauthorized, http.StatusUnauthorized},
		{Forbidden, http.StatusForbidden},
		{NotFound, http.StatusNotFound},
		{Conflict, http.StatusConflict},
		{Internal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.kind.Status())
	}
}

func TestKindOf(t *testing.T) {
	err := New(NotFound, "coupon not found")
	assert.Equal(t, NotFound, KindOf(err))
	assert.Equal(t, http.StatusNotFound, StatusOf(err))

	// wrapped further up the chain
	wrapped := fmt.Errorf("checkout: %w", err)
	assert.Equal(t, NotFound, KindOf(wrapped))

	// plain errors fall back to Internal
	assert.Equal(t, Internal, KindOf(errors.New("boom")))
}

func TestWrapUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(Internal, "failed to fetch cart", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to fetch cart: connection reset", err.Error())
}
