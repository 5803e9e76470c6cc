package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dcode-github/estate-envision/services"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	cases := map[services.Kind]int{
		services.KindValidation:      http.StatusBadRequest,
		services.KindUnauthenticated: http.StatusUnauthorized,
		services.KindNotFound:        http.StatusNotFound,
		services.KindConflict:        http.StatusConflict,
		services.KindRateLimited:     http.StatusTooManyRequests,
		services.KindUnavailable:     http.StatusServiceUnavailable,
		services.KindInternal:        http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, statusFor(kind), kind.String())
	}
}

func TestWriteErrorHidesCause(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, &services.Error{Kind: services.KindInternal, Message: "Failed to fetch properties.", Err: errors.New("dial tcp 10.0.0.5:27017")})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"success":false,"message":"Failed to fetch properties."}`, rr.Body.String())

	rr = httptest.NewRecorder()
	writeError(rr, errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "boom")
}
