package handler_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"pricelist/internal/handler"
	"pricelist/mocks"
)

func TestHealthHandler_Liveness(t *testing.T) {
	h := handler.NewHealthHandler(new(mocks.MockObjectStorage))

	c, w := getContext("/healthz")
	h.Liveness(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHealthHandler_Readiness(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	h := handler.NewHealthHandler(storage)
	storage.On("Ping", mock.Anything).Return(nil).Once()
	storage.On("Ping", mock.Anything).Return(errors.New("no bucket")).Once()

	c, w := getContext("/readyz")
	h.Readiness(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = getContext("/readyz")
	h.Readiness(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"unavailable","error":"storage not reachable"}`, w.Body.String())
}
