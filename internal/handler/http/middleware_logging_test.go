package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter_CapturesStatusAndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	lw := &responseWriter{ResponseWriter: rec}

	lw.WriteHeader(http.StatusCreated)
	n, err := lw.Write([]byte("hello"))

	assert.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusCreated, lw.status)
	assert.Equal(t, 5, lw.size)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestResponseWriter_ImplicitOKOnWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	lw := &responseWriter{ResponseWriter: rec}

	lw.Write([]byte("body"))

	assert.Equal(t, http.StatusOK, lw.status)
}

func TestResponseWriter_SecondWriteHeaderIgnored(t *testing.T) {
	rec := httptest.NewRecorder()
	lw := &responseWriter{ResponseWriter: rec}

	lw.WriteHeader(http.StatusAccepted)
	lw.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusAccepted, lw.status)
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestWithLogging_PassesThrough(t *testing.T) {
	h := newTestHandler()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	middleware := h.withLogging(next)
	req := injectNopLogger(httptest.NewRequest(http.MethodDelete, "/test", nil))
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}
