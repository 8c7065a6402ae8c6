package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/SlotReveal_Go/mocks"
)

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	HandleHealthz().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"alive"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	t.Run("Engine ready", func(t *testing.T) {
		ms := mocks.NewMockService(t)
		ms.On("CheckHealth", mock.Anything).Return(nil)

		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		w := httptest.NewRecorder()

		HandleReadyz(ms).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ready"`)
	})

	t.Run("Engine unavailable", func(t *testing.T) {
		ms := mocks.NewMockService(t)
		ms.On("CheckHealth", mock.Anything).Return(errors.New("entropy source closed"))

		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		w := httptest.NewRecorder()

		HandleReadyz(ms).ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"unavailable"`)
		assert.NotContains(t, w.Body.String(), "entropy")
	})

	t.Run("Deadline applied", func(t *testing.T) {
		ms := mocks.NewMockService(t)
		ms.On("CheckHealth", mock.MatchedBy(func(ctx context.Context) bool {
			_, ok := ctx.Deadline()
			return ok
		})).Return(nil)

		w := httptest.NewRecorder()
		HandleReadyz(ms).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHandleVersion(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = "v1.2.3"
	w := httptest.NewRecorder()
	HandleVersion().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/version", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"version":"v1.2.3"`)
	assert.Contains(t, w.Body.String(), `"go_version":"go`)
}

func TestResolveVersion_FromEnvironment(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = "dev"
	t.Setenv("VERSION", "env-build")
	assert.Equal(t, "env-build", resolveVersion())
}
