package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"

	tests := []struct {
		name           string
		method         string
		providedKey    string
		path           string
		expectedStatus int
	}{
		{"Valid API Key", http.MethodPost, apiKey, "/api/spin", http.StatusOK},
		{"Invalid API Key", http.MethodPost, "wrong-key", "/api/spin", http.StatusUnauthorized},
		{"Missing API Key", http.MethodPost, "", "/api/spin", http.StatusUnauthorized},
		{"Public Path - Healthz", http.MethodGet, "", "/healthz", http.StatusOK},
		{"Public Path - Metrics", http.MethodGet, "", "/metrics", http.StatusOK},
		{"Public Path - Swagger", http.MethodGet, "", "/swagger/index.html", http.StatusOK},
		{"CORS preflight", http.MethodOptions, "", "/api/spin", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detector := NewSuspiciousActivityDetector()
			handler := AuthMiddleware(apiKey, nil, detector)(okHandler())

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_DisabledWithoutKey(t *testing.T) {
	handler := AuthMiddleware("", nil, NewSuspiciousActivityDetector())(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/spin", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	handler := SecurityHeadersMiddleware()(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	expected := map[string]string{
		HeaderNoSniff:        HeaderValueNoSniff,
		HeaderFrameOptions:   HeaderValueSameOrigin,
		HeaderXSSProtection:  HeaderValueXSSBlock,
		HeaderReferrerPolicy: HeaderValueReferrerStrictOrigin,
	}
	for header, want := range expected {
		assert.Equal(t, want, rec.Header().Get(header), header)
	}
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name      string
		remote    string
		forwarded string
		trusted   []string
		want      string
	}{
		{"direct connection", "203.0.113.7:5555", "", nil, "203.0.113.7"},
		{"untrusted proxy header ignored", "203.0.113.7:5555", "198.51.100.1", nil, "203.0.113.7"},
		{"trusted proxy uses rightmost hop", "10.0.0.1:80", "1.1.1.1, 198.51.100.1", []string{"10.0.0.1"}, "198.51.100.1"},
		{"unparseable remote", "garbage", "", nil, "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, extractIP(req, tt.trusted))
		})
	}
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	handler := RequestSizeLimitMiddleware(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/spin", strings.NewReader(`{"bet":10000000000}`))
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
