package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/jonboulle/clockwork"

	"github.com/osse101/SlotReveal_Go/internal/logger"
)

// AuthMiddleware validates the API key. An empty apiKey disables the check.
func AuthMiddleware(apiKey string, trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if apiKey == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)

			// Constant time comparison
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := extractIP(r, trustedProxies)
				detector.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"remote_addr", r.RemoteAddr,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isPublicPath(path string) bool {
	for _, p := range PublicPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// ipWindow counts events for one IP within a fixed window
type ipWindow struct {
	start time.Time
	count int
}

// SuspiciousActivityDetector rate-limits requests and flags repeated auth failures per IP.
// Windows live in expiring LRUs so idle IPs are forgotten and memory stays bounded.
type SuspiciousActivityDetector struct {
	mu         sync.Mutex
	clock      clockwork.Clock
	window     time.Duration
	limit      int
	requests   *expirable.LRU[string, ipWindow]
	failedAuth *expirable.LRU[string, ipWindow]
}

// DetectorOption configures a SuspiciousActivityDetector
type DetectorOption func(*SuspiciousActivityDetector)

// WithDetectorClock replaces the real clock
func WithDetectorClock(c clockwork.Clock) DetectorOption {
	return func(s *SuspiciousActivityDetector) { s.clock = c }
}

// WithRateLimit sets the per-IP request budget per window
func WithRateLimit(limit int, window time.Duration) DetectorOption {
	return func(s *SuspiciousActivityDetector) {
		s.limit = limit
		s.window = window
	}
}

// NewSuspiciousActivityDetector creates a detector allowing RateLimitMaxRequests per RateLimitWindow
func NewSuspiciousActivityDetector(opts ...DetectorOption) *SuspiciousActivityDetector {
	s := &SuspiciousActivityDetector{
		clock:  clockwork.NewRealClock(),
		window: RateLimitWindow,
		limit:  RateLimitMaxRequests,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.requests = expirable.NewLRU[string, ipWindow](DetectorCacheSize, nil, s.window)
	s.failedAuth = expirable.NewLRU[string, ipWindow](DetectorCacheSize, nil, s.window)
	return s
}

// RecordFailedAuth records a failed authentication attempt
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := s.increment(s.failedAuth, ip)
	if count >= FailedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", count)
	}
}

// RecordRequest records a request and returns false if the IP is over its budget
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := s.increment(s.requests, ip)
	if count > s.limit {
		if count%RateLimitLogEvery == 0 {
			slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", count)
		}
		return false
	}
	return true
}

// increment bumps the IP's counter, starting a new window once the old one has elapsed.
// Caller must hold the mutex.
func (s *SuspiciousActivityDetector) increment(cache *expirable.LRU[string, ipWindow], ip string) int {
	now := s.clock.Now()
	w, ok := cache.Get(ip)
	if !ok || now.Sub(w.start) >= s.window {
		w = ipWindow{start: now}
	}
	w.count++
	cache.Add(ip, w)
	return w.count
}

// SecurityLoggingMiddleware enforces per-IP rate limits
func SecurityLoggingMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r, trustedProxies)

			if !detector.RecordRequest(ip) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// extractIP gets the client IP address from request.
// It only trusts X-Forwarded-For if the request comes from a trusted proxy.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	isTrusted := false
	for _, proxy := range trustedProxies {
		if proxy == remoteIP {
			isTrusted = true
			break
		}
	}

	if isTrusted {
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			// Rightmost entry is the hop our trusted proxy saw
			ips := strings.Split(forwarded, ",")
			return strings.TrimSpace(ips[len(ips)-1])
		}
	}

	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderNoSniff, HeaderValueNoSniff)
			w.Header().Set(HeaderFrameOptions, HeaderValueSameOrigin)
			w.Header().Set(HeaderXSSProtection, HeaderValueXSSBlock)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)

			next.ServeHTTP(w, r)
		})
	}
}
