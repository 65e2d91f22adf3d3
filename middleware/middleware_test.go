package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"resourcebooking/models"
	"resourcebooking/services/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type stubAuth struct {
	claims map[string]*auth.Claims
	err    error
}

func (s *stubAuth) Login(context.Context, string, string) (*models.LoginResponse, error) {
	return nil, nil
}

func (s *stubAuth) Parse(_ context.Context, token string) (*auth.Claims, error) {
	if s.err != nil {
		return nil, s.err
	}
	c, ok := s.claims[token]
	if !ok {
		return nil, auth.ErrInvalidToken
	}
	return c, nil
}

func (s *stubAuth) Revoke(context.Context, string) error { return nil }

func newRouter(a auth.AuthService, optional bool, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := []gin.HandlerFunc{JWTAuthMiddleware(a, optional)}
	if len(roles) > 0 {
		chain = append(chain, RequireRole(roles...))
	}
	chain = append(chain, func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextUserID)+"/"+c.GetString(ContextRole))
	})
	r.GET("/x", chain...)
	return r
}

func do(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddleware(t *testing.T) {
	a := &stubAuth{claims: map[string]*auth.Claims{
		"admin-token": {Role: models.RoleAdmin},
		"user-token":  {Role: models.RoleUser},
	}}
	a.claims["admin-token"].Subject = "a1"
	a.claims["user-token"].Subject = "u1"

	cases := []struct {
		name     string
		optional bool
		roles    []string
		token    string
		want     int
	}{
		{"missing header", false, nil, "", http.StatusUnauthorized},
		{"invalid token", false, nil, "bogus", http.StatusUnauthorized},
		{"valid token", false, nil, "user-token", http.StatusOK},
		{"optional anonymous", true, nil, "", http.StatusOK},
		{"optional with bad token", true, nil, "bogus", http.StatusUnauthorized},
		{"admin route as user", false, []string{models.RoleAdmin}, "user-token", http.StatusForbidden},
		{"admin route as admin", false, []string{models.RoleAdmin}, "admin-token", http.StatusOK},
	}
	for _, tt := range cases {
		w := do(newRouter(a, tt.optional, tt.roles...), tt.token)
		if w.Code != tt.want {
			t.Fatalf("%s: status = %d, want %d", tt.name, w.Code, tt.want)
		}
	}

	if w := do(newRouter(a, false), "admin-token"); w.Body.String() != "a1/admin" {
		t.Fatalf("context = %q", w.Body.String())
	}
}

func TestJWTAuthMiddlewareRevoked(t *testing.T) {
	w := do(newRouter(&stubAuth{err: fmt.Errorf("parse: %w", auth.ErrRevoked)}, false), "t")
	if w.Code != http.StatusUnauthorized || !strings.Contains(w.Body.String(), "revoked") {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware(2, zap.NewNop()))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("codes = %v", codes)
	}
}

func TestRateLimitIgnoresForwardedForFromUntrustedPeer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(trusted []string) []int {
		r := gin.New()
		if err := r.SetTrustedProxies(trusted); err != nil {
			t.Fatalf("SetTrustedProxies: %v", err)
		}
		r.Use(RateLimitMiddleware(2, zap.NewNop()))
		r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			req.RemoteAddr = "192.0.2.1:1234"
			req.Header.Set("X-Forwarded-For", fmt.Sprintf("10.0.0.%d", i+1))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			codes = append(codes, w.Code)
		}
		return codes
	}

	if codes := run(nil); codes[2] != http.StatusTooManyRequests {
		t.Errorf("untrusted peer rotating X-Forwarded-For: codes = %v, want third request limited", codes)
	}
	if codes := run([]string{"192.0.2.1"}); codes[2] != http.StatusOK {
		t.Errorf("trusted proxy: codes = %v, want distinct clients", codes)
	}
}

func TestRateLimiterStoreDropsIdleVisitors(t *testing.T) {
	s := newRateLimiterStore(10)
	now := time.Now()
	s.getLimiter("1.1.1.1", now)
	s.getLimiter("2.2.2.2", now.Add(time.Hour))
	if _, ok := s.visitors["1.1.1.1"]; ok {
		t.Fatalf("idle visitor should have been dropped")
	}
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()))
	r.GET("/x", func(c *gin.Context) {
		if _, ok := c.Get(ContextLogger); !ok {
			t.Errorf("request logger missing from context")
		}
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Header().Get(RequestIDHeader) == "" {
		t.Fatalf("expected %s header", RequestIDHeader)
	}

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "given")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "given" {
		t.Fatalf("request id = %q, want given", got)
	}
}
