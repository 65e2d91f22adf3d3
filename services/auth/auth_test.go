package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	memoryRepo "resourcebooking/database/repository/memory"
	"resourcebooking/models"
	"resourcebooking/services/user"

	"github.com/golang-jwt/jwt"
	"go.uber.org/zap"
)

func newTestAuth(t *testing.T) *DefaultAuthService {
	t.Helper()
	users := user.NewUserService(memoryRepo.New().Users(), zap.NewNop())
	err := users.Create(context.Background(), &models.User{
		Name: "Admin", Username: "admin", Password: "pw", Role: models.RoleAdmin, InstitutionID: "i1",
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return NewAuthService(users, NewMemoryRevocationStore(), "test-key", "rb", "rb-clients", time.Hour, zap.NewNop())
}

func TestLoginIssuesParseableToken(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuth(t)

	resp, err := svc.Login(ctx, "admin", "pw")
	if err != nil || resp == nil {
		t.Fatalf("Login = %+v, %v", resp, err)
	}
	if resp.UserRole != models.RoleAdmin || resp.InstitutionID != "i1" || resp.ExpiresIn != 3600 {
		t.Fatalf("unexpected response %+v", resp)
	}

	claims, err := svc.Parse(ctx, resp.AccessToken)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.Subject != resp.UserID || claims.Role != models.RoleAdmin {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestAuth(t)
	resp, err := svc.Login(context.Background(), "admin", "nope")
	if err != nil || resp != nil {
		t.Fatalf("Login = %+v, %v; want nil, nil", resp, err)
	}
}

func TestParseRejectsForeignTokens(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuth(t)
	u := &models.User{ID: "u1", Role: models.RoleUser}

	other := *svc
	other.Key = []byte("another-key")
	wrongKey, _ := other.Issue(u)

	other = *svc
	other.Audience = "someone-else"
	wrongAudience, _ := other.Issue(u)

	other = *svc
	other.Now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, _ := other.Issue(u)

	hs256, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		StandardClaims: jwt.StandardClaims{Subject: "u1", Id: "x", Issuer: "rb", Audience: "rb-clients", ExpiresAt: time.Now().Add(time.Hour).Unix()},
	}).SignedString(svc.Key)

	for name, tok := range map[string]string{
		"wrong key":      wrongKey,
		"wrong audience": wrongAudience,
		"expired":        expired,
		"hs256":          hs256,
		"garbage":        "not-a-token",
	} {
		if _, err := svc.Parse(ctx, tok); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("%s: err = %v, want ErrInvalidToken", name, err)
		}
	}
}

func TestRevokedTokenIsRejected(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuth(t)
	resp, _ := svc.Login(ctx, "admin", "pw")

	if err := svc.Revoke(ctx, resp.AccessToken); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if _, err := svc.Parse(ctx, resp.AccessToken); !errors.Is(err, ErrRevoked) {
		t.Fatalf("err = %v, want ErrRevoked", err)
	}

	fresh, _ := svc.Login(ctx, "admin", "pw")
	if _, err := svc.Parse(ctx, fresh.AccessToken); err != nil {
		t.Fatalf("a new token must still work: %v", err)
	}
}

func TestMemoryRevocationExpires(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewMemoryRevocationStore()
	s.now = func() time.Time { return now }

	_ = s.Revoke(context.Background(), "jti", time.Minute)
	if revoked, _ := s.IsRevoked(context.Background(), "jti"); !revoked {
		t.Fatalf("expected revoked")
	}
	now = now.Add(2 * time.Minute)
	if revoked, _ := s.IsRevoked(context.Background(), "jti"); revoked {
		t.Fatalf("revocation should lapse with the token")
	}
}
