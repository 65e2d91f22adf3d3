package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resourcebooking/models"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrRevoked      = errors.New("token has been revoked")
)

// Claims is the payload of an access token.
type Claims struct {
	Role string `json:"role"`
	jwt.StandardClaims
}

// Authenticator verifies credentials. It returns nil for a bad username or password.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
}

// AuthService issues, parses and revokes access tokens.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.LoginResponse, error)
	Parse(ctx context.Context, token string) (*Claims, error)
	Revoke(ctx context.Context, token string) error
}

type DefaultAuthService struct {
	Users       Authenticator
	Revocations RevocationStore
	Key         []byte
	Issuer      string
	Audience    string
	Validity    time.Duration
	Logger      *zap.Logger
	Now         func() time.Time
}

func NewAuthService(users Authenticator, revocations RevocationStore, key, issuer, audience string, validity time.Duration, logger *zap.Logger) *DefaultAuthService {
	return &DefaultAuthService{
		Users:       users,
		Revocations: revocations,
		Key:         []byte(key),
		Issuer:      issuer,
		Audience:    audience,
		Validity:    validity,
		Logger:      logger,
		Now:         time.Now,
	}
}

// Login returns nil, nil when the credentials do not match a user.
func (s *DefaultAuthService) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	u, err := s.Users.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if u == nil {
		s.Logger.Info("Login rejected", zap.String("username", username))
		return nil, nil
	}

	token, err := s.Issue(u)
	if err != nil {
		return nil, err
	}
	return &models.LoginResponse{
		UserID:        u.ID,
		Name:          u.Name,
		InstitutionID: u.InstitutionID,
		UserRole:      roleOf(u),
		AccessToken:   token,
		ExpiresIn:     int(s.Validity.Seconds()),
	}, nil
}

// Issue signs an HS512 token for u.
func (s *DefaultAuthService) Issue(u *models.User) (string, error) {
	now := s.Now()
	claims := Claims{
		Role: roleOf(u),
		StandardClaims: jwt.StandardClaims{
			Subject:   u.ID,
			Id:        uuid.NewString(),
			Issuer:    s.Issuer,
			Audience:  s.Audience,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(s.Validity).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := token.SignedString(s.Key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Parse validates signature, expiry, issuer and audience, then checks the
// revocation list.
func (s *DefaultAuthService) Parse(ctx context.Context, tokenString string) (*Claims, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}
	revoked, err := s.Revocations.IsRevoked(ctx, claims.Id)
	if err != nil {
		return nil, fmt.Errorf("failed to check token revocation: %w", err)
	}
	if revoked {
		return nil, ErrRevoked
	}
	return claims, nil
}

// Revoke blocks the token until it would have expired anyway.
func (s *DefaultAuthService) Revoke(ctx context.Context, tokenString string) error {
	claims, err := s.parse(tokenString)
	if err != nil {
		return err
	}
	ttl := time.Unix(claims.ExpiresAt, 0).Sub(s.Now())
	if ttl <= 0 {
		return nil
	}
	if err := s.Revocations.Revoke(ctx, claims.Id, ttl); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	s.Logger.Info("Token revoked", zap.String("userID", claims.Subject))
	return nil
}

func (s *DefaultAuthService) parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS512 {
			return nil, errors.New("unexpected signing method")
		}
		return s.Key, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !claims.VerifyIssuer(s.Issuer, true) || !claims.VerifyAudience(s.Audience, true) {
		return nil, fmt.Errorf("%w: wrong issuer or audience", ErrInvalidToken)
	}
	if claims.Id == "" || claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject or id", ErrInvalidToken)
	}
	return claims, nil
}

func roleOf(u *models.User) string {
	if u.Role == "" {
		return models.RoleUser
	}
	return u.Role
}
