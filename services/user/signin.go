package user

import (
	"context"
	"fmt"
	"strings"

	"resourcebooking/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Authenticate checks a username and password against the stored hash.
func (s *DefaultUserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	userRec, err := s.Repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		s.Logger.Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.Password), []byte(password)); err != nil {
		return nil, nil
	}

	userRec.StripCredentials()
	return userRec, nil
}
