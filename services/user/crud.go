package user

import (
	"context"
	"fmt"
	"strings"

	"resourcebooking/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func (s *DefaultUserService) Get(ctx context.Context, id string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil || u == nil {
		return nil, err
	}
	u.StripCredentials()
	return u, nil
}

func (s *DefaultUserService) ListByInstitution(ctx context.Context, institutionID string) ([]models.User, error) {
	users, err := s.Repo.ListByInstitution(ctx, institutionID)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].StripCredentials()
	}
	return users, nil
}

// Create hashes the password and stores the user under a fresh ID. The
// credentials are stripped from user afterwards.
func (s *DefaultUserService) Create(ctx context.Context, user *models.User) error {
	user.ID = ""
	user.Username = strings.TrimSpace(user.Username)
	if user.Username == "" || user.Password == "" {
		return ErrMissingCredentials
	}
	role, err := normaliseRole(user.Role)
	if err != nil {
		return err
	}
	user.Role = role

	existing, err := s.Repo.GetByUsername(ctx, user.Username)
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return ErrUsernameTaken
	}

	hashed, err := hashPassword(user.Password)
	if err != nil {
		return err
	}
	user.Password = hashed

	if err := s.Repo.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	s.Logger.Info("User created", zap.String("userID", user.ID), zap.String("role", user.Role))
	user.StripCredentials()
	return nil
}

// Update replaces the stored user. A blank role, password or username keeps
// the stored value; a new password is re-hashed.
func (s *DefaultUserService) Update(ctx context.Context, id string, user models.User) (models.Outcome, error) {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return models.OutcomeNotFound, err
	}
	if existing == nil {
		return models.OutcomeNotFound, nil
	}

	if strings.TrimSpace(user.Role) == "" {
		user.Role = existing.Role
	} else {
		role, err := normaliseRole(user.Role)
		if err != nil {
			return models.OutcomeNotFound, err
		}
		user.Role = role
	}

	user.Username = strings.TrimSpace(user.Username)
	if user.Username == "" {
		user.Username = existing.Username
	} else if user.Username != existing.Username {
		taken, err := s.Repo.GetByUsername(ctx, user.Username)
		if err != nil {
			return models.OutcomeNotFound, fmt.Errorf("failed to check username: %w", err)
		}
		if taken != nil {
			return models.OutcomeNotFound, ErrUsernameTaken
		}
	}

	if user.Password == "" {
		user.Password = existing.Password
	} else {
		hashed, err := hashPassword(user.Password)
		if err != nil {
			return models.OutcomeNotFound, err
		}
		user.Password = hashed
	}

	return s.Repo.Replace(ctx, id, user)
}

func (s *DefaultUserService) Delete(ctx context.Context, id string) (models.Outcome, error) {
	return s.Repo.Delete(ctx, id)
}

func normaliseRole(role string) (string, error) {
	switch r := strings.ToLower(strings.TrimSpace(role)); r {
	case "":
		return models.RoleUser, nil
	case models.RoleAdmin, models.RoleUser:
		return r, nil
	default:
		return "", ErrInvalidRole
	}
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}
