package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"ClinicDesk/cache"
	"ClinicDesk/models"
	"ClinicDesk/repositories"
	"ClinicDesk/utils"
)

// AuthService handles staff login and password resets.
type AuthService struct {
	repository repositories.UserRepository
	cache      *cache.Cache
}

func NewAuthService(repository repositories.UserRepository, cache *cache.Cache) *AuthService {
	return &AuthService{repository: repository, cache: cache}
}

// Login authenticates a staff account and returns the token pair.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, string, error) {
	user, err := s.repository.AuthenticateUser(ctx, email, password)
	if err != nil {
		return nil, "", "", err
	}
	accessToken, refreshToken, err := utils.GenerateTokens(user.ID, user.Username, user.Role.Name)
	if err != nil {
		return nil, "", "", err
	}
	return user, accessToken, refreshToken, nil
}

// RequestPasswordReset mails a reset code to the account email. An unknown
// email is not revealed to the caller.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.repository.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		log.Printf("Password reset requested for unknown email")
		return nil
	}
	code, err := utils.GenerateResetCode()
	if err != nil {
		return err
	}
	if err := utils.SetResetCode(ctx, s.cache, email, code); err != nil {
		return fmt.Errorf("failed to store reset code: %w", err)
	}
	return utils.SendResetCodeEmail(email, code)
}

// ResetPassword consumes a valid reset code and stores the new password.
func (s *AuthService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	stored, err := utils.GetResetCode(ctx, s.cache, email)
	if err != nil {
		return err
	}
	if stored == "" || stored != code {
		return errors.New("invalid reset code")
	}
	user, err := s.repository.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("invalid reset code")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.repository.UpdateUserPassword(ctx, user.ID, string(hashed)); err != nil {
		return err
	}
	return utils.DeleteResetCode(ctx, s.cache, email)
}
