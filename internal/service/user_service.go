package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"eshop/internal/model"
	"eshop/internal/repository"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

const bcryptCost = 10

// Registration and profile errors double as the user-facing messages, so the
// strings are rendered verbatim in API responses.
var (
	ErrUsernameTaken    = errors.New("Username already exists!")
	ErrEmailTaken       = errors.New("Email already exists!")
	ErrUsernameBlank    = errors.New("Username cannot be empty!")
	ErrEmailBlank       = errors.New("Email cannot be empty!")
	ErrPasswordTooShort = errors.New("Password must be at least 6 characters!")
	ErrFullNameBlank    = errors.New("Full name cannot be empty!")
	ErrProfileNotFound  = errors.New("User not found!")
)

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
}

// ProfileUpdate carries a full profile overwrite. Password is optional; when
// blank the stored hash is kept.
type ProfileUpdate struct {
	ID       uint
	Username string
	Email    string
	Password string
	FullName string
	Role     string
}

// UserService is the database-backed user directory. It is not consulted by
// the static access policy in internal/auth.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*model.User, error)
	Login(ctx context.Context, usernameOrEmail, password string) (*model.User, error)
	UpdateProfile(ctx context.Context, update ProfileUpdate) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// Register validates and persists a new user. The check order is part of the
// contract: existence checks run before the blank and length checks, so a
// taken username is reported even when other fields are also invalid. The
// pre-checks are a fast path for friendly messages; the unique indexes on
// username and email remain the authoritative guard under concurrent writes.
func (s *userService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	if taken, err := s.repo.ExistsByUsername(ctx, input.Username); err != nil {
		return nil, registrationFailed(err)
	} else if taken {
		return nil, ErrUsernameTaken
	}

	if taken, err := s.repo.ExistsByEmail(ctx, input.Email); err != nil {
		return nil, registrationFailed(err)
	} else if taken {
		return nil, ErrEmailTaken
	}

	if strings.TrimSpace(input.Username) == "" {
		return nil, ErrUsernameBlank
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, ErrEmailBlank
	}
	if len(input.Password) < 6 {
		return nil, ErrPasswordTooShort
	}
	if strings.TrimSpace(input.FullName) == "" {
		return nil, ErrFullNameBlank
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, registrationFailed(err)
	}

	user := &model.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		FullName:     input.FullName,
		Role:         model.RoleUser,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		// Covers the check-then-act race: a concurrent duplicate insert is
		// rejected by the unique index and lands here.
		logger.Warn().Err(err).Str("username", input.Username).Msg("registration insert failed")
		return nil, registrationFailed(err)
	}
	return user, nil
}

func registrationFailed(err error) error {
	return fmt.Errorf("Registration failed: %v", err)
}

// Login matches the identifier against username or email and verifies the
// password. Any miss, including an unknown identifier, yields (nil, nil):
// "no match" is a result, not an error.
func (s *userService) Login(ctx context.Context, usernameOrEmail, password string) (*model.User, error) {
	user, err := s.repo.FindByUsernameOrEmail(ctx, usernameOrEmail)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error().Err(err).Msg("login lookup failed")
		}
		return nil, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil
	}
	return user, nil
}

// UpdateProfile overwrites the record only if the ID already exists.
func (s *userService) UpdateProfile(ctx context.Context, update ProfileUpdate) error {
	existing, err := s.repo.FindByID(ctx, update.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProfileNotFound
		}
		return fmt.Errorf("Update failed: %v", err)
	}

	existing.Username = update.Username
	existing.Email = update.Email
	existing.FullName = update.FullName
	if update.Role != "" {
		existing.Role = update.Role
	}
	if update.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(update.Password), bcryptCost)
		if err != nil {
			return fmt.Errorf("Update failed: %v", err)
		}
		existing.PasswordHash = string(hash)
	}

	if err := s.repo.Save(ctx, existing); err != nil {
		return fmt.Errorf("Update failed: %v", err)
	}
	return nil
}

func (s *userService) FindByID(ctx context.Context, id uint) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}
