package service

import (
	"context"
	"errors"
	"strings"

	"github.com/BeldiMariem/ToDo-List-App/internal/apperr"
	dom "github.com/BeldiMariem/ToDo-List-App/internal/domain"
	"github.com/BeldiMariem/ToDo-List-App/internal/repo"
	"github.com/BeldiMariem/ToDo-List-App/internal/utils"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")
var ErrUsernameTaken = errors.New("username already taken")
var ErrEmailTaken = errors.New("email already taken")

// userConflict attributes a unique violation to the column whose
// constraint tripped.
func userConflict(err error) error {
	switch utils.PGUniqueConstraint(err) {
	case "users_email_key":
		return ErrEmailTaken
	default:
		return ErrUsernameTaken
	}
}

// UserService handles accounts: registration, credential checks,
// profile and password updates.
type UserService struct {
	repo repo.UserRepo
}

// NewUserService returns a new UserService.
func NewUserService(repo repo.UserRepo) *UserService {
	return &UserService{repo: repo}
}

// ValidateCredentials checks username and password; returns user if valid.
func (s *UserService) ValidateCredentials(ctx context.Context, username, password string) (dom.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return dom.User{}, ErrInvalidCredentials
	}
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrInvalidCredentials
		}
		return dom.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return dom.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// Register creates a new user with hashed password.
func (s *UserService) Register(ctx context.Context, username, email, password string) (dom.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || password == "" {
		return dom.User{}, ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return dom.User{}, err
	}
	u, err := s.repo.Create(ctx, username, email, string(hash))
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.User{}, userConflict(err)
		}
		return dom.User{}, err
	}
	return u, nil
}

// ListUsers returns all users, for member pickers.
func (s *UserService) ListUsers(ctx context.Context) ([]dom.User, error) {
	return s.repo.List(ctx)
}

// UpdateProfile changes the user's username and email.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, username, email string) (dom.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return dom.User{}, apperr.BadRequest("username is required")
	}
	if _, err := s.repo.GetByID(ctx, userID); err != nil {
		return dom.User{}, notFoundIfNoRows(err, "User", "id", userID)
	}
	u, err := s.repo.UpdateProfile(ctx, userID, username, strings.TrimSpace(email))
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.User{}, userConflict(err)
		}
		return dom.User{}, err
	}
	return u, nil
}

// UpdatePassword verifies the current password and stores a new hash.
// A wrong current password is a BadRequest, not a permission error.
func (s *UserService) UpdatePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	if newPassword == "" {
		return apperr.BadRequest("new password is required")
	}
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return notFoundIfNoRows(err, "User", "id", userID)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(currentPassword)); err != nil {
		return apperr.BadRequest("incorrect password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, userID, string(hash))
}

// DeleteAccount removes the user's own account after re-checking the
// password. A wrong password is a BadRequest, not a permission error.
func (s *UserService) DeleteAccount(ctx context.Context, userID int64, password string) error {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return notFoundIfNoRows(err, "User", "id", userID)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return apperr.BadRequest("incorrect password")
	}
	return s.repo.Delete(ctx, userID)
}
