package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"placement-portal/internal/domain/admin"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInternal           = errors.New("internal error")
)

const minPasswordLength = 8

type LoginInput struct {
	Username string
	Password string
}

// Service checks admin credentials and provisions admin accounts.
type Service struct {
	admins admin.Repository
	cost   int
}

func NewService(admins admin.Repository) *Service {
	return &Service{admins: admins, cost: bcrypt.DefaultCost}
}

func (s *Service) Login(ctx context.Context, in LoginInput) (admin.Admin, error) {
	username := normalizeUsername(in.Username)
	if username == "" || in.Password == "" {
		return admin.Admin{}, ErrInvalidCredentials
	}

	a, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, admin.ErrNotFound) {
			return admin.Admin{}, ErrInvalidCredentials
		}
		return admin.Admin{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(in.Password)); err != nil {
		return admin.Admin{}, ErrInvalidCredentials
	}
	return sanitizeAdmin(a), nil
}

// EnsureAdmin creates the admin or resets its password.
func (s *Service) EnsureAdmin(ctx context.Context, username, password string) (admin.Admin, error) {
	username = normalizeUsername(username)
	if username == "" || !isValidPassword(password) {
		return admin.Admin{}, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return admin.Admin{}, ErrInternal
	}

	a := admin.Admin{ID: uuid.New(), Username: username, PasswordHash: string(hash)}
	if err := s.admins.Upsert(ctx, a); err != nil {
		return admin.Admin{}, err
	}

	stored, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		return admin.Admin{}, err
	}
	return sanitizeAdmin(stored), nil
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func isValidPassword(pw string) bool {
	return len(strings.TrimSpace(pw)) >= minPasswordLength
}

func sanitizeAdmin(a admin.Admin) admin.Admin {
	a.PasswordHash = ""
	return a
}
