package service

import (
	"github.com/dts-gxu/CiJingTong/internal/repository"
)

// AuthService gates the bot behind one shared access password. Authorization
// is per Telegram user and sticky once granted; there are no accounts beyond
// the user ID.
type AuthService struct {
	userRepo repository.UserRepository
	password string
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, password string) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		password: password,
	}
}

// CheckPassword reports whether the entered password matches the configured
// access password. Comparison is exact, including case.
func (s *AuthService) CheckPassword(entered string) bool {
	return entered == s.password
}

// IsAuthorized reports whether the user already passed the password gate
func (s *AuthService) IsAuthorized(userID int64) (bool, error) {
	return s.userRepo.IsAuthorized(userID)
}

// AuthorizeUser marks the user as having passed the password gate
func (s *AuthService) AuthorizeUser(userID int64) error {
	return s.userRepo.AuthorizeUser(userID)
}

// EnsureUserExists creates the user record on first contact
func (s *AuthService) EnsureUserExists(userID int64) error {
	return s.userRepo.EnsureUserExists(userID)
}
