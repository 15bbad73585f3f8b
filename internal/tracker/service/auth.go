package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/fernwick/stockfolio/internal/tracker/domain"
	"github.com/fernwick/stockfolio/internal/tracker/store"
	"github.com/fernwick/stockfolio/pkg/cryptox"
	"github.com/fernwick/stockfolio/pkg/idx"
	"github.com/fernwick/stockfolio/pkg/jwtx"
	"github.com/fernwick/stockfolio/pkg/slogx"
	"github.com/pquerna/otp/totp"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 50
	minPasswordLen = 6
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type AuthService struct {
	Store      store.Store
	Signer     jwtx.Signer
	Issuer     string
	SessionTTL time.Duration
}

// Register creates a new identity. Email and username uniqueness is
// pre-checked for friendly errors, but the storage unique constraints
// remain the authoritative guard against the check-then-insert race.
func (s *AuthService) Register(ctx context.Context, email, username, password string) (domain.User, error) {
	email = NormalizeEmail(email)
	username = strings.TrimSpace(username)

	if err := validateEmail(email); err != nil {
		return domain.User{}, err
	}
	if err := validateUsername(username); err != nil {
		return domain.User{}, err
	}
	if err := validatePassword(password); err != nil {
		return domain.User{}, err
	}

	if _, err := s.Store.Users().GetUserByEmail(ctx, email); err == nil {
		return domain.User{}, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, err
	}
	if _, err := s.Store.Users().GetUserByUsername(ctx, username); err == nil {
		return domain.User{}, ErrUsernameTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Lost the race between pre-check and insert.
			return domain.User{}, ErrIdentityTaken
		}
		return domain.User{}, err
	}

	return s.Store.Users().GetUserByID(ctx, user.ID)
}

// Login verifies credentials and issues a signed session token. Accounts
// with an activated second factor must additionally present a valid TOTP
// code. Any credential failure maps to ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password, totpCode string) (domain.User, string, error) {
	log := slogx.FromContext(ctx)
	email = NormalizeEmail(email)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, "", ErrInvalidCredentials
		}
		return domain.User{}, "", err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		log.Info("login failed", "user_id", user.ID)
		return domain.User{}, "", ErrInvalidCredentials
	}

	if user.HasMFA() {
		if totpCode == "" {
			return domain.User{}, "", ErrMFARequired
		}
		if user.MFASecret == nil || !totp.Validate(totpCode, *user.MFASecret) {
			log.Info("login failed on totp", "user_id", user.ID)
			return domain.User{}, "", ErrInvalidTOTPCode
		}
	}

	claims := jwtx.NewSessionClaims(user.ID, user.Username, s.Issuer, s.SessionTTL, time.Now().UTC())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, token, nil
}

// CurrentUser resolves the authenticated identity. Returns
// store.ErrNotFound when the token's referent no longer exists.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

// NormalizeEmail lower-cases and trims an email so registration and lookup
// agree on case-insensitivity.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if email == "" || !emailPattern.MatchString(email) {
		return validationf("a valid email address is required")
	}
	return nil
}

func validateUsername(username string) error {
	if len(username) < minUsernameLen || len(username) > maxUsernameLen {
		return validationf("username must be between %d and %d characters", minUsernameLen, maxUsernameLen)
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLen {
		return validationf("password must be at least %d characters long", minPasswordLen)
	}
	return nil
}
