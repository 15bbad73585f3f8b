package service

import (
	"context"

	"github.com/fernwick/stockfolio/internal/tracker/store"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

type MFAService struct {
	Store  store.Store
	Issuer string
}

// Enrollment carries a freshly generated TOTP secret back to the caller.
// The secret is staged on the account but MFA stays off until a first
// valid code confirms the authenticator has it.
type Enrollment struct {
	Secret     string
	OTPAuthURL string
}

// Enroll generates and stages a TOTP secret for the user.
func (s *MFAService) Enroll(ctx context.Context, userID string) (Enrollment, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return Enrollment{}, err
	}
	if user.HasMFA() {
		return Enrollment{}, ErrMFAAlreadyEnabled
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.Issuer,
		AccountName: user.Email,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return Enrollment{}, err
	}

	if err := s.Store.Users().UpdateMFASecret(ctx, userID, key.Secret()); err != nil {
		return Enrollment{}, err
	}

	return Enrollment{Secret: key.Secret(), OTPAuthURL: key.URL()}, nil
}

// Activate turns MFA on after the user proves their authenticator works.
func (s *MFAService) Activate(ctx context.Context, userID, code string) error {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.HasMFA() {
		return ErrMFAAlreadyEnabled
	}
	if user.MFASecret == nil {
		return ErrMFANotEnabled
	}
	if !totp.Validate(code, *user.MFASecret) {
		return ErrInvalidTOTPCode
	}

	return s.Store.Users().EnableMFA(ctx, userID)
}

// Disable removes the second factor. A current valid code is required so a
// hijacked session can't silently weaken the account.
func (s *MFAService) Disable(ctx context.Context, userID, code string) error {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.HasMFA() || user.MFASecret == nil {
		return ErrMFANotEnabled
	}
	if !totp.Validate(code, *user.MFASecret) {
		return ErrInvalidTOTPCode
	}

	return s.Store.Users().DisableMFA(ctx, userID)
}
