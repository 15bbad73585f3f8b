package service

import (
	"context"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t, newTestStore(t))

	t.Run("creates a user with normalized email", func(t *testing.T) {
		user, err := svc.Register(ctx, "  Alice@Example.COM ", "alice", "secret1")
		require.NoError(t, err)
		require.NotEmpty(t, user.ID)
		require.Equal(t, "alice@example.com", user.Email)
		require.Equal(t, "alice", user.Username)
		require.NotEmpty(t, user.PasswordHash)
		require.NotEqual(t, "secret1", user.PasswordHash)
		require.False(t, user.HasMFA())
		require.False(t, user.CreatedAt.IsZero())
	})

	t.Run("rejects a duplicate email regardless of case", func(t *testing.T) {
		_, err := svc.Register(ctx, "ALICE@example.com", "somebodyelse", "secret1")
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("rejects a duplicate username", func(t *testing.T) {
		_, err := svc.Register(ctx, "other@example.com", "alice", "secret1")
		require.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("validates input", func(t *testing.T) {
		var verr *ValidationError

		_, err := svc.Register(ctx, "not-an-email", "bob", "secret1")
		require.ErrorAs(t, err, &verr)

		_, err = svc.Register(ctx, "bob@example.com", "ab", "secret1")
		require.ErrorAs(t, err, &verr)

		_, err = svc.Register(ctx, "bob@example.com", "bob", "short")
		require.ErrorAs(t, err, &verr)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t, newTestStore(t))

	registered, err := svc.Register(ctx, "alice@example.com", "alice", "secret1")
	require.NoError(t, err)

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		user, token, err := svc.Login(ctx, "alice@example.com", "secret1", "")
		require.NoError(t, err)
		require.Equal(t, registered.ID, user.ID)
		require.NotEmpty(t, token)
	})

	t.Run("email lookup is case-insensitive", func(t *testing.T) {
		_, token, err := svc.Login(ctx, "ALICE@Example.com", "secret1", "")
		require.NoError(t, err)
		require.NotEmpty(t, token)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		_, _, errUnknown := svc.Login(ctx, "nobody@example.com", "secret1", "")
		_, _, errWrongPw := svc.Login(ctx, "alice@example.com", "wrongpass", "")

		require.ErrorIs(t, errUnknown, ErrInvalidCredentials)
		require.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
		require.Equal(t, errUnknown.Error(), errWrongPw.Error())
	})
}

func TestLoginWithMFA(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newAuthService(t, st)
	mfa := &MFAService{Store: st, Issuer: "stockfolio-test"}

	user, err := svc.Register(ctx, "carol@example.com", "carol", "secret1")
	require.NoError(t, err)

	enr, err := mfa.Enroll(ctx, user.ID)
	require.NoError(t, err)

	code, err := totp.GenerateCode(enr.Secret, time.Now())
	require.NoError(t, err)
	require.NoError(t, mfa.Activate(ctx, user.ID, code))

	t.Run("password alone is not enough", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "carol@example.com", "secret1", "")
		require.ErrorIs(t, err, ErrMFARequired)
	})

	t.Run("bad code is rejected", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "carol@example.com", "secret1", "000000")
		require.ErrorIs(t, err, ErrInvalidTOTPCode)
	})

	t.Run("valid code completes login", func(t *testing.T) {
		code, err := totp.GenerateCode(enr.Secret, time.Now())
		require.NoError(t, err)

		_, token, err := svc.Login(ctx, "carol@example.com", "secret1", code)
		require.NoError(t, err)
		require.NotEmpty(t, token)
	})

	t.Run("wrong password wins over missing code", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "carol@example.com", "wrongpass", "")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestCurrentUser(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t, newTestStore(t))

	user, err := svc.Register(ctx, "alice@example.com", "alice", "secret1")
	require.NoError(t, err)

	got, err := svc.CurrentUser(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)

	_, err = svc.CurrentUser(ctx, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV")
	require.Error(t, err)
}
