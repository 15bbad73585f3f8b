package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUpdateUsername(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	auth := newAuthService(t, st)
	alice := registerUser(t, auth, "alice@example.com", "alice")
	registerUser(t, auth, "bob@example.com", "bobby")
	svc := &ProfileService{Store: st}

	t.Run("renames the account", func(t *testing.T) {
		user, err := svc.UpdateUsername(ctx, alice, "alice2")
		require.NoError(t, err)
		require.Equal(t, "alice2", user.Username)
	})

	t.Run("renaming to the current name is a no-op", func(t *testing.T) {
		user, err := svc.UpdateUsername(ctx, alice, "alice2")
		require.NoError(t, err)
		require.Equal(t, "alice2", user.Username)
	})

	t.Run("colliding with another user is a conflict", func(t *testing.T) {
		_, err := svc.UpdateUsername(ctx, alice, "bobby")
		require.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("validates length", func(t *testing.T) {
		var verr *ValidationError
		_, err := svc.UpdateUsername(ctx, alice, "ab")
		require.ErrorAs(t, err, &verr)
	})
}

func TestUpdateEmail(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	auth := newAuthService(t, st)
	alice := registerUser(t, auth, "alice@example.com", "alice")
	registerUser(t, auth, "bob@example.com", "bobby")
	svc := &ProfileService{Store: st}

	t.Run("requires the current password", func(t *testing.T) {
		_, err := svc.UpdateEmail(ctx, alice, "new@example.com", "wrongpass")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("changes the email with the right password", func(t *testing.T) {
		user, err := svc.UpdateEmail(ctx, alice, "New@Example.com", "secret1")
		require.NoError(t, err)
		require.Equal(t, "new@example.com", user.Email)

		// Login follows the new address.
		_, _, err = auth.Login(ctx, "new@example.com", "secret1", "")
		require.NoError(t, err)
		_, _, err = auth.Login(ctx, "alice@example.com", "secret1", "")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("colliding with another user is a conflict", func(t *testing.T) {
		_, err := svc.UpdateEmail(ctx, alice, "bob@example.com", "secret1")
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("validates the address before touching the password", func(t *testing.T) {
		var verr *ValidationError
		_, err := svc.UpdateEmail(ctx, alice, "not-an-email", "secret1")
		require.ErrorAs(t, err, &verr)
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	auth := newAuthService(t, st)
	alice := registerUser(t, auth, "alice@example.com", "alice")
	svc := &ProfileService{Store: st}

	t.Run("requires the current password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, alice, "wrongpass", "newsecret")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("validates the new password first", func(t *testing.T) {
		var verr *ValidationError
		err := svc.ChangePassword(ctx, alice, "secret1", "short")
		require.ErrorAs(t, err, &verr)
	})

	t.Run("rotates the password", func(t *testing.T) {
		require.NoError(t, svc.ChangePassword(ctx, alice, "secret1", "newsecret"))

		_, _, err := auth.Login(ctx, "alice@example.com", "newsecret", "")
		require.NoError(t, err)
		_, _, err = auth.Login(ctx, "alice@example.com", "secret1", "")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	auth := newAuthService(t, st)
	alice := registerUser(t, auth, "alice@example.com", "alice")
	bob := registerUser(t, auth, "bob@example.com", "bobby")
	inv := &InvestmentService{Store: st}
	svc := &ProfileService{Store: st}

	t.Run("empty portfolio", func(t *testing.T) {
		stats, err := svc.Stats(ctx, alice)
		require.NoError(t, err)
		require.Zero(t, stats.TotalInvestments)
		require.Zero(t, stats.TotalInvested)
		require.Zero(t, stats.CurrentValue)
		require.Zero(t, stats.InvestmentsWithPrice)
		require.Empty(t, stats.TopPerformers)
	})

	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mk := func(owner, symbol string, quantity, purchase float64, current *float64) {
		_, err := inv.Create(ctx, owner, CreateInvestmentParams{
			Date: date, Symbol: symbol, CompanyName: symbol + " Corp",
			Quantity: quantity, PurchasePrice: purchase, CurrentPrice: current,
		})
		require.NoError(t, err)
	}

	mk(alice, "AAA", 10, 100, fp(150)) // +50%
	mk(alice, "BBB", 10, 100, fp(110)) // +10%
	mk(alice, "CCC", 10, 100, fp(90))  // -10%
	mk(alice, "DDD", 10, 100, fp(125)) // +25%
	mk(alice, "EEE", 10, 100, nil)     // unpriced
	mk(bob, "ZZZ", 1, 1, fp(100))      // someone else's portfolio

	t.Run("aggregates only the owner's records", func(t *testing.T) {
		stats, err := svc.Stats(ctx, alice)
		require.NoError(t, err)

		require.Equal(t, 5, stats.TotalInvestments)
		require.Equal(t, 5000.0, stats.TotalInvested)
		require.Equal(t, 4, stats.InvestmentsWithPrice)
		// 1500 + 1100 + 900 + 1250; the unpriced record contributes nothing.
		require.Equal(t, 4750.0, stats.CurrentValue)
	})

	t.Run("top performers are the best three priced records", func(t *testing.T) {
		stats, err := svc.Stats(ctx, alice)
		require.NoError(t, err)

		require.Len(t, stats.TopPerformers, 3)
		require.Equal(t, "AAA", stats.TopPerformers[0].Symbol)
		require.Equal(t, 50.0, stats.TopPerformers[0].GainLossPercent)
		require.Equal(t, "DDD", stats.TopPerformers[1].Symbol)
		require.Equal(t, "BBB", stats.TopPerformers[2].Symbol)
	})
}
