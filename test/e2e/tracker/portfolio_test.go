package tracker_test

import (
	"context"
	"testing"

	"github.com/fernwick/stockfolio/pkg/foliosdk"
	"github.com/stretchr/testify/require"
)

// TestPortfolioLifecycle walks a single account through the whole surface:
// register, log in, build up a portfolio, price it, read stats, and tear
// it back down.
func TestPortfolioLifecycle(t *testing.T) {
	baseURL, cleanup := setupTrackerContainer(t)
	defer cleanup()
	ctx := context.Background()

	client := newAccount(t, baseURL, "alice@example.com", "alice")

	user, err := client.CurrentUser(ctx)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", user.Email)
	require.Equal(t, "alice", user.Username)
	require.False(t, user.MFAEnabled)

	t.Run("CreateUnpricedInvestment", func(t *testing.T) {
		inv, err := client.CreateInvestment(ctx, foliosdk.CreateInvestmentRequest{
			Date:          "2024-01-01",
			Symbol:        "aaa",
			CompanyName:   "Triple A Mining",
			Quantity:      5,
			PurchasePrice: 20,
		})
		require.NoError(t, err)
		require.Equal(t, "AAA", inv.Symbol)
		require.Equal(t, "2024-01-01", inv.Date)
		require.InDelta(t, 100.0, inv.PurchaseValue, 1e-9)
		require.Nil(t, inv.CurrentPrice)
		require.Nil(t, inv.CurrentValue)
		require.Nil(t, inv.GainLossValue)
		require.Nil(t, inv.GainLossPercent)
	})

	t.Run("CreatePricedInvestment", func(t *testing.T) {
		price := 11.0
		inv, err := client.CreateInvestment(ctx, foliosdk.CreateInvestmentRequest{
			Date:          "2024-03-15",
			Symbol:        "BBB",
			CompanyName:   "Bravo Beverages",
			Quantity:      100,
			PurchasePrice: 10,
			CurrentPrice:  &price,
		})
		require.NoError(t, err)
		require.NotNil(t, inv.GainLossPercent)
		require.InDelta(t, 10.0, *inv.GainLossPercent, 1e-9)
	})

	t.Run("ListIsNewestFirst", func(t *testing.T) {
		list, err := client.ListInvestments(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "BBB", list[0].Symbol)
		require.Equal(t, "AAA", list[1].Symbol)
	})

	t.Run("UpdatePrice", func(t *testing.T) {
		list, err := client.ListInvestments(ctx)
		require.NoError(t, err)

		var aaaID string
		for _, inv := range list {
			if inv.Symbol == "AAA" {
				aaaID = inv.ID
			}
		}
		require.NotEmpty(t, aaaID)

		inv, err := client.UpdatePrice(ctx, aaaID, 25)
		require.NoError(t, err)
		require.NotNil(t, inv.CurrentValue)
		require.InDelta(t, 125.0, *inv.CurrentValue, 1e-9)
		require.NotNil(t, inv.GainLossPercent)
		require.InDelta(t, 25.0, *inv.GainLossPercent, 1e-9)
	})

	t.Run("Stats", func(t *testing.T) {
		stats, err := client.Stats(ctx)
		require.NoError(t, err)
		require.Equal(t, 2, stats.TotalInvestments)
		require.Equal(t, 2, stats.InvestmentsWithPrice)
		require.InDelta(t, 1100.0, stats.TotalInvested, 1e-9)
		require.InDelta(t, 1225.0, stats.CurrentValue, 1e-9)
		require.Len(t, stats.TopPerformers, 2)
		require.Equal(t, "AAA", stats.TopPerformers[0].Symbol)
		require.InDelta(t, 25.0, stats.TopPerformers[0].GainLossPercent, 1e-9)
	})

	t.Run("DeleteInvestment", func(t *testing.T) {
		list, err := client.ListInvestments(ctx)
		require.NoError(t, err)

		for _, inv := range list {
			require.NoError(t, client.DeleteInvestment(ctx, inv.ID))
		}

		list, err = client.ListInvestments(ctx)
		require.NoError(t, err)
		require.Empty(t, list)
	})

	t.Run("Logout", func(t *testing.T) {
		require.NoError(t, client.Logout(ctx))

		_, err := client.CurrentUser(ctx)
		assertAPIError(t, err, 401, "unauthenticated")
	})
}

// TestProfileManagement covers renaming, email changes, password rotation,
// and the credential re-verification rules around them.
func TestProfileManagement(t *testing.T) {
	baseURL, cleanup := setupTrackerContainer(t)
	defer cleanup()
	ctx := context.Background()

	client := newAccount(t, baseURL, "carol@example.com", "carol")

	t.Run("RenameWithoutPassword", func(t *testing.T) {
		user, err := client.UpdateUsername(ctx, "caroline")
		require.NoError(t, err)
		require.Equal(t, "caroline", user.Username)
	})

	t.Run("EmailChangeRequiresPassword", func(t *testing.T) {
		_, err := client.UpdateEmail(ctx, "caroline@example.com", "wrong-password")
		assertAPIError(t, err, 401, "auth_error")

		user, err := client.UpdateEmail(ctx, "Caroline@Example.com", defaultPassword)
		require.NoError(t, err)
		require.Equal(t, "caroline@example.com", user.Email)
	})

	t.Run("PasswordRotation", func(t *testing.T) {
		err := client.ChangePassword(ctx, "wrong-password", "newsecret1")
		assertAPIError(t, err, 401, "auth_error")

		require.NoError(t, client.ChangePassword(ctx, defaultPassword, "newsecret1"))

		require.NoError(t, client.Logout(ctx))
		err = client.Login(ctx, foliosdk.LoginRequest{
			Email:    "caroline@example.com",
			Password: defaultPassword,
		})
		assertAPIError(t, err, 401, "auth_error")

		require.NoError(t, client.Login(ctx, foliosdk.LoginRequest{
			Email:    "caroline@example.com",
			Password: "newsecret1",
		}))
	})
}
