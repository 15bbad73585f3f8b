package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/fernwick/stockfolio/internal/tracker/domain"
	"github.com/fernwick/stockfolio/internal/tracker/store"
	"github.com/fernwick/stockfolio/pkg/cryptox"
)

type ProfileService struct {
	Store store.Store
}

// Get returns the owner's identity.
func (s *ProfileService) Get(ctx context.Context, ownerID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, ownerID)
}

// UpdateUsername renames the account. Renaming to the current username is
// a permitted no-op; colliding with anyone else is a conflict.
func (s *ProfileService) UpdateUsername(ctx context.Context, ownerID, username string) (domain.User, error) {
	username = strings.TrimSpace(username)
	if err := validateUsername(username); err != nil {
		return domain.User{}, err
	}

	existing, err := s.Store.Users().GetUserByUsername(ctx, username)
	switch {
	case err == nil && existing.ID != ownerID:
		return domain.User{}, ErrUsernameTaken
	case err != nil && !errors.Is(err, store.ErrNotFound):
		return domain.User{}, err
	}

	if err := s.Store.Users().UpdateUsername(ctx, ownerID, username); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUsernameTaken
		}
		return domain.User{}, err
	}
	return s.Store.Users().GetUserByID(ctx, ownerID)
}

// UpdateEmail changes the account email after re-verifying the current
// password. Re-verification is deliberate for email (it redirects password
// resets) and deliberately absent for username changes.
func (s *ProfileService) UpdateEmail(ctx context.Context, ownerID, email, currentPassword string) (domain.User, error) {
	email = NormalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return domain.User{}, err
	}

	user, err := s.Store.Users().GetUserByID(ctx, ownerID)
	if err != nil {
		return domain.User{}, err
	}
	if err := cryptox.VerifyPassword(currentPassword, user.PasswordHash); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}

	existing, err := s.Store.Users().GetUserByEmail(ctx, email)
	switch {
	case err == nil && existing.ID != ownerID:
		return domain.User{}, ErrEmailTaken
	case err != nil && !errors.Is(err, store.ErrNotFound):
		return domain.User{}, err
	}

	if err := s.Store.Users().UpdateEmail(ctx, ownerID, email); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, err
	}
	return s.Store.Users().GetUserByID(ctx, ownerID)
}

// ChangePassword rotates the password after re-verifying the current one.
func (s *ProfileService) ChangePassword(ctx context.Context, ownerID, currentPassword, newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	user, err := s.Store.Users().GetUserByID(ctx, ownerID)
	if err != nil {
		return err
	}
	if err := cryptox.VerifyPassword(currentPassword, user.PasswordHash); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.Store.Users().UpdatePasswordHash(ctx, ownerID, hash)
}

// Stats aggregates the owner's ledger through the same valuation used on
// the list path.
type Stats struct {
	TotalInvestments     int
	TotalInvested        float64
	CurrentValue         float64
	InvestmentsWithPrice int
	TopPerformers        []Performer
}

// Performer is one entry of the top-3 leaderboard, ranked by gain/loss
// percent among priced records.
type Performer struct {
	Symbol          string
	CompanyName     string
	GainLossPercent float64
}

// Stats derives the aggregate view of the owner's records. CurrentValue
// sums only priced records; the top performers are the three best priced
// records by gain/loss percent, ties kept in list order.
func (s *ProfileService) Stats(ctx context.Context, ownerID string) (Stats, error) {
	rows, err := s.Store.Investments().ListInvestments(ctx, ownerID)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{TopPerformers: []Performer{}}
	var priced []Performer

	for _, inv := range rows {
		v := domain.ValuateInvestment(inv)
		stats.TotalInvestments++
		stats.TotalInvested += v.PurchaseValue

		if v.CurrentValue == nil {
			continue
		}
		stats.InvestmentsWithPrice++
		stats.CurrentValue += *v.CurrentValue
		priced = append(priced, Performer{
			Symbol:          inv.Symbol,
			CompanyName:     inv.CompanyName,
			GainLossPercent: *v.GainLossPercent,
		})
	}

	sort.SliceStable(priced, func(i, j int) bool {
		return priced[i].GainLossPercent > priced[j].GainLossPercent
	})
	if len(priced) > 3 {
		priced = priced[:3]
	}
	stats.TopPerformers = append(stats.TopPerformers, priced...)

	return stats, nil
}
