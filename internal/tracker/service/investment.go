package service

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/fernwick/stockfolio/internal/tracker/domain"
	"github.com/fernwick/stockfolio/internal/tracker/store"
	"github.com/fernwick/stockfolio/pkg/idx"
)

type InvestmentService struct {
	Store store.Store
}

// CreateInvestmentParams are the caller-supplied fields of a new record.
type CreateInvestmentParams struct {
	Date          time.Time
	Symbol        string
	CompanyName   string
	Quantity      float64
	PurchasePrice float64
	CurrentPrice  *float64
}

// ValuedInvestment is a stored record with its derived valuation.
type ValuedInvestment struct {
	domain.Investment
	Valuation domain.Valuation
}

// Create validates and inserts a new record for owner. Symbols are
// normalized to upper case at this boundary.
func (s *InvestmentService) Create(ctx context.Context, ownerID string, p CreateInvestmentParams) (domain.Investment, error) {
	p.Symbol = strings.ToUpper(strings.TrimSpace(p.Symbol))
	p.CompanyName = strings.TrimSpace(p.CompanyName)

	if p.Date.IsZero() {
		return domain.Investment{}, validationf("a trade date is required")
	}
	if p.Symbol == "" {
		return domain.Investment{}, validationf("a ticker symbol is required")
	}
	if !isFinite(p.Quantity) || p.Quantity <= 0 {
		return domain.Investment{}, validationf("quantity must be a positive number")
	}
	if !isFinite(p.PurchasePrice) || p.PurchasePrice < 0 {
		return domain.Investment{}, validationf("purchase price must be a non-negative number")
	}
	if p.CurrentPrice != nil && (!isFinite(*p.CurrentPrice) || *p.CurrentPrice < 0) {
		return domain.Investment{}, validationf("current price must be a non-negative number")
	}

	inv := domain.Investment{
		ID:            idx.New().String(),
		UserID:        ownerID,
		Date:          p.Date.UTC(),
		Symbol:        p.Symbol,
		CompanyName:   p.CompanyName,
		Quantity:      p.Quantity,
		PurchasePrice: p.PurchasePrice,
		CurrentPrice:  p.CurrentPrice,
	}
	if err := s.Store.Investments().CreateInvestment(ctx, inv); err != nil {
		return domain.Investment{}, err
	}

	return s.Store.Investments().GetInvestment(ctx, inv.ID, ownerID)
}

// List returns all of owner's records with valuations, ordered by trade
// date descending with a stable insertion-order tie-break.
func (s *InvestmentService) List(ctx context.Context, ownerID string) ([]ValuedInvestment, error) {
	rows, err := s.Store.Investments().ListInvestments(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	out := make([]ValuedInvestment, 0, len(rows))
	for _, inv := range rows {
		out = append(out, ValuedInvestment{
			Investment: inv,
			Valuation:  domain.ValuateInvestment(inv),
		})
	}
	return out, nil
}

// UpdatePrice sets the current price on an owned record and returns the
// updated record with its valuation. A record owned by someone else is
// store.ErrNotFound, same as a missing one.
func (s *InvestmentService) UpdatePrice(ctx context.Context, ownerID, recordID string, price float64) (ValuedInvestment, error) {
	if !isFinite(price) || price < 0 {
		return ValuedInvestment{}, validationf("current price must be a non-negative number")
	}

	var inv domain.Investment
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Investments().UpdateCurrentPrice(ctx, recordID, ownerID, price); err != nil {
			return err
		}
		var err error
		inv, err = tx.Investments().GetInvestment(ctx, recordID, ownerID)
		return err
	})
	if err != nil {
		return ValuedInvestment{}, err
	}

	return ValuedInvestment{Investment: inv, Valuation: domain.ValuateInvestment(inv)}, nil
}

// Delete removes an owned record. Same not-found semantics as UpdatePrice.
func (s *InvestmentService) Delete(ctx context.Context, ownerID, recordID string) error {
	return s.Store.Investments().DeleteInvestment(ctx, recordID, ownerID)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
