package http

import (
	"time"

	"github.com/fernwick/stockfolio/internal/tracker/domain"
	"github.com/fernwick/stockfolio/internal/tracker/service"
	"github.com/fernwick/stockfolio/pkg/foliosdk"
)

const tradeDateFormat = "2006-01-02"

func userResponse(u domain.User) foliosdk.UserResponse {
	return foliosdk.UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Username:   u.Username,
		MFAEnabled: u.HasMFA(),
		CreatedAt:  u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func investmentResponse(vi service.ValuedInvestment) foliosdk.InvestmentResponse {
	return foliosdk.InvestmentResponse{
		ID:            vi.ID,
		Date:          vi.Date.UTC().Format(tradeDateFormat),
		Symbol:        vi.Symbol,
		CompanyName:   vi.CompanyName,
		Quantity:      vi.Quantity,
		PurchasePrice: vi.PurchasePrice,
		CurrentPrice:  vi.CurrentPrice,

		PurchaseValue:   vi.Valuation.PurchaseValue,
		CurrentValue:    vi.Valuation.CurrentValue,
		GainLossValue:   vi.Valuation.GainLossValue,
		GainLossPercent: vi.Valuation.GainLossPercent,

		CreatedAt: vi.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func statsResponse(s service.Stats) foliosdk.StatsResponse {
	performers := make([]foliosdk.TopPerformer, 0, len(s.TopPerformers))
	for _, p := range s.TopPerformers {
		performers = append(performers, foliosdk.TopPerformer{
			Symbol:          p.Symbol,
			CompanyName:     p.CompanyName,
			GainLossPercent: p.GainLossPercent,
		})
	}
	return foliosdk.StatsResponse{
		TotalInvestments:     s.TotalInvestments,
		TotalInvested:        s.TotalInvested,
		CurrentValue:         s.CurrentValue,
		InvestmentsWithPrice: s.InvestmentsWithPrice,
		TopPerformers:        performers,
	}
}
