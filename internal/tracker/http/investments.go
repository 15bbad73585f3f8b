package http

import (
	"net/http"
	"time"

	"github.com/fernwick/stockfolio/internal/tracker/domain"
	"github.com/fernwick/stockfolio/internal/tracker/service"
	"github.com/fernwick/stockfolio/pkg/foliosdk"
	"github.com/fernwick/stockfolio/pkg/httpx"
	"github.com/fernwick/stockfolio/pkg/idx"
	"github.com/fernwick/stockfolio/pkg/slogx"
)

type InvestmentHandler struct {
	InvestmentService *service.InvestmentService
}

// HandleCreate handles POST /api/investments
//
//	@Summary		Record an investment
//	@Description	Creates an investment owned by the authenticated user.
//	@Tags			Investments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		foliosdk.CreateInvestmentRequest	true	"date, symbol, company_name, quantity, purchase_price, optional current_price"
//	@Success		201		{object}	foliosdk.InvestmentResponse			"Stored record with valuation"
//	@Failure		400		{object}	foliosdk.APIError					"Validation failure"
//	@Failure		401		{object}	foliosdk.APIError					"Missing or invalid session"
//	@Router			/api/investments [post].
func (h *InvestmentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserID(ctx)
	if userID == "" {
		foliosdk.ErrUnauthenticated.WriteError(w)
		return
	}

	var req foliosdk.CreateInvestmentRequest
	if err := decodeJSON(r, &req); err != nil {
		foliosdk.NewValidationError("invalid JSON body").WriteError(w)
		return
	}

	date, err := time.Parse(tradeDateFormat, req.Date)
	if err != nil {
		foliosdk.NewValidationError("date must be in YYYY-MM-DD format").WriteError(w)
		return
	}

	inv, err := h.InvestmentService.Create(ctx, userID, service.CreateInvestmentParams{
		Date:          date,
		Symbol:        req.Symbol,
		CompanyName:   req.CompanyName,
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
		CurrentPrice:  req.CurrentPrice,
	})
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Info("investment created", "user_id", userID, "investment_id", inv.ID, "symbol", inv.Symbol)
	httpx.WriteJSON(w, http.StatusCreated, investmentResponse(service.ValuedInvestment{
		Investment: inv,
		Valuation:  domain.ValuateInvestment(inv),
	}))
}

// HandleList handles GET /api/investments
//
//	@Summary		List investments
//	@Description	Returns all of the authenticated user's investments, newest trade date first, each with valuation fields.
//	@Tags			Investments
//	@Produce		json
//	@Success		200	{array}		foliosdk.InvestmentResponse
//	@Failure		401	{object}	foliosdk.APIError	"Missing or invalid session"
//	@Router			/api/investments [get].
func (h *InvestmentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserID(ctx)
	if userID == "" {
		foliosdk.ErrUnauthenticated.WriteError(w)
		return
	}

	list, err := h.InvestmentService.List(ctx, userID)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	out := make([]foliosdk.InvestmentResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, investmentResponse(inv))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleUpdatePrice handles PUT /api/investments/{id}/price
//
//	@Summary		Update current price
//	@Description	Sets the market price of one investment and returns the refreshed valuation.
//	@Tags			Investments
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Investment ID"
//	@Param			request	body		foliosdk.UpdatePriceRequest	true	"new market price"
//	@Success		200		{object}	foliosdk.InvestmentResponse	"Updated record with valuation"
//	@Failure		400		{object}	foliosdk.APIError			"Validation failure"
//	@Failure		401		{object}	foliosdk.APIError			"Missing or invalid session"
//	@Failure		404		{object}	foliosdk.APIError			"No such investment for this user"
//	@Router			/api/investments/{id}/price [put].
func (h *InvestmentHandler) HandleUpdatePrice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserID(ctx)
	if userID == "" {
		foliosdk.ErrUnauthenticated.WriteError(w)
		return
	}

	id := r.PathValue("id")
	if _, err := idx.Parse(id); err != nil {
		foliosdk.ErrNotFound.WriteError(w)
		return
	}

	var req foliosdk.UpdatePriceRequest
	if err := decodeJSON(r, &req); err != nil {
		foliosdk.NewValidationError("invalid JSON body").WriteError(w)
		return
	}
	if req.CurrentPrice == nil {
		foliosdk.NewValidationError("current price must be a non-negative number").WriteError(w)
		return
	}

	inv, err := h.InvestmentService.UpdatePrice(ctx, userID, id, *req.CurrentPrice)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Info("investment price updated", "user_id", userID, "investment_id", id)
	httpx.WriteJSON(w, http.StatusOK, investmentResponse(inv))
}

// HandleDelete handles DELETE /api/investments/{id}
//
//	@Summary		Delete an investment
//	@Description	Removes one of the authenticated user's investments.
//	@Tags			Investments
//	@Produce		json
//	@Param			id	path		string	true	"Investment ID"
//	@Success		200	{object}	foliosdk.MessageResponse
//	@Failure		401	{object}	foliosdk.APIError	"Missing or invalid session"
//	@Failure		404	{object}	foliosdk.APIError	"No such investment for this user"
//	@Router			/api/investments/{id} [delete].
func (h *InvestmentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserID(ctx)
	if userID == "" {
		foliosdk.ErrUnauthenticated.WriteError(w)
		return
	}

	id := r.PathValue("id")
	if _, err := idx.Parse(id); err != nil {
		foliosdk.ErrNotFound.WriteError(w)
		return
	}

	if err := h.InvestmentService.Delete(ctx, userID, id); err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Info("investment deleted", "user_id", userID, "investment_id", id)
	httpx.WriteJSON(w, http.StatusOK, foliosdk.MessageResponse{Message: "investment deleted"})
}
