package http

import (
	"net/http"

	"github.com/fernwick/stockfolio/internal/tracker/service"
	"github.com/fernwick/stockfolio/pkg/foliosdk"
	"github.com/fernwick/stockfolio/pkg/httpx"
	"github.com/fernwick/stockfolio/pkg/slogx"
)

type ProfileHandler struct {
	ProfileService *service.ProfileService
}

// HandleGet handles GET /api/profile
//
//	@Summary		Profile
//	@Description	Returns the authenticated user's profile fields.
//	@Tags			Profile
//	@Produce		json
//	@Success		200	{object}	foliosdk.UserResponse
//	@Failure		401	{object}	foliosdk.APIError	"Missing or invalid session"
//	@Router			/api/profile [get].
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserID(ctx)
	if userID == "" {
		foliosdk.ErrUnauthenticated.WriteError(w)
		return
	}

	user, err := h.ProfileService.Get(ctx, userID)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, userResponse(user))
}

// HandleUpdateUsername handles PUT /api/profile/username
//
//	@Summary		Change username
//	@Description	Updates the display name. No password confirmation required.
//	@Tags			Profile
//	@Accept			json
//	@Produce		json
//	@Param			request	body		foliosdk.UpdateUsernameRequest	true	"new username"
//	@Success		200		{object}	foliosdk.UserResponse			"Updated profile"
//	@Failure		400		{object}	foliosdk.APIError				"Validation failure"
//	@Failure		401		{object}	foliosdk.APIError				"Missing or invalid session"
//	@Failure		409		{object}	foliosdk.APIError				"Username already taken"
//	@Router			/api/profile/username [put].
func (h *ProfileHandler) HandleUpdateUsername(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserID(ctx)
	if userID == "" {
		foliosdk.ErrUnauthenticated.WriteError(w)
		return
	}

	var req foliosdk.UpdateUsernameRequest
	if err := decodeJSON(r, &req); err != nil {
		foliosdk.NewValidationError("invalid JSON body").WriteError(w)
		return
	}

	user, err := h.ProfileService.UpdateUsername(ctx, userID, req.Username)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Info("username updated", "user_id", userID)
	httpx.WriteJSON(w, http.StatusOK, userResponse(user))
}

// HandleUpdateEmail handles PUT /api/profile/email
//
//	@Summary		Change email
//	@Description	Updates the login email. Requires the current password.
//	@Tags			Profile
//	@Accept			json
//	@Produce		json
//	@Param			request	body		foliosdk.UpdateEmailRequest	true	"new email, current password"
//	@Success		200		{object}	foliosdk.UserResponse		"Updated profile"
//	@Failure		400		{object}	foliosdk.APIError			"Validation failure"
//	@Failure		401		{object}	foliosdk.APIError			"Wrong current password"
//	@Failure		409		{object}	foliosdk.APIError			"Email already taken"
//	@Router			/api/profile/email [put].
func (h *ProfileHandler) HandleUpdateEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserID(ctx)
	if userID == "" {
		foliosdk.ErrUnauthenticated.WriteError(w)
		return
	}

	var req foliosdk.UpdateEmailRequest
	if err := decodeJSON(r, &req); err != nil {
		foliosdk.NewValidationError("invalid JSON body").WriteError(w)
		return
	}

	user, err := h.ProfileService.UpdateEmail(ctx, userID, req.Email, req.CurrentPassword)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Info("email updated", "user_id", userID)
	httpx.WriteJSON(w, http.StatusOK, userResponse(user))
}

// HandleChangePassword handles PUT /api/profile/password
//
//	@Summary		Change password
//	@Description	Replaces the password after verifying the current one.
//	@Tags			Profile
//	@Accept			json
//	@Produce		json
//	@Param			request	body		foliosdk.ChangePasswordRequest	true	"current and new password"
//	@Success		200		{object}	foliosdk.MessageResponse
//	@Failure		400		{object}	foliosdk.APIError	"Validation failure"
//	@Failure		401		{object}	foliosdk.APIError	"Wrong current password"
//	@Router			/api/profile/password [put].
func (h *ProfileHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserID(ctx)
	if userID == "" {
		foliosdk.ErrUnauthenticated.WriteError(w)
		return
	}

	var req foliosdk.ChangePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		foliosdk.NewValidationError("invalid JSON body").WriteError(w)
		return
	}

	if err := h.ProfileService.ChangePassword(ctx, userID, req.CurrentPassword, req.NewPassword); err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Info("password changed", "user_id", userID)
	httpx.WriteJSON(w, http.StatusOK, foliosdk.MessageResponse{Message: "password changed"})
}

// HandleStats handles GET /api/profile/stats
//
//	@Summary		Portfolio statistics
//	@Description	Aggregates counts, invested and current totals, and the top three performers by gain percentage.
//	@Tags			Profile
//	@Produce		json
//	@Success		200	{object}	foliosdk.StatsResponse
//	@Failure		401	{object}	foliosdk.APIError	"Missing or invalid session"
//	@Router			/api/profile/stats [get].
func (h *ProfileHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserID(ctx)
	if userID == "" {
		foliosdk.ErrUnauthenticated.WriteError(w)
		return
	}

	stats, err := h.ProfileService.Stats(ctx, userID)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, statsResponse(stats))
}
