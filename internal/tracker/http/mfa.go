package http

import (
	"net/http"

	"github.com/fernwick/stockfolio/internal/tracker/service"
	"github.com/fernwick/stockfolio/pkg/foliosdk"
	"github.com/fernwick/stockfolio/pkg/httpx"
	"github.com/fernwick/stockfolio/pkg/slogx"
)

type MFAHandler struct {
	MFAService *service.MFAService
}

// HandleEnroll handles POST /api/profile/mfa/enroll
//
//	@Summary		Begin MFA enrollment
//	@Description	Generates a TOTP secret and provisioning URL. The secret stays inactive until activated with a valid code.
//	@Tags			MFA
//	@Produce		json
//	@Success		200	{object}	foliosdk.MFAEnrollResponse	"Secret and otpauth:// URL"
//	@Failure		400	{object}	foliosdk.APIError			"MFA already enabled"
//	@Failure		401	{object}	foliosdk.APIError			"Missing or invalid session"
//	@Router			/api/profile/mfa/enroll [post].
func (h *MFAHandler) HandleEnroll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserID(ctx)
	if userID == "" {
		foliosdk.ErrUnauthenticated.WriteError(w)
		return
	}

	enr, err := h.MFAService.Enroll(ctx, userID)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Info("mfa enrollment started", "user_id", userID)
	httpx.WriteJSON(w, http.StatusOK, foliosdk.MFAEnrollResponse{
		Secret:     enr.Secret,
		OTPAuthURL: enr.OTPAuthURL,
	})
}

// HandleActivate handles POST /api/profile/mfa/activate
//
//	@Summary		Activate MFA
//	@Description	Confirms the staged secret with a current TOTP code. Subsequent logins require a code.
//	@Tags			MFA
//	@Accept			json
//	@Produce		json
//	@Param			request	body		foliosdk.MFAActivateRequest	true	"six digit code"
//	@Success		200		{object}	foliosdk.MessageResponse
//	@Failure		400		{object}	foliosdk.APIError	"No enrollment in progress"
//	@Failure		401		{object}	foliosdk.APIError	"Invalid TOTP code"
//	@Router			/api/profile/mfa/activate [post].
func (h *MFAHandler) HandleActivate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserID(ctx)
	if userID == "" {
		foliosdk.ErrUnauthenticated.WriteError(w)
		return
	}

	var req foliosdk.MFAActivateRequest
	if err := decodeJSON(r, &req); err != nil {
		foliosdk.NewValidationError("invalid JSON body").WriteError(w)
		return
	}

	if err := h.MFAService.Activate(ctx, userID, req.Code); err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Info("mfa activated", "user_id", userID)
	httpx.WriteJSON(w, http.StatusOK, foliosdk.MessageResponse{Message: "MFA activated"})
}

// HandleDisable handles DELETE /api/profile/mfa
//
//	@Summary		Disable MFA
//	@Description	Turns MFA off after verifying a current TOTP code.
//	@Tags			MFA
//	@Accept			json
//	@Produce		json
//	@Param			request	body		foliosdk.MFADisableRequest	true	"six digit code"
//	@Success		200		{object}	foliosdk.MessageResponse
//	@Failure		400		{object}	foliosdk.APIError	"MFA not enabled"
//	@Failure		401		{object}	foliosdk.APIError	"Invalid TOTP code"
//	@Router			/api/profile/mfa [delete].
func (h *MFAHandler) HandleDisable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserID(ctx)
	if userID == "" {
		foliosdk.ErrUnauthenticated.WriteError(w)
		return
	}

	var req foliosdk.MFADisableRequest
	if err := decodeJSON(r, &req); err != nil {
		foliosdk.NewValidationError("invalid JSON body").WriteError(w)
		return
	}

	if err := h.MFAService.Disable(ctx, userID, req.Code); err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Info("mfa disabled", "user_id", userID)
	httpx.WriteJSON(w, http.StatusOK, foliosdk.MessageResponse{Message: "MFA disabled"})
}
