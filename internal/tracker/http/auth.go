package http

import (
	"net/http"
	"time"

	"github.com/fernwick/stockfolio/internal/tracker/service"
	"github.com/fernwick/stockfolio/pkg/foliosdk"
	"github.com/fernwick/stockfolio/pkg/httpx"
	"github.com/fernwick/stockfolio/pkg/slogx"
)

type AuthHandler struct {
	AuthService *service.AuthService
	SessionTTL  time.Duration
	Secure      bool // cookie Secure flag, off only in local dev
}

// HandleRegister handles POST /api/auth/register
//
//	@Summary		Register a new account
//	@Description	Creates a new user identity. Email and username must each be unique.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		foliosdk.RegisterRequest	true	"email, username, password"
//	@Success		201		{object}	foliosdk.UserResponse		"Public user fields"
//	@Failure		400		{object}	foliosdk.APIError			"Validation failure"
//	@Failure		409		{object}	foliosdk.APIError			"Email or username already taken"
//	@Router			/api/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req foliosdk.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		foliosdk.NewValidationError("invalid JSON body").WriteError(w)
		return
	}

	user, err := h.AuthService.Register(ctx, req.Email, req.Username, req.Password)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Info("user registered", "user_id", user.ID)
	httpx.WriteJSON(w, http.StatusCreated, userResponse(user))
}

// HandleLogin handles POST /api/auth/login
//
//	@Summary		Log in
//	@Description	Verifies credentials and sets the session cookie. Accounts with MFA enabled must supply a totp_code.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		foliosdk.LoginRequest		true	"email, password, optional totp_code"
//	@Success		200		{object}	foliosdk.MessageResponse	"Session cookie set"
//	@Failure		401		{object}	foliosdk.APIError			"Invalid credentials or missing TOTP code"
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req foliosdk.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		foliosdk.NewValidationError("invalid JSON body").WriteError(w)
		return
	}

	user, token, err := h.AuthService.Login(ctx, req.Email, req.Password, req.TOTPCode)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.SetSessionCookie(w, token, h.SessionTTL, h.Secure)
	log.Info("user logged in", "user_id", user.ID)
	httpx.WriteJSON(w, http.StatusOK, foliosdk.MessageResponse{Message: "login successful"})
}

// HandleLogout handles GET /api/auth/logout
//
//	@Summary		Log out
//	@Description	Clears the session cookie. Idempotent; succeeds whether or not a session exists.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	foliosdk.MessageResponse	"Session cookie cleared"
//	@Router			/api/auth/logout [get].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	httpx.ClearSessionCookie(w, h.Secure)
	httpx.WriteJSON(w, http.StatusOK, foliosdk.MessageResponse{Message: "logged out"})
}

// HandleUser handles GET /api/auth/user
//
//	@Summary		Current user
//	@Description	Returns the authenticated user's public fields.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	foliosdk.UserResponse	"Public user fields"
//	@Failure		401	{object}	foliosdk.APIError		"Missing or invalid session"
//	@Failure		404	{object}	foliosdk.APIError		"Token valid but user no longer exists"
//	@Router			/api/auth/user [get].
func (h *AuthHandler) HandleUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserID(ctx)
	if userID == "" {
		foliosdk.ErrUnauthenticated.WriteError(w)
		return
	}

	user, err := h.AuthService.CurrentUser(ctx, userID)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, userResponse(user))
}
