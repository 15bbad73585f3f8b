package foliosdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// Client is a typed client for the stockfolio API. The session cookie set
// by Login is held in the client's cookie jar, so one Client corresponds to
// one authenticated browser session.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client with its own cookie jar.
func NewClient(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("foliosdk: create cookie jar: %w", err)
	}
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Jar:     jar,
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Register creates a new account. It does not log in.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	var out UserResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates and stores the session cookie in the jar.
func (c *Client) Login(ctx context.Context, req LoginRequest) error {
	return c.do(ctx, http.MethodPost, "/api/auth/login", req, nil)
}

// Logout clears the session. Safe to call when not logged in.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/auth/logout", nil, nil)
}

// CurrentUser returns the authenticated user's public fields.
func (c *Client) CurrentUser(ctx context.Context) (*UserResponse, error) {
	var out UserResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/user", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateInvestment records a new position and returns the stored record.
func (c *Client) CreateInvestment(ctx context.Context, req CreateInvestmentRequest) (*InvestmentResponse, error) {
	var out InvestmentResponse
	if err := c.do(ctx, http.MethodPost, "/api/investments", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListInvestments returns all of the caller's records with valuations,
// newest trade date first.
func (c *Client) ListInvestments(ctx context.Context) ([]InvestmentResponse, error) {
	var out []InvestmentResponse
	if err := c.do(ctx, http.MethodGet, "/api/investments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdatePrice sets the current price on one of the caller's records.
func (c *Client) UpdatePrice(ctx context.Context, id string, price float64) (*InvestmentResponse, error) {
	var out InvestmentResponse
	req := UpdatePriceRequest{CurrentPrice: &price}
	if err := c.do(ctx, http.MethodPut, "/api/investments/"+id+"/price", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteInvestment removes one of the caller's records.
func (c *Client) DeleteInvestment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/investments/"+id, nil, nil)
}

// Profile returns the caller's profile fields.
func (c *Client) Profile(ctx context.Context) (*UserResponse, error) {
	var out UserResponse
	if err := c.do(ctx, http.MethodGet, "/api/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUsername renames the account.
func (c *Client) UpdateUsername(ctx context.Context, username string) (*UserResponse, error) {
	var out UserResponse
	req := UpdateUsernameRequest{Username: username}
	if err := c.do(ctx, http.MethodPut, "/api/profile/username", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateEmail changes the account email after re-verifying the password.
func (c *Client) UpdateEmail(ctx context.Context, email, currentPassword string) (*UserResponse, error) {
	var out UserResponse
	req := UpdateEmailRequest{Email: email, CurrentPassword: currentPassword}
	if err := c.do(ctx, http.MethodPut, "/api/profile/email", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword rotates the account password.
func (c *Client) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	req := ChangePasswordRequest{CurrentPassword: currentPassword, NewPassword: newPassword}
	return c.do(ctx, http.MethodPut, "/api/profile/password", req, nil)
}

// Stats returns the caller's portfolio aggregates and top performers.
func (c *Client) Stats(ctx context.Context) (*StatsResponse, error) {
	var out StatsResponse
	if err := c.do(ctx, http.MethodGet, "/api/profile/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EnrollMFA starts TOTP enrollment and returns the secret.
func (c *Client) EnrollMFA(ctx context.Context) (*MFAEnrollResponse, error) {
	var out MFAEnrollResponse
	if err := c.do(ctx, http.MethodPost, "/api/profile/mfa/enroll", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ActivateMFA confirms enrollment with a first valid code.
func (c *Client) ActivateMFA(ctx context.Context, code string) error {
	return c.do(ctx, http.MethodPost, "/api/profile/mfa/activate", MFAActivateRequest{Code: code}, nil)
}

// DisableMFA removes the second factor, verified by a current code.
func (c *Client) DisableMFA(ctx context.Context, code string) error {
	return c.do(ctx, http.MethodDelete, "/api/profile/mfa", MFADisableRequest{Code: code}, nil)
}

// do performs a JSON request/response round trip. Non-2xx responses are
// parsed into *APIError.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("foliosdk: marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("foliosdk: build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("foliosdk: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("foliosdk: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseError(resp.StatusCode, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("foliosdk: decode response: %w", err)
		}
	}
	return nil
}
