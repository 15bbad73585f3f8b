package foliosdk

// Request and response types shared between the HTTP handlers, the SDK
// client, and the end-to-end tests. Handlers marshal exactly these shapes,
// so the SDK never drifts from the server.

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest authenticates with email and password. TOTPCode is only
// required for accounts with MFA enabled.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	TOTPCode string `json:"totp_code,omitempty"`
}

// UserResponse is the public view of a user. The password hash is never
// serialized anywhere.
type UserResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Username   string `json:"username"`
	MFAEnabled bool   `json:"mfa_enabled"`
	CreatedAt  string `json:"created_at"`
}

// MessageResponse is a plain confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreateInvestmentRequest records a new buy-side position. Date is the
// trade date in YYYY-MM-DD form. CurrentPrice may be omitted when the
// position has not been priced yet.
type CreateInvestmentRequest struct {
	Date          string   `json:"date"`
	Symbol        string   `json:"symbol"`
	CompanyName   string   `json:"company_name"`
	Quantity      float64  `json:"quantity"`
	PurchasePrice float64  `json:"purchase_price"`
	CurrentPrice  *float64 `json:"current_price,omitempty"`
}

// UpdatePriceRequest sets the current price of a position.
type UpdatePriceRequest struct {
	CurrentPrice *float64 `json:"current_price"`
}

// InvestmentResponse is a stored record augmented with its valuation.
// The derived fields are null whenever the record has no current price;
// purchase_value is always present.
type InvestmentResponse struct {
	ID            string   `json:"id"`
	Date          string   `json:"date"`
	Symbol        string   `json:"symbol"`
	CompanyName   string   `json:"company_name"`
	Quantity      float64  `json:"quantity"`
	PurchasePrice float64  `json:"purchase_price"`
	CurrentPrice  *float64 `json:"current_price"`

	PurchaseValue   float64  `json:"purchase_value"`
	CurrentValue    *float64 `json:"current_value"`
	GainLossValue   *float64 `json:"gain_loss_value"`
	GainLossPercent *float64 `json:"gain_loss_percent"`

	CreatedAt string `json:"created_at"`
}

// UpdateUsernameRequest renames the account.
type UpdateUsernameRequest struct {
	Username string `json:"username"`
}

// UpdateEmailRequest changes the account email. The current password must
// be re-verified.
type UpdateEmailRequest struct {
	Email           string `json:"email"`
	CurrentPassword string `json:"current_password"`
}

// ChangePasswordRequest rotates the account password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// TopPerformer is one entry of the stats top-3 leaderboard.
type TopPerformer struct {
	Symbol          string  `json:"symbol"`
	CompanyName     string  `json:"company_name"`
	GainLossPercent float64 `json:"gain_loss_percent"`
}

// StatsResponse aggregates the owner's ledger. CurrentValue sums only
// priced records.
type StatsResponse struct {
	TotalInvestments     int            `json:"total_investments"`
	TotalInvested        float64        `json:"total_invested"`
	CurrentValue         float64        `json:"current_value"`
	InvestmentsWithPrice int            `json:"investments_with_price"`
	TopPerformers        []TopPerformer `json:"top_performers"`
}

// MFAEnrollResponse carries the freshly generated TOTP secret. The secret
// is only returned once, at enrollment.
type MFAEnrollResponse struct {
	Secret     string `json:"secret"`
	OTPAuthURL string `json:"otpauth_url"`
}

// MFAActivateRequest confirms enrollment with a first valid code.
type MFAActivateRequest struct {
	Code string `json:"code"`
}

// MFADisableRequest removes the second factor, verified by a current code.
type MFADisableRequest struct {
	Code string `json:"code"`
}

// HealthChecks reports the state of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the /livez and /readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
