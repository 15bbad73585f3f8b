package domain

import "time"

// Investment is a single buy-side position owned by exactly one user.
// Every read and write must be scoped by (id, user id); a record owned by
// someone else is indistinguishable from a missing one.
type Investment struct {
	ID            string
	UserID        string
	Date          time.Time // trade date
	Symbol        string    // upper-cased at the boundary
	CompanyName   string
	Quantity      float64  // > 0
	PurchasePrice float64  // >= 0
	CurrentPrice  *float64 // nil means "not yet priced"
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
