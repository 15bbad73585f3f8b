package store

import (
	"context"
	"errors"

	"github.com/fernwick/stockfolio/internal/tracker/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Investments() Investments

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, rolling back when fn
	// returns an error and committing otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login. Email is matched exactly;
	// callers are expected to lower-case first.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByUsername is used for uniqueness checks.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the email or username unique
	// constraint fires; the constraint is the authoritative guard.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateUsername mutates the username and bumps updated_at.
	UpdateUsername(ctx context.Context, userID, username string) error

	// UpdateEmail mutates the email and bumps updated_at.
	UpdateEmail(ctx context.Context, userID, email string) error

	// UpdatePasswordHash sets the password_hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID, newHash string) error

	// UpdateMFASecret stages a TOTP secret without activating it.
	UpdateMFASecret(ctx context.Context, userID, secret string) error

	// EnableMFA marks MFA as activated (sets mfa_enabled timestamp).
	EnableMFA(ctx context.Context, userID string) error

	// DisableMFA clears both mfa_enabled and mfa_secret.
	DisableMFA(ctx context.Context, userID string) error
}

type Investments interface {
	// GetInvestment returns a record scoped by (id, owner). A mismatched
	// owner yields ErrNotFound, never a distinguishable error.
	GetInvestment(ctx context.Context, id, userID string) (domain.Investment, error)

	// ListInvestments returns all records owned by userID ordered by
	// trade date descending, ties broken by id ascending (insertion
	// order, since ids are ULIDs).
	ListInvestments(ctx context.Context, userID string) ([]domain.Investment, error)

	// CreateInvestment inserts a new record.
	CreateInvestment(ctx context.Context, inv domain.Investment) error

	// UpdateCurrentPrice sets only the current-price field, scoped by
	// (id, owner). ErrNotFound when no matching owned record exists.
	UpdateCurrentPrice(ctx context.Context, id, userID string, price float64) error

	// DeleteInvestment removes a record scoped by (id, owner).
	// ErrNotFound under the same dual condition as UpdateCurrentPrice.
	DeleteInvestment(ctx context.Context, id, userID string) error
}
