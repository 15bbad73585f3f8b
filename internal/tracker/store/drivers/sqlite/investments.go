package sqlite

import (
	"context"
	"database/sql"

	"github.com/fernwick/stockfolio/internal/tracker/domain"
	"github.com/fernwick/stockfolio/internal/tracker/store"
)

type investmentsRepo struct {
	db DBTX
}

const investmentColumns = `id, user_id, date, symbol, company_name, quantity, purchase_price, current_price, created_at, updated_at`

func scanInvestment(scan func(dest ...any) error) (domain.Investment, error) {
	var inv domain.Investment
	var currentPrice sql.NullFloat64

	err := scan(
		&inv.ID, &inv.UserID, &inv.Date, &inv.Symbol, &inv.CompanyName,
		&inv.Quantity, &inv.PurchasePrice, &currentPrice,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return domain.Investment{}, err
	}

	inv.CurrentPrice = mapNullFloatPtr(currentPrice)
	return inv, nil
}

func (r *investmentsRepo) GetInvestment(ctx context.Context, id, userID string) (domain.Investment, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+investmentColumns+` FROM investments WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	inv, err := scanInvestment(row.Scan)
	if err != nil {
		return domain.Investment{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *investmentsRepo) ListInvestments(ctx context.Context, userID string) ([]domain.Investment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+investmentColumns+` FROM investments
		 WHERE user_id = ?
		 ORDER BY date DESC, id ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []domain.Investment
	for rows.Next() {
		inv, err := scanInvestment(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *investmentsRepo) CreateInvestment(ctx context.Context, inv domain.Investment) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO investments
		 (id, user_id, date, symbol, company_name, quantity, purchase_price, current_price, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`,
		inv.ID, inv.UserID, inv.Date, inv.Symbol, inv.CompanyName,
		inv.Quantity, inv.PurchasePrice, mapOptionalFloat(inv.CurrentPrice),
	)
	if err != nil {
		return mapConflict(err)
	}
	return nil
}

func (r *investmentsRepo) UpdateCurrentPrice(ctx context.Context, id, userID string, price float64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE investments SET current_price = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND user_id = ?`,
		price, id, userID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *investmentsRepo) DeleteInvestment(ctx context.Context, id, userID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM investments WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// requireRow converts a zero-row write into ErrNotFound. The owner scoping
// in the WHERE clause makes "someone else's record" and "no such record"
// the same outcome on purpose.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
