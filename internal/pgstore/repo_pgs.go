// Package pgstore manages the PostgreSQL repository layer of ledgers.
package pgstore

import (
	"context"
	"fmt"

	"github.com/go-petr/private-bank/internal/domain"
	"github.com/go-petr/private-bank/pkg/dbpkg"
	"github.com/go-petr/private-bank/pkg/errorspkg"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates ledger repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns ledger RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

// fail logs err with its PostgreSQL error code, if any, and hides it behind
// errorspkg.ErrInternal.
func fail(ctx context.Context, account string, err error) error {
	e := zerolog.Ctx(ctx).Error().Err(err)

	if account != "" {
		e = e.Str("account", account)
	}

	if pqErr, ok := err.(*pq.Error); ok {
		e = e.Str("pq_code", pqErr.Code.Name())
	}

	e.Send()

	return fmt.Errorf("%w: %v", errorspkg.ErrInternal, err)
}

const listQuery = `
SELECT account, data
FROM ledgers
ORDER BY account
`

// List returns every ledger record.
func (r *RepoPGS) List(ctx context.Context) ([]domain.LedgerRecord, error) {
	rows, err := r.db.QueryContext(ctx, listQuery)
	if err != nil {
		return nil, fail(ctx, "", err)
	}
	defer rows.Close()

	var records []domain.LedgerRecord

	for rows.Next() {
		var rec domain.LedgerRecord

		if err := rows.Scan(&rec.Account, &rec.Data); err != nil {
			return nil, fail(ctx, "", err)
		}

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fail(ctx, "", err)
	}

	return records, nil
}

const saveQuery = `
INSERT INTO
    ledgers (account, data)
VALUES
    ($1, $2)
ON CONFLICT (account) DO UPDATE
SET data = EXCLUDED.data, updated_at = now()
`

// Save inserts or replaces the ledger record of the account.
func (r *RepoPGS) Save(ctx context.Context, account string, data []byte) error {
	if _, err := r.db.ExecContext(ctx, saveQuery, account, data); err != nil {
		return fail(ctx, account, err)
	}

	return nil
}

const deleteQuery = `
DELETE FROM ledgers
WHERE account = $1
`

// Delete removes the ledger record of the account.
func (r *RepoPGS) Delete(ctx context.Context, account string) error {
	if _, err := r.db.ExecContext(ctx, deleteQuery, account); err != nil {
		return fail(ctx, account, err)
	}

	return nil
}
