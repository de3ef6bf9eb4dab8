package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/crebito/ledger-api/internal/logger"
	"github.com/crebito/ledger-api/internal/models"
)

// TransactionWriterRepository handles balance mutations and history appends
type TransactionWriterRepository struct {
	db *sqlx.DB
}

func NewTransactionWriterRepository(db *sqlx.DB) *TransactionWriterRepository {
	return &TransactionWriterRepository{db: db}
}

// ApplyDelta applies a signed balance change in a single conditional statement:
// the update happens only if the resulting balance stays within the credit
// limit, evaluated against the persisted balance. Zero affected rows surface
// as sql.ErrNoRows, meaning the guard rejected the write. The new balance and
// credit limit come back from the same statement, no second round trip.
func (r *TransactionWriterRepository) ApplyDelta(ctx context.Context, clientID int, delta int64) (balance, creditLimit int64, err error) {
	const query = `
		UPDATE clients
		SET balance = balance + $1
		WHERE id = $2 AND balance + $1 + credit_limit >= 0
		RETURNING balance, credit_limit
	`

	var row struct {
		Balance     int64 `db:"balance"`
		CreditLimit int64 `db:"credit_limit"`
	}
	err = r.db.GetContext(ctx, &row, query, delta, clientID)

	logger.Log.Infow("balance delta",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{delta, clientID},
		"result", row.Balance,
		"error", err,
	)

	if err != nil {
		return 0, 0, err
	}
	return row.Balance, row.CreditLimit, nil
}

// Save appends an immutable transaction record with a server-assigned commit
// time. Records are never updated or deleted.
func (r *TransactionWriterRepository) Save(ctx context.Context, clientID int, amount int64, kind, description string) error {
	const query = `
		INSERT INTO transactions (client_id, amount, kind, description, realizada_em)
		VALUES ($1, $2, $3, $4, now())
	`

	_, err := r.db.ExecContext(ctx, query, clientID, amount, kind, description)

	logger.Log.Infow("transaction append",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{clientID, amount, kind, description},
		"error", err,
	)

	return err
}

// TransactionReaderRepository handles transaction history reads
type TransactionReaderRepository struct {
	db *sqlx.DB
}

func NewTransactionReaderRepository(db *sqlx.DB) *TransactionReaderRepository {
	return &TransactionReaderRepository{db: db}
}

// ListRecent returns the n most recent transactions for a client, newest
// first. The serial id breaks ties between records sharing a commit timestamp,
// keeping the order deterministic.
func (r *TransactionReaderRepository) ListRecent(ctx context.Context, clientID, n int) ([]models.TransactionDB, error) {
	const query = `
		SELECT id, client_id, amount, kind, description, realizada_em
		FROM transactions
		WHERE client_id = $1
		ORDER BY realizada_em DESC, id DESC
		LIMIT $2
	`

	var txns []models.TransactionDB
	err := r.db.SelectContext(ctx, &txns, query, clientID, n)

	logger.Log.Infow("recent transactions",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{clientID, n},
		"result", len(txns),
		"error", err,
	)

	return txns, err
}
