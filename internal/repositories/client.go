package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/crebito/ledger-api/internal/logger"
	"github.com/crebito/ledger-api/internal/models"
)

// ClientReaderRepository handles client read operations
type ClientReaderRepository struct {
	db *sqlx.DB
}

func NewClientReaderRepository(db *sqlx.DB) *ClientReaderRepository {
	return &ClientReaderRepository{db: db}
}

// GetSnapshot returns the balance, credit limit and database server time for
// a client in one read. Returns sql.ErrNoRows for an unknown client.
func (r *ClientReaderRepository) GetSnapshot(ctx context.Context, clientID int) (*models.ClientSnapshot, error) {
	const query = `
		SELECT balance, credit_limit, now() AS now
		FROM clients
		WHERE id = $1
	`

	var snap models.ClientSnapshot
	err := r.db.GetContext(ctx, &snap, query, clientID)

	logger.Log.Infow("client snapshot",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{clientID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// GetCreditLimit returns only the credit limit for a client. Limits are
// immutable after provisioning, so callers may cache the result.
// Returns sql.ErrNoRows for an unknown client.
func (r *ClientReaderRepository) GetCreditLimit(ctx context.Context, clientID int) (int64, error) {
	const query = `
		SELECT credit_limit
		FROM clients
		WHERE id = $1
	`

	var creditLimit int64
	err := r.db.GetContext(ctx, &creditLimit, query, clientID)

	logger.Log.Infow("client credit limit",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{clientID},
		"result", creditLimit,
		"error", err,
	)

	return creditLimit, err
}
