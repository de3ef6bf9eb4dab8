package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/crebito/ledger-api/internal/logger"
	"github.com/crebito/ledger-api/internal/models"
)

// statementSize is the number of recent transactions included in a statement.
const statementSize = 10

// SnapshotReader reads a client's balance, limit and server time in one call.
type SnapshotReader interface {
	GetSnapshot(ctx context.Context, clientID int) (*models.ClientSnapshot, error)
}

// TransactionLister reads a client's most recent transactions, newest first.
type TransactionLister interface {
	ListRecent(ctx context.Context, clientID, n int) ([]models.TransactionDB, error)
}

// StatementService assembles the recent-activity statement. Pure read path,
// no mutation.
type StatementService struct {
	clientRepo SnapshotReader
	txnRepo    TransactionLister
}

// NewStatementService creates a new StatementService.
func NewStatementService(clientRepo SnapshotReader, txnRepo TransactionLister) *StatementService {
	return &StatementService{
		clientRepo: clientRepo,
		txnRepo:    txnRepo,
	}
}

// Build returns the statement for a client: the balance snapshot plus up to
// the ten most recent transactions in descending commit order.
func (s *StatementService) Build(ctx context.Context, clientID int) (*models.Statement, error) {
	snap, err := s.clientRepo.GetSnapshot(ctx, clientID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		logger.Log.Errorw("failed to read client snapshot", "clientID", clientID, "error", err)
		return nil, err
	}

	txns, err := s.txnRepo.ListRecent(ctx, clientID, statementSize)
	if err != nil {
		logger.Log.Errorw("failed to list recent transactions", "clientID", clientID, "error", err)
		return nil, err
	}

	recent := make([]models.TransactionDB, 0, len(txns))
	for _, txn := range txns {
		// A structurally incomplete row is skipped, not an error.
		if txn.Kind == "" {
			logger.Log.Warnw("skipping incomplete transaction row", "clientID", clientID, "id", txn.ID)
			continue
		}
		recent = append(recent, txn)
	}

	return &models.Statement{
		Balance:      snap.Balance,
		CreditLimit:  snap.CreditLimit,
		Timestamp:    snap.Timestamp,
		Transactions: recent,
	}, nil
}
