package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/crebito/ledger-api/internal/logger"
	"github.com/crebito/ledger-api/internal/models"
	"github.com/crebito/ledger-api/internal/validation"
)

var (
	// ErrClientNotFound is returned when the client id is outside the provisioned set.
	ErrClientNotFound = errors.New("client not found")

	// ErrOverdraft is returned when a debit would push the balance below the
	// negative of the credit limit.
	ErrOverdraft = errors.New("transaction would exceed credit limit")
)

// BalanceWriter defines the storage operations of the write path.
type BalanceWriter interface {
	ApplyDelta(ctx context.Context, clientID int, delta int64) (balance, creditLimit int64, err error) // Conditional atomic balance change
	Save(ctx context.Context, clientID int, amount int64, kind, description string) error              // Appends a transaction record
}

// CreditLimitReader resolves a client's credit limit from storage.
type CreditLimitReader interface {
	GetCreditLimit(ctx context.Context, clientID int) (int64, error)
}

// CreditLimitCache caches immutable credit limits.
type CreditLimitCache interface {
	GetCreditLimit(ctx context.Context, clientID int) (int64, error)
	SetCreditLimit(ctx context.Context, clientID int, creditLimit int64) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TransactionService is the transaction engine: it validates input, applies
// the signed delta through the atomic conditional write, appends the history
// record and publishes an audit event.
type TransactionService struct {
	writeRepo   BalanceWriter
	limitRepo   CreditLimitReader
	cacheRepo   CreditLimitCache
	kafkaWriter KafkaWriter
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	writeRepo BalanceWriter,
	limitRepo CreditLimitReader,
	cacheRepo CreditLimitCache,
	kafkaWriter KafkaWriter,
) *TransactionService {
	return &TransactionService{
		writeRepo:   writeRepo,
		limitRepo:   limitRepo,
		cacheRepo:   cacheRepo,
		kafkaWriter: kafkaWriter,
	}
}

// Process applies one transaction for a client and returns the new balance and
// the credit limit from the same conditional write.
//
// Order matters: an unknown client is rejected before validation, validation
// before any storage write. The conditional update is issued exactly once and
// never retried, since a retry after an ambiguous failure could double-apply
// a debit.
func (s *TransactionService) Process(ctx context.Context, clientID int, in validation.TransactionInput) (balance, creditLimit int64, err error) {
	if err := s.ensureClient(ctx, clientID); err != nil {
		return 0, 0, err
	}

	in, err = validation.Validate(in)
	if err != nil {
		logger.Log.Warnw("transaction rejected by validation", "clientID", clientID, "error", err)
		return 0, 0, err
	}

	delta := in.Amount
	if in.Kind == models.KindDebit {
		delta = -in.Amount
	}

	balance, creditLimit, err = s.writeRepo.ApplyDelta(ctx, clientID, delta)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Log.Warnw("transaction rejected by overdraft guard", "clientID", clientID, "delta", delta)
			return 0, 0, ErrOverdraft
		}
		logger.Log.Errorw("failed to apply balance delta", "clientID", clientID, "delta", delta, "error", err)
		return 0, 0, err
	}

	// The balance change above has committed. The history record and the audit
	// event are advisory: their failure is logged, never surfaced.
	if err := s.writeRepo.Save(ctx, clientID, in.Amount, in.Kind, in.Description); err != nil {
		logger.Log.Errorw("failed to append transaction record", "clientID", clientID, "amount", in.Amount, "kind", in.Kind, "error", err)
	}

	s.publishAudit(ctx, models.AuditEvent{
		EventID:     uuid.NewString(),
		ClientID:    clientID,
		Amount:      in.Amount,
		Kind:        in.Kind,
		Description: in.Description,
		Timestamp:   time.Now().Unix(),
	})

	return balance, creditLimit, nil
}

// ensureClient checks the id against the provisioned set before anything else.
// Limits are immutable, so a cache hit is as good as a row.
func (s *TransactionService) ensureClient(ctx context.Context, clientID int) error {
	if s.cacheRepo != nil {
		if _, err := s.cacheRepo.GetCreditLimit(ctx, clientID); err == nil {
			return nil
		}
	}

	creditLimit, err := s.limitRepo.GetCreditLimit(ctx, clientID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrClientNotFound
		}
		logger.Log.Errorw("failed to resolve credit limit", "clientID", clientID, "error", err)
		return err
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetCreditLimit(ctx, clientID, creditLimit); err != nil {
			logger.Log.Errorw("failed to cache credit limit", "clientID", clientID, "error", err)
		}
	}
	return nil
}

// publishAudit publishes an audit event to Kafka.
func (s *TransactionService) publishAudit(ctx context.Context, event models.AuditEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal audit event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish audit event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Audit event published to Kafka", "event_id", event.EventID, "amount", event.Amount)
	}
}
