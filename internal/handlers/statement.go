package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/crebito/ledger-api/internal/logger"
	"github.com/crebito/ledger-api/internal/models"
	"github.com/crebito/ledger-api/internal/services"
)

// StatementBuilder defines the interface that the service must implement.
type StatementBuilder interface {
	Build(ctx context.Context, clientID int) (*models.Statement, error)
}

// StatementBalance represents the balance block of a statement
// swagger:model StatementBalance
type StatementBalance struct {
	// Current balance
	Total int64 `json:"total"`

	// Snapshot timestamp
	DataExtrato time.Time `json:"data_extrato"`

	// Credit limit of the client
	Limite int64 `json:"limite"`
}

// StatementTransaction represents one entry of the recent-activity list
// swagger:model StatementTransaction
type StatementTransaction struct {
	// Amount in cents
	Valor int64 `json:"valor"`

	// Transaction kind: "c" or "d"
	Tipo string `json:"tipo"`

	// Free-form description
	Descricao string `json:"descricao"`

	// Commit timestamp
	RealizadaEm time.Time `json:"realizada_em"`
}

// StatementResponse represents a successful statement response
// swagger:model StatementResponse
type StatementResponse struct {
	// Balance snapshot
	Saldo StatementBalance `json:"saldo"`

	// Up to ten most recent transactions, newest first
	UltimasTransacoes []StatementTransaction `json:"ultimas_transacoes"`
}

// StatementErrorResponse represents an error response for a statement
// swagger:model StatementErrorResponse
type StatementErrorResponse struct {
	// Error message
	// default: Client not found
	Error string `json:"error"`
}

// NewStatementHandler returns an HTTP handler for fetching a client statement.
// @Summary Get client statement
// @Description Returns the current balance, credit limit and the ten most recent transactions for a client.
// @Tags clients
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} handlers.StatementResponse "Client statement"
// @Failure 404 {object} handlers.StatementErrorResponse "Client not found"
// @Failure 503 {object} handlers.StatementErrorResponse "Storage unavailable"
// @Router /clientes/{id}/extrato [get]
func NewStatementHandler(svc StatementBuilder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		clientID, ok := clientIDFromRequest(r)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(StatementErrorResponse{Error: "Client not found"})
			return
		}

		stmt, err := svc.Build(ctx, clientID)
		if err != nil {
			if errors.Is(err, services.ErrClientNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(StatementErrorResponse{Error: "Client not found"})
				return
			}
			logger.Log.Errorw("failed to build statement", "clientID", clientID, "error", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(StatementErrorResponse{Error: "Storage unavailable"})
			return
		}

		recent := make([]StatementTransaction, 0, len(stmt.Transactions))
		for _, txn := range stmt.Transactions {
			recent = append(recent, StatementTransaction{
				Valor:       txn.Amount,
				Tipo:        txn.Kind,
				Descricao:   txn.Description,
				RealizadaEm: txn.CreatedAt,
			})
		}

		resp := StatementResponse{
			Saldo: StatementBalance{
				Total:       stmt.Balance,
				DataExtrato: stmt.Timestamp,
				Limite:      stmt.CreditLimit,
			},
			UltimasTransacoes: recent,
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
