package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/crebito/ledger-api/internal/logger"
	"github.com/crebito/ledger-api/internal/services"
	"github.com/crebito/ledger-api/internal/validation"
)

// TransactionProcessor defines the interface that the service must implement.
type TransactionProcessor interface {
	Process(ctx context.Context, clientID int, in validation.TransactionInput) (balance, creditLimit int64, err error)
}

// TransactionRequest represents the JSON body for posting a transaction
// swagger:model TransactionRequest
type TransactionRequest struct {
	// Amount in cents, positive integer
	// required: true
	// default: 100
	Valor json.RawMessage `json:"valor"`

	// Transaction kind: "c" for credit, "d" for debit
	// required: true
	// default: c
	Tipo *string `json:"tipo"`

	// Free-form description, 1 to 10 characters
	// required: true
	// default: lunch
	Descricao *string `json:"descricao"`
}

// TransactionResponse represents a successful transaction response
// swagger:model TransactionResponse
type TransactionResponse struct {
	// Credit limit of the client
	Limite int64 `json:"limite"`

	// New balance after the transaction
	Saldo int64 `json:"saldo"`
}

// TransactionErrorResponse represents an error response for a transaction
// swagger:model TransactionErrorResponse
type TransactionErrorResponse struct {
	// Error message
	// default: Transaction rejected
	Error string `json:"error"`
}

// maxBodyBytes bounds the request body. The largest valid payload is well
// under a hundred bytes; anything bigger is rejected as structurally invalid
// instead of being read to completion.
const maxBodyBytes = 4 << 10

// clientIDFromRequest extracts the numeric client id from the path. A
// non-numeric or non-positive segment is an unknown client, not a parse error.
func clientIDFromRequest(r *http.Request) (int, bool) {
	clientID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || clientID <= 0 {
		return 0, false
	}
	return clientID, true
}

// NewTransactionHandler returns an HTTP handler for posting a transaction.
// @Summary Post a transaction
// @Description Applies a credit or debit to a client's balance. The debit is rejected if it would push the balance below the negative of the credit limit.
// @Tags clients
// @Accept json
// @Produce json
// @Param id path int true "Client ID"
// @Param request body handlers.TransactionRequest true "Transaction Request"
// @Success 200 {object} handlers.TransactionResponse "New balance and credit limit"
// @Failure 404 {object} handlers.TransactionErrorResponse "Client not found"
// @Failure 422 {object} handlers.TransactionErrorResponse "Invalid or rejected transaction"
// @Failure 503 {object} handlers.TransactionErrorResponse "Storage unavailable"
// @Router /clientes/{id}/transacoes [post]
func NewTransactionHandler(svc TransactionProcessor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		clientID, ok := clientIDFromRequest(r)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Client not found"})
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

		var req TransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Warnw("failed to decode transaction request", "clientID", clientID, "error", err)
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Invalid request body"})
			return
		}

		if len(req.Valor) == 0 || req.Tipo == nil || req.Descricao == nil {
			logger.Log.Warnw("transaction request missing fields", "clientID", clientID)
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Invalid request body"})
			return
		}

		// valor must be a bare JSON number without a fractional part, so it is
		// kept raw and converted explicitly instead of through float64. A
		// quoted number is still a string and is rejected.
		var valor json.Number
		if req.Valor[0] == '"' || json.Unmarshal(req.Valor, &valor) != nil {
			logger.Log.Warnw("transaction request with non-numeric valor", "clientID", clientID, "valor", string(req.Valor))
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Invalid valor (must be a positive integer)"})
			return
		}
		amount, err := valor.Int64()
		if err != nil {
			logger.Log.Warnw("transaction request with non-integer valor", "clientID", clientID, "valor", valor)
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Invalid valor (must be a positive integer)"})
			return
		}

		balance, creditLimit, err := svc.Process(ctx, clientID, validation.TransactionInput{
			Amount:      amount,
			Kind:        *req.Tipo,
			Description: *req.Descricao,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrClientNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Client not found"})
			case errors.Is(err, validation.ErrInvalidTransaction), errors.Is(err, services.ErrOverdraft):
				w.WriteHeader(http.StatusUnprocessableEntity)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Transaction rejected"})
			default:
				logger.Log.Errorw("failed to process transaction", "clientID", clientID, "error", err)
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Storage unavailable"})
			}
			return
		}

		resp := TransactionResponse{
			Limite: creditLimit,
			Saldo:  balance,
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
