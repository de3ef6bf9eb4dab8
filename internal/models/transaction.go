package models

import "time"

// Transaction kinds
const (
	KindCredit = "c"
	KindDebit  = "d"
)

// TransactionDB represents an immutable ledger entry in the database.
// Records are append-only; the serial id gives a stable order for entries
// sharing a commit timestamp.
type TransactionDB struct {
	ID          int64     `json:"id" db:"id"`
	ClientID    int       `json:"cliente_id" db:"client_id"`
	Amount      int64     `json:"valor" db:"amount"`          // Unsigned magnitude; the kind carries the sign
	Kind        string    `json:"tipo" db:"kind"`             // "c" or "d"
	Description string    `json:"descricao" db:"description"` // 1..10 characters
	CreatedAt   time.Time `json:"realizada_em" db:"realizada_em"`
}
