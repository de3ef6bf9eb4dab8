package models

import "time"

// Statement is the derived recent-activity view of a client: current balance,
// credit limit, snapshot time and the most recent transactions, newest first.
// It is recomputed per request and never persisted.
type Statement struct {
	Balance      int64
	CreditLimit  int64
	Timestamp    time.Time
	Transactions []TransactionDB
}
