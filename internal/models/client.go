package models

import "time"

// ClientDB represents a provisioned client row in the database
type ClientDB struct {
	ID          int   `json:"id" db:"id"`                     // Fixed client identifier from the provisioned set
	CreditLimit int64 `json:"credit_limit" db:"credit_limit"` // Immutable credit limit in cents
	Balance     int64 `json:"balance" db:"balance"`           // Current balance, never below -CreditLimit
}

// ClientSnapshot is a single-read view of a client's balance, credit limit
// and the database server time at the moment of the read.
type ClientSnapshot struct {
	Balance     int64     `db:"balance"`
	CreditLimit int64     `db:"credit_limit"`
	Timestamp   time.Time `db:"now"`
}
