package models

// AuditEvent is the payload published to Kafka after a committed transaction.
type AuditEvent struct {
	EventID     string `json:"event_id"`    // EventID is a unique identifier for the audit event.
	ClientID    int    `json:"client_id"`   // ClientID is the client whose balance changed.
	Amount      int64  `json:"amount"`      // Amount is the unsigned transaction magnitude.
	Kind        string `json:"kind"`        // Kind is "c" for credit or "d" for debit.
	Description string `json:"description"` // Description is the caller-supplied memo.
	Timestamp   int64  `json:"timestamp"`   // Timestamp is the Unix timestamp (in seconds) when the event was emitted.
}
