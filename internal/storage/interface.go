// Package storage provides the transaction log interfaces and
// implementations for the X12 translation engine.
//
// # Interface Design
//
// The storage layer is a single focused interface:
//
//   - [TransactionStore]: append-only log of translated transactions
//
// Every translation, inbound or outbound, appends one
// [TransactionRecord] carrying the raw payload alongside routing and
// classification metadata. Records are never updated in place; the log
// is the audit trail.
//
// # Implementations
//
// The mongodb sub-package provides a production-ready MongoDB
// implementation. The memory sub-package provides an in-memory store
// for tests and single-process deployments without a database.
//
// # Concurrency
//
// All store implementations must be safe for concurrent use from
// multiple goroutines.
package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sirosfoundation/go-x12/pkg/document"
)

// TransactionRecord is one logged translation.
type TransactionRecord struct {
	ID            string                   `bson:"_id" json:"id"`
	Type          document.TransactionType `bson:"type" json:"type"`
	Direction     document.Direction       `bson:"direction" json:"direction"`
	Sender        string                   `bson:"sender" json:"sender"`
	Receiver      string                   `bson:"receiver" json:"receiver"`
	Partner       string                   `bson:"partner,omitempty" json:"partner,omitempty"`
	BusinessID    string                   `bson:"business_id,omitempty" json:"businessId,omitempty"`
	ControlNumber string                   `bson:"control_number,omitempty" json:"controlNumber,omitempty"`
	Payload       string                   `bson:"payload" json:"payload"`
	Stream        string                   `bson:"stream" json:"stream"`
	Validation    string                   `bson:"validation" json:"validation"`
	AckStatus     string                   `bson:"ack_status" json:"ackStatus"`
	CreatedAt     time.Time                `bson:"created_at" json:"createdAt"`
}

// Classification defaults for new records. The stream follows the
// interchange usage indicator; acknowledgment state starts pending and
// only advances when a matching 997 arrives.
const (
	StreamTest       = "Test"
	StreamProduction = "Production"

	ValidationValid   = "Valid"
	ValidationInvalid = "Invalid"

	AckPending = "Not Acknowledged"
)

// NewRecordID returns a log record identifier of the form <type>-<uuid>.
// The type prefix keeps raw store dumps scannable by eye.
func NewRecordID(t document.TransactionType) string {
	return string(t) + "-" + uuid.NewString()
}

// TransactionFilter narrows ListTransactions. Zero values match
// everything.
type TransactionFilter struct {
	Type      document.TransactionType
	Direction document.Direction
	Partner   string
	Limit     int
}

// TransactionStore is the append-only transaction log.
type TransactionStore interface {
	// CreateTransaction appends a record to the log.
	CreateTransaction(ctx context.Context, rec *TransactionRecord) error

	// GetTransaction retrieves a record by ID. A missing record returns
	// (nil, nil).
	GetTransaction(ctx context.Context, id string) (*TransactionRecord, error)

	// ListTransactions returns records matching the filter, newest first.
	ListTransactions(ctx context.Context, filter *TransactionFilter) ([]*TransactionRecord, error)

	// Ping checks store connectivity.
	Ping(ctx context.Context) error

	// Close releases storage resources.
	Close(ctx context.Context) error
}
