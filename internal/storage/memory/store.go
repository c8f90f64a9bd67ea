// Package memory implements the transaction log in process memory.
// It backs tests and database-free deployments; the log is lost on
// restart.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirosfoundation/go-x12/internal/storage"
)

// Store implements storage.TransactionStore with a mutex-guarded slice.
// Records append in arrival order; listing walks the slice backwards so
// reads come out newest first.
type Store struct {
	mu      sync.RWMutex
	records []*storage.TransactionRecord
	byID    map[string]*storage.TransactionRecord
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{byID: make(map[string]*storage.TransactionRecord)}
}

func (s *Store) CreateTransaction(_ context.Context, rec *storage.TransactionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[rec.ID]; exists {
		return fmt.Errorf("transaction %s already logged", rec.ID)
	}
	clone := *rec
	s.records = append(s.records, &clone)
	s.byID[rec.ID] = &clone
	return nil
}

func (s *Store) GetTransaction(_ context.Context, id string) (*storage.TransactionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	clone := *rec
	return &clone, nil
}

func (s *Store) ListTransactions(_ context.Context, filter *storage.TransactionFilter) ([]*storage.TransactionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*storage.TransactionRecord
	for i := len(s.records) - 1; i >= 0; i-- {
		rec := s.records[i]
		if filter != nil {
			if filter.Type != "" && rec.Type != filter.Type {
				continue
			}
			if filter.Direction != "" && rec.Direction != filter.Direction {
				continue
			}
			if filter.Partner != "" && rec.Partner != filter.Partner {
				continue
			}
		}
		clone := *rec
		out = append(out, &clone)
		if filter != nil && filter.Limit > 0 && len(out) >= filter.Limit {
			break
		}
	}
	return out, nil
}

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) Close(context.Context) error { return nil }
