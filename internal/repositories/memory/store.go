// Package memory holds the in-process record store. All state is
// ephemeral by contract: it lives for the lifetime of the running
// session and is never persisted.
package memory

import (
	"sync"

	"github.com/bizpulse/bizpulse_backend/internal/core/domain"
)

// Store owns the authoritative collections. A single RWMutex guards them
// all, so a reader always observes the fully-applied result of the
// mutation that preceded it, never a partial one.
type Store struct {
	mu        sync.RWMutex
	products  []domain.Product
	sales     []domain.Sale
	expenses  []domain.Expense
	customers []domain.Customer
	goals     []domain.Goal
	alerts    []domain.FinancialAlert
}

// NewStore creates an empty record store.
func NewStore() *Store {
	return &Store{}
}

// idSet builds a membership set for bulk deletes.
func idSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
