package store

import "github.com/hance08/tankhah/internal/model"

type Repository interface {
	// Create stores tx at the front of the collection, assigning an id when tx has none.
	Create(tx model.Transaction) (model.Transaction, error)
	// Delete removes the transaction and reports whether it existed.
	Delete(id string) bool
	Get(id string) (model.Transaction, error)
	// Snapshot returns the collection, most recently created first.
	Snapshot() []model.Transaction
	Len() int
}
