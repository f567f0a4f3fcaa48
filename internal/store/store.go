package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"pescaderia-backend/internal/models"
)

// Store holds the whole working state of the market in memory behind one
// coarse lock. Repositories take the lock for the full span of each
// operation, so multi-collection writes (a dispatch batch plus its ledger
// entries, a purchase plus its expense) are atomic with respect to readers.
type Store struct {
	sync.RWMutex

	Products     []*models.Product
	Dispatches   []*models.Dispatch
	Purchases    []*models.Purchase
	Transactions []*models.Transaction
	Sales        []*models.Sale
	Draft        models.DispatchDraft

	StartedAt time.Time
}

// New returns an empty store. Call Seed to load the catalog and draft
// defaults.
func New() *Store {
	return &Store{
		Draft: models.DispatchDraft{
			Cells: make(map[string]map[int]string),
		},
		StartedAt: time.Now(),
	}
}

// NewID returns a fresh event identifier. Catalog ids are positional and
// assigned at seed time; everything else gets a uuid.
func NewID() string {
	return uuid.New().String()
}
