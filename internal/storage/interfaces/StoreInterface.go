package interfaces

import "eternalquest/internal/models"

// StoreInterface persists whole ledger snapshots. Load returns
// models.ErrLedgerNotFound when path holds no ledger.
type StoreInterface interface {
	Save(path string, snapshot *models.Snapshot) error
	Load(path string) (*models.Snapshot, error)
	Close()
}
