package storage

import (
	"errors"
	"eternalquest/internal/models"
	"eternalquest/internal/providers"
	"eternalquest/internal/services"
	"eternalquest/internal/storage/interfaces"
	"eternalquest/internal/structures"
)

// Persister ties the ledger to the data file named in the config.
type Persister struct {
	config  *structures.Config
	logger  providers.Logger
	service services.LedgerServiceInterface
}

// Restore loads the configured file. A missing file is a fresh start.
func (p *Persister) Restore() error {
	err := p.service.Load(p.config.Persistence.FilePath)
	if errors.Is(err, models.ErrLedgerNotFound) {
		p.logger.Infof(providers.TypeStorage, "No saved ledger at %s, starting fresh", p.config.Persistence.FilePath)
		return nil
	}
	return err
}

func (p *Persister) Persist() error {
	p.logger.Infof(providers.TypeStorage, "Persisting ledger to %s...", p.config.Persistence.FilePath)
	err := p.service.Save(p.config.Persistence.FilePath)
	if err != nil {
		p.logger.Errorf(providers.TypeStorage, "Error while persisting ledger: %s", err)
		return err
	}
	return nil
}

func NewPersister(config *structures.Config, logger providers.Logger, service services.LedgerServiceInterface) interfaces.PersisterInterface {
	return &Persister{
		config:  config,
		logger:  logger,
		service: service,
	}
}
