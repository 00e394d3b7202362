package internal

import (
	"eternalquest/internal/controllers"
	"eternalquest/internal/providers"
	"eternalquest/internal/storage/interfaces"
	"eternalquest/internal/structures"
	"fmt"
)

type App struct {
	controller *controllers.MenuController
	persister  interfaces.PersisterInterface
	store      interfaces.StoreInterface
	conf       *structures.Config
	logger     providers.Logger
	metrics    providers.MetricsProviderInterface
}

func NewApp(controller *controllers.MenuController, persister interfaces.PersisterInterface, store interfaces.StoreInterface, conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface) *App {
	return &App{
		controller: controller,
		persister:  persister,
		store:      store,
		conf:       conf,
		logger:     logger,
		metrics:    metrics,
	}
}

// Run restores the saved ledger, hands control to the menu and saves the
// ledger once the menu returns. Nothing is saved automatically when the
// restore failed for a reason other than a missing file.
func (a *App) Run() error {
	a.logger.Infof(providers.TypeApp, "Starting %s", a.conf.AppName)

	restored := true
	if err := a.persister.Restore(); err != nil {
		a.logger.Errorf(providers.TypeApp, "Restore error: %s", err)
		restored = false
	}

	menuErr := a.controller.Run()
	if menuErr != nil {
		a.logger.Errorf(providers.TypeApp, "Menu error: %s", menuErr)
	}

	// An unreadable data file is left as it is.
	if restored {
		if err := a.persister.Persist(); err != nil {
			return fmt.Errorf("persist ledger: %w", err)
		}
	} else {
		a.logger.Warnf(providers.TypeApp, "Skipping save to %s: it could not be restored", a.conf.Persistence.FilePath)
	}
	if err := a.metrics.Flush(); err != nil {
		a.logger.Errorf(providers.TypeApp, "Metrics flush error: %s", err)
	}

	a.logger.Infof(providers.TypeApp, "gracefully stopped")
	return menuErr
}

func (a *App) Close() {
	a.store.Close()
	a.logger.Close()
}
