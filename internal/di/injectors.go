//go:build wireinject
// +build wireinject

package di

import (
	"eternalquest/internal"
	"eternalquest/internal/controllers"
	"eternalquest/internal/providers"
	"eternalquest/internal/services"
	"eternalquest/internal/storage"
	"eternalquest/internal/structures"
	wire "github.com/google/wire"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,
		providers.NewConsoleProvider,

		storage.NewZstdCompressor,
		storage.NewStore,
		services.NewLedgerService,
		storage.NewPersister,
		controllers.NewMenuController,
		internal.NewApp,
	)

	return nil, nil
}
