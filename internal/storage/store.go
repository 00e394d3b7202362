package storage

import (
	"eternalquest/internal/providers"
	"eternalquest/internal/storage/interfaces"
	"eternalquest/internal/structures"
)

const DriverSQLite = "sqlite"

// NewStore picks the persistence driver named in the config. The file
// driver is the default.
func NewStore(conf *structures.Config, compressor interfaces.CompressorInterface, logger providers.Logger) interfaces.StoreInterface {
	if conf.Persistence.Driver == DriverSQLite {
		logger.Infof(providers.TypeStorage, "Using sqlite store")
		compressor.Close()
		return NewSQLiteStore(logger)
	}
	logger.Infof(providers.TypeStorage, "Using file store (compress=%t)", conf.Persistence.Compress)
	return NewFileManager(compressor, conf, logger)
}
