package storage

import (
	"eternalquest/internal/models"
	"eternalquest/internal/providers"
	"eternalquest/internal/storage/interfaces"
	"eternalquest/internal/structures"
	"fmt"
	json "github.com/goccy/go-json"
	"os"
	"path/filepath"
)

// FileManager stores a ledger snapshot as an indented JSON document,
// optionally zstd-compressed. Compressed files are recognised on load
// whatever the current setting.
type FileManager struct {
	compressor interfaces.CompressorInterface
	logger     providers.Logger
	compress   bool
}

func NewFileManager(compressor interfaces.CompressorInterface, conf *structures.Config, logger providers.Logger) *FileManager {
	return &FileManager{
		compressor: compressor,
		logger:     logger,
		compress:   conf.Persistence.Compress,
	}
}

// Save replaces fileName atomically: the snapshot goes to a sibling temp
// file which is synced and renamed over the target.
func (f *FileManager) Save(fileName string, snapshot *models.Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}
	if f.compress {
		data, err = f.compressor.Compress(data)
		if err != nil {
			return err
		}
	}

	if err = os.MkdirAll(filepath.Dir(fileName), 0755); err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (f *FileManager) Load(fileName string) (*models.Snapshot, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", models.ErrLedgerNotFound, fileName)
		}
		return nil, err
	}

	if isCompressed(data) {
		data, err = f.compressor.Decompress(data)
		if err != nil {
			return nil, fmt.Errorf("decompress %s: %w", fileName, err)
		}
	}

	var snapshot models.Snapshot
	if err = json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", models.ErrInvalidSnapshot, fileName, err)
	}

	if snapshot.Version == 0 {
		f.logger.Warnf(providers.TypeStorage, "Unversioned ledger file %s, upgrading to version %d", fileName, models.SnapshotVersion)
		snapshot.Version = models.SnapshotVersion
	}

	return &snapshot, nil
}

func (f *FileManager) Close() {
	f.compressor.Close()
}
