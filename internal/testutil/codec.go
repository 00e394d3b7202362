package testutil

import (
	"eternalquest/internal/models"
	json "github.com/goccy/go-json"
)

func encodeSnapshot(s *models.Snapshot) ([]byte, error) {
	return json.Marshal(s)
}

func decodeSnapshot(data []byte) (*models.Snapshot, error) {
	var s models.Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
