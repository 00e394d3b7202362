package storage

import (
	"errors"
	"eternalquest/internal/models"
	"eternalquest/internal/services"
	"eternalquest/internal/structures"
	"eternalquest/internal/testutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func persisterConfig(path string) *structures.Config {
	return &structures.Config{
		Ledger:      structures.LedgerConfig{UserName: "Player1", PointsPerLevel: 1000},
		Persistence: structures.Persistence{Driver: "file", FilePath: path},
	}
}

func newTestPersister(conf *structures.Config, store *testutil.MockStore) (*Persister, services.LedgerServiceInterface) {
	logger := &testutil.MockLogger{}
	svc := services.NewLedgerService(conf, store, testutil.NewMockCache(), testutil.NewMockMetrics(), logger)
	return NewPersister(conf, logger, svc).(*Persister), svc
}

func TestPersister_RestoreMissingIsFreshStart(t *testing.T) {
	p, svc := newTestPersister(persisterConfig("/data/goals.json"), testutil.NewMockStore())

	assert.NoError(t, p.Restore())
	assert.Equal(t, 0, svc.Score())
	assert.Empty(t, svc.Goals())
}

func TestPersister_RestoreError(t *testing.T) {
	store := testutil.NewMockStore()
	store.LoadErr = errors.New("permission denied")
	p, _ := newTestPersister(persisterConfig("/data/goals.json"), store)

	assert.Error(t, p.Restore())
}

func TestPersister_PersistThenRestore(t *testing.T) {
	conf := persisterConfig("/data/goals.json")
	store := testutil.NewMockStore()
	p, svc := newTestPersister(conf, store)

	g, err := models.NewEternalGoal("Read scriptures", 100)
	require.NoError(t, err)
	require.NoError(t, svc.AddGoal(g))
	_, err = svc.RecordEvent("Read scriptures")
	require.NoError(t, err)
	require.NoError(t, p.Persist())

	p2, svc2 := newTestPersister(conf, store)
	require.NoError(t, p2.Restore())
	assert.Equal(t, 100, svc2.Score())
	assert.Equal(t, svc.Goals(), svc2.Goals())
}

func TestPersister_PersistError(t *testing.T) {
	store := testutil.NewMockStore()
	store.SaveErr = errors.New("disk full")
	p, _ := newTestPersister(persisterConfig("/data/goals.json"), store)

	assert.ErrorIs(t, p.Persist(), store.SaveErr)
}

func TestPersister_WithFileManager(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goals.json")
	conf := persisterConfig(path)
	logger := &testutil.MockLogger{}
	fm := NewFileManager(&testutil.MockCompressor{}, conf, logger)
	svc := services.NewLedgerService(conf, fm, testutil.NewMockCache(), testutil.NewMockMetrics(), logger)
	p := NewPersister(conf, logger, svc)

	require.NoError(t, p.Restore())
	g, err := models.NewSimpleGoal("Run a marathon", 1000)
	require.NoError(t, err)
	require.NoError(t, svc.AddGoal(g))
	_, err = svc.RecordEvent("Run a marathon")
	require.NoError(t, err)
	require.NoError(t, p.Persist())

	svc2 := services.NewLedgerService(conf, fm, testutil.NewMockCache(), testutil.NewMockMetrics(), logger)
	require.NoError(t, NewPersister(conf, logger, svc2).Restore())
	assert.Equal(t, []string{"[X] Run a marathon (1000 pts)"}, svc2.DisplayGoals())
	assert.Equal(t, 1000, svc2.Score())
}
