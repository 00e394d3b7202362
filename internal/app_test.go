package internal

import (
	"bytes"
	"errors"
	"eternalquest/internal/controllers"
	"eternalquest/internal/models"
	"eternalquest/internal/services"
	"eternalquest/internal/storage"
	"eternalquest/internal/structures"
	"eternalquest/internal/testutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const appDataPath = "/data/goals.json"

type appFixture struct {
	app     *App
	service services.LedgerServiceInterface
	store   *testutil.MockStore
	metrics *testutil.MockMetrics
	logger  *testutil.MockLogger
	out     *bytes.Buffer
}

func newAppFixture(store *testutil.MockStore, input string) *appFixture {
	conf := &structures.Config{
		AppName:     "EternalQuest",
		Ledger:      structures.LedgerConfig{UserName: "Player1", PointsPerLevel: 1000},
		Persistence: structures.Persistence{Driver: "file", FilePath: appDataPath},
	}
	f := &appFixture{
		store:   store,
		metrics: testutil.NewMockMetrics(),
		logger:  &testutil.MockLogger{},
		out:     &bytes.Buffer{},
	}
	f.service = services.NewLedgerService(conf, store, testutil.NewMockCache(), f.metrics, f.logger)
	console := &structures.Console{In: strings.NewReader(input), Out: f.out}
	controller := controllers.NewMenuController(f.service, conf, console, f.logger)
	persister := storage.NewPersister(conf, f.logger, f.service)
	f.app = NewApp(controller, persister, store, conf, f.logger, f.metrics)
	return f
}

func TestApp_RunPersistsOnQuit(t *testing.T) {
	f := newAppFixture(testutil.NewMockStore(), "1\n2\nPray\n5\n2\nPray\n6\n")

	require.NoError(t, f.app.Run())

	assert.Equal(t, 1, f.store.SaveCalls)
	assert.Equal(t, 1, f.metrics.Flushes)

	snapshot, err := f.store.Load(appDataPath)
	require.NoError(t, err)
	assert.Equal(t, 5, snapshot.Score)
	require.Len(t, snapshot.Goals, 1)
	assert.Equal(t, "Pray", snapshot.Goals[0].Name)
}

func TestApp_RunRestoresSavedLedger(t *testing.T) {
	store := testutil.NewMockStore()
	first := newAppFixture(store, "1\n1\nRun a marathon\n1000\n2\n1\n6\n")
	require.NoError(t, first.app.Run())

	second := newAppFixture(store, "6\n")
	require.NoError(t, second.app.Run())

	assert.Equal(t, 1000, second.service.Score())
	assert.Equal(t, []string{"[X] Run a marathon (1000 pts)"}, second.service.DisplayGoals())
	assert.Contains(t, second.out.String(), "You have 1000 points (level 2).")
}

func TestApp_MissingDataFileIsFreshStart(t *testing.T) {
	f := newAppFixture(testutil.NewMockStore(), "6\n")

	require.NoError(t, f.app.Run())
	assert.Equal(t, 0, f.logger.Count("error"))
	assert.Empty(t, f.service.Goals())
}

func TestApp_RestoreErrorRunsMenuWithoutSaving(t *testing.T) {
	store := testutil.NewMockStore()
	store.LoadErr = errors.New("permission denied")
	f := newAppFixture(store, "1\n2\nPray\n5\n6\n")

	require.NoError(t, f.app.Run())
	assert.GreaterOrEqual(t, f.logger.Count("error"), 1)
	assert.Len(t, f.service.Goals(), 1)
	assert.Equal(t, 0, f.store.SaveCalls)
	assert.Equal(t, 1, f.metrics.Flushes)
}

func TestApp_UnreadableDataFileIsNotOverwritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goals.json")
	broken := []byte(`{"version":1,"user_name":"Player1","score":100,"goals":[{"kind":"eternal","name":"Pray","points":100}],}`)
	require.NoError(t, os.WriteFile(path, broken, 0644))

	conf := &structures.Config{
		AppName:     "EternalQuest",
		Ledger:      structures.LedgerConfig{UserName: "Player1", PointsPerLevel: 1000},
		Persistence: structures.Persistence{Driver: "file", FilePath: path},
	}
	logger := &testutil.MockLogger{}
	store := storage.NewFileManager(&testutil.MockCompressor{}, conf, logger)
	service := services.NewLedgerService(conf, store, testutil.NewMockCache(), testutil.NewMockMetrics(), logger)
	console := &structures.Console{In: strings.NewReader("1\n2\nWalk\n5\n6\n"), Out: &bytes.Buffer{}}
	app := NewApp(
		controllers.NewMenuController(service, conf, console, logger),
		storage.NewPersister(conf, logger, service),
		store, conf, logger, testutil.NewMockMetrics(),
	)

	require.NoError(t, app.Run())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, broken, data)
	assert.GreaterOrEqual(t, logger.Count("warn"), 1)
}

func TestApp_PersistErrorIsReturned(t *testing.T) {
	store := testutil.NewMockStore()
	store.SaveErr = errors.New("read-only filesystem")
	f := newAppFixture(store, "6\n")

	err := f.app.Run()
	assert.ErrorIs(t, err, store.SaveErr)
	assert.Equal(t, 0, f.metrics.Flushes)
}

func TestApp_FlushErrorIsLogged(t *testing.T) {
	f := newAppFixture(testutil.NewMockStore(), "6\n")
	f.metrics.FlushErr = errors.New("textfile not writable")

	assert.NoError(t, f.app.Run())
	assert.Equal(t, 1, f.logger.Count("error"))
}

func TestApp_EOFBehavesLikeQuit(t *testing.T) {
	f := newAppFixture(testutil.NewMockStore(), "1\n2\nPray\n5\n")

	require.NoError(t, f.app.Run())
	snapshot, err := f.store.Load(appDataPath)
	require.NoError(t, err)
	assert.Equal(t, []models.Goal{{Kind: models.KindEternal, Name: "Pray", Points: 5}}, snapshot.Goals)
}

func TestApp_CloseClosesStore(t *testing.T) {
	f := newAppFixture(testutil.NewMockStore(), "")
	f.app.Close()
	assert.True(t, f.store.Closed)
}
