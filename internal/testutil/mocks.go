package testutil

import (
	"eternalquest/internal/models"
	"eternalquest/internal/providers"
	"fmt"
	"sync"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Count returns how many entries were logged at level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, l := range m.Logs {
		if l.Level == level {
			n++
		}
	}
	return n
}

// MockStore implements interfaces.StoreInterface in memory, keyed by path.
type MockStore struct {
	Data      map[string][]byte
	SaveErr   error
	LoadErr   error
	SaveCalls int
	LoadCalls int
	Closed    bool
}

func NewMockStore() *MockStore {
	return &MockStore{Data: make(map[string][]byte)}
}

// Save keeps an encoded copy so later mutations of the ledger do not leak
// into the stored snapshot.
func (m *MockStore) Save(path string, snapshot *models.Snapshot) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	data, err := encodeSnapshot(snapshot)
	if err != nil {
		return err
	}
	m.Data[path] = data
	return nil
}

func (m *MockStore) Load(path string) (*models.Snapshot, error) {
	m.LoadCalls++
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	data, ok := m.Data[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrLedgerNotFound, path)
	}
	return decodeSnapshot(data)
}

func (m *MockStore) Close() {
	m.Closed = true
}

// MockMetrics implements providers.MetricsProviderInterface with plain counters.
type MockMetrics struct {
	GoalsCreated   map[string]int
	EventsRecorded map[string]int
	PointsAwarded  int
	GoalNotFound   int
	Score          int
	GoalsTotal     int
	CacheHits      int
	CacheMisses    int
	Persistence    map[string]int
	Flushes        int
	FlushErr       error
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{
		GoalsCreated:   make(map[string]int),
		EventsRecorded: make(map[string]int),
		Persistence:    make(map[string]int),
	}
}

func (m *MockMetrics) IncGoalsCreated(kind string)   { m.GoalsCreated[kind]++ }
func (m *MockMetrics) IncEventsRecorded(kind string) { m.EventsRecorded[kind]++ }
func (m *MockMetrics) AddPointsAwarded(points int)   { m.PointsAwarded += points }
func (m *MockMetrics) IncGoalNotFound()              { m.GoalNotFound++ }
func (m *MockMetrics) SetScore(score int)            { m.Score = score }
func (m *MockMetrics) SetGoalsTotal(count int)       { m.GoalsTotal = count }
func (m *MockMetrics) IncCacheHits()                 { m.CacheHits++ }
func (m *MockMetrics) IncCacheMisses()               { m.CacheMisses++ }
func (m *MockMetrics) ObservePersistenceDuration(op string, _ time.Duration) {
	m.Persistence[op]++
}
func (m *MockMetrics) Flush() error {
	m.Flushes++
	return m.FlushErr
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
	Gets int
	Hits int
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Gets++
	val, ok := m.Data[key]
	if ok {
		m.Hits++
	}
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
	Closed       bool
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() {
	m.Closed = true
}
