package services

import (
	"errors"
	"eternalquest/internal/models"
	"eternalquest/internal/providers"
	"eternalquest/internal/storage/interfaces"
	"eternalquest/internal/structures"
	"fmt"
	json "github.com/goccy/go-json"
	"strconv"
	"time"
)

type LedgerServiceInterface interface {
	AddGoal(goal *models.Goal) error
	RecordEvent(name string) (int, error)
	DisplayGoals() []string
	Save(path string) error
	Load(path string) error
	Goals() []models.Goal
	Score() int
	Level() int
	UserName() string
}

type LedgerService struct {
	ledger         *models.Ledger
	store          interfaces.StoreInterface
	cache          providers.CacheProviderInterface
	metrics        providers.MetricsProviderInterface
	logger         providers.Logger
	pointsPerLevel int
	// revision changes on every mutation and keys the listing cache.
	revision uint64
}

func (ls *LedgerService) AddGoal(goal *models.Goal) error {
	if err := ls.ledger.AddGoal(goal); err != nil {
		ls.logger.Warnf(providers.TypeGoal, "Rejected goal: %s", err)
		return err
	}
	ls.touch()
	ls.metrics.IncGoalsCreated(goal.Kind.String())
	ls.metrics.SetGoalsTotal(ls.ledger.Len())
	ls.logger.Infof(providers.TypeGoal, "Created %s goal %q worth %d points", goal.Kind, goal.Name, goal.Points)
	return nil
}

func (ls *LedgerService) RecordEvent(name string) (int, error) {
	points, err := ls.ledger.RecordEvent(name)
	if err != nil {
		if errors.Is(err, models.ErrGoalNotFound) {
			ls.metrics.IncGoalNotFound()
		}
		ls.logger.Warnf(providers.TypeGoal, "Record event: %s", err)
		return 0, err
	}
	ls.touch()

	goal, _ := ls.ledger.Goal(name)
	ls.metrics.IncEventsRecorded(goal.Kind.String())
	ls.metrics.AddPointsAwarded(points)
	ls.metrics.SetScore(ls.ledger.Score())
	ls.logger.Infof(providers.TypeGoal, "Recorded %q for %d points, score %d", name, points, ls.ledger.Score())
	return points, nil
}

// DisplayGoals renders the goal listing, reusing the cached rendering while
// the ledger is unchanged.
func (ls *LedgerService) DisplayGoals() []string {
	key := "goals:" + strconv.FormatUint(ls.revision, 10)
	if data, ok := ls.cache.Get(key); ok {
		var lines []string
		if err := json.Unmarshal(data, &lines); err == nil {
			return lines
		}
	}

	lines := ls.ledger.DisplayGoals()
	if data, err := json.Marshal(lines); err == nil {
		ls.cache.Set(key, data)
	}
	return lines
}

func (ls *LedgerService) Save(path string) error {
	start := time.Now()
	err := ls.store.Save(path, ls.ledger.Snapshot())
	ls.metrics.ObservePersistenceDuration("save", time.Since(start))
	if err != nil {
		ls.logger.Errorf(providers.TypeStorage, "Save to %s failed: %s", path, err)
		return fmt.Errorf("save ledger: %w", err)
	}
	ls.logger.Infof(providers.TypeStorage, "Saved %d goals to %s", ls.ledger.Len(), path)
	return nil
}

// Load replaces the whole ledger with the one stored at path. The current
// ledger is kept when path holds nothing or fails to decode.
func (ls *LedgerService) Load(path string) error {
	start := time.Now()
	snapshot, err := ls.store.Load(path)
	ls.metrics.ObservePersistenceDuration("load", time.Since(start))
	if err != nil {
		if errors.Is(err, models.ErrLedgerNotFound) {
			ls.logger.Warnf(providers.TypeStorage, "Load: %s", err)
			return err
		}
		ls.logger.Errorf(providers.TypeStorage, "Load from %s failed: %s", path, err)
		return fmt.Errorf("load ledger: %w", err)
	}

	if err = ls.ledger.Restore(snapshot); err != nil {
		ls.logger.Errorf(providers.TypeStorage, "Rejected ledger from %s: %s", path, err)
		return err
	}
	ls.touch()
	ls.metrics.SetScore(ls.ledger.Score())
	ls.metrics.SetGoalsTotal(ls.ledger.Len())
	ls.logger.Infof(providers.TypeStorage, "Loaded %d goals for %s from %s", ls.ledger.Len(), ls.ledger.UserName(), path)
	return nil
}

func (ls *LedgerService) Goals() []models.Goal {
	return ls.ledger.Goals()
}

func (ls *LedgerService) Score() int {
	return ls.ledger.Score()
}

func (ls *LedgerService) Level() int {
	return ls.ledger.Level(ls.pointsPerLevel)
}

func (ls *LedgerService) UserName() string {
	return ls.ledger.UserName()
}

func (ls *LedgerService) touch() {
	ls.revision++
}

func NewLedgerService(conf *structures.Config, store interfaces.StoreInterface, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface, logger providers.Logger) LedgerServiceInterface {
	return &LedgerService{
		ledger:         models.NewLedger(conf.Ledger.UserName),
		store:          store,
		cache:          cache,
		metrics:        metrics,
		logger:         logger,
		pointsPerLevel: conf.Ledger.PointsPerLevel,
	}
}
