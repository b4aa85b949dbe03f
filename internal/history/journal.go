package history

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"pomodoro/internal/core/timer"
	"pomodoro/internal/logging"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const databaseFileName = "history.db"

// Entry is one completed phase.
type Entry struct {
	ID              string      `gorm:"primaryKey"`
	Phase           timer.Phase `gorm:"index;not null"`
	DurationSeconds int64       `gorm:"not null"`
	CompletedAt     time.Time   `gorm:"index;not null"`
}

// Duration returns the configured length of the completed phase.
func (entry Entry) Duration() time.Duration {
	return time.Duration(entry.DurationSeconds) * time.Second
}

// Journal records completed phases in SQLite.
type Journal struct {
	db     *gorm.DB
	logger *log.Logger
	now    func() time.Time
}

// DatabasePath returns the journal location inside a config directory.
func DatabasePath(configDir, appName string) string {
	return filepath.Join(configDir, appName, databaseFileName)
}

// Open opens or creates the journal database at dbPath.
func Open(dbPath string, logger *log.Logger) (*Journal, error) {
	if logger == nil {
		logger = logging.Logger
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create journal directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
		Logger:  newGormLogger(logger),
	})
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")

	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("migrate journal: %w", err)
	}

	return &Journal{db: db, logger: logger, now: time.Now}, nil
}

// Close releases the database handle.
func (journal *Journal) Close() error {
	sqlDB, err := journal.db.DB()
	if err != nil {
		return fmt.Errorf("close journal: %w", err)
	}
	return sqlDB.Close()
}

// Record appends a completed phase.
func (journal *Journal) Record(ctx context.Context, phase timer.Phase, duration time.Duration, completedAt time.Time) (Entry, error) {
	if !phase.Timed() {
		return Entry{}, fmt.Errorf("record %s: not a timed phase", phase)
	}
	entry := Entry{
		ID:              uuid.NewString(),
		Phase:           phase,
		DurationSeconds: int64(duration / time.Second),
		CompletedAt:     completedAt.UTC(),
	}
	if err := journal.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return Entry{}, fmt.Errorf("record %s: %w", phase, err)
	}
	return entry, nil
}

// CompletedWorkSince counts Work phases completed at or after since.
func (journal *Journal) CompletedWorkSince(ctx context.Context, since time.Time) (int, error) {
	var count int64
	err := journal.db.WithContext(ctx).
		Model(&Entry{}).
		Where("phase = ? AND completed_at >= ?", timer.PhaseWork, since.UTC()).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count completed work: %w", err)
	}
	return int(count), nil
}

// CompletedWorkToday counts Work phases completed since local midnight.
func (journal *Journal) CompletedWorkToday(ctx context.Context) (int, error) {
	now := journal.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return journal.CompletedWorkSince(ctx, midnight)
}

// Recent returns the latest entries, newest first.
func (journal *Journal) Recent(ctx context.Context, limit int) ([]Entry, error) {
	var entries []Entry
	err := journal.db.WithContext(ctx).
		Order("completed_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("load recent entries: %w", err)
	}
	return entries, nil
}

// Follow records every completed phase from events until the channel closes or ctx ends.
// onRecord, when set, is called after each successful write.
func (journal *Journal) Follow(ctx context.Context, events <-chan timer.Event, onRecord func(Entry)) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			if event.Type != timer.EventPhaseChange || !event.Previous.Timed() {
				continue
			}
			entry, err := journal.Record(ctx, event.Previous, phaseDuration(event.Snapshot, event.Previous), event.At)
			if err != nil {
				journal.logger.Warn("journal write failed", "err", err)
				continue
			}
			if onRecord != nil {
				onRecord(entry)
			}
		}
	}
}

func phaseDuration(snapshot timer.Snapshot, phase timer.Phase) time.Duration {
	switch phase {
	case timer.PhaseWork:
		return snapshot.Config.Work
	case timer.PhaseShortBreak:
		return snapshot.Config.ShortBreak
	case timer.PhaseLongBreak:
		return snapshot.Config.LongBreak
	default:
		return 0
	}
}

// gormLogger forwards GORM diagnostics to the application logger.
type gormLogger struct {
	logger *log.Logger
	level  gormlogger.LogLevel
}

func newGormLogger(logger *log.Logger) gormlogger.Interface {
	return &gormLogger{logger: logger, level: gormlogger.Warn}
}

func (l *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	return &gormLogger{logger: l.logger, level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Info {
		l.logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Warn {
		l.logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Error {
		l.logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		l.logger.Error("journal query failed", "err", err, "duration", elapsed, "sql", sql, "rows", rows)
	case elapsed > 200*time.Millisecond:
		sql, rows := fc()
		l.logger.Warn("slow journal query", "duration", elapsed, "sql", sql, "rows", rows)
	case l.level >= gormlogger.Info:
		sql, rows := fc()
		l.logger.Debug("journal query", "duration", elapsed, "sql", sql, "rows", rows)
	}
}
