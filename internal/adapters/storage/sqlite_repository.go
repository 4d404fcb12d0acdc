package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/renato0307/chinook/internal/config"
	"github.com/renato0307/chinook/internal/domain"
	"github.com/renato0307/chinook/internal/logging"
	"github.com/renato0307/chinook/internal/ports"
)

// SQLiteRepository implements ports.ThemeRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.ThemeRepository = (*SQLiteRepository)(nil)

// gormLogger routes GORM logs to the chinook logger
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("CHINOOK_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (and migrates) the theme database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	dbPath = config.ExpandPath(dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	applyPragmas(db)

	if err := db.AutoMigrate(&ThemeModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate theme schema: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	logging.Logger.Debug("Theme database opened", "path", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// sqlitePragmas are applied on open. WAL lets the SSH server and the CLI
// share the file.
var sqlitePragmas = []string{
	"PRAGMA journal_mode=WAL",
	"PRAGMA busy_timeout=5000",
	"PRAGMA synchronous=NORMAL",
}

// applyPragmas tunes the connection. Failures are logged and SQLite keeps
// its defaults.
func applyPragmas(db *gorm.DB) {
	for _, pragma := range sqlitePragmas {
		if err := db.Exec(pragma).Error; err != nil {
			logging.Logger.Warn("Failed to apply SQLite pragma", "pragma", pragma, "error", err)
		}
	}
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Get implements ThemeReader.Get
func (r *SQLiteRepository) Get(ctx context.Context, name string) (*domain.ThemeConfig, error) {
	var model ThemeModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ports.ErrThemeNotFound, name)
		}
		return nil, fmt.Errorf("failed to get theme %s: %w", name, err)
	}

	theme := themeModelToDomain(model)
	return &theme, nil
}

// List implements ThemeReader.List. Themes come back in creation order.
func (r *SQLiteRepository) List(ctx context.Context) ([]domain.ThemeConfig, error) {
	var models []ThemeModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Order("created_at ASC").Order("name ASC").Find(&models).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list themes: %w", err)
	}

	themes := make([]domain.ThemeConfig, 0, len(models))
	for _, m := range models {
		themes = append(themes, themeModelToDomain(m))
	}
	return themes, nil
}

// Save implements ThemeWriter.Save, inserting or replacing by name.
// Replacing keeps the original creation time.
func (r *SQLiteRepository) Save(ctx context.Context, theme domain.ThemeConfig) error {
	model := domainToThemeModel(theme)

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"background", "error", "info", "mode", "primary", "secondary",
				"success", "surface", "text_primary", "text_secondary", "updated_at", "warning",
			}),
		}).Create(&model).Error
	}, 3)
	if err != nil {
		return fmt.Errorf("failed to save theme %s: %w", theme.Name, err)
	}

	logging.Logger.Debug("Theme saved", "name", theme.Name)
	return nil
}

// Delete implements ThemeWriter.Delete
func (r *SQLiteRepository) Delete(ctx context.Context, name string) error {
	var affected int64

	err := withRetry(func() error {
		result := r.db.WithContext(ctx).Where("name = ?", name).Delete(&ThemeModel{})
		affected = result.RowsAffected
		return result.Error
	}, 3)
	if err != nil {
		return fmt.Errorf("failed to delete theme %s: %w", name, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ports.ErrThemeNotFound, name)
	}

	logging.Logger.Debug("Theme deleted", "name", name)
	return nil
}

// withRetry retries operations on SQLITE_BUSY with linear backoff
func withRetry(fn func() error, maxRetries int) error {
	var err error
	for i := 0; i < maxRetries; i++ {
		err = fn()
		if err == nil {
			return nil
		}

		if isBusy(err) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries: %w", maxRetries, err)
}

func isBusy(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked)
}
