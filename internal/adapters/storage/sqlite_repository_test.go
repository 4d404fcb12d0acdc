package storage

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/chinook/internal/domain"
	"github.com/renato0307/chinook/internal/logging"
	"github.com/renato0307/chinook/internal/ports"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()

	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "themes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func midnight() domain.ThemeConfig {
	return domain.ThemeConfig{
		Name: "midnight",
		Mode: domain.ModeDark,
		Colors: domain.ThemeColors{
			Primary:    "#000080",
			Secondary:  "#ff00ff",
			Background: "#000000",
			Surface:    "#111111",
			Text:       domain.TextColors{Primary: "#eeeeee", Secondary: "#999999"},
			Warning:    domain.ColorPtr("#ffaa00"),
		},
	}
}

func TestNewSQLiteRepository_UsesWAL(t *testing.T) {
	repo := newTestRepository(t)

	var mode string
	require.NoError(t, repo.db.Raw("PRAGMA journal_mode").Scan(&mode).Error)
	assert.Equal(t, "wal", mode)
}

func TestApplyPragmas_LogsFailures(t *testing.T) {
	var buf bytes.Buffer
	previous := logging.Logger
	logging.Logger = slog.New(slog.NewJSONHandler(&buf, nil))
	t.Cleanup(func() { logging.Logger = previous })

	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "themes.db"))
	require.NoError(t, err)
	require.NoError(t, repo.Close())
	buf.Reset()

	applyPragmas(repo.db)

	assert.Equal(t, len(sqlitePragmas), strings.Count(buf.String(), "Failed to apply SQLite pragma"))
	assert.Contains(t, buf.String(), "journal_mode")
}

func TestSQLiteRepository_SaveAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, midnight()))

	got, err := repo.Get(ctx, "midnight")
	require.NoError(t, err)
	assert.Equal(t, midnight(), *got)
	assert.Nil(t, got.Colors.Error, "unset optional colors must stay unset")
	assert.Nil(t, got.Colors.Info)
	assert.Nil(t, got.Colors.Success)
}

func TestSQLiteRepository_GetNotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, ports.ErrThemeNotFound)
}

func TestSQLiteRepository_SaveReplaces(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, midnight()))

	updated := midnight()
	updated.Colors.Primary = "#123456"
	updated.Colors.Warning = nil
	updated.Colors.Error = domain.ColorPtr("#ff0000")
	require.NoError(t, repo.Save(ctx, updated))

	got, err := repo.Get(ctx, "midnight")
	require.NoError(t, err)
	assert.Equal(t, updated, *got)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSQLiteRepository_List(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first := midnight()
	second := midnight()
	second.Name = "dawn"
	second.Mode = domain.ModeLight

	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	all, err := repo.List(ctx)
	require.NoError(t, err)

	names := make([]string, len(all))
	for i, theme := range all {
		names[i] = theme.Name
	}
	assert.ElementsMatch(t, []string{"midnight", "dawn"}, names)
}

func TestSQLiteRepository_Delete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, midnight()))
	require.NoError(t, repo.Delete(ctx, "midnight"))

	_, err := repo.Get(ctx, "midnight")
	assert.ErrorIs(t, err, ports.ErrThemeNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "midnight"), ports.ErrThemeNotFound)
}

func TestSQLiteRepository_PersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "themes.db")
	ctx := context.Background()

	repo, err := NewSQLiteRepository(dbPath)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, midnight()))
	require.NoError(t, repo.Close())

	reopened, err := NewSQLiteRepository(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "midnight")
	require.NoError(t, err)
	assert.Equal(t, midnight(), *got)
}

func TestWithRetry(t *testing.T) {
	t.Run("retries busy errors", func(t *testing.T) {
		calls := 0
		err := withRetry(func() error {
			calls++
			if calls < 3 {
				return sqlite3.Error{Code: sqlite3.ErrBusy}
			}
			return nil
		}, 3)

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		err := withRetry(func() error {
			return sqlite3.Error{Code: sqlite3.ErrLocked}
		}, 2)

		assert.ErrorContains(t, err, "after 2 retries")
	})

	t.Run("returns other errors immediately", func(t *testing.T) {
		calls := 0
		boom := errors.New("boom")
		err := withRetry(func() error {
			calls++
			return boom
		}, 3)

		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, calls)
	})
}
