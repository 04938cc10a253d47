package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	apperrors "todo-list.com/todo-list/internal/errors"
	"todo-list.com/todo-list/pkg/constants"
)

const legacySchema = `
	CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		status TEXT NOT NULL CHECK(status IN ('pendiente','completada')) DEFAULT 'pendiente',
		created_at TEXT NOT NULL,
		updated_at TEXT
	);
`

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tasks.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func setupRepo(t *testing.T) *TaskRepository {
	t.Helper()

	repo := NewTaskRepository(setupTestDB(t))
	require.NoError(t, repo.CreateTable(context.Background()))
	return repo
}

func TestTaskRepository_CreateAndFind(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	createdAt := time.Date(2024, 5, 1, 9, 30, 15, 123456789, time.UTC)

	task, err := repo.CreateTask(ctx, "Buy milk", createdAt)
	require.NoError(t, err)

	assert.Equal(t, int64(1), task.ID)
	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, constants.StatusPending, task.Status)
	assert.True(t, task.CreatedAt.Equal(createdAt))
	assert.Nil(t, task.UpdatedAt)

	found, err := repo.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task, found)
}

func TestTaskRepository_FindByIDMissing(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.FindByID(context.Background(), 42)

	assert.True(t, errors.Is(err, apperrors.ErrTaskNotFound))
}

func TestTaskRepository_CreateTableIsIdempotent(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	_, err := repo.CreateTask(ctx, "Keep me", time.Now())
	require.NoError(t, err)

	require.NoError(t, repo.CreateTable(ctx))

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestTaskRepository_CheckConstraintRejectsUnknownStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	require.NoError(t, repo.CreateTable(context.Background()))

	err := db.Exec(
		"INSERT INTO tasks (title, status, created_at) VALUES (?, ?, ?)",
		"Bad", "archived", "2024-01-01T00:00:00Z",
	).Error

	assert.Error(t, err)
}

func TestTaskRepository_UpdateTitleAndMarkCompleted(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	createdAt := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	task, err := repo.CreateTask(ctx, "Draft", createdAt)
	require.NoError(t, err)

	editedAt := createdAt.Add(time.Hour)
	found, err := repo.UpdateTitle(ctx, task.ID, "Final", editedAt)
	require.NoError(t, err)
	assert.True(t, found)

	completedAt := editedAt.Add(time.Minute)
	found, err = repo.MarkCompleted(ctx, task.ID, completedAt)
	require.NoError(t, err)
	assert.True(t, found)

	got, err := repo.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Final", got.Title)
	assert.Equal(t, constants.StatusCompleted, got.Status)
	require.NotNil(t, got.UpdatedAt)
	assert.True(t, got.UpdatedAt.Equal(completedAt))
}

func TestTaskRepository_MutationsOnMissingRow(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	found, err := repo.UpdateTitle(ctx, 99, "Nope", time.Now())
	require.NoError(t, err)
	assert.False(t, found)

	found, err = repo.MarkCompleted(ctx, 99, time.Now())
	require.NoError(t, err)
	assert.False(t, found)

	found, err = repo.Delete(ctx, 99)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestTaskRepository_IDsAreNeverReused(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	var ids []int64
	for _, title := range []string{"one", "two", "three"} {
		task, err := repo.CreateTask(ctx, title, time.Now())
		require.NoError(t, err)
		ids = append(ids, task.ID)
	}

	found, err := repo.Delete(ctx, ids[2])
	require.NoError(t, err)
	require.True(t, found)

	fourth, err := repo.CreateTask(ctx, "four", time.Now())
	require.NoError(t, err)

	for _, id := range ids {
		assert.Greater(t, fourth.ID, id)
	}
}

func TestTaskRepository_ListOrdersByID(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	for _, title := range []string{"a", "b", "c"} {
		_, err := repo.CreateTask(ctx, title, time.Now())
		require.NoError(t, err)
	}

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "a", tasks[0].Title)
	assert.Equal(t, "b", tasks[1].Title)
	assert.Equal(t, "c", tasks[2].Title)
	assert.Less(t, tasks[0].ID, tasks[1].ID)
	assert.Less(t, tasks[1].ID, tasks[2].ID)
}

func TestTaskRepository_ReadsLegacyDatabase(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Exec(legacySchema).Error)
	require.NoError(t, db.Exec(
		"INSERT INTO tasks (title, status, created_at, updated_at) VALUES (?, ?, ?, ?)",
		"Pagar renta", "completada", "2024-03-01T10:20:30.123456", "2024-03-02T11:00:00.5",
	).Error)

	repo := NewTaskRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.CreateTable(ctx))

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	task := tasks[0]
	assert.Equal(t, "Pagar renta", task.Title)
	assert.Equal(t, constants.StatusCompleted, task.Status)
	assert.True(t, task.CreatedAt.Equal(time.Date(2024, 3, 1, 10, 20, 30, 123456000, time.UTC)))
	require.NotNil(t, task.UpdatedAt)
	assert.True(t, task.UpdatedAt.Equal(time.Date(2024, 3, 2, 11, 0, 0, 500000000, time.UTC)))

	next, err := repo.CreateTask(ctx, "Comprar leche", time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(2), next.ID)
}

func TestTaskRepository_CorruptTimestampIsStorageError(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.CreateTable(ctx))
	require.NoError(t, db.Exec(
		"INSERT INTO tasks (title, status, created_at) VALUES (?, ?, ?)",
		"Broken", "pendiente", "yesterday",
	).Error)

	_, err := repo.List(ctx)

	assert.True(t, errors.Is(err, apperrors.ErrStorage))
}

func TestTaskRepository_UpdatedAtNeverPrecedesCreatedAt(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	createdAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	task, err := repo.CreateTask(ctx, "Clock skew", createdAt)
	require.NoError(t, err)

	_, err = repo.MarkCompleted(ctx, task.ID, createdAt.Add(-time.Hour))
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, task.ID)
	require.NoError(t, err)
	require.NotNil(t, got.UpdatedAt)
	assert.True(t, got.UpdatedAt.Equal(createdAt))
}
