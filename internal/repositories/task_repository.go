package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "todo-list.com/todo-list/internal/errors"
	"todo-list.com/todo-list/pkg/constants"
	model "todo-list.com/todo-list/pkg/models"
)

// Values stored in the status column. They predate the Go rewrite and are
// kept so existing database files open unchanged.
const (
	storedPending   = "pendiente"
	storedCompleted = "completada"
)

const (
	// storedTimeLayout is fixed-width so stored UTC timestamps compare
	// correctly as text.
	storedTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"
	// legacyTimeLayout is the zone-less ISO-8601 form written by earlier versions.
	legacyTimeLayout = "2006-01-02T15:04:05.999999999"
)

type taskRow struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	Title     string  `gorm:"type:text;not null"`
	Status    string  `gorm:"type:text DEFAULT 'pendiente';not null;check:chk_tasks_status,status IN ('pendiente','completada')"`
	CreatedAt string  `gorm:"type:text;not null"`
	UpdatedAt *string `gorm:"type:text"`
}

func (taskRow) TableName() string {
	return "tasks"
}

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// CreateTable creates the tasks table when it is missing. Existing tables are
// never altered.
func (r *TaskRepository) CreateTable(ctx context.Context) error {
	migrator := r.db.WithContext(ctx).Migrator()
	if migrator.HasTable(&taskRow{}) {
		return nil
	}

	if err := migrator.CreateTable(&taskRow{}); err != nil {
		return apperrors.Storage("failed to create tasks table", err)
	}

	return nil
}

func (r *TaskRepository) CreateTask(ctx context.Context, title string, createdAt time.Time) (*model.Task, error) {
	row := &taskRow{
		Title:     title,
		Status:    storedPending,
		CreatedAt: formatTime(createdAt),
	}

	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, apperrors.Storage("failed to create task", err)
	}

	return row.toModel()
}

func (r *TaskRepository) FindByID(ctx context.Context, id int64) (*model.Task, error) {
	var row taskRow
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.TaskNotFound(id)
	}
	if err != nil {
		return nil, apperrors.Storage("failed to find task", err)
	}

	return row.toModel()
}

func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	var rows []taskRow
	if err := r.db.WithContext(ctx).Order("id asc").Find(&rows).Error; err != nil {
		return nil, apperrors.Storage("failed to list tasks", err)
	}

	tasks := make([]model.Task, 0, len(rows))
	for _, row := range rows {
		task, err := row.toModel()
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}

	return tasks, nil
}

// UpdateTitle reports whether a row with the given id existed.
func (r *TaskRepository) UpdateTitle(ctx context.Context, id int64, title string, updatedAt time.Time) (bool, error) {
	return r.update(ctx, id, "failed to update task title", map[string]interface{}{
		"title":      title,
		"updated_at": notBeforeCreation(updatedAt),
	})
}

func (r *TaskRepository) MarkCompleted(ctx context.Context, id int64, updatedAt time.Time) (bool, error) {
	return r.update(ctx, id, "failed to complete task", map[string]interface{}{
		"status":     storedCompleted,
		"updated_at": notBeforeCreation(updatedAt),
	})
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&taskRow{})
	if res.Error != nil {
		return false, apperrors.Storage("failed to delete task", res.Error)
	}

	return res.RowsAffected > 0, nil
}

func (r *TaskRepository) update(ctx context.Context, id int64, op string, values map[string]interface{}) (bool, error) {
	res := r.db.WithContext(ctx).Model(&taskRow{}).
		Where("id = ?", id).
		Updates(values)

	if res.Error != nil {
		return false, apperrors.Storage(op, res.Error)
	}

	return res.RowsAffected > 0, nil
}

func (row taskRow) toModel() (*model.Task, error) {
	status, err := parseStatus(row.Status)
	if err != nil {
		return nil, apperrors.Storage(fmt.Sprintf("invalid task %d", row.ID), err)
	}

	createdAt, err := parseTime(row.CreatedAt)
	if err != nil {
		return nil, apperrors.Storage(fmt.Sprintf("invalid task %d", row.ID), err)
	}

	task := &model.Task{
		ID:        row.ID,
		Title:     row.Title,
		Status:    status,
		CreatedAt: createdAt,
	}

	if row.UpdatedAt != nil && *row.UpdatedAt != "" {
		updatedAt, err := parseTime(*row.UpdatedAt)
		if err != nil {
			return nil, apperrors.Storage(fmt.Sprintf("invalid task %d", row.ID), err)
		}
		task.UpdatedAt = &updatedAt
	}

	return task, nil
}

func parseStatus(s string) (constants.TaskStatus, error) {
	switch s {
	case storedPending:
		return constants.StatusPending, nil
	case storedCompleted:
		return constants.StatusCompleted, nil
	default:
		return "", fmt.Errorf("unknown status %q", s)
	}
}

// notBeforeCreation keeps updated_at >= created_at even if the wall clock
// stepped backwards between creation and mutation.
func notBeforeCreation(t time.Time) clause.Expr {
	return gorm.Expr("MAX(created_at, ?)", formatTime(t))
}

func formatTime(t time.Time) string {
	return t.UTC().Format(storedTimeLayout)
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}

	t, err := time.ParseInLocation(legacyTimeLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
	}
	return t, nil
}
