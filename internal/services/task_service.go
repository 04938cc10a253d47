package services

import (
	"context"
	"log"
	"strings"
	"time"

	apperrors "todo-list.com/todo-list/internal/errors"
	repository "todo-list.com/todo-list/internal/repositories"
	model "todo-list.com/todo-list/pkg/models"
)

// TaskService owns the task list. It validates input, stamps times and
// decides how missing ids are treated; persistence is left to the repository.
type TaskService struct {
	repo           *repository.TaskRepository
	strictNotFound bool
	now            func() time.Time
}

type Option func(*TaskService)

// WithStrictNotFound makes edit, complete and delete fail with a not-found
// error when the id does not exist instead of doing nothing.
func WithStrictNotFound(strict bool) Option {
	return func(s *TaskService) {
		s.strictNotFound = strict
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *TaskService) {
		s.now = now
	}
}

func NewTaskService(repo *repository.TaskRepository, opts ...Option) *TaskService {
	s := &TaskService{
		repo: repo,
		now:  time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Initialize makes sure the backing table exists. It is safe to call on
// every start and never touches existing rows.
func (s *TaskService) Initialize(ctx context.Context) error {
	return s.repo.CreateTable(ctx)
}

func (s *TaskService) CreateTask(ctx context.Context, title string) (*model.Task, error) {
	title, err := normalizeTitle(title)
	if err != nil {
		return nil, err
	}

	task, err := s.repo.CreateTask(ctx, title, s.now().UTC())
	if err != nil {
		return nil, err
	}

	log.Printf("task %d created", task.ID)
	return task, nil
}

func (s *TaskService) GetTask(ctx context.Context, id int64) (*model.Task, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TaskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	return s.repo.List(ctx)
}

func (s *TaskService) UpdateTitle(ctx context.Context, id int64, newTitle string) error {
	title, err := normalizeTitle(newTitle)
	if err != nil {
		return err
	}

	found, err := s.repo.UpdateTitle(ctx, id, title, s.now().UTC())
	if err != nil {
		return err
	}

	return s.checkFound(id, found, "updated")
}

// CompleteTask is idempotent: completing a completed task only refreshes
// its update time.
func (s *TaskService) CompleteTask(ctx context.Context, id int64) error {
	found, err := s.repo.MarkCompleted(ctx, id, s.now().UTC())
	if err != nil {
		return err
	}

	return s.checkFound(id, found, "completed")
}

func (s *TaskService) DeleteTask(ctx context.Context, id int64) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}

	return s.checkFound(id, found, "deleted")
}

func (s *TaskService) checkFound(id int64, found bool, action string) error {
	if found {
		log.Printf("task %d %s", id, action)
		return nil
	}

	if s.strictNotFound {
		return apperrors.TaskNotFound(id)
	}

	log.Printf("task %d not found, nothing %s", id, action)
	return nil
}

func normalizeTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", apperrors.ErrEmptyTitle
	}
	return title, nil
}
