package cmd

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	config "todo-list.com/todo-list/internal/configs"
	apperrors "todo-list.com/todo-list/internal/errors"
	"todo-list.com/todo-list/internal/export"
	repository "todo-list.com/todo-list/internal/repositories"
	"todo-list.com/todo-list/internal/services"
	model "todo-list.com/todo-list/pkg/models"
)

// taskStore is what the commands need from the task service. Commands never
// build queries themselves.
type taskStore interface {
	CreateTask(ctx context.Context, title string) (*model.Task, error)
	GetTask(ctx context.Context, id int64) (*model.Task, error)
	ListTasks(ctx context.Context) ([]model.Task, error)
	UpdateTitle(ctx context.Context, id int64, newTitle string) error
	CompleteTask(ctx context.Context, id int64) error
	DeleteTask(ctx context.Context, id int64) error
}

type application struct {
	db       *gorm.DB
	tasks    taskStore
	exporter *export.Exporter
}

var app *application

func openApp(ctx context.Context) error {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return &apperrors.Exception{
			Kind:    apperrors.KindValidation,
			Message: "invalid configuration",
			Err:     err,
		}
	}

	db, err := config.NewDatabaseClient(cfg.DatabaseDSN, cfg.DBDebug)
	if err != nil {
		return apperrors.Storage("failed to open task database", err)
	}

	taskService := services.NewTaskService(
		repository.NewTaskRepository(db),
		services.WithStrictNotFound(cfg.StrictNotFound),
	)

	if err := taskService.Initialize(ctx); err != nil {
		_ = config.CloseDatabaseClient(db)
		return err
	}

	log.Printf("using task database %s", cfg.DatabaseDSN)

	app = &application{
		db:       db,
		tasks:    taskService,
		exporter: export.NewExporter(),
	}
	return nil
}

func closeApp() {
	if app == nil {
		return
	}

	if err := config.CloseDatabaseClient(app.db); err != nil {
		log.Printf("failed to close task database: %v", err)
	}
	app = nil
}
