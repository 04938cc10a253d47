package model

import (
	"time"

	"todo-list.com/todo-list/pkg/constants"
)

type Task struct {
	ID        int64                `json:"id"`
	Title     string               `json:"title"`
	Status    constants.TaskStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt *time.Time           `json:"updated_at,omitempty"`
}

func (t Task) IsCompleted() bool {
	return t.Status == constants.StatusCompleted
}
