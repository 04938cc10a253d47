package export

import (
	"encoding/json"
	"io"
	"time"

	apperrors "todo-list.com/todo-list/internal/errors"
	model "todo-list.com/todo-list/pkg/models"
)

type jsonReport struct {
	ExportedAt time.Time    `json:"exported_at"`
	Count      int          `json:"count"`
	Tasks      []model.Task `json:"tasks"`
}

func (e *Exporter) WriteJSON(w io.Writer, tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}

	report := jsonReport{
		ExportedAt: e.now().In(e.location).Truncate(time.Second),
		Count:      len(tasks),
		Tasks:      tasks,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return apperrors.Export("failed to write json export", err)
	}

	return nil
}
