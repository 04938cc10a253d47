package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	apperrors "todo-list.com/todo-list/internal/errors"
	model "todo-list.com/todo-list/pkg/models"
)

func (e *Exporter) WriteCSV(w io.Writer, tasks []model.Task) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "title", "status", "created_at", "updated_at"}); err != nil {
		return apperrors.Export("failed to write csv export", err)
	}

	for _, t := range tasks {
		updated := ""
		if t.UpdatedAt != nil {
			updated = t.UpdatedAt.UTC().Format(time.RFC3339)
		}
		err := cw.Write([]string{
			strconv.FormatInt(t.ID, 10),
			t.Title,
			string(t.Status),
			t.CreatedAt.UTC().Format(time.RFC3339),
			updated,
		})
		if err != nil {
			return apperrors.Export("failed to write csv export", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return apperrors.Export("failed to write csv export", err)
	}

	return nil
}
