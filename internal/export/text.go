package export

import (
	"fmt"
	"io"
	"strings"

	apperrors "todo-list.com/todo-list/internal/errors"
	model "todo-list.com/todo-list/pkg/models"
)

const (
	reportHeader = "TO-DO LIST"
	majorRule    = "=================================================="
	minorRule    = "--------------------------------------------------"
)

// WriteText renders the plain-text report:
//
//	TO-DO LIST
//	=====
//	Exported: <local time>
//	=====
//	<glyph> [<id>] <title>
//	   Created: <utc time>
//	   Updated: <utc time>   (only once the task was modified)
//	-----
func (e *Exporter) WriteText(w io.Writer, tasks []model.Task) error {
	var b strings.Builder

	b.WriteString(reportHeader + "\n")
	b.WriteString(majorRule + "\n")
	fmt.Fprintf(&b, "Exported: %s\n", e.now().In(e.location).Format(displayTimeLayout))
	b.WriteString(majorRule + "\n")

	for _, t := range tasks {
		fmt.Fprintf(&b, "%s [%d] %s\n", t.Status.Glyph(), t.ID, t.Title)
		fmt.Fprintf(&b, "   Created: %s\n", formatTaskTime(t.CreatedAt))
		if t.UpdatedAt != nil {
			fmt.Fprintf(&b, "   Updated: %s\n", formatTaskTime(*t.UpdatedAt))
		}
		b.WriteString(minorRule + "\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return apperrors.Export("failed to write text export", err)
	}

	return nil
}
