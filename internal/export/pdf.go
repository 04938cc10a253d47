package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	apperrors "todo-list.com/todo-list/internal/errors"
	model "todo-list.com/todo-list/pkg/models"
)

func (e *Exporter) WritePDF(w io.Writer, tasks []model.Task) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// Core fonts only cover cp1252, so titles are translated and the status
	// glyphs are replaced with ASCII boxes.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, reportHeader)
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(40, 6, "Exported: "+e.now().In(e.location).Format(displayTimeLayout))
	pdf.Ln(10)

	for _, t := range tasks {
		box := "[ ]"
		if t.IsCompleted() {
			box = "[x]"
		}

		pdf.SetFont("Arial", "B", 11)
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("%s [%d] %s", box, t.ID, t.Title)), "0", "L", false)

		pdf.SetFont("Arial", "", 9)
		line := "Created: " + formatTaskTime(t.CreatedAt)
		if t.UpdatedAt != nil {
			line += "    Updated: " + formatTaskTime(*t.UpdatedAt)
		}
		pdf.MultiCell(0, 5, line, "B", "L", false)
		pdf.Ln(2)
	}

	if err := pdf.Output(w); err != nil {
		return apperrors.Export("failed to write pdf export", err)
	}

	return nil
}
