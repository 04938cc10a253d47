package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	apperrors "todo-list.com/todo-list/internal/errors"
	model "todo-list.com/todo-list/pkg/models"
)

type Format string

const (
	FormatText Format = "txt"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatPDF  Format = "pdf"
)

// DefaultExtension is appended to export paths that have none.
const DefaultExtension = ".txt"

const displayTimeLayout = "2006-01-02 15:04:05"

// Exporter renders task snapshots. It never talks to storage, so the same
// snapshot always yields the same report apart from the export time.
type Exporter struct {
	now      func() time.Time
	location *time.Location
}

type Option func(*Exporter)

func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		e.now = now
	}
}

// WithLocation sets the zone of the export timestamp line. Task times are
// always rendered in UTC.
func WithLocation(loc *time.Location) Option {
	return func(e *Exporter) {
		e.location = loc
	}
}

func NewExporter(opts ...Option) *Exporter {
	e := &Exporter{
		now:      time.Now,
		location: time.Local,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(s, ".")))
	switch f {
	case FormatText, FormatCSV, FormatJSON, FormatPDF:
		return f, nil
	default:
		return "", &apperrors.Exception{
			Kind:    apperrors.KindValidation,
			Message: apperrors.ErrUnknownFormat.Message,
			Err:     fmt.Errorf("%q", s),
		}
	}
}

func (e *Exporter) Export(w io.Writer, format Format, tasks []model.Task) error {
	switch format {
	case FormatText:
		return e.WriteText(w, tasks)
	case FormatCSV:
		return e.WriteCSV(w, tasks)
	case FormatJSON:
		return e.WriteJSON(w, tasks)
	case FormatPDF:
		return e.WritePDF(w, tasks)
	default:
		f, err := ParseFormat(string(format))
		if err != nil {
			return err
		}
		return e.Export(w, f, tasks)
	}
}

// WriteFile writes tasks to path in the format named by its extension,
// adding DefaultExtension when there is none, and returns the final path.
// A partially written file is removed.
func (e *Exporter) WriteFile(path string, tasks []model.Task) (string, error) {
	if filepath.Ext(path) == "" {
		path += DefaultExtension
	}

	format, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", apperrors.Export("failed to create export file", err)
	}

	writeErr := e.Export(f, format, tasks)
	closeErr := f.Close()

	if writeErr == nil && closeErr != nil {
		writeErr = apperrors.Export("failed to close export file", closeErr)
	}
	if writeErr != nil {
		_ = os.Remove(path)
		return "", writeErr
	}

	return path, nil
}

func formatTaskTime(t time.Time) string {
	return t.UTC().Format(displayTimeLayout)
}
