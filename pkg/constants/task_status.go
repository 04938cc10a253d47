package constants

type TaskStatus string

const (
	StatusPending   TaskStatus = "pending"
	StatusCompleted TaskStatus = "completed"
)

// Glyph is the single-character marker used in text reports.
func (s TaskStatus) Glyph() string {
	if s == StatusCompleted {
		return "✓"
	}
	return "◯"
}
