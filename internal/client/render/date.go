package render

import (
	"time"

	"github.com/enokjanuario/primeholding/internal/client/models"
)

const brDateLayout = "02/01/2006"

// Day formats a calendar day in Brazilian convention ("15/01/2025").
// A zero date renders as "-".
func Day(d models.Date) string {
	if d.IsZero() {
		return "-"
	}
	return d.Time().Format(brDateLayout)
}

// Moment formats a timestamp as day plus wall-clock time.
func Moment(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(brDateLayout + " 15:04")
}
