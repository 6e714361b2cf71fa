package entity

import (
	"fmt"
	"path"
	"time"
)

const (
	// DateLayout é o formato de data usado pelo Cost Explorer e pela chave do relatório.
	DateLayout = "2006-01-02"

	// WindowDays is the length of the reporting window.
	WindowDays = 7
)

// TimeWindow is the [Start, End] date range of a report. End is the
// invocation date in UTC and Start is exactly WindowDays before it.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// NewTimeWindow computes the trailing window ending on the UTC calendar day of now.
func NewTimeWindow(now time.Time) TimeWindow {
	u := now.UTC()
	end := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return TimeWindow{
		Start: end.AddDate(0, 0, -WindowDays),
		End:   end,
	}
}

func (w TimeWindow) StartDate() string { return w.Start.Format(DateLayout) }
func (w TimeWindow) EndDate() string   { return w.End.Format(DateLayout) }

func (w TimeWindow) String() string {
	return fmt.Sprintf("%s to %s", w.StartDate(), w.EndDate())
}

// ReportKey builds the storage key for a report produced on date:
// <prefix>/weekly-report-<YYYY-MM-DD>.json. Same-day runs share a key.
func ReportKey(prefix string, date time.Time) string {
	name := fmt.Sprintf("weekly-report-%s.json", date.UTC().Format(DateLayout))
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}
