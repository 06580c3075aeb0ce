// Package fiscal resolves April to March fiscal years into concrete date windows.
package fiscal

import (
	"fmt"
	"time"
)

// Period is a resolved fiscal year window. Immutable once computed;
// callers build a fresh Period whenever a different year is selected.
type Period struct {
	StartYear int       `json:"startYear"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Label     string    `json:"label"`
}

// Resolve turns a 4-digit start year into a Period covering
// April 1 00:00:00.000 of startYear through March 31 23:59:59.999 of the
// following calendar year. It always succeeds.
func Resolve(startYear int, loc *time.Location) Period {
	if loc == nil {
		loc = time.UTC
	}
	return Period{
		StartYear: startYear,
		Start:     time.Date(startYear, time.April, 1, 0, 0, 0, 0, loc),
		End:       time.Date(startYear+1, time.March, 31, 23, 59, 59, 999_000_000, loc),
		Label:     fmt.Sprintf("FY %d-%02d", startYear, (startYear+1)%100),
	}
}

// CurrentStartYear infers the fiscal start year containing now:
// April onwards belongs to the fiscal year starting this calendar year,
// January through March to the one that started the year before.
func CurrentStartYear(now time.Time) int {
	if now.Month() >= time.April {
		return now.Year()
	}
	return now.Year() - 1
}

// Contains reports whether t falls inside the period window.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// MonthIndex maps a date to its bucket in the fiscal year:
// 0 is April of StartYear, 11 is March of StartYear+1.
// The second return is false when the date falls outside the 12 months.
func (p Period) MonthIndex(t time.Time) (int, bool) {
	idx := (t.Year()-p.StartYear)*12 + int(t.Month()) - int(time.April)
	if idx < 0 || idx >= 12 {
		return 0, false
	}
	return idx, true
}

// MonthLabels returns the 12 short month labels of the fiscal year,
// April first.
func MonthLabels() [12]string {
	return [12]string{"Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec", "Jan", "Feb", "Mar"}
}
