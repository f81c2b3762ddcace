package models

import (
	"fmt"
	"strings"
)

// ArrangedDays is the meeting-days marker for courses that have no
// fixed meeting time.
const ArrangedDays = "A"

const (
	upperHour   = 24
	upperMinute = 60
)

// Meeting is the time-of-week footprint of a course: the weekday
// letters it meets on and its start and end times encoded as HHMM
// integers (1330 is 1:30PM). An arranged meeting has Days == "A" and
// zero times.
type Meeting struct {
	Days      string
	StartTime int
	EndTime   int
}

// NewMeeting validates the meeting days and times together. Days must
// be either the arranged marker (with both times zero) or 1-5 unique
// characters from MTWHF with valid times and EndTime >= StartTime.
func NewMeeting(days string, startTime, endTime int) (Meeting, error) {
	if days == "" {
		return Meeting{}, NewValidationError("meeting days and times", "meeting days are required")
	}
	if days == ArrangedDays {
		if startTime != 0 || endTime != 0 {
			return Meeting{}, NewValidationError("meeting days and times", "arranged courses cannot have meeting times")
		}
		return Meeting{Days: ArrangedDays}, nil
	}
	seen := make(map[rune]bool, len(days))
	for _, d := range days {
		switch d {
		case 'M', 'T', 'W', 'H', 'F':
			if seen[d] {
				return Meeting{}, NewValidationError("meeting days and times", "meeting days cannot repeat")
			}
			seen[d] = true
		default:
			return Meeting{}, NewValidationError("meeting days and times", fmt.Sprintf("invalid meeting day %q", d))
		}
	}
	if !validClock(startTime) || !validClock(endTime) {
		return Meeting{}, NewValidationError("meeting days and times", "times must be valid 24-hour HHMM values")
	}
	if endTime < startTime {
		return Meeting{}, NewValidationError("meeting days and times", "end time cannot come before start time")
	}
	return Meeting{Days: days, StartTime: startTime, EndTime: endTime}, nil
}

func validClock(t int) bool {
	hours := t / 100
	minutes := t % 100
	return t >= 0 && hours < upperHour && minutes < upperMinute
}

// Arranged reports whether the meeting has no fixed time.
func (m Meeting) Arranged() bool { return m.Days == ArrangedDays }

// CheckConflict returns an error wrapping ErrConflict when the two
// meetings overlap on at least one shared day. Arranged meetings
// never conflict. The intervals are closed: meetings that touch at a
// boundary minute conflict. The check is symmetric.
func (m Meeting) CheckConflict(other Meeting) error {
	if m.Arranged() || other.Arranged() {
		return nil
	}
	if !strings.ContainsAny(m.Days, other.Days) {
		return nil
	}
	if other.StartTime <= m.EndTime && other.EndTime >= m.StartTime {
		return fmt.Errorf("%w: %s overlaps %s", ErrConflict, other, m)
	}
	return nil
}

// String renders the meeting as "<days> <start>-<end>" in 12-hour
// time, or "Arranged".
func (m Meeting) String() string {
	if m.Arranged() {
		return "Arranged"
	}
	return m.Days + " " + clockString(m.StartTime) + "-" + clockString(m.EndTime)
}

// clockString converts an HHMM integer to 12-hour time with AM/PM.
// Minutes are zero padded; the midnight hour renders as "00" and noon
// stays "12".
func clockString(t int) string {
	hours := t / 100
	minutes := t % 100
	suffix := "AM"
	if hours >= 12 {
		suffix = "PM"
		if hours > 12 {
			hours -= 12
		}
	}
	if hours == 0 {
		return fmt.Sprintf("00:%02d%s", minutes, suffix)
	}
	return fmt.Sprintf("%d:%02d%s", hours, minutes, suffix)
}
