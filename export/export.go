// Package export renders schedules and the catalog into portable
// formats: iCalendar for calendar apps and xlsx workbooks for office
// tooling. Everything is returned as an in-memory buffer plus a
// suggested file name; callers decide where it goes.
package export

import (
	"bytes"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/matthewstanaland/PackScheduler/catalog"
	"github.com/matthewstanaland/PackScheduler/models"
)

// icalDays maps meeting-day letters to RFC 5545 BYDAY codes.
var icalDays = map[byte]string{
	'M': "MO",
	'T': "TU",
	'W': "WE",
	'H': "TH",
	'F': "FR",
}

// dayOffsets maps meeting-day letters to days after Monday.
var dayOffsets = map[byte]int{
	'M': 0,
	'T': 1,
	'W': 2,
	'H': 3,
	'F': 4,
}

var shortHeader = []string{"Name", "Section", "Title", "Meeting", "Open Seats"}

// Exporter renders export documents.
type Exporter struct {
	logger *zap.Logger
}

// New creates an Exporter. A nil logger is replaced with a no-op one.
func New(logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{logger: logger}
}

// ScheduleICS renders the student's schedule as an iCalendar with one
// weekly-recurring event per timed course. termStart anchors the
// recurrence and must be the Monday of the first teaching week; the
// recurrence runs for the given number of weeks. Arranged courses
// have no meeting time and are left out.
func (e *Exporter) ScheduleICS(s *models.Student, termStart time.Time, weeks int) (*bytes.Buffer, string, error) {
	if s == nil {
		return nil, "", models.NewValidationError("export", "student is required")
	}
	if weeks < 1 {
		return nil, "", models.NewValidationError("export", "term must run at least one week")
	}
	termStart = time.Date(termStart.Year(), termStart.Month(), termStart.Day(), 0, 0, 0, 0, termStart.Location())
	if termStart.Weekday() != time.Monday {
		return nil, "", models.NewValidationError("export", "term start must be a Monday")
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//PackScheduler//EN")

	until := termStart.AddDate(0, 0, weeks*7).UTC()
	for _, c := range s.Schedule().Courses() {
		if c.Meeting.Arranged() {
			e.logger.Debug("skipping arranged course in ics export", zap.String("course", c.Name))
			continue
		}
		byday := ""
		firstOffset := 7
		for i := 0; i < len(c.Meeting.Days); i++ {
			d := c.Meeting.Days[i]
			if byday != "" {
				byday += ","
			}
			byday += icalDays[d]
			if dayOffsets[d] < firstOffset {
				firstOffset = dayOffsets[d]
			}
		}
		first := termStart.AddDate(0, 0, firstOffset)
		start := first.Add(clockDuration(c.Meeting.StartTime))
		end := first.Add(clockDuration(c.Meeting.EndTime))

		ev := cal.AddEvent(fmt.Sprintf("%s-%s@packscheduler", c.Name, c.Section))
		ev.SetDtStampTime(time.Now())
		ev.SetStartAt(start)
		ev.SetEndAt(end)
		ev.SetSummary(fmt.Sprintf("%s %s", c.Name, c.Title))
		ev.SetDescription(fmt.Sprintf("Section %s, %d credits", c.Section, c.Credits))
		ev.AddRrule(fmt.Sprintf("FREQ=WEEKLY;BYDAY=%s;UNTIL=%s", byday, until.Format("20060102T150405Z")))
	}

	buf := bytes.NewBufferString(cal.Serialize())
	name := fmt.Sprintf("%s_schedule.ics", s.ID)
	e.logger.Info("schedule exported", zap.String("student", s.ID), zap.String("format", "ics"))
	return buf, name, nil
}

func clockDuration(hhmm int) time.Duration {
	return time.Duration(hhmm/100)*time.Hour + time.Duration(hhmm%100)*time.Minute
}

// CatalogXLSX renders the catalog's short display rows as a one-sheet
// workbook.
func (e *Exporter) CatalogXLSX(cc *catalog.CourseCatalog) (*bytes.Buffer, string, error) {
	if cc == nil {
		return nil, "", models.NewValidationError("export", "catalog is required")
	}
	buf, err := rowsToWorkbook("Catalog", cc.Rows())
	if err != nil {
		return nil, "", err
	}
	e.logger.Info("catalog exported", zap.Int("courses", cc.Len()))
	return buf, "course_catalog.xlsx", nil
}

// ScheduleXLSX renders the student's schedule rows as a one-sheet
// workbook.
func (e *Exporter) ScheduleXLSX(s *models.Student) (*bytes.Buffer, string, error) {
	if s == nil {
		return nil, "", models.NewValidationError("export", "student is required")
	}
	buf, err := rowsToWorkbook(s.Schedule().Title(), s.Schedule().Rows())
	if err != nil {
		return nil, "", err
	}
	name := fmt.Sprintf("%s_schedule.xlsx", s.ID)
	e.logger.Info("schedule exported", zap.String("student", s.ID), zap.String("format", "xlsx"))
	return buf, name, nil
}

func rowsToWorkbook(sheet string, rows [][]string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}
	writeRow := func(row int, values []string) error {
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		return nil
	}
	if err := writeRow(1, shortHeader); err != nil {
		return nil, err
	}
	for i, row := range rows {
		if err := writeRow(i+2, row); err != nil {
			return nil, err
		}
	}
	return f.WriteToBuffer()
}
