package export

import (
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/matthewstanaland/PackScheduler/catalog"
	"github.com/matthewstanaland/PackScheduler/models"
)

func testStudent(t *testing.T) *models.Student {
	t.Helper()
	s, err := models.NewStudent("Zahir", "King", "zking", "zking@ncsu.edu", "hashedpw", 18)
	if err != nil {
		t.Fatal(err)
	}
	timed, err := models.NewCourse("CSC216", "Software Development Fundamentals", "001", 3, "sesmith5", 10, "MW", 1330, 1445)
	if err != nil {
		t.Fatal(err)
	}
	arranged, err := models.NewArrangedCourse("CSC491", "Independent Study", "601", 2, "", 15)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range []*models.Course{timed, arranged} {
		if err := s.Schedule().AddCourse(c); err != nil {
			t.Fatal(err)
		}
	}
	return s
}

func mondayAfter(t time.Time) time.Time {
	for t.Weekday() != time.Monday {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

func TestScheduleICS(t *testing.T) {
	e := New(nil)
	s := testStudent(t)
	termStart := mondayAfter(time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC))

	buf, name, err := e.ScheduleICS(s, termStart, 16)
	if err != nil {
		t.Fatal(err)
	}
	if name != "zking_schedule.ics" {
		t.Errorf("file name = %q", name)
	}

	out := buf.String()
	if !strings.Contains(out, "BEGIN:VCALENDAR") {
		t.Error("output is not a calendar")
	}
	if !strings.Contains(out, "CSC216 Software Development Fundamentals") {
		t.Error("output is missing the course summary")
	}
	if !strings.Contains(out, "BYDAY=MO,WE") {
		t.Error("output is missing the weekly recurrence days")
	}
	// Arranged courses have no meeting time to place on a calendar.
	if strings.Contains(out, "CSC491") {
		t.Error("arranged course should be left out")
	}
}

func TestScheduleICSValidation(t *testing.T) {
	e := New(nil)
	s := testStudent(t)
	monday := mondayAfter(time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC))

	if _, _, err := e.ScheduleICS(nil, monday, 16); err == nil {
		t.Error("nil student should be rejected")
	}
	if _, _, err := e.ScheduleICS(s, monday, 0); err == nil {
		t.Error("a zero-week term should be rejected")
	}
	if _, _, err := e.ScheduleICS(s, monday.AddDate(0, 0, 1), 16); err == nil {
		t.Error("a non-Monday term start should be rejected")
	}
}

func TestCatalogXLSX(t *testing.T) {
	cc := catalog.New()
	added, err := cc.Add("CSC216", "Software Development Fundamentals", "001", 3, "", 10, "MW", 1330, 1445)
	if err != nil || !added {
		t.Fatal(err)
	}

	e := New(nil)
	buf, name, err := e.CatalogXLSX(cc)
	if err != nil {
		t.Fatal(err)
	}
	if name != "course_catalog.xlsx" {
		t.Errorf("file name = %q", name)
	}

	wb, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatal(err)
	}
	defer wb.Close()

	header, err := wb.GetCellValue("Catalog", "A1")
	if err != nil {
		t.Fatal(err)
	}
	if header != "Name" {
		t.Errorf("A1 = %q, want Name", header)
	}
	cell, err := wb.GetCellValue("Catalog", "A2")
	if err != nil {
		t.Fatal(err)
	}
	if cell != "CSC216" {
		t.Errorf("A2 = %q, want CSC216", cell)
	}
	meeting, err := wb.GetCellValue("Catalog", "D2")
	if err != nil {
		t.Fatal(err)
	}
	if meeting != "MW 1:30PM-2:45PM" {
		t.Errorf("D2 = %q", meeting)
	}
}

func TestScheduleXLSX(t *testing.T) {
	e := New(nil)
	s := testStudent(t)
	s.Schedule().SetTitle("Fall 2026")

	buf, name, err := e.ScheduleXLSX(s)
	if err != nil {
		t.Fatal(err)
	}
	if name != "zking_schedule.xlsx" {
		t.Errorf("file name = %q", name)
	}

	wb, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatal(err)
	}
	defer wb.Close()

	rows, err := wb.GetRows("Fall 2026")
	if err != nil {
		t.Fatal(err)
	}
	// Header plus the two scheduled courses.
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[2][0] != "CSC491" || rows[2][3] != "Arranged" {
		t.Errorf("arranged row = %v", rows[2])
	}

	if _, _, err := e.ScheduleXLSX(nil); err == nil {
		t.Error("nil student should be rejected")
	}
}
