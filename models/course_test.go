package models

import (
	"errors"
	"testing"
)

func mustCourse(t *testing.T, name, section, days string, startTime, endTime int) *Course {
	t.Helper()
	c, err := NewCourse(name, "Software Development Fundamentals", section, 3, "", 10, days, startTime, endTime)
	if err != nil {
		t.Fatalf("NewCourse(%q, %q): %v", name, section, err)
	}
	return c
}

func mustStudent(t *testing.T, id string) *Student {
	t.Helper()
	s, err := NewStudent("Zahir", "King", id, id+"@ncsu.edu", "hashedpw", MaxStudentCredits)
	if err != nil {
		t.Fatalf("NewStudent(%q): %v", id, err)
	}
	return s
}

func TestNewCourseValidation(t *testing.T) {
	tests := []struct {
		name    string
		course  string
		title   string
		section string
		credits int
		cap     int
		days    string
		start   int
		end     int
		field   string
	}{
		{"empty name", "", "Title", "001", 3, 10, "MW", 1330, 1445, "course name"},
		{"illegal name", "CSC 216", "Title", "001", 3, 10, "MW", 1330, 1445, "course name"},
		{"incomplete name", "CSC", "Title", "001", 3, 10, "MW", 1330, 1445, "course name"},
		{"empty title", "CSC216", "", "001", 3, 10, "MW", 1330, 1445, "title"},
		{"short section", "CSC216", "Title", "01", 3, 10, "MW", 1330, 1445, "section"},
		{"alpha section", "CSC216", "Title", "0a1", 3, 10, "MW", 1330, 1445, "section"},
		{"credits low", "CSC216", "Title", "001", 0, 10, "MW", 1330, 1445, "credits"},
		{"credits high", "CSC216", "Title", "001", 6, 10, "MW", 1330, 1445, "credits"},
		{"bad meeting", "CSC216", "Title", "001", 3, 10, "XY", 1330, 1445, "meeting days and times"},
		{"cap low", "CSC216", "Title", "001", 3, 9, "MW", 1330, 1445, "enrollment cap"},
		{"cap high", "CSC216", "Title", "001", 3, 251, "MW", 1330, 1445, "enrollment cap"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCourse(tt.course, tt.title, tt.section, tt.credits, "", tt.cap, tt.days, tt.start, tt.end)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error = %v, want *ValidationError", err)
			}
			if ve.Field != tt.field {
				t.Errorf("field = %q, want %q", ve.Field, tt.field)
			}
		})
	}
}

func TestNewCourseAllowsEmptyInstructor(t *testing.T) {
	c, err := NewCourse("CSC216", "Software Development Fundamentals", "001", 3, "", 10, "MW", 1330, 1445)
	if err != nil {
		t.Fatal(err)
	}
	if c.InstructorID != "" {
		t.Errorf("InstructorID = %q, want empty", c.InstructorID)
	}
	if c.Roll() == nil || c.Roll().EnrollmentCap() != 10 {
		t.Error("course was created without a 10-seat roll")
	}
}

func TestCourseString(t *testing.T) {
	timed, err := NewCourse("CSC216", "Software Development Fundamentals", "001", 3, "sesmith5", 10, "MW", 1330, 1445)
	if err != nil {
		t.Fatal(err)
	}
	want := "CSC216,Software Development Fundamentals,001,3,sesmith5,10,MW,1330,1445"
	if got := timed.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	arranged, err := NewArrangedCourse("CSC491", "Independent Study", "601", 2, "", 15)
	if err != nil {
		t.Fatal(err)
	}
	want = "CSC491,Independent Study,601,2,,15,A"
	if got := arranged.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCourseIsDuplicate(t *testing.T) {
	a := mustCourse(t, "CSC216", "001", "MW", 1330, 1445)
	b := mustCourse(t, "CSC216", "002", "TH", 1330, 1445)
	c := mustCourse(t, "CSC226", "001", "MW", 1330, 1445)

	if !a.IsDuplicate(b) {
		t.Error("same name, different section should be a duplicate")
	}
	if a.IsDuplicate(c) {
		t.Error("different names should not be duplicates")
	}
	if a.IsDuplicate(nil) {
		t.Error("nil should not be a duplicate")
	}
}

func TestCourseEqual(t *testing.T) {
	a := mustCourse(t, "CSC216", "001", "MW", 1330, 1445)
	b := mustCourse(t, "CSC216", "001", "MW", 1330, 1445)
	if !a.Equal(b) {
		t.Error("identical courses should be equal")
	}
	b.Section = "002"
	if a.Equal(b) {
		t.Error("differing sections should not be equal")
	}
	if a.Equal(nil) {
		t.Error("nil should not be equal")
	}
}

func TestCourseCompare(t *testing.T) {
	a := mustCourse(t, "CSC216", "001", "MW", 1330, 1445)
	b := mustCourse(t, "CSC216", "002", "TH", 1330, 1445)
	c := mustCourse(t, "CSC226", "001", "MW", 1330, 1445)

	if a.Compare(b) >= 0 {
		t.Error("001 should sort before 002 within a name")
	}
	if b.Compare(c) >= 0 {
		t.Error("CSC216 should sort before CSC226")
	}
	if a.Compare(a) != 0 {
		t.Error("a course should compare equal to itself")
	}
}

func TestCourseSetEnrollmentCapReplacesRoll(t *testing.T) {
	c := mustCourse(t, "CSC216", "001", "MW", 1330, 1445)
	if err := c.Roll().Enroll(mustStudent(t, "zking")); err != nil {
		t.Fatal(err)
	}
	if err := c.SetEnrollmentCap(20); err != nil {
		t.Fatal(err)
	}
	if c.Roll().EnrollmentCap() != 20 {
		t.Errorf("cap = %d, want 20", c.Roll().EnrollmentCap())
	}
	if c.Roll().OpenSeats() != 20 {
		t.Errorf("open seats = %d, want 20 after the roll is replaced", c.Roll().OpenSeats())
	}
	if err := c.SetEnrollmentCap(5); err == nil {
		t.Error("cap below the minimum should be rejected")
	}
}

func TestCourseDisplayRows(t *testing.T) {
	c, err := NewCourse("CSC216", "Software Development Fundamentals", "001", 3, "sesmith5", 10, "MW", 1330, 1445)
	if err != nil {
		t.Fatal(err)
	}
	short := c.ShortDisplayRow()
	wantShort := []string{"CSC216", "001", "Software Development Fundamentals", "MW 1:30PM-2:45PM", "10"}
	for i := range wantShort {
		if short[i] != wantShort[i] {
			t.Errorf("ShortDisplayRow[%d] = %q, want %q", i, short[i], wantShort[i])
		}
	}
	long := c.LongDisplayRow()
	wantLong := []string{"CSC216", "001", "Software Development Fundamentals", "3", "sesmith5", "MW 1:30PM-2:45PM", ""}
	for i := range wantLong {
		if long[i] != wantLong[i] {
			t.Errorf("LongDisplayRow[%d] = %q, want %q", i, long[i], wantLong[i])
		}
	}
}
