package models

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	sectionLength = 3
	minCredits    = 1
	maxCredits    = 5
)

// Course is a catalog entry: identity fields plus its meeting time
// and the roll of enrolled students. A Course is only ever created
// fully validated; the roll is created alongside it and replaced when
// the enrollment cap changes.
type Course struct {
	Name         string
	Title        string
	Section      string
	Credits      int
	InstructorID string
	Meeting      Meeting
	roll         *CourseRoll
}

// NewCourse validates every field and returns the Course with a fresh
// roll, or the first validation failure. An empty instructor id means
// the course is unassigned; assignment flows through FacultySchedule.
func NewCourse(name, title, section string, credits int, instructorID string, enrollmentCap int, days string, startTime, endTime int) (*Course, error) {
	if err := validateCourseName(name); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, NewValidationError("title", "title is required")
	}
	if err := validateSection(section); err != nil {
		return nil, err
	}
	if credits < minCredits || credits > maxCredits {
		return nil, NewValidationError("credits", fmt.Sprintf("credits must be between %d and %d", minCredits, maxCredits))
	}
	meeting, err := NewMeeting(days, startTime, endTime)
	if err != nil {
		return nil, err
	}
	c := &Course{
		Name:         name,
		Title:        title,
		Section:      section,
		Credits:      credits,
		InstructorID: instructorID,
		Meeting:      meeting,
	}
	roll, err := newCourseRoll(c, enrollmentCap)
	if err != nil {
		return nil, err
	}
	c.roll = roll
	return c, nil
}

// NewArrangedCourse creates a Course with no fixed meeting time.
func NewArrangedCourse(name, title, section string, credits int, instructorID string, enrollmentCap int) (*Course, error) {
	return NewCourse(name, title, section, credits, instructorID, enrollmentCap, ArrangedDays, 0, 0)
}

func validateCourseName(name string) error {
	if name == "" {
		return NewValidationError("course name", "name is required")
	}
	ok, err := IsValidCourseName(name)
	if err != nil {
		return &ValidationError{Field: "course name", Reason: err.Error()}
	}
	if !ok {
		return NewValidationError("course name", "name must be 1-4 letters, 3 digits, and an optional 1 letter suffix")
	}
	return nil
}

func validateSection(section string) error {
	if len(section) != sectionLength {
		return NewValidationError("section", "section must be exactly 3 digits")
	}
	for _, d := range section {
		if d < '0' || d > '9' {
			return NewValidationError("section", "section must be exactly 3 digits")
		}
	}
	return nil
}

// Roll returns the course's enrollment roll.
func (c *Course) Roll() *CourseRoll { return c.roll }

// SetEnrollmentCap replaces the course roll with a fresh one holding
// the new cap. Any existing enrollment is discarded.
func (c *Course) SetEnrollmentCap(cap int) error {
	roll, err := newCourseRoll(c, cap)
	if err != nil {
		return err
	}
	c.roll = roll
	return nil
}

// IsDuplicate reports whether the two courses share a name. Sections
// are deliberately ignored: a schedule holds at most one section of
// any course.
func (c *Course) IsDuplicate(other *Course) bool {
	return other != nil && c.Name == other.Name
}

// Equal reports full identity: every field must match. Roll contents
// are not part of course identity.
func (c *Course) Equal(other *Course) bool {
	return other != nil &&
		c.Name == other.Name &&
		c.Title == other.Title &&
		c.Section == other.Section &&
		c.Credits == other.Credits &&
		c.InstructorID == other.InstructorID &&
		c.Meeting == other.Meeting
}

// Compare orders courses by name, then section.
func (c *Course) Compare(other *Course) int {
	if v := strings.Compare(c.Name, other.Name); v != 0 {
		return v
	}
	return strings.Compare(c.Section, other.Section)
}

// CheckConflict reports a meeting-time conflict with another course.
// Duplicate names do not matter here; only days and times do.
func (c *Course) CheckConflict(other *Course) error {
	return c.Meeting.CheckConflict(other.Meeting)
}

// String renders the course in its record form. Arranged courses omit
// the start and end times.
func (c *Course) String() string {
	base := fmt.Sprintf("%s,%s,%s,%d,%s,%d,%s",
		c.Name, c.Title, c.Section, c.Credits, c.InstructorID, c.roll.EnrollmentCap(), c.Meeting.Days)
	if c.Meeting.Arranged() {
		return base
	}
	return fmt.Sprintf("%s,%d,%d", base, c.Meeting.StartTime, c.Meeting.EndTime)
}

// ShortDisplayRow is the compact projection used by catalog and
// schedule listings.
func (c *Course) ShortDisplayRow() []string {
	return []string{c.Name, c.Section, c.Title, c.Meeting.String(), strconv.Itoa(c.roll.OpenSeats())}
}

// LongDisplayRow is the full projection used by detail listings.
func (c *Course) LongDisplayRow() []string {
	return []string{c.Name, c.Section, c.Title, strconv.Itoa(c.Credits), c.InstructorID, c.Meeting.String(), ""}
}
