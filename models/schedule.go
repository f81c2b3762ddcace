package models

import "fmt"

// DefaultScheduleTitle is the title every fresh schedule starts with.
const DefaultScheduleTitle = "My Schedule"

// Schedule is an ordered collection of courses belonging to one user.
// No two entries may share a name and no two entries may conflict in
// time; insertion order is display order.
type Schedule struct {
	title   string
	courses []*Course
}

// NewSchedule creates an empty schedule with the default title.
func NewSchedule() *Schedule {
	return &Schedule{title: DefaultScheduleTitle}
}

// Title returns the schedule's title.
func (s *Schedule) Title() string { return s.title }

// SetTitle replaces the schedule's title.
func (s *Schedule) SetTitle(title string) { s.title = title }

// AddCourse appends the course after checking the schedule's
// invariants. A nil course is ErrNilCourse; a duplicate name or a
// time conflict surfaces as a ValidationError.
func (s *Schedule) AddCourse(c *Course) error {
	if c == nil {
		return ErrNilCourse
	}
	for _, sc := range s.courses {
		if sc.IsDuplicate(c) {
			return NewValidationError("schedule", fmt.Sprintf("already enrolled in %s", c.Name))
		}
	}
	for _, sc := range s.courses {
		if err := sc.CheckConflict(c); err != nil {
			return NewValidationError("schedule", fmt.Sprintf("%s cannot be added due to a conflict", c.Name))
		}
	}
	s.courses = append(s.courses, c)
	return nil
}

// RemoveCourse removes the entry sharing the course's name and
// reports whether anything was removed. Absence is not an error.
func (s *Schedule) RemoveCourse(c *Course) bool {
	if c == nil {
		return false
	}
	for i, sc := range s.courses {
		if sc.IsDuplicate(c) {
			s.courses = append(s.courses[:i], s.courses[i+1:]...)
			return true
		}
	}
	return false
}

// CanAdd is the non-mutating probe for AddCourse. A nil course is
// simply false here rather than an error.
func (s *Schedule) CanAdd(c *Course) bool {
	if c == nil {
		return false
	}
	for _, sc := range s.courses {
		if sc.IsDuplicate(c) {
			return false
		}
		if err := sc.CheckConflict(c); err != nil {
			return false
		}
	}
	return true
}

// Credits sums the credits of every scheduled course.
func (s *Schedule) Credits() int {
	total := 0
	for _, sc := range s.courses {
		total += sc.Credits
	}
	return total
}

// Reset drops every course. The title is preserved.
func (s *Schedule) Reset() { s.courses = nil }

// Courses returns a copy of the scheduled courses in display order.
func (s *Schedule) Courses() []*Course {
	out := make([]*Course, len(s.courses))
	copy(out, s.courses)
	return out
}

// Rows returns the short display projection for every entry.
func (s *Schedule) Rows() [][]string {
	rows := make([][]string, len(s.courses))
	for i, sc := range s.courses {
		rows[i] = sc.ShortDisplayRow()
	}
	return rows
}

// FacultySchedule is the teaching-side schedule. It keeps the base
// duplicate and conflict invariants and additionally binds the
// courses it holds to its owner's instructor id. There is no credit
// ceiling; the course-count limit lives on Faculty and is advisory.
type FacultySchedule struct {
	Schedule
	instructorID string
}

// NewFacultySchedule creates an empty teaching schedule for the given
// instructor id.
func NewFacultySchedule(instructorID string) *FacultySchedule {
	return &FacultySchedule{Schedule: *NewSchedule(), instructorID: instructorID}
}

// AddCourse assigns the course to this instructor after the base
// schedule checks. A course already assigned to someone else is
// rejected.
func (fs *FacultySchedule) AddCourse(c *Course) error {
	if c == nil {
		return ErrNilCourse
	}
	if c.InstructorID != "" && c.InstructorID != fs.instructorID {
		return NewValidationError("schedule", fmt.Sprintf("%s already has an instructor", c.Name))
	}
	if err := fs.Schedule.AddCourse(c); err != nil {
		return err
	}
	c.InstructorID = fs.instructorID
	return nil
}

// RemoveCourse unassigns and removes the matching entry.
func (fs *FacultySchedule) RemoveCourse(c *Course) bool {
	if c == nil {
		return false
	}
	for i, sc := range fs.courses {
		if sc.IsDuplicate(c) {
			sc.InstructorID = ""
			fs.courses = append(fs.courses[:i], fs.courses[i+1:]...)
			return true
		}
	}
	return false
}

// Reset unassigns every course and empties the schedule.
func (fs *FacultySchedule) Reset() {
	for _, sc := range fs.courses {
		sc.InstructorID = ""
	}
	fs.Schedule.Reset()
}

// NumScheduledCourses returns the number of assigned courses.
func (fs *FacultySchedule) NumScheduledCourses() int { return len(fs.courses) }
