package models

import "fmt"

const (
	// MinFacultyCourses is the least any faculty member teaches.
	MinFacultyCourses = 1
	// MaxFacultyCourses is both the ceiling and the default.
	MaxFacultyCourses = 3
)

// Faculty is a user who owns a teaching schedule and carries a course
// count limit. The limit is advisory: it is reported through
// IsOverloaded, not enforced when courses are assigned.
type Faculty struct {
	User
	MaxCourses int

	schedule *FacultySchedule
}

// NewFaculty validates the identity fields and course limit and
// creates the faculty member with an empty teaching schedule.
func NewFaculty(firstName, lastName, id, email, hashedPassword string, maxCourses int) (*Faculty, error) {
	u, err := NewUser(firstName, lastName, id, email, hashedPassword)
	if err != nil {
		return nil, err
	}
	f := &Faculty{User: u, schedule: NewFacultySchedule(id)}
	if err := f.SetMaxCourses(maxCourses); err != nil {
		return nil, err
	}
	return f, nil
}

// SetMaxCourses bounds the limit to [MinFacultyCourses, MaxFacultyCourses].
func (f *Faculty) SetMaxCourses(maxCourses int) error {
	if maxCourses < MinFacultyCourses || maxCourses > MaxFacultyCourses {
		return NewValidationError("max courses", fmt.Sprintf("max courses must be between %d and %d", MinFacultyCourses, MaxFacultyCourses))
	}
	f.MaxCourses = maxCourses
	return nil
}

// Schedule returns the faculty member's teaching schedule.
func (f *Faculty) Schedule() *FacultySchedule { return f.schedule }

// IsOverloaded reports whether the scheduled course count exceeds the
// faculty member's limit.
func (f *Faculty) IsOverloaded() bool {
	return f.schedule.NumScheduledCourses() > f.MaxCourses
}

// Less orders faculty by last name, first name, then id.
func (f *Faculty) Less(other *Faculty) bool {
	if f.LastName != other.LastName {
		return f.LastName < other.LastName
	}
	if f.FirstName != other.FirstName {
		return f.FirstName < other.FirstName
	}
	return f.ID < other.ID
}

// String renders the faculty member in their record form.
func (f *Faculty) String() string {
	return fmt.Sprintf("%s,%s,%s,%s,%s,%d", f.FirstName, f.LastName, f.ID, f.Email, f.Password, f.MaxCourses)
}
