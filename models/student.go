package models

import "fmt"

const (
	// MinStudentCredits is the least any student may carry.
	MinStudentCredits = 3
	// MaxStudentCredits is both the ceiling and the default.
	MaxStudentCredits = 18
)

// Student is a user who owns a schedule and carries a credit limit.
type Student struct {
	User
	MaxCredits int

	schedule *Schedule
}

// NewStudent validates the identity fields and credit limit and
// creates the student with an empty schedule.
func NewStudent(firstName, lastName, id, email, hashedPassword string, maxCredits int) (*Student, error) {
	u, err := NewUser(firstName, lastName, id, email, hashedPassword)
	if err != nil {
		return nil, err
	}
	s := &Student{User: u, schedule: NewSchedule()}
	if err := s.SetMaxCredits(maxCredits); err != nil {
		return nil, err
	}
	return s, nil
}

// SetMaxCredits bounds the limit to [MinStudentCredits, MaxStudentCredits].
func (s *Student) SetMaxCredits(maxCredits int) error {
	if maxCredits < MinStudentCredits || maxCredits > MaxStudentCredits {
		return NewValidationError("max credits", fmt.Sprintf("max credits must be between %d and %d", MinStudentCredits, MaxStudentCredits))
	}
	s.MaxCredits = maxCredits
	return nil
}

// Schedule returns the student's schedule.
func (s *Student) Schedule() *Schedule { return s.schedule }

// CanAdd reports whether the course fits the schedule's duplicate and
// conflict rules and stays within the student's credit limit.
func (s *Student) CanAdd(c *Course) bool {
	return s.schedule.CanAdd(c) && c.Credits+s.schedule.Credits() <= s.MaxCredits
}

// Less orders students by last name, first name, then id.
func (s *Student) Less(other *Student) bool {
	if s.LastName != other.LastName {
		return s.LastName < other.LastName
	}
	if s.FirstName != other.FirstName {
		return s.FirstName < other.FirstName
	}
	return s.ID < other.ID
}

// String renders the student in its record form.
func (s *Student) String() string {
	return fmt.Sprintf("%s,%s,%s,%s,%s,%d", s.FirstName, s.LastName, s.ID, s.Email, s.Password, s.MaxCredits)
}
