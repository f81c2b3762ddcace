package models

import "fmt"

const (
	// MinEnrollmentCap and MaxEnrollmentCap bound the per-course cap.
	MinEnrollmentCap = 10
	MaxEnrollmentCap = 250

	// WaitlistSize is fixed; the waitlist cap is not configurable.
	WaitlistSize = 10
)

// CourseRoll tracks the students enrolled in one course plus a FIFO
// waitlist that fills once the roll is at capacity. Students are held
// by reference and matched by id; the roll does not own them.
type CourseRoll struct {
	course   *Course
	cap      int
	roll     []*Student
	waitlist []*Student // front of the queue at index 0
}

func newCourseRoll(c *Course, enrollmentCap int) (*CourseRoll, error) {
	if c == nil {
		return nil, NewValidationError("course roll", "course is required")
	}
	r := &CourseRoll{course: c}
	if err := r.SetEnrollmentCap(enrollmentCap); err != nil {
		return nil, err
	}
	return r, nil
}

// EnrollmentCap returns the current cap.
func (r *CourseRoll) EnrollmentCap() int { return r.cap }

// SetEnrollmentCap changes the cap in place. The cap must stay within
// [MinEnrollmentCap, MaxEnrollmentCap] and cannot undercut the
// current roll size. The waitlist is not considered.
func (r *CourseRoll) SetEnrollmentCap(enrollmentCap int) error {
	if enrollmentCap < MinEnrollmentCap || enrollmentCap > MaxEnrollmentCap {
		return NewValidationError("enrollment cap", fmt.Sprintf("cap must be between %d and %d", MinEnrollmentCap, MaxEnrollmentCap))
	}
	if enrollmentCap < len(r.roll) {
		return NewValidationError("enrollment cap", "cap cannot be less than the number of enrolled students")
	}
	r.cap = enrollmentCap
	return nil
}

// OpenSeats returns the number of unfilled roll seats. It is never
// negative and ignores the waitlist.
func (r *CourseRoll) OpenSeats() int { return r.cap - len(r.roll) }

// NumberOnWaitlist returns the current waitlist length.
func (r *CourseRoll) NumberOnWaitlist() int { return len(r.waitlist) }

// Enrolled returns a copy of the roll in enrollment order.
func (r *CourseRoll) Enrolled() []*Student {
	out := make([]*Student, len(r.roll))
	copy(out, r.roll)
	return out
}

// Enroll adds the student to the roll, or to the waitlist when the
// roll is full. It fails when the student is nil, already enrolled or
// waitlisted, or both the roll and the waitlist are full.
func (r *CourseRoll) Enroll(s *Student) error {
	if s == nil {
		return NewValidationError("enrollment", "student is required")
	}
	if r.onRoll(s) {
		return NewValidationError("enrollment", "student is already enrolled")
	}
	if len(r.roll) < r.cap {
		r.roll = append(r.roll, s)
		return nil
	}
	if r.onWaitlist(s) {
		return NewValidationError("enrollment", "student is already on the waitlist")
	}
	if len(r.waitlist) < WaitlistSize {
		r.waitlist = append(r.waitlist, s)
		return nil
	}
	return NewValidationError("enrollment", "the course and its waitlist are full")
}

// Drop removes the student from the roll, promoting the front of the
// waitlist into the vacated seat, or removes them from the waitlist,
// keeping the relative order of everyone behind them. Dropping a
// student who is in neither place is a no-op.
func (r *CourseRoll) Drop(s *Student) error {
	if s == nil {
		return NewValidationError("drop", "student is required")
	}
	for i, enrolled := range r.roll {
		if enrolled.ID == s.ID {
			r.roll = append(r.roll[:i], r.roll[i+1:]...)
			if len(r.waitlist) > 0 {
				next := r.waitlist[0]
				r.waitlist = r.waitlist[1:]
				r.roll = append(r.roll, next)
			}
			return nil
		}
	}
	for i, waiting := range r.waitlist {
		if waiting.ID == s.ID {
			r.waitlist = append(r.waitlist[:i], r.waitlist[i+1:]...)
			return nil
		}
	}
	return nil
}

// CanEnroll reports whether the student could take a roll seat right
// now. Unlike Enroll, it does not count waitlist space as room: a
// full roll means false even when the waitlist is open.
func (r *CourseRoll) CanEnroll(s *Student) bool {
	if s == nil || len(r.roll) >= r.cap {
		return false
	}
	return !r.onWaitlist(s) && !r.onRoll(s)
}

func (r *CourseRoll) onRoll(s *Student) bool {
	for _, enrolled := range r.roll {
		if enrolled.ID == s.ID {
			return true
		}
	}
	return false
}

func (r *CourseRoll) onWaitlist(s *Student) bool {
	for _, waiting := range r.waitlist {
		if waiting.ID == s.ID {
			return true
		}
	}
	return false
}
