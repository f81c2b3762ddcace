// Package directory maintains the student and faculty rosters, kept
// sorted by (last name, first name, id) and keyed by unique id.
// Passwords are verified against their confirmation and bcrypt-hashed
// before the user is constructed.
package directory

import (
	"sort"

	"golang.org/x/crypto/bcrypt"

	"github.com/matthewstanaland/PackScheduler/models"
	"github.com/matthewstanaland/PackScheduler/records"
)

// HashPassword bcrypt-hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", models.NewValidationError("password", "password is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", models.NewValidationError("password", "unable to hash password")
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext matches the stored
// hash.
func CheckPassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}

func verifyConfirmation(password, repeatPassword string) (string, error) {
	if password == "" || repeatPassword == "" {
		return "", models.NewValidationError("password", "password is required")
	}
	if password != repeatPassword {
		return "", models.NewValidationError("password", "passwords do not match")
	}
	return HashPassword(password)
}

// StudentDirectory is the ordered roster of students.
type StudentDirectory struct {
	students []*models.Student
}

// NewStudentDirectory creates an empty student directory.
func NewStudentDirectory() *StudentDirectory {
	return &StudentDirectory{}
}

// Reset empties the directory. Anything unsaved is lost.
func (d *StudentDirectory) Reset() { d.students = nil }

// Load replaces the directory with the student records in fileName.
func (d *StudentDirectory) Load(fileName string) error {
	students, err := records.ReadStudents(fileName)
	if err != nil {
		return err
	}
	sort.Slice(students, func(i, j int) bool { return students[i].Less(students[j]) })
	d.students = students
	return nil
}

// Save writes the directory to fileName in record form.
func (d *StudentDirectory) Save(fileName string) error {
	return records.WriteStudents(fileName, d.students)
}

// Add verifies the password confirmation, hashes the password, and
// constructs the student. An out-of-range credit limit falls back to
// the default. A reused id reports false with no other effect.
func (d *StudentDirectory) Add(firstName, lastName, id, email, password, repeatPassword string, maxCredits int) (bool, error) {
	hash, err := verifyConfirmation(password, repeatPassword)
	if err != nil {
		return false, err
	}
	if maxCredits < models.MinStudentCredits || maxCredits > models.MaxStudentCredits {
		maxCredits = models.MaxStudentCredits
	}
	s, err := models.NewStudent(firstName, lastName, id, email, hash, maxCredits)
	if err != nil {
		return false, err
	}
	if d.ByID(id) != nil {
		return false, nil
	}
	i := sort.Search(len(d.students), func(i int) bool { return !d.students[i].Less(s) })
	d.students = append(d.students, nil)
	copy(d.students[i+1:], d.students[i:])
	d.students[i] = s
	return true, nil
}

// Remove deletes the student with the given id, reporting whether
// they were present.
func (d *StudentDirectory) Remove(id string) bool {
	for i, s := range d.students {
		if s.ID == id {
			d.students = append(d.students[:i], d.students[i+1:]...)
			return true
		}
	}
	return false
}

// ByID returns the student with the given id, or nil.
func (d *StudentDirectory) ByID(id string) *models.Student {
	for _, s := range d.students {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Students returns a copy of the roster in sorted order.
func (d *StudentDirectory) Students() []*models.Student {
	out := make([]*models.Student, len(d.students))
	copy(out, d.students)
	return out
}

// Rows returns the directory projection for every student.
func (d *StudentDirectory) Rows() [][]string {
	rows := make([][]string, len(d.students))
	for i, s := range d.students {
		rows[i] = s.DirectoryRow()
	}
	return rows
}

// Len returns the number of students.
func (d *StudentDirectory) Len() int { return len(d.students) }

// FacultyDirectory is the ordered roster of faculty.
type FacultyDirectory struct {
	faculty []*models.Faculty
}

// NewFacultyDirectory creates an empty faculty directory.
func NewFacultyDirectory() *FacultyDirectory {
	return &FacultyDirectory{}
}

// Reset empties the directory. Anything unsaved is lost.
func (d *FacultyDirectory) Reset() { d.faculty = nil }

// Load replaces the directory with the faculty records in fileName.
func (d *FacultyDirectory) Load(fileName string) error {
	faculty, err := records.ReadFaculty(fileName)
	if err != nil {
		return err
	}
	sort.Slice(faculty, func(i, j int) bool { return faculty[i].Less(faculty[j]) })
	d.faculty = faculty
	return nil
}

// Save writes the directory to fileName in record form.
func (d *FacultyDirectory) Save(fileName string) error {
	return records.WriteFaculty(fileName, d.faculty)
}

// Add verifies the password confirmation, hashes the password, and
// constructs the faculty member. An out-of-range course limit falls
// back to the default. A reused id reports false with no other
// effect.
func (d *FacultyDirectory) Add(firstName, lastName, id, email, password, repeatPassword string, maxCourses int) (bool, error) {
	hash, err := verifyConfirmation(password, repeatPassword)
	if err != nil {
		return false, err
	}
	if maxCourses < models.MinFacultyCourses || maxCourses > models.MaxFacultyCourses {
		maxCourses = models.MaxFacultyCourses
	}
	f, err := models.NewFaculty(firstName, lastName, id, email, hash, maxCourses)
	if err != nil {
		return false, err
	}
	if d.ByID(id) != nil {
		return false, nil
	}
	i := sort.Search(len(d.faculty), func(i int) bool { return !d.faculty[i].Less(f) })
	d.faculty = append(d.faculty, nil)
	copy(d.faculty[i+1:], d.faculty[i:])
	d.faculty[i] = f
	return true, nil
}

// Remove deletes the faculty member with the given id, reporting
// whether they were present.
func (d *FacultyDirectory) Remove(id string) bool {
	for i, f := range d.faculty {
		if f.ID == id {
			d.faculty = append(d.faculty[:i], d.faculty[i+1:]...)
			return true
		}
	}
	return false
}

// ByID returns the faculty member with the given id, or nil.
func (d *FacultyDirectory) ByID(id string) *models.Faculty {
	for _, f := range d.faculty {
		if f.ID == id {
			return f
		}
	}
	return nil
}

// Faculty returns a copy of the roster in sorted order.
func (d *FacultyDirectory) Faculty() []*models.Faculty {
	out := make([]*models.Faculty, len(d.faculty))
	copy(out, d.faculty)
	return out
}

// Rows returns the directory projection for every faculty member.
func (d *FacultyDirectory) Rows() [][]string {
	rows := make([][]string, len(d.faculty))
	for i, f := range d.faculty {
		rows[i] = f.DirectoryRow()
	}
	return rows
}

// Len returns the number of faculty members.
func (d *FacultyDirectory) Len() int { return len(d.faculty) }
