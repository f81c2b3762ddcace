// Package records reads and writes the flat comma-separated record
// files for students, faculty and courses. Reads are forgiving:
// malformed or duplicate lines are skipped silently. Writes emit each
// entity's own record form verbatim, so a written file reads back to
// the same entities.
package records

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/matthewstanaland/PackScheduler/models"
)

// FacultyLookup resolves instructor ids while course records load.
// Courses whose instructor id resolves are bound to that faculty
// member's schedule; unresolved ids leave the course unassigned.
type FacultyLookup interface {
	ByID(id string) *models.Faculty
}

const (
	studentFieldCount = 6
	facultyFieldCount = 6
	arrangedFields    = 7
	timedFields       = 9
)

func openRecords(fileName string) (*os.File, *csv.Reader, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to read file %s: %w", fileName, err)
	}
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return f, r, nil
}

// ReadStudents loads student records, skipping lines that do not
// parse and any later line reusing an id.
func ReadStudents(fileName string) ([]*models.Student, error) {
	f, r, err := openRecords(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var students []*models.Student
	seen := make(map[string]bool)
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		s, err := parseStudent(rec)
		if err != nil || seen[s.ID] {
			continue
		}
		seen[s.ID] = true
		students = append(students, s)
	}
	return students, nil
}

func parseStudent(rec []string) (*models.Student, error) {
	if len(rec) != studentFieldCount {
		return nil, fmt.Errorf("student record needs %d fields, got %d", studentFieldCount, len(rec))
	}
	maxCredits, err := strconv.Atoi(rec[5])
	if err != nil {
		return nil, err
	}
	return models.NewStudent(rec[0], rec[1], rec[2], rec[3], rec[4], maxCredits)
}

// WriteStudents writes the students one record per line.
func WriteStudents(fileName string, students []*models.Student) error {
	f, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("unable to write to file %s: %w", fileName, err)
	}
	defer f.Close()
	for _, s := range students {
		fmt.Fprintln(f, s.String())
	}
	return nil
}

// ReadFaculty loads faculty records, skipping lines that do not parse
// and any later line reusing an id.
func ReadFaculty(fileName string) ([]*models.Faculty, error) {
	f, r, err := openRecords(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var faculty []*models.Faculty
	seen := make(map[string]bool)
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		fc, err := parseFaculty(rec)
		if err != nil || seen[fc.ID] {
			continue
		}
		seen[fc.ID] = true
		faculty = append(faculty, fc)
	}
	return faculty, nil
}

func parseFaculty(rec []string) (*models.Faculty, error) {
	if len(rec) != facultyFieldCount {
		return nil, fmt.Errorf("faculty record needs %d fields, got %d", facultyFieldCount, len(rec))
	}
	maxCourses, err := strconv.Atoi(rec[5])
	if err != nil {
		return nil, err
	}
	return models.NewFaculty(rec[0], rec[1], rec[2], rec[3], rec[4], maxCourses)
}

// WriteFaculty writes the faculty one record per line.
func WriteFaculty(fileName string, faculty []*models.Faculty) error {
	f, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("unable to write to file %s: %w", fileName, err)
	}
	defer f.Close()
	for _, fc := range faculty {
		fmt.Fprintln(f, fc.String())
	}
	return nil
}

// ReadCourses loads course records, skipping malformed lines and
// duplicate (name, section) pairs. When lookup is non-nil and a
// record's instructor id resolves, the course is added to that
// faculty member's schedule, which assigns the instructor; a record
// whose faculty schedule rejects the course (say, a time conflict
// with a course they already teach) is skipped like any other bad
// line.
func ReadCourses(fileName string, lookup FacultyLookup) ([]*models.Course, error) {
	f, r, err := openRecords(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var courses []*models.Course
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		c, err := parseCourse(rec, lookup)
		if err != nil {
			continue
		}
		duplicate := false
		for _, existing := range courses {
			if existing.Name == c.Name && existing.Section == c.Section {
				duplicate = true
				break
			}
		}
		if !duplicate {
			courses = append(courses, c)
		}
	}
	return courses, nil
}

func parseCourse(rec []string, lookup FacultyLookup) (*models.Course, error) {
	if len(rec) != arrangedFields && len(rec) != timedFields {
		return nil, fmt.Errorf("course record needs %d or %d fields, got %d", arrangedFields, timedFields, len(rec))
	}
	credits, err := strconv.Atoi(rec[3])
	if err != nil {
		return nil, err
	}
	enrollmentCap, err := strconv.Atoi(rec[5])
	if err != nil {
		return nil, err
	}
	days := rec[6]
	startTime, endTime := 0, 0
	if days == models.ArrangedDays {
		if len(rec) != arrangedFields {
			return nil, fmt.Errorf("arranged course record cannot carry times")
		}
	} else {
		if len(rec) != timedFields {
			return nil, fmt.Errorf("timed course record needs %d fields", timedFields)
		}
		if startTime, err = strconv.Atoi(rec[7]); err != nil {
			return nil, err
		}
		if endTime, err = strconv.Atoi(rec[8]); err != nil {
			return nil, err
		}
	}

	// The instructor id is not trusted as-is; the course starts
	// unassigned and is bound through the faculty schedule only when
	// the id resolves.
	c, err := models.NewCourse(rec[0], rec[1], rec[2], credits, "", enrollmentCap, days, startTime, endTime)
	if err != nil {
		return nil, err
	}
	if instructorID := rec[4]; instructorID != "" && lookup != nil {
		if fc := lookup.ByID(instructorID); fc != nil {
			if err := fc.Schedule().AddCourse(c); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

// WriteCourses writes the courses one record per line.
func WriteCourses(fileName string, courses []*models.Course) error {
	f, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("unable to write to file %s: %w", fileName, err)
	}
	defer f.Close()
	for _, c := range courses {
		fmt.Fprintln(f, c.String())
	}
	return nil
}
