// Package catalog maintains the university's course offerings, kept
// sorted by (name, section).
package catalog

import (
	"sort"

	"github.com/matthewstanaland/PackScheduler/models"
	"github.com/matthewstanaland/PackScheduler/records"
)

// CourseCatalog is the ordered collection of offered courses.
type CourseCatalog struct {
	courses []*models.Course
}

// New creates an empty catalog.
func New() *CourseCatalog {
	return &CourseCatalog{}
}

// Reset empties the catalog. Anything unsaved is lost.
func (cc *CourseCatalog) Reset() { cc.courses = nil }

// Load replaces the catalog with the course records in fileName.
// lookup may be nil; when it is not, instructor ids that resolve are
// bound through the faculty schedules during the load.
func (cc *CourseCatalog) Load(fileName string, lookup records.FacultyLookup) error {
	courses, err := records.ReadCourses(fileName, lookup)
	if err != nil {
		return err
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].Compare(courses[j]) < 0 })
	cc.courses = courses
	return nil
}

// Save writes the catalog to fileName in record form.
func (cc *CourseCatalog) Save(fileName string) error {
	return records.WriteCourses(fileName, cc.courses)
}

// Add constructs and inserts a course. Construction failures
// propagate; an exact (name, section) duplicate reports false with no
// other effect.
func (cc *CourseCatalog) Add(name, title, section string, credits int, instructorID string, enrollmentCap int, days string, startTime, endTime int) (bool, error) {
	c, err := models.NewCourse(name, title, section, credits, instructorID, enrollmentCap, days, startTime, endTime)
	if err != nil {
		return false, err
	}
	if cc.Get(name, section) != nil {
		return false, nil
	}
	i := sort.Search(len(cc.courses), func(i int) bool { return cc.courses[i].Compare(c) >= 0 })
	cc.courses = append(cc.courses, nil)
	copy(cc.courses[i+1:], cc.courses[i:])
	cc.courses[i] = c
	return true, nil
}

// Remove deletes the course with the given name and section,
// reporting whether it was present.
func (cc *CourseCatalog) Remove(name, section string) bool {
	for i, c := range cc.courses {
		if c.Name == name && c.Section == section {
			cc.courses = append(cc.courses[:i], cc.courses[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the course with the given name and section, or nil.
func (cc *CourseCatalog) Get(name, section string) *models.Course {
	for _, c := range cc.courses {
		if c.Name == name && c.Section == section {
			return c
		}
	}
	return nil
}

// Courses returns a copy of the catalog in sorted order.
func (cc *CourseCatalog) Courses() []*models.Course {
	out := make([]*models.Course, len(cc.courses))
	copy(out, cc.courses)
	return out
}

// Rows returns the short display projection for every course.
func (cc *CourseCatalog) Rows() [][]string {
	rows := make([][]string, len(cc.courses))
	for i, c := range cc.courses {
		rows[i] = c.ShortDisplayRow()
	}
	return rows
}

// Len returns the number of catalog entries.
func (cc *CourseCatalog) Len() int { return len(cc.courses) }
