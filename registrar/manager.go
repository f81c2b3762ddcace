// Package registrar is the management façade over the catalog and
// the directories. Instead of a global current user, operations take
// an explicit Session handed out by Login; the Manager still admits
// only one live session at a time, matching the single-operator
// model.
package registrar

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/matthewstanaland/PackScheduler/catalog"
	"github.com/matthewstanaland/PackScheduler/directory"
	"github.com/matthewstanaland/PackScheduler/models"
)

var (
	// ErrLoggedIn is returned by Login while another session is live.
	ErrLoggedIn = errors.New("a user is already logged in")
	// ErrUnknownUser is returned when the login id matches nobody.
	ErrUnknownUser = errors.New("user doesn't exist")
	// ErrInvalidCredentials is returned on a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrIllegalAction is returned when a session lacks the role an
	// operation requires.
	ErrIllegalAction = errors.New("illegal action")
)

// Role identifies what kind of user a session belongs to.
type Role int

const (
	RoleStudent Role = iota
	RoleFaculty
	RoleRegistrar
)

func (r Role) String() string {
	switch r {
	case RoleStudent:
		return "student"
	case RoleFaculty:
		return "faculty"
	case RoleRegistrar:
		return "registrar"
	}
	return "unknown"
}

// Session is the capability handed out by Login. Exactly one of
// Student and Faculty is set for those roles; both are nil for the
// registrar.
type Session struct {
	Token   string
	Role    Role
	UserID  string
	Student *models.Student
	Faculty *models.Faculty
}

// Account is the configured registrar identity.
type Account struct {
	FirstName string
	LastName  string
	ID        string
	Email     string
	Password  string // plaintext from configuration; hashed at startup
}

// Manager owns the catalog and both directories and gates every
// compound operation behind a session.
type Manager struct {
	catalog   *catalog.CourseCatalog
	students  *directory.StudentDirectory
	faculty   *directory.FacultyDirectory
	registrar models.User
	active    *Session
	logger    *zap.Logger
}

// New builds a Manager with empty data and the registrar account from
// configuration.
func New(acct Account, logger *zap.Logger) (*Manager, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	hash, err := directory.HashPassword(acct.Password)
	if err != nil {
		return nil, models.NewValidationError("registrar", "cannot create registrar")
	}
	reg, err := models.NewUser(acct.FirstName, acct.LastName, acct.ID, acct.Email, hash)
	if err != nil {
		return nil, models.NewValidationError("registrar", "cannot create registrar")
	}
	return &Manager{
		catalog:   catalog.New(),
		students:  directory.NewStudentDirectory(),
		faculty:   directory.NewFacultyDirectory(),
		registrar: reg,
		logger:    logger,
	}, nil
}

// Catalog returns the course catalog.
func (m *Manager) Catalog() *catalog.CourseCatalog { return m.catalog }

// Students returns the student directory.
func (m *Manager) Students() *directory.StudentDirectory { return m.students }

// Faculty returns the faculty directory.
func (m *Manager) Faculty() *directory.FacultyDirectory { return m.faculty }

// ClearData resets the catalog and both directories.
func (m *Manager) ClearData() {
	m.catalog.Reset()
	m.students.Reset()
	m.faculty.Reset()
	m.logger.Info("cleared catalog and directories")
}

// Login authenticates the id and returns a new session. Only one
// session may be live at a time. An id that matches nobody is
// ErrUnknownUser; a wrong password is ErrInvalidCredentials.
func (m *Manager) Login(id, password string) (*Session, error) {
	if m.active != nil {
		return nil, ErrLoggedIn
	}

	if s := m.students.ByID(id); s != nil {
		if !directory.CheckPassword(s.Password, password) {
			return nil, ErrInvalidCredentials
		}
		return m.startSession(&Session{Role: RoleStudent, UserID: id, Student: s}), nil
	}
	if f := m.faculty.ByID(id); f != nil {
		if !directory.CheckPassword(f.Password, password) {
			return nil, ErrInvalidCredentials
		}
		return m.startSession(&Session{Role: RoleFaculty, UserID: id, Faculty: f}), nil
	}
	if id != m.registrar.ID {
		return nil, ErrUnknownUser
	}
	if !directory.CheckPassword(m.registrar.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return m.startSession(&Session{Role: RoleRegistrar, UserID: id}), nil
}

func (m *Manager) startSession(s *Session) *Session {
	s.Token = uuid.NewString()
	m.active = s
	m.logger.Info("login", zap.String("id", s.UserID), zap.String("role", s.Role.String()))
	return s
}

// Logout ends the given session if it is the live one.
func (m *Manager) Logout(s *Session) {
	if s != nil && m.active == s {
		m.logger.Info("logout", zap.String("id", s.UserID))
		m.active = nil
	}
}

// CurrentSession returns the live session, or nil.
func (m *Manager) CurrentSession() *Session { return m.active }

func (m *Manager) studentFor(s *Session) (*models.Student, error) {
	if s == nil || s != m.active || s.Student == nil {
		return nil, ErrIllegalAction
	}
	return s.Student, nil
}

func (m *Manager) requireRegistrar(s *Session) error {
	if s == nil || s != m.active || s.Role != RoleRegistrar {
		return ErrIllegalAction
	}
	return nil
}

// EnrollStudentInCourse adds the course to the session student's
// schedule and the student to the course roll. Both sides are checked
// before either is mutated, so the pair commits together; a full roll
// means no enrollment even when the waitlist has room, because
// CanEnroll is roll-capacity-only.
func (m *Manager) EnrollStudentInCourse(sess *Session, c *models.Course) error {
	s, err := m.studentFor(sess)
	if err != nil {
		return err
	}
	if c == nil {
		return models.ErrNilCourse
	}
	if !s.CanAdd(c) || !c.Roll().CanEnroll(s) {
		return models.NewValidationError("enrollment", "cannot enroll in "+c.Name)
	}
	if err := s.Schedule().AddCourse(c); err != nil {
		return err
	}
	if err := c.Roll().Enroll(s); err != nil {
		// Both sides were pre-checked against the same state, so this
		// is unreachable in a single-operator run; undo the schedule
		// add rather than leave the pair split.
		s.Schedule().RemoveCourse(c)
		return err
	}
	m.logger.Info("enrolled",
		zap.String("student", s.ID),
		zap.String("course", c.Name),
		zap.String("section", c.Section))
	return nil
}

// DropStudentFromCourse drops the session student from the course
// roll (or waitlist) and removes the course from their schedule. It
// reports false when the course was not on the schedule; that is not
// an error.
func (m *Manager) DropStudentFromCourse(sess *Session, c *models.Course) (bool, error) {
	s, err := m.studentFor(sess)
	if err != nil {
		return false, err
	}
	if c == nil {
		return false, models.ErrNilCourse
	}
	if err := c.Roll().Drop(s); err != nil {
		return false, err
	}
	removed := s.Schedule().RemoveCourse(c)
	if removed {
		m.logger.Info("dropped",
			zap.String("student", s.ID),
			zap.String("course", c.Name),
			zap.String("section", c.Section))
	}
	return removed, nil
}

// ResetSchedule drops the session student from every course on their
// schedule and empties it.
func (m *Manager) ResetSchedule(sess *Session) error {
	s, err := m.studentFor(sess)
	if err != nil {
		return err
	}
	for _, c := range s.Schedule().Courses() {
		if fromCatalog := m.catalog.Get(c.Name, c.Section); fromCatalog != nil {
			if err := fromCatalog.Roll().Drop(s); err != nil {
				return err
			}
		}
	}
	s.Schedule().Reset()
	m.logger.Info("schedule reset", zap.String("student", s.ID))
	return nil
}

// AddFacultyToCourse assigns the course to the faculty member's
// teaching schedule. Registrar only.
func (m *Manager) AddFacultyToCourse(sess *Session, c *models.Course, f *models.Faculty) error {
	if err := m.requireRegistrar(sess); err != nil {
		return err
	}
	if f == nil {
		return models.NewValidationError("assignment", "faculty is required")
	}
	if err := f.Schedule().AddCourse(c); err != nil {
		return err
	}
	m.logger.Info("faculty assigned",
		zap.String("faculty", f.ID),
		zap.String("course", c.Name),
		zap.String("section", c.Section))
	return nil
}

// RemoveFacultyFromCourse unassigns the course from the faculty
// member's teaching schedule. Registrar only.
func (m *Manager) RemoveFacultyFromCourse(sess *Session, c *models.Course, f *models.Faculty) (bool, error) {
	if err := m.requireRegistrar(sess); err != nil {
		return false, err
	}
	if f == nil {
		return false, models.NewValidationError("assignment", "faculty is required")
	}
	return f.Schedule().RemoveCourse(c), nil
}

// ResetFacultySchedule unassigns everything on the faculty member's
// teaching schedule. Registrar only.
func (m *Manager) ResetFacultySchedule(sess *Session, f *models.Faculty) error {
	if err := m.requireRegistrar(sess); err != nil {
		return err
	}
	if f == nil {
		return models.NewValidationError("assignment", "faculty is required")
	}
	f.Schedule().Reset()
	return nil
}
