package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"go.uber.org/zap"

	"github.com/matthewstanaland/PackScheduler/config"
	"github.com/matthewstanaland/PackScheduler/export"
	"github.com/matthewstanaland/PackScheduler/models"
	"github.com/matthewstanaland/PackScheduler/registrar"
)

var stdin = bufio.NewScanner(os.Stdin)

var (
	catalogHeader   = []string{"Name", "Section", "Title", "Meeting", "Open Seats"}
	directoryHeader = []string{"First Name", "Last Name", "ID"}
)

type app struct {
	cfg      config.Config
	mgr      *registrar.Manager
	exporter *export.Exporter
}

func main() {
	cfg := config.Load()

	logger, err := newLogger()
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer logger.Sync()

	mgr, err := registrar.New(registrar.Account{
		FirstName: cfg.RegistrarFirstName,
		LastName:  cfg.RegistrarLastName,
		ID:        cfg.RegistrarID,
		Email:     cfg.RegistrarEmail,
		Password:  cfg.RegistrarPassword,
	}, logger)
	if err != nil {
		log.Fatalf("Error creating registration manager: %v", err)
	}

	a := &app{cfg: cfg, mgr: mgr, exporter: export.New(logger)}
	a.loadRecords()

	for {
		color.Cyan("\n=== PackScheduler Course Registration ===")
		fmt.Println("1. Login")
		fmt.Println("2. Exit")
		switch prompt("\nEnter your choice (1-2): ") {
		case "1":
			a.login()
		case "2":
			color.Green("Goodbye!")
			return
		default:
			color.Red("Invalid choice. Please try again.")
		}
	}
}

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"packscheduler.log"}
	return cfg.Build()
}

// loadRecords pulls in any record files that already exist. Missing
// files just mean a fresh start.
func (a *app) loadRecords() {
	if _, err := os.Stat(a.cfg.FacultyRecords); err == nil {
		if err := a.mgr.Faculty().Load(a.cfg.FacultyRecords); err != nil {
			color.Yellow("Warning: %v", err)
		}
	}
	if _, err := os.Stat(a.cfg.StudentRecords); err == nil {
		if err := a.mgr.Students().Load(a.cfg.StudentRecords); err != nil {
			color.Yellow("Warning: %v", err)
		}
	}
	if _, err := os.Stat(a.cfg.CourseRecords); err == nil {
		if err := a.mgr.Catalog().Load(a.cfg.CourseRecords, a.mgr.Faculty()); err != nil {
			color.Yellow("Warning: %v", err)
		}
	}
}

func (a *app) saveRecords() {
	if err := a.mgr.Catalog().Save(a.cfg.CourseRecords); err != nil {
		color.Red("Error saving courses: %v", err)
		return
	}
	if err := a.mgr.Students().Save(a.cfg.StudentRecords); err != nil {
		color.Red("Error saving students: %v", err)
		return
	}
	if err := a.mgr.Faculty().Save(a.cfg.FacultyRecords); err != nil {
		color.Red("Error saving faculty: %v", err)
		return
	}
	color.Green("Records saved.")
}

func (a *app) login() {
	id := prompt("ID: ")
	password := prompt("Password: ")
	sess, err := a.mgr.Login(id, password)
	if err != nil {
		color.Red("Login failed: %v", err)
		return
	}
	switch sess.Role {
	case registrar.RoleRegistrar:
		a.registrarMenu(sess)
	case registrar.RoleStudent:
		a.studentMenu(sess)
	case registrar.RoleFaculty:
		a.facultyMenu(sess)
	}
	a.mgr.Logout(sess)
}

func (a *app) registrarMenu(sess *registrar.Session) {
	for {
		color.Cyan("\n=== Registrar Menu ===")
		fmt.Println("1. View Course Catalog")
		fmt.Println("2. Add Course")
		fmt.Println("3. Remove Course")
		fmt.Println("4. View Student Directory")
		fmt.Println("5. Add Student")
		fmt.Println("6. Remove Student")
		fmt.Println("7. View Faculty Directory")
		fmt.Println("8. Add Faculty")
		fmt.Println("9. Remove Faculty")
		fmt.Println("10. Assign Faculty to Course")
		fmt.Println("11. Unassign Faculty from Course")
		fmt.Println("12. Reset Faculty Schedule")
		fmt.Println("13. Export Catalog (xlsx)")
		fmt.Println("14. Save Records")
		fmt.Println("15. Clear All Data")
		fmt.Println("16. Logout")

		switch prompt("\nEnter your choice (1-16): ") {
		case "1":
			a.showCatalog()
		case "2":
			a.addCourse()
		case "3":
			if a.mgr.Catalog().Remove(prompt("Course name: "), prompt("Section: ")) {
				color.Green("Course removed.")
			} else {
				color.Red("Course not found.")
			}
		case "4":
			color.Yellow("\nStudent Directory")
			renderTable(directoryHeader, a.mgr.Students().Rows())
		case "5":
			a.addStudent()
		case "6":
			if a.mgr.Students().Remove(prompt("Student ID: ")) {
				color.Green("Student removed.")
			} else {
				color.Red("Student not found.")
			}
		case "7":
			color.Yellow("\nFaculty Directory")
			renderTable(directoryHeader, a.mgr.Faculty().Rows())
		case "8":
			a.addFaculty()
		case "9":
			if a.mgr.Faculty().Remove(prompt("Faculty ID: ")) {
				color.Green("Faculty removed.")
			} else {
				color.Red("Faculty not found.")
			}
		case "10":
			a.assignFaculty(sess)
		case "11":
			a.unassignFaculty(sess)
		case "12":
			f := a.mgr.Faculty().ByID(prompt("Faculty ID: "))
			if f == nil {
				color.Red("Faculty not found.")
				break
			}
			if err := a.mgr.ResetFacultySchedule(sess, f); err != nil {
				color.Red("Error: %v", err)
			} else {
				color.Green("Schedule reset.")
			}
		case "13":
			buf, name, err := a.exporter.CatalogXLSX(a.mgr.Catalog())
			if err != nil {
				color.Red("Error exporting catalog: %v", err)
				break
			}
			writeExport(name, buf.Bytes())
		case "14":
			a.saveRecords()
		case "15":
			a.mgr.ClearData()
			color.Green("All data cleared.")
		case "16":
			return
		default:
			color.Red("Invalid choice. Please try again.")
		}
	}
}

func (a *app) studentMenu(sess *registrar.Session) {
	for {
		color.Cyan("\n=== Student Menu ===")
		fmt.Println("1. View Course Catalog")
		fmt.Println("2. View My Schedule")
		fmt.Println("3. Enroll in Course")
		fmt.Println("4. Drop Course")
		fmt.Println("5. Rename Schedule")
		fmt.Println("6. Reset Schedule")
		fmt.Println("7. Export Schedule (ics)")
		fmt.Println("8. Export Schedule (xlsx)")
		fmt.Println("9. Logout")

		s := sess.Student
		switch prompt("\nEnter your choice (1-9): ") {
		case "1":
			a.showCatalog()
		case "2":
			color.Yellow("\n%s (%d credits)", s.Schedule().Title(), s.Schedule().Credits())
			renderTable(catalogHeader, s.Schedule().Rows())
		case "3":
			c := a.findCourse()
			if c == nil {
				break
			}
			if err := a.mgr.EnrollStudentInCourse(sess, c); err != nil {
				color.Red("Error: %v", err)
			} else {
				color.Green("Enrolled in %s-%s.", c.Name, c.Section)
			}
		case "4":
			c := a.findCourse()
			if c == nil {
				break
			}
			removed, err := a.mgr.DropStudentFromCourse(sess, c)
			switch {
			case err != nil:
				color.Red("Error: %v", err)
			case removed:
				color.Green("Dropped %s-%s.", c.Name, c.Section)
			default:
				color.Yellow("%s is not on your schedule.", c.Name)
			}
		case "5":
			s.Schedule().SetTitle(prompt("New schedule title: "))
			color.Green("Schedule renamed.")
		case "6":
			if err := a.mgr.ResetSchedule(sess); err != nil {
				color.Red("Error: %v", err)
			} else {
				color.Green("Schedule reset.")
			}
		case "7":
			a.exportScheduleICS(s)
		case "8":
			buf, name, err := a.exporter.ScheduleXLSX(s)
			if err != nil {
				color.Red("Error exporting schedule: %v", err)
				break
			}
			writeExport(name, buf.Bytes())
		case "9":
			return
		default:
			color.Red("Invalid choice. Please try again.")
		}
	}
}

func (a *app) facultyMenu(sess *registrar.Session) {
	for {
		color.Cyan("\n=== Faculty Menu ===")
		fmt.Println("1. View My Teaching Schedule")
		fmt.Println("2. View Course Catalog")
		fmt.Println("3. Logout")

		f := sess.Faculty
		switch prompt("\nEnter your choice (1-3): ") {
		case "1":
			color.Yellow("\nTeaching Schedule (%d courses)", f.Schedule().NumScheduledCourses())
			renderTable(catalogHeader, f.Schedule().Rows())
			if f.IsOverloaded() {
				color.Yellow("Note: you are scheduled beyond your course limit of %d.", f.MaxCourses)
			}
		case "2":
			a.showCatalog()
		case "3":
			return
		default:
			color.Red("Invalid choice. Please try again.")
		}
	}
}

func (a *app) showCatalog() {
	color.Yellow("\nCourse Catalog")
	renderTable(catalogHeader, a.mgr.Catalog().Rows())
}

func (a *app) addCourse() {
	name := prompt("Course name: ")
	title := prompt("Title: ")
	section := prompt("Section: ")
	credits := promptInt("Credits: ")
	instructorID := prompt("Instructor ID (blank for none): ")
	cap := promptInt("Enrollment cap: ")
	days := prompt("Meeting days (MTWHF, or A for arranged): ")
	startTime, endTime := 0, 0
	if days != "A" {
		startTime = promptInt("Start time (HHMM): ")
		endTime = promptInt("End time (HHMM): ")
	}
	added, err := a.mgr.Catalog().Add(name, title, section, credits, instructorID, cap, days, startTime, endTime)
	switch {
	case err != nil:
		color.Red("Error: %v", err)
	case added:
		color.Green("Course added.")
	default:
		color.Red("%s-%s is already in the catalog.", name, section)
	}
}

func (a *app) addStudent() {
	added, err := a.mgr.Students().Add(
		prompt("First name: "),
		prompt("Last name: "),
		prompt("ID: "),
		prompt("Email: "),
		prompt("Password: "),
		prompt("Repeat password: "),
		promptInt("Max credits: "),
	)
	switch {
	case err != nil:
		color.Red("Error: %v", err)
	case added:
		color.Green("Student added.")
	default:
		color.Red("A student with that ID already exists.")
	}
}

func (a *app) addFaculty() {
	added, err := a.mgr.Faculty().Add(
		prompt("First name: "),
		prompt("Last name: "),
		prompt("ID: "),
		prompt("Email: "),
		prompt("Password: "),
		prompt("Repeat password: "),
		promptInt("Max courses: "),
	)
	switch {
	case err != nil:
		color.Red("Error: %v", err)
	case added:
		color.Green("Faculty added.")
	default:
		color.Red("A faculty member with that ID already exists.")
	}
}

func (a *app) assignFaculty(sess *registrar.Session) {
	f := a.mgr.Faculty().ByID(prompt("Faculty ID: "))
	if f == nil {
		color.Red("Faculty not found.")
		return
	}
	c := a.findCourse()
	if c == nil {
		return
	}
	if err := a.mgr.AddFacultyToCourse(sess, c, f); err != nil {
		color.Red("Error: %v", err)
		return
	}
	color.Green("%s assigned to %s-%s.", f.ID, c.Name, c.Section)
}

func (a *app) unassignFaculty(sess *registrar.Session) {
	f := a.mgr.Faculty().ByID(prompt("Faculty ID: "))
	if f == nil {
		color.Red("Faculty not found.")
		return
	}
	c := a.findCourse()
	if c == nil {
		return
	}
	removed, err := a.mgr.RemoveFacultyFromCourse(sess, c, f)
	switch {
	case err != nil:
		color.Red("Error: %v", err)
	case removed:
		color.Green("%s unassigned from %s-%s.", f.ID, c.Name, c.Section)
	default:
		color.Yellow("%s is not teaching %s-%s.", f.ID, c.Name, c.Section)
	}
}

func (a *app) exportScheduleICS(s *models.Student) {
	raw := prompt("Term start Monday (YYYY-MM-DD): ")
	termStart, err := time.Parse("2006-01-02", raw)
	if err != nil {
		color.Red("Invalid date. Use YYYY-MM-DD.")
		return
	}
	weeks := promptInt("Weeks in term: ")
	buf, name, err := a.exporter.ScheduleICS(s, termStart, weeks)
	if err != nil {
		color.Red("Error exporting schedule: %v", err)
		return
	}
	writeExport(name, buf.Bytes())
}

func writeExport(name string, data []byte) {
	if err := os.WriteFile(name, data, 0o644); err != nil {
		color.Red("Error writing %s: %v", name, err)
		return
	}
	color.Green("Wrote %s.", name)
}

func (a *app) findCourse() *models.Course {
	c := a.mgr.Catalog().Get(prompt("Course name: "), prompt("Section: "))
	if c == nil {
		color.Red("Course not found.")
	}
	return c
}

func prompt(label string) string {
	fmt.Print(label)
	if stdin.Scan() {
		return strings.TrimSpace(stdin.Text())
	}
	return ""
}

func promptInt(label string) int {
	for {
		raw := prompt(label)
		n, err := strconv.Atoi(raw)
		if err == nil {
			return n
		}
		color.Red("Please enter a number.")
	}
}

func renderTable(headers []string, rows [][]string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(headers)
	for _, row := range rows {
		table.Append(row)
	}
	table.Render()
}
