package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the registrar application reads from the
// environment: the registrar account and the record file locations.
type Config struct {
	RegistrarFirstName string
	RegistrarLastName  string
	RegistrarID        string
	RegistrarEmail     string
	RegistrarPassword  string

	CourseRecords  string
	StudentRecords string
	FacultyRecords string
}

// Load reads an optional .env file and resolves the configuration
// from the environment, falling back to defaults suitable for local
// use.
func Load() Config {
	// A missing .env file is fine; plain environment variables win.
	_ = godotenv.Load()

	return Config{
		RegistrarFirstName: getenv("REGISTRAR_FIRST_NAME", "System"),
		RegistrarLastName:  getenv("REGISTRAR_LAST_NAME", "Registrar"),
		RegistrarID:        getenv("REGISTRAR_ID", "registrar"),
		RegistrarEmail:     getenv("REGISTRAR_EMAIL", "registrar@university.edu"),
		RegistrarPassword:  getenv("REGISTRAR_PASSWORD", "Regi5tr@r"),

		CourseRecords:  getenv("COURSE_RECORDS", "course_records.txt"),
		StudentRecords: getenv("STUDENT_RECORDS", "student_records.txt"),
		FacultyRecords: getenv("FACULTY_RECORDS", "faculty_records.txt"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
