package models

import (
	"errors"
	"testing"
)

func TestNewStudentValidation(t *testing.T) {
	tests := []struct {
		name       string
		first      string
		last       string
		id         string
		email      string
		password   string
		maxCredits int
		field      string
	}{
		{"empty first", "", "King", "zking", "zking@ncsu.edu", "hash", 15, "first name"},
		{"empty last", "Zahir", "", "zking", "zking@ncsu.edu", "hash", 15, "last name"},
		{"empty id", "Zahir", "King", "", "zking@ncsu.edu", "hash", 15, "id"},
		{"empty email", "Zahir", "King", "zking", "", "hash", 15, "email"},
		{"email missing at", "Zahir", "King", "zking", "zking.ncsu.edu", "hash", 15, "email"},
		{"email missing dot", "Zahir", "King", "zking", "zking@ncsuedu", "hash", 15, "email"},
		{"email dot before at", "Zahir", "King", "zking", "zking.edu@ncsu", "hash", 15, "email"},
		{"empty password", "Zahir", "King", "zking", "zking@ncsu.edu", "", 15, "password"},
		{"credits low", "Zahir", "King", "zking", "zking@ncsu.edu", "hash", 2, "max credits"},
		{"credits high", "Zahir", "King", "zking", "zking@ncsu.edu", "hash", 19, "max credits"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStudent(tt.first, tt.last, tt.id, tt.email, tt.password, tt.maxCredits)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error = %v, want *ValidationError", err)
			}
			if ve.Field != tt.field {
				t.Errorf("field = %q, want %q", ve.Field, tt.field)
			}
		})
	}
}

func TestNewStudentAcceptsBoundaryCredits(t *testing.T) {
	for _, credits := range []int{MinStudentCredits, MaxStudentCredits} {
		if _, err := NewStudent("Zahir", "King", "zking", "zking@ncsu.edu", "hash", credits); err != nil {
			t.Errorf("NewStudent with %d credits: %v", credits, err)
		}
	}
}

func TestStudentCanAddHonorsCreditLimit(t *testing.T) {
	s, err := NewStudent("Zahir", "King", "zking", "zking@ncsu.edu", "hash", 6)
	if err != nil {
		t.Fatal(err)
	}
	a, err := NewCourse("CSC216", "Software Development Fundamentals", "001", 3, "", 10, "MW", 1330, 1445)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewCourse("MA241", "Calculus II", "001", 4, "", 10, "TH", 1000, 1100)
	if err != nil {
		t.Fatal(err)
	}
	c, err := NewCourse("E115", "Introduction to Computing Environments", "001", 1, "", 10, "F", 900, 950)
	if err != nil {
		t.Fatal(err)
	}

	if !s.CanAdd(a) {
		t.Error("first course should fit")
	}
	if err := s.Schedule().AddCourse(a); err != nil {
		t.Fatal(err)
	}
	if s.CanAdd(b) {
		t.Error("a 4-credit course should not fit a 6-credit limit holding 3")
	}
	if !s.CanAdd(c) {
		t.Error("a 1-credit course should still fit")
	}
	if s.CanAdd(a) {
		t.Error("a scheduled course should not be addable again")
	}
}

func TestStudentLess(t *testing.T) {
	a := mustStudent(t, "aaa")
	b := mustStudent(t, "bbb")
	if !a.Less(b) || b.Less(a) {
		t.Error("equal names should fall back to id order")
	}

	c, err := NewStudent("Ann", "Adams", "aadams", "aadams@ncsu.edu", "hash", 15)
	if err != nil {
		t.Fatal(err)
	}
	if !c.Less(a) {
		t.Error("Adams should sort before King")
	}
}

func TestStudentString(t *testing.T) {
	s, err := NewStudent("Zahir", "King", "zking", "orageon@email.com", "hashedpw", 15)
	if err != nil {
		t.Fatal(err)
	}
	want := "Zahir,King,zking,orageon@email.com,hashedpw,15"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestStudentSetMaxCredits(t *testing.T) {
	s := mustStudent(t, "zking")
	if err := s.SetMaxCredits(12); err != nil {
		t.Fatal(err)
	}
	if s.MaxCredits != 12 {
		t.Errorf("MaxCredits = %d, want 12", s.MaxCredits)
	}
	if err := s.SetMaxCredits(0); err == nil {
		t.Error("out-of-range credits should be rejected")
	}
}
