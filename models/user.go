package models

import "strings"

// User is the identity shared by students, faculty and the registrar:
// name, id, email and the stored password hash. It is embedded by the
// role types rather than inherited from.
type User struct {
	FirstName string
	LastName  string
	ID        string
	Email     string
	Password  string // hashed, never plaintext
}

// NewUser validates every identity field. The password here is the
// already-hashed form; hashing happens in the directory layer before
// construction.
func NewUser(firstName, lastName, id, email, hashedPassword string) (User, error) {
	if firstName == "" {
		return User{}, NewValidationError("first name", "first name is required")
	}
	if lastName == "" {
		return User{}, NewValidationError("last name", "last name is required")
	}
	if id == "" {
		return User{}, NewValidationError("id", "id is required")
	}
	if err := validateEmail(email); err != nil {
		return User{}, err
	}
	if hashedPassword == "" {
		return User{}, NewValidationError("password", "password is required")
	}
	return User{
		FirstName: firstName,
		LastName:  lastName,
		ID:        id,
		Email:     email,
		Password:  hashedPassword,
	}, nil
}

// validateEmail requires an @ and a dot, with the last dot after the
// last @.
func validateEmail(email string) error {
	if email == "" {
		return NewValidationError("email", "email is required")
	}
	at := strings.LastIndex(email, "@")
	dot := strings.LastIndex(email, ".")
	if at < 0 || dot < 0 || dot < at {
		return NewValidationError("email", "email must contain an @ followed by a dot")
	}
	return nil
}

// DirectoryRow is the projection used by directory listings.
func (u User) DirectoryRow() []string {
	return []string{u.FirstName, u.LastName, u.ID}
}
