package models

import "unicode"

// Course-name grammar: 1-4 letters, then exactly 3 digits, then an
// optional 1 letter suffix.
type nameState int

const (
	nameInitial nameState = iota
	nameLetter
	nameDigit
	nameSuffix
)

const (
	maxPrefixLetters   = 4
	courseNumberLength = 3
)

// IsValidCourseName runs the course-name state machine over name one
// character at a time. It returns false when the scan ends in a
// non-accepting state (for example, letters with no digits) and an
// *InvalidTransitionError when a character is illegal where it
// appears, or is not a letter or digit at all.
func IsValidCourseName(name string) (bool, error) {
	state := nameInitial
	letterCount := 0
	digitCount := 0
	accepting := false

	for _, c := range name {
		switch {
		case unicode.IsLetter(c):
			switch state {
			case nameInitial:
				letterCount++
				state = nameLetter
			case nameLetter:
				letterCount++
				if letterCount > maxPrefixLetters {
					return false, &InvalidTransitionError{Reason: "course name cannot start with more than 4 letters"}
				}
			case nameDigit:
				if digitCount != courseNumberLength {
					return false, &InvalidTransitionError{Reason: "course name must have 3 digits"}
				}
				state = nameSuffix
			case nameSuffix:
				return false, &InvalidTransitionError{Reason: "course name can only have a 1 letter suffix"}
			}
		case unicode.IsDigit(c):
			switch state {
			case nameInitial:
				return false, &InvalidTransitionError{Reason: "course name must start with a letter"}
			case nameLetter:
				digitCount++
				state = nameDigit
			case nameDigit:
				digitCount++
				if digitCount > courseNumberLength {
					return false, &InvalidTransitionError{Reason: "course name can only have 3 digits"}
				}
				if digitCount == courseNumberLength {
					accepting = true
				}
			case nameSuffix:
				return false, &InvalidTransitionError{Reason: "course name cannot contain digits after the suffix"}
			}
		default:
			return false, &InvalidTransitionError{Reason: "course name can only contain letters and digits"}
		}
	}
	return accepting, nil
}
