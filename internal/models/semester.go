package models

import (
	"strings"

	appErrors "github.com/noah-isme/ccrm/pkg/errors"
)

// Semester identifies the academic term a course runs in.
type Semester string

// Recognised semesters.
const (
	SemesterSpring Semester = "SPRING"
	SemesterSummer Semester = "SUMMER"
	SemesterFall   Semester = "FALL"
)

// ParseSemester matches a semester literal case-insensitively.
func ParseSemester(raw string) (Semester, error) {
	switch Semester(strings.ToUpper(strings.TrimSpace(raw))) {
	case SemesterSpring:
		return SemesterSpring, nil
	case SemesterSummer:
		return SemesterSummer, nil
	case SemesterFall:
		return SemesterFall, nil
	default:
		return "", appErrors.Clone(appErrors.ErrInvalidArgument, "unknown semester: "+raw)
	}
}
