package service

import (
	"github.com/noah-isme/ccrm/internal/models"
	appErrors "github.com/noah-isme/ccrm/pkg/errors"
)

type studentReader interface {
	FindByID(id string) (*models.Student, bool)
}

type courseReader interface {
	FindByCode(code string) (*models.Course, bool)
}

// CreditPolicy supplies the per-semester credit ceiling. The engine
// reads it on every enrollment check, so reconfiguring the ceiling
// between calls takes effect immediately.
type CreditPolicy interface {
	MaxCredits() int
}

// EnrollmentService coordinates student records and the course catalog.
// It is the only place the cross-entity invariants live: referential
// integrity of course codes and the credit-limit ceiling. The service
// owns no state of its own; every check completes before any mutation,
// so a failed call leaves the student record untouched.
type EnrollmentService struct {
	students studentReader
	courses  courseReader
	policy   CreditPolicy
}

// NewEnrollmentService constructs the enrollment engine.
func NewEnrollmentService(students studentReader, courses courseReader, policy CreditPolicy) *EnrollmentService {
	return &EnrollmentService{students: students, courses: courses, policy: policy}
}

// Enroll registers a student in a course after resolving both sides,
// rejecting duplicates, and checking the credit ceiling.
func (s *EnrollmentService) Enroll(studentID, courseCode string) error {
	student, ok := s.students.FindByID(studentID)
	if !ok {
		return appErrors.Clone(appErrors.ErrStudentNotFound, "student not found: "+studentID)
	}
	course, ok := s.courses.FindByCode(courseCode)
	if !ok {
		return appErrors.Clone(appErrors.ErrCourseNotFound, "course not found: "+courseCode)
	}
	// Surfaced as an error rather than the record's silent set-add.
	if student.IsEnrolled(courseCode) {
		return appErrors.Clone(appErrors.ErrDuplicateEnrollment, "student "+studentID+" already enrolled in "+courseCode)
	}
	current := s.currentCredits(student)
	max := s.policy.MaxCredits()
	if current+course.Credits > max {
		return appErrors.CreditLimit(current, course.Credits, max)
	}
	student.Enroll(courseCode)
	return nil
}

// Unenroll removes the course from the student's enrollment set,
// dropping any recorded score and letter grade with it.
func (s *EnrollmentService) Unenroll(studentID, courseCode string) error {
	student, ok := s.students.FindByID(studentID)
	if !ok {
		return appErrors.Clone(appErrors.ErrStudentNotFound, "student not found: "+studentID)
	}
	if !student.Unenroll(courseCode) {
		return appErrors.Clone(appErrors.ErrNotEnrolled, "student "+studentID+" not enrolled in "+courseCode)
	}
	return nil
}

// RecordGrade stores a score for an enrolled course, deriving the
// letter grade. NotEnrolled from the student record passes through
// unchanged.
func (s *EnrollmentService) RecordGrade(studentID, courseCode string, score float64) error {
	student, ok := s.students.FindByID(studentID)
	if !ok {
		return appErrors.Clone(appErrors.ErrStudentNotFound, "student not found: "+studentID)
	}
	return student.RecordScore(courseCode, score)
}

// CurrentCredits sums the credits of the student's current enrollment
// set. Codes missing from the catalog are skipped.
func (s *EnrollmentService) CurrentCredits(studentID string) (int, error) {
	student, ok := s.students.FindByID(studentID)
	if !ok {
		return 0, appErrors.Clone(appErrors.ErrStudentNotFound, "student not found: "+studentID)
	}
	return s.currentCredits(student), nil
}

func (s *EnrollmentService) currentCredits(student *models.Student) int {
	total := 0
	for _, code := range student.EnrolledCourses() {
		if course, ok := s.courses.FindByCode(code); ok {
			total += course.Credits
		}
	}
	return total
}
