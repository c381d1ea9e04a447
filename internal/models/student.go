package models

import (
	"sort"
	"time"

	appErrors "github.com/noah-isme/ccrm/pkg/errors"
)

// Student owns a learner's identity together with the enrollment set
// and per-course grades. ID and RegNo are immutable after construction.
type Student struct {
	ID        string    `json:"id"`
	RegNo     string    `json:"reg_no"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	enrolled map[string]struct{}
	scores   map[string]float64
	letters  map[string]Grade
}

// NewStudent constructs an active student with empty enrollment state.
func NewStudent(id, regNo, fullName, email string) *Student {
	now := time.Now()
	return &Student{
		ID:        id,
		RegNo:     regNo,
		FullName:  fullName,
		Email:     email,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
		enrolled:  make(map[string]struct{}),
		scores:    make(map[string]float64),
		letters:   make(map[string]Grade),
	}
}

// Enroll adds a course code to the enrollment set. It reports whether
// the set changed: false means the student was already enrolled. The
// engine layers a user-visible duplicate error on top of this
// idempotent set-add.
func (s *Student) Enroll(courseCode string) bool {
	if _, ok := s.enrolled[courseCode]; ok {
		return false
	}
	s.enrolled[courseCode] = struct{}{}
	s.UpdatedAt = time.Now()
	return true
}

// Unenroll removes a course from the enrollment set and deletes any
// recorded score and letter grade for it in the same step. It reports
// whether the student was enrolled.
func (s *Student) Unenroll(courseCode string) bool {
	if _, ok := s.enrolled[courseCode]; !ok {
		return false
	}
	delete(s.enrolled, courseCode)
	delete(s.scores, courseCode)
	delete(s.letters, courseCode)
	s.UpdatedAt = time.Now()
	return true
}

// IsEnrolled reports membership in the enrollment set.
func (s *Student) IsEnrolled(courseCode string) bool {
	_, ok := s.enrolled[courseCode]
	return ok
}

// EnrolledCourses returns the enrolled course codes sorted ascending.
func (s *Student) EnrolledCourses() []string {
	codes := make([]string, 0, len(s.enrolled))
	for code := range s.enrolled {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// EnrolledCount returns the size of the enrollment set.
func (s *Student) EnrolledCount() int {
	return len(s.enrolled)
}

// RecordScore stores a numeric score for an enrolled course and derives
// the letter grade from it, overwriting any prior entry. Recording for
// a course outside the enrollment set fails with NotEnrolled.
func (s *Student) RecordScore(courseCode string, score float64) error {
	if _, ok := s.enrolled[courseCode]; !ok {
		return appErrors.Clone(appErrors.ErrNotEnrolled, "student not enrolled in course: "+courseCode)
	}
	s.scores[courseCode] = score
	s.letters[courseCode] = GradeFromScore(score)
	s.UpdatedAt = time.Now()
	return nil
}

// Score returns the recorded numeric score for the course, if any.
func (s *Student) Score(courseCode string) (float64, bool) {
	score, ok := s.scores[courseCode]
	return score, ok
}

// LetterGrade returns the derived letter grade for the course, if any.
func (s *Student) LetterGrade(courseCode string) (Grade, bool) {
	grade, ok := s.letters[courseCode]
	return grade, ok
}

// GradedCount returns the number of courses with a recorded score.
func (s *Student) GradedCount() int {
	return len(s.scores)
}

// GPA is the arithmetic mean of the quality points of all recorded
// letter grades, or 0.0 when nothing is graded. Every graded course
// counts equally; credits do not weight the mean. That simplification
// is intentional and mirrors the institution's published policy.
func (s *Student) GPA() float64 {
	if len(s.letters) == 0 {
		return 0.0
	}
	total := 0
	for _, grade := range s.letters {
		total += grade.Points()
	}
	return float64(total) / float64(len(s.letters))
}
