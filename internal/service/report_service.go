package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/noah-isme/ccrm/internal/models"
)

// UnknownCourseDetails is the sentinel rendered when a roster's course
// code has no catalog entry.
const UnknownCourseDetails = "Unknown Course"

type studentLister interface {
	List() []*models.Student
}

// ReportService computes read-only projections over the student store
// and the course catalog. It holds no state; every view is rebuilt
// from scratch per call.
type ReportService struct {
	students studentLister
	courses  courseReader
}

// NewReportService constructs the report service.
func NewReportService(students studentLister, courses courseReader) *ReportService {
	return &ReportService{students: students, courses: courses}
}

// StudentsByName returns students sorted by name, case-insensitive
// ascending.
func (s *ReportService) StudentsByName() []*models.Student {
	out := s.students.List()
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].FullName) < strings.ToLower(out[j].FullName)
	})
	return out
}

// StudentsByGPA returns students sorted by GPA descending. Ties keep
// store iteration order.
func (s *ReportService) StudentsByGPA() []*models.Student {
	out := s.students.List()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].GPA() > out[j].GPA()
	})
	return out
}

// TopStudentsByGPA returns at most n students from the GPA ranking.
// Non-positive n yields an empty result.
func (s *ReportService) TopStudentsByGPA(n int) []*models.Student {
	if n <= 0 {
		return nil
	}
	ranked := s.StudentsByGPA()
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// EnrollmentsByCourse maps each course code to the ids of students
// enrolled in it, built by scanning every student's enrollment set.
func (s *ReportService) EnrollmentsByCourse() map[string][]string {
	enrollments := make(map[string][]string)
	for _, student := range s.students.List() {
		for _, code := range student.EnrolledCourses() {
			enrollments[code] = append(enrollments[code], student.ID)
		}
	}
	return enrollments
}

// Rosters returns per-course rosters with catalog details merged in,
// ordered by course code. Codes absent from the catalog render the
// "Unknown Course" sentinel instead of failing.
func (s *ReportService) Rosters() []models.CourseRoster {
	enrollments := s.EnrollmentsByCourse()
	codes := make([]string, 0, len(enrollments))
	for code := range enrollments {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	rosters := make([]models.CourseRoster, 0, len(codes))
	for _, code := range codes {
		rosters = append(rosters, models.CourseRoster{
			CourseCode:    code,
			CourseDetails: s.courseDetails(code),
			StudentIDs:    enrollments[code],
		})
	}
	return rosters
}

// GPADistribution counts students per fixed GPA band. Every band is
// present in the result, zero counts included.
func (s *ReportService) GPADistribution() map[models.GPABand]int {
	dist := make(map[models.GPABand]int, len(models.GPABands))
	for _, band := range models.GPABands {
		dist[band] = 0
	}
	for _, student := range s.students.List() {
		dist[models.BandForGPA(student.GPA())]++
	}
	return dist
}

func (s *ReportService) courseDetails(code string) string {
	course, ok := s.courses.FindByCode(code)
	if !ok {
		return UnknownCourseDetails
	}
	return fmt.Sprintf("%s (%d credits) - %s", course.Title, course.Credits, course.Department)
}
