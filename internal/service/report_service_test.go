package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/ccrm/internal/models"
	"github.com/noah-isme/ccrm/internal/repository"
)

func reportFixture(t *testing.T) (*ReportService, *repository.StudentRepository, *repository.CourseRepository) {
	t.Helper()
	students := repository.NewStudentRepository()
	courses := repository.NewCourseRepository()
	return NewReportService(students, courses), students, courses
}

func gradedStudent(t *testing.T, students *repository.StudentRepository, id, name string, scores map[string]float64) *models.Student {
	t.Helper()
	s := models.NewStudent(id, "REG-"+id, name, id+"@example.edu")
	for code, score := range scores {
		s.Enroll(code)
		require.NoError(t, s.RecordScore(code, score))
	}
	require.NoError(t, students.Add(s))
	return s
}

func TestStudentsByName(t *testing.T) {
	svc, students, _ := reportFixture(t)
	gradedStudent(t, students, "S001", "charlie", nil)
	gradedStudent(t, students, "S002", "Alice", nil)
	gradedStudent(t, students, "S003", "bob", nil)

	var names []string
	for _, s := range svc.StudentsByName() {
		names = append(names, s.FullName)
	}
	assert.Equal(t, []string{"Alice", "bob", "charlie"}, names, "case-insensitive ascending")
}

func TestStudentsByGPA(t *testing.T) {
	svc, students, _ := reportFixture(t)
	gradedStudent(t, students, "S001", "Low", map[string]float64{"CS101": 55})   // D -> 6
	gradedStudent(t, students, "S002", "High", map[string]float64{"CS101": 95}) // S -> 10
	gradedStudent(t, students, "S003", "Mid", map[string]float64{"CS101": 75})  // B -> 8

	ranked := svc.StudentsByGPA()
	require.Len(t, ranked, 3)
	assert.Equal(t, "High", ranked[0].FullName)
	assert.Equal(t, "Mid", ranked[1].FullName)
	assert.Equal(t, "Low", ranked[2].FullName)

	top := svc.TopStudentsByGPA(2)
	require.Len(t, top, 2)
	assert.Equal(t, "High", top[0].FullName)

	assert.Empty(t, svc.TopStudentsByGPA(0))
	assert.Empty(t, svc.TopStudentsByGPA(-1))
}

func TestEnrollmentsByCourse(t *testing.T) {
	svc, students, _ := reportFixture(t)
	a := gradedStudent(t, students, "S001", "A", nil)
	b := gradedStudent(t, students, "S002", "B", nil)
	a.Enroll("CS101")
	a.Enroll("MA201")
	b.Enroll("CS101")

	enrollments := svc.EnrollmentsByCourse()
	assert.Equal(t, []string{"S001", "S002"}, enrollments["CS101"])
	assert.Equal(t, []string{"S001"}, enrollments["MA201"])
}

func TestRostersMergeCourseDetails(t *testing.T) {
	svc, students, courses := reportFixture(t)
	require.NoError(t, courses.Add(&models.Course{Code: "CS101", Title: "Intro to Programming", Credits: 3, Department: "CS", Active: true}))
	s := gradedStudent(t, students, "S001", "A", nil)
	s.Enroll("CS101")
	s.Enroll("GHOST1")

	rosters := svc.Rosters()
	require.Len(t, rosters, 2)
	assert.Equal(t, "CS101", rosters[0].CourseCode)
	assert.Equal(t, "Intro to Programming (3 credits) - CS", rosters[0].CourseDetails)
	assert.Equal(t, "GHOST1", rosters[1].CourseCode)
	assert.Equal(t, UnknownCourseDetails, rosters[1].CourseDetails, "unknown codes render the sentinel")
}

func TestGPADistribution(t *testing.T) {
	svc, students, _ := reportFixture(t)
	gradedStudent(t, students, "S001", "Top", map[string]float64{"CS101": 95})    // 10
	gradedStudent(t, students, "S002", "High", map[string]float64{"CS101": 85})  // 9 -> BandTop
	gradedStudent(t, students, "S003", "Mid", map[string]float64{"CS101": 72})   // 8 -> BandHigh
	gradedStudent(t, students, "S004", "Fail", map[string]float64{"CS101": 20})  // 0 -> BandFailing
	gradedStudent(t, students, "S005", "Blank", nil)                             // GPA 0.0

	dist := svc.GPADistribution()
	assert.Equal(t, 2, dist[models.BandTop])
	assert.Equal(t, 1, dist[models.BandHigh])
	assert.Equal(t, 0, dist[models.BandMiddle])
	assert.Equal(t, 0, dist[models.BandLow])
	assert.Equal(t, 2, dist[models.BandFailing])
}
