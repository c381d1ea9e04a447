package service

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/ccrm/internal/models"
	"github.com/noah-isme/ccrm/internal/repository"
	appErrors "github.com/noah-isme/ccrm/pkg/errors"
)

func courseServiceFixture() *CourseService {
	return NewCourseService(repository.NewCourseRepository(), validator.New())
}

func TestCourseServiceCreate(t *testing.T) {
	svc := courseServiceFixture()

	course, err := svc.Create(CreateCourseRequest{
		Code:         "CS101",
		Title:        "Intro to Programming",
		Credits:      3,
		InstructorID: "I001",
		Semester:     "fall",
		Department:   "Computer Science",
	})
	require.NoError(t, err)
	assert.Equal(t, models.SemesterFall, course.Semester)
	assert.True(t, course.Active)
}

func TestCourseServiceCreateValidation(t *testing.T) {
	svc := courseServiceFixture()

	_, err := svc.Create(CreateCourseRequest{Code: "CS101", Title: "Intro", Credits: 0})
	assert.ErrorIs(t, err, appErrors.ErrInvalidArgument, "non-positive credits rejected")

	_, err = svc.Create(CreateCourseRequest{Code: "", Title: "Intro", Credits: 3})
	assert.ErrorIs(t, err, appErrors.ErrInvalidArgument)

	_, err = svc.Create(CreateCourseRequest{Code: "CS101", Title: "Intro", Credits: 3, Semester: "WINTER"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidArgument, "unknown semester literal rejected")
}

func TestCourseServiceCreateDuplicate(t *testing.T) {
	svc := courseServiceFixture()
	_, err := svc.Create(CreateCourseRequest{Code: "CS101", Title: "Intro", Credits: 3})
	require.NoError(t, err)

	_, err = svc.Create(CreateCourseRequest{Code: "CS101", Title: "Other", Credits: 4})
	assert.ErrorIs(t, err, appErrors.ErrDuplicateCourseCode)
}

func TestCourseServiceGet(t *testing.T) {
	svc := courseServiceFixture()
	_, err := svc.Create(CreateCourseRequest{Code: "CS101", Title: "Intro", Credits: 3})
	require.NoError(t, err)

	course, err := svc.Get("CS101")
	require.NoError(t, err)
	assert.Equal(t, "Intro", course.Title)

	_, err = svc.Get("CS404")
	assert.ErrorIs(t, err, appErrors.ErrCourseNotFound)
}

func TestCourseServiceUpdateAndDeactivate(t *testing.T) {
	svc := courseServiceFixture()
	_, err := svc.Create(CreateCourseRequest{Code: "CS101", Title: "Intro", Credits: 3, Semester: "FALL"})
	require.NoError(t, err)

	course, err := svc.Update("CS101", UpdateCourseRequest{InstructorID: "I002", Semester: "spring", Department: "CS"})
	require.NoError(t, err)
	assert.Equal(t, "I002", course.InstructorID)
	assert.Equal(t, models.SemesterSpring, course.Semester)
	assert.Equal(t, "CS", course.Department)
	assert.Equal(t, 3, course.Credits, "credits immutable")

	course, err = svc.Deactivate("CS101")
	require.NoError(t, err)
	assert.False(t, course.Active)
	assert.Empty(t, svc.ListActive())

	_, err = svc.Deactivate("CS404")
	assert.ErrorIs(t, err, appErrors.ErrCourseNotFound)
}

func TestCourseServiceBySemester(t *testing.T) {
	svc := courseServiceFixture()
	_, err := svc.Create(CreateCourseRequest{Code: "CS101", Title: "Intro", Credits: 3, Semester: "FALL"})
	require.NoError(t, err)

	out, err := svc.BySemester("Fall")
	require.NoError(t, err)
	assert.Len(t, out, 1)

	_, err = svc.BySemester("MONSOON")
	assert.Error(t, err)
}
