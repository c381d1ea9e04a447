package repository

import (
	"strings"

	"github.com/noah-isme/ccrm/internal/models"
	appErrors "github.com/noah-isme/ccrm/pkg/errors"
)

// CourseRepository is the in-memory course catalog. Courses are keyed
// by their unique code; iteration follows insertion order so listings
// stay deterministic across calls.
type CourseRepository struct {
	courses map[string]*models.Course
	order   []string
}

// NewCourseRepository creates an empty catalog.
func NewCourseRepository() *CourseRepository {
	return &CourseRepository{courses: make(map[string]*models.Course)}
}

// Add inserts a course. Codes must be unique and credits positive;
// the catalog holds the invariant itself rather than trusting callers.
func (r *CourseRepository) Add(course *models.Course) error {
	if course.Credits <= 0 {
		return appErrors.Clone(appErrors.ErrInvalidArgument, "course credits must be positive: "+course.Code)
	}
	if _, ok := r.courses[course.Code]; ok {
		return appErrors.Clone(appErrors.ErrDuplicateCourseCode, "course code already exists: "+course.Code)
	}
	r.courses[course.Code] = course
	r.order = append(r.order, course.Code)
	return nil
}

// FindByCode looks a course up; absence is a false second value, not
// an error.
func (r *CourseRepository) FindByCode(code string) (*models.Course, bool) {
	course, ok := r.courses[code]
	return course, ok
}

// List returns all courses in insertion order.
func (r *CourseRepository) List() []*models.Course {
	out := make([]*models.Course, 0, len(r.order))
	for _, code := range r.order {
		out = append(out, r.courses[code])
	}
	return out
}

// ListActive returns courses whose active flag is set.
func (r *CourseRepository) ListActive() []*models.Course {
	out := make([]*models.Course, 0, len(r.order))
	for _, code := range r.order {
		if course := r.courses[code]; course.Active {
			out = append(out, course)
		}
	}
	return out
}

// ByDepartment matches the department name case-insensitively.
func (r *CourseRepository) ByDepartment(department string) []*models.Course {
	out := make([]*models.Course, 0)
	for _, code := range r.order {
		if course := r.courses[code]; strings.EqualFold(course.Department, department) {
			out = append(out, course)
		}
	}
	return out
}

// BySemester returns courses scheduled for the given semester.
func (r *CourseRepository) BySemester(semester models.Semester) []*models.Course {
	out := make([]*models.Course, 0)
	for _, code := range r.order {
		if course := r.courses[code]; course.Semester == semester {
			out = append(out, course)
		}
	}
	return out
}

// ByInstructor returns courses taught by the given instructor.
func (r *CourseRepository) ByInstructor(instructorID string) []*models.Course {
	out := make([]*models.Course, 0)
	for _, code := range r.order {
		if course := r.courses[code]; course.InstructorID == instructorID {
			out = append(out, course)
		}
	}
	return out
}

// GroupedByDepartment buckets the catalog by department name.
func (r *CourseRepository) GroupedByDepartment() map[string][]*models.Course {
	groups := make(map[string][]*models.Course)
	for _, code := range r.order {
		course := r.courses[code]
		groups[course.Department] = append(groups[course.Department], course)
	}
	return groups
}

// Count returns the catalog size.
func (r *CourseRepository) Count() int {
	return len(r.courses)
}
