package service

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/ccrm/internal/models"
	appErrors "github.com/noah-isme/ccrm/pkg/errors"
)

type courseStore interface {
	Add(course *models.Course) error
	FindByCode(code string) (*models.Course, bool)
	List() []*models.Course
	ListActive() []*models.Course
	ByDepartment(department string) []*models.Course
	BySemester(semester models.Semester) []*models.Course
	ByInstructor(instructorID string) []*models.Course
	GroupedByDepartment() map[string][]*models.Course
}

// CreateCourseRequest holds payload for adding catalog entries.
type CreateCourseRequest struct {
	Code         string `json:"code" validate:"required"`
	Title        string `json:"title" validate:"required"`
	Credits      int    `json:"credits" validate:"required,gt=0"`
	InstructorID string `json:"instructor_id"`
	Semester     string `json:"semester" validate:"omitempty"`
	Department   string `json:"department"`
}

// UpdateCourseRequest holds the mutable course fields. Code, title and
// credits are immutable after creation.
type UpdateCourseRequest struct {
	InstructorID string `json:"instructor_id"`
	Semester     string `json:"semester" validate:"omitempty"`
	Department   string `json:"department"`
}

// CourseService handles catalog use-cases.
type CourseService struct {
	store     courseStore
	validator *validator.Validate
}

// NewCourseService constructs the course service.
func NewCourseService(store courseStore, validate *validator.Validate) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	return &CourseService{store: store, validator: validate}
}

// Create adds a course to the catalog.
func (s *CourseService) Create(req CreateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInvalidArgument.Code, "invalid course payload")
	}
	var semester models.Semester
	if req.Semester != "" {
		parsed, err := models.ParseSemester(req.Semester)
		if err != nil {
			return nil, err
		}
		semester = parsed
	}
	now := time.Now()
	course := &models.Course{
		Code:         req.Code,
		Title:        req.Title,
		Credits:      req.Credits,
		InstructorID: req.InstructorID,
		Semester:     semester,
		Department:   req.Department,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.Add(course); err != nil {
		return nil, err
	}
	return course, nil
}

// Get returns the course with the given code.
func (s *CourseService) Get(code string) (*models.Course, error) {
	course, ok := s.store.FindByCode(code)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrCourseNotFound, "course not found: "+code)
	}
	return course, nil
}

// List returns the whole catalog.
func (s *CourseService) List() []*models.Course {
	return s.store.List()
}

// ListActive returns active catalog entries.
func (s *CourseService) ListActive() []*models.Course {
	return s.store.ListActive()
}

// ByDepartment filters the catalog by department, case-insensitively.
func (s *CourseService) ByDepartment(department string) []*models.Course {
	return s.store.ByDepartment(department)
}

// BySemester filters the catalog by semester literal.
func (s *CourseService) BySemester(raw string) ([]*models.Course, error) {
	semester, err := models.ParseSemester(raw)
	if err != nil {
		return nil, err
	}
	return s.store.BySemester(semester), nil
}

// ByInstructor filters the catalog by instructor id.
func (s *CourseService) ByInstructor(instructorID string) []*models.Course {
	return s.store.ByInstructor(instructorID)
}

// GroupedByDepartment buckets the catalog by department.
func (s *CourseService) GroupedByDepartment() map[string][]*models.Course {
	return s.store.GroupedByDepartment()
}

// Update modifies the mutable fields of an existing course.
func (s *CourseService) Update(code string, req UpdateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInvalidArgument.Code, "invalid course payload")
	}
	course, ok := s.store.FindByCode(code)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrCourseNotFound, "course not found: "+code)
	}
	if req.Semester != "" {
		semester, err := models.ParseSemester(req.Semester)
		if err != nil {
			return nil, err
		}
		course.Semester = semester
	}
	if req.InstructorID != "" {
		course.InstructorID = req.InstructorID
	}
	if req.Department != "" {
		course.Department = req.Department
	}
	course.UpdatedAt = time.Now()
	return course, nil
}

// Deactivate clears the active flag. Courses are never deleted.
func (s *CourseService) Deactivate(code string) (*models.Course, error) {
	course, ok := s.store.FindByCode(code)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrCourseNotFound, "course not found: "+code)
	}
	course.Active = false
	course.UpdatedAt = time.Now()
	return course, nil
}
