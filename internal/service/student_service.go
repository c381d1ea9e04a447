package service

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/noah-isme/ccrm/internal/models"
	appErrors "github.com/noah-isme/ccrm/pkg/errors"
)

type studentStore interface {
	Add(student *models.Student) error
	FindByID(id string) (*models.Student, bool)
	List() []*models.Student
	ListActive() []*models.Student
}

// CreateStudentRequest holds payload for creating students. A blank ID
// gets a generated uuid.
type CreateStudentRequest struct {
	ID       string `json:"id"`
	RegNo    string `json:"reg_no" validate:"required"`
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

// UpdateStudentRequest holds payload for updating students. Identity
// fields (id, regNo) are immutable and absent here.
type UpdateStudentRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Active   bool   `json:"active"`
}

// StudentService handles student use-cases.
type StudentService struct {
	store     studentStore
	validator *validator.Validate
}

// NewStudentService constructs the student service.
func NewStudentService(store studentStore, validate *validator.Validate) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	return &StudentService{store: store, validator: validate}
}

// Create registers a new student.
func (s *StudentService) Create(req CreateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInvalidArgument.Code, "invalid student payload")
	}
	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}
	student := models.NewStudent(id, req.RegNo, req.FullName, req.Email)
	if err := s.store.Add(student); err != nil {
		return nil, err
	}
	return student, nil
}

// Get returns the student with the given id.
func (s *StudentService) Get(id string) (*models.Student, error) {
	student, ok := s.store.FindByID(id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrStudentNotFound, "student not found: "+id)
	}
	return student, nil
}

// List returns all students.
func (s *StudentService) List() []*models.Student {
	return s.store.List()
}

// ListActive returns students whose active flag is set.
func (s *StudentService) ListActive() []*models.Student {
	return s.store.ListActive()
}

// Update modifies the mutable fields of an existing student.
func (s *StudentService) Update(id string, req UpdateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInvalidArgument.Code, "invalid student payload")
	}
	student, ok := s.store.FindByID(id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrStudentNotFound, "student not found: "+id)
	}
	student.FullName = req.FullName
	student.Email = req.Email
	student.Active = req.Active
	student.UpdatedAt = time.Now()
	return student, nil
}

// Transcript builds the point-in-time transcript view for a student.
func (s *StudentService) Transcript(id string) (*models.Transcript, error) {
	student, ok := s.store.FindByID(id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrStudentNotFound, "student not found: "+id)
	}
	return models.NewTranscript(student), nil
}
