package repository

import (
	"github.com/noah-isme/ccrm/internal/models"
	appErrors "github.com/noah-isme/ccrm/pkg/errors"
)

// StudentRepository is the in-memory student store, keyed by student id
// with insertion-order iteration.
type StudentRepository struct {
	students map[string]*models.Student
	order    []string
}

// NewStudentRepository creates an empty store.
func NewStudentRepository() *StudentRepository {
	return &StudentRepository{students: make(map[string]*models.Student)}
}

// Add inserts a student, failing when the id is already taken.
func (r *StudentRepository) Add(student *models.Student) error {
	if _, ok := r.students[student.ID]; ok {
		return appErrors.Clone(appErrors.ErrDuplicateStudentID, "student id already exists: "+student.ID)
	}
	r.students[student.ID] = student
	r.order = append(r.order, student.ID)
	return nil
}

// FindByID looks a student up; absence is a false second value.
func (r *StudentRepository) FindByID(id string) (*models.Student, bool) {
	student, ok := r.students[id]
	return student, ok
}

// List returns all students in insertion order.
func (r *StudentRepository) List() []*models.Student {
	out := make([]*models.Student, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.students[id])
	}
	return out
}

// ListActive returns students whose active flag is set.
func (r *StudentRepository) ListActive() []*models.Student {
	out := make([]*models.Student, 0, len(r.order))
	for _, id := range r.order {
		if student := r.students[id]; student.Active {
			out = append(out, student)
		}
	}
	return out
}

// Count returns the store size.
func (r *StudentRepository) Count() int {
	return len(r.students)
}
