package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/ccrm/internal/models"
	appErrors "github.com/noah-isme/ccrm/pkg/errors"
)

func TestStudentRepositoryAddDuplicate(t *testing.T) {
	repo := NewStudentRepository()
	require.NoError(t, repo.Add(models.NewStudent("S001", "2024CS001", "Asha Rao", "asha@example.edu")))

	err := repo.Add(models.NewStudent("S001", "2024CS099", "Another", "a@example.edu"))
	assert.ErrorIs(t, err, appErrors.ErrDuplicateStudentID)
	assert.Equal(t, 1, repo.Count())
}

func TestStudentRepositoryFindAndList(t *testing.T) {
	repo := NewStudentRepository()
	require.NoError(t, repo.Add(models.NewStudent("S002", "2024CS002", "Binod Karki", "binod@example.edu")))
	require.NoError(t, repo.Add(models.NewStudent("S001", "2024CS001", "Asha Rao", "asha@example.edu")))

	got, ok := repo.FindByID("S001")
	require.True(t, ok)
	assert.Equal(t, "Asha Rao", got.FullName)

	_, ok = repo.FindByID("S999")
	assert.False(t, ok)

	list := repo.List()
	require.Len(t, list, 2)
	assert.Equal(t, "S002", list[0].ID, "insertion order preserved")

	list[0].Active = false
	active := repo.ListActive()
	require.Len(t, active, 1)
	assert.Equal(t, "S001", active[0].ID)
}
