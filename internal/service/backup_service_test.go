package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/ccrm/internal/repository"
	"github.com/noah-isme/ccrm/pkg/storage"
)

func backupFixture(t *testing.T) (*BackupService, *StudentService, *CourseService) {
	t.Helper()
	students := NewStudentService(repository.NewStudentRepository(), validator.New())
	courses := NewCourseService(repository.NewCourseRepository(), validator.New())
	exporter := NewImportExportService(students, courses, zap.NewNop())
	store, err := storage.NewBackupStorage(filepath.Join(t.TempDir(), "backups"))
	require.NoError(t, err)
	return NewBackupService(exporter, store, zap.NewNop()), students, courses
}

func TestBackupCreate(t *testing.T) {
	svc, students, courses := backupFixture(t)
	_, err := students.Create(CreateStudentRequest{ID: "S001", RegNo: "2024CS001", FullName: "Asha Rao", Email: "asha@example.edu"})
	require.NoError(t, err)
	_, err = courses.Create(CreateCourseRequest{Code: "CS101", Title: "Intro", Credits: 3})
	require.NoError(t, err)

	dir, err := svc.Create()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filepath.Base(dir), "backup_"))
	for _, name := range []string{"students.csv", "courses.csv"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0))
	}

	size, err := svc.Size(dir)
	require.NoError(t, err)
	assert.Greater(t, size, int64(0))

	lines, err := svc.Tree(dir, 1)
	require.NoError(t, err)
	assert.Len(t, lines, 2)
}
