package service

import (
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/ccrm/pkg/storage"
)

type snapshotExporter interface {
	ExportStudents(path string) error
	ExportCourses(path string) error
}

// BackupService snapshots the in-memory stores into timestamped
// directories under the backup root.
type BackupService struct {
	exporter snapshotExporter
	store    *storage.BackupStorage
	logger   *zap.Logger
}

// NewBackupService constructs the backup service.
func NewBackupService(exporter snapshotExporter, store *storage.BackupStorage, logger *zap.Logger) *BackupService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BackupService{exporter: exporter, store: store, logger: logger}
}

// Create writes students.csv and courses.csv into a fresh
// backup_<timestamp> directory and returns its path.
func (s *BackupService) Create() (string, error) {
	dir, err := s.store.CreateSnapshotDir(time.Now())
	if err != nil {
		return "", err
	}
	if err := s.exporter.ExportStudents(filepath.Join(dir, "students.csv")); err != nil {
		return "", err
	}
	if err := s.exporter.ExportCourses(filepath.Join(dir, "courses.csv")); err != nil {
		return "", err
	}
	s.logger.Info("backup created", zap.String("dir", dir))
	return dir, nil
}

// Size sums the regular-file sizes under a backup directory.
func (s *BackupService) Size(dir string) (int64, error) {
	return s.store.Size(dir)
}

// Tree lists a backup directory down to maxDepth levels.
func (s *BackupService) Tree(dir string, maxDepth int) ([]string, error) {
	return s.store.Tree(dir, maxDepth)
}

// Root returns the configured backup root directory.
func (s *BackupService) Root() string {
	return s.store.BaseDir()
}
