package storage

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// snapshotTimeLayout names backup directories, e.g. backup_20240115_143022.
const snapshotTimeLayout = "20060102_150405"

// BackupStorage manages timestamped snapshot directories under a base
// directory on the local filesystem.
type BackupStorage struct {
	baseDir string
}

// NewBackupStorage ensures the base directory exists and returns a handle.
func NewBackupStorage(baseDir string) (*BackupStorage, error) {
	if baseDir == "" {
		baseDir = "./backups"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create backup directory: %w", err)
	}
	return &BackupStorage{baseDir: baseDir}, nil
}

// BaseDir exposes the backup root.
func (s *BackupStorage) BaseDir() string {
	return s.baseDir
}

// CreateSnapshotDir makes a fresh backup_<timestamp> directory under
// the base dir and returns its path.
func (s *BackupStorage) CreateSnapshotDir(now time.Time) (string, error) {
	dir := filepath.Join(s.baseDir, "backup_"+now.Format(snapshotTimeLayout))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create snapshot directory: %w", err)
	}
	return dir, nil
}

// Size sums the sizes of all regular files under dir, recursively.
func (s *BackupStorage) Size(dir string) (int64, error) {
	var total int64
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			total += info.Size()
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("walk backup directory: %w", err)
	}
	return total, nil
}

// Tree returns an indented listing of dir limited to maxDepth levels
// below it. Directories render as [DIR], files as [FILE] with size.
func (s *BackupStorage) Tree(dir string, maxDepth int) ([]string, error) {
	var lines []string
	err := s.listLevel(dir, 0, maxDepth, &lines)
	if err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *BackupStorage) listLevel(dir string, depth, maxDepth int, lines *[]string) error {
	if depth > maxDepth {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read backup directory: %w", err)
	}
	indent := strings.Repeat("  ", depth)
	for _, entry := range entries {
		if entry.IsDir() {
			*lines = append(*lines, fmt.Sprintf("%s[DIR] %s", indent, entry.Name()))
			if err := s.listLevel(filepath.Join(dir, entry.Name()), depth+1, maxDepth, lines); err != nil {
				return err
			}
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return fmt.Errorf("stat backup entry: %w", err)
		}
		*lines = append(*lines, fmt.Sprintf("%s[FILE] %s (%d bytes)", indent, entry.Name(), info.Size()))
	}
	return nil
}
