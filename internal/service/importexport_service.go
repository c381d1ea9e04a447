package service

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"

	appErrors "github.com/noah-isme/ccrm/pkg/errors"
	"github.com/noah-isme/ccrm/pkg/export"
)

// Snapshot column layouts. Import maps fields positionally onto these.
var (
	studentCSVHeaders = []string{"id", "regNo", "fullName", "email", "active"}
	courseCSVHeaders  = []string{"code", "title", "credits", "instructorId", "semester", "department", "active"}
)

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string, preamble, summary []string) ([]byte, error)
}

// ImportExportService moves whole-collection CSV snapshots in and out
// of the in-memory stores. Row validation and duplicate detection run
// through the same services the console uses, so imported data obeys
// the same invariants as interactively entered data.
type ImportExportService struct {
	students *StudentService
	courses  *CourseService
	csv      csvRenderer
	pdf      pdfRenderer
	logger   *zap.Logger
}

// NewImportExportService constructs the import/export pipeline.
func NewImportExportService(students *StudentService, courses *CourseService, logger *zap.Logger) *ImportExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImportExportService{
		students: students,
		courses:  courses,
		csv:      export.NewCSVExporter(),
		pdf:      export.NewPDFExporter(),
		logger:   logger,
	}
}

// ImportStudents loads students from a CSV snapshot, returning the
// number imported. The active column is ignored; imported students are
// created active. The call fails on the first malformed row or
// duplicate id; rows already added stay in the store.
func (s *ImportExportService) ImportStudents(path string) (int, error) {
	records, err := readCSV(path)
	if err != nil {
		return 0, err
	}
	count := 0
	for i, record := range records {
		if len(record) < 4 {
			return count, appErrors.Wrap(
				fmt.Errorf("line %d has %d fields, want at least 4", i+2, len(record)),
				appErrors.ErrInvalidArgument.Code, "malformed student row")
		}
		_, err := s.students.Create(CreateStudentRequest{
			ID:       record[0],
			RegNo:    record[1],
			FullName: record[2],
			Email:    record[3],
		})
		if err != nil {
			return count, err
		}
		count++
	}
	s.logger.Info("students imported", zap.String("path", path), zap.Int("count", count))
	return count, nil
}

// ImportCourses loads courses from a CSV snapshot, returning the
// number imported. Credits must parse as a positive integer, the
// active column as a boolean, and the semester literal is matched
// case-insensitively.
func (s *ImportExportService) ImportCourses(path string) (int, error) {
	records, err := readCSV(path)
	if err != nil {
		return 0, err
	}
	count := 0
	for i, record := range records {
		if len(record) < 7 {
			return count, appErrors.Wrap(
				fmt.Errorf("line %d has %d fields, want 7", i+2, len(record)),
				appErrors.ErrInvalidArgument.Code, "malformed course row")
		}
		credits, err := strconv.Atoi(record[2])
		if err != nil {
			return count, appErrors.Wrap(
				fmt.Errorf("line %d: %w", i+2, err),
				appErrors.ErrInvalidArgument.Code, "invalid credits value")
		}
		active, err := strconv.ParseBool(record[6])
		if err != nil {
			return count, appErrors.Wrap(
				fmt.Errorf("line %d: %w", i+2, err),
				appErrors.ErrInvalidArgument.Code, "invalid active value")
		}
		course, err := s.courses.Create(CreateCourseRequest{
			Code:         record[0],
			Title:        record[1],
			Credits:      credits,
			InstructorID: record[3],
			Semester:     record[4],
			Department:   record[5],
		})
		if err != nil {
			return count, err
		}
		course.Active = active
		count++
	}
	s.logger.Info("courses imported", zap.String("path", path), zap.Int("count", count))
	return count, nil
}

// ExportStudents writes the full student collection as CSV to path.
func (s *ImportExportService) ExportStudents(path string) error {
	data := export.Dataset{Headers: studentCSVHeaders}
	for _, student := range s.students.List() {
		data.Append(map[string]string{
			"id":       student.ID,
			"regNo":    student.RegNo,
			"fullName": student.FullName,
			"email":    student.Email,
			"active":   strconv.FormatBool(student.Active),
		})
	}
	return s.writeRendered(path, data)
}

// ExportCourses writes the full course catalog as CSV to path.
func (s *ImportExportService) ExportCourses(path string) error {
	data := export.Dataset{Headers: courseCSVHeaders}
	for _, course := range s.courses.List() {
		data.Append(map[string]string{
			"code":         course.Code,
			"title":        course.Title,
			"credits":      strconv.Itoa(course.Credits),
			"instructorId": course.InstructorID,
			"semester":     string(course.Semester),
			"department":   course.Department,
			"active":       strconv.FormatBool(course.Active),
		})
	}
	return s.writeRendered(path, data)
}

// ExportTranscriptPDF renders a student's transcript as a PDF file at
// path.
func (s *ImportExportService) ExportTranscriptPDF(studentID, path string) error {
	transcript, err := s.students.Transcript(studentID)
	if err != nil {
		return err
	}
	data := export.Dataset{Headers: []string{"Course", "Score", "Grade", "Points"}}
	for _, entry := range transcript.Entries {
		data.Append(map[string]string{
			"Course": entry.CourseCode,
			"Score":  strconv.FormatFloat(entry.Score, 'f', 2, 64),
			"Grade":  fmt.Sprintf("%s (%s)", entry.LetterGrade, entry.Description),
			"Points": strconv.Itoa(entry.Points),
		})
	}
	preamble := []string{
		"Student: " + transcript.FullName,
		"Reg No: " + transcript.RegNo,
		"Generated: " + transcript.GeneratedAt.Format("2006-01-02 15:04:05"),
	}
	summary := []string{fmt.Sprintf("Overall GPA: %.2f", transcript.GPA)}
	payload, err := s.pdf.Render(data, "Official Transcript", preamble, summary)
	if err != nil {
		return err
	}
	s.logger.Info("transcript exported", zap.String("student_id", studentID), zap.String("path", path))
	return writeFile(path, payload)
}

func (s *ImportExportService) writeRendered(path string, data export.Dataset) error {
	payload, err := s.csv.Render(data)
	if err != nil {
		return err
	}
	s.logger.Info("snapshot exported", zap.String("path", path), zap.Int("rows", len(data.Rows)))
	return writeFile(path, payload)
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close() //nolint:errcheck

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInvalidArgument.Code, "malformed csv file")
	}
	if len(records) == 0 {
		return nil, nil
	}
	// First row is the header.
	return records[1:], nil
}

func writeFile(path string, payload []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("prepare export directory: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	return nil
}
