// Package cli implements the interactive console for the campus course
// and records manager. It is plumbing over the domain services: all
// invariants live below, the console only collects input and renders
// results.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/ccrm/internal/models"
	"github.com/noah-isme/ccrm/internal/service"
	"github.com/noah-isme/ccrm/pkg/config"
)

// CLI drives the menu loop.
type CLI struct {
	cfg        *config.Config
	students   *service.StudentService
	courses    *service.CourseService
	enrollment *service.EnrollmentService
	reports    *service.ReportService
	pipeline   *service.ImportExportService
	backups    *service.BackupService
	logger     *zap.Logger

	in  *bufio.Scanner
	out io.Writer
	eof bool
}

// New wires the console against the domain services.
func New(cfg *config.Config, students *service.StudentService, courses *service.CourseService,
	enrollment *service.EnrollmentService, reports *service.ReportService,
	pipeline *service.ImportExportService, backups *service.BackupService,
	logger *zap.Logger, in io.Reader, out io.Writer) *CLI {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CLI{
		cfg:        cfg,
		students:   students,
		courses:    courses,
		enrollment: enrollment,
		reports:    reports,
		pipeline:   pipeline,
		backups:    backups,
		logger:     logger,
		in:         bufio.NewScanner(in),
		out:        out,
	}
}

// Run starts the main menu loop and returns when the user exits.
func (c *CLI) Run() {
	c.printf("=== Campus Course & Records Manager ===\n")
	for {
		c.printf("\n%s\n", strings.Repeat("=", 46))
		c.printf("1. Manage Students\n")
		c.printf("2. Manage Courses\n")
		c.printf("3. Manage Enrollments\n")
		c.printf("4. Manage Grades\n")
		c.printf("5. Import/Export Data\n")
		c.printf("6. Backup Operations\n")
		c.printf("7. Reports\n")
		c.printf("0. Exit\n")

		choice := c.prompt("Enter your choice: ")
		if c.eof {
			c.printf("\nInput closed, exiting.\n")
			return
		}
		switch choice {
		case "1":
			c.studentMenu()
		case "2":
			c.courseMenu()
		case "3":
			c.enrollmentMenu()
		case "4":
			c.gradeMenu()
		case "5":
			c.importExportMenu()
		case "6":
			c.backupMenu()
		case "7":
			c.reportMenu()
		case "0":
			c.printf("Goodbye.\n")
			return
		default:
			c.printf("Invalid choice.\n")
		}
	}
}

func (c *CLI) studentMenu() {
	for {
		c.printf("\nSTUDENTS: 1) Add  2) List  3) Find  4) Update  5) Transcript  6) Back\n")
		choice := c.prompt("Choice: ")
		if c.eof {
			return
		}
		switch choice {
		case "1":
			c.addStudent()
		case "2":
			c.listStudents()
		case "3":
			c.findStudent()
		case "4":
			c.updateStudent()
		case "5":
			c.showTranscript()
		case "6":
			return
		default:
			c.printf("Invalid choice.\n")
		}
	}
}

func (c *CLI) addStudent() {
	req := service.CreateStudentRequest{
		ID:       c.prompt("Student ID (blank to generate): "),
		RegNo:    c.prompt("Registration No: "),
		FullName: c.prompt("Full Name: "),
		Email:    c.prompt("Email: "),
	}
	student, err := c.students.Create(req)
	if err != nil {
		c.fail("add student", err)
		return
	}
	c.printf("Student %s added.\n", student.ID)
}

func (c *CLI) listStudents() {
	students := c.students.List()
	if len(students) == 0 {
		c.printf("No students found.\n")
		return
	}
	c.printf("%-12s %-14s %-24s %-8s %s\n", "ID", "Reg No", "Name", "GPA", "Courses")
	for _, s := range students {
		c.printf("%-12s %-14s %-24s %-8.2f %d\n", s.ID, s.RegNo, s.FullName, s.GPA(), s.EnrolledCount())
	}
}

func (c *CLI) findStudent() {
	student, err := c.students.Get(c.prompt("Student ID: "))
	if err != nil {
		c.fail("find student", err)
		return
	}
	c.printf("ID: %s\nReg No: %s\nName: %s\nEmail: %s\nActive: %t\nGPA: %.2f\nEnrolled: %s\n",
		student.ID, student.RegNo, student.FullName, student.Email, student.Active,
		student.GPA(), strings.Join(student.EnrolledCourses(), ", "))
}

func (c *CLI) updateStudent() {
	id := c.prompt("Student ID: ")
	current, err := c.students.Get(id)
	if err != nil {
		c.fail("update student", err)
		return
	}
	req := service.UpdateStudentRequest{
		FullName: c.promptDefault("Full Name", current.FullName),
		Email:    c.promptDefault("Email", current.Email),
		Active:   current.Active,
	}
	if _, err := c.students.Update(id, req); err != nil {
		c.fail("update student", err)
		return
	}
	c.printf("Student updated.\n")
}

func (c *CLI) showTranscript() {
	transcript, err := c.students.Transcript(c.prompt("Student ID: "))
	if err != nil {
		c.fail("generate transcript", err)
		return
	}
	c.printf("\nOFFICIAL TRANSCRIPT\n")
	c.printf("Student: %s\nReg No: %s\nGenerated: %s\n\n",
		transcript.FullName, transcript.RegNo, transcript.GeneratedAt.Format("2006-01-02 15:04:05"))
	for _, entry := range transcript.Entries {
		c.printf("Course: %s | Score: %.2f | Grade: %s (%s)\n",
			entry.CourseCode, entry.Score, entry.LetterGrade, entry.Description)
	}
	c.printf("\nOverall GPA: %.2f\n", transcript.GPA)

	if strings.EqualFold(c.prompt("Export as PDF? (y/n): "), "y") {
		path := filepath.Join(c.cfg.Storage.DataDir, "transcript_"+transcript.StudentID+".pdf")
		if err := c.pipeline.ExportTranscriptPDF(transcript.StudentID, path); err != nil {
			c.fail("export transcript", err)
			return
		}
		c.printf("Transcript written to %s\n", path)
	}
}

func (c *CLI) courseMenu() {
	for {
		c.printf("\nCOURSES: 1) Add  2) List  3) Find  4) By Department  5) By Semester  6) Deactivate  7) Back\n")
		choice := c.prompt("Choice: ")
		if c.eof {
			return
		}
		switch choice {
		case "1":
			c.addCourse()
		case "2":
			c.listCourses(c.courses.List())
		case "3":
			c.findCourse()
		case "4":
			c.listCourses(c.courses.ByDepartment(c.prompt("Department: ")))
		case "5":
			courses, err := c.courses.BySemester(c.prompt("Semester (SPRING/SUMMER/FALL): "))
			if err != nil {
				c.fail("filter courses", err)
				continue
			}
			c.listCourses(courses)
		case "6":
			if _, err := c.courses.Deactivate(c.prompt("Course Code: ")); err != nil {
				c.fail("deactivate course", err)
				continue
			}
			c.printf("Course deactivated.\n")
		case "7":
			return
		default:
			c.printf("Invalid choice.\n")
		}
	}
}

func (c *CLI) addCourse() {
	code := c.prompt("Course Code: ")
	title := c.prompt("Title: ")
	credits, err := strconv.Atoi(c.prompt("Credits: "))
	if err != nil {
		c.printf("Credits must be a number.\n")
		return
	}
	req := service.CreateCourseRequest{
		Code:         code,
		Title:        title,
		Credits:      credits,
		InstructorID: c.prompt("Instructor ID (optional): "),
		Semester:     c.prompt("Semester (SPRING/SUMMER/FALL, optional): "),
		Department:   c.prompt("Department (optional): "),
	}
	course, err := c.courses.Create(req)
	if err != nil {
		c.fail("add course", err)
		return
	}
	c.printf("Course %s added.\n", course.Code)
}

func (c *CLI) listCourses(courses []*models.Course) {
	if len(courses) == 0 {
		c.printf("No courses found.\n")
		return
	}
	c.printf("%-10s %-30s %-8s %-10s %-16s %s\n", "Code", "Title", "Credits", "Semester", "Department", "Active")
	for _, course := range courses {
		c.printf("%-10s %-30s %-8d %-10s %-16s %t\n",
			course.Code, course.Title, course.Credits, course.Semester, course.Department, course.Active)
	}
}

func (c *CLI) findCourse() {
	course, err := c.courses.Get(c.prompt("Course Code: "))
	if err != nil {
		c.fail("find course", err)
		return
	}
	c.printf("Code: %s\nTitle: %s\nCredits: %d\nInstructor: %s\nSemester: %s\nDepartment: %s\nActive: %t\n",
		course.Code, course.Title, course.Credits, course.InstructorID, course.Semester, course.Department, course.Active)
}

func (c *CLI) enrollmentMenu() {
	for {
		c.printf("\nENROLLMENTS: 1) Enroll  2) Unenroll  3) View by Course  4) Back\n")
		choice := c.prompt("Choice: ")
		if c.eof {
			return
		}
		switch choice {
		case "1":
			if err := c.enrollment.Enroll(c.prompt("Student ID: "), c.prompt("Course Code: ")); err != nil {
				c.fail("enroll student", err)
				continue
			}
			c.printf("Student enrolled.\n")
		case "2":
			if err := c.enrollment.Unenroll(c.prompt("Student ID: "), c.prompt("Course Code: ")); err != nil {
				c.fail("unenroll student", err)
				continue
			}
			c.printf("Student unenrolled.\n")
		case "3":
			c.viewEnrollments()
		case "4":
			return
		default:
			c.printf("Invalid choice.\n")
		}
	}
}

func (c *CLI) viewEnrollments() {
	rosters := c.reports.Rosters()
	if len(rosters) == 0 {
		c.printf("No enrollments found.\n")
		return
	}
	for _, roster := range rosters {
		c.printf("\n%s - %s (%d students)\n", roster.CourseCode, roster.CourseDetails, len(roster.StudentIDs))
		for _, id := range roster.StudentIDs {
			if student, err := c.students.Get(id); err == nil {
				c.printf("  %s (%s)\n", student.FullName, student.ID)
			}
		}
	}
}

func (c *CLI) gradeMenu() {
	for {
		c.printf("\nGRADES: 1) Record  2) View Student Grades  3) Top by GPA  4) Back\n")
		choice := c.prompt("Choice: ")
		if c.eof {
			return
		}
		switch choice {
		case "1":
			c.recordGrade()
		case "2":
			c.viewStudentGrades()
		case "3":
			c.topStudents()
		case "4":
			return
		default:
			c.printf("Invalid choice.\n")
		}
	}
}

func (c *CLI) recordGrade() {
	studentID := c.prompt("Student ID: ")
	courseCode := c.prompt("Course Code: ")
	score, err := strconv.ParseFloat(c.prompt("Score (0-100): "), 64)
	if err != nil {
		c.printf("Score must be a number.\n")
		return
	}
	if err := c.enrollment.RecordGrade(studentID, courseCode, score); err != nil {
		c.fail("record grade", err)
		return
	}
	c.printf("Grade recorded.\n")
}

func (c *CLI) viewStudentGrades() {
	student, err := c.students.Get(c.prompt("Student ID: "))
	if err != nil {
		c.fail("view grades", err)
		return
	}
	c.printf("\nGrades for %s:\n", student.FullName)
	for _, code := range student.EnrolledCourses() {
		title := "Unknown Course"
		if course, err := c.courses.Get(code); err == nil {
			title = course.Title
		}
		if score, ok := student.Score(code); ok {
			grade, _ := student.LetterGrade(code)
			c.printf("%s - %s: %.2f (%s)\n", code, title, score, grade)
		} else {
			c.printf("%s - %s: no grade recorded\n", code, title)
		}
	}
	c.printf("\nOverall GPA: %.2f\n", student.GPA())
}

func (c *CLI) topStudents() {
	top := c.reports.TopStudentsByGPA(5)
	if len(top) == 0 {
		c.printf("No students found.\n")
		return
	}
	c.printf("%-24s %-14s %s\n", "Name", "Reg No", "GPA")
	for _, student := range top {
		c.printf("%-24s %-14s %.2f\n", student.FullName, student.RegNo, student.GPA())
	}
}

func (c *CLI) importExportMenu() {
	for {
		c.printf("\nIMPORT/EXPORT: 1) Import Students  2) Import Courses  3) Export Students  4) Export Courses  5) Back\n")
		choice := c.prompt("Choice: ")
		if c.eof {
			return
		}
		switch choice {
		case "1":
			count, err := c.pipeline.ImportStudents(c.promptDefault("File", filepath.Join(c.cfg.Storage.DataDir, "students.csv")))
			c.reportImport("students", count, err)
		case "2":
			count, err := c.pipeline.ImportCourses(c.promptDefault("File", filepath.Join(c.cfg.Storage.DataDir, "courses.csv")))
			c.reportImport("courses", count, err)
		case "3":
			path := c.promptDefault("File", filepath.Join(c.cfg.Storage.DataDir, "students.csv"))
			if err := c.pipeline.ExportStudents(path); err != nil {
				c.fail("export students", err)
				continue
			}
			c.printf("Students exported to %s\n", path)
		case "4":
			path := c.promptDefault("File", filepath.Join(c.cfg.Storage.DataDir, "courses.csv"))
			if err := c.pipeline.ExportCourses(path); err != nil {
				c.fail("export courses", err)
				continue
			}
			c.printf("Courses exported to %s\n", path)
		case "5":
			return
		default:
			c.printf("Invalid choice.\n")
		}
	}
}

func (c *CLI) reportImport(what string, count int, err error) {
	if err != nil {
		c.printf("Imported %d %s before failure: %v\n", count, what, err)
		return
	}
	c.printf("Imported %d %s.\n", count, what)
}

func (c *CLI) backupMenu() {
	for {
		c.printf("\nBACKUP: 1) Create  2) Show Size  3) List Files  4) Back\n")
		choice := c.prompt("Choice: ")
		if c.eof {
			return
		}
		switch choice {
		case "1":
			dir, err := c.backups.Create()
			if err != nil {
				c.fail("create backup", err)
				continue
			}
			c.printf("Backup created at %s\n", dir)
		case "2":
			dir := c.promptDefault("Directory", c.backups.Root())
			size, err := c.backups.Size(dir)
			if err != nil {
				c.fail("calculate size", err)
				continue
			}
			c.printf("Total size: %d bytes\n", size)
		case "3":
			dir := c.promptDefault("Directory", c.backups.Root())
			depth, err := strconv.Atoi(c.promptDefault("Max depth", "2"))
			if err != nil {
				c.printf("Depth must be a number.\n")
				continue
			}
			lines, err := c.backups.Tree(dir, depth)
			if err != nil {
				c.fail("list backup", err)
				continue
			}
			for _, line := range lines {
				c.printf("%s\n", line)
			}
		case "4":
			return
		default:
			c.printf("Invalid choice.\n")
		}
	}
}

func (c *CLI) reportMenu() {
	for {
		c.printf("\nREPORTS: 1) GPA Distribution  2) Courses by Department  3) Courses by Instructor  4) Back\n")
		choice := c.prompt("Choice: ")
		if c.eof {
			return
		}
		switch choice {
		case "1":
			c.gpaDistribution()
		case "2":
			c.coursesByDepartment()
		case "3":
			c.listCourses(c.courses.ByInstructor(c.prompt("Instructor ID: ")))
		case "4":
			return
		default:
			c.printf("Invalid choice.\n")
		}
	}
}

func (c *CLI) gpaDistribution() {
	dist := c.reports.GPADistribution()
	c.printf("\nGPA DISTRIBUTION\n")
	for _, band := range models.GPABands {
		c.printf("%-12s: %d students\n", band, dist[band])
	}
}

func (c *CLI) coursesByDepartment() {
	groups := c.courses.GroupedByDepartment()
	departments := make([]string, 0, len(groups))
	for department := range groups {
		departments = append(departments, department)
	}
	sort.Strings(departments)
	for _, department := range departments {
		name := department
		if name == "" {
			name = "(none)"
		}
		c.printf("%-20s: %d courses\n", name, len(groups[department]))
		for _, course := range groups[department] {
			c.printf("  %s - %s\n", course.Code, course.Title)
		}
	}
}

// prompt reads one trimmed input line. Once the input is exhausted it
// sets the eof flag and returns ""; the menu loops check the flag so
// a closed stdin ends the session instead of spinning on it.
func (c *CLI) prompt(label string) string {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		c.eof = true
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

// promptDefault asks for a value, keeping the current one when the
// user enters nothing.
func (c *CLI) promptDefault(label, current string) string {
	value := c.prompt(fmt.Sprintf("%s [%s]: ", label, current))
	if value == "" {
		return current
	}
	return value
}

func (c *CLI) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *CLI) fail(action string, err error) {
	c.logger.Warn("operation failed", zap.String("action", action), zap.Error(err))
	c.printf("Error: %v\n", err)
}
