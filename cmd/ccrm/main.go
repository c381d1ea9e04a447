package main

import (
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/ccrm/internal/cli"
	"github.com/noah-isme/ccrm/internal/repository"
	"github.com/noah-isme/ccrm/internal/service"
	"github.com/noah-isme/ccrm/pkg/config"
	"github.com/noah-isme/ccrm/pkg/logger"
	"github.com/noah-isme/ccrm/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if err := os.MkdirAll(cfg.Storage.DataDir, 0o755); err != nil {
		logr.Sugar().Fatalw("failed to create data directory", "error", err)
	}

	backupStore, err := storage.NewBackupStorage(cfg.Storage.BackupDir)
	if err != nil {
		logr.Sugar().Fatalw("failed to init backup storage", "error", err)
	}

	validate := validator.New()
	studentRepo := repository.NewStudentRepository()
	courseRepo := repository.NewCourseRepository()

	students := service.NewStudentService(studentRepo, validate)
	courses := service.NewCourseService(courseRepo, validate)
	enrollment := service.NewEnrollmentService(studentRepo, courseRepo, cfg)
	reports := service.NewReportService(studentRepo, courseRepo)
	pipeline := service.NewImportExportService(students, courses, logr)
	backups := service.NewBackupService(pipeline, backupStore, logr)

	if cfg.Seed.SampleData {
		seedSampleData(students, courses, enrollment, logr)
	}

	logr.Sugar().Infow("ccrm starting",
		"env", cfg.Env,
		"data_dir", cfg.Storage.DataDir,
		"backup_dir", cfg.Storage.BackupDir,
		"max_credits", cfg.Academic.MaxCreditsPerSemester,
	)

	console := cli.New(cfg, students, courses, enrollment, reports, pipeline, backups, logr, os.Stdin, os.Stdout)
	console.Run()
}

func seedSampleData(students *service.StudentService, courses *service.CourseService,
	enrollment *service.EnrollmentService, logr *zap.Logger) {
	sampleCourses := []service.CreateCourseRequest{
		{Code: "CS101", Title: "Intro to Programming", Credits: 3, InstructorID: "I001", Semester: "FALL", Department: "Computer Science"},
		{Code: "MA201", Title: "Linear Algebra", Credits: 4, InstructorID: "I002", Semester: "FALL", Department: "Mathematics"},
		{Code: "PH110", Title: "Mechanics", Credits: 4, InstructorID: "I003", Semester: "SPRING", Department: "Physics"},
	}
	for _, req := range sampleCourses {
		if _, err := courses.Create(req); err != nil {
			logr.Warn("sample course not loaded", zap.String("code", req.Code), zap.Error(err))
		}
	}

	sampleStudents := []service.CreateStudentRequest{
		{ID: "S001", RegNo: "2024CS001", FullName: "Asha Rao", Email: "asha@example.edu"},
		{ID: "S002", RegNo: "2024CS002", FullName: "Binod Karki", Email: "binod@example.edu"},
	}
	for _, req := range sampleStudents {
		if _, err := students.Create(req); err != nil {
			logr.Warn("sample student not loaded", zap.String("id", req.ID), zap.Error(err))
		}
	}

	for _, pair := range [][2]string{{"S001", "CS101"}, {"S001", "MA201"}, {"S002", "CS101"}} {
		if err := enrollment.Enroll(pair[0], pair[1]); err != nil {
			logr.Warn("sample enrollment not loaded", zap.String("student", pair[0]), zap.String("course", pair[1]), zap.Error(err))
		}
	}
}
