package models

import "time"

// TranscriptEntry is one graded course line on a transcript.
type TranscriptEntry struct {
	CourseCode  string  `json:"course_code"`
	Score       float64 `json:"score"`
	LetterGrade Grade   `json:"letter_grade"`
	Points      int     `json:"points"`
	Description string  `json:"description"`
}

// Transcript is a point-in-time view of a student's graded courses.
// It holds no reference back to the student and is rebuilt on every
// request, never persisted.
type Transcript struct {
	StudentID   string            `json:"student_id"`
	RegNo       string            `json:"reg_no"`
	FullName    string            `json:"full_name"`
	GeneratedAt time.Time         `json:"generated_at"`
	Entries     []TranscriptEntry `json:"entries"`
	GPA         float64           `json:"gpa"`
}

// NewTranscript builds a transcript for the student with entries
// ordered by course code ascending.
func NewTranscript(s *Student) *Transcript {
	t := &Transcript{
		StudentID:   s.ID,
		RegNo:       s.RegNo,
		FullName:    s.FullName,
		GeneratedAt: time.Now(),
		Entries:     make([]TranscriptEntry, 0, s.GradedCount()),
		GPA:         s.GPA(),
	}
	for _, code := range s.EnrolledCourses() {
		score, ok := s.Score(code)
		if !ok {
			continue
		}
		grade, _ := s.LetterGrade(code)
		t.Entries = append(t.Entries, TranscriptEntry{
			CourseCode:  code,
			Score:       score,
			LetterGrade: grade,
			Points:      grade.Points(),
			Description: grade.Description(),
		})
	}
	return t
}
