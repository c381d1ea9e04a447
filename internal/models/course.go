package models

import "time"

// Course represents a catalog entry. Code and Credits are immutable
// after construction; courses are deactivated, never deleted.
type Course struct {
	Code         string    `json:"code"`
	Title        string    `json:"title"`
	Credits      int       `json:"credits"`
	InstructorID string    `json:"instructor_id,omitempty"`
	Semester     Semester  `json:"semester,omitempty"`
	Department   string    `json:"department,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
