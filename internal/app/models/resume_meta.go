package models

import "time"

// ResumeMeta records the last generated resume file for a student, based on
// the 'resume_meta' table.
type ResumeMeta struct {
	ID          int64     `json:"id" db:"id"`
	StudentID   int64     `json:"studentId" db:"student_id"`
	FilePath    string    `json:"filePath" db:"file_path"`
	GeneratedAt time.Time `json:"generatedAt" db:"generated_at"`
}
