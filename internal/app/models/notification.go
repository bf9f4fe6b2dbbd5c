package models

import "time"

// Notification is a message addressed to a student.
type Notification struct {
	ID        int64     `json:"notification_id" db:"notification_id"`
	StudentID int64     `json:"-" db:"student_id"`
	Title     string    `json:"title" db:"title"`
	Message   string    `json:"message" db:"message"`
	IsRead    bool      `json:"is_read" db:"is_read"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
