package models

import "time"

type Teacher struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// TeacherRequest is a pending application for a teacher account.
// Approval copies name/email/hash into a Teacher row and flips Approved.
type TeacherRequest struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Email        string    `gorm:"size:255;index;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Approved     bool      `gorm:"not null;default:false" json:"approved"`
	CreatedAt    time.Time `json:"created_at"`
}
