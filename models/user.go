package models

import "time"

type Role string

const (
	RoleStudent Role = "Student"
	RoleAlumni  Role = "Alumni"
	RoleAdmin   Role = "Admin"
)

// User is an identity directory record. Registration, login and the admin
// approval flow live in the auth service; this API only reads these rows.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;size:191"`
	Name       string `json:"name" gorm:"not null;size:255"`
	Email      string `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password   string `json:"-" gorm:"not null;size:255"`
	Role       Role   `json:"role" gorm:"not null;default:'Student';size:20"`
	IsApproved bool   `json:"isApproved" gorm:"default:false"`
	Department string `json:"department" gorm:"not null;size:100"`
	Batch      string `json:"batch" gorm:"not null;size:20"`

	// Role-specific fields
	RollNumber     *string `json:"rollNumber,omitempty" gorm:"size:50"`      // students
	CurrentCompany *string `json:"currentCompany,omitempty" gorm:"size:255"` // alumni
	JobRole        *string `json:"jobRole,omitempty" gorm:"size:255"`        // alumni

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
