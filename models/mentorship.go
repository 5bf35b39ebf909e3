package models

import "time"

type MentorshipStatus string

const (
	MentorshipStatusPending  MentorshipStatus = "Pending"
	MentorshipStatusAccepted MentorshipStatus = "Accepted"
	MentorshipStatusRejected MentorshipStatus = "Rejected"
)

// ValidTransitionTarget reports whether a status is a legal UpdateStatus
// target. Pending is the creation-only state and can never be re-entered.
func (s MentorshipStatus) ValidTransitionTarget() bool {
	return s == MentorshipStatusAccepted || s == MentorshipStatusRejected
}

// MentorshipRequest is a directed proposal from a student to a named alumni.
// The (student_id, alumni_id) pair is unique among live records: rejection
// keeps the row and still blocks a new request; only removal frees the pair.
type MentorshipRequest struct {
	ID        string           `json:"id" gorm:"primaryKey;size:191"`
	StudentID string           `json:"studentId" gorm:"not null;size:191;uniqueIndex:idx_mentorship_pair"`
	AlumniID  string           `json:"alumniId" gorm:"not null;size:191;uniqueIndex:idx_mentorship_pair"`
	Status    MentorshipStatus `json:"status" gorm:"not null;default:'Pending';size:20"`
	Message   string           `json:"message" gorm:"type:text"`
	CreatedAt time.Time        `json:"createdAt"`

	Student *User `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	Alumni  *User `json:"alumni,omitempty" gorm:"foreignKey:AlumniID"`
}
