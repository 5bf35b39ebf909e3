package repositories

import (
	"errors"

	"gorm.io/gorm"

	"alumniconnect-api/models"
)

type MentorshipRepository struct {
	db *gorm.DB
}

func NewMentorshipRepository(db *gorm.DB) *MentorshipRepository {
	return &MentorshipRepository{db: db}
}

// Create inserts a new request row. The composite unique index on
// (student_id, alumni_id) backs the service-level duplicate check.
func (r *MentorshipRepository) Create(request *models.MentorshipRequest) error {
	return r.db.Create(request).Error
}

// FindByID returns the request or nil when no row exists.
func (r *MentorshipRepository) FindByID(id string) (*models.MentorshipRequest, error) {
	var request models.MentorshipRequest
	err := r.db.First(&request, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

// FindByPair returns the live request for the exact (student, alumni) pair,
// regardless of status, or nil when the pair is free.
func (r *MentorshipRepository) FindByPair(studentID, alumniID string) (*models.MentorshipRequest, error) {
	var request models.MentorshipRequest
	err := r.db.Where("student_id = ? AND alumni_id = ?", studentID, alumniID).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

// ListByAlumni returns all requests addressed to the alumni, newest first,
// joined with each requesting student's directory record.
func (r *MentorshipRepository) ListByAlumni(alumniID string) ([]models.MentorshipRequest, error) {
	var requests []models.MentorshipRequest
	err := r.db.Preload("Student").
		Where("alumni_id = ?", alumniID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// ListByStudent returns all requests the student has sent, newest first,
// joined with each alumni's directory record.
func (r *MentorshipRepository) ListByStudent(studentID string) ([]models.MentorshipRequest, error) {
	var requests []models.MentorshipRequest
	err := r.db.Preload("Alumni").
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// UpdateStatus overwrites the status field and nothing else.
func (r *MentorshipRepository) UpdateStatus(id string, status models.MentorshipStatus) error {
	return r.db.Model(&models.MentorshipRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// Delete removes the row, freeing the pair for a new request.
func (r *MentorshipRepository) Delete(id string) error {
	return r.db.Delete(&models.MentorshipRequest{}, "id = ?", id).Error
}
