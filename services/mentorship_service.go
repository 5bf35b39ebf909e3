package services

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"alumniconnect-api/models"
)

var (
	ErrSelfRequest      = errors.New("cannot request mentorship from yourself")
	ErrDuplicateRequest = errors.New("request already sent")
	ErrRequestNotFound  = errors.New("mentorship request not found")
	ErrNotAuthorized    = errors.New("not authorized for this request")
	ErrInvalidStatus    = errors.New("status must be Accepted or Rejected")
)

// MentorshipStore is the persistence contract the service drives.
// Implemented by repositories.MentorshipRepository.
type MentorshipStore interface {
	Create(request *models.MentorshipRequest) error
	FindByID(id string) (*models.MentorshipRequest, error)
	FindByPair(studentID, alumniID string) (*models.MentorshipRequest, error)
	ListByAlumni(alumniID string) ([]models.MentorshipRequest, error)
	ListByStudent(studentID string) ([]models.MentorshipRequest, error)
	UpdateStatus(id string, status models.MentorshipStatus) error
	Delete(id string) error
}

// MentorshipService owns the request lifecycle: Pending → Accepted|Rejected,
// any state → removed. A live row for a (student, alumni) pair blocks a new
// request no matter its status; only removal frees the pair.
type MentorshipService struct {
	store MentorshipStore
}

func NewMentorshipService(store MentorshipStore) *MentorshipService {
	return &MentorshipService{store: store}
}

// CreateRequest opens a new Pending request from studentID to alumniID and
// returns its id.
func (s *MentorshipService) CreateRequest(studentID, alumniID, message string) (string, error) {
	if studentID == alumniID {
		return "", ErrSelfRequest
	}

	existing, err := s.store.FindByPair(studentID, alumniID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		// A rejected-but-not-removed request still blocks re-sending
		return "", ErrDuplicateRequest
	}

	request := &models.MentorshipRequest{
		ID:        uuid.New().String(),
		StudentID: studentID,
		AlumniID:  alumniID,
		Status:    models.MentorshipStatusPending,
		Message:   message,
		CreatedAt: time.Now(),
	}

	if err := s.store.Create(request); err != nil {
		return "", err
	}

	return request.ID, nil
}

// ListRequestsForAlumni returns every request addressed to the alumni,
// joined with student profiles. No status filter; callers filter for display.
func (s *MentorshipService) ListRequestsForAlumni(alumniID string) ([]models.MentorshipRequest, error) {
	return s.store.ListByAlumni(alumniID)
}

// ListRequestsForStudent returns every request the student has sent, joined
// with alumni profiles.
func (s *MentorshipService) ListRequestsForStudent(studentID string) ([]models.MentorshipRequest, error) {
	return s.store.ListByStudent(studentID)
}

// UpdateStatus sets Accepted or Rejected. Only the named alumni may
// transition their own request. Re-updating an already-decided request is
// allowed (last write wins).
func (s *MentorshipService) UpdateStatus(requestID, callerID string, status models.MentorshipStatus) error {
	if !status.ValidTransitionTarget() {
		return ErrInvalidStatus
	}

	request, err := s.store.FindByID(requestID)
	if err != nil {
		return err
	}
	if request == nil {
		return ErrRequestNotFound
	}

	if request.AlumniID != callerID {
		return ErrNotAuthorized
	}

	return s.store.UpdateStatus(requestID, status)
}

// RemoveRequest deletes the request. Either party may remove; afterwards the
// pair is free for a fresh CreateRequest.
func (s *MentorshipService) RemoveRequest(requestID, callerID string) error {
	request, err := s.store.FindByID(requestID)
	if err != nil {
		return err
	}
	if request == nil {
		return ErrRequestNotFound
	}

	if request.StudentID != callerID && request.AlumniID != callerID {
		return ErrNotAuthorized
	}

	return s.store.Delete(requestID)
}
