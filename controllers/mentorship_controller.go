package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"alumniconnect-api/models"
	"alumniconnect-api/services"
)

// MentorshipManager is the slice of the mentorship service this controller
// drives. Satisfied by services.MentorshipService.
type MentorshipManager interface {
	CreateRequest(studentID, alumniID, message string) (string, error)
	ListRequestsForAlumni(alumniID string) ([]models.MentorshipRequest, error)
	ListRequestsForStudent(studentID string) ([]models.MentorshipRequest, error)
	UpdateStatus(requestID, callerID string, status models.MentorshipStatus) error
	RemoveRequest(requestID, callerID string) error
}

type MentorshipController struct {
	mentorship MentorshipManager
}

func NewMentorshipController(mentorship MentorshipManager) *MentorshipController {
	return &MentorshipController{mentorship: mentorship}
}

type SendRequestBody struct {
	AlumniID string `json:"alumniId" binding:"required"`
	Message  string `json:"message"`
}

type UpdateStatusBody struct {
	Status models.MentorshipStatus `json:"status" binding:"required"`
}

// SendRequest handles POST /api/mentorship/request
func (mc *MentorshipController) SendRequest(c *gin.Context) {
	studentID := c.GetString("user_id")

	var body SendRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "alumniId is required"})
		return
	}

	id, err := mc.mentorship.CreateRequest(studentID, body.AlumniID, body.Message)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSelfRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot request mentorship from yourself"})
		case errors.Is(err, services.ErrDuplicateRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Request already sent"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send mentorship request"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Mentorship request sent", "id": id})
}

// GetMyRequests handles GET /api/mentorship/my-requests. Alumni see their
// inbox joined with student profiles; students see what they sent joined
// with alumni profiles. No status filter is applied here.
func (mc *MentorshipController) GetMyRequests(c *gin.Context) {
	userID := c.GetString("user_id")
	role := c.GetString("role")

	var requests []models.MentorshipRequest
	var err error

	if role == string(models.RoleAlumni) {
		requests, err = mc.mentorship.ListRequestsForAlumni(userID)
	} else {
		requests, err = mc.mentorship.ListRequestsForStudent(userID)
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch mentorship requests"})
		return
	}

	c.JSON(http.StatusOK, requests)
}

// UpdateStatus handles PUT /api/mentorship/update/:id
func (mc *MentorshipController) UpdateStatus(c *gin.Context) {
	callerID := c.GetString("user_id")
	requestID := c.Param("id")

	var body UpdateStatusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	if err := mc.mentorship.UpdateStatus(requestID, callerID, body.Status); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be Accepted or Rejected"})
		case errors.Is(err, services.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Mentorship request not found"})
		case errors.Is(err, services.ErrNotAuthorized):
			c.JSON(http.StatusForbidden, gin.H{"error": "Only the requested alumni can update this request"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update mentorship request"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Request %s", body.Status)})
}

// RemoveRequest handles DELETE /api/mentorship/remove/:id. Removal is
// terminal; the pair becomes free for a new request.
func (mc *MentorshipController) RemoveRequest(c *gin.Context) {
	callerID := c.GetString("user_id")
	requestID := c.Param("id")

	if err := mc.mentorship.RemoveRequest(requestID, callerID); err != nil {
		switch {
		case errors.Is(err, services.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Mentorship request not found"})
		case errors.Is(err, services.ErrNotAuthorized):
			c.JSON(http.StatusForbidden, gin.H{"error": "Only the student or alumni on this request can remove it"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove mentorship request"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request removed"})
}
