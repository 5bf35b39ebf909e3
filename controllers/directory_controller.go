package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"alumniconnect-api/models"
	"alumniconnect-api/services"
	"alumniconnect-api/utils"
)

type DirectoryController struct {
	directory *services.DirectoryService
}

func NewDirectoryController(directory *services.DirectoryService) *DirectoryController {
	return &DirectoryController{directory: directory}
}

// GetUser handles GET /api/users/:id — counterpart profile lookup for the
// chat and mentorship views.
func (dc *DirectoryController) GetUser(c *gin.Context) {
	user, err := dc.directory.GetUserByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.SendError(c, http.StatusNotFound, "User not found")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// ListUsers handles GET /api/users?role=&department= — approved accounts
// only, e.g. the alumni browse list students pick mentors from.
func (dc *DirectoryController) ListUsers(c *gin.Context) {
	role := models.Role(c.Query("role"))
	department := c.Query("department")

	users, err := dc.directory.ListUsers(role, department)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}
