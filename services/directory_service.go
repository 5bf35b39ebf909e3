package services

import (
	"errors"

	"gorm.io/gorm"

	"alumniconnect-api/models"
)

var ErrUserNotFound = errors.New("user not found")

// DirectoryService reads identity records. It is lookup-only: account
// creation and approval belong to the auth service.
type DirectoryService struct {
	db *gorm.DB
}

func NewDirectoryService(db *gorm.DB) *DirectoryService {
	return &DirectoryService{db: db}
}

func (s *DirectoryService) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ListUsers returns approved users, optionally filtered by role and
// department. Unapproved accounts are invisible to the directory.
func (s *DirectoryService) ListUsers(role models.Role, department string) ([]models.User, error) {
	query := s.db.Where("is_approved = ?", true)

	if role != "" {
		query = query.Where("role = ?", role)
	}
	if department != "" {
		query = query.Where("department = ?", department)
	}

	var users []models.User
	if err := query.Order("name ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
