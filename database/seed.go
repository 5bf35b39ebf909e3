package database

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"alumniconnect-api/models"
)

func strPtr(s string) *string { return &s }

// SeedData creates a handful of directory records for development. The auth
// service owns real registration; these rows only exist so the mentorship
// and chat flows have counterparties to talk to.
func SeedData(db *gorm.DB) error {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)

	if userCount > 0 {
		fmt.Println("Database already has data, skipping seed")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	testUsers := []models.User{
		{
			ID:         uuid.New().String(),
			Name:       "Admin",
			Email:      "admin@alumniconnect.test",
			Password:   string(hashed),
			Role:       models.RoleAdmin,
			IsApproved: true,
			Department: "Administration",
			Batch:      "-",
		},
		{
			ID:         uuid.New().String(),
			Name:       "Riya Sen",
			Email:      "riya@alumniconnect.test",
			Password:   string(hashed),
			Role:       models.RoleStudent,
			IsApproved: true,
			Department: "CSE",
			Batch:      "2025",
			RollNumber: strPtr("CSE-2025-042"),
		},
		{
			ID:         uuid.New().String(),
			Name:       "Arjun Mehta",
			Email:      "arjun@alumniconnect.test",
			Password:   string(hashed),
			Role:       models.RoleStudent,
			IsApproved: true,
			Department: "ECE",
			Batch:      "2026",
			RollNumber: strPtr("ECE-2026-017"),
		},
		{
			ID:             uuid.New().String(),
			Name:           "Priya Nair",
			Email:          "priya@alumniconnect.test",
			Password:       string(hashed),
			Role:           models.RoleAlumni,
			IsApproved:     true,
			Department:     "CSE",
			Batch:          "2019",
			CurrentCompany: strPtr("Acme Cloud"),
			JobRole:        strPtr("Backend Engineer"),
		},
		{
			ID:             uuid.New().String(),
			Name:           "Vikram Rao",
			Email:          "vikram@alumniconnect.test",
			Password:       string(hashed),
			Role:           models.RoleAlumni,
			IsApproved:     false, // pending admin approval
			Department:     "ME",
			Batch:          "2018",
			CurrentCompany: strPtr("Torque Motors"),
			JobRole:        strPtr("Design Lead"),
		},
	}

	for _, user := range testUsers {
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", user.Email, err)
		}
	}

	fmt.Printf("Seeded %d users\n", len(testUsers))
	return nil
}
