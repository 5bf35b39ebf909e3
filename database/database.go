package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"alumniconnect-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.MentorshipRequest{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Alumni inboxes and student outboxes are both listed newest-first
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_mentorship_alumni_created ON mentorship_requests(alumni_id, created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for mentorship_requests alumni: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_mentorship_student_created ON mentorship_requests(student_id, created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for mentorship_requests student: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_users_role_department ON users(role, department)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for users role/department: %v\n", err)
	}

	return nil
}
