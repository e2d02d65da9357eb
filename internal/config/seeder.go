package config

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"palmtec-registry/internal/adapters/persistence/models"
	"palmtec-registry/internal/pkg/logger"
	"palmtec-registry/internal/pkg/password"
)

// Seeder handles database seeding
type Seeder struct {
	db  *gorm.DB
	cfg SeedConfig
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, cfg SeedConfig) *Seeder {
	return &Seeder{db: db, cfg: cfg}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	if s.cfg.Username == "" {
		return nil
	}

	created, err := s.seedAdminUser()
	if err != nil {
		return fmt.Errorf("admin seeder: %w", err)
	}
	if created {
		logger.Info("Admin user created", zap.String("username", s.cfg.Username))
	}
	return nil
}

// seedAdminUser creates the configured account unless the username is taken
func (s *Seeder) seedAdminUser() (bool, error) {
	if s.cfg.Email == "" || s.cfg.Password == "" {
		return false, errors.New("SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD are required with SEED_ADMIN_USERNAME")
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("username = ?", s.cfg.Username).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	hashedPassword, err := password.Hash(s.cfg.Password)
	if err != nil {
		return false, err
	}

	admin := &models.User{
		Username:   s.cfg.Username,
		Email:      s.cfg.Email,
		Password:   hashedPassword,
		Role:       "admin",
		IsVerified: true,
		IsActive:   true,
	}
	if err := s.db.Create(admin).Error; err != nil {
		return false, err
	}
	return true, nil
}
