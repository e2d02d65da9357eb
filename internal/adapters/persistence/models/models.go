package models

import (
	"time"

	"gorm.io/gorm"

	"palmtec-registry/internal/core/domain"
)

// ============================================================
// Auth tables (owned by this service)
// ============================================================

// User represents users table
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Username   string    `gorm:"uniqueIndex;size:150;not null" json:"username"`
	Email      string    `gorm:"uniqueIndex;size:254;not null" json:"email"`
	Password   string    `gorm:"size:255;not null" json:"-"`
	Role       string    `gorm:"size:20;default:'employee'" json:"role"`
	IsVerified bool      `gorm:"default:false" json:"is_verified"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse is the public projection of a user
type UserResponse struct {
	ID         uint   `json:"id,omitempty"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	IsVerified *bool  `json:"is_verified,omitempty"`
}

// ToResponse returns {id, username, email, role}
func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}

// ToLoginResponse also exposes the verification flag
func (u *User) ToLoginResponse() *UserResponse {
	resp := u.ToResponse()
	verified := u.IsVerified
	resp.IsVerified = &verified
	return resp
}

// ToSignupResponse omits the id
func (u *User) ToSignupResponse() *UserResponse {
	resp := u.ToResponse()
	resp.ID = 0
	return resp
}

// ============================================================
// Device tables (Read Only! written by stored procedures)
// ============================================================

// Serialdata represents the serialdata table
type Serialdata struct {
	SerialNumber string     `gorm:"column:serialNumber;primaryKey;size:18"`
	IsApproved   *int       `gorm:"column:isApproved"`
	IsAllocated  *int       `gorm:"column:isAllocated"`
	CreateDate   *time.Time `gorm:"column:createDate"`
	ModifiedDate *time.Time `gorm:"column:modifiedDate"`
}

func (Serialdata) TableName() string {
	return "serialdata"
}

// ToDomain converts the row to the domain type
func (s *Serialdata) ToDomain() domain.SerialNumber {
	return domain.SerialNumber{
		SerialNumber: s.SerialNumber,
		IsApproved:   s.IsApproved,
		IsAllocated:  s.IsAllocated,
		CreateDate:   s.CreateDate,
		ModifiedDate: s.ModifiedDate,
	}
}

// AutoMigrate creates the tables owned by this service.
// serialdata and palmtec_upi_details are managed alongside their stored
// procedures and are never migrated from here.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&User{})
}
