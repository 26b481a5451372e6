package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the CRM owner account. The API is single-tenant: one user
// owns all contacts, so there is no ownership column on other tables.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	FirstName string    `gorm:"not null" json:"firstName"`
	LastName  string    `gorm:"not null" json:"lastName"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `json:"-"` // bcrypt hash, never serialized

	LastLoginAt *time.Time `json:"lastLoginAt"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
