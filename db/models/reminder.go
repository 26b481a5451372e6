package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reminder is a dated follow-up for a contact.
type Reminder struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	DueDate     time.Time `gorm:"not null;index" json:"dueDate"`
	IsCompleted bool      `gorm:"default:false" json:"isCompleted"`

	ContactID uuid.UUID `gorm:"type:uuid;not null;index" json:"contactId"`
	Contact   *Contact  `gorm:"foreignKey:ContactID" json:"contact,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
