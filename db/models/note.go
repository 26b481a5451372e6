package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Note is a free-form text entry attached to a contact.
type Note struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	ContactID uuid.UUID `gorm:"type:uuid;not null;index" json:"contactId"`
	Contact   *Contact  `gorm:"foreignKey:ContactID" json:"contact,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
