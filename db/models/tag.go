package models

import (
	"time"

	"github.com/google/uuid"
)

// Tag is a label contacts can be grouped under.
type Tag struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	Name  string    `gorm:"unique;not null" json:"name"`
	Color *string   `gorm:"type:varchar(10)" json:"color"`

	Contacts []Contact `gorm:"many2many:contact_tags;" json:"contacts,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
