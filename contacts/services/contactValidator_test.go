package services

import (
	"testing"

	"personal-crm-backend/db/models"
	"personal-crm-backend/utils"

	"github.com/stretchr/testify/assert"
)

func TestValidateContact(t *testing.T) {
	tests := []struct {
		name    string
		contact models.Contact
		wantErr string
	}{
		{
			name:    "valid minimal contact",
			contact: models.Contact{FirstName: "John", LastName: "Doe"},
		},
		{
			name:    "missing first name",
			contact: models.Contact{LastName: "Doe"},
			wantErr: "first name is required",
		},
		{
			name:    "whitespace-only last name",
			contact: models.Contact{FirstName: "John", LastName: "   "},
			wantErr: "last name is required",
		},
		{
			name:    "bad email",
			contact: models.Contact{FirstName: "John", LastName: "Doe", Email: utils.StringPtr("not-an-email")},
			wantErr: "email address is not valid",
		},
		{
			name:    "valid email",
			contact: models.Contact{FirstName: "John", LastName: "Doe", Email: utils.StringPtr("john@acme.test")},
		},
		{
			name:    "empty email pointer allowed",
			contact: models.Contact{FirstName: "John", LastName: "Doe", Email: utils.StringPtr("")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateContact(&tt.contact)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateContactTrimsNames(t *testing.T) {
	contact := models.Contact{FirstName: "  John ", LastName: " Doe  "}
	assert.NoError(t, ValidateContact(&contact))
	assert.Equal(t, "John", contact.FirstName)
	assert.Equal(t, "Doe", contact.LastName)
}
