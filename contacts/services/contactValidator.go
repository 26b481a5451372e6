package services

import (
	"errors"
	"regexp"
	"strings"

	"personal-crm-backend/db/models"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateContact checks required fields and formats before persistence.
func ValidateContact(contact *models.Contact) error {
	contact.FirstName = strings.TrimSpace(contact.FirstName)
	contact.LastName = strings.TrimSpace(contact.LastName)

	if contact.FirstName == "" {
		return errors.New("first name is required")
	}
	if contact.LastName == "" {
		return errors.New("last name is required")
	}
	if contact.Email != nil && *contact.Email != "" && !emailRegex.MatchString(*contact.Email) {
		return errors.New("email address is not valid")
	}
	return nil
}
