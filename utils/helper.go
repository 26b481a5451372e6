package utils

import "github.com/google/uuid"

// StringToUUIDPtr converts a string to UUID pointer
func StringToUUIDPtr(s string) *uuid.UUID {
	if s == "" {
		return nil
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &u
}

// StringPtr returns a pointer to the string value
func StringPtr(s string) *string {
	return &s
}

// DerefOr returns the pointed-to string, or fallback when p is nil.
func DerefOr(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}
