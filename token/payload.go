package token

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrExpired = errors.New("token has expired")

// Payload is the claim set carried inside every token. ID makes each
// token unique even when issued in the same instant.
type Payload struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiredAt time.Time `json:"expired_at"`
}

func NewPayload(email string, duration time.Duration) (*Payload, error) {
	if email == "" {
		return nil, errors.New("email cannot be empty")
	}
	if duration <= 0 {
		return nil, errors.New("duration must be positive")
	}

	tokenID, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Payload{
		ID:        tokenID,
		Email:     email,
		IssuedAt:  now,
		ExpiredAt: now.Add(duration),
	}, nil
}

// Valid reports whether the payload is still within its lifetime.
func (p *Payload) Valid() error {
	if time.Now().After(p.ExpiredAt) {
		return ErrExpired
	}
	return nil
}
