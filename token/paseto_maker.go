package token

import (
	"fmt"
	"time"

	"github.com/o1egl/paseto"
	"golang.org/x/crypto/chacha20poly1305"
)

// PasetoMaker issues and verifies PASETO v2 local (symmetric) tokens.
type PasetoMaker struct {
	codec *paseto.V2
	key   []byte
}

func NewPasetoMaker(symmetricKey string) (*PasetoMaker, error) {
	if len(symmetricKey) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("symmetric key must be exactly %d bytes", chacha20poly1305.KeySize)
	}
	return &PasetoMaker{
		codec: paseto.NewV2(),
		key:   []byte(symmetricKey),
	}, nil
}

// CreateToken issues a token bound to email, valid for duration.
func (m *PasetoMaker) CreateToken(email string, duration time.Duration) (string, error) {
	payload, err := NewPayload(email, duration)
	if err != nil {
		return "", err
	}
	return m.codec.Encrypt(m.key, payload, nil)
}

// VerifyToken decrypts the token and rejects it when expired.
func (m *PasetoMaker) VerifyToken(tok string) (*Payload, error) {
	payload := &Payload{}
	if err := m.codec.Decrypt(tok, m.key, payload, nil); err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if err := payload.Valid(); err != nil {
		return nil, err
	}
	return payload, nil
}
