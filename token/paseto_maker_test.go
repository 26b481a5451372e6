package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testKey = "12345678901234567890123456789012"

func TestPasetoMakerRoundTrip(t *testing.T) {
	maker, err := NewPasetoMaker(testKey)
	require.NoError(t, err)

	email := "owner@example.com"
	issuedBefore := time.Now()

	tok, err := maker.CreateToken(email, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	payload, err := maker.VerifyToken(tok)
	require.NoError(t, err)
	require.Equal(t, email, payload.Email)
	require.NotEqual(t, payload.ID.String(), "00000000-0000-0000-0000-000000000000")
	require.WithinDuration(t, issuedBefore, payload.IssuedAt, time.Second)
	require.WithinDuration(t, issuedBefore.Add(time.Minute), payload.ExpiredAt, time.Second)
}

func TestPasetoMakerExpiredToken(t *testing.T) {
	maker, err := NewPasetoMaker(testKey)
	require.NoError(t, err)

	tok, err := maker.CreateToken("owner@example.com", time.Millisecond)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = maker.VerifyToken(tok)
	require.ErrorContains(t, err, "expired")
}

func TestNewPasetoMakerRejectsShortKey(t *testing.T) {
	_, err := NewPasetoMaker("too-short")
	require.Error(t, err)
}

func TestNewPayloadValidation(t *testing.T) {
	_, err := NewPayload("", time.Minute)
	require.Error(t, err)

	_, err = NewPayload("owner@example.com", 0)
	require.Error(t, err)
}
