// Package sealer issues opaque tokens that bind a booking flow to the user
// who started it.
package sealer

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
)

const additionalData = "venuehub.booking-flow.v1"

var ErrInvalidToken = errors.New("invalid token")

type Sealer struct {
	aead cipher.AEAD
}

// New builds a Sealer from a base64 encoded 32 byte AES key.
func New(base64Key string) (*Sealer, error) {
	key, err := base64.StdEncoding.DecodeString(base64Key)
	if err != nil {
		return nil, fmt.Errorf("failed to decode key: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("key must be 32 bytes, got %d", len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &Sealer{aead: aead}, nil
}

func (s *Sealer) Seal(userID, flowID string) (string, error) {
	if strings.Contains(userID, ":") {
		return "", fmt.Errorf("user id must not contain ':'")
	}
	plaintext := []byte(userID + ":" + flowID)

	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ct := s.aead.Seal(nonce, nonce, plaintext, []byte(additionalData))
	return base64.RawURLEncoding.EncodeToString(ct), nil
}

// Open returns the user and flow ids sealed into token.
func (s *Sealer) Open(token string) (string, string, error) {
	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", "", ErrInvalidToken
	}

	nonceSize := s.aead.NonceSize()
	if len(data) <= nonceSize+s.aead.Overhead() {
		return "", "", ErrInvalidToken
	}
	nonce, ciphertext := data[:nonceSize], data[nonceSize:]

	pt, err := s.aead.Open(nil, nonce, ciphertext, []byte(additionalData))
	if err != nil {
		return "", "", ErrInvalidToken
	}

	userID, flowID, ok := strings.Cut(string(pt), ":")
	if !ok || userID == "" || flowID == "" {
		return "", "", ErrInvalidToken
	}

	return userID, flowID, nil
}
