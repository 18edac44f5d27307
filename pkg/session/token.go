package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
)

// tokenBytes is the entropy of a generated session token.
const tokenBytes = 16

// GenerateToken returns a URL-safe random session token.
func GenerateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
