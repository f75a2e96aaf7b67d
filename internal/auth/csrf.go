package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

const (
	csrfNonceSize = 16
	csrfMACSize   = 32
)

// ErrInvalidCSRFToken is returned for malformed, forged or foreign tokens.
var ErrInvalidCSRFToken = errors.New("invalid csrf token")

// CSRFVerifier checks the double-submit tokens minted by the session layer.
// A token is "<nonce>.<mac>" (both base64url), where mac is a keyed BLAKE2b
// hash of the user id and the nonce.
type CSRFVerifier struct {
	key []byte
}

// NewCSRFVerifier creates a verifier. key must be 32 to 64 bytes long.
func NewCSRFVerifier(key string) (*CSRFVerifier, error) {
	if len(key) < 32 || len(key) > blake2b.Size {
		return nil, fmt.Errorf("csrf key must be 32..%d bytes (got %d)", blake2b.Size, len(key))
	}
	return &CSRFVerifier{key: []byte(key)}, nil
}

// Issue mints a token bound to userID.
func (v *CSRFVerifier) Issue(userID uuid.UUID) (string, error) {
	nonce := make([]byte, csrfNonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	mac, err := v.mac(userID, nonce)
	if err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(nonce) + "." + base64.RawURLEncoding.EncodeToString(mac), nil
}

// Verify reports whether token was minted for userID with this verifier's key.
func (v *CSRFVerifier) Verify(userID uuid.UUID, token string) error {
	noncePart, macPart, ok := strings.Cut(token, ".")
	if !ok {
		return ErrInvalidCSRFToken
	}

	nonce, err := base64.RawURLEncoding.DecodeString(noncePart)
	if err != nil || len(nonce) != csrfNonceSize {
		return ErrInvalidCSRFToken
	}
	got, err := base64.RawURLEncoding.DecodeString(macPart)
	if err != nil || len(got) != csrfMACSize {
		return ErrInvalidCSRFToken
	}

	want, err := v.mac(userID, nonce)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare(got, want) != 1 {
		return ErrInvalidCSRFToken
	}
	return nil
}

func (v *CSRFVerifier) mac(userID uuid.UUID, nonce []byte) ([]byte, error) {
	h, err := blake2b.New256(v.key)
	if err != nil {
		return nil, fmt.Errorf("init mac: %w", err)
	}
	h.Write(userID[:])
	h.Write(nonce)
	return h.Sum(nil), nil
}
