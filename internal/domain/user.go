package domain

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is a contributor, candidate or moderator. The edit counters are
// maintained in the same transaction as the edit status transitions that
// move them, and can always be recomputed from the edits table.
type User struct {
	ID            uuid.UUID
	PublicID      string
	Name          string
	Role          UserRole
	EditsAccepted int
	EditsRejected int
	EditsPending  int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CounterDelta is an increment applied to a user's edit counters.
type CounterDelta struct {
	Pending  int
	Accepted int
	Rejected int
}

// IsZero reports whether the delta changes nothing.
func (d CounterDelta) IsZero() bool {
	return d.Pending == 0 && d.Accepted == 0 && d.Rejected == 0
}

// UserSummary is the public, embeddable view of a user attached to edits.
type UserSummary struct {
	PublicID      string     `json:"publicId"`
	Name          string     `json:"name"`
	Role          UserRole   `json:"role"`
	EditsAccepted int        `json:"editsAccepted"`
	EditsRejected int        `json:"editsRejected"`
	EditsPending  int        `json:"editsPending"`
	Trust         TrustLevel `json:"trust"`
}

// publicIDEncoding is lowercase unpadded base32; 10 random bytes encode to
// exactly 16 characters.
var publicIDEncoding = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)

// NewPublicID returns a fresh opaque external identifier ("u_" followed by
// 16 base32 characters). Internal UUIDs never leave the service.
func NewPublicID() string {
	var b [10]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(fmt.Sprintf("domain: read random bytes: %v", err))
	}
	return "u_" + publicIDEncoding.EncodeToString(b[:])
}

// IsPublicID reports whether s has the shape produced by NewPublicID.
func IsPublicID(s string) bool {
	if len(s) != 18 || !strings.HasPrefix(s, "u_") {
		return false
	}
	_, err := publicIDEncoding.DecodeString(s[2:])
	return err == nil
}
