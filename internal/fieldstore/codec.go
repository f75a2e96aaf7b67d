package fieldstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Codec interprets the opaque payload stored in an edit for one field.
//
// Canonical validates a raw value and returns the form that is stored and
// compared. Equal compares two canonical values. Display renders a value as
// line-oriented text for diffing.
type Codec interface {
	Canonical(raw string) (string, error)
	Equal(a, b string) bool
	Display(value string) string
}

// ---------------------------------------------------------------------------
// Text
// ---------------------------------------------------------------------------

// Text is a free-form string. Line endings are normalised to "\n" and
// surrounding whitespace is trimmed.
type Text struct{}

func (Text) Canonical(raw string) (string, error) {
	s := strings.ReplaceAll(raw, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.TrimSpace(s), nil
}

func (c Text) Equal(a, b string) bool {
	ca, _ := c.Canonical(a)
	cb, _ := c.Canonical(b)
	return ca == cb
}

func (Text) Display(value string) string { return value }

// ---------------------------------------------------------------------------
// URL
// ---------------------------------------------------------------------------

// URL is a trimmed absolute http(s) URL or the empty string.
type URL struct{}

func (URL) Canonical(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", nil
	}
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return "", errors.New("must be an http(s) URL")
	}
	if strings.ContainsAny(s, " \t\n") {
		return "", errors.New("must not contain whitespace")
	}
	return s, nil
}

func (URL) Equal(a, b string) bool {
	return strings.TrimSpace(a) == strings.TrimSpace(b)
}

func (URL) Display(value string) string { return value }

// ---------------------------------------------------------------------------
// Date
// ---------------------------------------------------------------------------

const dateLayout = "2006-01-02"

// Date is a calendar date in YYYY-MM-DD form, or empty for "unset".
type Date struct{}

func (Date) Canonical(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", nil
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", errors.New("must be a date in YYYY-MM-DD format")
	}
	return d.Format(dateLayout), nil
}

func (c Date) Equal(a, b string) bool {
	ca, errA := c.Canonical(a)
	cb, errB := c.Canonical(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return ca == cb
}

func (Date) Display(value string) string { return value }

// ---------------------------------------------------------------------------
// Timestamp
// ---------------------------------------------------------------------------

// Timestamp is an RFC 3339 instant, stored in UTC, or empty for "unset".
type Timestamp struct{}

func (Timestamp) Canonical(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", nil
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return "", errors.New("must be an RFC 3339 timestamp")
	}
	return ts.UTC().Format(time.RFC3339), nil
}

func (c Timestamp) Equal(a, b string) bool {
	ca, errA := c.Canonical(a)
	cb, errB := c.Canonical(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return ca == cb
}

func (Timestamp) Display(value string) string { return value }

// ---------------------------------------------------------------------------
// JSON
// ---------------------------------------------------------------------------

// JSON is an arbitrary structured payload. The canonical form is compact with
// object keys sorted; Display pretty-prints it so diffs are line-oriented.
type JSON struct{}

func (JSON) Canonical(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", nil
	}
	var v any
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return "", fmt.Errorf("must be valid JSON: %w", err)
	}
	if dec.More() {
		return "", errors.New("must be a single JSON value")
	}
	out, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode JSON: %w", err)
	}
	return string(out), nil
}

func (c JSON) Equal(a, b string) bool {
	ca, errA := c.Canonical(a)
	cb, errB := c.Canonical(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return ca == cb
}

func (JSON) Display(value string) string {
	return indentJSON(value)
}

// ---------------------------------------------------------------------------
// ParticipationSet
// ---------------------------------------------------------------------------

// Participation is one member of a candidate's event participation set.
type Participation struct {
	EventID uuid.UUID `json:"event_id"`
	Status  string    `json:"status"`
}

// Participation statuses.
const (
	ParticipationConfirmed = "CONFIRMED"
	ParticipationInvited   = "INVITED"
	ParticipationDeclined  = "DECLINED"
)

func validParticipationStatus(s string) bool {
	switch s {
	case ParticipationConfirmed, ParticipationInvited, ParticipationDeclined:
		return true
	}
	return false
}

// ParticipationSet is a JSON array of {event_id, status} records. Members
// are keyed by event_id; the canonical form is sorted by event_id.
type ParticipationSet struct{}

func (ParticipationSet) Canonical(raw string) (string, error) {
	members, err := ParseParticipation(raw)
	if err != nil {
		return "", err
	}
	return EncodeParticipation(members), nil
}

func (c ParticipationSet) Equal(a, b string) bool {
	ca, errA := c.Canonical(a)
	cb, errB := c.Canonical(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return ca == cb
}

func (ParticipationSet) Display(value string) string {
	return indentJSON(value)
}

// ParseParticipation decodes and validates a participation set. Duplicate
// event ids are rejected; the result is sorted by event id.
func ParseParticipation(raw string) ([]Participation, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return []Participation{}, nil
	}

	var members []Participation
	if err := json.Unmarshal([]byte(s), &members); err != nil {
		return nil, fmt.Errorf("must be a JSON array of {event_id, status}: %w", err)
	}

	seen := make(map[uuid.UUID]bool, len(members))
	for i := range members {
		m := &members[i]
		if m.EventID == uuid.Nil {
			return nil, fmt.Errorf("item %d: event_id is required", i)
		}
		if seen[m.EventID] {
			return nil, fmt.Errorf("item %d: duplicate event_id %s", i, m.EventID)
		}
		seen[m.EventID] = true

		m.Status = strings.ToUpper(strings.TrimSpace(m.Status))
		if m.Status == "" {
			m.Status = ParticipationConfirmed
		}
		if !validParticipationStatus(m.Status) {
			return nil, fmt.Errorf("item %d: invalid status %q", i, m.Status)
		}
	}

	slices.SortFunc(members, func(a, b Participation) int {
		return bytes.Compare(a.EventID[:], b.EventID[:])
	})

	if members == nil {
		members = []Participation{}
	}
	return members, nil
}

// EncodeParticipation renders members in canonical compact form.
// members must already be sorted.
func EncodeParticipation(members []Participation) string {
	if members == nil {
		members = []Participation{}
	}
	out, _ := json.Marshal(members)
	return string(out)
}

func indentJSON(value string) string {
	if value == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(value), "", "  "); err != nil {
		return value
	}
	return buf.String()
}
