// Package trust classifies contributors from their edit counters.
// The classification is for display only; it never gates an operation.
package trust

import "github.com/heartmarshall/ballotwiki-backend/internal/domain"

// Thresholds is the threshold table driving Classify.
type Thresholds struct {
	// MinReviewed is the number of decided edits (accepted + rejected)
	// below which a contributor is NEW.
	MinReviewed int
	// MaxPending flags contributors with more open edits than this.
	MaxPending int
	// FlaggedRejectRatio flags contributors whose rejected share of decided
	// edits is at least this value.
	FlaggedRejectRatio float64
	// TrustedMinAccepted and TrustedMaxRejectRatio together define TRUSTED.
	TrustedMinAccepted    int
	TrustedMaxRejectRatio float64
}

// DefaultThresholds returns the thresholds used when none are configured.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinReviewed:           3,
		MaxPending:            25,
		FlaggedRejectRatio:    0.5,
		TrustedMinAccepted:    10,
		TrustedMaxRejectRatio: 0.2,
	}
}

// Classifier maps counters to a trust level.
type Classifier struct {
	t Thresholds
}

// NewClassifier creates a Classifier.
func NewClassifier(t Thresholds) *Classifier {
	return &Classifier{t: t}
}

// Classify evaluates, in order: too many pending edits (FLAGGED), too few
// decided edits (NEW), high rejection share (FLAGGED), enough accepted edits
// with a low rejection share (TRUSTED). Everyone else is REGULAR.
func (c *Classifier) Classify(accepted, rejected, pending int) domain.TrustLevel {
	if c.t.MaxPending > 0 && pending > c.t.MaxPending {
		return domain.TrustLevelFlagged
	}

	reviewed := accepted + rejected
	if reviewed < c.t.MinReviewed || reviewed == 0 {
		return domain.TrustLevelNew
	}

	rejectRatio := float64(rejected) / float64(reviewed)
	if rejectRatio >= c.t.FlaggedRejectRatio {
		return domain.TrustLevelFlagged
	}
	if accepted >= c.t.TrustedMinAccepted && rejectRatio <= c.t.TrustedMaxRejectRatio {
		return domain.TrustLevelTrusted
	}
	return domain.TrustLevelRegular
}

// Summarize builds the public summary of u, including its trust level.
func (c *Classifier) Summarize(u domain.User) domain.UserSummary {
	return domain.UserSummary{
		PublicID:      u.PublicID,
		Name:          u.Name,
		Role:          u.Role,
		EditsAccepted: u.EditsAccepted,
		EditsRejected: u.EditsRejected,
		EditsPending:  u.EditsPending,
		Trust:         c.Classify(u.EditsAccepted, u.EditsRejected, u.EditsPending),
	}
}
