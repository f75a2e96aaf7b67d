package domain

// EntityType identifies the kind of tracked record an edit targets.
type EntityType string

const (
	EntityTypeCandidate   EntityType = "CANDIDATE"
	EntityTypeRace        EntityType = "RACE"
	EntityTypeOffice      EntityType = "OFFICE"
	EntityTypeGuide       EntityType = "GUIDE"
	EntityTypeEndorsement EntityType = "ENDORSEMENT"
	EntityTypeEvent       EntityType = "EVENT"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeCandidate, EntityTypeRace, EntityTypeOffice, EntityTypeGuide,
		EntityTypeEndorsement, EntityTypeEvent:
		return true
	}
	return false
}

// AllEntityTypes returns every supported entity type in a stable order.
func AllEntityTypes() []EntityType {
	return []EntityType{
		EntityTypeCandidate, EntityTypeRace, EntityTypeOffice,
		EntityTypeGuide, EntityTypeEndorsement, EntityTypeEvent,
	}
}

// EditStatus is the lifecycle state of an edit.
//
//	PENDING -> SUPERSEDED  a later submission targets the same field
//	PENDING -> APPLIED     approved while the old value is still current
//	PENDING -> REJECTED    rejected by a moderator
//
// APPROVED exists for API compatibility; approval and application happen in
// one transition, so stored edits are never APPROVED.
type EditStatus string

const (
	EditStatusPending    EditStatus = "PENDING"
	EditStatusApproved   EditStatus = "APPROVED"
	EditStatusRejected   EditStatus = "REJECTED"
	EditStatusApplied    EditStatus = "APPLIED"
	EditStatusSuperseded EditStatus = "SUPERSEDED"
)

func (s EditStatus) String() string { return string(s) }

func (s EditStatus) IsValid() bool {
	switch s {
	case EditStatusPending, EditStatusApproved, EditStatusRejected,
		EditStatusApplied, EditStatusSuperseded:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s EditStatus) IsTerminal() bool {
	switch s {
	case EditStatusRejected, EditStatusApplied, EditStatusSuperseded:
		return true
	}
	return false
}

// Decision is a moderator's verdict on a pending edit.
type Decision string

const (
	DecisionApproved Decision = "APPROVED"
	DecisionRejected Decision = "REJECTED"
)

func (d Decision) String() string { return string(d) }

func (d Decision) IsValid() bool {
	return d == DecisionApproved || d == DecisionRejected
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleCommunity UserRole = "COMMUNITY"
	UserRoleCandidate UserRole = "CANDIDATE"
	UserRoleModerator UserRole = "MODERATOR"
	UserRoleAdmin     UserRole = "ADMIN"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleCommunity, UserRoleCandidate, UserRoleModerator, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// CanModerate reports whether the role may approve or reject edits.
func (r UserRole) CanModerate() bool {
	return r == UserRoleModerator || r == UserRoleAdmin
}

// TrustLevel is a derived, non-authoritative classification of a contributor.
type TrustLevel string

const (
	TrustLevelNew     TrustLevel = "NEW"
	TrustLevelRegular TrustLevel = "REGULAR"
	TrustLevelTrusted TrustLevel = "TRUSTED"
	TrustLevelFlagged TrustLevel = "FLAGGED"
)

func (t TrustLevel) String() string { return string(t) }
