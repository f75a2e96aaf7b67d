package entity

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
	"github.com/heartmarshall/ballotwiki-backend/internal/fieldstore"
)

// Register adds every editable entity field to reg.
func Register(reg *fieldstore.Registry, pool *pgxpool.Pool) {
	text := fieldstore.Text{}
	url := fieldstore.URL{}
	js := fieldstore.JSON{}

	// Candidates.
	reg.Register(domain.EntityTypeCandidate, "name", text, TextColumn(pool, "candidates", "name"))
	reg.Register(domain.EntityTypeCandidate, "party", text, TextColumn(pool, "candidates", "party"))
	reg.Register(domain.EntityTypeCandidate, "statement", text, TextColumn(pool, "candidates", "statement"))
	reg.Register(domain.EntityTypeCandidate, "website", url, TextColumn(pool, "candidates", "website"))
	reg.Register(domain.EntityTypeCandidate, "bio", text, TextColumn(pool, "candidates", "bio"))
	reg.Register(domain.EntityTypeCandidate, "positions", js, JSONColumn(pool, "candidates", "positions"))
	reg.Register(domain.EntityTypeCandidate, "events", fieldstore.ParticipationSet{}, NewParticipationSet(pool))

	// Races.
	reg.Register(domain.EntityTypeRace, "title", text, TextColumn(pool, "races", "title"))
	reg.Register(domain.EntityTypeRace, "description", text, TextColumn(pool, "races", "description"))
	reg.Register(domain.EntityTypeRace, "district", text, TextColumn(pool, "races", "district"))
	reg.Register(domain.EntityTypeRace, "election_date", fieldstore.Date{}, DateColumn(pool, "races", "election_date"))

	// Offices.
	reg.Register(domain.EntityTypeOffice, "title", text, TextColumn(pool, "offices", "title"))
	reg.Register(domain.EntityTypeOffice, "description", text, TextColumn(pool, "offices", "description"))
	reg.Register(domain.EntityTypeOffice, "jurisdiction", text, TextColumn(pool, "offices", "jurisdiction"))
	reg.Register(domain.EntityTypeOffice, "term_length", text, TextColumn(pool, "offices", "term_length"))

	// Guides.
	reg.Register(domain.EntityTypeGuide, "title", text, TextColumn(pool, "guides", "title"))
	reg.Register(domain.EntityTypeGuide, "body", text, TextColumn(pool, "guides", "body"))
	reg.Register(domain.EntityTypeGuide, "recommendations", js, JSONColumn(pool, "guides", "recommendations"))

	// Endorsements.
	reg.Register(domain.EntityTypeEndorsement, "endorser", text, TextColumn(pool, "endorsements", "endorser"))
	reg.Register(domain.EntityTypeEndorsement, "statement", text, TextColumn(pool, "endorsements", "statement"))
	reg.Register(domain.EntityTypeEndorsement, "source_url", url, TextColumn(pool, "endorsements", "source_url"))

	// Events.
	reg.Register(domain.EntityTypeEvent, "title", text, TextColumn(pool, "events", "title"))
	reg.Register(domain.EntityTypeEvent, "description", text, TextColumn(pool, "events", "description"))
	reg.Register(domain.EntityTypeEvent, "location", text, TextColumn(pool, "events", "location"))
	reg.Register(domain.EntityTypeEvent, "starts_at", fieldstore.Timestamp{}, TimestampColumn(pool, "events", "starts_at"))
}
