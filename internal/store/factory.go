package store

import (
	"basepost.app/server/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Users() UserStore {
	return newUserStore(s.queries)
}

func (s *Stores) Sessions() SessionStore {
	return newSessionStore(s.queries)
}

func (s *Stores) SponsorRequests() SponsorRequestStore {
	return newSponsorRequestStore(s.queries)
}

func (s *Stores) FamilyLinks() FamilyLinkStore {
	return newFamilyLinkStore(s.queries)
}

func (s *Stores) SponsorCooldowns() SponsorCooldownStore {
	return newSponsorCooldownStore(s.queries)
}

func (s *Stores) Audit() AuditStore {
	return newAuditStore(s.queries)
}
