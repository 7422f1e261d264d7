// Package teams serves the playoff field to the HTTP layer.
package teams

import domainteams "github.com/avatarneil/bracket.build/internal/domain/teams"

// Service answers team queries from the playoff field tables.
type Service struct{}

// NewService constructs a Service.
func NewService() *Service {
	return &Service{}
}

// Teams returns the full playoff field, AFC seeds first.
func (s *Service) Teams() []domainteams.Team {
	return domainteams.All()
}

// ByConference returns one conference's field in seed order.
func (s *Service) ByConference(conference domainteams.Conference) []domainteams.Team {
	return domainteams.Seeded(conference)
}

// TeamByID returns a single team if present.
func (s *Service) TeamByID(id string) (domainteams.Team, bool) {
	t, ok := domainteams.ByID(id)
	if !ok {
		return domainteams.Team{}, false
	}
	return *t, true
}
