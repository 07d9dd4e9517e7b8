package tournament

import "context"

// Repository describes tournament and season persistence needs from
// use cases.
type Repository interface {
	CreateTournament(ctx context.Context, t Tournament) error
	GetTournament(ctx context.Context, tournamentID string) (Tournament, bool, error)
	GetTournamentByName(ctx context.Context, organizerID, name string) (Tournament, bool, error)
	ListTournamentsByOrganizer(ctx context.Context, organizerID string) ([]Tournament, error)

	CreateSeason(ctx context.Context, s Season) error
	GetSeason(ctx context.Context, seasonID string) (Season, bool, error)
	UpdateSeason(ctx context.Context, s Season) error
	ListSeasonsByTournament(ctx context.Context, tournamentID string) ([]Season, error)
	ListSeasonsByOrganizer(ctx context.Context, organizerID string) ([]Season, error)
}
