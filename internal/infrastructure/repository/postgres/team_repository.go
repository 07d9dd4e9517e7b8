package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/nikunj436/cricketAuction/internal/domain/team"
)

const teamColumns = `id, name, logo_url, owner_name, owner_email, is_active, created_at`

const teamSeasonColumns = `id, team_id, season_id, icon_player_id, total_budget, remaining_budget,
max_players, current_players, is_active, created_at`

const purchaseColumns = `id, team_season_id, player_id, price, is_icon_player, purchased_at, is_active`

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team) error {
	const query = `
INSERT INTO teams (id, name, logo_url, owner_name, owner_email, is_active, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if _, err := querier(ctx, r.db).ExecContext(ctx, query,
		t.ID, t.Name, t.LogoURL, t.OwnerName, t.OwnerEmail, t.Active, t.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert team: %w", err)
	}

	return nil
}

func (r *TeamRepository) Get(ctx context.Context, teamID string) (team.Team, bool, error) {
	const query = `
SELECT ` + teamColumns + `
FROM teams
WHERE id = $1
  AND is_active`

	var row teamRowModel
	if err := sqlx.GetContext(ctx, querier(ctx, r.db), &row, query, teamID); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *TeamRepository) GetByName(ctx context.Context, name string) (team.Team, bool, error) {
	const query = `
SELECT ` + teamColumns + `
FROM teams
WHERE lower(name) = lower($1)
  AND is_active`

	var row teamRowModel
	if err := sqlx.GetContext(ctx, querier(ctx, r.db), &row, query, name); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team by name: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *TeamRepository) CreateSeasonEntry(ctx context.Context, entry team.SeasonEntry) error {
	const query = `
INSERT INTO team_seasons (id, team_id, season_id, icon_player_id, total_budget, remaining_budget,
                          max_players, current_players, is_active, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	if _, err := querier(ctx, r.db).ExecContext(ctx, query,
		entry.ID, entry.TeamID, entry.SeasonID, nullableID(entry.IconPlayerID),
		entry.TotalBudget, entry.Remaining, entry.MaxPlayers, entry.CurrentPlayers,
		entry.Active, entry.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert team season: %w", err)
	}

	return nil
}

func (r *TeamRepository) UpdateSeasonEntry(ctx context.Context, entry team.SeasonEntry) error {
	const query = `
UPDATE team_seasons
SET icon_player_id = $2,
    remaining_budget = $3,
    current_players = $4,
    is_active = $5
WHERE id = $1`

	if _, err := querier(ctx, r.db).ExecContext(ctx, query,
		entry.ID, nullableID(entry.IconPlayerID), entry.Remaining, entry.CurrentPlayers, entry.Active,
	); err != nil {
		return fmt.Errorf("update team season: %w", err)
	}

	return nil
}

func (r *TeamRepository) GetSeasonEntry(ctx context.Context, seasonID, teamID string) (team.SeasonEntry, bool, error) {
	const query = `
SELECT ` + teamSeasonColumns + `
FROM team_seasons
WHERE season_id = $1
  AND team_id = $2
  AND is_active`

	var row teamSeasonRowModel
	if err := sqlx.GetContext(ctx, querier(ctx, r.db), &row, query, seasonID, teamID); err != nil {
		if isNotFound(err) {
			return team.SeasonEntry{}, false, nil
		}
		return team.SeasonEntry{}, false, fmt.Errorf("get team season: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *TeamRepository) GetSeasonEntryByIconPlayer(ctx context.Context, seasonID, playerID string) (team.SeasonEntry, bool, error) {
	const query = `
SELECT ` + teamSeasonColumns + `
FROM team_seasons
WHERE season_id = $1
  AND icon_player_id = $2
  AND is_active`

	var row teamSeasonRowModel
	if err := sqlx.GetContext(ctx, querier(ctx, r.db), &row, query, seasonID, playerID); err != nil {
		if isNotFound(err) {
			return team.SeasonEntry{}, false, nil
		}
		return team.SeasonEntry{}, false, fmt.Errorf("get team season by icon player: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *TeamRepository) ListBySeason(ctx context.Context, seasonID string) ([]team.SeasonEntry, error) {
	const query = `
SELECT ` + teamSeasonColumns + `
FROM team_seasons
WHERE season_id = $1
  AND is_active
ORDER BY created_at`

	var rows []teamSeasonRowModel
	if err := sqlx.SelectContext(ctx, querier(ctx, r.db), &rows, query, seasonID); err != nil {
		return nil, fmt.Errorf("list team seasons: %w", err)
	}

	out := make([]team.SeasonEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *TeamRepository) CreatePurchase(ctx context.Context, p team.Purchase) error {
	const query = `
INSERT INTO player_purchases (id, team_season_id, player_id, price, is_icon_player, purchased_at, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if _, err := querier(ctx, r.db).ExecContext(ctx, query,
		p.ID, p.TeamSeasonID, p.PlayerID, p.Price, p.IconPlayer, p.PurchasedAt, p.Active,
	); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return team.ErrDuplicatePurchase
		}
		return fmt.Errorf("insert purchase: %w", err)
	}

	return nil
}

func (r *TeamRepository) ListPurchases(ctx context.Context, teamSeasonID string) ([]team.Purchase, error) {
	const query = `
SELECT ` + purchaseColumns + `
FROM player_purchases
WHERE team_season_id = $1
  AND is_active
ORDER BY purchased_at`

	var rows []purchaseRowModel
	if err := sqlx.SelectContext(ctx, querier(ctx, r.db), &rows, query, teamSeasonID); err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}

	out := make([]team.Purchase, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func nullableID(id string) sql.NullString {
	return sql.NullString{String: id, Valid: id != ""}
}
