package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/nikunj436/cricketAuction/external/mailer"
	"github.com/nikunj436/cricketAuction/internal/config"
	"github.com/nikunj436/cricketAuction/internal/domain/player"
	"github.com/nikunj436/cricketAuction/internal/domain/team"
	"github.com/nikunj436/cricketAuction/internal/domain/tournament"
	"github.com/nikunj436/cricketAuction/internal/infrastructure/account/accounts"
	"github.com/nikunj436/cricketAuction/internal/infrastructure/repository/memory"
	"github.com/nikunj436/cricketAuction/internal/infrastructure/repository/postgres"
	"github.com/nikunj436/cricketAuction/internal/interfaces/httpapi"
	idgen "github.com/nikunj436/cricketAuction/internal/platform/id"
	"github.com/nikunj436/cricketAuction/internal/platform/resilience"
	"github.com/nikunj436/cricketAuction/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

type repositories struct {
	seasons tournament.Repository
	players player.Repository
	teams   team.Repository
	tx      usecase.TxRunner
}

func NewHTTPServer(cfg config.Config, logger *slog.Logger) (*http.Server, error) {
	repos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	ids := idgen.NewUUIDGenerator()

	tournamentSvc := usecase.NewTournamentService(repos.seasons, ids, logger)
	playerSvc := usecase.NewPlayerService(repos.seasons, repos.players, repos.tx, ids, logger)
	teamSvc := usecase.NewTeamService(repos.seasons, repos.teams, repos.players, repos.tx, ids, logger)
	auctionSvc := usecase.NewAuctionService(repos.seasons, repos.players, repos.teams, repos.tx, ids, logger)

	summarySvc, err := usecase.NewSummaryService(
		repos.seasons,
		repos.teams,
		teamSvc,
		buildMailer(cfg, logger),
		cfg.SummaryWorkers,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("build summary service: %w", err)
	}

	accountsClient := accounts.NewClient(
		&http.Client{Timeout: cfg.AccountsTimeout},
		cfg.AccountsBaseURL,
		cfg.AccountsIntrospectPath,
		resilience.CircuitBreakerConfig{
			Enabled:          cfg.AccountsCircuitEnabled,
			FailureThreshold: cfg.AccountsCircuitFailureCount,
			OpenTimeout:      cfg.AccountsCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.AccountsCircuitHalfOpenReq,
		},
		logger,
	)

	handler := httpapi.NewHandler(tournamentSvc, playerSvc, teamSvc, auctionSvc, summarySvc, logger)
	router := httpapi.NewRouter(handler, accountsClient, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	server.RegisterOnShutdown(summarySvc.Release)

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

// buildRepositories picks the storage backend. Without DB_URL the
// service runs entirely on seeded in-memory repositories, which is the
// local development mode.
func buildRepositories(cfg config.Config, logger *slog.Logger) (repositories, error) {
	if cfg.DBURL == "" {
		logger.Info("DB_URL is empty, using in-memory repositories with seed data")
		seasons := memory.NewTournamentRepository(memory.SeedTournaments(), memory.SeedSeasons())
		players := memory.NewPlayerRepository(memory.SeedPlayers(), memory.SeedPlayerSeasons())
		teams := memory.NewTeamRepository(memory.SeedTeams(), memory.SeedTeamSeasons())
		return repositories{
			seasons: seasons,
			players: players,
			teams:   teams,
			tx:      memory.NewTxRunner(seasons, players, teams),
		}, nil
	}

	db, err := otelsqlx.Connect("postgres", cfg.DBURL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return repositories{}, fmt.Errorf("connect postgres: %w", err)
	}

	return repositories{
		seasons: postgres.NewTournamentRepository(db),
		players: postgres.NewPlayerRepository(db),
		teams:   postgres.NewTeamRepository(db),
		tx:      postgres.NewTxRunner(db),
	}, nil
}

func buildMailer(cfg config.Config, logger *slog.Logger) usecase.Mailer {
	if !cfg.SMTPEnabled {
		return logMailer{logger: logger}
	}

	smtpMailer, err := mailer.NewSMTPMailer(mailer.Config{
		Host: cfg.SMTPHost,
		Port: cfg.SMTPPort,
		User: cfg.SMTPUser,
		Pass: cfg.SMTPPass,
		From: cfg.SMTPFrom,
	})
	if err != nil {
		logger.Error("build smtp mailer failed, falling back to log mailer", "error", err)
		return logMailer{logger: logger}
	}

	return smtpMailer
}

// logMailer stands in for SMTP in environments without a mail relay.
type logMailer struct {
	logger *slog.Logger
}

func (m logMailer) SendRosterSummary(ctx context.Context, summary usecase.RosterSummary) error {
	m.logger.InfoContext(ctx, "roster summary (smtp disabled)",
		"season", summary.SeasonName,
		"team", summary.TeamName,
		"owner_email", summary.OwnerEmail,
		"players", len(summary.Players),
	)
	return nil
}
