package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

// Public routes back the registration form players fill in themselves.
func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players/lookup", handler.FindPlayerByMobile)
	mux.HandleFunc("POST /v1/seasons/{seasonID}/registrations", handler.RegisterPlayer)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	registerAuthorizedTournamentRoutes(mux, handler, verifier)
	registerAuthorizedSeasonRoutes(mux, handler, verifier)
	registerAuthorizedAuctionRoutes(mux, handler, verifier)
}

func registerAuthorizedTournamentRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/tournaments", RequireAuth(verifier, http.HandlerFunc(handler.CreateTournament)))
	mux.Handle("GET /v1/tournaments", RequireAuth(verifier, http.HandlerFunc(handler.ListTournaments)))
	mux.Handle("POST /v1/tournaments/{tournamentID}/seasons", RequireAuth(verifier, http.HandlerFunc(handler.CreateSeason)))
	mux.Handle("GET /v1/tournaments/{tournamentID}/seasons", RequireAuth(verifier, http.HandlerFunc(handler.ListSeasons)))
	mux.Handle("GET /v1/seasons", RequireAuth(verifier, http.HandlerFunc(handler.ListMySeasons)))
}

func registerAuthorizedSeasonRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("PUT /v1/seasons/{seasonID}/auction-config", RequireAuth(verifier, http.HandlerFunc(handler.ConfigureAuction)))
	mux.Handle("GET /v1/seasons/{seasonID}/auction-config", RequireAuth(verifier, http.HandlerFunc(handler.GetAuctionConfig)))
	mux.Handle("POST /v1/seasons/{seasonID}/teams", RequireAuth(verifier, http.HandlerFunc(handler.RegisterTeams)))
	mux.Handle("GET /v1/seasons/{seasonID}/teams", RequireAuth(verifier, http.HandlerFunc(handler.TeamsOverview)))
	mux.Handle("GET /v1/seasons/{seasonID}/teams/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.TeamDetails)))
	mux.Handle("POST /v1/seasons/{seasonID}/icon-players", RequireAuth(verifier, http.HandlerFunc(handler.AssignIconPlayers)))
	mux.Handle("GET /v1/seasons/{seasonID}/players", RequireAuth(verifier, http.HandlerFunc(handler.ListSeasonPlayers)))
	mux.Handle("POST /v1/seasons/{seasonID}/registrations/close", RequireAuth(verifier, http.HandlerFunc(handler.CloseRegistration)))
	mux.Handle("POST /v1/seasons/{seasonID}/summaries", RequireAuth(verifier, http.HandlerFunc(handler.SendSeasonSummaries)))
}

func registerAuthorizedAuctionRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/seasons/{seasonID}/auction/selection", RequireAuth(verifier, http.HandlerFunc(handler.SelectPlayersForAuction)))
	mux.Handle("GET /v1/seasons/{seasonID}/auction/players", RequireAuth(verifier, http.HandlerFunc(handler.ListAuctionPlayers)))
	mux.Handle("POST /v1/seasons/{seasonID}/auction/start", RequireAuth(verifier, http.HandlerFunc(handler.StartAuction)))
	mux.Handle("POST /v1/seasons/{seasonID}/auction/next-player", RequireAuth(verifier, http.HandlerFunc(handler.NextRandomPlayer)))
	mux.Handle("GET /v1/seasons/{seasonID}/auction/players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.ManualPlayer)))
	mux.Handle("POST /v1/seasons/{seasonID}/auction/bids", RequireAuth(verifier, http.HandlerFunc(handler.ResolveBid)))
	mux.Handle("POST /v1/seasons/{seasonID}/auction/fast-assign", RequireAuth(verifier, http.HandlerFunc(handler.FastAssign)))
	mux.Handle("POST /v1/seasons/{seasonID}/auction/next-round", RequireAuth(verifier, http.HandlerFunc(handler.StartNextRound)))
}
