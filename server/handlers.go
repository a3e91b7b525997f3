package server

import (
	"errors"
	"net/http"
	"strconv"

	"cfb-nil-service/queries"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Store is everything the HTTP layer needs from the data store, satisfied by
// dbconnection.DBConnection and by stubs in tests.
type Store interface {
	queries.Players
	queries.Search
	queries.Profiles
	queries.Teams
	queries.Portal
	queries.Dashboard
}

type Handler struct {
	store  Store
	logger *log.Logger
}

func NewHandler(store Store, logger *log.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /api/players", h.ListPlayers)
	mux.HandleFunc("GET /api/search", h.SearchPlayers)
	mux.HandleFunc("GET /api/player/{id}", h.PlayerProfile)
	mux.HandleFunc("GET /api/teams", h.ListTeams)
	mux.HandleFunc("GET /api/portal", h.ListPortal)
	mux.HandleFunc("GET /api/dashboard", h.Dashboard)
	return mux
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	criteria := queries.ListCriteria{
		Search:   q.Get("search"),
		Position: q.Get("position"),
		Team:     q.Get("team"),
		Limit:    queryInt(q.Get("limit")),
		Offset:   queryInt(q.Get("offset")),
	}

	page, err := h.store.ListPlayers(r.Context(), criteria)
	if err != nil {
		h.storeFailure(w, "failed to fetch players", err)
		return
	}
	writeJSON(w, http.StatusOK, page, h.logger)
}

func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	criteria := queries.SearchCriteria{
		Position:     q.Get("position"),
		Team:         q.Get("team"),
		BudgetMin:    queryInt(q.Get("minBudget")),
		BudgetMax:    queryInt(q.Get("maxBudget")),
		PortalOnly:   q.Get("portalOnly") == "true",
		MinSacks:     queryFloat(q.Get("minSacks")),
		MinTackles:   queryInt(q.Get("minTackles")),
		MinPassYards: queryInt(q.Get("minPassYards")),
		MinRushYards: queryInt(q.Get("minRushYards")),
		MinRecYards:  queryInt(q.Get("minRecYards")),
		MinTotalTds:  queryInt(q.Get("minTDs")),
		SortBy:       q.Get("sortBy"),
		Limit:        queryInt(q.Get("limit")),
		Offset:       queryInt(q.Get("offset")),
	}

	result, err := h.store.SearchPlayers(r.Context(), criteria)
	if err != nil {
		h.storeFailure(w, "failed to search players", err)
		return
	}
	writeJSON(w, http.StatusOK, result, h.logger)
}

func (h *Handler) PlayerProfile(w http.ResponseWriter, r *http.Request) {
	playerId, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid player id", h.logger)
		return
	}

	profile, err := h.store.GetPlayerProfile(r.Context(), playerId)
	if errors.Is(err, queries.ErrNotFound) {
		writeError(w, http.StatusNotFound, "player not found", h.logger)
		return
	}
	if err != nil {
		h.storeFailure(w, "failed to fetch player", err)
		return
	}
	writeJSON(w, http.StatusOK, profile, h.logger)
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	teams, err := h.store.ListTeams(r.Context(), q.Get("search"), q.Get("conference"))
	if err != nil {
		h.storeFailure(w, "failed to fetch teams", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"teams": teams}, h.logger)
}

func (h *Handler) ListPortal(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := h.store.ListEntries(r.Context(), q.Get("status"), q.Get("position"), queryInt(q.Get("limit")))
	if err != nil {
		h.storeFailure(w, "failed to fetch portal entries", err)
		return
	}
	writeJSON(w, http.StatusOK, result, h.logger)
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.store.Summary(r.Context())
	if err != nil {
		h.storeFailure(w, "failed to fetch dashboard summary", err)
		return
	}
	writeJSON(w, http.StatusOK, summary, h.logger)
}

// storeFailure maps any non-NotFound query error to 503: the store could not
// produce a complete result and an empty success would be a lie.
func (h *Handler) storeFailure(w http.ResponseWriter, message string, err error) {
	h.logger.Error(message, "err", err)
	writeError(w, http.StatusServiceUnavailable, message, h.logger)
}

// queryInt parses a numeric parameter, treating absent or malformed values
// as "no constraint" rather than failing the request.
func queryInt(raw string) int {
	if raw == "" {
		return 0
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		return 0
	}
	return val
}

func queryFloat(raw string) float64 {
	if raw == "" {
		return 0
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil || val < 0 {
		return 0
	}
	return val
}
