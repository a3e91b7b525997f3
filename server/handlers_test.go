package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"cfb-nil-service/models"
	"cfb-nil-service/queries"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStore satisfies Store with overridable functions so each test can
// script exactly one behavior.
type stubStore struct {
	listPlayers   func(ctx context.Context, criteria queries.ListCriteria) (models.PlayerListPageModel, error)
	searchPlayers func(ctx context.Context, criteria queries.SearchCriteria) (models.SearchResultModel, error)
	getProfile    func(ctx context.Context, playerId uuid.UUID) (models.ProfileModel, error)
	listTeams     func(ctx context.Context, search, conference string) ([]models.TeamModel, error)
	listEntries   func(ctx context.Context, status, position string, limit int) (models.PortalListModel, error)
	summary       func(ctx context.Context) (models.DashboardModel, error)
}

func (s *stubStore) ListPlayers(ctx context.Context, criteria queries.ListCriteria) (models.PlayerListPageModel, error) {
	return s.listPlayers(ctx, criteria)
}

func (s *stubStore) SearchPlayers(ctx context.Context, criteria queries.SearchCriteria) (models.SearchResultModel, error) {
	return s.searchPlayers(ctx, criteria)
}

func (s *stubStore) GetPlayerProfile(ctx context.Context, playerId uuid.UUID) (models.ProfileModel, error) {
	return s.getProfile(ctx, playerId)
}

func (s *stubStore) ListTeams(ctx context.Context, search, conference string) ([]models.TeamModel, error) {
	return s.listTeams(ctx, search, conference)
}

func (s *stubStore) ListEntries(ctx context.Context, status, position string, limit int) (models.PortalListModel, error) {
	return s.listEntries(ctx, status, position, limit)
}

func (s *stubStore) Summary(ctx context.Context) (models.DashboardModel, error) {
	return s.summary(ctx)
}

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func doRequest(store Store, method, target string) *httptest.ResponseRecorder {
	handler := NewHandler(store, testLogger())
	rec := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestHealth(t *testing.T) {
	rec := doRequest(&stubStore{}, http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestPlayerProfile_InvalidId(t *testing.T) {
	rec := doRequest(&stubStore{}, http.MethodGet, "/api/player/not-a-uuid")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid player id"}`, rec.Body.String())
}

func TestPlayerProfile_NotFound(t *testing.T) {
	store := &stubStore{
		getProfile: func(ctx context.Context, playerId uuid.UUID) (models.ProfileModel, error) {
			return models.ProfileModel{}, queries.ErrNotFound
		},
	}

	rec := doRequest(store, http.MethodGet, "/api/player/"+uuid.NewString())

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"player not found"}`, rec.Body.String())
}

func TestPlayerProfile_StoreFailure(t *testing.T) {
	store := &stubStore{
		getProfile: func(ctx context.Context, playerId uuid.UUID) (models.ProfileModel, error) {
			return models.ProfileModel{}, errors.New("connection refused")
		},
	}

	rec := doRequest(store, http.MethodGet, "/api/player/"+uuid.NewString())

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error":"failed to fetch player"}`, rec.Body.String())
}

func TestPlayerProfile_Success(t *testing.T) {
	playerId := uuid.New()
	var gotId uuid.UUID
	store := &stubStore{
		getProfile: func(ctx context.Context, id uuid.UUID) (models.ProfileModel, error) {
			gotId = id
			return models.ProfileModel{
				Player: models.PlayerProfileModel{PlayerId: id, Name: "Jalen Carter"},
			}, nil
		},
	}

	rec := doRequest(store, http.MethodGet, "/api/player/"+playerId.String())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, playerId, gotId)

	var body models.ProfileModel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Jalen Carter", body.Player.Name)
}

func TestSearchPlayers_ParsesQueryParams(t *testing.T) {
	var got queries.SearchCriteria
	store := &stubStore{
		searchPlayers: func(ctx context.Context, criteria queries.SearchCriteria) (models.SearchResultModel, error) {
			got = criteria
			return models.SearchResultModel{}, nil
		},
	}

	rec := doRequest(store, http.MethodGet,
		"/api/search?position=EDGE&team=georgia&minBudget=50000&maxBudget=900000&portalOnly=true&minSacks=5.5&minTDs=8&sortBy=sacks&limit=10&offset=20")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "EDGE", got.Position)
	assert.Equal(t, "georgia", got.Team)
	assert.Equal(t, 50000, got.BudgetMin)
	assert.Equal(t, 900000, got.BudgetMax)
	assert.True(t, got.PortalOnly)
	assert.Equal(t, 5.5, got.MinSacks)
	assert.Equal(t, 8, got.MinTotalTds)
	assert.Equal(t, "sacks", got.SortBy)
	assert.Equal(t, 10, got.Limit)
	assert.Equal(t, 20, got.Offset)
}

// MALFORMED AND NEGATIVE NUMBERS MEAN "NO CONSTRAINT", NOT A 400
func TestSearchPlayers_IgnoresMalformedParams(t *testing.T) {
	var got queries.SearchCriteria
	store := &stubStore{
		searchPlayers: func(ctx context.Context, criteria queries.SearchCriteria) (models.SearchResultModel, error) {
			got = criteria
			return models.SearchResultModel{}, nil
		},
	}

	rec := doRequest(store, http.MethodGet,
		"/api/search?minBudget=lots&maxBudget=-5&minSacks=NaNish&portalOnly=yes&limit=abc")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, got.BudgetMin)
	assert.Equal(t, 0, got.BudgetMax)
	assert.Equal(t, float64(0), got.MinSacks)
	assert.False(t, got.PortalOnly)
	assert.Equal(t, 0, got.Limit)
}

func TestListPlayers_StoreFailure(t *testing.T) {
	store := &stubStore{
		listPlayers: func(ctx context.Context, criteria queries.ListCriteria) (models.PlayerListPageModel, error) {
			return models.PlayerListPageModel{}, errors.New("connection refused")
		},
	}

	rec := doRequest(store, http.MethodGet, "/api/players")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error":"failed to fetch players"}`, rec.Body.String())
}

func TestListTeams_PassesFilters(t *testing.T) {
	var gotSearch, gotConference string
	store := &stubStore{
		listTeams: func(ctx context.Context, search, conference string) ([]models.TeamModel, error) {
			gotSearch, gotConference = search, conference
			return []models.TeamModel{{Name: "Texas"}}, nil
		},
	}

	rec := doRequest(store, http.MethodGet, "/api/teams?search=tex&conference=SEC")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tex", gotSearch)
	assert.Equal(t, "SEC", gotConference)
	assert.Contains(t, rec.Body.String(), `"Texas"`)
}

func TestListPortal_PassesFilters(t *testing.T) {
	var gotStatus, gotPosition string
	var gotLimit int
	store := &stubStore{
		listEntries: func(ctx context.Context, status, position string, limit int) (models.PortalListModel, error) {
			gotStatus, gotPosition, gotLimit = status, position, limit
			return models.PortalListModel{}, nil
		},
	}

	rec := doRequest(store, http.MethodGet, "/api/portal?status=entered&position=QB&limit=25")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "entered", gotStatus)
	assert.Equal(t, "QB", gotPosition)
	assert.Equal(t, 25, gotLimit)
}

func TestDashboard(t *testing.T) {
	store := &stubStore{
		summary: func(ctx context.Context) (models.DashboardModel, error) {
			return models.DashboardModel{
				Stats: models.DashboardStatsModel{TotalPlayers: 5400, TopNilValue: 3200000},
			}, nil
		},
	}

	rec := doRequest(store, http.MethodGet, "/api/dashboard")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body models.DashboardModel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 5400, body.Stats.TotalPlayers)
	assert.Equal(t, 3200000, body.Stats.TopNilValue)
}
