package queries

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type DashboardTestSuite struct {
	suite.Suite
	db   *sqlx.DB
	mock sqlmock.Sqlmock
	conn *DashboardDBConnection
}

// RUNS BEFORE EACH TEST
func (suite *DashboardTestSuite) SetupTest() {
	mockDB, mock, err := sqlmock.New()
	require.NoError(suite.T(), err)

	suite.db = sqlx.NewDb(mockDB, "sqlmock")
	suite.mock = mock
	suite.conn = &DashboardDBConnection{DB: suite.db}
}

func (suite *DashboardTestSuite) TearDownTest() {
	suite.db.Close()
}

func (suite *DashboardTestSuite) TestSummary() {
	suite.mock.ExpectQuery(`SELECT COUNT\(\*\) AS count FROM players`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5400))
	suite.mock.ExpectQuery(`SELECT COUNT\(\*\) AS count FROM portal_entries`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(312))
	suite.mock.ExpectQuery(`COALESCE\(AVG\(valuation_usd\), 0\)::int AS avg`).
		WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(185000))
	suite.mock.ExpectQuery(`COALESCE\(MAX\(valuation_usd\), 0\) AS max`).
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(3200000))
	suite.mock.ExpectQuery(`ORDER BY pe\.entry_date DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"player_name", "status", "nil_value"}).
			AddRow("Nico Iamaleava", "entered", 800000))
	suite.mock.ExpectQuery(`ORDER BY n\.valuation_usd DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"name", "position", "team", "valuation_usd"}).
			AddRow("Arch Manning", "QB", "Texas", 3200000).
			AddRow("Jeremiah Smith", "WR", "Ohio State", 2400000))

	summary, err := suite.conn.Summary(context.Background())

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 5400, summary.Stats.TotalPlayers)
	assert.Equal(suite.T(), 312, summary.Stats.PortalEntries)
	assert.Equal(suite.T(), 185000, summary.Stats.AvgNilValue)
	assert.Equal(suite.T(), 3200000, summary.Stats.TopNilValue)
	require.Len(suite.T(), summary.RecentPortal, 1)
	assert.Equal(suite.T(), "Nico Iamaleava", summary.RecentPortal[0].PlayerName)
	require.Len(suite.T(), summary.TopPlayers, 2)
	assert.Equal(suite.T(), 3200000, summary.TopPlayers[0].NilValue)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

// EMPTY TABLES STILL PRODUCE A ZEROED SUMMARY INSTEAD OF AN ERROR
func (suite *DashboardTestSuite) TestSummary_EmptyStore() {
	suite.mock.ExpectQuery(`SELECT COUNT\(\*\) AS count FROM players`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	suite.mock.ExpectQuery(`SELECT COUNT\(\*\) AS count FROM portal_entries`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	suite.mock.ExpectQuery(`COALESCE\(AVG\(valuation_usd\), 0\)::int AS avg`).
		WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(0))
	suite.mock.ExpectQuery(`COALESCE\(MAX\(valuation_usd\), 0\) AS max`).
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(0))
	suite.mock.ExpectQuery(`ORDER BY pe\.entry_date DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"player_name", "status"}))
	suite.mock.ExpectQuery(`ORDER BY n\.valuation_usd DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"name"}))

	summary, err := suite.conn.Summary(context.Background())

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, summary.Stats.TotalPlayers)
	assert.Empty(suite.T(), summary.RecentPortal)
	assert.Empty(suite.T(), summary.TopPlayers)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *DashboardTestSuite) TestSummary_StoreFailureSurfaces() {
	suite.mock.ExpectQuery(`SELECT COUNT\(\*\) AS count FROM players`).
		WillReturnError(errors.New("connection refused"))

	_, err := suite.conn.Summary(context.Background())

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "counting players")
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func TestDashboardTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardTestSuite))
}
