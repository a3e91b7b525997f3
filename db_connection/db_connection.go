package dbconnection

import (
	"errors"
	"fmt"

	"cfb-nil-service/queries"

	"github.com/charmbracelet/log"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// DBConnection aggregates one query connection per read concern, all sharing
// a single sqlx pool.
type DBConnection struct {
	*queries.PlayersDBConnection
	*queries.SearchDBConnection
	*queries.ProfileDBConnection
	*queries.TeamsDBConnection
	*queries.PortalDBConnection
	*queries.DashboardDBConnection
}

func NewDBConnection(databaseURL string, cacheModeled bool, logger *log.Logger) (*DBConnection, *sqlx.DB, error) {
	db, connErr := sqlx.Open("postgres", databaseURL)
	if connErr != nil {
		return nil, nil, fmt.Errorf("failed to connect the database!...: %w", connErr)
	}

	if err := db.Ping(); err != nil {
		return nil, nil, fmt.Errorf("database connection failed!: %w", err)
	}

	return &DBConnection{
		PlayersDBConnection:   &queries.PlayersDBConnection{DB: db},
		SearchDBConnection:    &queries.SearchDBConnection{DB: db},
		ProfileDBConnection:   &queries.ProfileDBConnection{DB: db, CacheModeled: cacheModeled, Logger: logger},
		TeamsDBConnection:     &queries.TeamsDBConnection{DB: db},
		PortalDBConnection:    &queries.PortalDBConnection{DB: db},
		DashboardDBConnection: &queries.DashboardDBConnection{DB: db},
	}, db, nil
}

// RunMigrations brings the schema up to date. A database already at the
// latest version is not an error.
func RunMigrations(migrationsPath string, databaseURL string) error {
	m, err := migrate.New("file://"+migrationsPath, databaseURL)
	if err != nil {
		return fmt.Errorf("opening migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}
