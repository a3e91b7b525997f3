package queries

import (
	"context"
	"fmt"

	"cfb-nil-service/models"

	"github.com/jmoiron/sqlx"
)

type DashboardDBConnection struct {
	*sqlx.DB
}

type Dashboard interface {
	Summary(ctx context.Context) (models.DashboardModel, error)
}

// Summary assembles the landing-page numbers: headline counts, the latest
// portal moves, and the valuation leaderboard.
func (d *DashboardDBConnection) Summary(ctx context.Context) (models.DashboardModel, error) {
	summary := models.DashboardModel{}

	if err := d.DB.GetContext(ctx, &summary.Stats.TotalPlayers, `SELECT COUNT(*) AS count FROM players`); err != nil {
		return models.DashboardModel{}, fmt.Errorf("counting players: %w", err)
	}
	if err := d.DB.GetContext(ctx, &summary.Stats.PortalEntries, `SELECT COUNT(*) AS count FROM portal_entries`); err != nil {
		return models.DashboardModel{}, fmt.Errorf("counting portal entries: %w", err)
	}
	if err := d.DB.GetContext(ctx, &summary.Stats.AvgNilValue, `SELECT COALESCE(AVG(valuation_usd), 0)::int AS avg FROM nil_valuations`); err != nil {
		return models.DashboardModel{}, fmt.Errorf("averaging valuations: %w", err)
	}
	if err := d.DB.GetContext(ctx, &summary.Stats.TopNilValue, `SELECT COALESCE(MAX(valuation_usd), 0) AS max FROM nil_valuations`); err != nil {
		return models.DashboardModel{}, fmt.Errorf("finding top valuation: %w", err)
	}

	recentQuery := `
		SELECT
		pl.name AS player_name, pl.position,
		ft.name AS from_team, tt.name AS to_team,
		pe.status,
		n.valuation_usd AS nil_value
		FROM portal_entries pe
		JOIN players pl ON pl.id = pe.player_id
		LEFT JOIN teams ft ON ft.id = pe.from_team_id
		LEFT JOIN teams tt ON tt.id = pe.to_team_id
		LEFT JOIN LATERAL (
			SELECT valuation_usd
			FROM nil_valuations
			WHERE player_id = pl.id
			ORDER BY valuation_date DESC NULLS LAST, created_at DESC
			LIMIT 1
		) n ON true
		ORDER BY pe.entry_date DESC
		LIMIT 5
		`
	if err := d.DB.SelectContext(ctx, &summary.RecentPortal, recentQuery); err != nil {
		return models.DashboardModel{}, fmt.Errorf("fetching recent portal activity: %w", err)
	}

	topQuery := `
		SELECT
		pl.name, pl.position,
		t.name AS team,
		n.valuation_usd
		FROM nil_valuations n
		JOIN players pl ON pl.id = n.player_id
		LEFT JOIN teams t ON t.id = pl.current_team_id
		ORDER BY n.valuation_usd DESC
		LIMIT 5
		`
	if err := d.DB.SelectContext(ctx, &summary.TopPlayers, topQuery); err != nil {
		return models.DashboardModel{}, fmt.Errorf("fetching top players: %w", err)
	}

	return summary, nil
}
