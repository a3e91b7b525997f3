package queries

import (
	"context"
	"fmt"

	"cfb-nil-service/models"

	"github.com/jmoiron/sqlx"
)

type TeamsDBConnection struct {
	*sqlx.DB
}

type Teams interface {
	ListTeams(ctx context.Context, search string, conference string) ([]models.TeamModel, error)
}

// ListTeams returns every team matching the optional name/conference filters
// with roster-size and average-valuation rollups, richest programs first.
func (t *TeamsDBConnection) ListTeams(ctx context.Context, search string, conference string) ([]models.TeamModel, error) {
	var teams []models.TeamModel

	b := &whereBuilder{}
	if search != "" {
		b.add("t.name ILIKE ?", "%"+search+"%")
	}
	if conference != "" {
		b.add("t.conference = ?", conference)
	}

	query := fmt.Sprintf(`
		SELECT
		t.id, t.name, t.mascot, t.abbreviation, t.conference, t.division,
		t.logo_url, t.primary_color, t.secondary_color,
		COUNT(DISTINCT p.id) AS roster_size,
		COALESCE(AVG(n.valuation_usd), 0)::int AS avg_nil
		FROM teams t
		LEFT JOIN players p ON p.current_team_id = t.id
		LEFT JOIN nil_valuations n ON n.player_id = p.id
		%s
		GROUP BY t.id
		ORDER BY avg_nil DESC
		`, b.where())

	if err := t.DB.SelectContext(ctx, &teams, query, b.args...); err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}
	return teams, nil
}
