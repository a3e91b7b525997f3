package queries

import (
	"context"
	"fmt"

	"cfb-nil-service/models"

	"github.com/jmoiron/sqlx"
)

type PortalDBConnection struct {
	*sqlx.DB
}

type Portal interface {
	ListEntries(ctx context.Context, status string, position string, limit int) (models.PortalListModel, error)
}

// ListEntries returns portal movements newest first, with origin/destination
// teams and the player's current valuation joined on, plus the status rollup
// over the whole portal population.
func (p *PortalDBConnection) ListEntries(ctx context.Context, status string, position string, limit int) (models.PortalListModel, error) {
	result := models.PortalListModel{}

	b := &whereBuilder{}
	if status != "" {
		b.add("pe.status = ?", status)
	}
	if position != "" {
		b.add("pl.position = ?", position)
	}

	query := fmt.Sprintf(`
		SELECT
		pe.id, pe.status, pe.entry_date, pe.commit_date, pe.transfer_year,
		pl.id AS player_id, pl.name AS player_name, pl.position,
		ft.name AS from_team, ft.logo_url AS from_team_logo,
		tt.name AS to_team, tt.logo_url AS to_team_logo,
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
		%s
		ORDER BY pe.entry_date DESC, n.valuation_usd DESC NULLS LAST
		LIMIT %s
		`, b.where(), b.bind(clampLimit(limit)))

	if err := p.DB.SelectContext(ctx, &result.Entries, query, b.args...); err != nil {
		return models.PortalListModel{}, fmt.Errorf("listing portal entries: %w", err)
	}

	statsQuery := `
		SELECT
		COUNT(*) AS total,
		COUNT(*) FILTER (WHERE status = 'entered') AS available,
		COUNT(*) FILTER (WHERE status = 'committed') AS committed,
		COUNT(*) FILTER (WHERE status = 'withdrawn') AS withdrawn
		FROM portal_entries
		`
	if err := p.DB.GetContext(ctx, &result.Stats, statsQuery); err != nil {
		return models.PortalListModel{}, fmt.Errorf("counting portal entries: %w", err)
	}

	return result, nil
}
