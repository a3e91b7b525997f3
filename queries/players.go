package queries

import (
	"context"
	"fmt"

	"cfb-nil-service/models"

	"github.com/jmoiron/sqlx"
)

type PlayersDBConnection struct {
	*sqlx.DB
}

type Players interface {
	ListPlayers(ctx context.Context, criteria ListCriteria) (models.PlayerListPageModel, error)
}

// ListCriteria covers the simple listing endpoint: a free-text name filter
// with optional position/team narrowing and pagination.
type ListCriteria struct {
	Search   string
	Position string
	Team     string
	Limit    int
	Offset   int
}

func (c ListCriteria) apply(b *whereBuilder) {
	if c.Search != "" {
		b.add("p.name ILIKE ?", "%"+c.Search+"%")
	}
	if c.Position != "" {
		b.add("p.position = ?", c.Position)
	}
	if c.Team != "" {
		b.add("t.name ILIKE ?", "%"+c.Team+"%")
	}
}

func (p *PlayersDBConnection) ListPlayers(ctx context.Context, criteria ListCriteria) (models.PlayerListPageModel, error) {
	page := models.PlayerListPageModel{
		Limit:  clampLimit(criteria.Limit),
		Offset: clampOffset(criteria.Offset),
	}

	b := &whereBuilder{}
	criteria.apply(b)
	query := fmt.Sprintf(`
		SELECT
		p.id, p.name, p.position, p.height_inches, p.weight_lbs, p.class_year,
		t.name AS team, t.conference, t.logo_url AS team_logo,
		n.valuation_usd AS nil_value,
		n.instagram_followers, n.twitter_followers, n.tiktok_followers,
		pe.status AS portal_status
		FROM players p
		LEFT JOIN teams t ON t.id = p.current_team_id%s%s
		%s
		ORDER BY n.valuation_usd DESC NULLS LAST
		LIMIT %s OFFSET %s
		`, currentValuationJoin, activePortalJoin, b.where(), b.bind(page.Limit), b.bind(page.Offset))

	if err := p.DB.SelectContext(ctx, &page.Players, query, b.args...); err != nil {
		return models.PlayerListPageModel{}, fmt.Errorf("listing players: %w", err)
	}

	cb := &whereBuilder{}
	criteria.apply(cb)
	countQuery := fmt.Sprintf(`
		SELECT COUNT(*) AS total
		FROM players p
		LEFT JOIN teams t ON t.id = p.current_team_id
		%s
		`, cb.where())

	if err := p.DB.GetContext(ctx, &page.Total, countQuery, cb.args...); err != nil {
		return models.PlayerListPageModel{}, fmt.Errorf("counting players: %w", err)
	}

	return page, nil
}
