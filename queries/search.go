package queries

import (
	"context"
	"fmt"

	"cfb-nil-service/models"

	"github.com/jmoiron/sqlx"
)

type SearchDBConnection struct {
	*sqlx.DB
}

type Search interface {
	SearchPlayers(ctx context.Context, criteria SearchCriteria) (models.SearchResultModel, error)
}

// SearchCriteria holds the advanced-search filters. Zero values mean "no
// constraint"; unknown SortBy values fall back to valuation ordering.
type SearchCriteria struct {
	Position     string
	Team         string
	BudgetMin    int
	BudgetMax    int
	PortalOnly   bool
	MinSacks     float64
	MinTackles   int
	MinPassYards int
	MinRushYards int
	MinRecYards  int
	MinTotalTds  int
	SortBy       string
	Limit        int
	Offset       int
}

// "Current" valuation and "active" portal entry are the most recent row per
// player: latest valuation_date / entry_date, ties broken by latest
// created_at. The LATERAL joins keep the projection one row per player even
// when historical rows coexist.
const currentValuationJoin = `
	LEFT JOIN LATERAL (
		SELECT valuation_usd, instagram_followers, twitter_followers, tiktok_followers, valuation_date, source
		FROM nil_valuations
		WHERE player_id = p.id
		ORDER BY valuation_date DESC NULLS LAST, created_at DESC
		LIMIT 1
	) n ON true`

const activePortalJoin = `
	LEFT JOIN LATERAL (
		SELECT status, entry_date, transfer_year, from_team_id
		FROM portal_entries
		WHERE player_id = p.id
		ORDER BY entry_date DESC, created_at DESC
		LIMIT 1
	) pe ON true`

const totalTdsExpr = `COALESCE(s.pass_tds, 0) + COALESCE(s.rush_tds, 0) + COALESCE(s.rec_tds, 0)`

// sortColumns whitelists the sortable columns. Anything else falls back to
// nil_value ordering rather than erroring.
var sortColumns = map[string]string{
	"nil_value":  "n.valuation_usd",
	"sacks":      "s.sacks",
	"tackles":    "s.tackles",
	"pass_yards": "s.pass_yards",
	"rush_yards": "s.rush_yards",
	"rec_yards":  "s.rec_yards",
}

func (c SearchCriteria) budgetBounds() (int, int) {
	min := c.BudgetMin
	if min < 0 {
		min = 0
	}
	max := c.BudgetMax
	if max <= 0 {
		max = maxBudget
	}
	return min, max
}

// budgetAndPortal applies the predicates shared between the player query and
// the position facet query. The budget bounds always apply, so search covers
// the valued player population.
func (c SearchCriteria) budgetAndPortal(b *whereBuilder) {
	min, max := c.budgetBounds()
	b.add("n.valuation_usd >= ?", min)
	b.add("n.valuation_usd <= ?", max)
	if c.PortalOnly {
		b.add("pe.status = ?", models.PortalStatusEntered)
	}
}

func (p *SearchDBConnection) SearchPlayers(ctx context.Context, criteria SearchCriteria) (models.SearchResultModel, error) {
	result := models.SearchResultModel{}

	b := &whereBuilder{}
	criteria.budgetAndPortal(b)
	if criteria.Position != "" {
		b.add("p.position = ?", criteria.Position)
	}
	if criteria.Team != "" {
		b.add("t.name ILIKE ?", "%"+criteria.Team+"%")
	}
	// MISSING STATS COUNT AS ZERO, SO ANY POSITIVE THRESHOLD EXCLUDES
	// PLAYERS WITH NO RECORDED STAT IN THAT CATEGORY
	if criteria.MinSacks > 0 {
		b.add("COALESCE(s.sacks, 0) >= ?", criteria.MinSacks)
	}
	if criteria.MinTackles > 0 {
		b.add("COALESCE(s.tackles, 0) >= ?", criteria.MinTackles)
	}
	if criteria.MinPassYards > 0 {
		b.add("COALESCE(s.pass_yards, 0) >= ?", criteria.MinPassYards)
	}
	if criteria.MinRushYards > 0 {
		b.add("COALESCE(s.rush_yards, 0) >= ?", criteria.MinRushYards)
	}
	if criteria.MinRecYards > 0 {
		b.add("COALESCE(s.rec_yards, 0) >= ?", criteria.MinRecYards)
	}
	if criteria.MinTotalTds > 0 {
		b.add(totalTdsExpr+" >= ?", criteria.MinTotalTds)
	}

	sortColumn, ok := sortColumns[criteria.SortBy]
	if !ok {
		sortColumn = sortColumns["nil_value"]
	}

	query := fmt.Sprintf(`
		SELECT
		p.id, p.name, p.position, p.height_inches, p.weight_lbs, p.class_year,
		t.name AS team, t.conference, t.logo_url AS team_logo,
		n.valuation_usd AS nil_value,
		n.instagram_followers, n.twitter_followers, n.tiktok_followers,
		pe.status AS portal_status, pe.entry_date AS portal_entry_date,
		s.games_played, s.games_started,
		s.pass_yards, s.pass_tds, s.interceptions, s.completion_pct, s.qb_rating,
		s.rush_yards, s.rush_tds, s.yards_per_carry,
		s.receptions, s.rec_yards, s.rec_tds, s.yards_per_rec,
		s.tackles, s.solo_tackles, s.sacks, s.tfl, s.qb_hurries,
		s.forced_fumbles, s.pass_deflections, s.sacks_allowed, s.pancakes, s.penalties,
		%s AS total_tds
		FROM players p
		LEFT JOIN teams t ON t.id = p.current_team_id%s%s
		LEFT JOIN player_stats s ON s.player_id = p.id AND s.season = %d
		%s
		ORDER BY %s DESC NULLS LAST, n.valuation_usd DESC NULLS LAST
		LIMIT %s OFFSET %s
		`,
		totalTdsExpr, currentValuationJoin, activePortalJoin, currentSeason,
		b.where(), sortColumn,
		b.bind(clampLimit(criteria.Limit)), b.bind(clampOffset(criteria.Offset)),
	)

	if err := p.DB.SelectContext(ctx, &result.Players, query, b.args...); err != nil {
		return models.SearchResultModel{}, fmt.Errorf("searching players: %w", err)
	}
	result.Total = len(result.Players)

	// POSITION FACETS HOLD THE BUDGET/PORTAL FILTERS BUT NOT THE POSITION
	// FILTER, SO SWITCHING POSITION TABS DOES NOT RESHUFFLE THE OTHER COUNTS
	fb := &whereBuilder{}
	criteria.budgetAndPortal(fb)
	facetQuery := fmt.Sprintf(`
		SELECT p.position, COUNT(*) AS count
		FROM players p%s%s
		%s
		GROUP BY p.position
		ORDER BY count DESC
		`, currentValuationJoin, activePortalJoin, fb.where())

	if err := p.DB.SelectContext(ctx, &result.Facets.Positions, facetQuery, fb.args...); err != nil {
		return models.SearchResultModel{}, fmt.Errorf("counting positions: %w", err)
	}

	budgetQuery := `
		SELECT
		MIN(valuation_usd) AS min_nil,
		MAX(valuation_usd) AS max_nil,
		AVG(valuation_usd)::int AS avg_nil
		FROM nil_valuations
		`
	if err := p.DB.GetContext(ctx, &result.Facets.BudgetRange, budgetQuery); err != nil {
		return models.SearchResultModel{}, fmt.Errorf("aggregating budget range: %w", err)
	}

	return result, nil
}
