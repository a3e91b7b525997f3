package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cfb-nil-service/models"
	"cfb-nil-service/valuation"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type ProfileDBConnection struct {
	*sqlx.DB
	// CacheModeled writes freshly computed valuations back to the store.
	// The write is last-write-wins and safe to repeat; a failure only
	// costs the cache, never the profile.
	CacheModeled bool
	Logger       *log.Logger
}

type Profiles interface {
	GetPlayerProfile(ctx context.Context, playerId uuid.UUID) (models.ProfileModel, error)
}

const modeledSource = "modeled"

func (p *ProfileDBConnection) GetPlayerProfile(ctx context.Context, playerId uuid.UUID) (models.ProfileModel, error) {
	profile := models.ProfileModel{}

	query := fmt.Sprintf(`
		SELECT
		p.id, p.name, p.position, p.height_inches, p.weight_lbs, p.class_year,
		p.hometown_city, p.hometown_state,
		t.name AS team, t.conference, t.logo_url AS team_logo, t.primary_color AS team_color,
		n.valuation_usd AS nil_value,
		n.instagram_followers, n.twitter_followers, n.tiktok_followers,
		n.valuation_date, n.source AS nil_source,
		pe.status AS portal_status, pe.entry_date AS portal_entry_date, pe.transfer_year,
		ft.name AS from_team, ft.logo_url AS from_team_logo,
		s.games_played, s.games_started,
		s.pass_yards, s.pass_tds, s.interceptions, s.completion_pct, s.qb_rating,
		s.rush_yards, s.rush_tds, s.yards_per_carry,
		s.receptions, s.rec_yards, s.rec_tds, s.yards_per_rec,
		s.tackles, s.solo_tackles, s.sacks, s.tfl, s.qb_hurries,
		s.forced_fumbles, s.pass_deflections, s.sacks_allowed, s.pancakes, s.penalties,
		r.star_rating, r.composite_rating, r.national_rank, r.position_rank, r.state_rank,
		r.recruiting_class_year, r.source AS recruiting_source
		FROM players p
		LEFT JOIN teams t ON t.id = p.current_team_id%s%s
		LEFT JOIN teams ft ON ft.id = pe.from_team_id
		LEFT JOIN player_stats s ON s.player_id = p.id AND s.season = %d
		LEFT JOIN recruiting_profiles r ON r.player_id = p.id
		WHERE p.id = $1
		`, currentValuationJoin, activePortalJoin, currentSeason)

	err := p.DB.GetContext(ctx, &profile.Player, query, playerId)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ProfileModel{}, ErrNotFound
	}
	if err != nil {
		return models.ProfileModel{}, fmt.Errorf("fetching player profile: %w", err)
	}

	if profile.Player.NilValue == nil {
		p.fillModeledValuation(ctx, &profile.Player)
	}
	tier := valuation.Tier(derefInt(profile.Player.NilValue))
	profile.Player.NilTier = &tier

	historyQuery := `
		SELECT
		season, team, games,
		pass_completions, pass_attempts, pass_yards, pass_tds, interceptions,
		rush_attempts, rush_yards, rush_tds,
		receptions, rec_yards, rec_tds,
		tackles, solo_tackles, sacks, tfl, qb_hurries,
		interceptions_def, pass_deflections, forced_fumbles
		FROM player_season_history
		WHERE player_id = $1
		ORDER BY season DESC
		`
	if err := p.DB.SelectContext(ctx, &profile.SeasonHistory, historyQuery, playerId); err != nil {
		return models.ProfileModel{}, fmt.Errorf("fetching season history: %w", err)
	}

	logsQuery := `
		SELECT
		opponent, home_away,
		pass_completions, pass_attempts, pass_yards, pass_tds, interceptions,
		rush_attempts, rush_yards, rush_tds,
		receptions, rec_yards, rec_tds,
		tackles, sacks, tfl
		FROM player_game_logs
		WHERE player_id = $1
		ORDER BY game_date ASC
		`
	if err := p.DB.SelectContext(ctx, &profile.GameLogs, logsQuery, playerId); err != nil {
		return models.ProfileModel{}, fmt.Errorf("fetching game logs: %w", err)
	}

	if profile.Player.Position != nil {
		similar, err := p.similarPlayers(ctx, profile.Player)
		if err != nil {
			return models.ProfileModel{}, err
		}
		profile.SimilarPlayers = similar
	}

	return profile, nil
}

// similarPlayers finds the five nearest comparables: same position, ranked by
// absolute valuation distance, skipping the subject and anyone unvalued.
func (p *ProfileDBConnection) similarPlayers(ctx context.Context, player models.PlayerProfileModel) ([]models.SimilarPlayerModel, error) {
	var similar []models.SimilarPlayerModel
	query := fmt.Sprintf(`
		SELECT
		p.id, p.name, p.position,
		t.name AS team, t.logo_url AS team_logo,
		n.valuation_usd AS nil_value,
		pe.status AS portal_status
		FROM players p
		LEFT JOIN teams t ON t.id = p.current_team_id%s%s
		WHERE p.position = $1
		AND p.id != $2
		AND n.valuation_usd IS NOT NULL
		ORDER BY ABS(n.valuation_usd - $3)
		LIMIT 5
		`, currentValuationJoin, activePortalJoin)

	err := p.DB.SelectContext(ctx, &similar, query, *player.Position, player.PlayerId, derefInt(player.NilValue))
	if err != nil {
		return nil, fmt.Errorf("fetching similar players: %w", err)
	}
	return similar, nil
}

// fillModeledValuation estimates a valuation from whatever signals the
// profile row carries and, when caching is on, persists it so the next read
// finds a stored value.
func (p *ProfileDBConnection) fillModeledValuation(ctx context.Context, player *models.PlayerProfileModel) {
	estimate := valuation.Compute(valuation.Factors{
		StarRating:         derefInt(player.StarRating),
		Position:           derefStr(player.Position),
		Conference:         derefStr(player.Conference),
		InstagramFollowers: derefInt(player.InstagramFollowers),
		TwitterFollowers:   derefInt(player.TwitterFollowers),
		TiktokFollowers:    derefInt(player.TiktokFollowers),
		PassingYards:       derefInt(player.PassYards),
		RushingYards:       derefInt(player.RushYards),
		ReceivingYards:     derefInt(player.RecYards),
		Sacks:              derefFloat(player.Sacks),
	})
	source := modeledSource
	player.NilValue = &estimate
	player.NilSource = &source

	if !p.CacheModeled {
		return
	}
	query := `
		INSERT INTO nil_valuations (id, player_id, valuation_usd, valuation_date, source)
		VALUES ($1, $2, $3, CURRENT_DATE, $4)
		ON CONFLICT (player_id) WHERE source = 'modeled'
		DO UPDATE SET valuation_usd = EXCLUDED.valuation_usd, valuation_date = EXCLUDED.valuation_date
		`
	if _, err := p.DB.ExecContext(ctx, query, uuid.New(), player.PlayerId, estimate, modeledSource); err != nil {
		p.logger().Warn("failed to cache modeled valuation", "player_id", player.PlayerId, "err", err)
	}
}

func (p *ProfileDBConnection) logger() *log.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return log.Default()
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func derefFloat(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func derefStr(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
