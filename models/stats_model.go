package models

// SeasonStatsModel holds the current-season counting stats joined onto player
// projections. Only the position-relevant subset is ever populated, so every
// column is nullable.
type SeasonStatsModel struct {
	GamesPlayed     *int     `db:"games_played" json:"gamesPlayed"`
	GamesStarted    *int     `db:"games_started" json:"gamesStarted"`
	PassYards       *int     `db:"pass_yards" json:"passYards"`
	PassTds         *int     `db:"pass_tds" json:"passTds"`
	Interceptions   *int     `db:"interceptions" json:"interceptions"`
	CompletionPct   *float64 `db:"completion_pct" json:"completionPct"`
	QbRating        *float64 `db:"qb_rating" json:"qbRating"`
	RushYards       *int     `db:"rush_yards" json:"rushYards"`
	RushTds         *int     `db:"rush_tds" json:"rushTds"`
	YardsPerCarry   *float64 `db:"yards_per_carry" json:"yardsPerCarry"`
	Receptions      *int     `db:"receptions" json:"receptions"`
	RecYards        *int     `db:"rec_yards" json:"recYards"`
	RecTds          *int     `db:"rec_tds" json:"recTds"`
	YardsPerRec     *float64 `db:"yards_per_rec" json:"yardsPerRec"`
	Tackles         *int     `db:"tackles" json:"tackles"`
	SoloTackles     *int     `db:"solo_tackles" json:"soloTackles"`
	Sacks           *float64 `db:"sacks" json:"sacks"`
	Tfl             *float64 `db:"tfl" json:"tfl"`
	QbHurries       *int     `db:"qb_hurries" json:"qbHurries"`
	ForcedFumbles   *int     `db:"forced_fumbles" json:"forcedFumbles"`
	PassDeflections *int     `db:"pass_deflections" json:"passDeflections"`
	SacksAllowed    *int     `db:"sacks_allowed" json:"sacksAllowed"`
	Pancakes        *int     `db:"pancakes" json:"pancakes"`
	Penalties       *int     `db:"penalties" json:"penalties"`
}

// SeasonHistoryModel is one season-by-season line from a player's career.
type SeasonHistoryModel struct {
	Season           int      `db:"season" json:"season"`
	Team             *string  `db:"team" json:"team"`
	Games            *int     `db:"games" json:"games"`
	PassCompletions  *int     `db:"pass_completions" json:"passCompletions"`
	PassAttempts     *int     `db:"pass_attempts" json:"passAttempts"`
	PassYards        *int     `db:"pass_yards" json:"passYards"`
	PassTds          *int     `db:"pass_tds" json:"passTds"`
	Interceptions    *int     `db:"interceptions" json:"interceptions"`
	RushAttempts     *int     `db:"rush_attempts" json:"rushAttempts"`
	RushYards        *int     `db:"rush_yards" json:"rushYards"`
	RushTds          *int     `db:"rush_tds" json:"rushTds"`
	Receptions       *int     `db:"receptions" json:"receptions"`
	RecYards         *int     `db:"rec_yards" json:"recYards"`
	RecTds           *int     `db:"rec_tds" json:"recTds"`
	Tackles          *int     `db:"tackles" json:"tackles"`
	SoloTackles      *int     `db:"solo_tackles" json:"soloTackles"`
	Sacks            *float64 `db:"sacks" json:"sacks"`
	Tfl              *float64 `db:"tfl" json:"tfl"`
	QbHurries        *int     `db:"qb_hurries" json:"qbHurries"`
	InterceptionsDef *int     `db:"interceptions_def" json:"interceptionsDef"`
	PassDeflections  *int     `db:"pass_deflections" json:"passDeflections"`
	ForcedFumbles    *int     `db:"forced_fumbles" json:"forcedFumbles"`
}

// GameLogModel is a single-game stat line for the current season.
type GameLogModel struct {
	Opponent        *string  `db:"opponent" json:"opponent"`
	HomeAway        *string  `db:"home_away" json:"homeAway"`
	PassCompletions *int     `db:"pass_completions" json:"passCompletions"`
	PassAttempts    *int     `db:"pass_attempts" json:"passAttempts"`
	PassYards       *int     `db:"pass_yards" json:"passYards"`
	PassTds         *int     `db:"pass_tds" json:"passTds"`
	Interceptions   *int     `db:"interceptions" json:"interceptions"`
	RushAttempts    *int     `db:"rush_attempts" json:"rushAttempts"`
	RushYards       *int     `db:"rush_yards" json:"rushYards"`
	RushTds         *int     `db:"rush_tds" json:"rushTds"`
	Receptions      *int     `db:"receptions" json:"receptions"`
	RecYards        *int     `db:"rec_yards" json:"recYards"`
	RecTds          *int     `db:"rec_tds" json:"recTds"`
	Tackles         *int     `db:"tackles" json:"tackles"`
	Sacks           *float64 `db:"sacks" json:"sacks"`
	Tfl             *float64 `db:"tfl" json:"tfl"`
}
