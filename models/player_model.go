package models

import (
	"time"

	"github.com/google/uuid"
)

// PlayerListModel is the projection returned by the simple listing endpoint:
// identity plus team, current valuation, social reach, and portal status.
type PlayerListModel struct {
	PlayerId           uuid.UUID `db:"id" json:"playerId"`
	Name               string    `db:"name" json:"name"`
	Position           *string   `db:"position" json:"position"`
	HeightInches       *int      `db:"height_inches" json:"heightInches"`
	WeightLbs          *int      `db:"weight_lbs" json:"weightLbs"`
	ClassYear          *string   `db:"class_year" json:"classYear"`
	Team               *string   `db:"team" json:"team"`
	Conference         *string   `db:"conference" json:"conference"`
	TeamLogo           *string   `db:"team_logo" json:"teamLogo"`
	NilValue           *int      `db:"nil_value" json:"nilValue"`
	InstagramFollowers *int      `db:"instagram_followers" json:"instagramFollowers"`
	TwitterFollowers   *int      `db:"twitter_followers" json:"twitterFollowers"`
	TiktokFollowers    *int      `db:"tiktok_followers" json:"tiktokFollowers"`
	PortalStatus       *string   `db:"portal_status" json:"portalStatus"`
}

// RankedPlayerModel is the advanced-search projection: the listing fields
// plus the current-season stat line and the derived touchdown total.
type RankedPlayerModel struct {
	PlayerId           uuid.UUID  `db:"id" json:"playerId"`
	Name               string     `db:"name" json:"name"`
	Position           *string    `db:"position" json:"position"`
	HeightInches       *int       `db:"height_inches" json:"heightInches"`
	WeightLbs          *int       `db:"weight_lbs" json:"weightLbs"`
	ClassYear          *string    `db:"class_year" json:"classYear"`
	Team               *string    `db:"team" json:"team"`
	Conference         *string    `db:"conference" json:"conference"`
	TeamLogo           *string    `db:"team_logo" json:"teamLogo"`
	NilValue           *int       `db:"nil_value" json:"nilValue"`
	InstagramFollowers *int       `db:"instagram_followers" json:"instagramFollowers"`
	TwitterFollowers   *int       `db:"twitter_followers" json:"twitterFollowers"`
	TiktokFollowers    *int       `db:"tiktok_followers" json:"tiktokFollowers"`
	PortalStatus       *string    `db:"portal_status" json:"portalStatus"`
	PortalEntryDate    *time.Time `db:"portal_entry_date" json:"portalEntryDate"`
	SeasonStatsModel
	TotalTds int `db:"total_tds" json:"totalTds"`
}

// PlayerProfileModel is the full flattened detail row for a single player.
type PlayerProfileModel struct {
	PlayerId           uuid.UUID  `db:"id" json:"playerId"`
	Name               string     `db:"name" json:"name"`
	Position           *string    `db:"position" json:"position"`
	HeightInches       *int       `db:"height_inches" json:"heightInches"`
	WeightLbs          *int       `db:"weight_lbs" json:"weightLbs"`
	ClassYear          *string    `db:"class_year" json:"classYear"`
	HometownCity       *string    `db:"hometown_city" json:"hometownCity"`
	HometownState      *string    `db:"hometown_state" json:"hometownState"`
	Team               *string    `db:"team" json:"team"`
	Conference         *string    `db:"conference" json:"conference"`
	TeamLogo           *string    `db:"team_logo" json:"teamLogo"`
	TeamColor          *string    `db:"team_color" json:"teamColor"`
	NilValue           *int       `db:"nil_value" json:"nilValue"`
	NilTier            *string    `db:"-" json:"nilTier"`
	NilSource          *string    `db:"nil_source" json:"nilSource"`
	ValuationDate      *time.Time `db:"valuation_date" json:"valuationDate"`
	InstagramFollowers *int       `db:"instagram_followers" json:"instagramFollowers"`
	TwitterFollowers   *int       `db:"twitter_followers" json:"twitterFollowers"`
	TiktokFollowers    *int       `db:"tiktok_followers" json:"tiktokFollowers"`
	PortalStatus       *string    `db:"portal_status" json:"portalStatus"`
	PortalEntryDate    *time.Time `db:"portal_entry_date" json:"portalEntryDate"`
	TransferYear       *int       `db:"transfer_year" json:"transferYear"`
	FromTeam           *string    `db:"from_team" json:"fromTeam"`
	FromTeamLogo       *string    `db:"from_team_logo" json:"fromTeamLogo"`
	StarRating         *int       `db:"star_rating" json:"starRating"`
	CompositeRating    *float64   `db:"composite_rating" json:"compositeRating"`
	NationalRank       *int       `db:"national_rank" json:"nationalRank"`
	PositionRank       *int       `db:"position_rank" json:"positionRank"`
	StateRank          *int       `db:"state_rank" json:"stateRank"`
	RecruitingClass    *int       `db:"recruiting_class_year" json:"recruitingClassYear"`
	RecruitingSource   *string    `db:"recruiting_source" json:"recruitingSource"`
	SeasonStatsModel
}

// SimilarPlayerModel is one entry of the nearest-valuation comparables list.
type SimilarPlayerModel struct {
	PlayerId     uuid.UUID `db:"id" json:"playerId"`
	Name         string    `db:"name" json:"name"`
	Position     *string   `db:"position" json:"position"`
	Team         *string   `db:"team" json:"team"`
	TeamLogo     *string   `db:"team_logo" json:"teamLogo"`
	NilValue     *int      `db:"nil_value" json:"nilValue"`
	PortalStatus *string   `db:"portal_status" json:"portalStatus"`
}

// ProfileModel bundles everything the player detail view needs.
type ProfileModel struct {
	Player         PlayerProfileModel   `json:"player"`
	SeasonHistory  []SeasonHistoryModel `json:"seasonHistory"`
	GameLogs       []GameLogModel       `json:"gameLogs"`
	SimilarPlayers []SimilarPlayerModel `json:"similarPlayers"`
}
