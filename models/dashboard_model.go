package models

// DashboardStatsModel holds the headline numbers on the landing page.
type DashboardStatsModel struct {
	TotalPlayers  int `json:"totalPlayers"`
	PortalEntries int `json:"portalEntries"`
	AvgNilValue   int `json:"avgNilValue"`
	TopNilValue   int `json:"topNilValue"`
}

// RecentPortalModel is one line of the latest portal activity feed.
type RecentPortalModel struct {
	PlayerName string  `db:"player_name" json:"playerName"`
	Position   *string `db:"position" json:"position"`
	FromTeam   *string `db:"from_team" json:"fromTeam"`
	ToTeam     *string `db:"to_team" json:"toTeam"`
	Status     string  `db:"status" json:"status"`
	NilValue   *int    `db:"nil_value" json:"nilValue"`
}

// TopPlayerModel is one line of the top-valuations leaderboard.
type TopPlayerModel struct {
	Name     string  `db:"name" json:"name"`
	Position *string `db:"position" json:"position"`
	Team     *string `db:"team" json:"team"`
	NilValue int     `db:"valuation_usd" json:"nilValue"`
}

type DashboardModel struct {
	Stats        DashboardStatsModel `json:"stats"`
	RecentPortal []RecentPortalModel `json:"recentPortal"`
	TopPlayers   []TopPlayerModel    `json:"topPlayers"`
}
