package models

import (
	"time"

	"github.com/google/uuid"
)

// Portal entry lifecycle statuses.
const (
	PortalStatusEntered   = "entered"
	PortalStatusCommitted = "committed"
	PortalStatusWithdrawn = "withdrawn"
)

type PortalEntryModel struct {
	EntryId      uuid.UUID  `db:"id" json:"entryId"`
	Status       string     `db:"status" json:"status"`
	EntryDate    time.Time  `db:"entry_date" json:"entryDate"`
	CommitDate   *time.Time `db:"commit_date" json:"commitDate"`
	TransferYear *int       `db:"transfer_year" json:"transferYear"`
	PlayerId     uuid.UUID  `db:"player_id" json:"playerId"`
	PlayerName   string     `db:"player_name" json:"playerName"`
	Position     *string    `db:"position" json:"position"`
	FromTeam     *string    `db:"from_team" json:"fromTeam"`
	FromTeamLogo *string    `db:"from_team_logo" json:"fromTeamLogo"`
	ToTeam       *string    `db:"to_team" json:"toTeam"`
	ToTeamLogo   *string    `db:"to_team_logo" json:"toTeamLogo"`
	NilValue     *int       `db:"nil_value" json:"nilValue"`
}

// PortalStatsModel carries the status rollup shown above the tracker table.
type PortalStatsModel struct {
	Total     int `db:"total" json:"total"`
	Available int `db:"available" json:"available"`
	Committed int `db:"committed" json:"committed"`
	Withdrawn int `db:"withdrawn" json:"withdrawn"`
}

type PortalListModel struct {
	Entries []PortalEntryModel `json:"entries"`
	Stats   PortalStatsModel   `json:"stats"`
}
