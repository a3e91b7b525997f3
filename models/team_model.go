package models

import "github.com/google/uuid"

type TeamModel struct {
	TeamId         uuid.UUID `db:"id" json:"teamId"`
	Name           string    `db:"name" json:"name"`
	Mascot         *string   `db:"mascot" json:"mascot"`
	Abbreviation   *string   `db:"abbreviation" json:"abbreviation"`
	Conference     *string   `db:"conference" json:"conference"`
	Division       *string   `db:"division" json:"division"`
	LogoUrl        *string   `db:"logo_url" json:"logoUrl"`
	PrimaryColor   *string   `db:"primary_color" json:"primaryColor"`
	SecondaryColor *string   `db:"secondary_color" json:"secondaryColor"`
	RosterSize     int       `db:"roster_size" json:"rosterSize"`
	AvgValuation   int       `db:"avg_nil" json:"avgValuation"`
}
