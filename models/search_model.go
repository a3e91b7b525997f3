package models

// PositionCountModel is one facet row: how many players a position tab would
// show under the currently active budget/portal filters.
type PositionCountModel struct {
	Position *string `db:"position" json:"position"`
	Count    int     `db:"count" json:"count"`
}

// BudgetRangeModel reports the valuation spread across all stored valuations,
// used to calibrate the budget slider.
type BudgetRangeModel struct {
	MinNil *int `db:"min_nil" json:"minNil"`
	MaxNil *int `db:"max_nil" json:"maxNil"`
	AvgNil *int `db:"avg_nil" json:"avgNil"`
}

type SearchFacetsModel struct {
	Positions   []PositionCountModel `json:"positions"`
	BudgetRange BudgetRangeModel     `json:"budgetRange"`
}

type SearchResultModel struct {
	Players []RankedPlayerModel `json:"players"`
	Facets  SearchFacetsModel   `json:"filters"`
	Total   int                 `json:"total"`
}

// PlayerListPageModel is the paginated simple-listing response.
type PlayerListPageModel struct {
	Players []PlayerListModel `json:"players"`
	Total   int               `json:"total"`
	Limit   int               `json:"limit"`
	Offset  int               `json:"offset"`
}
