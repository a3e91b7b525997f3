// Package valuation estimates a player's NIL market value from recruiting
// pedigree, position, social reach, and on-field production. The model is a
// deliberately simple multiplicative formula, used both to seed stored
// valuations and as a live fallback when a player has none.
package valuation

import (
	"fmt"
	"math"
)

// Factors carries every signal the model consumes. Zero values contribute
// nothing, so callers may leave out whatever they do not have.
type Factors struct {
	StarRating         int
	Position           string
	Conference         string
	InstagramFollowers int
	TwitterFollowers   int
	TiktokFollowers    int
	PassingYards       int
	RushingYards       int
	ReceivingYards     int
	Sacks              float64
}

// Base values per recruiting star tier, in whole dollars.
var starTierBase = map[int]float64{
	5: 500000,
	4: 150000,
	3: 50000,
	2: 15000,
}

// defaultBase applies to walk-ons and unrated players, below the 2-star tier.
const defaultBase = 25000

var positionPremiums = map[string]float64{
	"QB": 2.5,
	"RB": 1.4,
	"WR": 1.3,
	"TE": 1.1,
	"OL": 0.9,
	"DL": 1.0,
	"LB": 1.0,
	"DB": 1.1,
	"K":  0.6,
	"P":  0.5,
}

// positionGroups folds granular scouting positions into the premium table's
// buckets.
var positionGroups = map[string]string{
	"OT":   "OL",
	"IOL":  "OL",
	"OG":   "OL",
	"C":    "OL",
	"EDGE": "DL",
	"DE":   "DL",
	"DT":   "DL",
	"CB":   "DB",
	"S":    "DB",
}

// ConferenceMultipliers maps a conference name to its market multiplier.
// Power conferences command a premium; unknown conferences settle below
// every known entry.
var ConferenceMultipliers = map[string]float64{
	"SEC":        1.4,
	"Big Ten":    1.35,
	"Big 12":     1.2,
	"ACC":        1.15,
	"Pac-12":     1.1,
	"Group of 5": 0.8,
	"FCS":        0.5,
}

const defaultConferenceMultiplier = 0.9

// Per-follower dollar weights.
const (
	instagramWeight = 0.10
	twitterWeight   = 0.05
	tiktokWeight    = 0.08
)

// Performance bonuses only count production above a position-typical floor.
const (
	passYardsFloor = 2500
	rushYardsFloor = 1000
	recYardsFloor  = 800
	sacksFloor     = 5.0

	passYardRate = 50
	rushYardRate = 75
	recYardRate  = 60
	sackRate     = 15000
)

// PositionPremium returns the premium multiplier for a position, folding
// granular positions into their group and defaulting unknowns to 1.0.
func PositionPremium(position string) float64 {
	if group, ok := positionGroups[position]; ok {
		position = group
	}
	if premium, ok := positionPremiums[position]; ok {
		return premium
	}
	return 1.0
}

// ConferenceMultiplier returns the market multiplier for a conference name,
// defaulting unknowns to the non-power baseline.
func ConferenceMultiplier(conference string) float64 {
	if m, ok := ConferenceMultipliers[conference]; ok {
		return m
	}
	return defaultConferenceMultiplier
}

// Compute estimates a NIL valuation in whole dollars, rounded to the nearest
// $1,000. It is pure: identical factors always produce identical output.
func Compute(f Factors) int {
	base, ok := starTierBase[f.StarRating]
	if !ok {
		base = defaultBase
	}
	base *= PositionPremium(f.Position)

	social := float64(f.InstagramFollowers)*instagramWeight +
		float64(f.TwitterFollowers)*twitterWeight +
		float64(f.TiktokFollowers)*tiktokWeight

	var bonus float64
	if f.PassingYards > passYardsFloor {
		bonus += float64(f.PassingYards-passYardsFloor) * passYardRate
	}
	if f.RushingYards > rushYardsFloor {
		bonus += float64(f.RushingYards-rushYardsFloor) * rushYardRate
	}
	if f.ReceivingYards > recYardsFloor {
		bonus += float64(f.ReceivingYards-recYardsFloor) * recYardRate
	}
	if f.Sacks > sacksFloor {
		bonus += (f.Sacks - sacksFloor) * sackRate
	}

	total := (base + social + bonus) * ConferenceMultiplier(f.Conference)

	return int(math.Round(total/1000)) * 1000
}

// Tier classifies a valuation into a descriptive bracket. Boundaries are
// inclusive on the lower bound.
func Tier(value int) string {
	switch {
	case value >= 1000000:
		return "Elite"
	case value >= 500000:
		return "Premium"
	case value >= 200000:
		return "High"
	case value >= 100000:
		return "Mid"
	case value >= 50000:
		return "Low"
	default:
		return "Minimal"
	}
}

// FormatValue renders a valuation for display: $1.2M, $500K, $850, or N/A
// for an absent value.
func FormatValue(value *int) string {
	if value == nil {
		return "N/A"
	}
	v := *value
	switch {
	case v >= 1000000:
		return fmt.Sprintf("$%.1fM", float64(v)/1000000)
	case v >= 1000:
		return fmt.Sprintf("$%.0fK", float64(v)/1000)
	default:
		return fmt.Sprintf("$%d", v)
	}
}
