package models

import "fmt"

// FormatHeight renders height in inches as the conventional feet'inches"
// string, e.g. 74 -> 6'2". Returns N/A for an absent measurement.
func FormatHeight(inches *int) string {
	if inches == nil || *inches <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%d'%d\"", *inches/12, *inches%12)
}
