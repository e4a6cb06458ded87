package models

// YearToDateStats aggregates a user's rounds for the current calendar year.
// Percentages are rounded to two decimal places.
type YearToDateStats struct {
	FIRPercentage float64 `json:"fir_percentage"`
	GIRPercentage float64 `json:"gir_percentage"`
	AveragePutts  float64 `json:"average_putts"`
	TotalRounds   int     `json:"total_rounds"`
}
