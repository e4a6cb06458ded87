package models

import "time"

// GolfRound is one logged 18-hole round belonging to a single user.
type GolfRound struct {
	ID                 int       `json:"id"`
	UserID             int       `json:"user_id"`
	Date               time.Time `json:"date"`
	CourseName         string    `json:"course_name"`
	Score              int       `json:"score"`
	FairwaysHit        int       `json:"fairways_hit"`
	TotalFairways      int       `json:"total_fairways"` // 14 on a typical 18-hole course
	GreensInRegulation int       `json:"greens_in_regulation"`
	TotalGreens        int       `json:"total_greens"`
	TotalPutts         int       `json:"total_putts"`
}
