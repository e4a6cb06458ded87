package service

import "time"

// RoundParams carries the fields a client may supply when logging a round.
// Pointer fields distinguish "absent, use the default" from an explicit
// zero; the defaults describe a typical 18-hole course.
type RoundParams struct {
	CourseName         string
	Score              int
	FairwaysHit        int
	TotalFairways      *int // default 14
	GreensInRegulation int
	TotalGreens        *int // default 18
	TotalPutts         int
	Date               *time.Time // default: now
}

// PageParams controls list pagination. Negative or zero limit falls back
// to the default; negative skip is treated as zero.
type PageParams struct {
	Skip  int
	Limit int
}
