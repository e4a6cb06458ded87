package service

import (
	"context"
	"math"

	"golftracker/internal/models"
	"golftracker/internal/repository"
)

// StatsService computes aggregate statistics over a user's rounds.
type StatsService struct {
	rounds repository.Rounds
}

func NewStatsService(rounds repository.Rounds) *StatsService {
	return &StatsService{rounds: rounds}
}

// YearToDate sums fairway/green/putt figures across the user's rounds for
// the given calendar year. Zero rounds is a valid answer, not an error,
// and the percentage divisors are guarded against zero.
func (s *StatsService) YearToDate(ctx context.Context, userID, year int) (models.YearToDateStats, error) {
	rounds, err := s.rounds.ListByYear(ctx, userID, year)
	if err != nil {
		return models.YearToDateStats{}, err
	}
	if len(rounds) == 0 {
		return models.YearToDateStats{}, nil
	}

	var fairwaysHit, totalFairways, greensHit, totalGreens, totalPutts int
	for _, r := range rounds {
		fairwaysHit += r.FairwaysHit
		totalFairways += r.TotalFairways
		greensHit += r.GreensInRegulation
		totalGreens += r.TotalGreens
		totalPutts += r.TotalPutts
	}

	var firPct, girPct float64
	if totalFairways > 0 {
		firPct = float64(fairwaysHit) / float64(totalFairways) * 100
	}
	if totalGreens > 0 {
		girPct = float64(greensHit) / float64(totalGreens) * 100
	}
	avgPutts := float64(totalPutts) / float64(len(rounds))

	return models.YearToDateStats{
		FIRPercentage: round2(firPct),
		GIRPercentage: round2(girPct),
		AveragePutts:  round2(avgPutts),
		TotalRounds:   len(rounds),
	}, nil
}

// round2 rounds half away from zero to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
