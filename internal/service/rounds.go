package service

import (
	"context"
	"errors"
	"time"

	"golftracker/internal/models"
	"golftracker/internal/repository"
)

// Defaults for a typical 18-hole course (four par 3s leave 14 fairways).
const (
	defaultTotalFairways = 14
	defaultTotalGreens   = 18

	defaultListLimit = 100
)

var ErrRoundNotFound = errors.New("round not found")

// RoundsService orchestrates owner-scoped round CRUD over the repository.
type RoundsService struct {
	rounds repository.Rounds
}

func NewRoundsService(rounds repository.Rounds) *RoundsService {
	return &RoundsService{rounds: rounds}
}

// Create persists a new round for userID, filling documented defaults for
// absent optional fields. Date defaults to the current time.
func (s *RoundsService) Create(ctx context.Context, userID int, p RoundParams) (models.GolfRound, error) {
	round := models.GolfRound{
		UserID:             userID,
		CourseName:         p.CourseName,
		Score:              p.Score,
		FairwaysHit:        p.FairwaysHit,
		TotalFairways:      defaultTotalFairways,
		GreensInRegulation: p.GreensInRegulation,
		TotalGreens:        defaultTotalGreens,
		TotalPutts:         p.TotalPutts,
		Date:               time.Now().UTC(),
	}
	if p.TotalFairways != nil {
		round.TotalFairways = *p.TotalFairways
	}
	if p.TotalGreens != nil {
		round.TotalGreens = *p.TotalGreens
	}
	if p.Date != nil && !p.Date.IsZero() {
		round.Date = p.Date.UTC()
	}
	return s.rounds.Create(ctx, round)
}

// List returns the user's rounds, most recent first.
func (s *RoundsService) List(ctx context.Context, userID int, page PageParams) ([]models.GolfRound, error) {
	skip := page.Skip
	if skip < 0 {
		skip = 0
	}
	limit := page.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.rounds.ListByUser(ctx, userID, skip, limit)
}

// Get fetches one of the user's rounds. A round owned by a different user
// is reported as not found, never as forbidden.
func (s *RoundsService) Get(ctx context.Context, userID, roundID int) (models.GolfRound, error) {
	round, err := s.rounds.GetByID(ctx, userID, roundID)
	if err != nil {
		return models.GolfRound{}, err
	}
	if round == nil {
		return models.GolfRound{}, ErrRoundNotFound
	}
	return *round, nil
}

// Delete permanently removes one of the user's rounds, under the same
// ownership-scoped lookup as Get.
func (s *RoundsService) Delete(ctx context.Context, userID, roundID int) error {
	deleted, err := s.rounds.Delete(ctx, userID, roundID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrRoundNotFound
	}
	return nil
}
