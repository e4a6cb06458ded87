package service

import (
	"context"
	"time"

	"golftracker/internal/models"
	"golftracker/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (*models.User, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (string, error)
	UserByUsername(username string) (*models.User, error)
}

// Rounds exposes owner-scoped round CRUD. The userID always comes from the
// authenticated request context, never from the payload.
type Rounds interface {
	Create(ctx context.Context, userID int, p RoundParams) (models.GolfRound, error)
	List(ctx context.Context, userID int, page PageParams) ([]models.GolfRound, error)
	Get(ctx context.Context, userID, roundID int) (models.GolfRound, error)
	Delete(ctx context.Context, userID, roundID int) error
}

// Stats exposes read-only aggregates over a user's rounds.
type Stats interface {
	YearToDate(ctx context.Context, userID, year int) (models.YearToDateStats, error)
}

// AuthConfig carries the token signing material, threaded in from main
// so the service layer never touches global config state.
type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
}

type Service struct {
	Authorization
	Rounds
	Stats
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, auth AuthConfig) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, auth),
		Rounds:        NewRoundsService(repos.Rounds),
		Stats:         NewStatsService(repos.Rounds),
	}
}
