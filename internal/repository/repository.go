package repository

import (
	"context"
	"database/sql"

	"golftracker/internal/models"
)

type Users interface {
	Create(username, passwordHash string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
}

// Rounds persists golf rounds. Every lookup is scoped to the owning user:
// a round belonging to someone else behaves exactly like a missing row.
type Rounds interface {
	Create(ctx context.Context, round models.GolfRound) (models.GolfRound, error)
	ListByUser(ctx context.Context, userID, offset, limit int) ([]models.GolfRound, error)
	GetByID(ctx context.Context, userID, roundID int) (*models.GolfRound, error)
	Delete(ctx context.Context, userID, roundID int) (bool, error)
	ListByYear(ctx context.Context, userID, year int) ([]models.GolfRound, error)
}

type Repository struct {
	Users  Users
	Rounds Rounds
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:  NewUserRepository(db),
		Rounds: NewRoundRepository(db),
	}
}
