package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golftracker/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL           = `INSERT INTO users (username, password_hash, created_at) VALUES (?, ?, ?)`
	selectUserByUsernameSQL = `SELECT id, username, password_hash, created_at FROM users WHERE username = ?`

	timestampLayout = "2006-01-02 15:04:05"
)

// Create inserts a new user and returns it with the server-assigned id
// and creation timestamp.
func (r *UserRepository) Create(username, passwordHash string) (*models.User, error) {
	createdAt := time.Now().UTC()
	res, err := r.db.Exec(insertUserSQL, username, passwordHash, createdAt.Format(timestampLayout))
	if err != nil {
		return nil, fmt.Errorf("insert user %q: %w", username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last insert id for user %q: %w", username, err)
	}
	return &models.User{
		ID:           int(lastID),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    createdAt.Truncate(time.Second),
	}, nil
}

// GetByUsername fetches a user by exact (case-sensitive) username.
// Returns (nil, nil) if not found.
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(selectUserByUsernameSQL, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return &u, nil
}
