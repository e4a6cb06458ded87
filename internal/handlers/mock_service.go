package handlers

import (
	"context"
	"net/http"

	"golftracker/internal/models"
	"golftracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpUser    *models.User
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseUsername string
	parseErr      error
	resolvedUser  *models.User
	resolveErr    error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
	lastResolved       string
}

func (m *mockAuth) SignUp(username, password string) (*models.User, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpUser, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (string, error) {
	m.lastParseToken = token
	return m.parseUsername, m.parseErr
}
func (m *mockAuth) UserByUsername(username string) (*models.User, error) {
	m.lastResolved = username
	return m.resolvedUser, m.resolveErr
}

type mockRounds struct {
	created   models.GolfRound
	createErr error
	list      []models.GolfRound
	listErr   error
	single    models.GolfRound
	getErr    error
	deleteErr error

	lastUserID int
	lastParams service.RoundParams
	lastPage   service.PageParams
	lastRound  int

	createCalls int
	deleteCalls int
}

func (m *mockRounds) Create(ctx context.Context, userID int, p service.RoundParams) (models.GolfRound, error) {
	m.createCalls++
	m.lastUserID = userID
	m.lastParams = p
	return m.created, m.createErr
}
func (m *mockRounds) List(ctx context.Context, userID int, page service.PageParams) ([]models.GolfRound, error) {
	m.lastUserID = userID
	m.lastPage = page
	return m.list, m.listErr
}
func (m *mockRounds) Get(ctx context.Context, userID, roundID int) (models.GolfRound, error) {
	m.lastUserID = userID
	m.lastRound = roundID
	return m.single, m.getErr
}
func (m *mockRounds) Delete(ctx context.Context, userID, roundID int) error {
	m.deleteCalls++
	m.lastUserID = userID
	m.lastRound = roundID
	return m.deleteErr
}

type mockStats struct {
	stats models.YearToDateStats
	err   error

	lastUserID int
	lastYear   int
}

func (m *mockStats) YearToDate(ctx context.Context, userID, year int) (models.YearToDateStats, error) {
	m.lastUserID = userID
	m.lastYear = year
	return m.stats, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, Config{})
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

// authedService pairs a mockAuth that accepts any bearer token with the
// user it resolves to, for exercising protected endpoints.
func authedService(user *models.User) (*service.Service, *mockAuth) {
	auth := &mockAuth{parseUsername: user.Username, resolvedUser: user}
	return &service.Service{Authorization: auth}, auth
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
