package handlers

import (
	"net/http"
	"time"

	"golftracker/internal/logger"
	"golftracker/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	cfg      Config
}

// Config is the HTTP-surface configuration threaded in from main.
type Config struct {
	// AllowedOrigins lists the web front-end origins permitted by CORS.
	AllowedOrigins []string
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, cfg Config) *Handler {
	return &Handler{services: services, log: log, cfg: cfg}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestIDMiddleware)

	if len(h.cfg.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     h.cfg.AllowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{"Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Unauthenticated service endpoints
	router.GET("/", h.root)
	router.GET("/health", h.health)

	// Live stats over WebSocket — token passed as query param, same port
	router.GET("/ws", h.wsStats)

	h.registerAPIRoutes(router)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.POST("/register", h.register)
		api.POST("/token", h.login)
	}

	protected := api.Group("", h.currentUserMiddleware)
	{
		protected.GET("/me", h.me)
		h.registerRoundRoutes(protected)
		protected.GET("/stats/ytd", h.yearToDateStats)
	}
}

func (h *Handler) registerRoundRoutes(api *gin.RouterGroup) {
	rounds := api.Group("/rounds")
	{
		rounds.POST("", h.createRound)
		rounds.GET("", h.listRounds)
		rounds.GET("/:id", h.getRound)
		rounds.DELETE("/:id", h.deleteRound)
	}
}

// requestIDMiddleware tags every request with an id for log correlation.
func (h *Handler) requestIDMiddleware(c *gin.Context) {
	reqID := c.GetHeader("X-Request-Id")
	if reqID == "" {
		reqID = uuid.NewString()
	}
	c.Set("requestId", reqID)
	c.Header("X-Request-Id", reqID)
	c.Next()
}

// @Summary      API root
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Golf Tracker API is running"})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
