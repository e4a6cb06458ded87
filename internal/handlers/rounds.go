package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"golftracker/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errCreateRound     = "failed to create round"
	errListRounds      = "failed to load rounds"
	errGetRound        = "failed to load round"
	errDeleteRound     = "failed to delete round"
	errRoundNotFound   = "round not found"
	errInvalidRoundID  = "invalid round id"
	errInvalidBodyPref = "invalid body: "
)

// Request DTO for logging a round. Pointer fields fall back to the course
// defaults (14 fairways, 18 greens) and the current time when absent.
type roundRequest struct {
	CourseName         string     `json:"course_name" binding:"required"`
	Score              int        `json:"score" binding:"required"`
	FairwaysHit        int        `json:"fairways_hit"`
	TotalFairways      *int       `json:"total_fairways"`
	GreensInRegulation int        `json:"greens_in_regulation"`
	TotalGreens        *int       `json:"total_greens"`
	TotalPutts         int        `json:"total_putts"`
	Date               *time.Time `json:"date"`
}

// CreateRoundRequest is an exported model for Swagger docs of the round payload.
type CreateRoundRequest struct {
	CourseName string `json:"course_name" example:"Pebble Beach"`
	// Total strokes for the round
	Score       int `json:"score" example:"82"`
	FairwaysHit int `json:"fairways_hit" example:"9"`
	// Fairways on the course (default 14)
	TotalFairways      *int `json:"total_fairways,omitempty" example:"14"`
	GreensInRegulation int  `json:"greens_in_regulation" example:"7"`
	// Greens on the course (default 18)
	TotalGreens *int   `json:"total_greens,omitempty" example:"18"`
	TotalPutts  int    `json:"total_putts" example:"31"`
	Date        string `json:"date,omitempty" example:"2025-06-14T09:30:00Z"`
}

// roundIDParam parses the :id path parameter; writes a 400 and returns
// false when it is not an integer.
func (h *Handler) roundIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidRoundID})
		return 0, false
	}
	return id, true
}

// @Summary      Log a new golf round
// @Tags         rounds
// @Accept       json
// @Produce      json
// @Param        body  body      CreateRoundRequest  true  "Round payload"
// @Success      201   {object}  models.GolfRound
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/rounds [post]
// @Security     BearerAuth
func (h *Handler) createRound(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req roundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	round, err := h.services.Rounds.Create(c.Request.Context(), user.ID, service.RoundParams{
		CourseName:         req.CourseName,
		Score:              req.Score,
		FairwaysHit:        req.FairwaysHit,
		TotalFairways:      req.TotalFairways,
		GreensInRegulation: req.GreensInRegulation,
		TotalGreens:        req.TotalGreens,
		TotalPutts:         req.TotalPutts,
		Date:               req.Date,
	})
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errCreateRound, "round_create_failed", err, "userId", user.ID)
		return
	}

	c.JSON(http.StatusCreated, round)
}

// @Summary      List golf rounds
// @Description  Rounds belonging to the current user, most recent first.
// @Tags         rounds
// @Produce      json
// @Param        skip   query  int  false  "Offset into the result set"  default(0)
// @Param        limit  query  int  false  "Maximum rounds to return"    default(100)
// @Success      200  {array}   models.GolfRound
// @Failure      401  {object}  map[string]string
// @Router       /api/rounds [get]
// @Security     BearerAuth
func (h *Handler) listRounds(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	page := service.PageParams{}
	if v, err := strconv.Atoi(c.DefaultQuery("skip", "0")); err == nil {
		page.Skip = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "0")); err == nil {
		page.Limit = v
	}

	rounds, err := h.services.Rounds.List(c.Request.Context(), user.ID, page)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListRounds, "round_list_failed", err, "userId", user.ID)
		return
	}

	c.JSON(http.StatusOK, rounds)
}

// @Summary      Get a golf round
// @Tags         rounds
// @Produce      json
// @Param        id   path      int  true  "Round id"
// @Success      200  {object}  models.GolfRound
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/rounds/{id} [get]
// @Security     BearerAuth
func (h *Handler) getRound(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	id, ok := h.roundIDParam(c)
	if !ok {
		return
	}

	round, err := h.services.Rounds.Get(c.Request.Context(), user.ID, id)
	if err != nil {
		if errors.Is(err, service.ErrRoundNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errRoundNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errGetRound, "round_get_failed", err, "userId", user.ID, "roundId", id)
		return
	}

	c.JSON(http.StatusOK, round)
}

// @Summary      Delete a golf round
// @Tags         rounds
// @Produce      json
// @Param        id   path  int  true  "Round id"
// @Success      204  "No Content"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/rounds/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteRound(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	id, ok := h.roundIDParam(c)
	if !ok {
		return
	}

	if err := h.services.Rounds.Delete(c.Request.Context(), user.ID, id); err != nil {
		if errors.Is(err, service.ErrRoundNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errRoundNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errDeleteRound, "round_delete_failed", err, "userId", user.ID, "roundId", id)
		return
	}

	c.Status(http.StatusNoContent)
}
