package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const errGetStats = "failed to compute statistics"

// @Summary      Year-to-date statistics
// @Description  FIR/GIR percentages and average putts across the current calendar year. All zeros when no rounds were logged this year.
// @Tags         stats
// @Produce      json
// @Success      200  {object}  models.YearToDateStats
// @Failure      401  {object}  map[string]string
// @Router       /api/stats/ytd [get]
// @Security     BearerAuth
func (h *Handler) yearToDateStats(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	stats, err := h.services.Stats.YearToDate(c.Request.Context(), user.ID, time.Now().Year())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetStats, "stats_ytd_failed", err, "userId", user.ID)
		return
	}

	c.JSON(http.StatusOK, stats)
}
