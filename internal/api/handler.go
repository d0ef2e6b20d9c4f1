package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leyangloh/progress-bot/internal/bot"
	apperrors "github.com/leyangloh/progress-bot/internal/errors"
)

// Handler handles API requests
type Handler struct {
	bot *bot.Bot
}

// NewHandler creates a new API handler
func NewHandler(b *bot.Bot) *Handler {
	return &Handler{
		bot: b,
	}
}

// GetProgress returns the current progress summaries without delivering
// GET /api/v1/progress
func (h *Handler) GetProgress(c *gin.Context) {
	report, err := h.bot.BuildReport(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": report,
	})
}

// TriggerReport runs the full pipeline including Slack delivery
// POST /api/v1/report
func (h *Handler) TriggerReport(c *gin.Context) {
	report, err := h.bot.Run(c.Request.Context(), false)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"id":           report.ID,
			"generated_at": report.GeneratedAt,
			"milestones":   report.Overview.TotalMilestones,
		},
	})
}

// HealthCheck returns the API health status
// GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// respondError sends an error response
func respondError(c *gin.Context, err error) {
	if appErr, ok := err.(*apperrors.AppError); ok {
		status := http.StatusInternalServerError
		switch appErr.Code {
		case apperrors.ErrCodeNotFound:
			status = http.StatusNotFound
		case apperrors.ErrCodeUnauthorized:
			status = http.StatusUnauthorized
		case apperrors.ErrCodeBadRequest:
			status = http.StatusBadRequest
		case apperrors.ErrCodeRateLimited:
			status = http.StatusTooManyRequests
		case apperrors.ErrCodeNetwork, apperrors.ErrCodeDelivery:
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error": gin.H{
			"code":    "INTERNAL_ERROR",
			"message": err.Error(),
		},
	})
}
