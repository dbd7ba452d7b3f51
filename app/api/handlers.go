package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tfrwatch/tfrwatch/app/advisory"
	"github.com/tfrwatch/tfrwatch/app/store"
	"github.com/tfrwatch/tfrwatch/app/tasks"
)

func NewHandler(cache store.Store, scheduler tasks.TaskSchedulerInterface,
	category string, keywordCount int) *Handler {
	return &Handler{
		store:     cache,
		scheduler: scheduler,
		category:  category,
		keywords:  keywordCount,
	}
}

// GetMatches serves the accumulated matched history, newest issue date
// first, together with the same-day summary.
func (h *Handler) GetMatches(c *gin.Context) {
	history := h.store.LoadHistory()
	summary := advisory.Summarize(history)

	c.JSON(http.StatusOK, MatchesResponse{
		Events:          advisory.SortByIssueDate(history),
		TodayCount:      summary.TodayCount,
		UniqueCityCount: summary.UniqueCityCount,
	})
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"matches":   len(h.store.LoadHistory()),
	})
}

func (h *Handler) GetStats(c *gin.Context) {
	history := h.store.LoadHistory()
	summary := advisory.Summarize(history)

	c.JSON(http.StatusOK, gin.H{
		"category":          h.category,
		"keywords":          h.keywords,
		"snapshot_size":     len(h.store.LoadSnapshot()),
		"matched_total":     len(history),
		"today_count":       summary.TodayCount,
		"unique_city_count": summary.UniqueCityCount,
	})
}

// APITriggerPoll enqueues an immediate poll cycle. The scheduler's
// depth-one queue turns a request that lands while a cycle is running
// into a conflict rather than a backlog.
func (h *Handler) APITriggerPoll(c *gin.Context) {
	if err := h.scheduler.TriggerPoll(); err != nil {
		slog.Warn("Manual poll rejected", "error", err)
		c.JSON(http.StatusConflict, gin.H{
			"error": "a poll cycle is already queued or running",
		})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status": "poll enqueued",
	})
}
