package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GetLeaderboard returns players ranked by net worth, richest first.
func (h *Handler) GetLeaderboard(c *gin.Context) {
	limit := 100
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	users, err := h.Store.ListUsersByNetWorth(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	type entry struct {
		Rank     int             `json:"rank"`
		ID       string          `json:"id"`
		Username *string         `json:"username"`
		NetWorth decimal.Decimal `json:"netWorth"`
	}
	entries := make([]entry, 0, len(users))
	for i, u := range users {
		entries = append(entries, entry{
			Rank:     i + 1,
			ID:       u.ID,
			Username: u.Username,
			NetWorth: u.NetWorth,
		})
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}
