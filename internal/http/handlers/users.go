package handlers

import (
	"net/http"

	"briks_webapp/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetUser(c *gin.Context) {
	user, err := h.Store.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUserProperties returns the user's portfolio. An unknown user simply
// owns nothing.
func (h *Handler) GetUserProperties(c *gin.Context) {
	props, err := h.Store.ListPropertiesByOwner(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if props == nil {
		props = []domain.Property{}
	}
	c.JSON(http.StatusOK, props)
}

// GetUserTransactions returns the user's trade history, newest first.
func (h *Handler) GetUserTransactions(c *gin.Context) {
	txs, err := h.Store.ListTransactionsByUser(c.Request.Context(), c.Param("id"), 100)
	if err != nil {
		respondError(c, err)
		return
	}
	if txs == nil {
		txs = []domain.Transaction{}
	}
	c.JSON(http.StatusOK, txs)
}
