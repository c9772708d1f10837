package handlers

import (
	"net/http"

	"briks_webapp/internal/service"

	"github.com/gin-gonic/gin"
)

type connectWalletRequest struct {
	WalletAddress string `json:"walletAddress"`
}

// ConnectWallet resolves a wallet address to its player account, creating
// one on first contact, and issues a session token for /api/me.
func (h *Handler) ConnectWallet(c *gin.Context) {
	var req connectWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Wallet address is required"})
		return
	}

	user, err := h.Onboarding.ConnectWallet(c.Request.Context(), req.WalletAddress)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := service.GenerateSessionToken(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":                   user.ID,
		"walletAddress":        user.WalletAddress,
		"username":             user.Username,
		"briksBalance":         user.BriksBalance,
		"netWorth":             user.NetWorth,
		"rank":                 user.Rank,
		"hasCompletedTutorial": user.HasCompletedTutorial,
		"createdAt":            user.CreatedAt,
		"sessionToken":         token,
	})
}

type completeTutorialRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// CompleteTutorial flips the tutorial flag and returns the updated user.
func (h *Handler) CompleteTutorial(c *gin.Context) {
	var req completeTutorialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User id is required"})
		return
	}

	user, err := h.Onboarding.CompleteTutorial(c.Request.Context(), req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Me returns the account behind the bearer session token.
func (h *Handler) Me(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	user, err := h.Store.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
