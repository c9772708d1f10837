package handlers

import (
	"errors"
	"net/http"

	"briks_webapp/internal/logger"
	"briks_webapp/internal/service"
	"briks_webapp/internal/storage"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Store      storage.Store
	Onboarding *service.OnboardingService
	Trading    *service.TradingService
}

func NewHandler(store storage.Store, trading *service.TradingService) *Handler {
	return &Handler{
		Store:      store,
		Onboarding: service.NewOnboardingService(store),
		Trading:    trading,
	}
}

// respondError maps service/storage errors onto the HTTP taxonomy:
// missing input and business-rule violations → 400, unknown ids → 404,
// anything else → 500 with a generic message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrWalletRequired):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Wallet address is required"})
	case errors.Is(err, service.ErrPropertyNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Property not found"})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	case errors.Is(err, service.ErrAlreadyOwned):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Property already owned"})
	case errors.Is(err, service.ErrInsufficientBalance):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Insufficient $BRIKS balance"})
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusBadRequest, gin.H{"message": "You don't own this property"})
	default:
		logger.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}
