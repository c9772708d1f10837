package handlers

import (
	"net/http"

	"briks_webapp/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ListProperties returns the marketplace; ?available=true filters to
// listings without an owner.
func (h *Handler) ListProperties(c *gin.Context) {
	onlyAvailable := c.Query("available") == "true"

	props, err := h.Store.ListProperties(c.Request.Context(), onlyAvailable)
	if err != nil {
		respondError(c, err)
		return
	}
	if props == nil {
		props = []domain.Property{}
	}
	c.JSON(http.StatusOK, props)
}

func (h *Handler) GetProperty(c *gin.Context) {
	prop, err := h.Store.GetProperty(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prop)
}

type createPropertyRequest struct {
	Name          string              `json:"name" binding:"required"`
	Location      string              `json:"location" binding:"required"`
	PropertyType  string              `json:"propertyType" binding:"required"`
	Rarity        string              `json:"rarity" binding:"required"`
	Price         decimal.Decimal     `json:"price"`
	BriksPrice    decimal.Decimal     `json:"briksPrice"`
	Income        decimal.Decimal     `json:"income"`
	Demand        decimal.Decimal     `json:"demand"`
	Condition     decimal.Decimal     `json:"condition"`
	ImageURL      *string             `json:"imageUrl"`
	Features      []string            `json:"features"`
	Bedrooms      decimal.NullDecimal `json:"bedrooms"`
	Bathrooms     decimal.NullDecimal `json:"bathrooms"`
	Sqft          decimal.NullDecimal `json:"sqft"`
	YearBuilt     decimal.NullDecimal `json:"yearBuilt"`
	MonthlyIncome decimal.NullDecimal `json:"monthlyIncome"`
	AnnualROI     decimal.NullDecimal `json:"annualROI"`
}

// CreateProperty adds a listing to the marketplace.
func (h *Handler) CreateProperty(c *gin.Context) {
	var req createPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid property payload"})
		return
	}
	if req.Price.IsZero() || req.BriksPrice.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Price and briksPrice are required"})
		return
	}

	prop := &domain.Property{
		Name:          req.Name,
		Location:      req.Location,
		PropertyType:  req.PropertyType,
		Rarity:        req.Rarity,
		Price:         req.Price,
		BriksPrice:    req.BriksPrice,
		Income:        req.Income,
		Demand:        req.Demand,
		Condition:     req.Condition,
		ImageURL:      req.ImageURL,
		Features:      req.Features,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		Sqft:          req.Sqft,
		YearBuilt:     req.YearBuilt,
		MonthlyIncome: req.MonthlyIncome,
		AnnualROI:     req.AnnualROI,
	}
	if err := h.Trading.ListProperty(c.Request.Context(), prop); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, prop)
}

type tradeRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// Purchase buys the property for the requesting user. The response carries
// no entity state; clients re-fetch to observe the new balances.
func (h *Handler) Purchase(c *gin.Context) {
	var req tradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User id is required"})
		return
	}

	if err := h.Trading.Purchase(c.Request.Context(), c.Param("id"), req.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Property purchased successfully"})
}

// Sell liquidates the property back to the marketplace at a 10% penalty.
func (h *Handler) Sell(c *gin.Context) {
	var req tradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User id is required"})
		return
	}

	if err := h.Trading.Sell(c.Request.Context(), c.Param("id"), req.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Property sold successfully"})
}
