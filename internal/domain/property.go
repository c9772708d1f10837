package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Property is a marketplace listing. Price is the cash value used for net
// worth accounting; BriksPrice is what a purchase actually costs in $BRIKS.
// A nil OwnerID means the property is listed for sale.
type Property struct {
	ID            string              `db:"id" json:"id"`
	Name          string              `db:"name" json:"name"`
	Location      string              `db:"location" json:"location"`
	PropertyType  string              `db:"property_type" json:"propertyType"`
	Rarity        string              `db:"rarity" json:"rarity"`
	Price         decimal.Decimal     `db:"price" json:"price"`
	BriksPrice    decimal.Decimal     `db:"briks_price" json:"briksPrice"`
	Income        decimal.Decimal     `db:"income" json:"income"`
	Demand        decimal.Decimal     `db:"demand" json:"demand"`
	Condition     decimal.Decimal     `db:"condition" json:"condition"`
	ImageURL      *string             `db:"image_url" json:"imageUrl"`
	Features      []string            `db:"features" json:"features"`
	Bedrooms      decimal.NullDecimal `db:"bedrooms" json:"bedrooms"`
	Bathrooms     decimal.NullDecimal `db:"bathrooms" json:"bathrooms"`
	Sqft          decimal.NullDecimal `db:"sqft" json:"sqft"`
	YearBuilt     decimal.NullDecimal `db:"year_built" json:"yearBuilt"`
	MonthlyIncome decimal.NullDecimal `db:"monthly_income" json:"monthlyIncome"`
	AnnualROI     decimal.NullDecimal `db:"annual_roi" json:"annualROI"`
	OwnerID       *string             `db:"owner_id" json:"ownerId"`
	ListingDate   time.Time           `db:"listing_date" json:"listingDate"`
}

// Available reports whether the property can be purchased.
func (p *Property) Available() bool {
	return p.OwnerID == nil
}

// DefaultCondition is applied when a listing is created without one.
var DefaultCondition = decimal.NewFromInt(100)
