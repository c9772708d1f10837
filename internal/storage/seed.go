package storage

import (
	"context"

	"briks_webapp/internal/domain"

	"github.com/shopspring/decimal"
)

// SeedDemoCatalogue inserts the demo marketplace listings. Used by the
// in-memory backend on startup and by cmd/seed for postgres.
func SeedDemoCatalogue(ctx context.Context, store PropertyStore) error {
	for i := range demoProperties {
		p := demoProperties[i]
		if err := store.CreateProperty(ctx, &p); err != nil {
			return err
		}
	}
	return nil
}

func strPtr(s string) *string { return &s }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func nullDec(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: dec(s), Valid: true}
}

var demoProperties = []domain.Property{
	{
		Name:          "Luxury Downtown Penthouse",
		Location:      "Downtown Core",
		PropertyType:  "Residential",
		Rarity:        "Rare",
		Price:         dec("485000"),
		BriksPrice:    dec("32300"),
		Income:        dec("2850"),
		Demand:        dec("85"),
		ImageURL:      strPtr("https://images.unsplash.com/photo-1545324418-cc1a3fa10c00?w=800&h=400&fit=crop"),
		Features:      []string{"Panoramic City Views", "Private Elevator Access", "Premium Appliances", "Rooftop Terrace", "24/7 Concierge", "Gym & Pool Access"},
		Bedrooms:      nullDec("3"),
		Bathrooms:     nullDec("2.5"),
		Sqft:          nullDec("2100"),
		YearBuilt:     nullDec("2019"),
		MonthlyIncome: nullDec("2850"),
		AnnualROI:     nullDec("21.2"),
	},
	{
		Name:          "Suburban Family Home",
		Location:      "Suburban Heights",
		PropertyType:  "Residential",
		Rarity:        "Common",
		Price:         dec("175000"),
		BriksPrice:    dec("11700"),
		Income:        dec("1450"),
		Demand:        dec("72"),
		ImageURL:      strPtr("https://images.unsplash.com/photo-1572120360610-d971b9d7767c?w=800&h=400&fit=crop"),
		Features:      []string{"Family Friendly", "Large Yard", "Modern Kitchen", "2-Car Garage"},
		Bedrooms:      nullDec("4"),
		Bathrooms:     nullDec("3"),
		Sqft:          nullDec("1800"),
		YearBuilt:     nullDec("2015"),
		MonthlyIncome: nullDec("1450"),
		AnnualROI:     nullDec("15.8"),
	},
	{
		Name:          "Industrial Warehouse",
		Location:      "Industrial Quarter",
		PropertyType:  "Industrial",
		Rarity:        "Epic",
		Price:         dec("750000"),
		BriksPrice:    dec("50000"),
		Income:        dec("5200"),
		Demand:        dec("95"),
		ImageURL:      strPtr("https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=800&h=400&fit=crop"),
		Features:      []string{"High Ceiling", "Loading Docks", "Office Space", "Parking Lot"},
		Sqft:          nullDec("15000"),
		YearBuilt:     nullDec("2020"),
		MonthlyIncome: nullDec("5200"),
		AnnualROI:     nullDec("28.5"),
	},
	{
		Name:          "Luxury Resort Property",
		Location:      "Luxury Lane",
		PropertyType:  "Commercial",
		Rarity:        "Legendary",
		Price:         dec("1200000"),
		BriksPrice:    dec("80000"),
		Income:        dec("8500"),
		Demand:        dec("99"),
		ImageURL:      strPtr("https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=800&h=400&fit=crop"),
		Features:      []string{"Waterfront", "Spa Facilities", "Conference Rooms", "Restaurant", "Pool Complex"},
		Sqft:          nullDec("25000"),
		YearBuilt:     nullDec("2021"),
		MonthlyIncome: nullDec("8500"),
		AnnualROI:     nullDec("35.2"),
	},
	{
		Name:          "Office Complex",
		Location:      "Downtown Core",
		PropertyType:  "Commercial",
		Rarity:        "Uncommon",
		Price:         dec("320000"),
		BriksPrice:    dec("21300"),
		Income:        dec("2100"),
		Demand:        dec("78"),
		ImageURL:      strPtr("https://images.unsplash.com/photo-1486406146926-c627a92ad1ab?w=800&h=400&fit=crop"),
		Features:      []string{"Modern Design", "Conference Rooms", "Parking Garage", "Security System"},
		Sqft:          nullDec("8500"),
		YearBuilt:     nullDec("2018"),
		MonthlyIncome: nullDec("2100"),
		AnnualROI:     nullDec("18.7"),
	},
	{
		Name:          "Retail Shopping Center",
		Location:      "Suburban Heights",
		PropertyType:  "Commercial",
		Rarity:        "Common",
		Price:         dec("215000"),
		BriksPrice:    dec("14300"),
		Income:        dec("1850"),
		Demand:        dec("88"),
		ImageURL:      strPtr("https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=800&h=400&fit=crop"),
		Features:      []string{"High Foot Traffic", "Anchor Stores", "Food Court", "Ample Parking"},
		Sqft:          nullDec("12000"),
		YearBuilt:     nullDec("2016"),
		MonthlyIncome: nullDec("1850"),
		AnnualROI:     nullDec("16.3"),
	},
}
