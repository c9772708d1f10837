package postgres

import (
	"context"
	"fmt"

	"briks_webapp/internal/domain"
	"briks_webapp/internal/storage"

	"github.com/jackc/pgx/v5"
)

const propertyColumns = `id, name, location, property_type, rarity, price, briks_price, income, demand,
	condition, image_url, features, bedrooms, bathrooms, sqft, year_built, monthly_income, annual_roi,
	owner_id, listing_date`

func scanProperty(row pgx.Row) (*domain.Property, error) {
	var p domain.Property
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Location,
		&p.PropertyType,
		&p.Rarity,
		&p.Price,
		&p.BriksPrice,
		&p.Income,
		&p.Demand,
		&p.Condition,
		&p.ImageURL,
		&p.Features,
		&p.Bedrooms,
		&p.Bathrooms,
		&p.Sqft,
		&p.YearBuilt,
		&p.MonthlyIncome,
		&p.AnnualROI,
		&p.OwnerID,
		&p.ListingDate,
	); err != nil {
		return nil, mapErr(err)
	}
	return &p, nil
}

func (s *Store) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	return scanProperty(s.db.QueryRow(ctx,
		`SELECT `+propertyColumns+` FROM properties WHERE id = $1`, id))
}

func (s *Store) ListProperties(ctx context.Context, onlyAvailable bool) ([]domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties`
	if onlyAvailable {
		query += ` WHERE owner_id IS NULL`
	}
	query += ` ORDER BY listing_date DESC, id ASC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProperties(rows)
}

func (s *Store) ListPropertiesByOwner(ctx context.Context, ownerID string) ([]domain.Property, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+propertyColumns+` FROM properties WHERE owner_id = $1 ORDER BY listing_date DESC, id ASC`,
		ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProperties(rows)
}

func collectProperties(rows pgx.Rows) ([]domain.Property, error) {
	var props []domain.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		props = append(props, *p)
	}
	return props, rows.Err()
}

func (s *Store) CreateProperty(ctx context.Context, p *domain.Property) error {
	if p.Condition.IsZero() {
		p.Condition = domain.DefaultCondition
	}

	err := s.db.QueryRow(ctx,
		`INSERT INTO properties (name, location, property_type, rarity, price, briks_price, income, demand,
			condition, image_url, features, bedrooms, bathrooms, sqft, year_built, monthly_income, annual_roi, owner_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		 RETURNING id, listing_date`,
		p.Name, p.Location, p.PropertyType, p.Rarity, p.Price, p.BriksPrice, p.Income, p.Demand,
		p.Condition, p.ImageURL, p.Features, p.Bedrooms, p.Bathrooms, p.Sqft, p.YearBuilt,
		p.MonthlyIncome, p.AnnualROI, p.OwnerID,
	).Scan(&p.ID, &p.ListingDate)
	if err != nil {
		return mapErr(err)
	}
	return nil
}

func (s *Store) UpdateProperty(ctx context.Context, id string, upd storage.PropertyUpdate) (*domain.Property, error) {
	set, args := []string{}, []any{}
	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	switch {
	case upd.ClearOwner:
		set = append(set, "owner_id = NULL")
	case upd.OwnerID != nil:
		add("owner_id", *upd.OwnerID)
	}
	if upd.Condition != nil {
		add("condition", *upd.Condition)
	}
	if len(set) == 0 {
		return s.GetProperty(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE properties SET %s WHERE id = $%d RETURNING `+propertyColumns,
		joinSet(set), len(args))
	return scanProperty(s.db.QueryRow(ctx, query, args...))
}
