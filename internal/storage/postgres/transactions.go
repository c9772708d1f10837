package postgres

import (
	"context"

	"briks_webapp/internal/domain"
)

func (s *Store) CreateTransaction(ctx context.Context, t *domain.Transaction) error {
	err := s.db.QueryRow(ctx,
		`INSERT INTO transactions (user_id, property_id, type, amount)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		t.UserID, t.PropertyID, t.Type, t.Amount,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return mapErr(err)
	}
	return nil
}

func (s *Store) ListTransactionsByUser(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.Query(ctx,
		`SELECT id, user_id, property_id, type, amount, created_at
		 FROM transactions
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id ASC
		 LIMIT $2`,
		userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.PropertyID, &t.Type, &t.Amount, &t.CreatedAt); err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}
