package postgres

import (
	"context"
	"fmt"

	"briks_webapp/internal/domain"
	"briks_webapp/internal/storage"

	"github.com/jackc/pgx/v5"
)

const userColumns = `id, wallet_address, username, briks_balance, net_worth, rank, has_completed_tutorial, created_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(
		&u.ID,
		&u.WalletAddress,
		&u.Username,
		&u.BriksBalance,
		&u.NetWorth,
		&u.Rank,
		&u.HasCompletedTutorial,
		&u.CreatedAt,
	); err != nil {
		return nil, mapErr(err)
	}
	return &u, nil
}

func (s *Store) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return scanUser(s.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (s *Store) GetUserByWallet(ctx context.Context, walletAddress string) (*domain.User, error) {
	return scanUser(s.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE wallet_address = $1`, walletAddress))
}

func (s *Store) CreateUser(ctx context.Context, u *domain.User) error {
	if u.BriksBalance.IsZero() {
		u.BriksBalance = domain.DefaultBriksBalance
	}
	if u.Rank.IsZero() {
		u.Rank = domain.DefaultRank
	}

	err := s.db.QueryRow(ctx,
		`INSERT INTO users (wallet_address, username, briks_balance, net_worth, rank, has_completed_tutorial)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		u.WalletAddress, u.Username, u.BriksBalance, u.NetWorth, u.Rank, u.HasCompletedTutorial,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return mapErr(err)
	}
	return nil
}

func (s *Store) UpdateUser(ctx context.Context, id string, upd storage.UserUpdate) (*domain.User, error) {
	set, args := []string{}, []any{}
	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if upd.Username != nil {
		add("username", *upd.Username)
	}
	if upd.BriksBalance != nil {
		add("briks_balance", *upd.BriksBalance)
	}
	if upd.NetWorth != nil {
		add("net_worth", *upd.NetWorth)
	}
	if upd.Rank != nil {
		add("rank", *upd.Rank)
	}
	if upd.HasCompletedTutorial != nil {
		add("has_completed_tutorial", *upd.HasCompletedTutorial)
	}
	if len(set) == 0 {
		return s.GetUser(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE users SET %s WHERE id = $%d RETURNING `+userColumns,
		joinSet(set), len(args))
	return scanUser(s.db.QueryRow(ctx, query, args...))
}

func (s *Store) ListUsersByNetWorth(ctx context.Context, limit int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY net_worth DESC, created_at ASC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}
