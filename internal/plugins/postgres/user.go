package postgres

import (
	"context"
	"database/sql"
	"errors"
	"tradechat/internal/core/domain"
)

type UserRepo struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

/*
	type UserRepository interface {
		GetUserByEmail(ctx context.Context, email string) (*User, error)
	}
*/

func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if email == "" {
		return nil, domain.ErrInvalidUserID
	}
	user := &domain.User{}
	query := `SELECT user_id, email, user_nickname FROM users WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&user.ID, &user.Email, &user.Nickname)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
