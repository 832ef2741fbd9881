package postgres

import (
	"context"
	"errors"
	"strings"

	"securereport/internal/domain"
	"securereport/internal/ports"
)

func (db *DB) CreateUser(ctx context.Context, u *ports.User) error {
	ctx, cancel := db.opCtx(ctx)
	defer cancel()

	_, err := db.Pool.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`, u.ID, strings.ToLower(u.Email), u.PasswordHash, u.CreatedAt)
	if err := translate(err); err != nil {
		if errors.Is(err, domain.ErrDuplicateID) {
			return ports.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (db *DB) GetUserByEmail(ctx context.Context, email string) (*ports.User, error) {
	ctx, cancel := db.opCtx(ctx)
	defer cancel()

	var u ports.User
	err := db.Pool.QueryRow(ctx, `
		SELECT id, email, password_hash, created_at FROM users WHERE email = $1
	`, strings.ToLower(email)).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err := translate(err); err != nil {
		return nil, err
	}
	return &u, nil
}
