package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/m-mizutani/gittales/pkg/domain/model"
	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/gittales/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

const userColumns = `user_id, name, email, password, avatar, bio, refresh_token, created_at, updated_at`

func scanUser(row rowScanner) (*model.User, error) {
	var user model.User
	if err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordDigest,
		&user.Avatar,
		&user.Bio,
		&user.RefreshToken,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

func (x *Client) CreateUser(ctx context.Context, user *model.User) error {
	const query = `INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	if _, err := x.db.ExecContext(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordDigest,
		user.Avatar,
		user.Bio,
		user.RefreshToken,
		user.CreatedAt,
		user.UpdatedAt,
	); err != nil {
		if isUniqueViolation(err) {
			return goerr.Wrap(repository.ErrAlreadyExists, "user already exists",
				goerr.V("email", user.Email),
				goerr.V("user_id", user.ID),
			)
		}
		return goerr.Wrap(err, "failed to insert user", goerr.V("user_id", user.ID))
	}

	return nil
}

func (x *Client) getUser(ctx context.Context, where string, arg any) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + where
	user, err := scanUser(x.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, goerr.Wrap(repository.ErrNotFound, "user not found", goerr.V("key", arg))
		}
		return nil, goerr.Wrap(err, "failed to get user", goerr.V("key", arg))
	}
	return user, nil
}

func (x *Client) GetUser(ctx context.Context, id types.UserID) (*model.User, error) {
	return x.getUser(ctx, "user_id = $1", id)
}

func (x *Client) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return x.getUser(ctx, "email = $1", email)
}

func (x *Client) UpdateRefreshToken(ctx context.Context, id types.UserID, token string) error {
	res, err := x.db.ExecContext(ctx,
		`UPDATE users SET refresh_token = $2, updated_at = NOW() WHERE user_id = $1`, id, token)
	if err != nil {
		return goerr.Wrap(err, "failed to update refresh token", goerr.V("user_id", id))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return goerr.Wrap(err, "failed to get affected rows", goerr.V("user_id", id))
	}
	if n == 0 {
		return goerr.Wrap(repository.ErrNotFound, "user not found", goerr.V("user_id", id))
	}
	return nil
}

func (x *Client) SwapRefreshToken(ctx context.Context, id types.UserID, expected, next string) error {
	res, err := x.db.ExecContext(ctx,
		`UPDATE users SET refresh_token = $3, updated_at = NOW() WHERE user_id = $1 AND refresh_token = $2`,
		id, expected, next)
	if err != nil {
		return goerr.Wrap(err, "failed to swap refresh token", goerr.V("user_id", id))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return goerr.Wrap(err, "failed to get affected rows", goerr.V("user_id", id))
	}
	if n > 0 {
		return nil
	}

	if _, err := x.GetUser(ctx, id); err != nil {
		return err
	}
	return goerr.Wrap(repository.ErrStaleValue, "refresh token has been rotated", goerr.V("user_id", id))
}
