package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/gittales/pkg/domain/model"
	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/gittales/pkg/repository"
	"github.com/m-mizutani/gittales/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

func (x *UseCase) Register(ctx context.Context, input *model.RegisterInput) (*model.AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	db := x.clients.Database()
	email := model.NormalizeEmail(input.Email)

	if _, err := db.GetUserByEmail(ctx, email); err == nil {
		return nil, goerr.Wrap(types.ErrConflict, "email is already registered", goerr.V("email", email))
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, persistenceError(err, "failed to get user", goerr.V("email", email))
	}

	digest, err := x.clients.PasswordHasher().Hash(input.Password)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to hash password")
	}

	id, err := db.NextID(ctx, types.SequenceUser)
	if err != nil {
		return nil, persistenceError(err, "failed to allocate user ID")
	}

	now := logging.CtxTime(ctx).UTC()
	user := &model.User{
		ID:             types.UserID(id),
		Name:           input.Name,
		Email:          email,
		PasswordDigest: digest,
		Avatar:         input.Avatar,
		Bio:            input.Bio,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := db.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, goerr.Wrap(fmt.Errorf("%w: %w", types.ErrConflict, err), "email is already registered",
				goerr.V("email", email))
		}
		return nil, persistenceError(err, "failed to create user", goerr.V("email", email))
	}

	tokens, err := x.IssueTokens(ctx, user.Payload())
	if err != nil {
		return nil, err
	}
	user.RefreshToken = tokens.RefreshToken

	logging.From(ctx).Info("Registered user", slog.Any("user_id", user.ID))
	return &model.AuthResult{User: user, Tokens: tokens}, nil
}

// Login checks the credential. Unknown email and wrong password are not
// distinguished.
func (x *UseCase) Login(ctx context.Context, input *model.LoginInput) (*model.AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	email := model.NormalizeEmail(input.Email)

	user, err := x.clients.Database().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, goerr.Wrap(types.ErrUnauthorized, "invalid email or password")
		}
		return nil, persistenceError(err, "failed to get user", goerr.V("email", email))
	}

	if !x.clients.PasswordHasher().Compare(input.Password, user.PasswordDigest) {
		return nil, goerr.Wrap(types.ErrUnauthorized, "invalid email or password")
	}

	tokens, err := x.IssueTokens(ctx, user.Payload())
	if err != nil {
		return nil, err
	}
	user.RefreshToken = tokens.RefreshToken

	return &model.AuthResult{User: user, Tokens: tokens}, nil
}

func (x *UseCase) Me(ctx context.Context, userID types.UserID) (*model.User, error) {
	user, err := x.clients.Database().GetUser(ctx, userID)
	if err != nil {
		return nil, userStoreError(err, "failed to get user", userID)
	}
	return user, nil
}
