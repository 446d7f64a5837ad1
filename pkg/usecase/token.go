package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/m-mizutani/gittales/pkg/domain/interfaces"
	"github.com/m-mizutani/gittales/pkg/domain/model"
	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/gittales/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

func (x *UseCase) tokenSigner() (interfaces.TokenSigner, error) {
	signer := x.clients.TokenSigner()
	if signer == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "token signer is not configured")
	}
	return signer, nil
}

// userStoreError classifies a store failure on a user record
func userStoreError(err error, msg string, userID types.UserID) error {
	if errors.Is(err, repository.ErrNotFound) {
		return goerr.Wrap(fmt.Errorf("%w: %w", types.ErrUserNotFound, err), msg, goerr.V("user_id", userID))
	}
	return persistenceError(err, msg, goerr.V("user_id", userID))
}

func (x *UseCase) signPair(ctx context.Context, payload model.TokenPayload) (*model.TokenPair, error) {
	signer, err := x.tokenSigner()
	if err != nil {
		return nil, err
	}

	access, err := signer.Sign(ctx, types.AccessToken, payload)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to sign access token", goerr.V("user_id", payload.UserID))
	}
	refresh, err := signer.Sign(ctx, types.RefreshToken, payload)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to sign refresh token", goerr.V("user_id", payload.UserID))
	}

	return &model.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// IssueTokens signs a new token pair and stores the refresh token on the
// user, replacing any previous one
func (x *UseCase) IssueTokens(ctx context.Context, payload model.TokenPayload) (*model.TokenPair, error) {
	pair, err := x.signPair(ctx, payload)
	if err != nil {
		return nil, err
	}

	if err := x.clients.Database().UpdateRefreshToken(ctx, payload.UserID, pair.RefreshToken); err != nil {
		return nil, userStoreError(err, "failed to store refresh token", payload.UserID)
	}

	return pair, nil
}

func (x *UseCase) VerifyAccessToken(ctx context.Context, token string) (*model.TokenPayload, error) {
	signer, err := x.tokenSigner()
	if err != nil {
		return nil, err
	}
	return signer.Verify(ctx, types.AccessToken, token)
}

// VerifyRefreshToken checks the token signature and that it is the one
// currently stored for the user. A rotated or logged out token is invalid.
func (x *UseCase) VerifyRefreshToken(ctx context.Context, token string) (*model.TokenPayload, error) {
	signer, err := x.tokenSigner()
	if err != nil {
		return nil, err
	}

	payload, err := signer.Verify(ctx, types.RefreshToken, token)
	if err != nil {
		return nil, err
	}

	user, err := x.clients.Database().GetUser(ctx, payload.UserID)
	if err != nil {
		return nil, userStoreError(err, "failed to get user", payload.UserID)
	}

	if user.RefreshToken == "" || subtle.ConstantTimeCompare([]byte(user.RefreshToken), []byte(token)) != 1 {
		return nil, goerr.Wrap(types.ErrTokenInvalid, "refresh token is not the current one", goerr.V("user_id", user.ID))
	}

	return payload, nil
}

// RefreshToken rotates the refresh token. The stored token is replaced only
// if it still equals token, so of concurrent refreshes with the same token
// exactly one succeeds.
func (x *UseCase) RefreshToken(ctx context.Context, token string) (*model.TokenPair, error) {
	payload, err := x.VerifyRefreshToken(ctx, token)
	if err != nil {
		return nil, err
	}

	pair, err := x.signPair(ctx, *payload)
	if err != nil {
		return nil, err
	}

	if err := x.clients.Database().SwapRefreshToken(ctx, payload.UserID, token, pair.RefreshToken); err != nil {
		if errors.Is(err, repository.ErrStaleValue) {
			return nil, goerr.Wrap(fmt.Errorf("%w: %w", types.ErrTokenInvalid, err), "refresh token has already been used",
				goerr.V("user_id", payload.UserID))
		}
		return nil, userStoreError(err, "failed to rotate refresh token", payload.UserID)
	}

	return pair, nil
}

// Logout clears the stored refresh token
func (x *UseCase) Logout(ctx context.Context, userID types.UserID) error {
	if err := x.clients.Database().UpdateRefreshToken(ctx, userID, ""); err != nil {
		return userStoreError(err, "failed to clear refresh token", userID)
	}
	return nil
}
