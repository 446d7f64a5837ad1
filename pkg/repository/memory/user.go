package memory

import (
	"context"

	"github.com/m-mizutani/gittales/pkg/domain/model"
	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/gittales/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

func (x *database) CreateUser(ctx context.Context, user *model.User) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	if _, exists := x.usersByEmail[user.Email]; exists {
		return goerr.Wrap(repository.ErrAlreadyExists, "email is already registered", goerr.V("email", user.Email))
	}
	if _, exists := x.users[user.ID]; exists {
		return goerr.Wrap(repository.ErrAlreadyExists, "user ID is already used", goerr.V("user_id", user.ID))
	}

	x.users[user.ID] = copyUser(user)
	x.usersByEmail[user.Email] = user.ID
	return nil
}

func (x *database) GetUser(ctx context.Context, id types.UserID) (*model.User, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	user, ok := x.users[id]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "user not found", goerr.V("user_id", id))
	}
	return copyUser(user), nil
}

func (x *database) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	id, ok := x.usersByEmail[email]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "user not found", goerr.V("email", email))
	}
	return copyUser(x.users[id]), nil
}

func (x *database) UpdateRefreshToken(ctx context.Context, id types.UserID, token string) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	user, ok := x.users[id]
	if !ok {
		return goerr.Wrap(repository.ErrNotFound, "user not found", goerr.V("user_id", id))
	}
	user.RefreshToken = token
	return nil
}

func (x *database) SwapRefreshToken(ctx context.Context, id types.UserID, expected, next string) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	user, ok := x.users[id]
	if !ok {
		return goerr.Wrap(repository.ErrNotFound, "user not found", goerr.V("user_id", id))
	}
	if user.RefreshToken != expected {
		return goerr.Wrap(repository.ErrStaleValue, "refresh token has been rotated", goerr.V("user_id", id))
	}
	user.RefreshToken = next
	return nil
}
