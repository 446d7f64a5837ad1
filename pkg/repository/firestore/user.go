package firestore

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/gittales/pkg/domain/model"
	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/gittales/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// userEmail reserves an email address for a user. It backs the unique email
// constraint that Firestore lacks.
type userEmail struct {
	UserID types.UserID
}

func (x *Client) userRef(id types.UserID) *firestore.DocumentRef {
	return x.client.Collection(collectionUser).Doc(int64DocID(int64(id)))
}

func (x *Client) emailRef(email string) *firestore.DocumentRef {
	return x.client.Collection(collectionUserEmail).Doc(emailDocID(email))
}

func (x *Client) CreateUser(ctx context.Context, user *model.User) error {
	userRef := x.userRef(user.ID)
	emailRef := x.emailRef(user.Email)

	err := x.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		for _, ref := range []*firestore.DocumentRef{emailRef, userRef} {
			_, err := tx.Get(ref)
			if err == nil {
				return goerr.Wrap(repository.ErrAlreadyExists, "user already exists", goerr.V("path", ref.Path))
			}
			if status.Code(err) != codes.NotFound {
				return err
			}
		}

		if err := tx.Create(emailRef, userEmail{UserID: user.ID}); err != nil {
			return err
		}
		return tx.Create(userRef, user)
	})
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return err
		}
		if status.Code(err) == codes.AlreadyExists {
			return goerr.Wrap(repository.ErrAlreadyExists, "user already exists", goerr.V("email", user.Email))
		}
		return goerr.Wrap(err, "failed to create user", goerr.V("user_id", user.ID))
	}

	return nil
}

func (x *Client) GetUser(ctx context.Context, id types.UserID) (*model.User, error) {
	var user model.User
	if err := getDoc(ctx, x.userRef(id), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (x *Client) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var reservation userEmail
	if err := getDoc(ctx, x.emailRef(email), &reservation); err != nil {
		return nil, err
	}
	return x.GetUser(ctx, reservation.UserID)
}

func (x *Client) UpdateRefreshToken(ctx context.Context, id types.UserID, token string) error {
	_, err := x.userRef(id).Update(ctx, []firestore.Update{
		{Path: "RefreshToken", Value: token},
		{Path: "UpdatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(repository.ErrNotFound, "user not found", goerr.V("user_id", id))
		}
		return goerr.Wrap(err, "failed to update refresh token", goerr.V("user_id", id))
	}
	return nil
}

func (x *Client) SwapRefreshToken(ctx context.Context, id types.UserID, expected, next string) error {
	ref := x.userRef(id)

	err := x.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return goerr.Wrap(repository.ErrNotFound, "user not found", goerr.V("user_id", id))
			}
			return err
		}

		var user model.User
		if err := snap.DataTo(&user); err != nil {
			return err
		}
		if user.RefreshToken != expected {
			return goerr.Wrap(repository.ErrStaleValue, "refresh token has been rotated", goerr.V("user_id", id))
		}

		return tx.Update(ref, []firestore.Update{
			{Path: "RefreshToken", Value: next},
			{Path: "UpdatedAt", Value: firestore.ServerTimestamp},
		})
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrStaleValue) {
			return err
		}
		return goerr.Wrap(err, "failed to swap refresh token", goerr.V("user_id", id))
	}

	return nil
}
