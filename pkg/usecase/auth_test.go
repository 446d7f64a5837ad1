package usecase_test

import (
	"testing"

	"github.com/m-mizutani/gittales/pkg/domain/model"
	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestRegister(t *testing.T) {
	t.Run("register new user", func(t *testing.T) {
		env := newTestEnv(t)
		auth := registerUser(t, env)

		gt.Equal(t, auth.User.ID, types.UserID(1))
		gt.Equal(t, auth.User.CreatedAt, baseTime)
		gt.NotEqual(t, auth.Tokens.AccessToken, "")

		stored := gt.R1(env.db.GetUser(env.ctx, auth.User.ID)).NoError(t)
		gt.NotEqual(t, stored.PasswordDigest, "correct-horse")
		gt.Equal(t, stored.RefreshToken, auth.Tokens.RefreshToken)
	})

	t.Run("email is normalized and unique", func(t *testing.T) {
		env := newTestEnv(t)
		registerUser(t, env)

		_, err := env.uc.Register(env.ctx, &model.RegisterInput{
			Name:     "alice2",
			Email:    " ALICE@example.com",
			Password: "another-pass",
		})
		gt.Error(t, err).Is(types.ErrConflict)
	})

	t.Run("invalid input", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.uc.Register(env.ctx, &model.RegisterInput{Name: "bob", Email: "bob@example.com", Password: "short"})
		gt.Error(t, err).Is(types.ErrValidationFailed)
	})
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	registered := registerUser(t, env)

	t.Run("valid credential", func(t *testing.T) {
		auth := gt.R1(env.uc.Login(env.ctx, &model.LoginInput{
			Email:    "Alice@Example.com",
			Password: "correct-horse",
		})).NoError(t)
		gt.Equal(t, auth.User.ID, registered.User.ID)

		// login replaces the refresh token issued by register
		_, err := env.uc.VerifyRefreshToken(env.ctx, registered.Tokens.RefreshToken)
		gt.Error(t, err).Is(types.ErrTokenInvalid)
		gt.R1(env.uc.VerifyRefreshToken(env.ctx, auth.Tokens.RefreshToken)).NoError(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := env.uc.Login(env.ctx, &model.LoginInput{Email: "alice@example.com", Password: "wrong-horse"})
		gt.Error(t, err).Is(types.ErrUnauthorized)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := env.uc.Login(env.ctx, &model.LoginInput{Email: "nobody@example.com", Password: "correct-horse"})
		gt.Error(t, err).Is(types.ErrUnauthorized)
	})

	t.Run("missing field", func(t *testing.T) {
		_, err := env.uc.Login(env.ctx, &model.LoginInput{Email: "alice@example.com"})
		gt.Error(t, err).Is(types.ErrValidationFailed)
	})
}

func TestMe(t *testing.T) {
	env := newTestEnv(t)
	registered := registerUser(t, env)

	user := gt.R1(env.uc.Me(env.ctx, registered.User.ID)).NoError(t)
	gt.Equal(t, user.Name, "alice")
	gt.Equal(t, user.Email, "alice@example.com")

	_, err := env.uc.Me(env.ctx, 42)
	gt.Error(t, err).Is(types.ErrUserNotFound)
}
