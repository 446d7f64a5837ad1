package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/gittales/pkg/domain/model"
	"github.com/m-mizutani/gittales/pkg/domain/types"
)

type UseCase interface {
	// Sync
	ApplyPush(ctx context.Context, input *model.PushInput) ([]*model.Commit, error)
	SyncPullRequests(ctx context.Context, owner, repo string) ([]*model.PullRequest, error)

	// Query
	ListRepositories(ctx context.Context) ([]*model.Repository, error)
	ListRepositoryCommits(ctx context.Context, repoID types.RepoID) ([]*model.Commit, error)
	GetPullRequestWithCommits(ctx context.Context, prID types.PullRequestID) (*model.PullRequestWithCommits, error)

	// Auth
	Register(ctx context.Context, input *model.RegisterInput) (*model.AuthResult, error)
	Login(ctx context.Context, input *model.LoginInput) (*model.AuthResult, error)
	Me(ctx context.Context, userID types.UserID) (*model.User, error)

	// Token
	IssueTokens(ctx context.Context, payload model.TokenPayload) (*model.TokenPair, error)
	VerifyAccessToken(ctx context.Context, token string) (*model.TokenPayload, error)
	VerifyRefreshToken(ctx context.Context, token string) (*model.TokenPayload, error)
	RefreshToken(ctx context.Context, token string) (*model.TokenPair, error)
	Logout(ctx context.Context, userID types.UserID) error
}
