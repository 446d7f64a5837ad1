package firestore

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/gittales/pkg/domain/model"
	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/gittales/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// repositoryDoc keeps a lower-cased "owner/name" next to the repository so
// that lookup by name ignores letter case as GitHub does.
type repositoryDoc struct {
	model.Repository
	FullNameKey string
}

func fullNameKey(owner, name string) string {
	return strings.ToLower(owner) + "/" + strings.ToLower(name)
}

func docsToRepositories(docs []*repositoryDoc) []*model.Repository {
	repos := make([]*model.Repository, 0, len(docs))
	for _, doc := range docs {
		repo := doc.Repository
		repos = append(repos, &repo)
	}
	return repos
}

// Repositories are keyed by the GitHub repository ID so that Create rejects a
// second record for the same external repository.
func (x *Client) CreateRepository(ctx context.Context, repo *model.Repository) error {
	doc := &repositoryDoc{
		Repository:  *repo,
		FullNameKey: fullNameKey(repo.OwnerLogin, repo.Name),
	}
	ref := x.client.Collection(collectionRepository).Doc(int64DocID(int64(repo.GitRepoID)))
	if _, err := ref.Create(ctx, doc); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return goerr.Wrap(repository.ErrAlreadyExists, "repository already exists",
				goerr.V("git_repo_id", repo.GitRepoID),
			)
		}
		return goerr.Wrap(err, "failed to create repository", goerr.V("git_repo_id", repo.GitRepoID))
	}
	return nil
}

func (x *Client) GetRepository(ctx context.Context, id types.RepoID) (*model.Repository, error) {
	query := x.client.Collection(collectionRepository).Where("ID", "==", int64(id)).Limit(1)
	docs, err := listDocs[repositoryDoc](ctx, query)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get repository", goerr.V("repo_id", id))
	}
	if len(docs) == 0 {
		return nil, goerr.Wrap(repository.ErrNotFound, "repository not found", goerr.V("repo_id", id))
	}
	return &docs[0].Repository, nil
}

func (x *Client) GetRepositoryByGitID(ctx context.Context, gitRepoID types.GitHubRepoID) (*model.Repository, error) {
	var doc repositoryDoc
	ref := x.client.Collection(collectionRepository).Doc(int64DocID(int64(gitRepoID)))
	if err := getDoc(ctx, ref, &doc); err != nil {
		return nil, err
	}
	return &doc.Repository, nil
}

func (x *Client) GetRepositoryByName(ctx context.Context, owner, name string) (*model.Repository, error) {
	query := x.client.Collection(collectionRepository).
		Where("FullNameKey", "==", fullNameKey(owner, name)).
		Limit(1)
	docs, err := listDocs[repositoryDoc](ctx, query)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get repository", goerr.V("owner", owner), goerr.V("name", name))
	}
	if len(docs) == 0 {
		return nil, goerr.Wrap(repository.ErrNotFound, "repository not found",
			goerr.V("owner", owner),
			goerr.V("name", name),
		)
	}
	return &docs[0].Repository, nil
}

func (x *Client) ListRepositories(ctx context.Context) ([]*model.Repository, error) {
	docs, err := listDocs[repositoryDoc](ctx, x.client.Collection(collectionRepository).OrderBy("ID", firestore.Asc))
	if err != nil {
		return nil, err
	}
	return docsToRepositories(docs), nil
}
