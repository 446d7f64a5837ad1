package firestore

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/gittales/pkg/domain/interfaces"
	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/gittales/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	collectionCounter     = "counters"
	collectionRepository  = "repositories"
	collectionPullRequest = "pull_requests"
	collectionCommit      = "commits"
	collectionUser        = "users"
	collectionUserEmail   = "user_emails"
)

type Client struct {
	client *firestore.Client
}

var _ interfaces.Database = (*Client)(nil)

// New creates a new Firestore-based database. The default database is used
// when databaseID is empty.
func New(ctx context.Context, projectID, databaseID string) (*Client, error) {
	var client *firestore.Client
	var err error

	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}

	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	return &Client{client: client}, nil
}

func (x *Client) Close() error {
	return x.client.Close()
}

type counter struct {
	Value int64
}

func (x *Client) NextID(ctx context.Context, name types.SequenceName) (int64, error) {
	ref := x.client.Collection(collectionCounter).Doc(string(name))

	var next int64
	err := x.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var current counter
		snap, err := tx.Get(ref)
		switch {
		case status.Code(err) == codes.NotFound:
		case err != nil:
			return err
		default:
			if err := snap.DataTo(&current); err != nil {
				return err
			}
		}

		next = current.Value + 1
		return tx.Set(ref, counter{Value: next})
	})
	if err != nil {
		return 0, goerr.Wrap(err, "failed to increment counter", goerr.V("name", name))
	}

	return next, nil
}

func int64DocID(v int64) string {
	return strconv.FormatInt(v, 10)
}

// emailDocID escapes an email address so that it is usable as a document ID
func emailDocID(email string) string {
	return url.PathEscape(email)
}

// getDoc decodes the document into dst. A missing document is reported as
// repository.ErrNotFound.
func getDoc(ctx context.Context, ref *firestore.DocumentRef, dst any) error {
	snap, err := ref.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(repository.ErrNotFound, "document not found", goerr.V("path", ref.Path))
		}
		return goerr.Wrap(err, "failed to get document", goerr.V("path", ref.Path))
	}
	if err := snap.DataTo(dst); err != nil {
		return goerr.Wrap(err, "failed to decode document", goerr.V("path", ref.Path))
	}
	return nil
}

// listDocs decodes all documents returned by query
func listDocs[T any](ctx context.Context, query firestore.Query) ([]*T, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	var results []*T
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate documents")
		}

		var v T
		if err := snap.DataTo(&v); err != nil {
			return nil, goerr.Wrap(err, "failed to decode document", goerr.V("path", snap.Ref.Path))
		}
		results = append(results, &v)
	}

	return results, nil
}
