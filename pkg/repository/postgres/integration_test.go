//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gittales/pkg/repository/postgres"
	"github.com/m-mizutani/gittales/pkg/repository/testhelper"
	"github.com/m-mizutani/gittales/pkg/utils/safe"
	"github.com/m-mizutani/gt"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestPostgresContainer(t *testing.T) {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("gittales"),
		tcpostgres.WithUsername("gittales"),
		tcpostgres.WithPassword("gittales"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	gt.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn := gt.R1(container.ConnectionString(ctx, "sslmode=disable")).NoError(t)
	gt.NoError(t, postgres.Migrate(ctx, dsn))

	client := gt.R1(postgres.New(ctx, dsn)).NoError(t)
	defer safe.Close(client)

	testhelper.TestAll(t, client)
}
