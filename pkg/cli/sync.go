package cli

import (
	"context"
	"strings"

	"github.com/m-mizutani/gittales/pkg/cli/config"
	"github.com/m-mizutani/gittales/pkg/domain/model"
	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/gittales/pkg/infra"
	"github.com/m-mizutani/gittales/pkg/usecase"
	"github.com/m-mizutani/gittales/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func syncCommand() *cli.Command {
	var (
		repos       []string
		concurrency int

		database config.Database
		github   config.GitHub
	)

	syncFlags := []cli.Flag{
		&cli.StringSliceFlag{
			Name:        "repo",
			Usage:       "Repository to sync pull requests of, in owner/name form",
			Aliases:     []string{"r"},
			Required:    true,
			Sources:     cli.EnvVars("GITTALES_SYNC_REPOS"),
			Destination: &repos,
		},
		&cli.IntFlag{
			Name:        "concurrency",
			Usage:       "Number of repositories synced in parallel",
			Value:       4,
			Sources:     cli.EnvVars("GITTALES_SYNC_CONCURRENCY"),
			Destination: &concurrency,
		},
	}

	return &cli.Command{
		Name:  "sync",
		Usage: "Fetch pull requests and their commits from GitHub and store them",
		Flags: slice.Flatten(
			syncFlags,
			database.Flags(),
			github.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			targets, err := parseRepoTargets(repos)
			if err != nil {
				return err
			}

			logging.Default().Info("starting sync",
				"Repos", repos,
				"Concurrency", concurrency,
				"Database", &database,
				"GitHub", github,
			)

			db, closeDB, err := database.New(ctx)
			if err != nil {
				return err
			}
			defer closeDB()

			ghClient, err := github.New()
			if err != nil {
				return err
			}

			uc := usecase.New(infra.New(
				infra.WithDatabase(db),
				infra.WithGitHub(ghClient),
			))

			return uc.SyncRepositories(logging.With(ctx, logging.Default()), targets, concurrency)
		},
	}
}

func parseRepoTargets(repos []string) ([]model.RepoTarget, error) {
	targets := make([]model.RepoTarget, 0, len(repos))
	seen := make(map[model.RepoTarget]struct{}, len(repos))

	for _, repo := range repos {
		owner, name, ok := strings.Cut(strings.TrimSpace(repo), "/")
		if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
			return nil, goerr.Wrap(types.ErrInvalidOption, "repository must be owner/name", goerr.V("repo", repo))
		}

		target := model.RepoTarget{Owner: owner, Name: name}
		if _, ok := seen[target]; ok {
			continue
		}
		seen[target] = struct{}{}
		targets = append(targets, target)
	}

	return targets, nil
}
