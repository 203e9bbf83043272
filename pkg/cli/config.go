package cli

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octolist/pkg/domain"
	"github.com/m-mizutani/octolist/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

type Config struct {
	Owner string
	Repo  string
}

func (c *Config) Repository() (model.Repository, error) {
	if c.Owner == "" || c.Repo == "" {
		return model.Repository{}, domain.ErrConfiguration.Wrap(
			goerr.New("owner and repo are required"),
		)
	}
	return model.Repository{
		Owner: c.Owner,
		Name:  c.Repo,
	}, nil
}

func DefineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "owner",
			Aliases:  []string{"o"},
			Usage:    "Repository owner",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "repo",
			Aliases:  []string{"r"},
			Usage:    "Repository name",
			Required: true,
		},
	}
}
