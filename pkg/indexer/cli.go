package indexer

import (
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/travigo/nextbus/pkg/elastic_client"
	"github.com/travigo/nextbus/pkg/feed"
	"github.com/travigo/nextbus/pkg/redis_client"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "indexer",
		Usage: "Indexes data into Elasticsearch",
		Subcommands: []*cli.Command{
			{
				Name:  "stops",
				Usage: "do an index of the stops of every route of an agency",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "agency",
						Usage:    "agency tag",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					if err := elastic_client.Connect(); err != nil {
						return err
					}
					if elastic_client.Client == nil {
						return errors.New("elasticsearch configuration not set")
					}
					if err := redis_client.Connect(); err != nil {
						return err
					}

					client, err := feed.NewClientFromEnvironment()
					if err != nil {
						return err
					}

					if err := IndexStops(c.Context, client, c.String("agency")); err != nil {
						return err
					}

					log.Info().Msg("Index queue emptied")

					return nil
				},
			},
		},
	}
}
