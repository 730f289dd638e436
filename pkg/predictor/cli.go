package predictor

import (
	"os"

	"github.com/travigo/nextbus/pkg/feed"
	"github.com/travigo/nextbus/pkg/redis_client"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "predictor",
		Usage: "Interactively browse agencies, routes and stops for live bus predictions",
		Action: func(c *cli.Context) error {
			if err := redis_client.Connect(); err != nil {
				return err
			}

			client, err := feed.NewClientFromEnvironment()
			if err != nil {
				return err
			}

			predictor := &Predictor{
				Client: client,
				Input:  os.Stdin,
				Output: os.Stdout,
			}

			return predictor.Run(c.Context)
		},
	}
}
