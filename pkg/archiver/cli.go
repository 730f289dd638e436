package archiver

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/travigo/nextbus/pkg/database"
	"github.com/travigo/nextbus/pkg/elastic_client"
	"github.com/travigo/nextbus/pkg/feed"
	"github.com/travigo/nextbus/pkg/redis_client"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "archiver",
		Usage: "Record prediction snapshots for configured routes",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run the prediction archiver",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "config",
						Usage:    "YAML file listing the agency and route targets",
						Required: true,
					},
					&cli.DurationFlag{
						Name:  "interval",
						Usage: "repeat the archive on this interval until interrupted, 0 runs once",
					},
				},
				Action: func(c *cli.Context) error {
					config, err := LoadConfig(c.String("config"))
					if err != nil {
						return err
					}

					if err := database.Connect(); err != nil {
						return err
					}
					if err := elastic_client.Connect(); err != nil {
						return err
					}
					if err := redis_client.Connect(); err != nil {
						return err
					}

					client, err := feed.NewClientFromEnvironment()
					if err != nil {
						return err
					}

					stores := []SnapshotStore{NewMongoStore()}
					if elastic_client.Client != nil {
						stores = append(stores, &ElasticStore{IndexPrefix: "nextbus-predictions"})
					}

					archiver := &Archiver{
						Client:      client,
						Stores:      stores,
						Concurrency: config.Concurrency,
					}

					ctx, cancel := context.WithCancel(c.Context)
					defer cancel()

					signals := make(chan os.Signal, 1)
					signal.Notify(signals, syscall.SIGINT)
					defer signal.Stop(signals)

					done := make(chan struct{})
					defer close(done)

					go watchSignals(done, signals, cancel)

					err = archiver.Run(ctx, config.Targets, c.Duration("interval"))

					elastic_client.WaitUntilQueueEmpty()

					return err
				},
			},
		},
	}
}

// watchSignals cancels the run on the first signal and hard exits on the second.
// It returns as soon as done is closed.
func watchSignals(done <-chan struct{}, signals <-chan os.Signal, cancel context.CancelFunc) {
	select {
	case <-signals:
	case <-done:
		return
	}

	log.Info().Msg("Stopping archiver")
	cancel()

	select {
	case <-signals: // hard exit on second signal (in case shutdown gets stuck)
		os.Exit(1)
	case <-done:
	}
}
