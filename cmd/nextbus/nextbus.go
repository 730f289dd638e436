package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/nextbus/pkg/api"
	"github.com/travigo/nextbus/pkg/archiver"
	"github.com/travigo/nextbus/pkg/export"
	"github.com/travigo/nextbus/pkg/indexer"
	"github.com/travigo/nextbus/pkg/predictor"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func main() {
	// Stderr keeps the interactive predictor output clean
	if os.Getenv("NEXTBUS_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if os.Getenv("NEXTBUS_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "nextbus",
		Description: "Live bus arrival predictions from the NextBus public XML feed",

		Commands: []*cli.Command{
			predictor.RegisterCLI(),
			api.RegisterCLI(),
			archiver.RegisterCLI(),
			export.RegisterCLI(),
			indexer.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
