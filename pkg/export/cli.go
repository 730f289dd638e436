package export

import (
	"io"
	"os"
	"time"

	"github.com/travigo/nextbus/pkg/feed"
	"github.com/travigo/nextbus/pkg/redis_client"
	"github.com/urfave/cli/v2"
)

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}

	return os.Create(path)
}

// writeOutput closes output after write, a failed close is reported when the write itself succeeded
func writeOutput(output io.WriteCloser, write func(io.Writer) error) (err error) {
	defer func() {
		if closeErr := output.Close(); err == nil {
			err = closeErr
		}
	}()

	return write(output)
}

func newClient() (*feed.Client, error) {
	if err := redis_client.Connect(); err != nil {
		return nil, err
	}

	return feed.NewClientFromEnvironment()
}

func RegisterCLI() *cli.Command {
	outputFlag := &cli.StringFlag{
		Name:  "output",
		Value: "-",
		Usage: "file to write to, - for stdout",
	}
	agencyFlag := &cli.StringFlag{
		Name:  "agency",
		Usage: "agency tag",
	}
	routeFlag := &cli.StringFlag{
		Name:  "route",
		Usage: "route tag",
	}
	stopFlag := &cli.StringFlag{
		Name:  "stop",
		Usage: "stop tag",
	}

	return &cli.Command{
		Name:  "export",
		Usage: "Export feed data to files",
		Subcommands: []*cli.Command{
			{
				Name:  "stops",
				Usage: "write the stops of a route as CSV",
				Flags: []cli.Flag{agencyFlag, routeFlag, outputFlag},
				Action: func(c *cli.Context) error {
					client, err := newClient()
					if err != nil {
						return err
					}

					output, err := openOutput(c.String("output"))
					if err != nil {
						return err
					}

					return writeOutput(output, func(writer io.Writer) error {
						return Stops(c.Context, client, c.String("agency"), c.String("route"), writer)
					})
				},
			},
			{
				Name:  "gtfsrt",
				Usage: "write the predictions for a stop as a GTFS-Realtime TripUpdates feed",
				Flags: []cli.Flag{agencyFlag, routeFlag, stopFlag, outputFlag},
				Action: func(c *cli.Context) error {
					client, err := newClient()
					if err != nil {
						return err
					}

					output, err := openOutput(c.String("output"))
					if err != nil {
						return err
					}

					return writeOutput(output, func(writer io.Writer) error {
						return GTFSRealtime(c.Context, client, c.String("agency"), c.String("route"), c.String("stop"), time.Now(), writer)
					})
				},
			},
			{
				Name:  "dump",
				Usage: "pretty print the parsed response to a feed command",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "command",
						Value: string(feed.CommandAgencyList),
						Usage: "agencyList, routeList, routeConfig or predictions",
					},
					agencyFlag, routeFlag, stopFlag,
				},
				Action: func(c *cli.Context) error {
					client, err := newClient()
					if err != nil {
						return err
					}

					return Dump(c.Context, client, feed.Command(c.String("command")), c.String("agency"), c.String("route"), c.String("stop"), os.Stdout)
				},
			},
		},
	}
}
