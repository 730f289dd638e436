package export

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/kr/pretty"
	"github.com/travigo/nextbus/pkg/feed"
	"github.com/travigo/nextbus/pkg/nextbus"
	"golang.org/x/exp/slices"
)

type FeedClient interface {
	GetAgencies(ctx context.Context) ([]*nextbus.Agency, error)
	GetRoutes(ctx context.Context, agencyTag string) ([]*nextbus.RouteSummary, error)
	GetRouteConfig(ctx context.Context, agencyTag string, routeTag string) (*nextbus.RouteDetail, error)
	GetPredictions(ctx context.Context, agencyTag string, routeTag string, stopTag string) (*nextbus.PredictionSet, error)
}

var DumpCommands = []feed.Command{
	feed.CommandAgencyList,
	feed.CommandRouteList,
	feed.CommandRouteConfig,
	feed.CommandPredictions,
}

// Dump fetches one feed command and pretty prints the parsed result, or the feed Error
func Dump(ctx context.Context, client FeedClient, command feed.Command, agencyTag string, routeTag string, stopTag string, writer io.Writer) error {
	if !slices.Contains(DumpCommands, command) {
		return fmt.Errorf("unknown command %q", command)
	}

	var result interface{}
	var err error

	switch command {
	case feed.CommandAgencyList:
		result, err = client.GetAgencies(ctx)
	case feed.CommandRouteList:
		result, err = client.GetRoutes(ctx, agencyTag)
	case feed.CommandRouteConfig:
		result, err = client.GetRouteConfig(ctx, agencyTag, routeTag)
	case feed.CommandPredictions:
		result, err = client.GetPredictions(ctx, agencyTag, routeTag, stopTag)
	}

	if err != nil {
		var feedError *nextbus.Error
		if !errors.As(err, &feedError) {
			return err
		}

		result = feedError
	}

	_, err = pretty.Fprintf(writer, "%# v\n", result)
	return err
}
