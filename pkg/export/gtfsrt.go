package export

import (
	"context"
	"io"
	"time"

	"github.com/travigo/nextbus/pkg/gtfsrt"
)

func GTFSRealtime(ctx context.Context, client FeedClient, agencyTag string, routeTag string, stopTag string, generatedAt time.Time, writer io.Writer) error {
	predictions, err := client.GetPredictions(ctx, agencyTag, routeTag, stopTag)
	if err != nil {
		return err
	}

	feedBytes, err := gtfsrt.Marshal(gtfsrt.TripUpdates(predictions, generatedAt))
	if err != nil {
		return err
	}

	_, err = writer.Write(feedBytes)
	return err
}
