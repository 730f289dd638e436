package export

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/nextbus/pkg/feed"
	"github.com/travigo/nextbus/pkg/nextbus"
	"google.golang.org/protobuf/proto"
)

type fakeClient struct{}

func (f *fakeClient) GetAgencies(ctx context.Context) ([]*nextbus.Agency, error) {
	return []*nextbus.Agency{{Tag: "sf-muni", Title: "San Francisco Muni"}}, nil
}

func (f *fakeClient) GetRoutes(ctx context.Context, agencyTag string) ([]*nextbus.RouteSummary, error) {
	return nil, &nextbus.Error{ShouldRetry: "false", Message: "Agency is not valid"}
}

func (f *fakeClient) GetRouteConfig(ctx context.Context, agencyTag string, routeTag string) (*nextbus.RouteDetail, error) {
	route := nextbus.NewRouteDetail(nextbus.Attributes{"tag": routeTag})
	route.AddStop(nextbus.Attributes{"tag": "3909", "title": "Carl St & Cole St", "stopId": "13909", "lat": "37.76", "lon": "-122.44"})
	route.AddStop(nextbus.Attributes{"tag": "5240"})

	inbound := route.AddDirection(nextbus.Attributes{"tag": "N__IB1"})
	outbound := route.AddDirection(nextbus.Attributes{"tag": "N__OB1"})
	_ = route.AddDirectionStop(inbound, nextbus.Attributes{"tag": "3909"})
	_ = route.AddDirectionStop(outbound, nextbus.Attributes{"tag": "3909"})

	return route, nil
}

func (f *fakeClient) GetPredictions(ctx context.Context, agencyTag string, routeTag string, stopTag string) (*nextbus.PredictionSet, error) {
	predictions := nextbus.NewPredictionSet(nextbus.Attributes{"routeTag": routeTag, "stopTag": stopTag})
	direction := predictions.AddDirection(nextbus.Attributes{"title": "Inbound"})
	_ = predictions.AddPrediction(direction, nextbus.Attributes{"minutes": "5", "epochTime": "1700000000000", "isDeparture": "true"})

	return predictions, nil
}

func TestStops(t *testing.T) {
	var output bytes.Buffer
	require.NoError(t, Stops(context.Background(), &fakeClient{}, "sf-muni", "N", &output))

	assert.Equal(t, "route_tag,stop_tag,stop_id,stop_title,stop_lat,stop_lon,direction_tags\n"+
		"N,3909,13909,Carl St & Cole St,37.76,-122.44,N__IB1|N__OB1\n"+
		"N,5240,unknown,Stop No: 5240,,,\n", output.String())
}

func TestGTFSRealtime(t *testing.T) {
	var output bytes.Buffer
	generatedAt := time.Unix(1699999990, 0)
	require.NoError(t, GTFSRealtime(context.Background(), &fakeClient{}, "sf-muni", "N", "3909", generatedAt, &output))

	message := &gtfs.FeedMessage{}
	require.NoError(t, proto.Unmarshal(output.Bytes(), message))

	assert.Equal(t, uint64(1699999990), message.GetHeader().GetTimestamp())
	require.Len(t, message.GetEntity(), 1)

	stopTimeUpdate := message.GetEntity()[0].GetTripUpdate().GetStopTimeUpdate()[0]
	assert.Equal(t, "3909", stopTimeUpdate.GetStopId())
	assert.Equal(t, int64(1700000000), stopTimeUpdate.GetDeparture().GetTime())
}

func TestDump(t *testing.T) {
	var output bytes.Buffer
	require.NoError(t, Dump(context.Background(), &fakeClient{}, feed.CommandAgencyList, "", "", "", &output))
	assert.Contains(t, output.String(), "San Francisco Muni")

	output.Reset()
	require.NoError(t, Dump(context.Background(), &fakeClient{}, feed.CommandRouteList, "nowhere", "", "", &output))
	assert.Contains(t, output.String(), "Agency is not valid")

	assert.Error(t, Dump(context.Background(), &fakeClient{}, feed.Command("vehicleLocations"), "", "", "", &output))
}

type closeErrorWriter struct {
	bytes.Buffer

	closeErr error
	closed   bool
}

func (w *closeErrorWriter) Close() error {
	w.closed = true
	return w.closeErr
}

func TestWriteOutputReportsCloseError(t *testing.T) {
	diskFull := errors.New("no space left on device")
	writeFailed := errors.New("feed unavailable")

	output := &closeErrorWriter{closeErr: diskFull}
	err := writeOutput(output, func(writer io.Writer) error {
		return Stops(context.Background(), &fakeClient{}, "sf-muni", "N", writer)
	})
	assert.ErrorIs(t, err, diskFull)
	assert.True(t, output.closed)

	// The write error wins over the close error
	output = &closeErrorWriter{closeErr: diskFull}
	err = writeOutput(output, func(writer io.Writer) error {
		return writeFailed
	})
	assert.ErrorIs(t, err, writeFailed)
	assert.True(t, output.closed)

	output = &closeErrorWriter{}
	require.NoError(t, writeOutput(output, func(writer io.Writer) error {
		return GTFSRealtime(context.Background(), &fakeClient{}, "sf-muni", "N", "3909", time.Now(), writer)
	}))
	assert.True(t, output.closed)
	assert.NotZero(t, output.Len())
}
