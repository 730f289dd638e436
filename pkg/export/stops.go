package export

import (
	"context"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/travigo/nextbus/pkg/nextbus"
)

type StopRow struct {
	RouteTag      string `csv:"route_tag"`
	StopTag       string `csv:"stop_tag"`
	StopID        string `csv:"stop_id"`
	Title         string `csv:"stop_title"`
	Lat           string `csv:"stop_lat"`
	Lon           string `csv:"stop_lon"`
	DirectionTags string `csv:"direction_tags"`
}

func NewStopRows(route *nextbus.RouteDetail) []*StopRow {
	directionTags := map[string][]string{}
	for _, direction := range route.Directions {
		for _, stop := range direction.Stops {
			directionTags[stop.Tag] = append(directionTags[stop.Tag], direction.Tag)
		}
	}

	rows := make([]*StopRow, 0, len(route.Stops))
	for _, stop := range route.Stops {
		row := &StopRow{
			RouteTag: route.Tag,
			StopTag:  stop.Tag,
			StopID:   stop.StopID,
			Title:    stop.DisplayName(),
			Lat:      stop.Lat,
			Lon:      stop.Lon,

			DirectionTags: strings.Join(directionTags[stop.Tag], "|"),
		}

		rows = append(rows, row)
	}

	return rows
}

func Stops(ctx context.Context, client FeedClient, agencyTag string, routeTag string, writer io.Writer) error {
	route, err := client.GetRouteConfig(ctx, agencyTag, routeTag)
	if err != nil {
		return err
	}

	return gocsv.Marshal(NewStopRows(route), writer)
}
