package indexer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/nextbus/pkg/nextbus"
)

type fakeClient struct {
	routes map[string]*nextbus.RouteDetail
}

func (f *fakeClient) GetRoutes(ctx context.Context, agencyTag string) ([]*nextbus.RouteSummary, error) {
	if agencyTag != "sf-muni" {
		return nil, &nextbus.Error{ShouldRetry: "false", Message: "Agency is not valid"}
	}

	return []*nextbus.RouteSummary{{Tag: "N"}, {Tag: "J"}}, nil
}

func (f *fakeClient) GetRouteConfig(ctx context.Context, agencyTag string, routeTag string) (*nextbus.RouteDetail, error) {
	return f.routes[routeTag], nil
}

func newRoute(tag string, stops ...nextbus.Attributes) *nextbus.RouteDetail {
	route := nextbus.NewRouteDetail(nextbus.Attributes{"tag": tag})
	for _, stop := range stops {
		route.AddStop(stop)
	}
	return route
}

func TestStopDocuments(t *testing.T) {
	routes := []*nextbus.RouteDetail{
		newRoute("N",
			nextbus.Attributes{"tag": "3909", "title": "Carl St & Cole St", "stopId": "13909", "lat": "37.7657", "lon": "-122.4497"},
			nextbus.Attributes{"tag": "5240"},
		),
		newRoute("J",
			nextbus.Attributes{"tag": "3909", "title": "Carl St & Cole St", "stopId": "13909", "lat": "37.7657", "lon": "-122.4497"},
		),
	}

	documents := StopDocuments("sf-muni", routes)
	require.Len(t, documents, 2)

	assert.Equal(t, &StopDocument{
		AgencyTag: "sf-muni",
		StopTag:   "3909",
		StopID:    "13909",
		Title:     "Carl St & Cole St",
		Routes:    []string{"N", "J"},
		Location:  &StopLocation{Lat: 37.7657, Lon: -122.4497},
	}, documents[0])

	assert.Equal(t, "Stop No: 5240", documents[1].Title)
	assert.Equal(t, nextbus.UnknownStopID, documents[1].StopID)
	assert.Nil(t, documents[1].Location)
}

func TestLoadRoutes(t *testing.T) {
	client := &fakeClient{
		routes: map[string]*nextbus.RouteDetail{
			"N": newRoute("N"),
			"J": newRoute("J"),
		},
	}

	routes, err := loadRoutes(context.Background(), client, "sf-muni")
	require.NoError(t, err)
	assert.Len(t, routes, 2)

	_, err = loadRoutes(context.Background(), client, "nowhere")
	assert.EqualError(t, err, "Agency is not valid")
}
