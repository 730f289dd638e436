package indexer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/travigo/nextbus/pkg/elastic_client"
	"github.com/travigo/nextbus/pkg/nextbus"
)

const stopIndexMapping = `{
	"settings": {
		"number_of_shards": 1,
		"number_of_replicas": 1
	},
	"mappings": {
		"properties": {
			"AgencyTag": {
				"type": "keyword"
			},
			"StopTag": {
				"type": "keyword"
			},
			"StopID": {
				"type": "keyword"
			},
			"Routes": {
				"type": "keyword"
			},
			"Title": {
				"type": "text",
				"fields": {
					"keyword": {
						"type": "keyword",
						"ignore_above": 256
					},
					"search_as_you_type": {
						"type": "search_as_you_type"
					}
				}
			},
			"Location": {
				"type": "geo_point"
			}
		}
	}
}`

type FeedClient interface {
	GetRoutes(ctx context.Context, agencyTag string) ([]*nextbus.RouteSummary, error)
	GetRouteConfig(ctx context.Context, agencyTag string, routeTag string) (*nextbus.RouteDetail, error)
}

type StopLocation struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type StopDocument struct {
	AgencyTag string
	StopTag   string
	StopID    string
	Title     string
	Routes    []string
	Location  *StopLocation `json:",omitempty"`
}

// StopDocuments merges the stops of every route, a stop served by several routes becomes one document
func StopDocuments(agencyTag string, routes []*nextbus.RouteDetail) []*StopDocument {
	documents := []*StopDocument{}
	byTag := map[string]*StopDocument{}

	for _, route := range routes {
		for _, stop := range route.Stops {
			if document, exists := byTag[stop.Tag]; exists {
				document.Routes = append(document.Routes, route.Tag)
				continue
			}

			document := &StopDocument{
				AgencyTag: agencyTag,
				StopTag:   stop.Tag,
				StopID:    stop.StopID,
				Title:     stop.DisplayName(),
				Routes:    []string{route.Tag},
				Location:  parseLocation(stop),
			}

			byTag[stop.Tag] = document
			documents = append(documents, document)
		}
	}

	return documents
}

func parseLocation(stop *nextbus.Stop) *StopLocation {
	lat, latErr := strconv.ParseFloat(stop.Lat, 64)
	lon, lonErr := strconv.ParseFloat(stop.Lon, 64)

	if latErr != nil || lonErr != nil {
		return nil
	}

	return &StopLocation{Lat: lat, Lon: lon}
}

func loadRoutes(ctx context.Context, client FeedClient, agencyTag string) ([]*nextbus.RouteDetail, error) {
	summaries, err := client.GetRoutes(ctx, agencyTag)
	if err != nil {
		return nil, err
	}

	routesPool := pool.NewWithResults[*nextbus.RouteDetail]().WithErrors().WithMaxGoroutines(5)
	for _, summary := range summaries {
		summary := summary
		routesPool.Go(func() (*nextbus.RouteDetail, error) {
			return client.GetRouteConfig(ctx, agencyTag, summary.Tag)
		})
	}

	return routesPool.Wait()
}

func IndexStops(ctx context.Context, client FeedClient, agencyTag string) error {
	routes, err := loadRoutes(ctx, client, agencyTag)
	if err != nil {
		return err
	}

	indexName := fmt.Sprintf("nextbus-stops-%s-%d", agencyTag, time.Now().Unix())

	if err := createStopIndex(ctx, indexName); err != nil {
		return err
	}

	documents := StopDocuments(agencyTag, routes)
	for _, document := range documents {
		jsonStop, err := json.Marshal(document)
		if err != nil {
			return err
		}

		elastic_client.IndexRequest(indexName, bytes.NewReader(jsonStop))
	}

	log.Info().Str("index", indexName).Int("stops", len(documents)).Msg("Sent all index requests to queue")

	elastic_client.WaitUntilQueueEmpty()

	return deleteOldIndexes(ctx, fmt.Sprintf("nextbus-stops-%s-*", agencyTag), indexName)
}

func createStopIndex(ctx context.Context, indexName string) error {
	indexReq := esapi.IndicesCreateRequest{
		Index: indexName,
		Body:  strings.NewReader(stopIndexMapping),
	}

	resp, err := indexReq.Do(ctx, elastic_client.Client)
	if err != nil {
		return fmt.Errorf("creating index %s: %w", indexName, err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("creating index %s: %s", indexName, resp.Status())
	}

	return nil
}
