package feed

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/eko/gocache/lib/v4/store"
	"github.com/rs/zerolog/log"
	"github.com/travigo/nextbus/pkg/nextbus"
)

// DocumentCache is satisfied by *cache.Cache[string] from gocache
type DocumentCache interface {
	Get(ctx context.Context, key any) (string, error)
	Set(ctx context.Context, key any, object string, options ...store.Option) error
}

// Client runs one fetch and one fresh handler per call. A document reporting an Error
// element is returned as a *nextbus.Error in place of the result.
type Client struct {
	BaseURL string
	Fetcher Fetcher

	Cache           DocumentCache
	CacheExpiration time.Duration
}

func NewClient(baseURL string, fetcher Fetcher) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		BaseURL: baseURL,
		Fetcher: fetcher,
	}
}

func (c *Client) GetAgencies(ctx context.Context) ([]*nextbus.Agency, error) {
	handler := nextbus.NewAgencyListHandler()

	if err := c.query(ctx, handler, CommandAgencyList); err != nil {
		return nil, err
	}

	return handler.Agencies, nil
}

func (c *Client) GetRoutes(ctx context.Context, agencyTag string) ([]*nextbus.RouteSummary, error) {
	handler := nextbus.NewRouteListHandler()

	if err := c.query(ctx, handler, CommandRouteList, agencyTag); err != nil {
		return nil, err
	}

	return handler.Routes, nil
}

func (c *Client) GetRouteConfig(ctx context.Context, agencyTag string, routeTag string) (*nextbus.RouteDetail, error) {
	handler := nextbus.NewRouteConfigHandler()

	if err := c.query(ctx, handler, CommandRouteConfig, agencyTag, routeTag); err != nil {
		return nil, err
	}

	if handler.Route == nil {
		return nil, fmt.Errorf("%w: no route element in routeConfig response", nextbus.ErrMalformedDocument)
	}

	return handler.Route, nil
}

func (c *Client) GetPredictions(ctx context.Context, agencyTag string, routeTag string, stopTag string) (*nextbus.PredictionSet, error) {
	handler := nextbus.NewPredictionsHandler()

	if err := c.query(ctx, handler, CommandPredictions, agencyTag, routeTag, stopTag); err != nil {
		return nil, err
	}

	if handler.Predictions == nil {
		return nil, fmt.Errorf("%w: no predictions element in predictions response", nextbus.ErrMalformedDocument)
	}

	return handler.Predictions, nil
}

func (c *Client) query(ctx context.Context, handler nextbus.ContentHandler, command Command, tags ...string) error {
	url := buildQuery(c.BaseURL, command, tags...)
	useCache := c.Cache != nil && command.Cacheable()

	if useCache {
		if document, err := c.Cache.Get(ctx, url); err == nil && document != "" {
			log.Debug().Str("url", url).Msg("Feed document cache hit")

			return c.parse(strings.NewReader(document), handler)
		}
	}

	startTime := time.Now()

	body, err := c.Fetcher.Fetch(ctx, url)
	if err != nil {
		return err
	}
	defer body.Close()

	var reader io.Reader = body
	var document bytes.Buffer
	if useCache {
		reader = io.TeeReader(body, &document)
	}

	if err := c.parse(reader, handler); err != nil {
		return err
	}

	log.Debug().
		Str("command", string(command)).
		Str("latency", time.Since(startTime).String()).
		Msg("Fetched feed document")

	if useCache {
		err := c.Cache.Set(ctx, url, document.String(), store.WithExpiration(c.CacheExpiration))
		if err != nil {
			log.Error().Err(err).Str("url", url).Msg("Failed to cache feed document")
		}
	}

	return nil
}

func (c *Client) parse(reader io.Reader, handler nextbus.ContentHandler) error {
	if err := nextbus.ParseXML(reader, handler); err != nil {
		return err
	}

	// An Error element replaces whatever result was built
	if feedError := handler.FeedError(); feedError != nil {
		return feedError
	}

	return nil
}
