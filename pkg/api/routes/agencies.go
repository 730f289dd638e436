package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/travigo/nextbus/pkg/gtfsrt"
	"github.com/travigo/nextbus/pkg/nextbus"
	"golang.org/x/exp/slices"
)

type FeedClient interface {
	GetAgencies(ctx context.Context) ([]*nextbus.Agency, error)
	GetRoutes(ctx context.Context, agencyTag string) ([]*nextbus.RouteSummary, error)
	GetRouteConfig(ctx context.Context, agencyTag string, routeTag string) (*nextbus.RouteDetail, error)
	GetPredictions(ctx context.Context, agencyTag string, routeTag string, stopTag string) (*nextbus.PredictionSet, error)
}

var detailLevels = []string{"basic", "full"}

func AgenciesRouter(router fiber.Router, client FeedClient) {
	router.Get("/", func(c *fiber.Ctx) error {
		agencies, err := client.GetAgencies(c.UserContext())
		if err != nil {
			return sendFeedError(c, err)
		}

		return sendReduced(c, agencies, "basic")
	})

	router.Get("/:agency/routes", func(c *fiber.Ctx) error {
		routes, err := client.GetRoutes(c.UserContext(), c.Params("agency"))
		if err != nil {
			return sendFeedError(c, err)
		}

		return sendReduced(c, routes, "basic")
	})

	router.Get("/:agency/routes/:route", func(c *fiber.Ctx) error {
		detail := c.Query("detail", "basic")
		if !slices.Contains(detailLevels, detail) {
			c.Status(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "detail must be one of basic or full",
			})
		}

		route, err := client.GetRouteConfig(c.UserContext(), c.Params("agency"), c.Params("route"))
		if err != nil {
			return sendFeedError(c, err)
		}

		group := "basic"
		if detail == "full" {
			group = "detailed"
		}

		return sendReduced(c, route, group)
	})

	router.Get("/:agency/routes/:route/stops/:stop/predictions", func(c *fiber.Ctx) error {
		predictions, err := client.GetPredictions(c.UserContext(), c.Params("agency"), c.Params("route"), c.Params("stop"))
		if err != nil {
			return sendFeedError(c, err)
		}

		return sendReduced(c, predictions, "basic")
	})

	router.Get("/:agency/routes/:route/stops/:stop/gtfsrt", func(c *fiber.Ctx) error {
		predictions, err := client.GetPredictions(c.UserContext(), c.Params("agency"), c.Params("route"), c.Params("stop"))
		if err != nil {
			return sendFeedError(c, err)
		}

		feedBytes, err := gtfsrt.Marshal(gtfsrt.TripUpdates(predictions, time.Now()))
		if err != nil {
			c.Status(fiber.StatusInternalServerError)
			return c.JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Set(fiber.HeaderContentType, "application/x-protobuf")
		return c.Send(feedBytes)
	})
}
