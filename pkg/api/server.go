package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/nextbus/pkg/api/routes"
)

func NewApp(client routes.FeedClient) *fiber.App {
	webApp := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	webApp.Use(NewLogger())

	webApp.Get("version", routes.APIVersion)

	routes.AgenciesRouter(webApp.Group("/agencies"), client)

	return webApp
}

func SetupServer(listen string, client routes.FeedClient) error {
	return NewApp(client).Listen(listen)
}
