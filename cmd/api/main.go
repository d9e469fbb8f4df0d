package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/gurjotsinghmanak/PropertyListings/internal/controller"
	"github.com/gurjotsinghmanak/PropertyListings/internal/model"
	"github.com/gurjotsinghmanak/PropertyListings/internal/repository"
	"github.com/gurjotsinghmanak/PropertyListings/pkg/config"
	"github.com/gurjotsinghmanak/PropertyListings/pkg/seed"
)

func setupRoutes(app *fiber.App) {
	api := app.Group("/api")

	listings := api.Group("/listings")
	listings.Get("/search", controller.SearchListings) // before /:id
	listings.Get("/", controller.GetListings)
	listings.Get("/:id", controller.GetListing)
	listings.Post("/", controller.CreateListing)
	listings.Put("/:id", controller.UpdateListing)
	listings.Delete("/:id", controller.DeleteListing)
}

func main() {
	cfg := config.Load()

	repo := repository.NewInMemory(seed.Properties())
	controller.InitListingController(repo)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(model.Response{
				Success: false,
				Message: "An unexpected error occurred",
				Errors:  []string{err.Error()},
			})
		},
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New())
	app.Use(cors.New())

	setupRoutes(app)

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
