package routes

import (
	"io"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
)

type AppConfig struct {
	AllowedOrigins string
	UploadDir      string
	PublicPath     string
	BodyLimit      int
	LogOutput      io.Writer
}

// NewApp builds the Fiber application with middleware, static uploads,
// swagger and every resource route.
func NewApp(cfg AppConfig, h Handlers) *fiber.App {
	if cfg.LogOutput == nil {
		cfg.LogOutput = os.Stdout
	}
	if cfg.AllowedOrigins == "" {
		cfg.AllowedOrigins = "*"
	}

	app := fiber.New(fiber.Config{
		BodyLimit: cfg.BodyLimit,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${method} ${path} ${latency}\n",
		Output: cfg.LogOutput,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: false,
	}))

	if cfg.UploadDir != "" && cfg.PublicPath != "" {
		app.Static(cfg.PublicPath, cfg.UploadDir)
	}
	app.Get("/swagger/*", swagger.HandlerDefault)

	InitRoutes(app, h)
	return app
}
