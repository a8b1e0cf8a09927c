package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/goncalovirginia/Fakebook/internal/config"
	"github.com/goncalovirginia/Fakebook/internal/social"
	"github.com/goncalovirginia/Fakebook/internal/stream"
)

type Server struct {
	App      *fiber.App
	Cfg      config.Config
	Registry *social.Registry
	Stream   *stream.Hub
}

func NewServer(cfg config.Config, redisClient *redis.Client) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{
		App:      app,
		Cfg:      cfg,
		Registry: social.NewRegistry(),
		Stream:   stream.NewHub(redisClient),
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	social.RegisterRoutes(s.App, s.Registry, s.Stream)
	stream.RegisterRoutes(s.App.Group("/stream"), s.Stream)
}
