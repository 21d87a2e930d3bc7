package main

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/YishaiYosifov/chess2-sub007/internal/config"
	"github.com/YishaiYosifov/chess2-sub007/internal/controller"
	"github.com/YishaiYosifov/chess2-sub007/internal/engine"
	"github.com/YishaiYosifov/chess2-sub007/internal/service"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	layout, err := cfg.Layout()
	if err != nil {
		log.Fatalf("layout: %v", err)
	}
	eng, err := engine.New(engine.DefaultRulebook())
	if err != nil {
		log.Fatalf("rulebook: %v", err)
	}

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.AllowOrigins, ", "),
		AllowHeaders:     "Origin, Content-Type, Accept, X-Player-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: true,
	}))

	// Initialize services
	gameManager := service.NewGameManager(eng, layout)
	gameService := service.NewGameService(gameManager)

	// Initialize controllers
	gameController := controller.NewGameController(gameService)
	wsController := controller.NewWebSocketController(gameService)

	controller.RegisterRoutes(app, gameController, wsController, cfg)

	log.Printf("listening on %s", cfg.Listen)
	log.Fatal(app.Listen(cfg.Listen))
}
