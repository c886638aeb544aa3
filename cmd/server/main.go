package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"

	"github.com/GaneshPrasad14/coimbatore-express-sub000/app/repository"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/internal/pkg/cache"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/internal/pkg/database"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/internal/pkg/env"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/internal/pkg/router"
)

func main() {
	env.SetupEnvFile()

	db, err := database.SetupDatabase()
	if err != nil {
		log.Fatalf("Database setup failed: %v", err)
	}
	cache.SetupCache()

	app := NewApplication(db)

	// Graceful shutdown: close the listener first, then the pools.
	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-done
		if err := app.Shutdown(); err != nil {
			log.Errorf("Shutdown failed: %v", err)
		}
	}()

	addr := fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "0.0.0.0"), env.GetEnv("APP_PORT", "4000"))
	if err := app.Listen(addr); err != nil {
		log.Errorf("Server stopped: %v", err)
	}

	if err := database.Close(db); err != nil {
		log.Errorf("Closing database failed: %v", err)
	}
	if err := cache.Shutdown(); err != nil {
		log.Errorf("Closing cache failed: %v", err)
	}
}

// NewApplication builds the fiber app with the global error handler and
// all routes installed. Separated from main so tests can build the full
// app against their own database handle.
func NewApplication(db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "coimbatore-express-api",
		BodyLimit:    env.GetEnvInt("BODY_LIMIT_BYTES", 50<<20),
		ErrorHandler: router.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	repos := repository.NewRepositories(db)
	router.InstallRouter(app, repos)

	return app
}
