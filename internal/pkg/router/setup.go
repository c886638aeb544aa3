package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/GaneshPrasad14/coimbatore-express-sub000/app/repository"
)

// Router installs a group of routes onto the app
type Router interface {
	InstallRouter(app *fiber.App)
}

// InstallRouter wires every route group. The identity middleware is
// attached inside the API router before any handler that reads the actor.
func InstallRouter(app *fiber.App, repos *repository.Repositories) {
	setup(app, NewApiRouter(repos))
}

func setup(app *fiber.App, routers ...Router) {
	for _, r := range routers {
		r.InstallRouter(app)
	}
}
