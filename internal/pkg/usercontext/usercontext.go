package usercontext

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/GaneshPrasad14/coimbatore-express-sub000/app/models"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/internal/pkg/policy"
)

const localsKey = "ACTOR_CONTEXT"

// Headers set by the auth gateway in front of this API. Requests
// arriving without them are treated as anonymous readers.
const (
	HeaderUserID    = "X-User-Id"
	HeaderUserRole  = "X-User-Role"
	HeaderUserEmail = "X-User-Email"
)

// Middleware resolves the gateway identity headers into a policy.Actor
// stored on the request context.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := policy.Actor{
			Role:  models.AuthorRole(c.Get(HeaderUserRole)),
			Email: c.Get(HeaderUserEmail),
		}
		if raw := c.Get(HeaderUserID); raw != "" {
			if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
				actor.UserID = uint(id)
			}
		}
		c.Locals(localsKey, actor)
		return c.Next()
	}
}

// GetActor retrieves the actor from the fiber context, anonymous if unset.
func GetActor(c *fiber.Ctx) policy.Actor {
	if v := c.Locals(localsKey); v != nil {
		if actor, ok := v.(policy.Actor); ok {
			return actor
		}
	}
	return policy.Actor{}
}
