package router

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/GaneshPrasad14/coimbatore-express-sub000/internal/pkg/apperr"
)

// ErrorHandler normalizes every error escaping a handler into the
// {success, message} envelope. Typed application errors carry their own
// status; anything unexpected is logged and returned as a bare 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if appErr, ok := apperr.As(err); ok {
		body := fiber.Map{
			"success": false,
			"message": appErr.Message,
		}
		if len(appErr.Fields) > 0 {
			body["errors"] = appErr.Fields
		}
		if appErr.StatusCode() == fiber.StatusInternalServerError {
			log.Errorf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
			body["message"] = "Internal server error"
		}
		return c.Status(appErr.StatusCode()).JSON(body)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"success": false,
			"message": fiberErr.Message,
		})
	}

	log.Errorf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "Internal server error",
	})
}
