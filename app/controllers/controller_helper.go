package controllers

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/GaneshPrasad14/coimbatore-express-sub000/internal/pkg/apperr"
)

var validate = validator.New()

// Envelope field names follow the public API contract:
// {success: bool, data?, message?, pagination?, errors?}.

func respondData(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func respondList(c *fiber.Ctx, data interface{}, pagination fiber.Map) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"data":       data,
		"pagination": pagination,
	})
}

func respondMessage(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}

// parsePagination reads the page/limit query parameters with the usual
// clamping (limit capped at 100).
func parsePagination(c *fiber.Ctx) (page, limit int) {
	page = c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit = c.QueryInt("limit", 10)
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// buildPagination shapes the pagination object. resourceKey names the
// total field per resource, e.g. "totalArticles".
func buildPagination(page, limit int, total int64, resourceKey string) fiber.Map {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return fiber.Map{
		"currentPage": page,
		"totalPages":  totalPages,
		resourceKey:   total,
		"hasNextPage": page < totalPages,
		"hasPrevPage": page > 1,
	}
}

// parseIDParam reads the numeric :id route parameter.
func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, apperr.Validation("Invalid id parameter")
	}
	return uint(id), nil
}

// validateStruct runs the validator tags and converts failures into a
// ValidationError carrying per-field details.
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperr.Validation("Invalid request payload")
	}

	fields := make([]apperr.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperr.FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: "failed on the '" + fe.Tag() + "' rule",
		})
	}
	return apperr.Validation("Validation failed", fields...)
}

// clientIP determines the submitting client's address, honoring the
// proxy headers set by Cloudflare and standard reverse proxies.
func clientIP(c *fiber.Ctx) string {
	if cf := c.Get("CF-Connecting-IP"); cf != "" {
		return cf
	}
	if xff := c.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}
	return c.IP()
}
