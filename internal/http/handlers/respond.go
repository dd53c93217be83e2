package handlers

import (
	"github.com/gofiber/fiber/v2"

	"stockroom/internal/apperr"
)

// respondErr maps any error to its JSON body and status code. Extra
// fields (available/requested/required) sit next to the "error" key.
func respondErr(c *fiber.Ctx, err error) error {
	e := apperr.From(err)
	body := fiber.Map{"error": e.Message}
	for k, v := range e.Fields {
		body[k] = v
	}
	return c.Status(e.Status).JSON(body)
}
