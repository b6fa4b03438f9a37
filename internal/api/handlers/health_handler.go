package handlers

import "github.com/gofiber/fiber/v2"

// Health answers liveness probes unconditionally.
func Health(c *fiber.Ctx) error {
	return c.SendString("ok")
}
