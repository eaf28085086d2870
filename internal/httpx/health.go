package httpx

import (
	"github.com/gofiber/fiber/v2"

	"forum-fingerprint-api/internal/httpx/kit"
)

// HealthHandler reports service liveness.
//
//	@Summary		Health Check
//	@Description	Reports whether the API is up
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string	"service healthy"
//	@Router			/health [get]
func HealthHandler(c *fiber.Ctx) error {
	return kit.OK(c, fiber.Map{"status": "ok"})
}
