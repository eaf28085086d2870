package kit

import (
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

// PagingParams contains pagination parameters from an HTTP request.
type PagingParams struct {
	Limit     int
	Offset    int
	WithTotal bool
}

// ParsePaging reads limit/offset query params, clamping limit to 1..100.
func ParsePaging(c *fiber.Ctx) PagingParams {
	return PagingParams{
		Limit:     lo.Clamp(c.QueryInt("limit", 20), 1, 100),
		Offset:    max(c.QueryInt("offset", 0), 0),
		WithTotal: c.Query("with_total", "false") == "true",
	}
}
