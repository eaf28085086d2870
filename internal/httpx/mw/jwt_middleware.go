// Package mw contains HTTP middleware including authentication and rate limiting.
package mw

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AuthContext holds authentication details extracted from a bearer token.
type AuthContext struct {
	Subject string // user:<id>
	Kind    string // user | service
	Roles   []string
}

// TokenParser parses a token string and returns subject, kind and roles.
type TokenParser func(token string) (string, string, []string, error)

// BearerAuth attaches auth context parsed by the given token parser. Requests
// without a valid token simply continue unauthenticated; route guards decide.
func BearerAuth(parse TokenParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get("Authorization")
		if authz == "" || !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			return c.Next()
		}
		token := strings.TrimSpace(authz[len("Bearer "):])
		sub, kind, roles, err := parse(token)
		if err == nil && sub != "" {
			c.Locals("auth", &AuthContext{Subject: sub, Kind: kind, Roles: roles})
		}
		return c.Next()
	}
}

// RequireUser enforces an authenticated user (kind=user).
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ac, _ := c.Locals("auth").(*AuthContext)
		if ac == nil || ac.Kind != "user" || ac.Subject == "" {
			return fiber.ErrUnauthorized
		}
		return c.Next()
	}
}

// RequireRoles enforces that the authenticated context has at least one of the roles.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ac, _ := c.Locals("auth").(*AuthContext)
		if ac == nil || ac.Kind == "" {
			return fiber.ErrUnauthorized
		}
		if len(roles) == 0 {
			return c.Next()
		}
		for _, need := range roles {
			for _, have := range ac.Roles {
				if have == need {
					return c.Next()
				}
			}
		}
		return fiber.ErrForbidden
	}
}

// UserID extracts the numeric user id from a "user:<id>" subject.
func UserID(c *fiber.Ctx) (int, bool) {
	ac, _ := c.Locals("auth").(*AuthContext)
	if ac == nil {
		return 0, false
	}
	raw, found := strings.CutPrefix(ac.Subject, "user:")
	if !found {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
