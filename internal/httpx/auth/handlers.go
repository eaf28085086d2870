package auth

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"forum-fingerprint-api/ent"
	"forum-fingerprint-api/ent/user"
	"forum-fingerprint-api/internal/config"
	"forum-fingerprint-api/internal/httpx/kit"
)

func rolesFor(u *ent.User) []string {
	if u.Type == user.TypeAdmin {
		return []string{"user", "admin"}
	}
	return []string{"user"}
}

func subjectFor(u *ent.User) string { return "user:" + strconv.Itoa(u.ID) }

// RegisterHandler creates a forum user account.
//
//	@Summary      Register
//	@Description  Create a user with username and password
//	@Tags         auth
//	@Accept       json
//	@Produce      json
//	@Param        body  body  auth.RegisterRequest  true  "{username, password}"
//	@Success      201   {object}  map[string]interface{}  "created"
//	@Failure      400   {object}  map[string]interface{}  "bad request"
//	@Router       /auth/register [post]
func RegisterHandler(cfg *config.Config, client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegisterRequest
		if err := c.BodyParser(&body); err != nil || body.Username == "" || body.Password == "" {
			return kit.BadRequest("username and password required", nil)
		}
		hash, err := HashPassword(body.Password)
		if err != nil {
			return kit.InternalError("hash password failed", err.Error())
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		u, err := client.User.Create().SetUsername(body.Username).SetPasswordHash(hash).Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return kit.BadRequest("username already taken", body.Username)
			}
			return kit.InternalError("create user failed", err.Error())
		}
		return kit.Created(c, fiber.Map{"id": u.ID, "username": u.Username})
	}
}

// LoginHandler verifies credentials and issues tokens.
//
//	@Summary      Login
//	@Description  Verify credentials, return an access token and set the refresh cookie
//	@Tags         auth
//	@Accept       json
//	@Produce      json
//	@Param        body  body  auth.LoginRequest  true  "{username, password}"
//	@Success      200   {object}  auth.TokenResponse
//	@Failure      401   {object}  map[string]interface{}  "unauthorized"
//	@Router       /auth/login [post]
func LoginHandler(cfg *config.Config, client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil || body.Username == "" || body.Password == "" {
			return kit.BadRequest("username and password required", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		u, err := client.User.Query().Where(user.UsernameEQ(body.Username)).Only(ctx)
		if err != nil || !VerifyPassword(body.Password, u.PasswordHash) {
			return fiber.ErrUnauthorized
		}
		access, _, err := SignAccess(cfg, subjectFor(u), "user", rolesFor(u))
		if err != nil {
			return kit.InternalError("sign access failed", err.Error())
		}
		refresh, _, err := SignRefresh(cfg, subjectFor(u), "user", rolesFor(u))
		if err != nil {
			return kit.InternalError("sign refresh failed", err.Error())
		}
		SetRefreshCookie(c, refresh, cfg.JWT.RefreshDays)
		return kit.OK(c, TokenResponse{
			AccessToken: access,
			TokenType:   "Bearer",
			ExpiresIn:   cfg.JWT.AccessMin * 60,
			Username:    u.Username,
		})
	}
}

// RefreshHandler mints a new access token from the refresh cookie.
//
//	@Summary      Refresh Access Token
//	@Tags         auth
//	@Produce      json
//	@Success      200   {object}  auth.TokenResponse
//	@Failure      401   {object}  map[string]interface{}  "unauthorized"
//	@Router       /auth/refresh [post]
func RefreshHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rt := c.Cookies("refresh_token")
		if rt == "" {
			return fiber.ErrUnauthorized
		}
		claims, err := ParseAndValidate(cfg, rt)
		if err != nil {
			return fiber.ErrUnauthorized
		}
		access, _, err := SignAccess(cfg, claims.Subject, claims.Kind, claims.Roles)
		if err != nil {
			return kit.InternalError("sign access failed", err.Error())
		}
		return kit.OK(c, TokenResponse{AccessToken: access, TokenType: "Bearer", ExpiresIn: cfg.JWT.AccessMin * 60})
	}
}
