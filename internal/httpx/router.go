// Package httpx wires the HTTP surface: auth, fingerprint submission and the
// admin review endpoints.
package httpx

import (
	"github.com/gofiber/fiber/v2"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	"forum-fingerprint-api/ent"
	"forum-fingerprint-api/internal/config"
	"forum-fingerprint-api/internal/esx"
	"forum-fingerprint-api/internal/fpx"
	"forum-fingerprint-api/internal/httpx/admin"
	"forum-fingerprint-api/internal/httpx/auth"
	"forum-fingerprint-api/internal/httpx/fingerprints"
	"forum-fingerprint-api/internal/httpx/mw"
	"forum-fingerprint-api/internal/mqx"
	"forum-fingerprint-api/internal/redisx"
)

// Providers carries the optional infrastructure collaborators. Nil members
// degrade gracefully: no MQ means no events, no ES means empty search, no
// Redis means per-process rate limiting.
type Providers struct {
	Cfg *config.Store
	MQ  mqx.Publisher
	ES  *esx.Client
	RDB *redisx.Client
}

// Register mounts every route on the app.
func Register(app *fiber.App, client *ent.Client, p *Providers) {
	cfg := p.Cfg.Get()

	app.Get("/health", HealthHandler)
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	app.Use(mw.BearerAuth(func(token string) (string, string, []string, error) {
		claims, err := auth.ParseAndValidate(p.Cfg.Get(), token)
		if err != nil {
			return "", "", nil, err
		}
		return claims.Subject, claims.Kind, claims.Roles, nil
	}))

	app.Post("/auth/register", auth.RegisterHandler(cfg, client))
	app.Post("/auth/login", auth.LoginHandler(cfg, client))
	app.Post("/auth/refresh", auth.RefreshHandler(cfg))

	registry := fpx.NewRegistry(client)
	resolver := fpx.NewResolver(client, registry)
	store := fpx.NewStore(client)
	silencer := &fpx.EventSilencer{Client: client, MQ: p.MQ}

	app.Post("/fingerprint",
		mw.RateLimitDefault(p.RDB, cfg.Fingerprint.RateWindowSec, cfg.Fingerprint.RateLimit),
		mw.RequireUser(),
		fingerprints.SubmitHandler(fingerprints.Deps{
			Cfg:      p.Cfg,
			Client:   client,
			Store:    store,
			Registry: registry,
			Silencer: silencer,
			ES:       p.ES,
		}),
	)

	adm := admin.Deps{Client: client, Resolver: resolver, Registry: registry, ES: p.ES, MQ: p.MQ}
	staff := mw.RequireRoles("admin")
	app.Get("/admin/fingerprint", staff, admin.IndexHandler(adm))
	app.Get("/admin/fingerprint/user_report", staff, admin.UserReportHandler(adm))
	app.Put("/admin/fingerprint/flag", staff, admin.FlagHandler(adm))
	app.Post("/admin/fingerprint/ignore", staff, admin.IgnoreHandler(adm))
	app.Get("/admin/fingerprint/search", staff, admin.SearchHandler(adm))
}
