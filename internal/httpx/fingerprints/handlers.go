// Package fingerprints exposes the submission endpoint that feeds the
// matching engine.
package fingerprints

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"forum-fingerprint-api/ent"
	"forum-fingerprint-api/internal/config"
	"forum-fingerprint-api/internal/esx"
	"forum-fingerprint-api/internal/fpx"
	"forum-fingerprint-api/internal/httpx/kit"
	"forum-fingerprint-api/internal/httpx/mw"
	"forum-fingerprint-api/internal/logx"
)

var fpLogger = logx.GetScope("fingerprints")

// fpCookieName carries the per-browser cookie fingerprint.
const fpCookieName = "fp"

// fingerprintedHeaders are the request headers folded into the augmented
// fingerprint hash, in addition to the script-reported attributes.
var fingerprintedHeaders = []string{
	"Accept",
	"Accept-Charset",
	"Accept-Datetime",
	"Accept-Encoding",
	"Accept-Language",
	"User-Agent",
}

// Deps bundles everything the submission handler touches.
type Deps struct {
	Cfg      *config.Store
	Client   *ent.Client
	Store    *fpx.Store
	Registry *fpx.Registry
	Silencer fpx.Silencer
	ES       *esx.Client
}

// SubmitHandler ingests one browser fingerprint submission. Each request
// produces up to four observations for the authenticated user: the cookie
// source, the client IP, the raw script hash and the header-augmented hash.
//
//	@Summary      Submit Fingerprint
//	@Description  Store fingerprint observations for the authenticated user
//	@Tags         fingerprint
//	@Accept       json
//	@Produce      json
//	@Param        body  body  fingerprints.SubmitRequest  true  "fingerprint payload"
//	@Success      200   {object}  fingerprints.SubmitResponse
//	@Failure      400   {object}  map[string]interface{}  "bad request"
//	@Security     BearerAuth
//	@Router       /fingerprint [post]
func SubmitHandler(d Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		var body SubmitRequest
		if err := c.BodyParser(&body); err != nil {
			return kit.BadRequest("invalid request body", nil)
		}
		// Validation happens before any write so a rejected submission
		// leaves no partial records behind.
		if body.VisitorID == "" || body.Version == "" {
			return kit.BadRequest("visitor_id and version are required", nil)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		usr, err := d.Client.User.Get(ctx, uid)
		if err != nil {
			if ent.IsNotFound(err) {
				return fiber.ErrUnauthorized
			}
			return kit.InternalError("load user failed", err.Error())
		}

		cfg := d.Cfg.Get()
		now := time.Now().UTC()
		type observation struct {
			name  string
			value string
			data  *string
		}
		var obs []observation

		if cfg.Fingerprint.CookieEnabled {
			ck := c.Cookies(fpCookieName)
			if ck == "" {
				ck = uuid.NewString()
			}
			c.Cookie(&fiber.Cookie{
				Name:     fpCookieName,
				Value:    ck,
				HTTPOnly: true,
				SameSite: "Lax",
				Path:     "/",
				MaxAge:   10 * 365 * 24 * 60 * 60,
			})
			obs = append(obs, observation{name: "cookie", value: ck})
		}
		if cfg.Fingerprint.IPEnabled {
			if ip := c.IP(); ip != "" {
				obs = append(obs, observation{name: "ip", value: ip})
			}
		}

		// Raw script hash, with the reported attribute map as payload. A
		// payload that fails to parse degrades to no payload.
		var attrs fpx.AttributeMap
		if len(body.Data) > 0 {
			if err := json.Unmarshal(body.Data, &attrs); err != nil {
				attrs = nil
			}
		}
		obs = append(obs, observation{name: "fingerprintjs2", value: body.VisitorID, data: fpx.EncodeData(attrs)})

		// Header-augmented hash: visitor id, script version and whichever
		// fingerprinted headers the request carried.
		attrs2 := fpx.AttributeMap{"visitor_id": body.VisitorID, "version": body.Version}
		for _, h := range fingerprintedHeaders {
			if v := c.Get(h); v != "" {
				attrs2[h] = v
			}
		}
		obs = append(obs, observation{name: "fingerprintjs2+", value: fpx.ComputeHash(attrs2), data: fpx.EncodeData(attrs2)})

		hashes := make([]string, 0, len(obs))
		for _, o := range obs {
			if _, err := d.Store.CreateOrTouch(ctx, uid, o.name, o.value, o.data, now); err != nil {
				return kit.InternalError("store fingerprint failed", err.Error())
			}
			hashes = append(hashes, o.value)
			if d.ES != nil {
				doc := esx.ObservationDoc{
					UserID:   uid,
					Username: usr.Username,
					Name:     o.name,
					Value:    o.value,
					SeenAt:   now.Format(time.RFC3339),
				}
				if err := esx.IndexObservation(ctx, d.ES, doc); err != nil {
					fpLogger.Sugar().Warnf("index observation failed: %v", err)
				}
			}
		}

		silence, err := fpx.ShouldSilence(ctx, d.Registry, usr.Silenced, hashes)
		if err != nil {
			return kit.InternalError("silence check failed", err.Error())
		}
		if silence && d.Silencer != nil {
			if err := d.Silencer.Silence(ctx, uid, "matched silenced fingerprint"); err != nil {
				fpLogger.Sugar().Errorf("silence user %d failed: %v", uid, err)
				silence = false
			}
		}

		return kit.OK(c, SubmitResponse{Success: true, Silenced: silence})
	}
}
