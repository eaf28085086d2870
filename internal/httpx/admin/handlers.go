// Package admin exposes the staff-facing match review and moderation
// endpoints.
package admin

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	"forum-fingerprint-api/ent"
	"forum-fingerprint-api/ent/user"
	"forum-fingerprint-api/internal/esx"
	"forum-fingerprint-api/internal/fpx"
	"forum-fingerprint-api/internal/httpx/kit"
	"forum-fingerprint-api/internal/logx"
	"forum-fingerprint-api/internal/mqx"
)

var adminLogger = logx.GetScope("admin")

// Deps bundles the collaborators the admin handlers touch.
type Deps struct {
	Client   *ent.Client
	Resolver *fpx.Resolver
	Registry *fpx.Registry
	ES       *esx.Client
	MQ       mqx.Publisher
}

// usernames resolves a set of user IDs into ascending UserRefs. Users that no
// longer exist are simply absent.
func usernames(ctx context.Context, client *ent.Client, ids []int) ([]UserRef, error) {
	if len(ids) == 0 {
		return []UserRef{}, nil
	}
	rows, err := client.User.Query().
		Where(user.IDIn(ids...)).
		Order(ent.Asc(user.FieldID)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, func(u *ent.User, _ int) UserRef {
		return UserRef{ID: u.ID, Username: u.Username}
	}), nil
}

// classify derives the device type and common-signature verdict from a stored
// payload. Records without a usable payload get neither annotation.
func classify(data *string) (string, *bool) {
	attrs := fpx.DecodeData(data)
	if len(attrs) == 0 {
		return "", nil
	}
	common := fpx.IsCommon(attrs)
	return fpx.DeviceType(attrs), &common
}

// IndexHandler renders the review dashboard: the latest cross-user matches
// and every flagged value with its live record count.
//
//	@Summary      Latest Matches
//	@Tags         admin
//	@Produce      json
//	@Param        limit  query  int  false  "max match groups (1-100)"
//	@Success      200  {object}  admin.IndexResponse
//	@Security     BearerAuth
//	@Router       /admin/fingerprint [get]
func IndexHandler(d Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := kit.ParsePaging(c)
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		groups, err := d.Resolver.LatestMatches(ctx, p.Limit)
		if err != nil {
			return kit.InternalError("resolve matches failed", err.Error())
		}
		allIDs := lo.Uniq(lo.Flatten(lo.Map(groups, func(g fpx.MatchGroup, _ int) []int { return g.UserIDs })))
		refs, err := usernames(ctx, d.Client, allIDs)
		if err != nil {
			return kit.InternalError("resolve users failed", err.Error())
		}
		byID := lo.SliceToMap(refs, func(r UserRef) (int, UserRef) { return r.ID, r })

		matches := lo.Map(groups, func(g fpx.MatchGroup, _ int) MatchView {
			members := make([]UserRef, 0, len(g.UserIDs))
			for _, id := range g.UserIDs {
				if ref, ok := byID[id]; ok {
					members = append(members, ref)
				}
			}
			deviceType, isCommon := classify(g.Data)
			return MatchView{
				Name: g.Name, Value: g.Value, Data: g.Data,
				DeviceType: deviceType, IsCommon: isCommon,
				Users: members, UpdatedAt: g.UpdatedAt,
			}
		})

		flags, err := d.Registry.AllFlagged(ctx)
		if err != nil {
			return kit.InternalError("load flags failed", err.Error())
		}
		flaggedValues := lo.Map(flags, func(f fpx.FlagState, _ int) string { return f.Value })
		counts, err := d.Resolver.ValueCounts(ctx, flaggedValues)
		if err != nil {
			return kit.InternalError("count flagged failed", err.Error())
		}
		payloads, err := d.Resolver.ValueData(ctx, flaggedValues)
		if err != nil {
			return kit.InternalError("load flagged payloads failed", err.Error())
		}
		flagged := lo.Map(flags, func(f fpx.FlagState, _ int) FlaggedView {
			_, isCommon := classify(payloads[f.Value])
			return FlaggedView{Value: f.Value, Count: counts[f.Value], Hidden: f.Hidden, Silenced: f.Silenced, IsCommon: isCommon}
		})

		return kit.OK(c, IndexResponse{Matches: matches, Flagged: flagged})
	}
}

// UserReportHandler renders the per-user investigation view.
//
//	@Summary      User Report
//	@Tags         admin
//	@Produce      json
//	@Param        username  query  string  true  "username to report on"
//	@Success      200  {object}  admin.UserReportResponse
//	@Failure      404  {object}  map[string]interface{}  "unknown user"
//	@Security     BearerAuth
//	@Router       /admin/fingerprint/user_report [get]
func UserReportHandler(d Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := strings.TrimSpace(c.Query("username"))
		if name == "" {
			return kit.BadRequest("username is required", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		u, err := d.Client.User.Query().Where(user.UsernameEQ(name)).Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return kit.NotFound("user not found")
			}
			return kit.InternalError("load user failed", err.Error())
		}

		report, err := d.Resolver.UserReport(ctx, u.ID)
		if err != nil {
			return kit.InternalError("build report failed", err.Error())
		}

		matchedIDs := lo.Uniq(lo.Flatten(lo.Map(report.Records, func(r fpx.UserRecord, _ int) []int { return r.MatchedUserIDs })))
		refs, err := usernames(ctx, d.Client, append(matchedIDs, report.Ignores...))
		if err != nil {
			return kit.InternalError("resolve users failed", err.Error())
		}
		byID := lo.SliceToMap(refs, func(r UserRef) (int, UserRef) { return r.ID, r })
		resolve := func(ids []int) []UserRef {
			out := make([]UserRef, 0, len(ids))
			for _, id := range ids {
				if ref, ok := byID[id]; ok {
					out = append(out, ref)
				}
			}
			return out
		}

		records := lo.Map(report.Records, func(r fpx.UserRecord, _ int) ReportRecord {
			deviceType, isCommon := classify(r.Data)
			return ReportRecord{
				Name:       r.Name,
				Value:      r.Value,
				Data:       r.Data,
				DeviceType: deviceType,
				IsCommon:   isCommon,
				CreatedAt:  r.CreatedAt,
				UpdatedAt:  r.UpdatedAt,
				Matches:    resolve(r.MatchedUserIDs),
			}
		})

		return kit.OK(c, UserReportResponse{
			User:    UserRef{ID: u.ID, Username: u.Username},
			Records: records,
			Ignores: resolve(report.Ignores),
		})
	}
}

// FlagHandler toggles a hide or silence flag on a value.
//
//	@Summary      Flag Fingerprint
//	@Tags         admin
//	@Accept       json
//	@Produce      json
//	@Param        body  body  admin.FlagRequest  true  "{type, value, remove}"
//	@Success      200  {object}  admin.FlagResponse
//	@Failure      400  {object}  map[string]interface{}  "bad request"
//	@Security     BearerAuth
//	@Router       /admin/fingerprint/flag [put]
func FlagHandler(d Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body FlagRequest
		if err := c.BodyParser(&body); err != nil {
			return kit.BadRequest("invalid request body", nil)
		}
		if strings.TrimSpace(body.Value) == "" {
			return kit.BadRequest("value is required", nil)
		}
		kind, err := fpx.ParseFlagKind(body.Type)
		if err != nil {
			return kit.BadRequest("type must be hide or silence", body.Type)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		state, err := d.Registry.SetFlag(ctx, kind, body.Value, !body.Remove)
		if err != nil {
			return kit.InternalError("set flag failed", err.Error())
		}
		if d.MQ != nil {
			evt := map[string]any{
				"type":     "fingerprint.flagged",
				"value":    state.Value,
				"hidden":   state.Hidden,
				"silenced": state.Silenced,
			}
			b, _ := json.Marshal(evt)
			if err := d.MQ.Publish(ctx, "fingerprint.flagged", b); err != nil {
				adminLogger.Sugar().Warnf("publish flag event failed: %v", err)
			}
		}
		return kit.OK(c, FlagResponse{State: state})
	}
}

// IgnoreHandler toggles the symmetric ignore pair between two users.
//
//	@Summary      Ignore Pair
//	@Tags         admin
//	@Accept       json
//	@Produce      json
//	@Param        body  body  admin.IgnoreRequest  true  "{username, other_username, remove}"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      400  {object}  map[string]interface{}  "bad request"
//	@Failure      404  {object}  map[string]interface{}  "unknown user"
//	@Security     BearerAuth
//	@Router       /admin/fingerprint/ignore [post]
func IgnoreHandler(d Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body IgnoreRequest
		if err := c.BodyParser(&body); err != nil {
			return kit.BadRequest("invalid request body", nil)
		}
		a := strings.TrimSpace(body.Username)
		b := strings.TrimSpace(body.OtherUsername)
		if a == "" || b == "" {
			return kit.BadRequest("username and other_username are required", nil)
		}
		if a == b {
			return kit.BadRequest("usernames must differ", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		rows, err := d.Client.User.Query().Where(user.UsernameIn(a, b)).All(ctx)
		if err != nil {
			return kit.InternalError("load users failed", err.Error())
		}
		if len(rows) != 2 {
			return kit.NotFound("user not found")
		}
		if err := d.Registry.SetIgnore(ctx, rows[0].ID, rows[1].ID, !body.Remove); err != nil {
			return kit.InternalError("set ignore failed", err.Error())
		}
		return kit.OK(c, fiber.Map{"ignored": !body.Remove})
	}
}

// SearchHandler runs a free-text query over the audit observation index.
//
//	@Summary      Search Observations
//	@Tags         admin
//	@Produce      json
//	@Param        q       query  string  true   "query string"
//	@Param        limit   query  int     false  "max hits (1-100)"
//	@Param        offset  query  int     false  "hit offset"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      400  {object}  map[string]interface{}  "bad request"
//	@Security     BearerAuth
//	@Router       /admin/fingerprint/search [get]
func SearchHandler(d Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := strings.TrimSpace(c.Query("q"))
		if q == "" {
			return kit.BadRequest("q is required", nil)
		}
		p := kit.ParsePaging(c)
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		out, err := esx.SearchObservations(ctx, d.ES, q, p.Offset, p.Limit)
		if err != nil {
			return kit.InternalError("search failed", err.Error())
		}
		return kit.OK(c, out)
	}
}
