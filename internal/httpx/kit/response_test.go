package kit

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestOKEnvelope(t *testing.T) {
	app := fiber.New()
	app.Get("/t", func(c *fiber.Ctx) error {
		return OK(c, fiber.Map{"x": 1})
	})
	req := httptest.NewRequest("GET", "/t", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request err: %v", err)
	}
	var body map[string]any
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["code"] != "OK" || body["message"] != "success" {
		t.Fatalf("unexpected envelope: %v", body)
	}
	data := body["data"].(map[string]any)
	if int(data["x"].(float64)) != 1 {
		t.Fatalf("unexpected data: %v", data)
	}
}

func TestErrorHandlerCodes(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/bad", func(c *fiber.Ctx) error { return BadRequest("nope", nil) })
	app.Get("/missing", func(c *fiber.Ctx) error { return NotFound("gone") })
	app.Get("/fiber", func(c *fiber.Ctx) error { return fiber.ErrTooManyRequests })

	cases := []struct {
		path   string
		status int
		code   string
	}{
		{"/bad", 400, "E_INVALID_PARAM"},
		{"/missing", 404, "E_NOT_FOUND"},
		{"/fiber", 429, "E_RATE_LIMITED"},
	}
	for _, tc := range cases {
		res, err := app.Test(httptest.NewRequest("GET", tc.path, nil))
		if err != nil {
			t.Fatalf("%s: %v", tc.path, err)
		}
		if res.StatusCode != tc.status {
			t.Fatalf("%s: status %d", tc.path, res.StatusCode)
		}
		var body map[string]any
		_ = json.NewDecoder(res.Body).Decode(&body)
		if body["code"] != tc.code {
			t.Fatalf("%s: code %v", tc.path, body["code"])
		}
	}
}

func TestParsePaging(t *testing.T) {
	app := fiber.New()
	var got PagingParams
	app.Get("/p", func(c *fiber.Ctx) error {
		got = ParsePaging(c)
		return c.SendStatus(204)
	})

	if _, err := app.Test(httptest.NewRequest("GET", "/p?limit=500&offset=-3", nil)); err != nil {
		t.Fatalf("request: %v", err)
	}
	if got.Limit != 100 || got.Offset != 0 {
		t.Fatalf("clamping failed: %+v", got)
	}

	if _, err := app.Test(httptest.NewRequest("GET", "/p", nil)); err != nil {
		t.Fatalf("request: %v", err)
	}
	if got.Limit != 20 || got.Offset != 0 || got.WithTotal {
		t.Fatalf("defaults wrong: %+v", got)
	}
}
