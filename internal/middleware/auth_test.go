package middleware

import (
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v3"

	"campuslinks/internal/config"
)

func newHeaderApp(t *testing.T, required bool) *fiber.App {
	t.Helper()

	cfg := &config.Config{IdentityHeader: "X-Forwarded-User"}
	am := NewAuthMiddleware(cfg)

	guard := am.OptionalAuth
	if required {
		guard = am.RequireAuth
	}

	app := fiber.New()
	app.Get("/whoami", guard, func(c fiber.Ctx) error {
		return c.SendString(Identity(c))
	})
	return app
}

func TestRequireAuthHeader(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "identity is normalized",
			header:     "  Alice@Uni.EDU ",
			wantStatus: 200,
			wantBody:   "alice@uni.edu",
		},
		{
			name:       "missing header is rejected",
			header:     "",
			wantStatus: 401,
		},
		{
			name:       "whitespace-only header is rejected",
			header:     "   ",
			wantStatus: 401,
		},
	}

	app := newHeaderApp(t, true)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest("GET", "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("X-Forwarded-User", tt.header)
			}

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if tt.wantBody != "" {
				body, _ := io.ReadAll(resp.Body)
				if string(body) != tt.wantBody {
					t.Errorf("identity = %q, want %q", body, tt.wantBody)
				}
			}
		})
	}
}

func TestOptionalAuthAllowsAnonymous(t *testing.T) {
	app := newHeaderApp(t, false)

	req, _ := http.NewRequest("GET", "/whoami", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "" {
		t.Errorf("anonymous identity = %q, want empty", body)
	}
}
