package routes_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"manrelbdg_backend/internals/configs"
	"manrelbdg_backend/internals/constants"
	healthDto "manrelbdg_backend/internals/features/health/dto"
	"manrelbdg_backend/internals/testutil"
)

func TestHealthIsRawJSON(t *testing.T) {
	env := testutil.NewEnv(t)

	for _, path := range []string{"/api/health", "/health"} {
		resp, _ := env.Do(http.MethodGet, path, nil, "")
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("%s status = %d", path, resp.StatusCode)
		}
		if cc := resp.Header.Get(fiber.HeaderCacheControl); cc != "no-store" {
			t.Fatalf("%s cache-control = %q", path, cc)
		}
		raw, _ := io.ReadAll(resp.Body)
		var out healthDto.HealthResponse
		if err := sonic.Unmarshal(raw, &out); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
		if out.Status != healthDto.StatusHealthy || out.Services.Database.Status != healthDto.StatusHealthy {
			t.Fatalf("%s body = %+v", path, out)
		}
		if out.Timestamp == "" || out.Services.Database.ResponseTime == "" {
			t.Fatalf("%s incomplete body = %s", path, raw)
		}
		if strings.Contains(string(raw), `"success"`) {
			t.Fatalf("%s should not be enveloped: %s", path, raw)
		}
	}
}

func TestUnknownAPIRouteIsEnveloped404(t *testing.T) {
	env := testutil.NewEnv(t)

	// tanpa token pun tetap 404, bukan 401
	for _, path := range []string{"/api/xyz", "/api/v2/relawan", "/nothing"} {
		resp, body := env.Do(http.MethodGet, path, nil, "")
		if resp.StatusCode != fiber.StatusNotFound {
			t.Fatalf("%s status = %d", path, resp.StatusCode)
		}
		if body.Success || body.Error != constants.MsgNotFound {
			t.Fatalf("%s envelope = %+v", path, body)
		}
	}
}

func TestProtectedPrefixRequiresToken(t *testing.T) {
	env := testutil.NewEnv(t)

	for _, path := range []string{"/api/dapil", "/api/koordinator", "/api/relawan", "/api/dashboard", "/api/settings", "/api/users"} {
		resp, body := env.Do(http.MethodGet, path, nil, "")
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("%s status = %d", path, resp.StatusCode)
		}
		if body.Error != constants.MsgNoToken {
			t.Fatalf("%s error = %q", path, body.Error)
		}
	}
}

func TestClientConfigIsPublic(t *testing.T) {
	env := testutil.NewEnv(t, func(c *configs.Config) {
		c.Client = configs.ResolveClientConfig("BANDUNG")
	})

	resp, body := env.Do(http.MethodGet, "/api/client-config", nil, "")
	if resp.StatusCode != fiber.StatusOK || !body.Success {
		t.Fatalf("status = %d body = %+v", resp.StatusCode, body)
	}
	var got configs.ClientConfig
	testutil.Decode(t, body, &got)
	if got.Client.Code != "BANDUNG" || got.Branding.AppName != "MANREL BANDUNG" {
		t.Fatalf("client config = %+v", got)
	}
}

func TestRootAndMetrics(t *testing.T) {
	env := testutil.NewEnv(t)

	resp, _ := env.Do(http.MethodGet, "/", nil, "")
	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != fiber.StatusOK || !strings.HasPrefix(string(raw), env.Cfg.Client.Branding.AppName) {
		t.Fatalf("root = %d %q", resp.StatusCode, raw)
	}

	// satu request dulu supaya counter punya sampel
	env.Do(http.MethodGet, "/api/health", nil, "")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp, err := env.App.Test(req, -1)
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	defer resp.Body.Close()
	raw, _ = io.ReadAll(resp.Body)
	if resp.StatusCode != fiber.StatusOK || !strings.Contains(string(raw), "http_requests_total") {
		t.Fatalf("metrics = %d %s", resp.StatusCode, raw)
	}
}
