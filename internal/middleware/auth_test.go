package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/rollcv/rollcv/internal/logging"
)

// generateAPIKey generates a valid API key of specified length
func generateAPIKey(length int) string {
	key := make([]byte, length)
	for i := range key {
		key[i] = 'a' + byte(i%26)
	}
	return string(key)
}

func TestValidateAPIKey(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected bool
	}{
		{name: "valid key at minimum length", key: generateAPIKey(32), expected: true},
		{name: "valid longer key", key: generateAPIKey(64), expected: true},
		{name: "too short", key: generateAPIKey(31), expected: false},
		{name: "empty", key: "", expected: false},
		{name: "32 spaces", key: "                                ", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateAPIKey(tt.key); got != tt.expected {
				t.Errorf("ValidateAPIKey(%q) = %v, want %v", tt.key, got, tt.expected)
			}
		})
	}
}

func authTestApp(apiKeys []string, enabled bool) *fiber.App {
	app := fiber.New()
	app.Use(APIKeyAuth(logging.NewDevelopment(), apiKeys, enabled))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestAPIKeyAuth_Disabled(t *testing.T) {
	app := authTestApp(nil, false)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("Expected 200 with auth disabled, got %d", resp.StatusCode)
	}
}

func TestAPIKeyAuth_MissingKey(t *testing.T) {
	app := authTestApp([]string{generateAPIKey(32)}, true)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("Expected 401 without a key, got %d", resp.StatusCode)
	}
}

func TestAPIKeyAuth_ValidKeyHeader(t *testing.T) {
	key := generateAPIKey(32)
	app := authTestApp([]string{key}, true)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-API-Key", key)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("Expected 200 with a valid key, got %d", resp.StatusCode)
	}
}

func TestAPIKeyAuth_BearerToken(t *testing.T) {
	key := generateAPIKey(32)
	app := authTestApp([]string{key}, true)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+key)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("Expected 200 with a bearer token, got %d", resp.StatusCode)
	}
}

func TestAPIKeyAuth_InvalidKey(t *testing.T) {
	app := authTestApp([]string{generateAPIKey(32)}, true)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-API-Key", generateAPIKey(33))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("Expected 401 with a wrong key, got %d", resp.StatusCode)
	}
}

func TestAPIKeyAuth_ShortConfiguredKeyRejected(t *testing.T) {
	short := generateAPIKey(10)
	app := authTestApp([]string{short}, true)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-API-Key", short)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("Expected 401 for a key below the minimum length, got %d", resp.StatusCode)
	}
}
