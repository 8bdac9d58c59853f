package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/habitual/internal/db"
	"github.com/terraincognita07/habitual/internal/insight"
	"gorm.io/gorm"
)

const testSecretKey = "0123456789abcdef0123456789abcdef"

// Friday.
var testNow = time.Date(2026, time.February, 20, 12, 0, 0, 0, time.UTC)

func newHabitTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "habitual-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler, err := NewHandler(database, Options{
		SecretKey: testSecretKey,
		Location:  time.UTC,
		Now:       func() time.Time { return testNow },
		Generator: insight.StaticGenerator{},
	})
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func issueTestToken(t *testing.T, ownerID string) string {
	t.Helper()

	token, err := IssueToken(testSecretKey, ownerID, time.Hour, testNow)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func sendJSON(t *testing.T, app *fiber.App, method string, path string, token string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	t.Cleanup(func() {
		_ = response.Body.Close()
	})
	return response
}

func decodeBody(t *testing.T, response *http.Response, target any) {
	t.Helper()

	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func readAPIError(t *testing.T, response *http.Response) string {
	t.Helper()

	payload := map[string]string{}
	decodeBody(t, response, &payload)
	return payload["error"]
}

func assertStatus(t *testing.T, response *http.Response, expected int) {
	t.Helper()

	if response.StatusCode != expected {
		body, _ := io.ReadAll(response.Body)
		t.Fatalf("expected status %d, got %d: %s", expected, response.StatusCode, string(body))
	}
}

func createTestHabit(t *testing.T, app *fiber.App, token string, startDate string) map[string]any {
	t.Helper()

	response := sendJSON(t, app, http.MethodPost, "/api/habits", token, map[string]any{
		"name":                 "Read twenty pages",
		"motivation":           "finish the reading list",
		"scheduled_weekdays":   []int{1, 3, 5},
		"target_duration_days": 30,
		"start_date":           startDate,
	})
	assertStatus(t, response, http.StatusCreated)

	habit := map[string]any{}
	decodeBody(t, response, &habit)
	return habit
}

func recordTestCheckIn(t *testing.T, app *fiber.App, token string, date string, status string) {
	t.Helper()

	response := sendJSON(t, app, http.MethodPost, "/api/checkins", token, map[string]any{
		"date":              date,
		"status":            status,
		"time_of_day":       "evening",
		"challenges":        []string{"tired"},
		"sabotage_patterns": []string{"phone"},
	})
	assertStatus(t, response, http.StatusCreated)
}
