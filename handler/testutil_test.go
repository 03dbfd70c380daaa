package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"
	"venue_booking/database"
	"venue_booking/model"
	"venue_booking/router"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultTestDSN = "host=localhost port=5432 user=postgres password=postgres dbname=venue_booking_test sslmode=disable"

// setupApp connects the shared DB handle to the test database and
// wires the full route table. Tests skip when postgres is not around.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		dsn = defaultTestDSN
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Skipf("skipping postgres integration tests: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Skipf("skipping postgres integration tests: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		t.Skipf("skipping postgres integration tests: %v", err)
	}

	if err := db.AutoMigrate(&model.Venue{}, &model.Reservation{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := db.Exec("TRUNCATE reservations, venues RESTART IDENTITY CASCADE").Error; err != nil {
		t.Fatalf("truncate: %v", err)
	}

	database.DB = db
	t.Cleanup(func() { _ = sqlDB.Close() })

	app := fiber.New()
	router.SetupRoutes(app)
	return app
}

func createVenue(t *testing.T, name string, totalSeats int) model.Venue {
	t.Helper()
	venue := model.Venue{
		Slug:       fmt.Sprintf("%s-%d", name, time.Now().UnixNano()),
		Name:       name,
		Email:      "owner@example.com",
		TotalSeats: totalSeats,
	}
	if err := database.DB.Create(&venue).Error; err != nil {
		t.Fatalf("create venue: %v", err)
	}
	return venue
}

func doJSON(t *testing.T, app *fiber.App, method, url string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	return resp
}

// decodeData unwraps the success envelope into out.
func decodeData(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	var envelope struct {
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if out == nil {
		return
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}

func decodeError(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	return envelope.Message
}

func availableSeats(t *testing.T, app *fiber.App, venueId uint, at time.Time, duration string) int {
	t.Helper()
	url := fmt.Sprintf("/api/v1/reservation/seats/%d?reservationTime=%s&duration=%s",
		venueId, at.UTC().Format("2006-01-02T15:04:05Z"), duration)
	resp := doJSON(t, app, http.MethodGet, url, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("availability returned %d", resp.StatusCode)
	}
	var data struct {
		AvailableSeats int `json:"availableSeats"`
	}
	decodeData(t, resp, &data)
	return data.AvailableSeats
}
