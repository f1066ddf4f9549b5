package auth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"bm-admin/middleware"
	branchModel "bm-admin/models/branch"
	clientModel "bm-admin/models/client"
	"bm-admin/types"
	"bm-admin/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func setupAuthTest(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&clientModel.Client{}, &branchModel.Branch{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	app := fiber.New()
	ac := NewAuthController(db)
	app.Post("/api/auth/login", ac.Login)
	app.Get("/api/auth/profile", middleware.RequireAuth(), ac.Profile)

	return app, db
}

func login(t *testing.T, app *fiber.App, username, password string) *http.Response {
	t.Helper()

	body, _ := json.Marshal(types.LoginRequest{Username: username, Password: password})
	req, err := http.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	return resp
}

func TestLoginIssuesUsableToken(t *testing.T) {
	app, db := setupAuthTest(t)

	hashed, err := utils.HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	branch := branchModel.Branch{Name: "Dhaka Central", Password: hashed, Role: "branch"}
	if err := db.Create(&branch).Error; err != nil {
		t.Fatalf("seed branch: %v", err)
	}

	resp := login(t, app, "Dhaka Central", "s3cret")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var envelope struct {
		Token string          `json:"token"`
		Data  types.LoginUser `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Token == "" {
		t.Fatal("expected a token in the response")
	}
	if envelope.Data.ID != branch.ID || envelope.Data.Name != branch.Name {
		t.Errorf("unexpected login identity: %+v", envelope.Data)
	}

	// The issued token must satisfy the auth middleware.
	req, err := http.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+envelope.Token)
	profileResp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("profile request: %v", err)
	}
	if profileResp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 from profile, got %d", profileResp.StatusCode)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app, db := setupAuthTest(t)

	hashed, err := utils.HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	branch := branchModel.Branch{Name: "Dhaka Central", Password: hashed, Role: "branch"}
	if err := db.Create(&branch).Error; err != nil {
		t.Fatalf("seed branch: %v", err)
	}

	cases := []struct {
		name     string
		username string
		password string
		want     int
	}{
		{"wrong password", "Dhaka Central", "nope", fiber.StatusUnauthorized},
		{"unknown branch", "Ghost Branch", "s3cret", fiber.StatusUnauthorized},
		{"missing password", "Dhaka Central", "", fiber.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := login(t, app, tc.username, tc.password)
			if resp.StatusCode != tc.want {
				t.Errorf("expected %d, got %d", tc.want, resp.StatusCode)
			}
		})
	}
}

func TestProfileRequiresToken(t *testing.T) {
	app, _ := setupAuthTest(t)

	req, err := http.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("profile request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}

	req, _ = http.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err = app.Test(req, -1)
	if err != nil {
		t.Fatalf("profile request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for invalid token, got %d", resp.StatusCode)
	}
}
