package notice

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	noticeModel "bm-admin/models/notice"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func setupNoticeTest(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&noticeModel.Notice{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	app := fiber.New()
	nc := NewNoticeController(db)
	app.Get("/api/notices", nc.Index)
	app.Post("/api/notices", nc.Store)
	app.Patch("/api/notices/:id", nc.Update)
	app.Patch("/api/notices/:id/status", nc.ToggleStatus)
	app.Delete("/api/notices/:id", nc.Destroy)

	return app, db
}

func noticeRequest(t *testing.T, app *fiber.App, method, target string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}
	req, err := http.NewRequest(method, target, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	return resp
}

func decodeNotice(t *testing.T, resp *http.Response) noticeModel.Notice {
	t.Helper()

	var envelope struct {
		Data noticeModel.Notice `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope.Data
}

func TestStoreDefaultsToActive(t *testing.T) {
	app, _ := setupNoticeTest(t)

	resp := noticeRequest(t, app, http.MethodPost, "/api/notices", fiber.Map{
		"title":   "Eid holiday schedule",
		"content": "Runs pause on the 10th and 11th.",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if got := decodeNotice(t, resp); got.Status != noticeModel.StatusActive {
		t.Errorf("expected active status, got %q", got.Status)
	}
}

func TestStoreRequiresTitleAndContent(t *testing.T) {
	app, _ := setupNoticeTest(t)

	resp := noticeRequest(t, app, http.MethodPost, "/api/notices", fiber.Map{"title": "No body"})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestUpdateIsPartial(t *testing.T) {
	app, db := setupNoticeTest(t)

	notice := noticeModel.Notice{Title: "Old title", Content: "Body", Status: noticeModel.StatusActive}
	if err := db.Create(&notice).Error; err != nil {
		t.Fatalf("seed notice: %v", err)
	}

	resp := noticeRequest(t, app, http.MethodPatch, fmt.Sprintf("/api/notices/%d", notice.ID), fiber.Map{
		"title": "New title",
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	got := decodeNotice(t, resp)
	if got.Title != "New title" {
		t.Errorf("title = %q", got.Title)
	}
	if got.Content != "Body" {
		t.Errorf("content changed by partial update: %q", got.Content)
	}
}

func TestToggleStatusFlips(t *testing.T) {
	app, db := setupNoticeTest(t)

	notice := noticeModel.Notice{Title: "T", Content: "C", Status: noticeModel.StatusActive}
	if err := db.Create(&notice).Error; err != nil {
		t.Fatalf("seed notice: %v", err)
	}

	target := fmt.Sprintf("/api/notices/%d/status", notice.ID)
	resp := noticeRequest(t, app, http.MethodPatch, target, nil)
	if got := decodeNotice(t, resp); got.Status != noticeModel.StatusInactive {
		t.Fatalf("expected inactive after first toggle, got %q", got.Status)
	}

	resp = noticeRequest(t, app, http.MethodPatch, target, nil)
	if got := decodeNotice(t, resp); got.Status != noticeModel.StatusActive {
		t.Fatalf("expected active after second toggle, got %q", got.Status)
	}
}

func TestIndexStatusFilter(t *testing.T) {
	app, db := setupNoticeTest(t)

	seed := []noticeModel.Notice{
		{Title: "On", Content: "c", Status: noticeModel.StatusActive},
		{Title: "Off", Content: "c", Status: noticeModel.StatusInactive},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed notice: %v", err)
		}
	}

	resp := noticeRequest(t, app, http.MethodGet, "/api/notices?status=active", nil)
	var envelope struct {
		Data []noticeModel.Notice `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].Title != "On" {
		t.Errorf("status filter returned %+v", envelope.Data)
	}
}

func TestDestroyNotice(t *testing.T) {
	app, db := setupNoticeTest(t)

	notice := noticeModel.Notice{Title: "T", Content: "C"}
	if err := db.Create(&notice).Error; err != nil {
		t.Fatalf("seed notice: %v", err)
	}

	resp := noticeRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/notices/%d", notice.ID), nil)
	if resp.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}

	resp = noticeRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/notices/%d", notice.ID), nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 on repeat delete, got %d", resp.StatusCode)
	}
}
