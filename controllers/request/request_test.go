package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"bm-admin/middleware"
	branchModel "bm-admin/models/branch"
	clientModel "bm-admin/models/client"
	requestModel "bm-admin/models/request"
	roleModel "bm-admin/models/role"
	serviceTypeModel "bm-admin/models/service_type"
	staffModel "bm-admin/models/staff"
	teamModel "bm-admin/models/team"
	"bm-admin/types"
	requestTypes "bm-admin/types/request"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&roleModel.Role{},
		&clientModel.Client{},
		&serviceTypeModel.ServiceType{},
		&branchModel.Branch{},
		&staffModel.Staff{},
		&teamModel.Team{},
		&requestModel.Request{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}

func newTestApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	rc := NewRequestController(db)

	requests := app.Group("/api/requests").Use(middleware.RequireAuth())
	requests.Get("/", rc.Index)
	requests.Post("/", rc.Store)
	requests.Patch("/:id", rc.Update)
	requests.Delete("/:id", rc.Destroy)

	app.Get("/api/runs/summaries", rc.RunSummaries)

	return app
}

func bearerToken(t *testing.T, branchID uint, name string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"id":       branchID,
		"branchId": branchID,
		"name":     name,
		"role":     "branch",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("your-secret-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func seedBranch(t *testing.T, db *gorm.DB, name string) branchModel.Branch {
	t.Helper()

	branch := branchModel.Branch{Name: name, Password: "x", Role: "branch"}
	if err := db.Create(&branch).Error; err != nil {
		t.Fatalf("seed branch: %v", err)
	}
	return branch
}

func seedServiceType(t *testing.T, db *gorm.DB, name string) serviceTypeModel.ServiceType {
	t.Helper()

	st := serviceTypeModel.ServiceType{Name: name}
	if err := db.Create(&st).Error; err != nil {
		t.Fatalf("seed service type: %v", err)
	}
	return st
}

func doJSON(t *testing.T, app *fiber.App, method, target, token string, body interface{}) *http.Response {
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
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	return resp
}

func decodeRow(t *testing.T, resp *http.Response) requestTypes.Row {
	t.Helper()

	var envelope struct {
		Data requestTypes.Row `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope.Data
}

func decodeRows(t *testing.T, resp *http.Response) []requestTypes.Row {
	t.Helper()

	var envelope struct {
		Data []requestTypes.Row `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope.Data
}

func TestStoreOwnsRequestByTokenBranch(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	branch := seedBranch(t, db, "Dhaka Central")
	other := seedBranch(t, db, "Chittagong Port")
	st := seedServiceType(t, db, "Cash In Transit")
	token := bearerToken(t, branch.ID, branch.Name)

	// Body claims another branch; the token identity must win.
	resp := doJSON(t, app, http.MethodPost, "/api/requests/", token, fiber.Map{
		"branchId":         other.ID,
		"serviceTypeId":    st.ID,
		"pickupLocation":   "Vault A",
		"deliveryLocation": "Client HQ",
		"pickupDate":       "2026-09-01",
		"price":            1500.0,
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	row := decodeRow(t, resp)
	if row.BranchID != branch.ID {
		t.Errorf("expected branchId %d, got %d", branch.ID, row.BranchID)
	}
	if row.Status != requestModel.StatusPending {
		t.Errorf("expected status pending, got %q", row.Status)
	}
	if row.MyStatus != 0 {
		t.Errorf("expected myStatus 0, got %d", row.MyStatus)
	}
	if row.Priority != requestModel.PriorityMedium {
		t.Errorf("expected priority medium, got %q", row.Priority)
	}
	if row.BranchName == nil || *row.BranchName != branch.Name {
		t.Errorf("expected branchName %q, got %v", branch.Name, row.BranchName)
	}
	if row.ServiceTypeName == nil || *row.ServiceTypeName != st.Name {
		t.Errorf("expected serviceTypeName %q, got %v", st.Name, row.ServiceTypeName)
	}
}

func TestStoreKeepsProvidedMyStatus(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	branch := seedBranch(t, db, "Sylhet")
	st := seedServiceType(t, db, "ATM Replenishment")
	token := bearerToken(t, branch.ID, branch.Name)

	resp := doJSON(t, app, http.MethodPost, "/api/requests/", token, fiber.Map{
		"serviceTypeId":    st.ID,
		"pickupLocation":   "Depot",
		"deliveryLocation": "ATM-7",
		"pickupDate":       "2026-09-02",
		"price":            800.0,
		"myStatus":         2,
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if row := decodeRow(t, resp); row.MyStatus != 2 {
		t.Errorf("expected myStatus 2, got %d", row.MyStatus)
	}
}

func TestStoreValidation(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	branch := seedBranch(t, db, "Khulna")
	st := seedServiceType(t, db, "Valuables Escort")
	token := bearerToken(t, branch.ID, branch.Name)

	t.Run("missing fields", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/requests/", token, fiber.Map{
			"serviceTypeId": st.ID,
			"price":         500.0,
		})
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("expected 400, got %d", resp.StatusCode)
		}
	})

	t.Run("unknown service type", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/requests/", token, fiber.Map{
			"serviceTypeId":    uint(9999),
			"pickupLocation":   "A",
			"deliveryLocation": "B",
			"pickupDate":       "2026-09-03",
			"price":            500.0,
		})
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("expected 400, got %d", resp.StatusCode)
		}
		var envelope types.ApiResponse
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if envelope.Message != "Invalid service type" {
			t.Errorf("expected invalid service type message, got %q", envelope.Message)
		}
	})

	t.Run("bad pickup date", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/requests/", token, fiber.Map{
			"serviceTypeId":    st.ID,
			"pickupLocation":   "A",
			"deliveryLocation": "B",
			"pickupDate":       "next tuesday",
			"price":            500.0,
		})
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("expected 400, got %d", resp.StatusCode)
		}
	})

	t.Run("no token", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/requests/", "", fiber.Map{})
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", resp.StatusCode)
		}
	})
}

func TestIndexScopesToTokenBranch(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	mine := seedBranch(t, db, "Mine")
	theirs := seedBranch(t, db, "Theirs")
	st := seedServiceType(t, db, "Cash In Transit")
	token := bearerToken(t, mine.ID, mine.Name)

	for _, b := range []branchModel.Branch{mine, theirs} {
		name := b.Name
		run := requestModel.Request{
			BranchID:         b.ID,
			BranchName:       &name,
			ServiceTypeID:    st.ID,
			PickupLocation:   "A",
			DeliveryLocation: "B",
			PickupDate:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			Priority:         requestModel.PriorityMedium,
			Status:           requestModel.StatusPending,
			Price:            100,
		}
		if err := db.Create(&run).Error; err != nil {
			t.Fatalf("seed request: %v", err)
		}
	}

	resp := doJSON(t, app, http.MethodGet, "/api/requests/", token, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	rows := decodeRows(t, resp)
	if len(rows) != 1 {
		t.Fatalf("expected 1 request, got %d", len(rows))
	}
	if rows[0].BranchID != mine.ID {
		t.Errorf("expected branch %d, got %d", mine.ID, rows[0].BranchID)
	}

	// branchId overrides the token scope.
	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/requests/?branchId=%d", theirs.ID), token, nil)
	rows = decodeRows(t, resp)
	if len(rows) != 1 || rows[0].BranchID != theirs.ID {
		t.Errorf("expected override to return branch %d rows, got %+v", theirs.ID, rows)
	}
}

func TestIndexMyStatusZeroFilter(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	branch := seedBranch(t, db, "Filter")
	st := seedServiceType(t, db, "Cash In Transit")
	token := bearerToken(t, branch.ID, branch.Name)

	name := branch.Name
	for _, myStatus := range []int{0, 3} {
		run := requestModel.Request{
			BranchID:         branch.ID,
			BranchName:       &name,
			ServiceTypeID:    st.ID,
			PickupLocation:   "A",
			DeliveryLocation: "B",
			PickupDate:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			Priority:         requestModel.PriorityMedium,
			Status:           requestModel.StatusPending,
			MyStatus:         myStatus,
			Price:            100,
		}
		if err := db.Create(&run).Error; err != nil {
			t.Fatalf("seed request: %v", err)
		}
	}

	// myStatus=0 is a real stage, not an absent filter.
	resp := doJSON(t, app, http.MethodGet, "/api/requests/?myStatus=0", token, nil)
	rows := decodeRows(t, resp)
	if len(rows) != 1 {
		t.Fatalf("expected 1 request with myStatus=0, got %d", len(rows))
	}
	if rows[0].MyStatus != 0 {
		t.Errorf("expected myStatus 0, got %d", rows[0].MyStatus)
	}
}

func TestUpdatePartialPatch(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	branch := seedBranch(t, db, "Patch")
	st := seedServiceType(t, db, "Cash In Transit")
	token := bearerToken(t, branch.ID, branch.Name)

	name := branch.Name
	run := requestModel.Request{
		BranchID:         branch.ID,
		BranchName:       &name,
		ServiceTypeID:    st.ID,
		PickupLocation:   "Vault A",
		DeliveryLocation: "Client HQ",
		PickupDate:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Priority:         requestModel.PriorityHigh,
		Status:           requestModel.StatusPending,
		Price:            1500,
	}
	if err := db.Create(&run).Error; err != nil {
		t.Fatalf("seed request: %v", err)
	}

	resp := doJSON(t, app, http.MethodPatch, fmt.Sprintf("/api/requests/%d", run.ID), token, fiber.Map{
		"status": requestModel.StatusInProgress,
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	row := decodeRow(t, resp)
	if row.Status != requestModel.StatusInProgress {
		t.Errorf("expected status in_progress, got %q", row.Status)
	}
	// Untouched fields survive the patch.
	if row.PickupLocation != "Vault A" || row.Priority != requestModel.PriorityHigh || row.Price != 1500 {
		t.Errorf("patch touched unrelated fields: %+v", row)
	}
}

func TestUpdateTeamAssignmentSetsStaff(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	branch := seedBranch(t, db, "Crewed")
	st := seedServiceType(t, db, "Cash In Transit")
	token := bearerToken(t, branch.ID, branch.Name)

	commander := staffModel.Staff{Name: "Commander", Phone: "0170000001", Status: staffModel.StatusActive}
	if err := db.Create(&commander).Error; err != nil {
		t.Fatalf("seed staff: %v", err)
	}
	team := teamModel.Team{Name: "Alpha", CrewCommanderID: &commander.ID}
	if err := db.Create(&team).Error; err != nil {
		t.Fatalf("seed team: %v", err)
	}

	name := branch.Name
	run := requestModel.Request{
		BranchID:         branch.ID,
		BranchName:       &name,
		ServiceTypeID:    st.ID,
		PickupLocation:   "A",
		DeliveryLocation: "B",
		PickupDate:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Priority:         requestModel.PriorityMedium,
		Status:           requestModel.StatusPending,
		Price:            100,
	}
	if err := db.Create(&run).Error; err != nil {
		t.Fatalf("seed request: %v", err)
	}

	resp := doJSON(t, app, http.MethodPatch, fmt.Sprintf("/api/requests/%d", run.ID), token, fiber.Map{
		"teamId": team.ID,
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	row := decodeRow(t, resp)
	if row.TeamID == nil || *row.TeamID != team.ID {
		t.Errorf("expected teamId %d, got %v", team.ID, row.TeamID)
	}
	if row.StaffID == nil || *row.StaffID != commander.ID {
		t.Errorf("expected staffId %d from crew commander, got %v", commander.ID, row.StaffID)
	}
}

func TestUpdateOtherBranchRequestNotFound(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	mine := seedBranch(t, db, "Mine")
	theirs := seedBranch(t, db, "Theirs")
	st := seedServiceType(t, db, "Cash In Transit")
	token := bearerToken(t, mine.ID, mine.Name)

	name := theirs.Name
	run := requestModel.Request{
		BranchID:         theirs.ID,
		BranchName:       &name,
		ServiceTypeID:    st.ID,
		PickupLocation:   "A",
		DeliveryLocation: "B",
		PickupDate:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Priority:         requestModel.PriorityMedium,
		Status:           requestModel.StatusPending,
		Price:            100,
	}
	if err := db.Create(&run).Error; err != nil {
		t.Fatalf("seed request: %v", err)
	}

	resp := doJSON(t, app, http.MethodPatch, fmt.Sprintf("/api/requests/%d", run.ID), token, fiber.Map{
		"status": requestModel.StatusCompleted,
	})
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for foreign request, got %d", resp.StatusCode)
	}

	var untouched requestModel.Request
	if err := db.First(&untouched, run.ID).Error; err != nil {
		t.Fatalf("reload request: %v", err)
	}
	if untouched.Status != requestModel.StatusPending {
		t.Errorf("foreign request was modified: %q", untouched.Status)
	}
}

func TestDestroyThenRepeatIs404(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	branch := seedBranch(t, db, "Deleter")
	st := seedServiceType(t, db, "Cash In Transit")
	token := bearerToken(t, branch.ID, branch.Name)

	name := branch.Name
	run := requestModel.Request{
		BranchID:         branch.ID,
		BranchName:       &name,
		ServiceTypeID:    st.ID,
		PickupLocation:   "A",
		DeliveryLocation: "B",
		PickupDate:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Priority:         requestModel.PriorityMedium,
		Status:           requestModel.StatusPending,
		Price:            100,
	}
	if err := db.Create(&run).Error; err != nil {
		t.Fatalf("seed request: %v", err)
	}

	resp := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/requests/%d", run.ID), token, nil)
	if resp.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/requests/%d", run.ID), token, nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 on repeat delete, got %d", resp.StatusCode)
	}
}
