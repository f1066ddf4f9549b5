package routes

import (
	"bm-admin/controllers/auth"
	"bm-admin/controllers/branch"
	"bm-admin/controllers/client"
	"bm-admin/controllers/inquiry"
	"bm-admin/controllers/notice"
	"bm-admin/controllers/request"
	"bm-admin/controllers/role"
	"bm-admin/controllers/server"
	"bm-admin/controllers/service_charge"
	"bm-admin/controllers/service_type"
	"bm-admin/controllers/sos"
	"bm-admin/controllers/staff"
	"bm-admin/controllers/team"
	"bm-admin/logger"
	"bm-admin/middleware"
	"bm-admin/services/notifier"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	asyncLogger := logger.NewAsyncLogger(db)
	alertNotifier := notifier.NewTelegramNotifier()

	authController := auth.NewAuthController(db)
	requestController := request.NewRequestController(db)
	serviceTypeController := service_type.NewServiceTypeController(db)
	roleController := role.NewRoleController(db)
	staffController := staff.NewStaffController(db)
	teamController := team.NewTeamController(db)
	clientController := client.NewClientController(db)
	branchController := branch.NewBranchController(db)
	serviceChargeController := service_charge.NewServiceChargeController(db)
	noticeController := notice.NewNoticeController(db)
	inquiryController := inquiry.NewInquiryController(db)
	sosController := sos.NewSOSController(db, alertNotifier)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	app.Use(middleware.RequestLogger(asyncLogger))

	api := app.Group("/api")

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api.Get("/health", server.Health)

	api.Post("/auth/login", authController.Login)

	api.Get("/service-types", serviceTypeController.Index)
	api.Get("/service-types/:id", serviceTypeController.Show)

	api.Get("/runs/summaries", requestController.RunSummaries)

	api.Get("/roles", roleController.Index)

	api.Get("/staff", staffController.Index)
	api.Get("/staff/:id", staffController.Show)
	api.Post("/staff", staffController.Store)
	api.Put("/staff/:id", staffController.Update)
	api.Put("/staff/:id/status", staffController.UpdateStatus)
	api.Delete("/staff/:id", staffController.Destroy)

	api.Get("/teams", teamController.Index)
	api.Post("/teams", teamController.Store)

	api.Get("/clients", clientController.Index)
	api.Get("/clients/:id", clientController.Show)
	api.Post("/clients", clientController.Store)
	api.Put("/clients/:id", clientController.Update)
	api.Delete("/clients/:id", clientController.Destroy)

	api.Get("/branches", branchController.IndexAll)
	api.Get("/clients/:clientId/branches", branchController.Index)
	api.Post("/clients/:clientId/branches", branchController.Store)
	api.Put("/clients/:clientId/branches/:branchId", branchController.Update)
	api.Delete("/clients/:clientId/branches/:branchId", branchController.Destroy)

	api.Get("/clients/:clientId/service-charges", serviceChargeController.Index)
	api.Post("/clients/:clientId/service-charges", serviceChargeController.Store)
	api.Put("/clients/:clientId/service-charges/:chargeId", serviceChargeController.Update)
	api.Delete("/clients/:clientId/service-charges/:chargeId", serviceChargeController.Destroy)

	api.Get("/notices", noticeController.Index)
	api.Post("/notices", noticeController.Store)
	api.Patch("/notices/:id", noticeController.Update)
	api.Patch("/notices/:id/status", noticeController.ToggleStatus)
	api.Delete("/notices/:id", noticeController.Destroy)

	api.Get("/sos", sosController.Index)
	api.Post("/sos", sosController.Store)
	api.Patch("/sos/:id/status", sosController.UpdateStatus)

	/*=============================================================================
	| Protected Routes
	===============================================================================*/
	api.Get("/auth/profile", middleware.RequireAuth(), authController.Profile)

	requests := api.Group("/requests").Use(middleware.RequireAuth())
	requests.Get("/", requestController.Index)
	requests.Post("/", requestController.Store)
	requests.Patch("/:id", requestController.Update)
	requests.Delete("/:id", requestController.Destroy)

	inquiries := api.Group("/inquiries").Use(middleware.RequireAuth())
	inquiries.Get("/", inquiryController.Index)
	inquiries.Get("/status/:status", inquiryController.ByStatus)
	inquiries.Get("/type/:type", inquiryController.ByType)
	inquiries.Get("/:id", inquiryController.Show)
	inquiries.Post("/", inquiryController.Store)
	inquiries.Put("/:id", inquiryController.Update)
	inquiries.Delete("/:id", inquiryController.Destroy)
}
