package request

import (
	"errors"
	"fmt"
	"strconv"

	"bm-admin/logger"
	branchModel "bm-admin/models/branch"
	requestModel "bm-admin/models/request"
	serviceTypeModel "bm-admin/models/service_type"
	teamModel "bm-admin/models/team"
	"bm-admin/types"
	requestTypes "bm-admin/types/request"
	"bm-admin/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequestController governs the service-run lifecycle: tenant-scoped
// listing, creation, partial update and deletion.
type RequestController struct {
	DB *gorm.DB
}

func NewRequestController(db *gorm.DB) *RequestController {
	return &RequestController{DB: db}
}

// detailQuery joins the names every read is denormalized with. The joined
// branch name deliberately shadows the stored branch_name column.
func (rc *RequestController) detailQuery() *gorm.DB {
	return rc.DB.Table("requests").
		Select("requests.*, branches.name AS branch_name, clients.name AS client_name, service_types.name AS service_type_name").
		Joins("LEFT JOIN branches ON requests.branch_id = branches.id").
		Joins("LEFT JOIN clients ON branches.client_id = clients.id").
		Joins("LEFT JOIN service_types ON requests.service_type_id = service_types.id")
}

// Index lists requests visible to the caller. The default scope is the
// authenticated branch; branchId overrides it for elevated callers. The
// override is not permission-gated.
func (rc *RequestController) Index(c *fiber.Ctx) error {
	claims, ok := utils.GetClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid user claims",
		})
	}

	branchID, ok := utils.ClaimUint(claims, "branchId")
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Branch not found in token",
		})
	}

	if override := c.Query("branchId"); override != "" {
		parsed, err := strconv.ParseUint(override, 10, 32)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid branchId filter",
			})
		}
		branchID = uint(parsed)
	}

	query := rc.detailQuery().Where("requests.branch_id = ?", branchID)

	if status := c.Query("status"); status != "" {
		query = query.Where("requests.status = ?", status)
	}
	// "0" is a meaningful stage, so presence is what matters here.
	if myStatus := c.Query("myStatus"); myStatus != "" {
		parsed, err := strconv.Atoi(myStatus)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid myStatus filter",
			})
		}
		query = query.Where("requests.my_status = ?", parsed)
	}
	if pickupDate := c.Query("pickupDate"); pickupDate != "" {
		day, err := requestTypes.ParsePickupDate(pickupDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid pickupDate filter",
			})
		}
		start, end := utils.DayRange(day)
		query = query.Where("requests.pickup_date >= ? AND requests.pickup_date < ?", start, end)
	}

	var rows []requestTypes.Row
	if err := query.Order("requests.created_at DESC").Scan(&rows).Error; err != nil {
		logger.Error("Failed to fetch requests", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch requests",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Requests retrieved successfully",
		Data:    rows,
	})
}

// Store creates a request owned by the caller's branch with status=pending.
func (rc *RequestController) Store(c *fiber.Ctx) error {
	var req requestTypes.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	claims, ok := utils.GetClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid user claims",
		})
	}

	// Identity wins; the body is a backward-compatibility fallback.
	branchID, _ := utils.ClaimUint(claims, "branchId")
	branchName, _ := utils.ClaimString(claims, "name")
	if branchID == 0 && req.BranchID != nil {
		branchID = *req.BranchID
	}
	if branchName == "" && req.BranchName != nil {
		branchName = *req.BranchName
	}

	// Backfill the branch name when only the id is known.
	if branchName == "" && branchID != 0 {
		var branch branchModel.Branch
		if err := rc.DB.Select("name").Where("id = ?", branchID).First(&branch).Error; err == nil {
			branchName = branch.Name
		}
	}

	if branchID == 0 || branchName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Missing required fields",
		})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	pickupDate, err := requestTypes.ParsePickupDate(req.PickupDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid pickup date",
		})
	}

	// Reference checks so a dangling id never reaches the store as a
	// constraint violation.
	var serviceType serviceTypeModel.ServiceType
	if err := rc.DB.Select("id").Where("id = ?", req.ServiceTypeID).First(&serviceType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid service type",
			})
		}
		logger.Error("Failed to check service type", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	var branch branchModel.Branch
	if err := rc.DB.Select("id").Where("id = ?", branchID).First(&branch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid branch",
			})
		}
		logger.Error("Failed to check branch", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	priority := req.Priority
	if priority == "" {
		priority = requestModel.PriorityMedium
	}
	myStatus := 0
	if req.MyStatus != nil {
		myStatus = *req.MyStatus
	}

	run := requestModel.Request{
		BranchID:         branchID,
		BranchName:       &branchName,
		ServiceTypeID:    req.ServiceTypeID,
		PickupLocation:   req.PickupLocation,
		DeliveryLocation: req.DeliveryLocation,
		PickupDate:       pickupDate,
		Description:      req.Description,
		Priority:         priority,
		Status:           requestModel.StatusPending,
		MyStatus:         myStatus,
		Price:            req.Price,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
	}

	if err := rc.DB.Create(&run).Error; err != nil {
		logger.Error("Failed to create request", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error creating request",
			Error:   err.Error(),
		})
	}

	logger.Success(fmt.Sprintf("Request created successfully with ID: %d", run.ID))

	var row requestTypes.Row
	if err := rc.detailQuery().Where("requests.id = ?", run.ID).Scan(&row).Error; err != nil {
		logger.Error("Failed to load created request", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Request created but failed to retrieve complete data",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Request created successfully",
		Data:    row,
	})
}

// Update applies a partial update scoped by id and owning branch. A teamId
// assignment also denormalizes the team's crew commander onto staff_id;
// commander resolution is best effort and never aborts the update.
func (rc *RequestController) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request id",
		})
	}

	claims, ok := utils.GetClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid user claims",
		})
	}
	branchID, ok := utils.ClaimUint(claims, "branchId")
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Branch not found in token",
		})
	}

	var req requestTypes.UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	updates, err := req.Updates()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	if req.TeamID != nil {
		var team teamModel.Team
		if err := rc.DB.Select("crew_commander_id").Where("id = ?", *req.TeamID).First(&team).Error; err != nil {
			logger.Warning(fmt.Sprintf("Could not resolve team %d for request %d: %v", *req.TeamID, id, err))
		} else if team.CrewCommanderID != nil {
			updates["staff_id"] = *team.CrewCommanderID
		}
	}

	if len(updates) > 0 {
		result := rc.DB.Model(&requestModel.Request{}).
			Where("id = ? AND branch_id = ?", id, branchID).
			Updates(updates)
		if result.Error != nil {
			logger.Error("Failed to update request", result.Error)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Failed to update request",
				Error:   result.Error.Error(),
			})
		}
	}

	var row requestTypes.Row
	result := rc.detailQuery().
		Where("requests.id = ? AND requests.branch_id = ?", id, branchID).
		Scan(&row)
	if result.Error != nil {
		logger.Error("Failed to load updated request", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   result.Error.Error(),
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Request not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Request updated successfully",
		Data:    row,
	})
}

// Destroy deletes a request owned by the caller's branch. The existence
// check runs first so a repeat delete gets a precise 404.
func (rc *RequestController) Destroy(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request id",
		})
	}

	claims, ok := utils.GetClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid user claims",
		})
	}
	branchID, ok := utils.ClaimUint(claims, "branchId")
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Branch not found in token",
		})
	}

	var existing requestModel.Request
	if err := rc.DB.Select("id").Where("id = ? AND branch_id = ?", id, branchID).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Request not found or access denied",
			})
		}
		logger.Error("Failed to check request", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	if err := rc.DB.Where("id = ? AND branch_id = ?", id, branchID).Delete(&requestModel.Request{}).Error; err != nil {
		logger.Error("Failed to delete request", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
