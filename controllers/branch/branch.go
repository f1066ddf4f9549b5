package branch

import (
	"errors"
	"fmt"
	"strconv"

	"bm-admin/logger"
	branchModel "bm-admin/models/branch"
	"bm-admin/types"
	branchTypes "bm-admin/types/branch"
	"bm-admin/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BranchController manages tenant accounts, nested under their client.
type BranchController struct {
	DB *gorm.DB
}

func NewBranchController(db *gorm.DB) *BranchController {
	return &BranchController{DB: db}
}

func parseClientID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("clientId"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid client id")
	}
	return uint(id), nil
}

// IndexAll lists every branch regardless of client.
func (bc *BranchController) IndexAll(c *fiber.Ctx) error {
	var branches []branchModel.Branch
	if err := bc.DB.Order("name").Find(&branches).Error; err != nil {
		logger.Error("Failed to fetch branches", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Branches retrieved successfully",
		Data:    branches,
	})
}

// Index lists the branches belonging to one client.
func (bc *BranchController) Index(c *fiber.Ctx) error {
	clientID, err := parseClientID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	var branches []branchModel.Branch
	if err := bc.DB.Where("client_id = ?", clientID).Order("name").Find(&branches).Error; err != nil {
		logger.Error("Failed to fetch branches", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Branches retrieved successfully",
		Data:    branches,
	})
}

func (bc *BranchController) Store(c *fiber.Ctx) error {
	clientID, err := parseClientID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	var req branchTypes.BranchRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	role := req.Role
	if role == "" {
		role = "branch"
	}

	branch := branchModel.Branch{
		ClientID: &clientID,
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Role:     role,
		RoleID:   req.RoleID,
		Phone:    req.Phone,
		Address:  req.Address,
	}

	if err := bc.DB.Create(&branch).Error; err != nil {
		logger.Error("Failed to create branch", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create branch",
			Error:   err.Error(),
		})
	}

	logger.Success(fmt.Sprintf("Branch created successfully with ID: %d", branch.ID))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Branch created successfully",
		Data:    branch,
	})
}

func (bc *BranchController) Update(c *fiber.Ctx) error {
	clientID, err := parseClientID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	var branch branchModel.Branch
	if err := bc.DB.Where("id = ? AND client_id = ?", c.Params("branchId"), clientID).First(&branch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Branch not found",
			})
		}
		logger.Error("Failed to fetch branch", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	var req branchTypes.BranchUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	branch.Name = req.Name
	branch.Email = req.Email
	branch.RoleID = req.RoleID
	branch.Phone = req.Phone
	branch.Address = req.Address
	if req.Role != nil {
		branch.Role = *req.Role
	}
	if req.Password != "" {
		hashed, err := utils.HashPassword(req.Password)
		if err != nil {
			logger.Error("Failed to hash password", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Internal server error",
				Error:   err.Error(),
			})
		}
		branch.Password = hashed
	}

	if err := bc.DB.Save(&branch).Error; err != nil {
		logger.Error("Failed to update branch", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update branch",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Branch updated successfully",
		Data:    branch,
	})
}

func (bc *BranchController) Destroy(c *fiber.Ctx) error {
	clientID, err := parseClientID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	var branch branchModel.Branch
	if err := bc.DB.Select("id").Where("id = ? AND client_id = ?", c.Params("branchId"), clientID).First(&branch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Branch not found",
			})
		}
		logger.Error("Failed to fetch branch", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	if err := bc.DB.Delete(&branch).Error; err != nil {
		logger.Error("Failed to delete branch", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
