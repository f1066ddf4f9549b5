package staff

import (
	"errors"
	"fmt"

	"bm-admin/logger"
	staffModel "bm-admin/models/staff"
	"bm-admin/types"
	staffTypes "bm-admin/types/staff"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// StaffController manages guards and office employees.
type StaffController struct {
	DB *gorm.DB
}

func NewStaffController(db *gorm.DB) *StaffController {
	return &StaffController{DB: db}
}

func (sc *StaffController) Index(c *fiber.Ctx) error {
	var staff []staffModel.Staff
	if err := sc.DB.Preload("Role").Order("created_at DESC").Find(&staff).Error; err != nil {
		logger.Error("Failed to fetch staff", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Staff retrieved successfully",
		Data:    staff,
	})
}

func (sc *StaffController) Show(c *fiber.Ctx) error {
	var member staffModel.Staff
	if err := sc.DB.Preload("Role").First(&member, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Staff member not found",
			})
		}
		logger.Error("Failed to fetch staff member", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Staff member retrieved successfully",
		Data:    member,
	})
}

func (sc *StaffController) Store(c *fiber.Ctx) error {
	var req staffTypes.StaffRequest
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

	status := req.Status
	if status == "" {
		status = staffModel.StatusActive
	}

	member := staffModel.Staff{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Photo:    req.Photo,
		RoleID:   req.RoleID,
		BranchID: req.BranchID,
		Status:   status,
	}

	if err := sc.DB.Create(&member).Error; err != nil {
		logger.Error("Failed to create staff member", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create staff member",
			Error:   err.Error(),
		})
	}

	logger.Success(fmt.Sprintf("Staff member created successfully with ID: %d", member.ID))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Staff member created successfully",
		Data:    member,
	})
}

func (sc *StaffController) Update(c *fiber.Ctx) error {
	var member staffModel.Staff
	if err := sc.DB.First(&member, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Staff member not found",
			})
		}
		logger.Error("Failed to fetch staff member", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	var req staffTypes.StaffRequest
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

	member.Name = req.Name
	member.Email = req.Email
	member.Phone = req.Phone
	member.Photo = req.Photo
	member.RoleID = req.RoleID
	member.BranchID = req.BranchID
	if req.Status != "" {
		member.Status = req.Status
	}

	if err := sc.DB.Save(&member).Error; err != nil {
		logger.Error("Failed to update staff member", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update staff member",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Staff member updated successfully",
		Data:    member,
	})
}

func (sc *StaffController) Destroy(c *fiber.Ctx) error {
	var member staffModel.Staff
	if err := sc.DB.Select("id").First(&member, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Staff member not found",
			})
		}
		logger.Error("Failed to fetch staff member", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	if err := sc.DB.Delete(&member).Error; err != nil {
		logger.Error("Failed to delete staff member", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateStatus toggles a staff member between active and inactive.
func (sc *StaffController) UpdateStatus(c *fiber.Ctx) error {
	var req staffTypes.StatusRequest
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

	var member staffModel.Staff
	if err := sc.DB.First(&member, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Staff member not found",
			})
		}
		logger.Error("Failed to fetch staff member", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	member.Status = req.Status
	if err := sc.DB.Save(&member).Error; err != nil {
		logger.Error("Failed to update staff status", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update staff status",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Staff status updated successfully",
		Data:    member,
	})
}
