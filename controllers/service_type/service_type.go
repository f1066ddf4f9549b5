package service_type

import (
	"errors"

	"bm-admin/logger"
	serviceTypeModel "bm-admin/models/service_type"
	"bm-admin/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ServiceTypeController exposes the read-only service catalog.
type ServiceTypeController struct {
	DB *gorm.DB
}

func NewServiceTypeController(db *gorm.DB) *ServiceTypeController {
	return &ServiceTypeController{DB: db}
}

func (sc *ServiceTypeController) Index(c *fiber.Ctx) error {
	var serviceTypes []serviceTypeModel.ServiceType
	if err := sc.DB.Order("name").Find(&serviceTypes).Error; err != nil {
		logger.Error("Failed to fetch service types", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Service types retrieved successfully",
		Data:    serviceTypes,
	})
}

func (sc *ServiceTypeController) Show(c *fiber.Ctx) error {
	var serviceType serviceTypeModel.ServiceType
	if err := sc.DB.First(&serviceType, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Service type not found",
			})
		}
		logger.Error("Failed to fetch service type", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Service type retrieved successfully",
		Data:    serviceType,
	})
}
