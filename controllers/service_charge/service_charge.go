package service_charge

import (
	"errors"
	"fmt"
	"strconv"

	"bm-admin/logger"
	serviceChargeModel "bm-admin/models/service_charge"
	"bm-admin/types"
	serviceChargeTypes "bm-admin/types/service_charge"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ServiceChargeController manages per-client service rates.
type ServiceChargeController struct {
	DB *gorm.DB
}

func NewServiceChargeController(db *gorm.DB) *ServiceChargeController {
	return &ServiceChargeController{DB: db}
}

func parseClientID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("clientId"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid client id")
	}
	return uint(id), nil
}

func (sc *ServiceChargeController) Index(c *fiber.Ctx) error {
	clientID, err := parseClientID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	var charges []serviceChargeModel.ServiceCharge
	if err := sc.DB.Preload("ServiceType").Where("client_id = ?", clientID).Order("created_at DESC").Find(&charges).Error; err != nil {
		logger.Error("Failed to fetch service charges", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Service charges retrieved successfully",
		Data:    charges,
	})
}

func (sc *ServiceChargeController) Store(c *fiber.Ctx) error {
	clientID, err := parseClientID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	var req serviceChargeTypes.ServiceChargeRequest
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

	charge := serviceChargeModel.ServiceCharge{
		ClientID:      clientID,
		ServiceTypeID: req.ServiceTypeID,
		Description:   req.Description,
		Amount:        req.Amount,
	}

	if err := sc.DB.Create(&charge).Error; err != nil {
		logger.Error("Failed to create service charge", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create service charge",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Service charge created successfully",
		Data:    charge,
	})
}

func (sc *ServiceChargeController) Update(c *fiber.Ctx) error {
	clientID, err := parseClientID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	var charge serviceChargeModel.ServiceCharge
	if err := sc.DB.Where("id = ? AND client_id = ?", c.Params("chargeId"), clientID).First(&charge).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Service charge not found",
			})
		}
		logger.Error("Failed to fetch service charge", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	var req serviceChargeTypes.ServiceChargeRequest
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

	charge.ServiceTypeID = req.ServiceTypeID
	charge.Description = req.Description
	charge.Amount = req.Amount

	if err := sc.DB.Save(&charge).Error; err != nil {
		logger.Error("Failed to update service charge", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update service charge",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Service charge updated successfully",
		Data:    charge,
	})
}

func (sc *ServiceChargeController) Destroy(c *fiber.Ctx) error {
	clientID, err := parseClientID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	var charge serviceChargeModel.ServiceCharge
	if err := sc.DB.Select("id").Where("id = ? AND client_id = ?", c.Params("chargeId"), clientID).First(&charge).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Service charge not found",
			})
		}
		logger.Error("Failed to fetch service charge", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	if err := sc.DB.Delete(&charge).Error; err != nil {
		logger.Error("Failed to delete service charge", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
