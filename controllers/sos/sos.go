package sos

import (
	"errors"
	"fmt"

	"bm-admin/logger"
	sosModel "bm-admin/models/sos"
	"bm-admin/services/notifier"
	"bm-admin/types"
	sosTypes "bm-admin/types/sos"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SOSController manages panic alerts raised by guards in the field.
type SOSController struct {
	DB       *gorm.DB
	Notifier notifier.AlertNotifier
}

func NewSOSController(db *gorm.DB, alertNotifier notifier.AlertNotifier) *SOSController {
	return &SOSController{
		DB:       db,
		Notifier: alertNotifier,
	}
}

func (sc *SOSController) detailQuery() *gorm.DB {
	return sc.DB.Table("sos").
		Select("sos.*, staff.name AS guard_name").
		Joins("LEFT JOIN staff ON sos.guard_id = staff.id")
}

func (sc *SOSController) Index(c *fiber.Ctx) error {
	var rows []sosTypes.Row
	if err := sc.detailQuery().Order("sos.created_at DESC").Scan(&rows).Error; err != nil {
		logger.Error("Failed to fetch SOS alerts", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "SOS alerts retrieved successfully",
		Data:    rows,
	})
}

func (sc *SOSController) Store(c *fiber.Ctx) error {
	var req sosTypes.SOSCreateRequest
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

	alert := sosModel.SOS{
		GuardID:   req.GuardID,
		Message:   req.Message,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Status:    sosModel.StatusPending,
	}

	if err := sc.DB.Create(&alert).Error; err != nil {
		logger.Error("Failed to create SOS alert", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create SOS alert",
			Error:   err.Error(),
		})
	}

	logger.Success(fmt.Sprintf("SOS alert created with ID: %d", alert.ID))

	// Delivery failures must never fail the alert itself.
	if sc.Notifier != nil {
		text := fmt.Sprintf("SOS alert #%d raised", alert.ID)
		if req.GuardID != nil {
			text += fmt.Sprintf(" by guard %d", *req.GuardID)
		}
		if req.Message != nil && *req.Message != "" {
			text += ": " + *req.Message
		}
		if req.Latitude != nil && req.Longitude != nil {
			text += fmt.Sprintf(" (location %.6f, %.6f)", *req.Latitude, *req.Longitude)
		}
		if err := sc.Notifier.NotifyAlert(text); err != nil {
			logger.Warning(fmt.Sprintf("Failed to push SOS alert %d notification: %v", alert.ID, err))
		}
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "SOS alert created successfully",
		Data:    alert,
	})
}

// UpdateStatus moves an alert through pending, in_progress and resolved.
func (sc *SOSController) UpdateStatus(c *fiber.Ctx) error {
	var req sosTypes.StatusRequest
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

	var alert sosModel.SOS
	if err := sc.DB.First(&alert, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "SOS alert not found",
			})
		}
		logger.Error("Failed to fetch SOS alert", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	alert.Status = req.Status
	if req.Comment != nil {
		alert.Comment = req.Comment
	}

	if err := sc.DB.Save(&alert).Error; err != nil {
		logger.Error("Failed to update SOS alert status", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update SOS alert status",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "SOS alert status updated successfully",
		Data:    alert,
	})
}
