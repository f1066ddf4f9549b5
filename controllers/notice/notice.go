package notice

import (
	"errors"
	"fmt"

	"bm-admin/logger"
	noticeModel "bm-admin/models/notice"
	"bm-admin/types"
	noticeTypes "bm-admin/types/notice"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// NoticeController manages announcements shown to branch users.
type NoticeController struct {
	DB *gorm.DB
}

func NewNoticeController(db *gorm.DB) *NoticeController {
	return &NoticeController{DB: db}
}

func (nc *NoticeController) Index(c *fiber.Ctx) error {
	query := nc.DB.Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var notices []noticeModel.Notice
	if err := query.Find(&notices).Error; err != nil {
		logger.Error("Failed to fetch notices", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Notices retrieved successfully",
		Data:    notices,
	})
}

func (nc *NoticeController) Store(c *fiber.Ctx) error {
	var req noticeTypes.NoticeRequest
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

	notice := noticeModel.Notice{
		Title:    req.Title,
		Content:  req.Content,
		Priority: req.Priority,
		Status:   noticeModel.StatusActive,
	}
	if req.Status != nil {
		notice.Status = *req.Status
	}

	if err := nc.DB.Create(&notice).Error; err != nil {
		logger.Error("Failed to create notice", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create notice",
			Error:   err.Error(),
		})
	}

	logger.Success(fmt.Sprintf("Notice created successfully with ID: %d", notice.ID))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Notice created successfully",
		Data:    notice,
	})
}

func (nc *NoticeController) Update(c *fiber.Ctx) error {
	var req noticeTypes.NoticeUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	updates := req.Updates()
	if len(updates) > 0 {
		result := nc.DB.Model(&noticeModel.Notice{}).Where("id = ?", c.Params("id")).Updates(updates)
		if result.Error != nil {
			logger.Error("Failed to update notice", result.Error)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Failed to update notice",
				Error:   result.Error.Error(),
			})
		}
		if result.RowsAffected == 0 {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Notice not found",
			})
		}
	}

	var notice noticeModel.Notice
	if err := nc.DB.First(&notice, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Notice not found",
			})
		}
		logger.Error("Failed to fetch notice", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Notice updated successfully",
		Data:    notice,
	})
}

// ToggleStatus flips a notice between active and inactive.
func (nc *NoticeController) ToggleStatus(c *fiber.Ctx) error {
	var notice noticeModel.Notice
	if err := nc.DB.First(&notice, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Notice not found",
			})
		}
		logger.Error("Failed to fetch notice", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	if notice.Status == noticeModel.StatusActive {
		notice.Status = noticeModel.StatusInactive
	} else {
		notice.Status = noticeModel.StatusActive
	}

	if err := nc.DB.Save(&notice).Error; err != nil {
		logger.Error("Failed to update notice status", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update notice status",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Notice status updated successfully",
		Data:    notice,
	})
}

func (nc *NoticeController) Destroy(c *fiber.Ctx) error {
	var notice noticeModel.Notice
	if err := nc.DB.Select("id").First(&notice, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Notice not found",
			})
		}
		logger.Error("Failed to fetch notice", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	if err := nc.DB.Delete(&notice).Error; err != nil {
		logger.Error("Failed to delete notice", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
