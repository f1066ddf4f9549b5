package inquiry

import (
	"errors"
	"fmt"

	"bm-admin/logger"
	inquiryModel "bm-admin/models/inquiry"
	"bm-admin/types"
	inquiryTypes "bm-admin/types/inquiry"
	"bm-admin/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// InquiryController manages support inquiries raised by branch accounts.
type InquiryController struct {
	DB *gorm.DB
}

func NewInquiryController(db *gorm.DB) *InquiryController {
	return &InquiryController{DB: db}
}

// detailQuery joins the raising branch and the assigned staff member so list
// responses carry display names without extra round trips.
func (ic *InquiryController) detailQuery() *gorm.DB {
	return ic.DB.Table("inquiries").
		Select("inquiries.*, branches.name AS user_name, branches.email AS user_email, staff.name AS assigned_staff_name").
		Joins("LEFT JOIN branches ON inquiries.user_id = branches.id").
		Joins("LEFT JOIN staff ON inquiries.assigned_to = staff.id")
}

func (ic *InquiryController) Index(c *fiber.Ctx) error {
	var rows []inquiryTypes.Row
	if err := ic.detailQuery().Order("inquiries.created_at DESC").Scan(&rows).Error; err != nil {
		logger.Error("Failed to fetch inquiries", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Inquiries retrieved successfully",
		Data:    rows,
	})
}

func (ic *InquiryController) Show(c *fiber.Ctx) error {
	var row inquiryTypes.Row
	result := ic.detailQuery().Where("inquiries.id = ?", c.Params("id")).Scan(&row)
	if result.Error != nil {
		logger.Error("Failed to fetch inquiry", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   result.Error.Error(),
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Inquiry not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Inquiry retrieved successfully",
		Data:    row,
	})
}

func (ic *InquiryController) Store(c *fiber.Ctx) error {
	claims, ok := utils.GetClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid user claims",
		})
	}
	userID, ok := utils.ClaimUint(claims, "id")
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User not found in token",
		})
	}

	var req inquiryTypes.InquiryCreateRequest
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

	inquiryType := req.InquiryType
	if inquiryType == "" {
		inquiryType = inquiryModel.TypeGeneral
	}

	inquiry := inquiryModel.Inquiry{
		UserID:      userID,
		Subject:     req.Subject,
		Message:     req.Message,
		InquiryType: inquiryType,
		Status:      inquiryModel.StatusPending,
		Priority:    "medium",
	}

	if err := ic.DB.Create(&inquiry).Error; err != nil {
		logger.Error("Failed to create inquiry", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create inquiry",
			Error:   err.Error(),
		})
	}

	logger.Success(fmt.Sprintf("Inquiry created successfully with ID: %d", inquiry.ID))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Inquiry created successfully",
		Data:    inquiry,
	})
}

func (ic *InquiryController) Update(c *fiber.Ctx) error {
	var req inquiryTypes.InquiryUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	updates := req.Updates()
	if len(updates) > 0 {
		result := ic.DB.Model(&inquiryModel.Inquiry{}).Where("id = ?", c.Params("id")).Updates(updates)
		if result.Error != nil {
			logger.Error("Failed to update inquiry", result.Error)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Failed to update inquiry",
				Error:   result.Error.Error(),
			})
		}
		if result.RowsAffected == 0 {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Inquiry not found",
			})
		}
	}

	var row inquiryTypes.Row
	result := ic.detailQuery().Where("inquiries.id = ?", c.Params("id")).Scan(&row)
	if result.Error != nil {
		logger.Error("Failed to fetch inquiry", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   result.Error.Error(),
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Inquiry not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Inquiry updated successfully",
		Data:    row,
	})
}

func (ic *InquiryController) Destroy(c *fiber.Ctx) error {
	var inquiry inquiryModel.Inquiry
	if err := ic.DB.Select("id").First(&inquiry, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Inquiry not found",
			})
		}
		logger.Error("Failed to fetch inquiry", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	if err := ic.DB.Delete(&inquiry).Error; err != nil {
		logger.Error("Failed to delete inquiry", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ByStatus lists inquiries in one lifecycle state.
func (ic *InquiryController) ByStatus(c *fiber.Ctx) error {
	var rows []inquiryTypes.Row
	if err := ic.detailQuery().Where("inquiries.status = ?", c.Params("status")).Order("inquiries.created_at DESC").Scan(&rows).Error; err != nil {
		logger.Error("Failed to fetch inquiries", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Inquiries retrieved successfully",
		Data:    rows,
	})
}

// ByType lists inquiries of one category.
func (ic *InquiryController) ByType(c *fiber.Ctx) error {
	var rows []inquiryTypes.Row
	if err := ic.detailQuery().Where("inquiries.inquiry_type = ?", c.Params("type")).Order("inquiries.created_at DESC").Scan(&rows).Error; err != nil {
		logger.Error("Failed to fetch inquiries", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Inquiries retrieved successfully",
		Data:    rows,
	})
}
