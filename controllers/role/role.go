package role

import (
	"bm-admin/logger"
	roleModel "bm-admin/models/role"
	"bm-admin/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RoleController struct {
	DB *gorm.DB
}

func NewRoleController(db *gorm.DB) *RoleController {
	return &RoleController{DB: db}
}

func (rc *RoleController) Index(c *fiber.Ctx) error {
	var roles []roleModel.Role
	if err := rc.DB.Order("name").Find(&roles).Error; err != nil {
		logger.Error("Failed to fetch roles", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Roles retrieved successfully",
		Data:    roles,
	})
}
