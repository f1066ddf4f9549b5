package team

import (
	"fmt"

	"bm-admin/logger"
	staffModel "bm-admin/models/staff"
	teamModel "bm-admin/models/team"
	"bm-admin/types"
	teamTypes "bm-admin/types/team"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TeamController manages crews and their commanders.
type TeamController struct {
	DB *gorm.DB
}

func NewTeamController(db *gorm.DB) *TeamController {
	return &TeamController{DB: db}
}

func (tc *TeamController) Index(c *fiber.Ctx) error {
	var teams []teamModel.Team
	if err := tc.DB.Preload("CrewCommander").Preload("Members").Order("created_at DESC").Find(&teams).Error; err != nil {
		logger.Error("Failed to fetch teams", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Teams retrieved successfully",
		Data:    teams,
	})
}

func (tc *TeamController) Store(c *fiber.Ctx) error {
	var req teamTypes.TeamCreateRequest
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

	team := teamModel.Team{
		Name:            req.Name,
		BranchID:        req.BranchID,
		CrewCommanderID: req.CrewCommanderID,
	}

	err := tc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&team).Error; err != nil {
			return err
		}

		if len(req.MemberIDs) > 0 {
			var members []staffModel.Staff
			if err := tx.Where("id IN ?", req.MemberIDs).Find(&members).Error; err != nil {
				return err
			}
			if err := tx.Model(&team).Association("Members").Append(&members); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		logger.Error("Failed to create team", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create team",
			Error:   err.Error(),
		})
	}

	logger.Success(fmt.Sprintf("Team created successfully with ID: %d", team.ID))

	var created teamModel.Team
	if err := tc.DB.Preload("CrewCommander").Preload("Members").First(&created, team.ID).Error; err != nil {
		logger.Error("Failed to load created team", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Team created but failed to retrieve complete data",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Team created successfully",
		Data:    created,
	})
}
