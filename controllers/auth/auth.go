package auth

import (
	"errors"
	"os"
	"time"

	"bm-admin/logger"
	branchModel "bm-admin/models/branch"
	"bm-admin/types"
	"bm-admin/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// AuthController handles branch login and identity lookups.
type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// Login verifies branch credentials and issues a signed token.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req types.LoginRequest
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

	var branch branchModel.Branch
	if err := ac.DB.Where("name = ?", req.Username).First(&branch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Status:  fiber.StatusUnauthorized,
				Message: "Invalid credentials",
			})
		}
		logger.Error("Failed to look up branch", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	if !utils.CheckPassword(branch.Password, req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid credentials",
		})
	}

	claims := jwt.MapClaims{
		"id":       branch.ID,
		"branchId": branch.ID,
		"name":     branch.Name,
		"role":     branch.Role,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}
	if branch.RoleID != nil {
		claims["role_id"] = *branch.RoleID
	}
	if branch.ClientID != nil {
		claims["clientId"] = *branch.ClientID
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "your-secret-key"
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		logger.Error("Failed to sign token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	logger.Success("Branch logged in: " + branch.Name)

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Login successful",
		Token:   token,
		Data: types.LoginUser{
			ID:       branch.ID,
			Name:     branch.Name,
			Email:    branch.Email,
			Role:     branch.Role,
			RoleID:   branch.RoleID,
			ClientID: branch.ClientID,
		},
	})
}

// Profile echoes the authenticated identity claims.
func (ac *AuthController) Profile(c *fiber.Ctx) error {
	claims, ok := utils.GetClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid user claims",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Profile retrieved successfully",
		Data:    claims,
	})
}
