package client

import (
	"errors"
	"fmt"

	"bm-admin/logger"
	clientModel "bm-admin/models/client"
	"bm-admin/types"
	clientTypes "bm-admin/types/client"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ClientController manages contracted customer accounts.
type ClientController struct {
	DB *gorm.DB
}

func NewClientController(db *gorm.DB) *ClientController {
	return &ClientController{DB: db}
}

func (cc *ClientController) Index(c *fiber.Ctx) error {
	var clients []clientModel.Client
	if err := cc.DB.Order("created_at DESC").Find(&clients).Error; err != nil {
		logger.Error("Failed to fetch clients", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Clients retrieved successfully",
		Data:    clients,
	})
}

func (cc *ClientController) Show(c *fiber.Ctx) error {
	var client clientModel.Client
	if err := cc.DB.First(&client, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Client not found",
			})
		}
		logger.Error("Failed to fetch client", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Client retrieved successfully",
		Data:    client,
	})
}

func (cc *ClientController) Store(c *fiber.Ctx) error {
	var req clientTypes.ClientRequest
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

	client := clientModel.Client{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		AccountNumber: req.AccountNumber,
	}
	if req.Balance != nil {
		client.Balance = *req.Balance
	}

	if err := cc.DB.Create(&client).Error; err != nil {
		logger.Error("Failed to create client", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create client",
			Error:   err.Error(),
		})
	}

	logger.Success(fmt.Sprintf("Client created successfully with ID: %d", client.ID))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Client created successfully",
		Data:    client,
	})
}

func (cc *ClientController) Update(c *fiber.Ctx) error {
	var client clientModel.Client
	if err := cc.DB.First(&client, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Client not found",
			})
		}
		logger.Error("Failed to fetch client", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	var req clientTypes.ClientRequest
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

	client.Name = req.Name
	client.Email = req.Email
	client.Phone = req.Phone
	client.Address = req.Address
	client.AccountNumber = req.AccountNumber
	if req.Balance != nil {
		client.Balance = *req.Balance
	}

	if err := cc.DB.Save(&client).Error; err != nil {
		logger.Error("Failed to update client", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update client",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Client updated successfully",
		Data:    client,
	})
}

func (cc *ClientController) Destroy(c *fiber.Ctx) error {
	var client clientModel.Client
	if err := cc.DB.Select("id").First(&client, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Client not found",
			})
		}
		logger.Error("Failed to fetch client", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	if err := cc.DB.Delete(&client).Error; err != nil {
		logger.Error("Failed to delete client", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
