package controllers

import (
	"inventory-app/models"
	"inventory-app/repositories"
	"inventory-app/types"
	"inventory-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HistoryController struct {
	DB *gorm.DB
}

func NewHistoryController(DB *gorm.DB) *HistoryController {
	return &HistoryController{DB: DB}
}

var addPrInput struct {
	ItemCode          string `json:"itemCode" validate:"required"`
	RequestedQuantity int    `json:"requestedQuantity" validate:"required,min=1"`
	RequestedBy       string `json:"requestedBy" validate:"required"`
	RequestedDate     string `json:"requestedDate" validate:"required"`
}

func (c *HistoryController) AddPurchaseRequest(ctx *fiber.Ctx) error {

	if err := ctx.BodyParser(&addPrInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(addPrInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	date, ok := utils.ParseFlexibleDate(addPrInput.RequestedDate)
	if !ok {
		return failure(ctx, &models.ValidationError{Message: "Invalid date: " + addPrInput.RequestedDate})
	}

	repo := repositories.NewHistoryRepository(c.DB)
	pr, err := repo.AddPurchaseRequest(addPrInput.ItemCode, addPrInput.RequestedQuantity, addPrInput.RequestedBy, date)
	if err != nil {
		return failure(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Purchase Request added.", "data": pr})
}

var addDrInput struct {
	ItemCode          string `json:"itemCode" validate:"required"`
	DeliveredQuantity int    `json:"deliveredQuantity" validate:"required,min=1"`
	DeliveredBy       string `json:"deliveredBy" validate:"required"`
	ReceivedBy        string `json:"receivedBy" validate:"required"`
	DeliveredDate     string `json:"deliveredDate" validate:"required"`
}

func (c *HistoryController) AddRequestDelivered(ctx *fiber.Ctx) error {

	if err := ctx.BodyParser(&addDrInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(addDrInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	date, ok := utils.ParseFlexibleDate(addDrInput.DeliveredDate)
	if !ok {
		return failure(ctx, &models.ValidationError{Message: "Invalid date: " + addDrInput.DeliveredDate})
	}

	repo := repositories.NewHistoryRepository(c.DB)
	dr, err := repo.AddRequestDelivered(addDrInput.ItemCode, addDrInput.DeliveredQuantity, addDrInput.DeliveredBy, addDrInput.ReceivedBy, date)
	if err != nil {
		return failure(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Delivery recorded.", "data": dr})
}

var editPrInput struct {
	ID                types.SnowflakeID `json:"id" validate:"required"`
	RequestedQuantity int               `json:"requestedQuantity" validate:"required,min=1"`
	RequestedBy       string            `json:"requestedBy" validate:"required"`
}

func (c *HistoryController) EditPurchaseRequest(ctx *fiber.Ctx) error {

	if err := ctx.BodyParser(&editPrInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(editPrInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	repo := repositories.NewHistoryRepository(c.DB)
	pr, err := repo.EditPurchaseRequest(editPrInput.ID, editPrInput.RequestedQuantity, editPrInput.RequestedBy)
	if err != nil {
		return failure(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Information updated.", "data": pr})
}

// FetchHistory serves the PR/DR table with caller-chosen sort.
func (c *HistoryController) FetchHistory(ctx *fiber.Ctx) error {
	tableName := ctx.Query("tableName")
	orderBy := ctx.Query("orderBy")
	order := ctx.Query("order", "desc")

	repo := repositories.NewHistoryRepository(c.DB)
	rows, err := repo.FetchHistory(tableName, orderBy, order)
	if err != nil {
		return failure(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(rows)
}

func (c *HistoryController) GetPullItems(ctx *fiber.Ctx) error {

	repo := repositories.NewHistoryRepository(c.DB)
	pulled, err := repo.GetPulledItems()
	if err != nil {
		return failure(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(pulled)
}
