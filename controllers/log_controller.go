package controllers

import (
	"inventory-app/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type LogController struct {
	DB *gorm.DB
}

func NewLogController(DB *gorm.DB) *LogController {
	return &LogController{DB: DB}
}

var addLogInput struct {
	ItemID uint   `json:"itemId" validate:"required"`
	User   string `json:"user" validate:"required"`
	Log    string `json:"log" validate:"required"`
}

// AddLog lets the view layer attach its own audit entries. Failures here are
// real errors; only the internal post-mutation writes are fire-and-forget.
func (c *LogController) AddLog(ctx *fiber.Ctx) error {

	if err := ctx.BodyParser(&addLogInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(addLogInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	repo := repositories.NewLogRepository(c.DB)
	if err := repo.AddLog(addLogInput.ItemID, addLogInput.User, addLogInput.Log); err != nil {
		return failure(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Log created."})
}

func (c *LogController) GetLogs(ctx *fiber.Ctx) error {

	repo := repositories.NewLogRepository(c.DB)
	logs, err := repo.GetLogs()
	if err != nil {
		return failure(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(logs)
}

func (c *LogController) DeleteAllLogs(ctx *fiber.Ctx) error {

	repo := repositories.NewLogRepository(c.DB)
	if _, err := repo.DeleteAllLogs(); err != nil {
		return failure(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "All logs deleted."})
}
