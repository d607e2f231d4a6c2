package controllers

import (
	"fmt"

	"inventory-app/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TransferController drives spreadsheet import and export. The UI resolves
// filesystem paths through its own file dialogs before calling in here.
type TransferController struct {
	DB *gorm.DB
}

func NewTransferController(DB *gorm.DB) *TransferController {
	return &TransferController{DB: DB}
}

var importInput struct {
	Path string `json:"path" validate:"required"`
}

func (c *TransferController) ImportItems(ctx *fiber.Ctx) error {

	if err := ctx.BodyParser(&importInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(importInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	repo := repositories.NewTransferRepository(c.DB)
	result, err := repo.ImportItems(importInput.Path)
	if err != nil {
		return failure(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("%d rows imported, %d skipped.", result.Imported, result.Skipped),
		"data":    result,
	})
}

func (c *TransferController) ImportPulledItems(ctx *fiber.Ctx) error {

	if err := ctx.BodyParser(&importInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(importInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	repo := repositories.NewTransferRepository(c.DB)
	result, err := repo.ImportPulledItems(importInput.Path)
	if err != nil {
		return failure(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("%d rows imported, %d skipped.", result.Imported, result.Skipped),
		"data":    result,
	})
}

var exportItemsInput struct {
	Year       int    `json:"year"`
	OutputPath string `json:"outputPath" validate:"required"`
}

func (c *TransferController) ExportItems(ctx *fiber.Ctx) error {

	if err := ctx.BodyParser(&exportItemsInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(exportItemsInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	repo := repositories.NewTransferRepository(c.DB)
	count, err := repo.ExportItems(exportItemsInput.Year, exportItemsInput.OutputPath)
	if err != nil {
		return failure(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": fmt.Sprintf("%d items exported.", count)})
}

var exportTableInput struct {
	TableName   string   `json:"tableName" validate:"required"`
	SelectedIDs []string `json:"selectedIds" validate:"required,min=1"`
	OutputPath  string   `json:"outputPath" validate:"required"`
}

func (c *TransferController) ExportTable(ctx *fiber.Ctx) error {

	if err := ctx.BodyParser(&exportTableInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(exportTableInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	repo := repositories.NewTransferRepository(c.DB)
	count, err := repo.ExportTable(exportTableInput.TableName, exportTableInput.SelectedIDs, exportTableInput.OutputPath)
	if err != nil {
		return failure(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": fmt.Sprintf("%d rows exported.", count)})
}
