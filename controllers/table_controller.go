package controllers

import (
	"fmt"

	"inventory-app/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TableController fronts the generic per-table operations: single and bulk
// delete, and the autocomplete value lists.
type TableController struct {
	DB *gorm.DB
}

func NewTableController(DB *gorm.DB) *TableController {
	return &TableController{DB: DB}
}

var deleteOneInput struct {
	ID    string `json:"id"`
	Table string `json:"table"`
}

func (c *TableController) DeleteItem(ctx *fiber.Ctx) error {

	if err := ctx.BodyParser(&deleteOneInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	repo := repositories.NewTableRepository(c.DB)
	if err := repo.DeleteByID(deleteOneInput.Table, deleteOneInput.ID); err != nil {
		return failure(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Item deleted."})
}

var deleteSelectedInput struct {
	TableName   string   `json:"tableName"`
	SelectedIDs []string `json:"selectedIds"`
}

func (c *TableController) DeleteSelectedItems(ctx *fiber.Ctx) error {

	if err := ctx.BodyParser(&deleteSelectedInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	repo := repositories.NewTableRepository(c.DB)
	count, err := repo.DeleteSelected(deleteSelectedInput.TableName, deleteSelectedInput.SelectedIDs)
	if err != nil {
		return failure(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": fmt.Sprintf("%d item(s) deleted.", count)})
}

// GetUniqueField serves the datalist suggestions: distinct values of one
// column, optionally read through the owning item.
func (c *TableController) GetUniqueField(ctx *fiber.Ctx) error {
	table := ctx.Query("table")
	field := ctx.Query("field")
	relation := ctx.Query("relation")
	relationField := ctx.Query("relationField")

	repo := repositories.NewTableRepository(c.DB)
	values, err := repo.UniqueField(table, field, relation, relationField)
	if err != nil {
		return failure(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(values)
}
