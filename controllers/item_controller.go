package controllers

import (
	"strconv"

	"inventory-app/models"
	"inventory-app/repositories"
	"inventory-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ItemController struct {
	DB *gorm.DB
}

func NewItemController(DB *gorm.DB) *ItemController {
	return &ItemController{DB: DB}
}

var addItemInput struct {
	ItemCode    string `json:"itemCode" validate:"required"`
	ItemName    string `json:"itemName" validate:"required"`
	Quantity    int    `json:"quantity" validate:"min=0"`
	Unit        string `json:"unit" validate:"required"`
	Withdrawn   int    `json:"withdrawn" validate:"min=0"`
	AddedBy     string `json:"addedBy" validate:"required"`
	Date        string `json:"date" validate:"required"`
	DeliveredBy string `json:"deliveredBy"`
	IsDelivered bool   `json:"isDelivered"`
	ReleasedBy  string `json:"releasedBy"`
}

func (c *ItemController) AddItem(ctx *fiber.Ctx) error {

	if err := ctx.BodyParser(&addItemInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(addItemInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	date, ok := utils.ParseFlexibleDate(addItemInput.Date)
	if !ok {
		return failure(ctx, &models.ValidationError{Message: "Invalid date: " + addItemInput.Date})
	}

	repo := repositories.NewItemRepository(c.DB)
	item, err := repo.AddItem(repositories.AddItemInput{
		ItemCode:    addItemInput.ItemCode,
		ItemName:    addItemInput.ItemName,
		Quantity:    addItemInput.Quantity,
		Unit:        addItemInput.Unit,
		Withdrawn:   addItemInput.Withdrawn,
		AddedBy:     addItemInput.AddedBy,
		Date:        date,
		DeliveredBy: addItemInput.DeliveredBy,
		IsDelivered: addItemInput.IsDelivered,
		ReleasedBy:  addItemInput.ReleasedBy,
	})
	if err != nil && item == nil {
		return failure(ctx, err)
	}
	if err != nil {
		// The item row committed; only a related record failed.
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": false, "message": err.Error(), "item": item})
	}

	logRepo := repositories.NewLogRepository(c.DB)
	logRepo.LogAction(item.ID, item.AddedBy, "Added "+strconv.Itoa(addItemInput.Quantity)+" "+item.Unit+" of "+item.ItemName)

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Item successfully added.", "item": item})
}

func (c *ItemController) GetItems(ctx *fiber.Ctx) error {

	repo := repositories.NewItemRepository(c.DB)
	items, err := repo.GetItems()
	if err != nil {
		return failure(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(items)
}

// GetItemTotals serves the year-filtered requested/delivered/withdrawn sums
// for one item. Without a year query the totals cover all time.
func (c *ItemController) GetItemTotals(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid ID"})
	}
	year := ctx.QueryInt("year", 0)

	repo := repositories.NewItemRepository(c.DB)
	item, err := repo.GetItemByID(uint(id))
	if err != nil {
		return failure(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": item.Totals(year)})
}

var editItemInput struct {
	ItemID   uint   `json:"itemId" validate:"required"`
	ItemCode string `json:"itemCode" validate:"required"`
	ItemName string `json:"itemName" validate:"required"`
	ItemUnit string `json:"itemUnit" validate:"required"`
}

func (c *ItemController) EditItem(ctx *fiber.Ctx) error {

	if err := ctx.BodyParser(&editItemInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(editItemInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	repo := repositories.NewItemRepository(c.DB)
	item, err := repo.EditItem(editItemInput.ItemID, editItemInput.ItemCode, editItemInput.ItemName, editItemInput.ItemUnit)
	if err != nil {
		return failure(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Information updated.", "item": item})
}

var pullItemInput struct {
	ItemID           uint   `json:"itemId" validate:"required"`
	ReleasedQuantity int    `json:"releasedQuantity" validate:"required,min=1"`
	ReleasedBy       string `json:"releasedBy" validate:"required"`
	ReceivedBy       string `json:"receivedBy" validate:"required"`
	ReleasedDate     string `json:"releasedDate" validate:"required"`
}

func (c *ItemController) PullItem(ctx *fiber.Ctx) error {

	if err := ctx.BodyParser(&pullItemInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(pullItemInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	date, ok := utils.ParseFlexibleDate(pullItemInput.ReleasedDate)
	if !ok {
		return failure(ctx, &models.ValidationError{Message: "Invalid date: " + pullItemInput.ReleasedDate})
	}

	repo := repositories.NewItemRepository(c.DB)
	item, err := repo.PullItem(pullItemInput.ItemID, pullItemInput.ReleasedQuantity, pullItemInput.ReleasedBy, pullItemInput.ReceivedBy, date)
	if err != nil {
		return failure(ctx, err)
	}

	logRepo := repositories.NewLogRepository(c.DB)
	logRepo.LogAction(item.ID, pullItemInput.ReleasedBy,
		"Pulled "+strconv.Itoa(pullItemInput.ReleasedQuantity)+" "+item.Unit+" of "+item.ItemName)

	// item is the pre-pull snapshot, the caller words its own confirmation.
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Item successfully pulled.", "item": item})
}

var updateQuantityInput struct {
	ItemID      uint   `json:"itemId" validate:"required"`
	NewQuantity int    `json:"newQuantity"`
	UpdatedBy   string `json:"updatedBy" validate:"required"`
	Date        string `json:"date" validate:"required"`
	DeliveredBy string `json:"deliveredBy"`
}

func (c *ItemController) UpdateItemQuantity(ctx *fiber.Ctx) error {

	if err := ctx.BodyParser(&updateQuantityInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(updateQuantityInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	date, ok := utils.ParseFlexibleDate(updateQuantityInput.Date)
	if !ok {
		return failure(ctx, &models.ValidationError{Message: "Invalid date: " + updateQuantityInput.Date})
	}

	repo := repositories.NewItemRepository(c.DB)
	item, err := repo.UpdateQuantity(updateQuantityInput.ItemID, updateQuantityInput.NewQuantity, updateQuantityInput.UpdatedBy, date, updateQuantityInput.DeliveredBy)
	if err != nil {
		return failure(ctx, err)
	}

	logRepo := repositories.NewLogRepository(c.DB)
	logRepo.LogAction(item.ID, updateQuantityInput.UpdatedBy,
		"Restocked "+strconv.Itoa(updateQuantityInput.NewQuantity)+" "+item.Unit+" of "+item.ItemName)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Quantity updated.", "item": item})
}
