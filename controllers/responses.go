package controllers

import (
	"errors"

	"inventory-app/models"

	"github.com/gofiber/fiber/v2"
)

// failure maps a domain error to the {success:false, message} shape every
// operation returns. Nothing leaks across the boundary as a bare error.
func failure(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	var dup *models.DuplicateCodeError
	var val *models.ValidationError
	var unknown *models.UnknownEntityError
	var imp *models.ImportError

	switch {
	case errors.Is(err, models.ErrNoChange):
		// A no-op is reported, not thrown.
		status = fiber.StatusOK
	case errors.Is(err, models.ErrNotFound),
		errors.Is(err, models.ErrNoMatch),
		errors.Is(err, models.ErrNoLogs):
		status = fiber.StatusNotFound
	case errors.As(err, &dup):
		status = fiber.StatusConflict
	case errors.As(err, &val),
		errors.As(err, &unknown),
		errors.As(err, &imp),
		errors.Is(err, models.ErrInsufficientStock),
		errors.Is(err, models.ErrNegativeQuantity):
		status = fiber.StatusBadRequest
	}

	return ctx.Status(status).JSON(fiber.Map{"success": false, "message": err.Error()})
}
