package handlers

import (
	"errors"
	"net/http"

	"repairdesk/internal/adapter/http/dto/request"
	"repairdesk/internal/adapter/http/dto/response"
	"repairdesk/internal/usecase"
	"repairdesk/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRepairItemPayload = pkg.NewDomainErrorSimple("INVALID_REPAIR_ITEM_INPUT", "Invalid repair item payload", http.StatusBadRequest)

// RepairItemHandler handles billable service/part requests for a device.

type RepairItemHandler struct {
	usecase usecase.IRepairItemUseCase
}

func NewRepairItemHandler(uc usecase.IRepairItemUseCase) *RepairItemHandler {
	return &RepairItemHandler{usecase: uc}
}

func (h *RepairItemHandler) AddItem(c *gin.Context) {
	var payload request.AddRepairItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRepairItemPayload.HTTPStatus, errInvalidRepairItemPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.AddItem(c.Request.Context(), c.Param("id"), usecase.AddRepairItemInput{
		ServiceID:      payload.ServiceID,
		ServiceName:    payload.ServiceName,
		PartUsed:       payload.PartUsed,
		Cost:           payload.Cost,
		WarrantyMonths: payload.WarrantyMonths,
		Description:    payload.Description,
	})
	if err != nil {
		appErr := mapRepairItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRepairItem(item))
}

func (h *RepairItemHandler) ListByDevice(c *gin.Context) {
	items, subtotal, err := h.usecase.ListByDeviceID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRepairItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRepairItems(items, subtotal))
}

func (h *RepairItemHandler) DeleteItem(c *gin.Context) {
	if err := h.usecase.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapRepairItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapRepairItemError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDeviceID), errors.Is(err, usecase.ErrInvalidRepairItemID),
		errors.Is(err, usecase.ErrInvalidServiceName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCost):
		return pkg.NewDomainErrorSimple("INVALID_COST", "Cost must not be negative", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidWarrantyMonths):
		return pkg.NewDomainErrorSimple("INVALID_WARRANTY_MONTHS", "Warranty months must not be negative", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDeviceNotFound):
		return pkg.NewDomainErrorSimple("DEVICE_NOT_FOUND", "Device not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRepairItemNotFound):
		return pkg.NewDomainErrorSimple("REPAIR_ITEM_NOT_FOUND", "Repair item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
