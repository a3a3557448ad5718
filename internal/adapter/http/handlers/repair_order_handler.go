package handlers

import (
	"errors"
	"net/http"

	"repairdesk/internal/adapter/http/dto/response"
	"repairdesk/internal/usecase"
	"repairdesk/pkg"

	"github.com/gin-gonic/gin"
)

// RepairOrderHandler serves the combined billing/warranty view of one device.

type RepairOrderHandler struct {
	usecase usecase.IRepairOrderUseCase
}

func NewRepairOrderHandler(uc usecase.IRepairOrderUseCase) *RepairOrderHandler {
	return &RepairOrderHandler{usecase: uc}
}

func (h *RepairOrderHandler) GetSnapshot(c *gin.Context) {
	snapshot, err := h.usecase.GetSnapshot(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapSnapshotError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderSnapshot(snapshot))
}

func mapSnapshotError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDeviceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDeviceNotFound):
		return pkg.NewDomainErrorSimple("DEVICE_NOT_FOUND", "Device not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
