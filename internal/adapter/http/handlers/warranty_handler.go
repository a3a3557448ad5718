package handlers

import (
	"errors"
	"net/http"
	"time"

	"repairdesk/internal/adapter/http/dto/request"
	"repairdesk/internal/adapter/http/dto/response"
	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase"
	"repairdesk/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidWarrantyPayload = pkg.NewDomainErrorSimple("INVALID_WARRANTY_INPUT", "Invalid warranty payload", http.StatusBadRequest)

// WarrantyHandler handles warranty issuance and listing.

type WarrantyHandler struct {
	usecase usecase.IWarrantyUseCase
}

func NewWarrantyHandler(uc usecase.IWarrantyUseCase) *WarrantyHandler {
	return &WarrantyHandler{usecase: uc}
}

func (h *WarrantyHandler) IssueWarranty(c *gin.Context) {
	var payload request.IssueWarrantyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWarrantyPayload.HTTPStatus, errInvalidWarrantyPayload.ToHTTPError())
		return
	}

	w, err := h.usecase.IssueWarranty(c.Request.Context(), c.Param("id"), usecase.IssueWarrantyInput{
		RepairItemID: payload.RepairItemID,
		Months:       payload.WarrantyMonths,
	})
	if err != nil {
		appErr := mapWarrantyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromWarrantyView(entities.WarrantyView{
		Warranty: w,
		Status:   w.StatusAt(time.Now().UTC()),
		Coverage: w.Coverage(),
	}))
}

func (h *WarrantyHandler) ListByDevice(c *gin.Context) {
	views, err := h.usecase.ListByDeviceID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWarrantyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWarrantyViews(views))
}

func mapWarrantyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDeviceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidWarrantyDuration):
		return pkg.NewDomainErrorSimple("INVALID_WARRANTY_DURATION", "Warranty duration must be at least one month", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRepairItemWrongDevice):
		return pkg.NewDomainErrorSimple("REPAIR_ITEM_MISMATCH", "Repair item belongs to another device", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDeviceNotFound):
		return pkg.NewDomainErrorSimple("DEVICE_NOT_FOUND", "Device not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRepairItemNotFound):
		return pkg.NewDomainErrorSimple("REPAIR_ITEM_NOT_FOUND", "Repair item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
