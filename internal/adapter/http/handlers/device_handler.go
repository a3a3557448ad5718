package handlers

import (
	"errors"
	"log"
	"net/http"

	"repairdesk/internal/adapter/http/dto/request"
	"repairdesk/internal/adapter/http/dto/response"
	"repairdesk/internal/adapter/http/middleware"
	"repairdesk/internal/usecase"
	"repairdesk/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidDevicePayload = pkg.NewDomainErrorSimple("INVALID_DEVICE_INPUT", "Invalid device payload", http.StatusBadRequest)

// DeviceHandler handles device intake and lifecycle requests.

type DeviceHandler struct {
	usecase usecase.IDeviceUseCase
}

func NewDeviceHandler(uc usecase.IDeviceUseCase) *DeviceHandler {
	return &DeviceHandler{usecase: uc}
}

// RegisterDevice receives a device into the shop at status RECEIVED.
func (h *DeviceHandler) RegisterDevice(c *gin.Context) {
	var payload request.RegisterDeviceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDevicePayload.HTTPStatus, errInvalidDevicePayload.ToHTTPError())
		return
	}

	device, err := h.usecase.RegisterDevice(c.Request.Context(), usecase.RegisterDeviceInput{
		CustomerID:         payload.CustomerID,
		CustomerName:       payload.CustomerName,
		CustomerPhone:      payload.CustomerPhone,
		Brand:              payload.Brand,
		Model:              payload.Model,
		ExpectedReturnDate: payload.ExpectedReturnDate,
		WarrantyMonths:     payload.WarrantyMonths,
		Note:               payload.Note,
	})
	if err != nil {
		appErr := mapDeviceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDevice(device))
}

func (h *DeviceHandler) GetDevice(c *gin.Context) {
	device, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDeviceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDevice(device))
}

// ChangeStatus applies a lifecycle transition on behalf of the
// authenticated actor and returns the updated device.
func (h *DeviceHandler) ChangeStatus(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.ChangeStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDevicePayload.HTTPStatus, errInvalidDevicePayload.ToHTTPError())
		return
	}

	deviceID := c.Param("id")
	device, err := h.usecase.ChangeStatus(c.Request.Context(), actor, deviceID, payload.NewStatus)
	if err != nil {
		log.Printf("[device][handler] status change failed device_id=%s new_status=%s err=%v", deviceID, payload.NewStatus, err)
		appErr := mapDeviceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDevice(device))
}

func (h *DeviceHandler) ListAuditLogs(c *gin.Context) {
	entries, err := h.usecase.ListAuditLogs(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDeviceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAuditLogs(entries))
}

func mapDeviceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDeviceID), errors.Is(err, usecase.ErrInvalidCustomerName),
		errors.Is(err, usecase.ErrInvalidWarrantyMonths):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDeviceStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Unknown device status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStatusChangeForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Role not allowed to change device status", http.StatusForbidden)
	case errors.Is(err, usecase.ErrDeviceNotFound):
		return pkg.NewDomainErrorSimple("DEVICE_NOT_FOUND", "Device not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
