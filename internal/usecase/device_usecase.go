package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrDeviceNotFound        = errors.New("device not found")
	ErrInvalidDeviceID       = errors.New("invalid device id")
	ErrInvalidCustomerName   = errors.New("invalid customer name")
	ErrInvalidDeviceStatus   = errors.New("invalid device status")
	ErrStatusChangeForbidden = errors.New("role not allowed to change device status")
)

// RegisterDeviceInput is the intake command for a new device.
type RegisterDeviceInput struct {
	CustomerID         string
	CustomerName       string
	CustomerPhone      string
	Brand              string
	Model              string
	ExpectedReturnDate *time.Time
	WarrantyMonths     int
	Note               string
}

// IDeviceUseCase exposes device intake and lifecycle operations.
//
// ChangeStatus is the status machine: it accepts any of the six statuses and
// places no ordering constraint between them. The acting role is the only
// gate, and a successful transition appends one STATUS_CHANGED activity-log
// entry attributed to the actor.

type IDeviceUseCase interface {
	RegisterDevice(ctx context.Context, in RegisterDeviceInput) (entities.Device, error)
	GetByID(ctx context.Context, id string) (entities.Device, error)
	ChangeStatus(ctx context.Context, actor entities.Actor, deviceID, newStatus string) (entities.Device, error)
	ListAuditLogs(ctx context.Context, deviceID string) ([]entities.AuditLog, error)
}

type DeviceUseCase struct {
	repo     interfaces.IDeviceRepository
	auditLog interfaces.IAuditLogRepository
}

var _ IDeviceUseCase = (*DeviceUseCase)(nil)

func NewDeviceUseCase(repo interfaces.IDeviceRepository, auditLog interfaces.IAuditLogRepository) *DeviceUseCase {
	return &DeviceUseCase{repo: repo, auditLog: auditLog}
}

func (u *DeviceUseCase) RegisterDevice(ctx context.Context, in RegisterDeviceInput) (entities.Device, error) {
	if strings.TrimSpace(in.CustomerName) == "" && strings.TrimSpace(in.CustomerID) == "" {
		return entities.Device{}, ErrInvalidCustomerName
	}
	if in.WarrantyMonths < 0 {
		return entities.Device{}, ErrInvalidWarrantyMonths
	}

	now := time.Now().UTC()
	d := entities.Device{
		ID:                 uuid.NewString(),
		CustomerID:         strings.TrimSpace(in.CustomerID),
		CustomerName:       strings.TrimSpace(in.CustomerName),
		CustomerPhone:      strings.TrimSpace(in.CustomerPhone),
		Brand:              strings.TrimSpace(in.Brand),
		Model:              strings.TrimSpace(in.Model),
		Status:             entities.DeviceStatusReceived,
		ReceivedDate:       now,
		ExpectedReturnDate: in.ExpectedReturnDate,
		WarrantyMonths:     in.WarrantyMonths,
		Note:               in.Note,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	return u.repo.Create(ctx, d)
}

func (u *DeviceUseCase) GetByID(ctx context.Context, id string) (entities.Device, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Device{}, ErrInvalidDeviceID
	}

	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Device{}, err
	}
	if d.ID == "" {
		return entities.Device{}, ErrDeviceNotFound
	}
	return d, nil
}

// ChangeStatus validates the target status, checks the actor role, applies
// the transition and appends the audit entry. An authorization or validation
// failure writes nothing.
func (u *DeviceUseCase) ChangeStatus(ctx context.Context, actor entities.Actor, deviceID, newStatus string) (entities.Device, error) {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return entities.Device{}, ErrInvalidDeviceID
	}

	status, err := entities.ParseDeviceStatus(newStatus)
	if err != nil {
		return entities.Device{}, ErrInvalidDeviceStatus
	}
	if !actor.Role.CanChangeStatus() {
		return entities.Device{}, ErrStatusChangeForbidden
	}

	current, err := u.repo.GetByID(ctx, deviceID)
	if err != nil {
		return entities.Device{}, err
	}
	if current.ID == "" {
		return entities.Device{}, ErrDeviceNotFound
	}

	updated, err := u.repo.UpdateStatus(ctx, deviceID, status)
	if err != nil {
		return entities.Device{}, err
	}
	if updated.ID == "" {
		return entities.Device{}, ErrDeviceNotFound
	}

	entry := entities.AuditLog{
		ID:        uuid.NewString(),
		DeviceID:  deviceID,
		Action:    entities.AuditActionStatusChanged,
		Detail:    fmt.Sprintf("%s → %s", current.Status, status),
		ActorID:   actor.ID,
		ActorName: actor.Name,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := u.auditLog.Append(ctx, entry); err != nil {
		log.Printf("[device][usecase] audit append failed device_id=%s detail=%q err=%v", deviceID, entry.Detail, err)
		return entities.Device{}, err
	}

	return updated, nil
}

func (u *DeviceUseCase) ListAuditLogs(ctx context.Context, deviceID string) ([]entities.AuditLog, error) {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return nil, ErrInvalidDeviceID
	}
	return u.auditLog.ListByDeviceID(ctx, deviceID)
}
