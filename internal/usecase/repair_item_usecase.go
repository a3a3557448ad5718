package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRepairItemNotFound    = errors.New("repair item not found")
	ErrInvalidRepairItemID   = errors.New("invalid repair item id")
	ErrInvalidServiceName    = errors.New("invalid service name")
	ErrInvalidCost           = errors.New("cost must not be negative")
	ErrInvalidWarrantyMonths = errors.New("warranty months must not be negative")
)

// AddRepairItemInput is the command for attaching one billable service/part
// to a device. ServiceName is captured as-is for history stability.
type AddRepairItemInput struct {
	ServiceID      string
	ServiceName    string
	PartUsed       string
	Cost           int64
	WarrantyMonths int
	Description    string
}

// IRepairItemUseCase exposes repair-item operations for a device.

type IRepairItemUseCase interface {
	AddItem(ctx context.Context, deviceID string, in AddRepairItemInput) (entities.RepairItem, error)
	ListByDeviceID(ctx context.Context, deviceID string) ([]entities.RepairItem, int64, error)
	DeleteItem(ctx context.Context, id string) error
}

type RepairItemUseCase struct {
	repo       interfaces.IRepairItemRepository
	deviceRepo interfaces.IDeviceRepository
}

var _ IRepairItemUseCase = (*RepairItemUseCase)(nil)

func NewRepairItemUseCase(repo interfaces.IRepairItemRepository, deviceRepo interfaces.IDeviceRepository) *RepairItemUseCase {
	return &RepairItemUseCase{repo: repo, deviceRepo: deviceRepo}
}

func (u *RepairItemUseCase) AddItem(ctx context.Context, deviceID string, in AddRepairItemInput) (entities.RepairItem, error) {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return entities.RepairItem{}, ErrInvalidDeviceID
	}
	if strings.TrimSpace(in.ServiceName) == "" {
		return entities.RepairItem{}, ErrInvalidServiceName
	}
	if in.Cost < 0 {
		return entities.RepairItem{}, ErrInvalidCost
	}
	if in.WarrantyMonths < 0 {
		return entities.RepairItem{}, ErrInvalidWarrantyMonths
	}

	device, err := u.deviceRepo.GetByID(ctx, deviceID)
	if err != nil {
		return entities.RepairItem{}, err
	}
	if device.ID == "" {
		return entities.RepairItem{}, ErrDeviceNotFound
	}

	it := entities.RepairItem{
		ID:             uuid.NewString(),
		DeviceID:       deviceID,
		ServiceID:      strings.TrimSpace(in.ServiceID),
		ServiceName:    strings.TrimSpace(in.ServiceName),
		PartUsed:       strings.TrimSpace(in.PartUsed),
		Cost:           in.Cost,
		WarrantyMonths: in.WarrantyMonths,
		Description:    in.Description,
		CreatedAt:      time.Now().UTC(),
	}
	return u.repo.Create(ctx, it)
}

// ListByDeviceID returns the device's items plus their current subtotal, the
// number billing screens pre-fill a new transaction with.
func (u *RepairItemUseCase) ListByDeviceID(ctx context.Context, deviceID string) ([]entities.RepairItem, int64, error) {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return nil, 0, ErrInvalidDeviceID
	}

	items, err := u.repo.ListByDeviceID(ctx, deviceID)
	if err != nil {
		return nil, 0, err
	}
	return items, entities.Subtotal(items), nil
}

// DeleteItem removes one repair item. Existing transactions are left alone:
// derived views always recompute the subtotal from the live item list.
func (u *RepairItemUseCase) DeleteItem(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidRepairItemID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrRepairItemNotFound
	}
	return nil
}
