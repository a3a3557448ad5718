package usecase

import (
	"context"
	"strings"
	"time"

	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase/interfaces"
)

// IRepairOrderUseCase assembles the consistent billing/warranty read-model
// for one device. It owns no state: every call works on a freshly fetched
// snapshot, so the same underlying data always yields the same view.

type IRepairOrderUseCase interface {
	GetSnapshot(ctx context.Context, deviceID string) (entities.OrderSnapshot, error)
}

type RepairOrderUseCase struct {
	deviceRepo      interfaces.IDeviceRepository
	itemRepo        interfaces.IRepairItemRepository
	transactionRepo interfaces.ITransactionRepository
	warrantyRepo    interfaces.IWarrantyRepository
}

var _ IRepairOrderUseCase = (*RepairOrderUseCase)(nil)

func NewRepairOrderUseCase(
	deviceRepo interfaces.IDeviceRepository,
	itemRepo interfaces.IRepairItemRepository,
	transactionRepo interfaces.ITransactionRepository,
	warrantyRepo interfaces.IWarrantyRepository,
) *RepairOrderUseCase {
	return &RepairOrderUseCase{
		deviceRepo:      deviceRepo,
		itemRepo:        itemRepo,
		transactionRepo: transactionRepo,
		warrantyRepo:    warrantyRepo,
	}
}

func (u *RepairOrderUseCase) GetSnapshot(ctx context.Context, deviceID string) (entities.OrderSnapshot, error) {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return entities.OrderSnapshot{}, ErrInvalidDeviceID
	}

	device, err := u.deviceRepo.GetByID(ctx, deviceID)
	if err != nil {
		return entities.OrderSnapshot{}, err
	}
	if device.ID == "" {
		return entities.OrderSnapshot{}, ErrDeviceNotFound
	}

	items, err := u.itemRepo.ListByDeviceID(ctx, deviceID)
	if err != nil {
		return entities.OrderSnapshot{}, err
	}
	transactions, err := u.transactionRepo.ListByDeviceID(ctx, deviceID)
	if err != nil {
		return entities.OrderSnapshot{}, err
	}
	warranties, err := u.warrantyRepo.ListByDeviceID(ctx, deviceID)
	if err != nil {
		return entities.OrderSnapshot{}, err
	}

	return entities.BuildOrderSnapshot(device, items, transactions, warranties, time.Now().UTC()), nil
}
