package interfaces

import (
	"context"
	"repairdesk/internal/domain/entities"
)

// IRepairItemRepository abstracts DynamoDB persistence for RepairItem.

type IRepairItemRepository interface {
	Create(ctx context.Context, it entities.RepairItem) (entities.RepairItem, error)
	GetByID(ctx context.Context, id string) (entities.RepairItem, error)
	ListByDeviceID(ctx context.Context, deviceID string) ([]entities.RepairItem, error)
	Delete(ctx context.Context, id string) (bool, error)
}
