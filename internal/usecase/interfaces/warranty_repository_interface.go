package interfaces

import (
	"context"
	"repairdesk/internal/domain/entities"
)

// IWarrantyRepository abstracts DynamoDB persistence for Warranty.

type IWarrantyRepository interface {
	Create(ctx context.Context, w entities.Warranty) (entities.Warranty, error)
	GetByID(ctx context.Context, id string) (entities.Warranty, error)
	ListByDeviceID(ctx context.Context, deviceID string) ([]entities.Warranty, error)
}
