package interfaces

import (
	"context"
	"repairdesk/internal/domain/entities"
)

// IDeviceRepository abstracts DynamoDB persistence for Device.
//
// The service must be able to:
//   - register a device at intake
//   - fetch a fresh snapshot of one device
//   - move a device through its lifecycle statuses

type IDeviceRepository interface {
	Create(ctx context.Context, d entities.Device) (entities.Device, error)
	GetByID(ctx context.Context, id string) (entities.Device, error)
	UpdateStatus(ctx context.Context, id string, status entities.DeviceStatus) (entities.Device, error)
}
