package interfaces

import (
	"context"
	"repairdesk/internal/domain/entities"
)

// IAuditLogRepository abstracts DynamoDB persistence for the device activity log.

type IAuditLogRepository interface {
	Append(ctx context.Context, entry entities.AuditLog) (entities.AuditLog, error)
	ListByDeviceID(ctx context.Context, deviceID string) ([]entities.AuditLog, error)
}
