package interfaces

import (
	"context"
	"repairdesk/internal/domain/entities"
)

// ITransactionRepository abstracts DynamoDB persistence for Transaction.

type ITransactionRepository interface {
	Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
	GetByID(ctx context.Context, id string) (entities.Transaction, error)
	ListByDeviceID(ctx context.Context, deviceID string) ([]entities.Transaction, error)
	Update(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
}
