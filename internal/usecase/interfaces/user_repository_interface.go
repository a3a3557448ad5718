package interfaces

import (
	"context"
	"repairdesk/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for staff accounts.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
}
