package interfaces

import (
	"context"

	"oficina_mb/internal/domain/entities"
)

// IClienteRepository abstracts DynamoDB persistence for Cliente.
//
// Not-found point reads return a zero-value Cliente (empty ID) with a nil
// error; callers decide whether that is an error condition.

type IClienteRepository interface {
	Create(ctx context.Context, c entities.Cliente) (entities.Cliente, error)
	Update(ctx context.Context, id string, c entities.Cliente) (entities.Cliente, error)
	GetByID(ctx context.Context, id string) (entities.Cliente, error)
	SearchByNomePrefix(ctx context.Context, prefix string) ([]entities.Cliente, error)
}
