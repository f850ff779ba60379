package interfaces

import (
	"context"

	"oficina_mb/internal/domain/entities"
)

// ICarroRepository abstracts DynamoDB persistence for Carro.
//
// A carro is always created referencing an existing cliente; the write is
// not transactional with the cliente write (a failure after the cliente
// create leaves the cliente without a carro, by design).

type ICarroRepository interface {
	Create(ctx context.Context, carro entities.Carro) (entities.Carro, error)
	ListByClienteID(ctx context.Context, clienteID string) ([]entities.Carro, error)
	GetByPlaca(ctx context.Context, placa string) (entities.Carro, error)
}
