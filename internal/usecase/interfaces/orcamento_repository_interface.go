package interfaces

import (
	"context"

	"oficina_mb/internal/domain/entities"
)

// IOrcamentoRepository abstracts DynamoDB persistence for Orcamento.
//
// Update merges the editable fields (header copies, line items,
// observations, total, situacao) into the stored item; dataCriacao is
// written once at create and never touched again. There is no delete.

type IOrcamentoRepository interface {
	Create(ctx context.Context, o entities.Orcamento) (entities.Orcamento, error)
	Update(ctx context.Context, o entities.Orcamento) (entities.Orcamento, error)
	GetByID(ctx context.Context, id string) (entities.Orcamento, error)
	ListBySituacao(ctx context.Context, s entities.Situacao) ([]entities.Orcamento, error)
}
