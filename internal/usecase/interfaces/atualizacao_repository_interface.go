package interfaces

import (
	"context"

	"oficina_mb/internal/domain/entities"
)

// IAtualizacaoRepository reads the published app release from the
// organizador table (single document, id "atualizacao").

type IAtualizacaoRepository interface {
	GetPublicada(ctx context.Context) (entities.Atualizacao, error)
}
