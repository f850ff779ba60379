package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"oficina_mb/internal/domain/entities"
	"oficina_mb/internal/domain/format"
	"oficina_mb/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrcamentoNotFound  = errors.New("orcamento not found")
	ErrInvalidOrcamentoID = errors.New("invalid orcamento id")
	ErrInvalidNome        = errors.New("invalid nome")
	ErrInvalidSituacao    = errors.New("invalid situacao")
)

// IOrcamentoUseCase exposes the quote operations.
//
// The total is owned by this layer: it is recomputed from the line items on
// every create and update, never taken from the caller. There is no delete
// operation.

type IOrcamentoUseCase interface {
	Create(ctx context.Context, o entities.Orcamento) (entities.Orcamento, error)
	Update(ctx context.Context, id string, o entities.Orcamento) (entities.Orcamento, error)
	ToggleSituacao(ctx context.Context, id string) (entities.Orcamento, error)
	GetByID(ctx context.Context, id string) (entities.Orcamento, error)
	ListBySituacao(ctx context.Context, s entities.Situacao) ([]entities.Orcamento, error)
	SearchFechados(ctx context.Context, term string) ([]entities.Orcamento, error)
	Watch(ctx context.Context, s entities.Situacao, interval time.Duration) (*OrcamentoSubscription, error)
}

type OrcamentoUseCase struct {
	repo interfaces.IOrcamentoRepository
}

var _ IOrcamentoUseCase = (*OrcamentoUseCase)(nil)

func NewOrcamentoUseCase(repo interfaces.IOrcamentoRepository) *OrcamentoUseCase {
	return &OrcamentoUseCase{repo: repo}
}

// Create opens a new orçamento. Header fields arrive denormalized from the
// chosen cliente/carro pair; situacao always starts ABERTO and dataCriacao
// is stamped here, once.
func (u *OrcamentoUseCase) Create(ctx context.Context, o entities.Orcamento) (entities.Orcamento, error) {
	o = normalizeOrcamento(o)
	if o.Nome == "" {
		return entities.Orcamento{}, ErrInvalidNome
	}

	o.ID = uuid.NewString()
	o.Situacao = entities.SituacaoAberto
	o.DataCriacao = time.Now().UTC()
	o.RecomputeTotal()

	return u.repo.Create(ctx, o)
}

// Update merges the editable fields into the stored orçamento. The stored
// dataCriacao and endereco header copies survive; situacao may be set to
// either valid state in the same edit.
func (u *OrcamentoUseCase) Update(ctx context.Context, id string, o entities.Orcamento) (entities.Orcamento, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Orcamento{}, ErrInvalidOrcamentoID
	}
	if o.Situacao != "" && o.Situacao != entities.SituacaoAberto && o.Situacao != entities.SituacaoFechado {
		return entities.Orcamento{}, ErrInvalidSituacao
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Orcamento{}, err
	}
	if existing.ID == "" {
		return entities.Orcamento{}, ErrOrcamentoNotFound
	}

	o = normalizeOrcamento(o)
	if o.Nome != "" {
		existing.Nome = o.Nome
	}
	if o.Modelo != "" {
		existing.Modelo = o.Modelo
	}
	if o.Placa != "" {
		existing.Placa = o.Placa
	}
	if o.Situacao != "" {
		existing.Situacao = o.Situacao
	}
	existing.Pecas = o.Pecas
	existing.Servicos = o.Servicos
	existing.Observacao = o.Observacao
	existing.RecomputeTotal()

	updated, err := u.repo.Update(ctx, existing)
	if err != nil {
		return entities.Orcamento{}, err
	}
	if updated.ID == "" {
		return entities.Orcamento{}, ErrOrcamentoNotFound
	}
	return updated, nil
}

func (u *OrcamentoUseCase) ToggleSituacao(ctx context.Context, id string) (entities.Orcamento, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Orcamento{}, ErrInvalidOrcamentoID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Orcamento{}, err
	}
	if o.ID == "" {
		return entities.Orcamento{}, ErrOrcamentoNotFound
	}

	o.Situacao = o.Situacao.Toggle()

	updated, err := u.repo.Update(ctx, o)
	if err != nil {
		return entities.Orcamento{}, err
	}
	if updated.ID == "" {
		return entities.Orcamento{}, ErrOrcamentoNotFound
	}
	return updated, nil
}

func (u *OrcamentoUseCase) GetByID(ctx context.Context, id string) (entities.Orcamento, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Orcamento{}, ErrInvalidOrcamentoID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Orcamento{}, err
	}
	if o.ID == "" {
		return entities.Orcamento{}, ErrOrcamentoNotFound
	}
	return o, nil
}

func (u *OrcamentoUseCase) ListBySituacao(ctx context.Context, s entities.Situacao) ([]entities.Orcamento, error) {
	if s != entities.SituacaoAberto && s != entities.SituacaoFechado {
		return nil, ErrInvalidSituacao
	}
	list, err := u.repo.ListBySituacao(ctx, s)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []entities.Orcamento{}
	}
	return list, nil
}

// SearchFechados filters the closed quotes in memory by nome, placa,
// modelo, line-item names and the DD/MM/YYYY creation date. An empty term
// returns the full closed list.
func (u *OrcamentoUseCase) SearchFechados(ctx context.Context, term string) ([]entities.Orcamento, error) {
	fechados, err := u.ListBySituacao(ctx, entities.SituacaoFechado)
	if err != nil {
		return nil, err
	}

	term = format.Normalize(strings.TrimSpace(term))
	if term == "" {
		return fechados, nil
	}

	result := []entities.Orcamento{}
	for _, o := range fechados {
		if orcamentoMatches(o, term) {
			result = append(result, o)
		}
	}
	return result, nil
}

func orcamentoMatches(o entities.Orcamento, term string) bool {
	if strings.Contains(format.Normalize(o.Nome), term) ||
		strings.Contains(format.Normalize(o.Placa), term) ||
		strings.Contains(format.Normalize(o.Modelo), term) ||
		strings.Contains(format.Date(o.DataCriacao), term) {
		return true
	}
	for _, p := range o.Pecas {
		if strings.Contains(format.Normalize(p.NomePeca), term) {
			return true
		}
	}
	for _, s := range o.Servicos {
		if strings.Contains(format.Normalize(s.Servico), term) {
			return true
		}
	}
	return false
}

func normalizeOrcamento(o entities.Orcamento) entities.Orcamento {
	o.Nome = format.Normalize(strings.TrimSpace(o.Nome))
	o.Endereco = format.Normalize(strings.TrimSpace(o.Endereco))
	o.Numero = strings.TrimSpace(o.Numero)
	o.Complemento = format.Normalize(strings.TrimSpace(o.Complemento))
	o.Telefone = format.DigitsOnly(o.Telefone)
	o.Modelo = format.Normalize(strings.TrimSpace(o.Modelo))
	o.Placa = format.Normalize(strings.TrimSpace(o.Placa))

	for i := range o.Pecas {
		o.Pecas[i].NomePeca = format.Normalize(o.Pecas[i].NomePeca)
	}
	for i := range o.Servicos {
		o.Servicos[i].Servico = format.Normalize(o.Servicos[i].Servico)
	}
	for i := range o.Observacao {
		o.Observacao[i].Obs = format.Normalize(o.Observacao[i].Obs)
	}
	return o
}
