package usecase

import (
	"context"
	"errors"
	"strings"

	"oficina_mb/internal/domain/entities"
	"oficina_mb/internal/domain/format"
	"oficina_mb/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrClienteNotFound    = errors.New("cliente not found")
	ErrInvalidClienteID   = errors.New("invalid cliente id")
	ErrInvalidClienteNome = errors.New("invalid cliente nome")
	ErrInvalidCarroPlaca  = errors.New("invalid carro placa")
	ErrInvalidCEP         = errors.New("invalid cep")
	ErrCEPNaoEncontrado   = errors.New("cep not found")
)

// IClienteUseCase exposes customer/vehicle registration and search.
//
// These operations map to the registration and lookup screens:
//   - register cliente (optionally with its first carro)
//   - edit cliente
//   - search by nome prefix or exact placa
//   - resolve endereco/bairro from a CEP

type IClienteUseCase interface {
	Register(ctx context.Context, c entities.Cliente, carro *entities.Carro) (entities.Cliente, *entities.Carro, error)
	Update(ctx context.Context, id string, c entities.Cliente) (entities.Cliente, error)
	GetByID(ctx context.Context, id string) (entities.Cliente, error)
	ListCarros(ctx context.Context, clienteID string) ([]entities.Carro, error)
	Search(ctx context.Context, term string) ([]entities.Cliente, error)
	LookupCEP(ctx context.Context, cep string) (interfaces.EnderecoCEP, error)
}

type ClienteUseCase struct {
	clientes interfaces.IClienteRepository
	carros   interfaces.ICarroRepository
	ceps     interfaces.ICEPGateway
}

var _ IClienteUseCase = (*ClienteUseCase)(nil)

func NewClienteUseCase(clientes interfaces.IClienteRepository, carros interfaces.ICarroRepository, ceps interfaces.ICEPGateway) *ClienteUseCase {
	return &ClienteUseCase{clientes: clientes, carros: carros, ceps: ceps}
}

// Register persists the cliente and, when present, its carro. Both payloads
// are validated before anything is written. The two writes are not
// transactional: a carro store failure after a successful cliente write
// returns the error with the created cliente intact.
func (u *ClienteUseCase) Register(ctx context.Context, c entities.Cliente, carro *entities.Carro) (entities.Cliente, *entities.Carro, error) {
	c = normalizeCliente(c)
	if c.Nome == "" {
		return entities.Cliente{}, nil, ErrInvalidClienteNome
	}

	var nc entities.Carro
	if carro != nil {
		nc = normalizeCarro(*carro)
		if nc.Placa == "" {
			return entities.Cliente{}, nil, ErrInvalidCarroPlaca
		}
	}

	c.ID = uuid.NewString()
	created, err := u.clientes.Create(ctx, c)
	if err != nil {
		return entities.Cliente{}, nil, err
	}

	if carro == nil {
		return created, nil, nil
	}

	nc.ID = uuid.NewString()
	nc.ClienteID = created.ID

	createdCarro, err := u.carros.Create(ctx, nc)
	if err != nil {
		return created, nil, err
	}
	return created, &createdCarro, nil
}

func (u *ClienteUseCase) Update(ctx context.Context, id string, c entities.Cliente) (entities.Cliente, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Cliente{}, ErrInvalidClienteID
	}
	c = normalizeCliente(c)
	if c.Nome == "" {
		return entities.Cliente{}, ErrInvalidClienteNome
	}

	updated, err := u.clientes.Update(ctx, id, c)
	if err != nil {
		return entities.Cliente{}, err
	}
	if updated.ID == "" {
		return entities.Cliente{}, ErrClienteNotFound
	}
	return updated, nil
}

func (u *ClienteUseCase) GetByID(ctx context.Context, id string) (entities.Cliente, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Cliente{}, ErrInvalidClienteID
	}

	c, err := u.clientes.GetByID(ctx, id)
	if err != nil {
		return entities.Cliente{}, err
	}
	if c.ID == "" {
		return entities.Cliente{}, ErrClienteNotFound
	}
	return c, nil
}

func (u *ClienteUseCase) ListCarros(ctx context.Context, clienteID string) ([]entities.Carro, error) {
	clienteID = strings.TrimSpace(clienteID)
	if clienteID == "" {
		return nil, ErrInvalidClienteID
	}
	return u.carros.ListByClienteID(ctx, clienteID)
}

// Search unions the nome-prefix matches with the owner of an exactly
// matching placa. The prefix comparison is case-sensitive over the stored
// upper-cased form. A placa whose cliente no longer exists is dropped from
// the result rather than failing the search.
func (u *ClienteUseCase) Search(ctx context.Context, term string) ([]entities.Cliente, error) {
	term = format.Normalize(strings.TrimSpace(term))
	if term == "" {
		return []entities.Cliente{}, nil
	}

	porNome, err := u.clientes.SearchByNomePrefix(ctx, term)
	if err != nil {
		return nil, err
	}

	carro, err := u.carros.GetByPlaca(ctx, term)
	if err != nil {
		return nil, err
	}

	result := porNome
	if carro.ID != "" {
		dono, err := u.clientes.GetByID(ctx, carro.ClienteID)
		if err != nil {
			return nil, err
		}
		if dono.ID != "" && !containsCliente(result, dono.ID) {
			result = append(result, dono)
		}
	}
	if result == nil {
		result = []entities.Cliente{}
	}
	return result, nil
}

func (u *ClienteUseCase) LookupCEP(ctx context.Context, cep string) (interfaces.EnderecoCEP, error) {
	raw := format.DigitsOnly(cep)
	if len(raw) != 8 {
		return interfaces.EnderecoCEP{}, ErrInvalidCEP
	}

	endereco, found, err := u.ceps.Lookup(ctx, raw)
	if err != nil {
		return interfaces.EnderecoCEP{}, err
	}
	if !found {
		return interfaces.EnderecoCEP{}, ErrCEPNaoEncontrado
	}

	endereco.Logradouro = format.Normalize(endereco.Logradouro)
	endereco.Bairro = format.Normalize(endereco.Bairro)
	endereco.Localidade = format.Normalize(endereco.Localidade)
	endereco.UF = format.Normalize(endereco.UF)
	return endereco, nil
}

func normalizeCliente(c entities.Cliente) entities.Cliente {
	c.Nome = format.Normalize(strings.TrimSpace(c.Nome))
	c.Endereco = format.Normalize(strings.TrimSpace(c.Endereco))
	c.Numero = strings.TrimSpace(c.Numero)
	c.Complemento = format.Normalize(strings.TrimSpace(c.Complemento))
	c.Bairro = format.Normalize(strings.TrimSpace(c.Bairro))
	c.CEP = format.DigitsOnly(c.CEP)
	c.Telefone = format.DigitsOnly(c.Telefone)
	c.CPF = strings.TrimSpace(c.CPF)
	return c
}

func normalizeCarro(carro entities.Carro) entities.Carro {
	carro.Placa = format.Normalize(strings.TrimSpace(carro.Placa))
	carro.Marca = format.Normalize(strings.TrimSpace(carro.Marca))
	carro.Modelo = format.Normalize(strings.TrimSpace(carro.Modelo))
	carro.Ano = strings.TrimSpace(carro.Ano)
	return carro
}

func containsCliente(list []entities.Cliente, id string) bool {
	for _, c := range list {
		if c.ID == id {
			return true
		}
	}
	return false
}
