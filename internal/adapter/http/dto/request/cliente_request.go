package request

import "oficina_mb/internal/domain/entities"

type CarroRequest struct {
	Placa  string `json:"placa" binding:"required"`
	Marca  string `json:"marca"`
	Modelo string `json:"modelo"`
	Ano    string `json:"ano"`
}

// ClienteRequest is the registration/edit payload. Carro, when present on
// a registration, is created right after the cliente referencing its new
// id. Field normalization (upper-casing, digit stripping) happens in the
// use case, not here.
type ClienteRequest struct {
	Nome        string        `json:"nome" binding:"required"`
	Endereco    string        `json:"endereco"`
	Numero      string        `json:"numero"`
	Complemento string        `json:"complemento"`
	Bairro      string        `json:"bairro"`
	CEP         string        `json:"cep"`
	Telefone    string        `json:"telefone"`
	CPF         string        `json:"cpf"`
	Carro       *CarroRequest `json:"carro"`
}

func (r ClienteRequest) ToEntity() entities.Cliente {
	return entities.Cliente{
		Nome:        r.Nome,
		Endereco:    r.Endereco,
		Numero:      r.Numero,
		Complemento: r.Complemento,
		Bairro:      r.Bairro,
		CEP:         r.CEP,
		Telefone:    r.Telefone,
		CPF:         r.CPF,
	}
}

func (r ClienteRequest) ResolveCarro() *entities.Carro {
	if r.Carro == nil {
		return nil
	}
	return &entities.Carro{
		Placa:  r.Carro.Placa,
		Marca:  r.Carro.Marca,
		Modelo: r.Carro.Modelo,
		Ano:    r.Carro.Ano,
	}
}
