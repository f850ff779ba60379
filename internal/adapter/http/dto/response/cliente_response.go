package response

import "oficina_mb/internal/domain/entities"

type CarroResponse struct {
	ID        string `json:"id"`
	Placa     string `json:"placa"`
	Marca     string `json:"marca"`
	Modelo    string `json:"modelo"`
	Ano       string `json:"ano"`
	ClienteID string `json:"clienteId"`
}

type ClienteResponse struct {
	ID          string          `json:"id"`
	Nome        string          `json:"nome"`
	Endereco    string          `json:"endereco"`
	Numero      string          `json:"numero"`
	Complemento string          `json:"complemento"`
	Bairro      string          `json:"bairro"`
	CEP         string          `json:"cep"`
	Telefone    string          `json:"telefone"`
	CPF         string          `json:"cpf"`
	Carros      []CarroResponse `json:"carros,omitempty"`
}

func FromCarro(c entities.Carro) CarroResponse {
	return CarroResponse{
		ID:        c.ID,
		Placa:     c.Placa,
		Marca:     c.Marca,
		Modelo:    c.Modelo,
		Ano:       c.Ano,
		ClienteID: c.ClienteID,
	}
}

func FromCliente(c entities.Cliente) ClienteResponse {
	return ClienteResponse{
		ID:          c.ID,
		Nome:        c.Nome,
		Endereco:    c.Endereco,
		Numero:      c.Numero,
		Complemento: c.Complemento,
		Bairro:      c.Bairro,
		CEP:         c.CEP,
		Telefone:    c.Telefone,
		CPF:         c.CPF,
	}
}

func FromClienteComCarros(c entities.Cliente, carros []entities.Carro) ClienteResponse {
	res := FromCliente(c)
	for _, carro := range carros {
		res.Carros = append(res.Carros, FromCarro(carro))
	}
	return res
}

func FromClientes(list []entities.Cliente) []ClienteResponse {
	res := make([]ClienteResponse, 0, len(list))
	for _, c := range list {
		res = append(res, FromCliente(c))
	}
	return res
}
