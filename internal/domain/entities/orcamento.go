package entities

import "time"

// Situacao represents the lifecycle of an orçamento.
//
// Domain notes:
//   - An orçamento is created ABERTO and only a user action closes it.
//   - Closing is reversible; there is no automatic transition.

type Situacao string

const (
	SituacaoAberto  Situacao = "ABERTO"
	SituacaoFechado Situacao = "FECHADO"
)

// Toggle flips the situação. Anything that is not ABERTO toggles back to
// ABERTO, so an unknown stored value always recovers to the open state.
func (s Situacao) Toggle() Situacao {
	if s == SituacaoAberto {
		return SituacaoFechado
	}
	return SituacaoAberto
}

// Peca is a part line item. Qtd is a text-encoded integer and Un a pt-BR
// formatted unit price ("1.234,56"); both come straight from keystroke-level
// input and may be empty or malformed, contributing zero to the total.
type Peca struct {
	NomePeca string `json:"nomePeca"`
	Qtd      string `json:"qtd"`
	Un       string `json:"un"`
}

// Servico is a labor line item. Same qtd/un encoding as Peca; kept as a
// distinct type so part and service fields cannot be mixed up.
type Servico struct {
	Servico string `json:"servico"`
	Qtd     string `json:"qtd"`
	Un      string `json:"un"`
}

type Observacao struct {
	Obs string `json:"obs"`
}

// Orcamento is the repair-shop quote persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (situacao-index): situacao
//
// Cliente/carro header fields (nome, endereco, numero, complemento,
// telefone, modelo, placa) are denormalized copies taken at creation time,
// so the quote stays readable after the cliente or carro is edited.
//
// Total always equals the sum over pecas and serviços of qtd × parsed(un);
// it is recomputed on every line-item mutation and never trusted from the
// caller. DataCriacao is set once at creation.

type Orcamento struct {
	ID          string       `json:"id"`
	Nome        string       `json:"nome"`
	Endereco    string       `json:"endereco"`
	Numero      string       `json:"numero"`
	Complemento string       `json:"complemento"`
	Telefone    string       `json:"telefone"`
	Modelo      string       `json:"modelo"`
	Placa       string       `json:"placa"`
	Pecas       []Peca       `json:"pecas"`
	Servicos    []Servico    `json:"servicos"`
	Observacao  []Observacao `json:"observacao"`
	Total       float64      `json:"total"`
	Situacao    Situacao     `json:"situacao"`
	DataCriacao time.Time    `json:"dataCriacao"`
}
