package request

import (
	"strings"

	"oficina_mb/internal/domain/entities"
)

type PecaRequest struct {
	NomePeca string `json:"nomePeca"`
	Qtd      string `json:"qtd"`
	Un       string `json:"un"`
}

type ServicoRequest struct {
	Servico string `json:"servico"`
	Qtd     string `json:"qtd"`
	Un      string `json:"un"`
}

type ObservacaoRequest struct {
	Obs string `json:"obs"`
}

// OrcamentoRequest is accepted by both create and update. Qtd and un come
// through as the text the user typed; any client-sent total is ignored,
// the use case always recomputes it from the line items.
type OrcamentoRequest struct {
	Nome        string              `json:"nome"`
	Endereco    string              `json:"endereco"`
	Numero      string              `json:"numero"`
	Complemento string              `json:"complemento"`
	Telefone    string              `json:"telefone"`
	Modelo      string              `json:"modelo"`
	Placa       string              `json:"placa"`
	Pecas       []PecaRequest       `json:"pecas"`
	Servicos    []ServicoRequest    `json:"servicos"`
	Observacao  []ObservacaoRequest `json:"observacao"`
	Situacao    string              `json:"situacao"`
}

func (r OrcamentoRequest) ToEntity() entities.Orcamento {
	pecas := make([]entities.Peca, 0, len(r.Pecas))
	for _, p := range r.Pecas {
		pecas = append(pecas, entities.Peca{NomePeca: p.NomePeca, Qtd: p.Qtd, Un: p.Un})
	}
	servicos := make([]entities.Servico, 0, len(r.Servicos))
	for _, s := range r.Servicos {
		servicos = append(servicos, entities.Servico{Servico: s.Servico, Qtd: s.Qtd, Un: s.Un})
	}
	observacao := make([]entities.Observacao, 0, len(r.Observacao))
	for _, o := range r.Observacao {
		observacao = append(observacao, entities.Observacao{Obs: o.Obs})
	}

	return entities.Orcamento{
		Nome:        r.Nome,
		Endereco:    r.Endereco,
		Numero:      r.Numero,
		Complemento: r.Complemento,
		Telefone:    r.Telefone,
		Modelo:      r.Modelo,
		Placa:       r.Placa,
		Pecas:       pecas,
		Servicos:    servicos,
		Observacao:  observacao,
		Situacao:    entities.Situacao(strings.ToUpper(strings.TrimSpace(r.Situacao))),
	}
}
