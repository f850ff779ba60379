package response

import (
	"time"

	"oficina_mb/internal/domain/entities"
	"oficina_mb/internal/domain/format"
)

type PecaResponse struct {
	NomePeca string `json:"nomePeca"`
	Qtd      string `json:"qtd"`
	Un       string `json:"un"`
}

type ServicoResponse struct {
	Servico string `json:"servico"`
	Qtd     string `json:"qtd"`
	Un      string `json:"un"`
}

type ObservacaoResponse struct {
	Obs string `json:"obs"`
}

// OrcamentoResponse carries the raw total alongside its pt-BR display form
// and the DD/MM/YYYY creation date the list screens show.
type OrcamentoResponse struct {
	ID             string               `json:"id"`
	Nome           string               `json:"nome"`
	Endereco       string               `json:"endereco"`
	Numero         string               `json:"numero"`
	Complemento    string               `json:"complemento"`
	Telefone       string               `json:"telefone"`
	Modelo         string               `json:"modelo"`
	Placa          string               `json:"placa"`
	Pecas          []PecaResponse       `json:"pecas"`
	Servicos       []ServicoResponse    `json:"servicos"`
	Observacao     []ObservacaoResponse `json:"observacao"`
	Total          float64              `json:"total"`
	TotalFormatado string               `json:"totalFormatado"`
	Situacao       string               `json:"situacao"`
	DataCriacao    time.Time            `json:"dataCriacao"`
	Data           string               `json:"data"`
}

func FromOrcamento(o entities.Orcamento) OrcamentoResponse {
	pecas := make([]PecaResponse, 0, len(o.Pecas))
	for _, p := range o.Pecas {
		pecas = append(pecas, PecaResponse{NomePeca: p.NomePeca, Qtd: p.Qtd, Un: p.Un})
	}
	servicos := make([]ServicoResponse, 0, len(o.Servicos))
	for _, s := range o.Servicos {
		servicos = append(servicos, ServicoResponse{Servico: s.Servico, Qtd: s.Qtd, Un: s.Un})
	}
	observacao := make([]ObservacaoResponse, 0, len(o.Observacao))
	for _, obs := range o.Observacao {
		observacao = append(observacao, ObservacaoResponse{Obs: obs.Obs})
	}

	return OrcamentoResponse{
		ID:             o.ID,
		Nome:           o.Nome,
		Endereco:       o.Endereco,
		Numero:         o.Numero,
		Complemento:    o.Complemento,
		Telefone:       o.Telefone,
		Modelo:         o.Modelo,
		Placa:          o.Placa,
		Pecas:          pecas,
		Servicos:       servicos,
		Observacao:     observacao,
		Total:          o.Total,
		TotalFormatado: format.Amount(o.Total),
		Situacao:       string(o.Situacao),
		DataCriacao:    o.DataCriacao,
		Data:           format.Date(o.DataCriacao),
	}
}

func FromOrcamentos(list []entities.Orcamento) []OrcamentoResponse {
	res := make([]OrcamentoResponse, 0, len(list))
	for _, o := range list {
		res = append(res, FromOrcamento(o))
	}
	return res
}
