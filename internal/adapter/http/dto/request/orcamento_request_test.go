package request

import (
	"testing"

	"oficina_mb/internal/domain/entities"
)

func TestOrcamentoRequestToEntity(t *testing.T) {
	r := OrcamentoRequest{
		Nome:       "Maria da Silva",
		Modelo:     "Uno",
		Placa:      "abc1234",
		Pecas:      []PecaRequest{{NomePeca: "filtro", Qtd: "2", Un: "25,00"}},
		Servicos:   []ServicoRequest{{Servico: "troca de oleo", Qtd: "1", Un: "100,50"}},
		Observacao: []ObservacaoRequest{{Obs: "retorno em 30 dias"}},
		Situacao:   " fechado ",
	}

	o := r.ToEntity()
	if o.Nome != "Maria da Silva" || o.Placa != "abc1234" {
		t.Fatalf("unexpected header fields: %+v", o)
	}
	if len(o.Pecas) != 1 || o.Pecas[0].Qtd != "2" || o.Pecas[0].Un != "25,00" {
		t.Fatalf("unexpected pecas: %+v", o.Pecas)
	}
	if len(o.Servicos) != 1 || o.Servicos[0].Servico != "troca de oleo" {
		t.Fatalf("unexpected servicos: %+v", o.Servicos)
	}
	if o.Situacao != entities.SituacaoFechado {
		t.Fatalf("expected upper-cased situacao, got %q", o.Situacao)
	}
}

func TestClienteRequestResolveCarro(t *testing.T) {
	t.Run("without carro", func(t *testing.T) {
		r := ClienteRequest{Nome: "Maria"}
		if carro := r.ResolveCarro(); carro != nil {
			t.Fatalf("expected nil carro, got %+v", carro)
		}
	})

	t.Run("with carro", func(t *testing.T) {
		r := ClienteRequest{Nome: "Maria", Carro: &CarroRequest{Placa: "abc1234", Modelo: "uno"}}
		carro := r.ResolveCarro()
		if carro == nil || carro.Placa != "abc1234" || carro.Modelo != "uno" {
			t.Fatalf("unexpected carro: %+v", carro)
		}
	})
}
