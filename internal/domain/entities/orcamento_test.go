package entities

import (
	"math"
	"testing"
)

func TestSituacaoToggle(t *testing.T) {
	cases := []struct {
		name string
		in   Situacao
		out  Situacao
	}{
		{name: "aberto closes", in: SituacaoAberto, out: SituacaoFechado},
		{name: "fechado reopens", in: SituacaoFechado, out: SituacaoAberto},
		{name: "unknown recovers to aberto", in: Situacao("PENDENTE"), out: SituacaoAberto},
		{name: "empty recovers to aberto", in: Situacao(""), out: SituacaoAberto},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Toggle(); got != tc.out {
				t.Fatalf("Toggle(%q) = %q, want %q", tc.in, got, tc.out)
			}
		})
	}
}

func TestComputeTotal(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		if got := ComputeTotal(nil, nil); got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
	})

	t.Run("parts and services", func(t *testing.T) {
		pecas := []Peca{{NomePeca: "FILTRO", Qtd: "2", Un: "25,00"}}
		servicos := []Servico{{Servico: "TROCA DE OLEO", Qtd: "1", Un: "100,50"}}

		got := ComputeTotal(pecas, servicos)
		if math.Abs(got-150.5) > 1e-9 {
			t.Fatalf("expected 150.50, got %v", got)
		}

		pecas[0].Qtd = "3"
		got = ComputeTotal(pecas, servicos)
		if math.Abs(got-175.5) > 1e-9 {
			t.Fatalf("expected 175.50 after qtd edit, got %v", got)
		}
	})

	t.Run("removal subtracts", func(t *testing.T) {
		pecas := []Peca{
			{NomePeca: "FILTRO", Qtd: "2", Un: "25,00"},
			{NomePeca: "VELA", Qtd: "4", Un: "18,00"},
		}
		before := ComputeTotal(pecas, nil)
		after := ComputeTotal(pecas[:1], nil)
		if math.Abs(before-after-72) > 1e-9 {
			t.Fatalf("expected removing VELA to subtract 72.00, got %v -> %v", before, after)
		}
	})

	t.Run("malformed items contribute zero", func(t *testing.T) {
		pecas := []Peca{
			{NomePeca: "FILTRO", Qtd: "2", Un: "25,00"},
			{NomePeca: "SEM PRECO", Qtd: "2", Un: ""},
			{NomePeca: "PRECO INVALIDO", Qtd: "2", Un: "abc"},
		}
		servicos := []Servico{{Servico: "QTD INVALIDA", Qtd: "x", Un: "50,00"}}

		got := ComputeTotal(pecas, servicos)
		if math.Abs(got-50) > 1e-9 {
			t.Fatalf("expected only the valid line to count, got %v", got)
		}
	})

	t.Run("grouped unit price", func(t *testing.T) {
		servicos := []Servico{{Servico: "RETIFICA", Qtd: "1", Un: "1.234,56"}}
		got := ComputeTotal(nil, servicos)
		if math.Abs(got-1234.56) > 1e-9 {
			t.Fatalf("expected 1234.56, got %v", got)
		}
	})
}

func TestOrcamentoRecomputeTotal(t *testing.T) {
	o := Orcamento{
		Pecas:    []Peca{{NomePeca: "FILTRO", Qtd: "2", Un: "25,00"}},
		Servicos: []Servico{{Servico: "TROCA DE OLEO", Qtd: "1", Un: "100,50"}},
		Total:    999,
	}
	o.RecomputeTotal()
	if math.Abs(o.Total-150.5) > 1e-9 {
		t.Fatalf("expected stored total to be replaced with 150.50, got %v", o.Total)
	}
}
