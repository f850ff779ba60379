package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"oficina_mb/internal/domain/entities"
	mock_interfaces "oficina_mb/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrcamentoUseCase_Create(t *testing.T) {
	t.Run("invalid nome", func(t *testing.T) {
		uc := NewOrcamentoUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Orcamento{Nome: "   "})
		if !errors.Is(err, ErrInvalidNome) {
			t.Fatalf("expected ErrInvalidNome, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrcamentoRepository(ctrl)
		uc := NewOrcamentoUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Orcamento{}, errors.New("db"))

		_, err := uc.Create(context.Background(), entities.Orcamento{Nome: "Maria"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrcamentoRepository(ctrl)
		uc := NewOrcamentoUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Orcamento{})).DoAndReturn(
			func(_ context.Context, o entities.Orcamento) (entities.Orcamento, error) {
				if o.ID == "" {
					t.Fatalf("expected generated id")
				}
				if o.Situacao != entities.SituacaoAberto {
					t.Fatalf("expected new orcamento ABERTO, got %q", o.Situacao)
				}
				if o.DataCriacao.IsZero() {
					t.Fatalf("expected dataCriacao stamped")
				}
				if o.Nome != "MARIA" || o.Pecas[0].NomePeca != "FILTRO" {
					t.Fatalf("expected normalized fields: %+v", o)
				}
				if math.Abs(o.Total-150.5) > 1e-9 {
					t.Fatalf("expected total 150.50, got %v", o.Total)
				}
				return o, nil
			},
		)

		created, err := uc.Create(context.Background(), entities.Orcamento{
			Nome:     "maria",
			Situacao: entities.SituacaoFechado,
			Total:    999,
			Pecas:    []entities.Peca{{NomePeca: "filtro", Qtd: "2", Un: "25,00"}},
			Servicos: []entities.Servico{{Servico: "troca de oleo", Qtd: "1", Un: "100,50"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Situacao != entities.SituacaoAberto {
			t.Fatalf("expected ABERTO, got %q", created.Situacao)
		}
	})
}

func TestOrcamentoUseCase_Update(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewOrcamentoUseCase(nil)
		_, err := uc.Update(context.Background(), "  ", entities.Orcamento{})
		if !errors.Is(err, ErrInvalidOrcamentoID) {
			t.Fatalf("expected ErrInvalidOrcamentoID, got %v", err)
		}
	})

	t.Run("invalid situacao", func(t *testing.T) {
		uc := NewOrcamentoUseCase(nil)
		_, err := uc.Update(context.Background(), "orc-1", entities.Orcamento{Situacao: "PENDENTE"})
		if !errors.Is(err, ErrInvalidSituacao) {
			t.Fatalf("expected ErrInvalidSituacao, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrcamentoRepository(ctrl)
		uc := NewOrcamentoUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "orc-1").Return(entities.Orcamento{}, nil)

		_, err := uc.Update(context.Background(), "orc-1", entities.Orcamento{})
		if !errors.Is(err, ErrOrcamentoNotFound) {
			t.Fatalf("expected ErrOrcamentoNotFound, got %v", err)
		}
	})

	t.Run("merges and recomputes total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrcamentoRepository(ctrl)
		uc := NewOrcamentoUseCase(repo)

		criado := time.Date(2024, time.March, 7, 12, 0, 0, 0, time.UTC)
		repo.EXPECT().GetByID(gomock.Any(), "orc-1").Return(entities.Orcamento{
			ID:          "orc-1",
			Nome:        "MARIA",
			Endereco:    "AVENIDA PAULISTA",
			Situacao:    entities.SituacaoAberto,
			DataCriacao: criado,
			Pecas:       []entities.Peca{{NomePeca: "FILTRO", Qtd: "2", Un: "25,00"}},
			Total:       50,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Orcamento{})).DoAndReturn(
			func(_ context.Context, o entities.Orcamento) (entities.Orcamento, error) {
				if o.Nome != "MARIA" || o.Endereco != "AVENIDA PAULISTA" {
					t.Fatalf("expected untouched header fields: %+v", o)
				}
				if !o.DataCriacao.Equal(criado) {
					t.Fatalf("expected dataCriacao untouched, got %v", o.DataCriacao)
				}
				if len(o.Pecas) != 1 || o.Pecas[0].Qtd != "3" {
					t.Fatalf("expected replaced line items: %+v", o.Pecas)
				}
				if math.Abs(o.Total-175.5) > 1e-9 {
					t.Fatalf("expected total 175.50, got %v", o.Total)
				}
				return o, nil
			},
		)

		updated, err := uc.Update(context.Background(), "orc-1", entities.Orcamento{
			Pecas:    []entities.Peca{{NomePeca: "filtro", Qtd: "3", Un: "25,00"}},
			Servicos: []entities.Servico{{Servico: "troca de oleo", Qtd: "1", Un: "100,50"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(updated.Total-175.5) > 1e-9 {
			t.Fatalf("unexpected total: %v", updated.Total)
		}
	})

	t.Run("closes in same edit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrcamentoRepository(ctrl)
		uc := NewOrcamentoUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "orc-1").Return(entities.Orcamento{ID: "orc-1", Nome: "MARIA", Situacao: entities.SituacaoAberto}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Orcamento) (entities.Orcamento, error) {
				if o.Situacao != entities.SituacaoFechado {
					t.Fatalf("expected FECHADO, got %q", o.Situacao)
				}
				return o, nil
			},
		)

		_, err := uc.Update(context.Background(), "orc-1", entities.Orcamento{Situacao: entities.SituacaoFechado})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOrcamentoUseCase_ToggleSituacao(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewOrcamentoUseCase(nil)
		_, err := uc.ToggleSituacao(context.Background(), "")
		if !errors.Is(err, ErrInvalidOrcamentoID) {
			t.Fatalf("expected ErrInvalidOrcamentoID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrcamentoRepository(ctrl)
		uc := NewOrcamentoUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "orc-1").Return(entities.Orcamento{}, nil)

		_, err := uc.ToggleSituacao(context.Background(), "orc-1")
		if !errors.Is(err, ErrOrcamentoNotFound) {
			t.Fatalf("expected ErrOrcamentoNotFound, got %v", err)
		}
	})

	t.Run("aberto closes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrcamentoRepository(ctrl)
		uc := NewOrcamentoUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "orc-1").Return(entities.Orcamento{ID: "orc-1", Situacao: entities.SituacaoAberto}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Orcamento) (entities.Orcamento, error) { return o, nil },
		)

		updated, err := uc.ToggleSituacao(context.Background(), "orc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Situacao != entities.SituacaoFechado {
			t.Fatalf("expected FECHADO, got %q", updated.Situacao)
		}
	})

	t.Run("fechado reopens", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrcamentoRepository(ctrl)
		uc := NewOrcamentoUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "orc-1").Return(entities.Orcamento{ID: "orc-1", Situacao: entities.SituacaoFechado}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Orcamento) (entities.Orcamento, error) { return o, nil },
		)

		updated, err := uc.ToggleSituacao(context.Background(), "orc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Situacao != entities.SituacaoAberto {
			t.Fatalf("expected ABERTO, got %q", updated.Situacao)
		}
	})
}

func TestOrcamentoUseCase_ListBySituacao(t *testing.T) {
	t.Run("invalid situacao", func(t *testing.T) {
		uc := NewOrcamentoUseCase(nil)
		_, err := uc.ListBySituacao(context.Background(), "PENDENTE")
		if !errors.Is(err, ErrInvalidSituacao) {
			t.Fatalf("expected ErrInvalidSituacao, got %v", err)
		}
	})

	t.Run("nil list becomes empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrcamentoRepository(ctrl)
		uc := NewOrcamentoUseCase(repo)

		repo.EXPECT().ListBySituacao(gomock.Any(), entities.SituacaoAberto).Return(nil, nil)

		list, err := uc.ListBySituacao(context.Background(), entities.SituacaoAberto)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if list == nil || len(list) != 0 {
			t.Fatalf("expected empty list, got %v", list)
		}
	})
}

func TestOrcamentoUseCase_SearchFechados(t *testing.T) {
	fechados := []entities.Orcamento{
		{
			ID:          "orc-1",
			Nome:        "MARIA DA SILVA",
			Placa:       "ABC1234",
			Modelo:      "UNO",
			DataCriacao: time.Date(2024, time.March, 7, 12, 0, 0, 0, time.UTC),
			Situacao:    entities.SituacaoFechado,
			Pecas:       []entities.Peca{{NomePeca: "FILTRO DE OLEO", Qtd: "1", Un: "25,00"}},
		},
		{
			ID:          "orc-2",
			Nome:        "JOAO PEREIRA",
			Placa:       "XYZ9876",
			Modelo:      "GOL",
			DataCriacao: time.Date(2024, time.April, 1, 9, 0, 0, 0, time.UTC),
			Situacao:    entities.SituacaoFechado,
			Servicos:    []entities.Servico{{Servico: "ALINHAMENTO", Qtd: "1", Un: "80,00"}},
		},
	}

	newUC := func(t *testing.T, ctrl *gomock.Controller) *OrcamentoUseCase {
		repo := mock_interfaces.NewMockIOrcamentoRepository(ctrl)
		repo.EXPECT().ListBySituacao(gomock.Any(), entities.SituacaoFechado).Return(fechados, nil)
		return NewOrcamentoUseCase(repo)
	}

	cases := []struct {
		name string
		term string
		want []string
	}{
		{name: "empty term returns all", term: "  ", want: []string{"orc-1", "orc-2"}},
		{name: "by nome", term: "maria", want: []string{"orc-1"}},
		{name: "by placa", term: "XYZ", want: []string{"orc-2"}},
		{name: "by modelo", term: "gol", want: []string{"orc-2"}},
		{name: "by peca", term: "filtro", want: []string{"orc-1"}},
		{name: "by servico", term: "alinhamento", want: []string{"orc-2"}},
		{name: "by data", term: "07/03/2024", want: []string{"orc-1"}},
		{name: "no match", term: "nada", want: []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := newUC(t, ctrl)

			res, err := uc.SearchFechados(context.Background(), tc.term)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(res) != len(tc.want) {
				t.Fatalf("expected %d results, got %v", len(tc.want), res)
			}
			for i, id := range tc.want {
				if res[i].ID != id {
					t.Fatalf("expected %s at %d, got %s", id, i, res[i].ID)
				}
			}
		})
	}

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrcamentoRepository(ctrl)
		uc := NewOrcamentoUseCase(repo)

		repo.EXPECT().ListBySituacao(gomock.Any(), entities.SituacaoFechado).Return(nil, errors.New("db"))

		_, err := uc.SearchFechados(context.Background(), "maria")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
