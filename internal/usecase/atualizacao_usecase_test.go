package usecase

import (
	"context"
	"errors"
	"testing"

	"oficina_mb/internal/domain/entities"
	mock_interfaces "oficina_mb/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAtualizacaoUseCase_Check(t *testing.T) {
	t.Run("empty versao", func(t *testing.T) {
		uc := NewAtualizacaoUseCase(nil)
		_, err := uc.Check(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidVersao) {
			t.Fatalf("expected ErrInvalidVersao, got %v", err)
		}
	})

	t.Run("unparsable versao", func(t *testing.T) {
		uc := NewAtualizacaoUseCase(nil)
		_, err := uc.Check(context.Background(), "abc")
		if !errors.Is(err, ErrInvalidVersao) {
			t.Fatalf("expected ErrInvalidVersao, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAtualizacaoRepository(ctrl)
		uc := NewAtualizacaoUseCase(repo)

		repo.EXPECT().GetPublicada(gomock.Any()).Return(entities.Atualizacao{}, errors.New("db"))

		_, err := uc.Check(context.Background(), "1.0.0")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("no published release", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAtualizacaoRepository(ctrl)
		uc := NewAtualizacaoUseCase(repo)

		repo.EXPECT().GetPublicada(gomock.Any()).Return(entities.Atualizacao{}, nil)

		_, err := uc.Check(context.Background(), "1.0.0")
		if !errors.Is(err, ErrAtualizacaoNotFound) {
			t.Fatalf("expected ErrAtualizacaoNotFound, got %v", err)
		}
	})

	t.Run("newer release triggers update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAtualizacaoRepository(ctrl)
		uc := NewAtualizacaoUseCase(repo)

		repo.EXPECT().GetPublicada(gomock.Any()).Return(entities.Atualizacao{
			ID:     "atualizacao",
			Versao: "1.1.0",
			ApkURL: "https://example.com/app.apk",
		}, nil)

		check, err := uc.Check(context.Background(), "1.0.0")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !check.Atualizar || check.ApkURL != "https://example.com/app.apk" {
			t.Fatalf("expected update, got %+v", check)
		}
	})

	t.Run("same version does not update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAtualizacaoRepository(ctrl)
		uc := NewAtualizacaoUseCase(repo)

		repo.EXPECT().GetPublicada(gomock.Any()).Return(entities.Atualizacao{ID: "atualizacao", Versao: "1.0.0"}, nil)

		check, err := uc.Check(context.Background(), "1.0.0")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if check.Atualizar || check.ApkURL != "" {
			t.Fatalf("expected no update, got %+v", check)
		}
	})

	t.Run("dotted numeric ordering", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAtualizacaoRepository(ctrl)
		uc := NewAtualizacaoUseCase(repo)

		repo.EXPECT().GetPublicada(gomock.Any()).Return(entities.Atualizacao{ID: "atualizacao", Versao: "1.10"}, nil)

		check, err := uc.Check(context.Background(), "1.9")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !check.Atualizar {
			t.Fatalf("expected 1.10 > 1.9, got %+v", check)
		}
	})

	t.Run("older release does not update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAtualizacaoRepository(ctrl)
		uc := NewAtualizacaoUseCase(repo)

		repo.EXPECT().GetPublicada(gomock.Any()).Return(entities.Atualizacao{ID: "atualizacao", Versao: "0.9.0"}, nil)

		check, err := uc.Check(context.Background(), "1.0.0")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if check.Atualizar {
			t.Fatalf("expected no update, got %+v", check)
		}
	})

	t.Run("unparsable published versao answers do not update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAtualizacaoRepository(ctrl)
		uc := NewAtualizacaoUseCase(repo)

		repo.EXPECT().GetPublicada(gomock.Any()).Return(entities.Atualizacao{ID: "atualizacao", Versao: "novidade"}, nil)

		check, err := uc.Check(context.Background(), "1.0.0")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if check.Atualizar {
			t.Fatalf("expected no update for unparsable release, got %+v", check)
		}
		if check.VersaoServer != "novidade" {
			t.Fatalf("expected raw server versao echoed, got %+v", check)
		}
	})
}
