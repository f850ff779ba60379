package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"oficina_mb/internal/usecase/interfaces"

	goversion "github.com/hashicorp/go-version"
)

var (
	ErrInvalidVersao       = errors.New("invalid versao")
	ErrAtualizacaoNotFound = errors.New("atualizacao not found")
)

// VersionCheck is the outcome of the self-update comparison. The device
// only downloads when Atualizar is true; the mechanics of fetching and
// installing the APK stay on the device.
type VersionCheck struct {
	Atualizar    bool   `json:"atualizar"`
	VersaoAtual  string `json:"versaoAtual"`
	VersaoServer string `json:"versaoServer"`
	ApkURL       string `json:"apkUrl,omitempty"`
}

// IAtualizacaoUseCase exposes the app self-update check.

type IAtualizacaoUseCase interface {
	Check(ctx context.Context, versaoAtual string) (VersionCheck, error)
}

type AtualizacaoUseCase struct {
	repo interfaces.IAtualizacaoRepository
}

var _ IAtualizacaoUseCase = (*AtualizacaoUseCase)(nil)

func NewAtualizacaoUseCase(repo interfaces.IAtualizacaoRepository) *AtualizacaoUseCase {
	return &AtualizacaoUseCase{repo: repo}
}

// Check compares the device version against the published release using
// dotted-numeric ordering ("1.10" > "1.9"). A published version that does
// not parse is answered as do-not-update: a broken release document must
// never push clients into an update loop.
func (u *AtualizacaoUseCase) Check(ctx context.Context, versaoAtual string) (VersionCheck, error) {
	versaoAtual = strings.TrimSpace(versaoAtual)
	if versaoAtual == "" {
		return VersionCheck{}, ErrInvalidVersao
	}
	atual, err := goversion.NewVersion(versaoAtual)
	if err != nil {
		return VersionCheck{}, ErrInvalidVersao
	}

	release, err := u.repo.GetPublicada(ctx)
	if err != nil {
		return VersionCheck{}, err
	}
	if release.ID == "" {
		return VersionCheck{}, ErrAtualizacaoNotFound
	}

	check := VersionCheck{VersaoAtual: versaoAtual, VersaoServer: release.Versao}

	publicada, err := goversion.NewVersion(strings.TrimSpace(release.Versao))
	if err != nil {
		log.Printf("[atualizacao][usecase] unparsable published versao=%q err=%v", release.Versao, err)
		return check, nil
	}

	if publicada.GreaterThan(atual) {
		check.Atualizar = true
		check.ApkURL = release.ApkURL
	}
	return check, nil
}
