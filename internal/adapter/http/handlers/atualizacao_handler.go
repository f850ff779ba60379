package handlers

import (
	"errors"
	"net/http"

	"oficina_mb/internal/usecase"
	"oficina_mb/pkg"

	"github.com/gin-gonic/gin"
)

// AtualizacaoHandler answers the app self-update check.

type AtualizacaoHandler struct {
	usecase usecase.IAtualizacaoUseCase
}

func NewAtualizacaoHandler(uc usecase.IAtualizacaoUseCase) *AtualizacaoHandler {
	return &AtualizacaoHandler{usecase: uc}
}

func (h *AtualizacaoHandler) CheckAtualizacao(c *gin.Context) {
	check, err := h.usecase.Check(c.Request.Context(), c.Query("versao"))
	if err != nil {
		appErr := mapAtualizacaoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, check)
}

func mapAtualizacaoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidVersao):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAtualizacaoNotFound):
		return pkg.NewDomainErrorSimple("ATUALIZACAO_NOT_FOUND", "No published release", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
