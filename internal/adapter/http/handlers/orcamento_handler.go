package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	request "oficina_mb/internal/adapter/http/dto/request"
	response "oficina_mb/internal/adapter/http/dto/response"
	"oficina_mb/internal/domain/entities"
	"oficina_mb/internal/usecase"
	"oficina_mb/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrcamentoPayload = pkg.NewDomainErrorSimple("INVALID_ORCAMENTO_INPUT", "Invalid orcamento payload", http.StatusBadRequest)
)

// OrcamentoHandler handles HTTP requests for quotes: create/edit, status
// toggle, filtered lists, closed-quote search and the live SSE feed.

type OrcamentoHandler struct {
	usecase       usecase.IOrcamentoUseCase
	watchInterval time.Duration
}

func NewOrcamentoHandler(uc usecase.IOrcamentoUseCase) *OrcamentoHandler {
	return &OrcamentoHandler{usecase: uc}
}

func (h *OrcamentoHandler) CreateOrcamento(c *gin.Context) {
	var payload request.OrcamentoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrcamentoPayload.HTTPStatus, errInvalidOrcamentoPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapOrcamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrcamento(o))
}

func (h *OrcamentoHandler) UpdateOrcamento(c *gin.Context) {
	var payload request.OrcamentoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrcamentoPayload.HTTPStatus, errInvalidOrcamentoPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		appErr := mapOrcamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrcamento(o))
}

func (h *OrcamentoHandler) ToggleSituacao(c *gin.Context) {
	o, err := h.usecase.ToggleSituacao(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrcamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrcamento(o))
}

func (h *OrcamentoHandler) GetOrcamento(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrcamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrcamento(o))
}

// ListOrcamentos answers the open/closed list screens. Defaults to ABERTO.
func (h *OrcamentoHandler) ListOrcamentos(c *gin.Context) {
	list, err := h.usecase.ListBySituacao(c.Request.Context(), situacaoParam(c))
	if err != nil {
		appErr := mapOrcamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrcamentos(list))
}

// SearchOrcamentos filters the closed quotes by nome, placa, modelo,
// line-item names or formatted creation date.
func (h *OrcamentoHandler) SearchOrcamentos(c *gin.Context) {
	list, err := h.usecase.SearchFechados(c.Request.Context(), c.Query("q"))
	if err != nil {
		appErr := mapOrcamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrcamentos(list))
}

// WatchOrcamentos streams list snapshots as server-sent events until the
// client disconnects; the underlying subscription is released on the way
// out.
func (h *OrcamentoHandler) WatchOrcamentos(c *gin.Context) {
	sub, err := h.usecase.Watch(c.Request.Context(), situacaoParam(c), h.watchInterval)
	if err != nil {
		appErr := mapOrcamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer sub.Close()

	c.Stream(func(w io.Writer) bool {
		select {
		case snapshot, ok := <-sub.Snapshots():
			if !ok {
				return false
			}
			c.SSEvent("orcamentos", response.FromOrcamentos(snapshot))
			return true
		case err, ok := <-sub.Errs():
			if !ok {
				return false
			}
			c.SSEvent("error", pkg.HTTPError{Code: "STORE_ERROR", Message: err.Error()})
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

func situacaoParam(c *gin.Context) entities.Situacao {
	s := strings.ToUpper(strings.TrimSpace(c.Query("situacao")))
	if s == "" {
		return entities.SituacaoAberto
	}
	return entities.Situacao(s)
}

func mapOrcamentoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrcamentoID),
		errors.Is(err, usecase.ErrInvalidNome),
		errors.Is(err, usecase.ErrInvalidSituacao):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrcamentoNotFound):
		return pkg.NewDomainErrorSimple("ORCAMENTO_NOT_FOUND", "Orcamento not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
