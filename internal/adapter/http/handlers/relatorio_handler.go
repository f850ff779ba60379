package handlers

import (
	"fmt"
	"net/http"

	"oficina_mb/internal/domain/entities"
	"oficina_mb/internal/infrastructure/reports"
	"oficina_mb/internal/usecase"

	"github.com/gin-gonic/gin"
)

// RelatorioHandler serves the shareable quote report as a PDF download.

type RelatorioHandler struct {
	usecase usecase.IOrcamentoUseCase
	render  func(entities.Orcamento) ([]byte, error)
}

func NewRelatorioHandler(uc usecase.IOrcamentoUseCase) *RelatorioHandler {
	return &RelatorioHandler{usecase: uc, render: reports.RelatorioPDF}
}

func (h *RelatorioHandler) GetRelatorio(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrcamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	pdfBytes, err := h.render(o)
	if err != nil {
		appErr := mapOrcamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "orcamento-"+o.ID+".pdf"))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
