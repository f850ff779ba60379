package routes

import (
	"oficina_mb/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClientes    = "/clientes"
	PathCeps        = "/ceps"
	PathOrcamentos  = "/orcamentos"
	PathAtualizacao = "/atualizacao"
)

func addOficinaRoutes(
	rg *gin.RouterGroup,
	clienteHandler *handlers.ClienteHandler,
	orcamentoHandler *handlers.OrcamentoHandler,
	relatorioHandler *handlers.RelatorioHandler,
	atualizacaoHandler *handlers.AtualizacaoHandler,
) {
	clientes := rg.Group(PathClientes)
	{
		clientes.POST("", clienteHandler.CreateCliente)
		clientes.GET("", clienteHandler.SearchClientes)
		clientes.GET("/:id", clienteHandler.GetCliente)
		clientes.PUT("/:id", clienteHandler.UpdateCliente)
	}

	rg.GET(PathCeps+"/:cep", clienteHandler.LookupCEP)

	orcamentos := rg.Group(PathOrcamentos)
	{
		// No delete route: orçamentos are never removed, only closed.
		orcamentos.POST("", orcamentoHandler.CreateOrcamento)
		orcamentos.GET("", orcamentoHandler.ListOrcamentos)
		orcamentos.GET("/search", orcamentoHandler.SearchOrcamentos)
		orcamentos.GET("/watch", orcamentoHandler.WatchOrcamentos)
		orcamentos.GET("/:id", orcamentoHandler.GetOrcamento)
		orcamentos.PUT("/:id", orcamentoHandler.UpdateOrcamento)
		orcamentos.PATCH("/:id/situacao", orcamentoHandler.ToggleSituacao)
		orcamentos.GET("/:id/relatorio", relatorioHandler.GetRelatorio)
	}

	rg.GET(PathAtualizacao, atualizacaoHandler.CheckAtualizacao)
}
