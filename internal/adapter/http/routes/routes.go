package routes

import (
	"log"
	_ "oficina_mb/docs" // swag-generated registration
	"oficina_mb/internal/adapter/http/handlers"
	"oficina_mb/internal/adapter/persistence/repository"
	"oficina_mb/internal/infrastructure/database"
	"oficina_mb/internal/infrastructure/viacep"
	"oficina_mb/internal/usecase"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	clienteRepo := repository.NewClienteDynamoRepository(ddb)
	carroRepo := repository.NewCarroDynamoRepository(ddb)
	orcamentoRepo := repository.NewOrcamentoDynamoRepository(ddb)
	atualizacaoRepo := repository.NewAtualizacaoDynamoRepository(ddb)

	cepGateway := viacep.NewClient()

	clienteUseCase := usecase.NewClienteUseCase(clienteRepo, carroRepo, cepGateway)
	orcamentoUseCase := usecase.NewOrcamentoUseCase(orcamentoRepo)
	atualizacaoUseCase := usecase.NewAtualizacaoUseCase(atualizacaoRepo)

	clienteHandler := handlers.NewClienteHandler(clienteUseCase)
	orcamentoHandler := handlers.NewOrcamentoHandler(orcamentoUseCase)
	relatorioHandler := handlers.NewRelatorioHandler(orcamentoUseCase)
	atualizacaoHandler := handlers.NewAtualizacaoHandler(atualizacaoUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOficinaRoutes(v1, clienteHandler, orcamentoHandler, relatorioHandler, atualizacaoHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
