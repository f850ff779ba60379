package main

import (
	_ "oficina_mb/docs"
	"oficina_mb/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Oficina MB API
// @version         1.0
// @description     Auto-repair shop backend (clientes, carros, orçamentos) backed by DynamoDB.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
