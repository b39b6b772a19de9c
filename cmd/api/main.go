package main

import (
	"context"
	"log"

	_ "claims_settlement/docs"
	"claims_settlement/internal/adapter/http/routes"
	"claims_settlement/internal/app"
	"claims_settlement/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Claims Settlement Offer API
// @version         1.0
// @description     Settlement offer lifecycle for approved insurance claims, backed by DynamoDB or PostgreSQL.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	container, err := app.Build(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to wire dependencies: %v", err)
	}
	defer container.Close()

	if err := routes.Run(container); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
