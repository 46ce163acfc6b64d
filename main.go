package main

import (
	"log"

	"shop-api/config"
	_ "shop-api/docs"
	"shop-api/middleware"
	"shop-api/routes"

	"github.com/gin-gonic/gin"
)

// @title Shop API
// @version 1.0
// @description Items and users with per-user carts, backed by a swappable in-memory or PostgreSQL repository.
// @BasePath /
func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	if config.AppConfig.RepoMode == "sql" {
		config.ConnectDB()
		defer config.CloseDB()
		config.CreateSchema()
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	if err := routes.SetupRoutes(router, config.AppConfig.RepoMode); err != nil {
		log.Fatalf("Failed to set up routes: %v", err)
	}

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
