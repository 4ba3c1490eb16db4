package routes

import (
	"context"
	"log"
	"os"

	_ "oficina_os/docs" // This will be auto-generated
	"oficina_os/internal/adapter/http/handlers"
	"oficina_os/internal/adapter/persistence/repository"
	"oficina_os/internal/infrastructure/cache"
	"oficina_os/internal/infrastructure/database"
	"oficina_os/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const (
	defaultPort      = "8080"
	defaultCachePath = "oficina_os.db"
)

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := getenvDefault("PORT", defaultPort)
	err := router.Run(":" + port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	orderRepo := repository.NewOrderDynamoRepository(ddb)
	settingsRepo := repository.NewSettingsDynamoRepository(ddb)

	mirror, err := cache.Open(getenvDefault("LOCAL_CACHE_PATH", defaultCachePath))
	if err != nil {
		log.Fatalf("Failed to open the local mirror: %v", err)
	}

	orderBook := usecase.NewOrderBookUseCase(orderRepo, settingsRepo, mirror)
	catalog := usecase.NewPriceCatalogUseCase(settingsRepo, mirror)
	profile := usecase.NewCompanyProfileUseCase(settingsRepo, mirror)

	// Cache-first startup: serve the mirror immediately, let the remote win
	// when it answers. Remote failures here are non-fatal.
	ctx := context.Background()
	orderBook.Init(ctx)
	catalog.Init(ctx)
	profile.Init(ctx)

	orderHandler := handlers.NewServiceOrderHandler(orderBook, profile)
	catalogHandler := handlers.NewPriceCatalogHandler(catalog)
	profileHandler := handlers.NewCompanyProfileHandler(profile)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, orderHandler)
	addCatalogRoutes(v1, catalogHandler)
	addSettingsRoutes(v1, profileHandler)
}

func setMiddlewares() {
	router.Use(requestID())
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
