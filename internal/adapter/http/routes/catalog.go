package routes

import (
	"oficina_os/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalog = "/catalog"
)

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.PriceCatalogHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("", catalogHandler.GetCatalog)
		catalog.GET("/suggest", catalogHandler.Suggest)
		catalog.PUT("/items", catalogHandler.UpsertItem)
		catalog.DELETE("/items/:name", catalogHandler.RemoveItem)
	}
}
