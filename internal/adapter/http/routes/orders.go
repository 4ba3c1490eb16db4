package routes

import (
	"oficina_os/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders = "/orders"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.ServiceOrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/next-id", orderHandler.NextOrderID)
		orders.GET("/draft", orderHandler.DraftOrder)
		orders.GET("/export", orderHandler.ExportOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.GET("/:id/document", orderHandler.OrderDocument)
		orders.POST("", orderHandler.SaveOrder)
		orders.DELETE("/:id", orderHandler.DeleteOrder)
	}
}
