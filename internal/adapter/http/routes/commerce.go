package routes

import (
	"festival_backend/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProducts = "/products"
	PathOrders   = "/orders"
)

// addCommerceRoutes keeps catalog reads public. Catalog writes and order
// status changes need requireAdmin on top of requireAuth.
func addCommerceRoutes(rg *gin.RouterGroup, productHandler *handlers.ProductHandler, orderHandler *handlers.OrderHandler, requireAuth, requireAdmin gin.HandlerFunc) {
	products := rg.Group(PathProducts)
	{
		products.GET("", productHandler.ListProducts)
		products.GET("/:id", productHandler.GetProduct)

		edit := products.Group("", requireAuth, requireAdmin)
		edit.POST("", productHandler.CreateProduct)
		edit.PATCH("/:id", productHandler.UpdateProduct)
		edit.DELETE("/:id", productHandler.DeleteProduct)
	}

	orders := rg.Group(PathOrders, requireAuth)
	{
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PATCH("/:id/status", requireAdmin, orderHandler.UpdateOrderStatus)
	}
}
