package routes

import "github.com/gin-gonic/gin"

const (
	PathFetchInstagramPosts   = "/fetch-instagram-posts"
	PathCreateCheckoutSession = "/create-checkout-session"
	PathCreateOrder           = "/create-order"
)

func addStorefrontRoutes(rg *gin.RouterGroup, h Handlers) {
	rg.POST(PathFetchInstagramPosts, h.Instagram.FetchPosts)
	rg.POST(PathCreateCheckoutSession, h.Orders.CreateCheckoutSession)
	rg.POST(PathCreateOrder, h.Orders.CreateOrder)
}
