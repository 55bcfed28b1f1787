package routes

import (
	"furnicraft/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders   = "/orders"
	PathJobCards = "/job-cards"
)

func addProductionRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, jobCardHandler *handlers.JobCardHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("/:order_number", orderHandler.GetOrder)
		orders.PATCH("/:order_number/status", orderHandler.UpdateOrderStatus)
		orders.POST("/:order_number/release", orderHandler.ReleaseForProduction)
		orders.GET("/:order_number/job-cards", orderHandler.ListJobCards)
	}

	jobCards := rg.Group(PathJobCards)
	{
		jobCards.GET("/:number", jobCardHandler.GetJobCard)
		jobCards.PATCH("/:number/status", jobCardHandler.UpdateJobCardStatus)
	}
}
