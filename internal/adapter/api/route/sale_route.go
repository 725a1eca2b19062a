package route

import (
	"github.com/gin-gonic/gin"
	"github.com/padocadigital/gestao-padaria/internal/adapter/api/controller"
	"github.com/padocadigital/gestao-padaria/pkg/auth"
	"github.com/padocadigital/gestao-padaria/pkg/institute"
)

// SetupSaleRoutes configura as rotas para o registro de vendas
func SetupSaleRoutes(router *gin.RouterGroup, saleController *controller.SaleController) {
	saleRouter := router.Group("/sales")
	{
		saleRouter.Use(auth.JWTAuthMiddleware())
		saleRouter.Use(institute.Middleware())
		{
			saleRouter.POST("", saleController.Create)
			saleRouter.POST("/batch", saleController.IngestBatch)
			saleRouter.GET("", saleController.List)
		}
	}
}
