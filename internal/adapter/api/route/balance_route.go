package route

import (
	"github.com/gin-gonic/gin"
	"github.com/padocadigital/gestao-padaria/internal/adapter/api/controller"
	"github.com/padocadigital/gestao-padaria/pkg/auth"
)

// SetupBalanceRoutes configura as rotas para consulta dos saldos diários
func SetupBalanceRoutes(router *gin.RouterGroup, balanceController *controller.BalanceController) {
	balanceRouter := router.Group("/balances")
	{
		balanceRouter.Use(auth.JWTAuthMiddleware())
		{
			balanceRouter.GET("", balanceController.List)
			balanceRouter.GET("/:date", balanceController.GetByDate)
		}
	}
}
