package route

import (
	"github.com/gin-gonic/gin"
	"github.com/padocadigital/gestao-padaria/internal/adapter/api/controller"
	"github.com/padocadigital/gestao-padaria/pkg/auth"
)

// SetupSettlementRoutes configura as rotas para o fechamento diário
func SetupSettlementRoutes(router *gin.RouterGroup, settlementController *controller.SettlementController) {
	settlementRouter := router.Group("/settlements")
	{
		settlementRouter.Use(auth.JWTAuthMiddleware())

		// O fechamento pode ser reexecutado para o mesmo dia sem duplicar
		// o saldo. O GET existe para agendadores externos que só sabem
		// disparar requisições GET
		settlementRouter.GET("/daily", settlementController.Run)
		settlementRouter.POST("/daily", settlementController.Run)
	}
}
