package route

import (
	"github.com/gin-gonic/gin"
	"github.com/padocadigital/gestao-padaria/internal/adapter/api/controller"
	"github.com/padocadigital/gestao-padaria/pkg/auth"
	"github.com/padocadigital/gestao-padaria/pkg/institute"
)

// SetupLedgerRoutes configura as rotas para os lançamentos financeiros
func SetupLedgerRoutes(router *gin.RouterGroup, ledgerController *controller.LedgerController) {
	ledgerRouter := router.Group("/entries")
	{
		// Lançamentos são sempre escopados pelo instituto parceiro
		ledgerRouter.Use(auth.JWTAuthMiddleware())
		ledgerRouter.Use(institute.Middleware())
		{
			ledgerRouter.POST("", ledgerController.Create)
			ledgerRouter.GET("", ledgerController.List)
			ledgerRouter.GET("/:id", ledgerController.Get)
			ledgerRouter.PUT("/:id", ledgerController.Update)
			ledgerRouter.DELETE("/:id", ledgerController.Delete)
		}
	}
}
