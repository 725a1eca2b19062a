package route

import (
	"github.com/gin-gonic/gin"
	"github.com/padocadigital/gestao-padaria/internal/adapter/api/controller"
	"github.com/padocadigital/gestao-padaria/pkg/auth"
)

// SetupProjectionRoutes configura as rotas para as projeções de receita
func SetupProjectionRoutes(router *gin.RouterGroup, projectionController *controller.ProjectionController) {
	projectionRouter := router.Group("/projections")
	{
		projectionRouter.Use(auth.JWTAuthMiddleware())
		projectionRouter.GET("", projectionController.Get)
	}
}
