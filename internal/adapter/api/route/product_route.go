package route

import (
	"github.com/gin-gonic/gin"
	"github.com/padocadigital/gestao-padaria/internal/adapter/api/controller"
	"github.com/padocadigital/gestao-padaria/pkg/auth"
)

// SetupProductRoutes configura as rotas para o módulo de produtos
func SetupProductRoutes(router *gin.RouterGroup, productController *controller.ProductController) {
	productRouter := router.Group("/products")
	{
		productRouter.Use(auth.JWTAuthMiddleware())
		{
			productRouter.GET("", productController.List)
			productRouter.GET("/:id", productController.Get)
		}

		// Alterações no catálogo requerem perfil de gestão
		adminRouter := productRouter.Group("")
		adminRouter.Use(auth.RoleAuthMiddleware("admin", "manager"))
		{
			adminRouter.POST("", productController.Create)
			adminRouter.PUT("/:id", productController.Update)
			adminRouter.DELETE("/:id", productController.Delete)
		}
	}
}
