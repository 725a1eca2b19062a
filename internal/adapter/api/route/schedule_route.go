package route

import (
	"github.com/gin-gonic/gin"
	"github.com/padocadigital/gestao-padaria/internal/adapter/api/controller"
	"github.com/padocadigital/gestao-padaria/pkg/auth"
)

// SetupScheduleRoutes configura as rotas para a escala de funcionários
func SetupScheduleRoutes(router *gin.RouterGroup, scheduleController *controller.ScheduleController) {
	scheduleRouter := router.Group("/schedules")
	{
		scheduleRouter.Use(auth.JWTAuthMiddleware())
		{
			scheduleRouter.GET("", scheduleController.List)
			scheduleRouter.GET("/:id", scheduleController.Get)
		}

		adminRouter := scheduleRouter.Group("")
		adminRouter.Use(auth.RoleAuthMiddleware("admin", "manager"))
		{
			adminRouter.POST("", scheduleController.Create)
			adminRouter.PUT("/:id", scheduleController.Update)
			adminRouter.DELETE("/:id", scheduleController.Delete)
		}
	}
}
