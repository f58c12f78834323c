package routes

import (
	"github.com/gin-gonic/gin"

	"tour_to_himachal/internal/controllers"
	"tour_to_himachal/internal/middleware"
)

func AuthRoutes(r *gin.Engine, auth *controllers.AuthController) {
	group := r.Group("/auth")
	{
		group.POST("/login", auth.Login)

		group.GET("/me", middleware.RequireAuth(), auth.Me)
		group.PUT("/change-password", middleware.RequireAuth(), auth.ChangePassword)
	}
}
