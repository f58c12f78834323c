package routes

import (
	"github.com/gin-gonic/gin"

	"tour_to_himachal/internal/controllers"
	"tour_to_himachal/internal/middleware"
)

// AdminRoutes mounts the back-office API behind the admin role.
func AdminRoutes(
	r *gin.Engine,
	lead *controllers.LeadController,
	pkg *controllers.PackageController,
	blog *controllers.BlogController,
	diary *controllers.DiaryController,
	review *controllers.ReviewController,
	taxi *controllers.TaxiController,
	media *controllers.MediaController,
) {
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAuthWithRole("admin"))
	{
		admin.GET("/dashboard", lead.Dashboard)

		leads := admin.Group("/leads")
		{
			leads.GET("", lead.ListLeads)
			leads.GET("/export", lead.ExportLeads)
			leads.GET("/:id", lead.GetLead)
			leads.PATCH("/:id/status", lead.UpdateStatus)
			leads.DELETE("/:id", lead.DeleteLead)
		}

		packages := admin.Group("/packages")
		{
			packages.GET("", pkg.List)
			packages.POST("", pkg.Create)
			packages.GET("/:id", pkg.Get)
			packages.PUT("/:id", pkg.Update)
			packages.DELETE("/:id", pkg.Delete)
			packages.PATCH("/:id/active", pkg.ToggleActive)
			packages.PATCH("/:id/featured", pkg.ToggleFeatured)
		}

		blogs := admin.Group("/blogs")
		{
			blogs.GET("", blog.List)
			blogs.POST("", blog.Create)
			blogs.GET("/:id", blog.Get)
			blogs.PUT("/:id", blog.Update)
			blogs.DELETE("/:id", blog.Delete)
			blogs.PATCH("/:id/publish", blog.Publish)
		}

		diaries := admin.Group("/diaries")
		{
			diaries.GET("", diary.List)
			diaries.POST("", diary.Create)
			diaries.GET("/:id", diary.Get)
			diaries.PUT("/:id", diary.Update)
			diaries.DELETE("/:id", diary.Delete)
			diaries.PATCH("/:id/publish", diary.Publish)
		}

		reviews := admin.Group("/reviews")
		{
			reviews.GET("", review.List)
			reviews.PATCH("/:id/approve", review.Approve)
			reviews.DELETE("/:id", review.Delete)
		}

		vehicles := admin.Group("/vehicles")
		{
			vehicles.GET("", taxi.ListVehicles)
			vehicles.POST("", taxi.CreateVehicle)
			vehicles.PUT("/:id", taxi.UpdateVehicle)
			vehicles.DELETE("/:id", taxi.DeleteVehicle)
			vehicles.PATCH("/:id/availability", taxi.ToggleVehicleAvailability)
		}

		taxiRoutes := admin.Group("/taxi-routes")
		{
			taxiRoutes.GET("", taxi.ListRoutes)
			taxiRoutes.POST("", taxi.CreateRoute)
			taxiRoutes.PUT("/:id", taxi.UpdateRoute)
			taxiRoutes.DELETE("/:id", taxi.DeleteRoute)
			taxiRoutes.PATCH("/:id/active", taxi.ToggleRouteActive)
		}

		mediaGroup := admin.Group("/media")
		{
			mediaGroup.GET("", media.List)
			mediaGroup.POST("", media.Create)
			mediaGroup.DELETE("/:id", media.Delete)
		}
	}
}
