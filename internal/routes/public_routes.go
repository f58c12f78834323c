package routes

import (
	"github.com/gin-gonic/gin"

	"tour_to_himachal/internal/controllers"
)

// PublicRoutes serves the website: intake form plus read-only published
// content. No auth.
func PublicRoutes(
	r *gin.Engine,
	lead *controllers.LeadController,
	pkg *controllers.PackageController,
	blog *controllers.BlogController,
	diary *controllers.DiaryController,
	review *controllers.ReviewController,
	taxi *controllers.TaxiController,
) {
	api := r.Group("/api")
	{
		// Shared intake endpoint for package, taxi, and general enquiries
		api.POST("/taxi-booking", lead.SubmitBooking)

		api.GET("/packages", pkg.ListPublic)
		api.GET("/packages/:slug", pkg.GetBySlug)

		api.GET("/blogs", blog.ListPublic)
		api.GET("/blogs/:slug", blog.GetBySlug)

		api.GET("/diaries", diary.ListPublic)
		api.GET("/diaries/:slug", diary.GetBySlug)

		api.GET("/reviews", review.ListPublic)
		api.POST("/reviews", review.Submit)

		api.GET("/taxi/vehicles", taxi.ListVehiclesPublic)
		api.GET("/taxi/routes", taxi.ListRoutesPublic)
	}
}
