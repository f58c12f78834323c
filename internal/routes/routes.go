package routes

import (
	"github.com/gin-contrib/cors"
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tour_to_himachal/internal/controllers"
	"tour_to_himachal/internal/store"
)

// SetupRouter wires every controller against the given DB handle and
// registers all route groups.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
	}))

	leadCtl := controllers.NewLeadController(store.NewLeadStore(db))
	packageCtl := controllers.NewPackageController(db)
	blogCtl := controllers.NewBlogController(db)
	diaryCtl := controllers.NewDiaryController(db)
	reviewCtl := controllers.NewReviewController(db)
	taxiCtl := controllers.NewTaxiController(db)
	mediaCtl := controllers.NewMediaController(db)
	authCtl := controllers.NewAuthController(db)

	PublicRoutes(r, leadCtl, packageCtl, blogCtl, diaryCtl, reviewCtl, taxiCtl)
	AuthRoutes(r, authCtl)
	AdminRoutes(r, leadCtl, packageCtl, blogCtl, diaryCtl, reviewCtl, taxiCtl, mediaCtl)

	return r
}
