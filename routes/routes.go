package routes

import (
	"chinetonusine-backend/config"
	"chinetonusine-backend/controllers"
	"chinetonusine-backend/models"
	"chinetonusine-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"https://www.chinetonusine.com",
			"https://app.chinetonusine.com",
			"http://localhost:3000",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) bool {
			return origin == "https://www.chinetonusine.com" ||
				origin == "https://app.chinetonusine.com" ||
				origin == "http://localhost:3000"
		},
	}))

	r.Use(config.PerformanceLogger())

	// Public supplier profile page
	r.GET("/suppliers/:id/profile", controllers.GetSupplierProfile)

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Business card routes (admin and supplier)
		cards := api.Group("/cards")
		cards.Use(utils.RequireRole(models.RoleAdmin, models.RoleSupplier))
		{
			cards.GET("", controllers.GetCards)
			cards.POST("", controllers.CreateCard)
			cards.GET("/:id", controllers.GetCard)
			cards.PUT("/:id", controllers.UpdateCard)
			cards.DELETE("/:id", controllers.DeleteCard)
			cards.POST("/:id/duplicate", controllers.DuplicateCard)
			cards.POST("/:id/download", controllers.RegisterDownload)
			cards.POST("/:id/share", controllers.RegisterShare)
			cards.GET("/:id/render", controllers.RenderCard)
		}

		// Admin routes
		admin := api.Group("/admin")
		admin.Use(utils.RequireRole(models.RoleAdmin))
		{
			admin.GET("/orders", controllers.GetAdminOrders)
			admin.GET("/orders/:id", controllers.GetAdminOrder)
			admin.PUT("/orders/:id/status", controllers.UpdateAdminOrderStatus)

			admin.GET("/suppliers", controllers.GetAdminSuppliers)
			admin.GET("/suppliers/:id", controllers.GetAdminSupplier)
			admin.PUT("/suppliers/:id/status", controllers.UpdateAdminSupplierStatus)

			admin.GET("/documents", controllers.GetAdminDocuments)
			admin.PUT("/documents/:id/review", controllers.ReviewAdminDocument)

			admin.GET("/moderation", controllers.GetModerationQueue)
			admin.PUT("/moderation/:id", controllers.ResolveModerationItem)

			admin.GET("/alerts", controllers.GetAdminAlerts)
			admin.POST("/alerts", controllers.CreateAdminAlert)
			admin.PUT("/alerts/:id/read", controllers.MarkAlertRead)
			admin.PUT("/alerts/read-all", controllers.MarkAllAlertsRead)

			admin.GET("/database", controllers.GetDatabaseOverview)
			admin.GET("/reports", controllers.GetAdminReports)

			admin.GET("/settings", controllers.GetPlatformSettings)
			admin.PUT("/settings", controllers.UpdatePlatformSettings)
		}

		// Supplier routes
		supplier := api.Group("/supplier")
		supplier.Use(utils.RequireRole(models.RoleSupplier))
		{
			supplier.GET("/dashboard", controllers.GetSupplierDashboard)
			supplier.GET("/orders", controllers.GetSupplierOrders)
			supplier.GET("/analytics", controllers.GetSupplierAnalytics)
			supplier.GET("/customers", controllers.GetSupplierCustomers)

			supplier.GET("/messages", controllers.GetSupplierThreads)
			supplier.GET("/messages/:id", controllers.GetThreadMessages)
			supplier.POST("/messages/:id/reply", controllers.ReplyToThread)

			supplier.GET("/reviews", controllers.GetSupplierReviews)
			supplier.POST("/reviews/:id/reply", controllers.ReplyToReview)

			supplier.GET("/settings", controllers.GetSupplierSettings)
			supplier.PUT("/settings", controllers.UpdateSupplierSettings)
		}

		// Influencer routes
		influencer := api.Group("/influencer")
		influencer.Use(utils.RequireRole(models.RoleInfluencer))
		{
			influencer.GET("/collaborations", controllers.GetCollaborations)
			influencer.PUT("/collaborations/:id/status", controllers.UpdateCollaborationStatus)
			influencer.GET("/referral", controllers.GetReferral)
			influencer.GET("/stars", controllers.GetStars)
			influencer.GET("/stats", controllers.GetInfluencerStats)
			influencer.GET("/suppliers", controllers.SearchSuppliers)
		}
	}

	return r
}
