package routes

import (
	"salonmanager-app/config"
	"salonmanager-app/controllers"
	"salonmanager-app/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
		auth.POST("/logout", controllers.Logout)

		profile := auth.Group("/profile")
		{
			profile.GET("", controllers.GetProfile)
			profile.PUT("/update-salon", controllers.UpdateSalonProfile)
			profile.PUT("/update-theme", controllers.UpdateTheme)
		}
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Collaborator routes
		collaborators := api.Group("/collaborators")
		{
			collaborators.POST("", controllers.CreateCollaborator)
			collaborators.GET("", controllers.GetCollaborators)
			collaborators.GET("/:id", controllers.GetCollaborator)
			collaborators.PUT("/:id", controllers.UpdateCollaborator)
			collaborators.DELETE("/:id", controllers.DeleteCollaborator)
		}

		// Procedure routes
		procedures := api.Group("/procedures")
		{
			procedures.POST("", controllers.CreateProcedure)
			procedures.GET("", controllers.GetProcedures)
			procedures.PUT("/:id", controllers.UpdateProcedure)
			procedures.DELETE("/:id", controllers.DeleteProcedure)
		}

		// Price configuration routes
		prices := api.Group("/prices")
		{
			prices.POST("", controllers.CreatePrice)
			prices.GET("", controllers.GetPrices)
			prices.PUT("/:id", controllers.UpdatePrice)
			prices.DELETE("/:id", controllers.DeletePrice)
		}

		// Service record routes (create/read/delete only, records are immutable)
		records := api.Group("/records")
		{
			records.POST("", controllers.CreateRecord)
			records.GET("", controllers.GetRecords)
			records.DELETE("/:id", controllers.DeleteRecord)
		}

		// Report routes
		reportController := controllers.ReportController{}
		api.GET("/reports", reportController.GetReport)
		api.GET("/analysis", reportController.GetAnalysis)

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)
	}

	return r
}
