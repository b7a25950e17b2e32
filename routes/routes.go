package routes

import (
	"github.com/Eric-Devv/NutriScopeAI/controllers"
	"github.com/Eric-Devv/NutriScopeAI/middlewares"
	"github.com/Eric-Devv/NutriScopeAI/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	hub := services.NewRealtimeHub()
	mealCtl := controllers.NewMealController(hub)
	rtCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected routes
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/user/profile", controllers.GetProfile)
		api.PUT("/user/profile", controllers.UpdateProfile)
		api.PUT("/user/preferences", controllers.UpdatePreferences)

		api.POST("/meals", mealCtl.LogMeal)
		api.GET("/meals", mealCtl.ListMeals)
		api.GET("/meals/:id", mealCtl.GetMeal)
		api.DELETE("/meals/:id", mealCtl.DeleteMeal)
		api.GET("/diary", mealCtl.GetDiary)

		api.GET("/food/search", controllers.SearchFoods)
		api.POST("/food/natural", controllers.NutritionFromText)
		api.POST("/food/scan", controllers.ScanFood)

		api.POST("/chat", controllers.Chat)
		api.POST("/feedback", controllers.GetFeedback)
		api.GET("/tips/daily", controllers.GetDailyTip)
		api.POST("/tips", controllers.SaveTip)
		api.GET("/tips", controllers.ListTips)

		api.GET("/ws", rtCtl.DiaryWS)
	}

	return r
}
