package controllers

import (
	"net/http"

	"github.com/Eric-Devv/NutriScopeAI/services"

	"github.com/gin-gonic/gin"
)

// GET /food/search?q=apple
func SearchFoods(c *gin.Context) {
	foodSvc := services.NewFoodService(services.NewNutritionixService(), services.NewOpenAIService())

	out, err := foodSvc.Search(c.Query("q"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /food/natural  { "text": "2 eggs and toast" }
func NutritionFromText(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	foodSvc := services.NewFoodService(services.NewNutritionixService(), services.NewOpenAIService())

	out, err := foodSvc.FromText(req.Text)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /food/scan  { "image_base64": "...", "prompt": "optional" }
func ScanFood(c *gin.Context) {
	var req struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
		Prompt      string `json:"prompt"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	foodSvc := services.NewFoodService(services.NewNutritionixService(), services.NewOpenAIService())

	out, err := foodSvc.Scan(req.ImageBase64, req.Prompt)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}
