package controllers

import (
	"net/http"

	"github.com/Eric-Devv/NutriScopeAI/config"
	"github.com/Eric-Devv/NutriScopeAI/models"
	"github.com/Eric-Devv/NutriScopeAI/services"

	"github.com/gin-gonic/gin"
)

// POST /chat  { "messages": [{"role": "user", "content": "..."}, ...] }
func Chat(c *gin.Context) {
	var req struct {
		Messages []struct {
			Role    string `json:"role" binding:"required"`
			Content string `json:"content" binding:"required"`
		} `json:"messages" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	history := make([]services.ChatMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		if m.Role != "user" && m.Role != "assistant" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "role must be user or assistant"})
			return
		}
		history = append(history, services.ChatMessage{Role: m.Role, Content: m.Content})
	}

	reply, err := services.NewOpenAIService().ChatResponse(history)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// POST /feedback — analyzes the caller's full meal history. The zero-meal
// case is short-circuited here; the dispatcher itself forwards whatever it
// is given.
func GetFeedback(c *gin.Context) {
	userID := c.GetUint("userID")

	meals, err := services.NewMealService().ListMeals(userID, 30)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(meals) == 0 {
		c.JSON(http.StatusOK, gin.H{"feedback": "Please log more meals to get personalized feedback."})
		return
	}

	feedback := services.NewOpenAIService().AnalyzeMealHistory(meals)
	c.JSON(http.StatusOK, gin.H{"feedback": feedback})
}

// GET /tips/daily — generated from the user's resolved preferences; always
// succeeds (the service substitutes a fallback tip on failure).
func GetDailyTip(c *gin.Context) {
	email := c.MustGet("email").(string)
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	tip := services.NewOpenAIService().DailyTip(services.ResolveGoal(&user))
	c.JSON(http.StatusOK, tip)
}

// POST /tips — save a tip the user wants to keep.
func SaveTip(c *gin.Context) {
	userID := c.GetUint("userID")

	var tip services.NutritionTip
	if err := c.ShouldBindJSON(&tip); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	saved, err := services.SaveTip(userID, tip)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// GET /tips
func ListTips(c *gin.Context) {
	userID := c.GetUint("userID")

	tips, err := services.ListSavedTips(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tips)
}
