package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Eric-Devv/NutriScopeAI/config"
	"github.com/Eric-Devv/NutriScopeAI/models"
	"github.com/Eric-Devv/NutriScopeAI/services"
	"github.com/Eric-Devv/NutriScopeAI/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MealController struct {
	meals *services.MealService
	diary *services.DiaryService
	hub   *services.RealtimeHub
}

func NewMealController(hub *services.RealtimeHub) *MealController {
	ms := services.NewMealService()
	return &MealController{
		meals: ms,
		diary: services.NewDiaryService(ms),
		hub:   hub,
	}
}

type logMealInput struct {
	services.MealRequest
	PhotoBase64 string `json:"photo_base64"`
}

func (mc *MealController) LogMeal(c *gin.Context) {
	var body logMealInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := c.GetUint("userID")

	if body.PhotoBase64 != "" {
		url, err := utils.UploadBase64Image(body.PhotoBase64, "meal-photos", strconv.Itoa(int(userID)))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		body.PhotoURL = url
	}

	meal, err := mc.meals.AddMeal(userID, body.MealRequest)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	mc.hub.BroadcastEvent(userID, services.EventMealCreated, meal)
	c.JSON(http.StatusCreated, meal)
}

func (mc *MealController) ListMeals(c *gin.Context) {
	userID := c.GetUint("userID")

	days := 7
	if d, err := strconv.Atoi(c.DefaultQuery("days", "7")); err == nil && d > 0 {
		days = d
	}

	meals, err := mc.meals.ListMeals(userID, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (mc *MealController) GetMeal(c *gin.Context) {
	userID := c.GetUint("userID")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	meal, err := mc.meals.GetMeal(userID, uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (mc *MealController) DeleteMeal(c *gin.Context) {
	userID := c.GetUint("userID")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	if err := mc.meals.DeleteMeal(userID, uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	mc.hub.BroadcastEvent(userID, services.EventMealDeleted, gin.H{"id": id})
	c.Status(http.StatusNoContent)
}

// GetDiary returns day buckets for the requested range plus the aggregated
// summary for the selected date. The client's timezone decides which calendar
// day a meal belongs to; without one the server's local zone is used.
func (mc *MealController) GetDiary(c *gin.Context) {
	email := c.MustGet("email").(string)
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	loc := time.Local
	if tz := c.Query("tz"); tz != "" {
		parsed, err := time.LoadLocation(tz)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tz. Use an IANA name like America/New_York"})
			return
		}
		loc = parsed
	}

	date := time.Now().In(loc)
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	days := 30
	if d, err := strconv.Atoi(c.DefaultQuery("days", "30")); err == nil && d > 0 {
		days = d
	}

	diary, err := mc.diary.GetDiary(&user, days, date, loc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, diary)
}
