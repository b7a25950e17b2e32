package services

import (
	"fmt"
	"time"

	"github.com/Eric-Devv/NutriScopeAI/config"
	"github.com/Eric-Devv/NutriScopeAI/models"
)

type MealService struct{}

func NewMealService() *MealService {
	return &MealService{}
}

// MealRequest carries the nutrition snapshot captured from a search result or
// scan. The timestamp is deliberately absent: LoggedAt is assigned here, on
// the server, at creation time.
type MealRequest struct {
	Name     string `json:"name" binding:"required"`
	MealType string `json:"meal_type"`

	Calories      float64 `json:"calories"`
	ProteinG      float64 `json:"protein_g"`
	CarbsG        float64 `json:"carbs_g"`
	FatG          float64 `json:"fat_g"`
	FiberG        float64 `json:"fiber_g"`
	SugarG        float64 `json:"sugar_g"`
	SodiumMg      float64 `json:"sodium_mg"`
	PotassiumMg   float64 `json:"potassium_mg"`
	CholesterolMg float64 `json:"cholesterol_mg"`

	ServingQty         float64 `json:"serving_qty"`
	ServingUnit        string  `json:"serving_unit"`
	ServingWeightGrams float64 `json:"serving_weight_grams"`

	PhotoURL string `json:"photo_url"`
}

func (r *MealRequest) validate() error {
	for name, v := range map[string]float64{
		"calories":       r.Calories,
		"protein_g":      r.ProteinG,
		"carbs_g":        r.CarbsG,
		"fat_g":          r.FatG,
		"fiber_g":        r.FiberG,
		"sugar_g":        r.SugarG,
		"sodium_mg":      r.SodiumMg,
		"potassium_mg":   r.PotassiumMg,
		"cholesterol_mg": r.CholesterolMg,
	} {
		if v < 0 {
			return fmt.Errorf("%s must not be negative", name)
		}
	}
	return nil
}

func (s *MealService) AddMeal(userID uint, req MealRequest) (*models.Meal, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	meal := &models.Meal{
		UserID:             userID,
		Name:               req.Name,
		MealType:           req.MealType,
		LoggedAt:           time.Now(),
		Calories:           req.Calories,
		ProteinG:           req.ProteinG,
		CarbsG:             req.CarbsG,
		FatG:               req.FatG,
		FiberG:             req.FiberG,
		SugarG:             req.SugarG,
		SodiumMg:           req.SodiumMg,
		PotassiumMg:        req.PotassiumMg,
		CholesterolMg:      req.CholesterolMg,
		ServingQty:         req.ServingQty,
		ServingUnit:        req.ServingUnit,
		ServingWeightGrams: req.ServingWeightGrams,
		PhotoURL:           req.PhotoURL,
	}
	if err := config.DB.Create(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

// ListMeals returns the user's meals from the last N days, newest first.
func (s *MealService) ListMeals(userID uint, days int) ([]models.Meal, error) {
	since := time.Now().AddDate(0, 0, -days)
	var meals []models.Meal
	err := config.DB.
		Where("user_id = ? AND logged_at >= ?", userID, since).
		Order("logged_at DESC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) GetMeal(userID, mealID uint) (*models.Meal, error) {
	var meal models.Meal
	err := config.DB.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		return nil, err // could be ErrRecordNotFound
	}
	return &meal, nil
}

func (s *MealService) DeleteMeal(userID, mealID uint) error {
	return config.DB.
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.Meal{}).Error
}
