package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal type labels as sent by the app.
const (
	MealTypeBreakfast = "Breakfast"
	MealTypeLunch     = "Lunch"
	MealTypeDinner    = "Dinner"
	MealTypeSnack     = "Snack"
)

// Meal is one logged food entry with its nutrition snapshot.
// LoggedAt is assigned server-side at creation, never mutated afterwards,
// and is the sole ordering/day-bucketing key.
type Meal struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null" json:"user_id"`
	Name     string    `gorm:"not null" json:"name"`
	MealType string    `json:"meal_type"`
	LoggedAt time.Time `gorm:"index" json:"logged_at"`

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

	PhotoURL string `json:"photo_url,omitempty"`
}
