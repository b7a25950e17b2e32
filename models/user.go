package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `gorm:"not null" json:"-"`
	DisplayName string `json:"display_name"`

	// Preferences. Tag sets are stored comma-separated; the goal resolver
	// splits them and applies defaults for everything left empty.
	DietaryRestrictions string  `json:"dietary_restrictions"`
	DietGoals           string  `json:"diet_goals"`
	CalorieTarget       float64 `json:"calorie_target"`
	MacroProtein        float64 `json:"macro_protein"`
	MacroCarbs          float64 `json:"macro_carbs"`
	MacroFat            float64 `json:"macro_fat"`

	ProfilePicture string    `json:"profile_picture"`
	ResetToken     string    `json:"-"`
	ResetTokenExp  time.Time `json:"-"`
}
