package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Eric-Devv/NutriScopeAI/config"
	"github.com/Eric-Devv/NutriScopeAI/models"
	"github.com/Eric-Devv/NutriScopeAI/utils"
)

type ProfileInput struct {
	DisplayName    string `json:"display_name"`
	ProfilePicture string `json:"profile_picture"` // data-URL base64
}

// PreferencesInput updates the user's targets and diet tags. Zero-valued
// fields are left untouched so partial updates are safe.
type PreferencesInput struct {
	DietaryRestrictions []string      `json:"dietary_restrictions"`
	DietGoals           []string      `json:"diet_goals"`
	CalorieTarget       *float64      `json:"calorie_target"`
	MacroTargets        *MacroTargets `json:"macro_targets"`
}

func GetUserProfile(email string) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}

	goal := ResolveGoal(&user)

	return map[string]interface{}{
		"id":              user.ID,
		"email":           user.Email,
		"display_name":    user.DisplayName,
		"profile_picture": user.ProfilePicture,
		"preferences":     goal,
	}, nil
}

func UpdateUserProfile(email string, input ProfileInput) error {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	if result.Error != nil {
		return errors.New("user not found")
	}

	if input.DisplayName != "" {
		user.DisplayName = input.DisplayName
	}
	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64Image(input.ProfilePicture, "profile-pictures", user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload image: %v", err)
		}
		user.ProfilePicture = url
	}

	return config.DB.Save(&user).Error
}

func UpdateUserPreferences(email string, input PreferencesInput) error {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	if result.Error != nil {
		return errors.New("user not found")
	}

	if input.DietaryRestrictions != nil {
		user.DietaryRestrictions = strings.Join(input.DietaryRestrictions, ",")
	}
	if input.DietGoals != nil {
		user.DietGoals = strings.Join(input.DietGoals, ",")
	}
	if input.CalorieTarget != nil {
		if *input.CalorieTarget <= 0 {
			return errors.New("calorie_target must be positive")
		}
		user.CalorieTarget = *input.CalorieTarget
	}
	if input.MacroTargets != nil {
		user.MacroProtein = input.MacroTargets.Protein
		user.MacroCarbs = input.MacroTargets.Carbs
		user.MacroFat = input.MacroTargets.Fat
	}

	return config.DB.Save(&user).Error
}
