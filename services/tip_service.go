package services

import (
	"github.com/Eric-Devv/NutriScopeAI/config"
	"github.com/Eric-Devv/NutriScopeAI/models"
)

func SaveTip(userID uint, tip NutritionTip) (*models.SavedTip, error) {
	saved := &models.SavedTip{
		UserID:      userID,
		Title:       tip.Title,
		Description: tip.Description,
		Category:    tip.Category,
		ImageURL:    tip.ImageURL,
	}
	if err := config.DB.Create(saved).Error; err != nil {
		return nil, err
	}
	return saved, nil
}

func ListSavedTips(userID uint) ([]models.SavedTip, error) {
	var tips []models.SavedTip
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tips).Error
	return tips, err
}
