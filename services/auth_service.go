package services

import (
	"errors"

	"github.com/Eric-Devv/NutriScopeAI/config"
	"github.com/Eric-Devv/NutriScopeAI/models"
	"github.com/Eric-Devv/NutriScopeAI/utils"
)

// RegisterUser creates an account with default preferences, mirroring the
// signup flow: every new profile starts at 2000 kcal and 25/50/25 macros.
func RegisterUser(email, password, displayName string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:         email,
		Password:      hashedPassword,
		DisplayName:   displayName,
		CalorieTarget: DefaultCalorieTarget,
		MacroProtein:  DefaultMacroProtein,
		MacroCarbs:    DefaultMacroCarbs,
		MacroFat:      DefaultMacroFat,
	}

	return config.DB.Create(&user).Error
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	if result.Error != nil {
		return "", errors.New("user not found")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	token, err := utils.GenerateJWT(user.Email)
	if err != nil {
		return "", err
	}

	return token, nil
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}
