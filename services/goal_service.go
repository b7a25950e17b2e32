package services

import (
	"strings"

	"github.com/Eric-Devv/NutriScopeAI/models"
)

// Defaults applied wherever a user has not configured targets. The calorie
// default also covers stored targets of zero or less, which would otherwise
// poison the percentage math.
const (
	DefaultCalorieTarget = 2000
	DefaultMacroProtein  = 25
	DefaultMacroCarbs    = 50
	DefaultMacroFat      = 25
)

// MacroTargets are percentage targets per macro. They are not required to sum
// to 100 and consumers must not assume they do.
type MacroTargets struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// Goal is the fully-defaulted view of a user's preferences: every field is
// populated even when the profile is missing or partially filled.
type Goal struct {
	CalorieTarget       float64      `json:"calorie_target"`
	MacroTargets        MacroTargets `json:"macro_targets"`
	DietGoals           []string     `json:"diet_goals"`
	DietaryRestrictions []string     `json:"dietary_restrictions"`
}

// ResolveGoal merges a user's stored preferences with defaults. Pure, no I/O,
// and safe to call with a nil user.
func ResolveGoal(user *models.User) Goal {
	goal := Goal{
		CalorieTarget: DefaultCalorieTarget,
		MacroTargets: MacroTargets{
			Protein: DefaultMacroProtein,
			Carbs:   DefaultMacroCarbs,
			Fat:     DefaultMacroFat,
		},
		DietGoals:           []string{},
		DietaryRestrictions: []string{},
	}
	if user == nil {
		return goal
	}

	if user.CalorieTarget > 0 {
		goal.CalorieTarget = user.CalorieTarget
	}
	// Macro targets are stored as a unit; any configured value means the
	// stored set wins over the defaults.
	if user.MacroProtein > 0 || user.MacroCarbs > 0 || user.MacroFat > 0 {
		goal.MacroTargets = MacroTargets{
			Protein: user.MacroProtein,
			Carbs:   user.MacroCarbs,
			Fat:     user.MacroFat,
		}
	}
	goal.DietGoals = splitTags(user.DietGoals)
	goal.DietaryRestrictions = splitTags(user.DietaryRestrictions)
	return goal
}

func splitTags(csv string) []string {
	tags := []string{}
	for _, t := range strings.Split(csv, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
