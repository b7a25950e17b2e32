package services

import (
	"reflect"
	"testing"

	"github.com/Eric-Devv/NutriScopeAI/models"
)

func TestResolveGoal_NilUserReturnsDefaults(t *testing.T) {
	goal := ResolveGoal(nil)

	if goal.CalorieTarget != 2000 {
		t.Errorf("CalorieTarget = %v, want 2000", goal.CalorieTarget)
	}
	want := MacroTargets{Protein: 25, Carbs: 50, Fat: 25}
	if goal.MacroTargets != want {
		t.Errorf("MacroTargets = %+v, want %+v", goal.MacroTargets, want)
	}
	if goal.DietGoals == nil || len(goal.DietGoals) != 0 {
		t.Errorf("DietGoals = %v, want empty set", goal.DietGoals)
	}
	if goal.DietaryRestrictions == nil || len(goal.DietaryRestrictions) != 0 {
		t.Errorf("DietaryRestrictions = %v, want empty set", goal.DietaryRestrictions)
	}
}

func TestResolveGoal_CalorieTarget(t *testing.T) {
	cases := []struct {
		name   string
		stored float64
		want   float64
	}{
		{"positive stored target wins", 1800, 1800},
		{"zero falls back to default", 0, 2000},
		{"negative falls back to default", -500, 2000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			goal := ResolveGoal(&models.User{CalorieTarget: tc.stored})
			if goal.CalorieTarget != tc.want {
				t.Errorf("CalorieTarget = %v, want %v", goal.CalorieTarget, tc.want)
			}
		})
	}
}

func TestResolveGoal_MacroTargets(t *testing.T) {
	t.Run("unset macros default to 25/50/25", func(t *testing.T) {
		goal := ResolveGoal(&models.User{})
		want := MacroTargets{Protein: 25, Carbs: 50, Fat: 25}
		if goal.MacroTargets != want {
			t.Errorf("MacroTargets = %+v, want %+v", goal.MacroTargets, want)
		}
	})

	t.Run("stored set wins as a unit, even when partial", func(t *testing.T) {
		goal := ResolveGoal(&models.User{MacroProtein: 30, MacroCarbs: 45, MacroFat: 20})
		want := MacroTargets{Protein: 30, Carbs: 45, Fat: 20}
		if goal.MacroTargets != want {
			t.Errorf("MacroTargets = %+v, want %+v", goal.MacroTargets, want)
		}
	})
}

func TestResolveGoal_SplitsTags(t *testing.T) {
	goal := ResolveGoal(&models.User{
		DietGoals:           "Weight Loss, Muscle Gain",
		DietaryRestrictions: "Vegan,, Gluten-Free ",
	})

	if want := []string{"Weight Loss", "Muscle Gain"}; !reflect.DeepEqual(goal.DietGoals, want) {
		t.Errorf("DietGoals = %v, want %v", goal.DietGoals, want)
	}
	if want := []string{"Vegan", "Gluten-Free"}; !reflect.DeepEqual(goal.DietaryRestrictions, want) {
		t.Errorf("DietaryRestrictions = %v, want %v", goal.DietaryRestrictions, want)
	}
}
