package services

import (
	"log"
	"math"
	"time"

	"github.com/Eric-Devv/NutriScopeAI/models"
)

const dateKeyLayout = "2006-01-02"

// DateKey truncates a timestamp to its calendar date in loc. Meals logged
// late at night must land on the user-perceived day, so bucketing always
// happens in the caller's timezone, never UTC.
func DateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dateKeyLayout)
}

// BucketMealsByDate groups meals by local calendar date, preserving the input
// order inside each bucket (upstream queries return newest-first). A meal
// without a timestamp cannot be bucketed; it is logged and skipped, never an
// error. Every kept meal lands in exactly one bucket.
func BucketMealsByDate(meals []models.Meal, loc *time.Location) map[string][]models.Meal {
	buckets := make(map[string][]models.Meal)
	for _, m := range meals {
		if m.LoggedAt.IsZero() {
			log.Printf("skipping meal %d with no timestamp", m.ID)
			continue
		}
		key := DateKey(m.LoggedAt, loc)
		buckets[key] = append(buckets[key], m)
	}
	return buckets
}

// DailyStats holds the aggregate nutrient totals for one diary day.
type DailyStats struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// ComputeDailyStats sums the four tracked fields across a day's meals.
// Malformed values (NaN/Inf from a bad upstream payload) count as zero so
// they cannot poison the totals.
func ComputeDailyStats(meals []models.Meal) DailyStats {
	var stats DailyStats
	for _, m := range meals {
		stats.Calories += num(m.Calories)
		stats.ProteinG += num(m.ProteinG)
		stats.CarbsG += num(m.CarbsG)
		stats.FatG += num(m.FatG)
	}
	return stats
}

func num(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// CaloriePercentage returns consumed calories as a percentage of the target,
// clamped to [0, 100]. A target of zero or less falls back to the default
// rather than dividing by zero.
func CaloriePercentage(calories, target float64) float64 {
	if target <= 0 {
		target = DefaultCalorieTarget
	}
	pct := calories / target * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// MacroPercentage returns part's share of total as a percentage, with an
// explicit zero-guard: an empty or all-zero day yields 0, not NaN.
func MacroPercentage(part, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return part / total * 100
}

// FilterMeal returns meals without the given id. Deletes are applied
// optimistically against the in-memory list; filtering an id that is not
// present leaves the list unchanged.
func FilterMeal(meals []models.Meal, id uint) []models.Meal {
	out := make([]models.Meal, 0, len(meals))
	for _, m := range meals {
		if m.ID != id {
			out = append(out, m)
		}
	}
	return out
}

// DailySummary is the view model for one selected diary date.
type DailySummary struct {
	Date              string        `json:"date"`
	Meals             []models.Meal `json:"meals"`
	Stats             DailyStats    `json:"stats"`
	CaloriePercentage float64       `json:"calorie_percentage"`
	ProteinPercentage float64       `json:"protein_percentage"`
	CarbsPercentage   float64       `json:"carbs_percentage"`
	FatPercentage     float64       `json:"fat_percentage"`
}

// Summarize builds the summary for one date from a raw meal list and a
// resolved goal. It recomputes everything from the full list each call, so
// changing the selected date is deterministic for the same input. A date with
// no meals yields all zeros, never an error.
func Summarize(meals []models.Meal, date time.Time, loc *time.Location, goal Goal) DailySummary {
	key := DateKey(date, loc)
	dayMeals := BucketMealsByDate(meals, loc)[key]
	if dayMeals == nil {
		dayMeals = []models.Meal{}
	}

	stats := ComputeDailyStats(dayMeals)
	totalMacros := stats.ProteinG + stats.CarbsG + stats.FatG

	return DailySummary{
		Date:              key,
		Meals:             dayMeals,
		Stats:             stats,
		CaloriePercentage: CaloriePercentage(stats.Calories, goal.CalorieTarget),
		ProteinPercentage: MacroPercentage(stats.ProteinG, totalMacros),
		CarbsPercentage:   MacroPercentage(stats.CarbsG, totalMacros),
		FatPercentage:     MacroPercentage(stats.FatG, totalMacros),
	}
}

// DiaryService composes the meal store, the goal resolver and the pure
// aggregation above into the diary view model.
type DiaryService struct {
	meals *MealService
}

func NewDiaryService(ms *MealService) *DiaryService {
	return &DiaryService{meals: ms}
}

// Diary is the full response for the diary screen: all buckets in range plus
// the summary for the selected date.
type Diary struct {
	Days     map[string][]models.Meal `json:"days"`
	Selected DailySummary             `json:"selected"`
}

func (s *DiaryService) GetDiary(user *models.User, days int, date time.Time, loc *time.Location) (*Diary, error) {
	if days <= 0 {
		days = 30
	}
	meals, err := s.meals.ListMeals(user.ID, days)
	if err != nil {
		return nil, err
	}
	goal := ResolveGoal(user)
	return &Diary{
		Days:     BucketMealsByDate(meals, loc),
		Selected: Summarize(meals, date, loc, goal),
	}, nil
}
