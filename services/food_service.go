package services

import "fmt"

// FoodService combines the nutrition lookup API with the vision collaborator
// for the search and scan flows.
type FoodService struct {
	lookup *NutritionixService
	ai     *OpenAIService
}

func NewFoodService(lookup *NutritionixService, ai *OpenAIService) *FoodService {
	return &FoodService{lookup: lookup, ai: ai}
}

// Search by name
func (s *FoodService) Search(query string) ([]NutritionInfo, error) {
	if query == "" {
		return nil, fmt.Errorf("query is required")
	}
	return s.lookup.SearchFoods(query)
}

// FromText parses a natural-language description ("2 eggs and toast")
func (s *FoodService) FromText(text string) ([]NutritionInfo, error) {
	if text == "" {
		return nil, fmt.Errorf("text is required")
	}
	return s.lookup.NutritionFromText(text)
}

// ScanResult couples the vision description with matching lookup results.
type ScanResult struct {
	Analysis string          `json:"analysis"`
	Query    string          `json:"query"`
	Results  []NutritionInfo `json:"results"`
}

// Scan identifies the food in an image via the vision collaborator, extracts
// a food-name hint from the description, and looks up matches for it. The
// extraction is heuristic; the description is returned alongside the results
// so the user can judge the match.
func (s *FoodService) Scan(base64Image, prompt string) (*ScanResult, error) {
	analysis, err := s.ai.AnalyzeImage(base64Image, prompt)
	if err != nil {
		return nil, err
	}

	query := ExtractFoodName(analysis)
	results, err := s.lookup.SearchFoods(query)
	if err != nil {
		return nil, err
	}

	return &ScanResult{
		Analysis: analysis,
		Query:    query,
		Results:  results,
	}, nil
}
