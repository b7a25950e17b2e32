package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const nutritionixEndpoint = "https://trackapi.nutritionix.com/v2"

// Nutritionix attribute ids used by the instant-search response, which nests
// every nutrient in full_nutrients instead of exposing named fields.
const (
	attrCalories    = 208
	attrProtein     = 203
	attrCarbs       = 205
	attrFat         = 204
	attrFiber       = 291
	attrSugar       = 269
	attrSodium      = 307
	attrPotassium   = 306
	attrCholesterol = 601
)

// Nutrient is one full_nutrients entry, carried through untouched for
// detail-screen attribute lookups.
type Nutrient struct {
	AttrID int     `json:"attr_id"`
	Value  float64 `json:"value"`
}

type Photo struct {
	Thumb   string `json:"thumb"`
	Highres string `json:"highres"`
}

// NutritionInfo is the canonical shape for a food lookup result, independent
// of which upstream endpoint produced it.
type NutritionInfo struct {
	Name               string     `json:"name"`
	Calories           float64    `json:"calories"`
	ProteinG           float64    `json:"protein_g"`
	CarbsG             float64    `json:"carbs_g"`
	FatG               float64    `json:"fat_g"`
	FiberG             float64    `json:"fiber_g"`
	SugarG             float64    `json:"sugar_g"`
	SodiumMg           float64    `json:"sodium_mg"`
	PotassiumMg        float64    `json:"potassium_mg"`
	CholesterolMg      float64    `json:"cholesterol_mg"`
	ServingQty         float64    `json:"serving_qty"`
	ServingUnit        string     `json:"serving_unit"`
	ServingWeightGrams float64    `json:"serving_weight_grams"`
	FullNutrients      []Nutrient `json:"full_nutrients"`
	Photo              Photo      `json:"photo"`
}

type NutritionixService struct {
	appID, appKey string
	client        *http.Client
	baseURL       string
}

func NewNutritionixService() *NutritionixService {
	return &NutritionixService{
		appID:   os.Getenv("NUTRITIONIX_APP_ID"),
		appKey:  os.Getenv("NUTRITIONIX_API_KEY"),
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: nutritionixEndpoint,
	}
}

// instant-search shape: nutrients only inside full_nutrients
type instantFood struct {
	FoodName           string     `json:"food_name"`
	ServingQty         float64    `json:"serving_qty"`
	ServingUnit        string     `json:"serving_unit"`
	ServingWeightGrams float64    `json:"serving_weight_grams"`
	FullNutrients      []Nutrient `json:"full_nutrients"`
	Photo              *Photo     `json:"photo"`
}

type instantSearchResponse struct {
	Common []instantFood `json:"common"`
}

// natural-language-parse shape: flattened nf_* fields
type naturalFood struct {
	FoodName           string     `json:"food_name"`
	NfCalories         float64    `json:"nf_calories"`
	NfProtein          float64    `json:"nf_protein"`
	NfTotalCarbs       float64    `json:"nf_total_carbohydrate"`
	NfTotalFat         float64    `json:"nf_total_fat"`
	NfDietaryFiber     float64    `json:"nf_dietary_fiber"`
	NfSugars           float64    `json:"nf_sugars"`
	NfSodium           float64    `json:"nf_sodium"`
	NfPotassium        float64    `json:"nf_potassium"`
	NfCholesterol      float64    `json:"nf_cholesterol"`
	ServingQty         float64    `json:"serving_qty"`
	ServingUnit        string     `json:"serving_unit"`
	ServingWeightGrams float64    `json:"serving_weight_grams"`
	FullNutrients      []Nutrient `json:"full_nutrients"`
	Photo              *Photo     `json:"photo"`
}

type naturalResponse struct {
	Foods []naturalFood `json:"foods"`
}

func nutrientValue(nutrients []Nutrient, attrID int) float64 {
	for _, n := range nutrients {
		if n.AttrID == attrID {
			return n.Value
		}
	}
	return 0
}

func photoOrEmpty(p *Photo) Photo {
	if p == nil {
		return Photo{}
	}
	return *p
}

func normalizeInstant(item instantFood) NutritionInfo {
	return NutritionInfo{
		Name:               item.FoodName,
		Calories:           nutrientValue(item.FullNutrients, attrCalories),
		ProteinG:           nutrientValue(item.FullNutrients, attrProtein),
		CarbsG:             nutrientValue(item.FullNutrients, attrCarbs),
		FatG:               nutrientValue(item.FullNutrients, attrFat),
		FiberG:             nutrientValue(item.FullNutrients, attrFiber),
		SugarG:             nutrientValue(item.FullNutrients, attrSugar),
		SodiumMg:           nutrientValue(item.FullNutrients, attrSodium),
		PotassiumMg:        nutrientValue(item.FullNutrients, attrPotassium),
		CholesterolMg:      nutrientValue(item.FullNutrients, attrCholesterol),
		ServingQty:         item.ServingQty,
		ServingUnit:        item.ServingUnit,
		ServingWeightGrams: item.ServingWeightGrams,
		FullNutrients:      item.FullNutrients,
		Photo:              photoOrEmpty(item.Photo),
	}
}

func normalizeNatural(item naturalFood) NutritionInfo {
	return NutritionInfo{
		Name:               item.FoodName,
		Calories:           item.NfCalories,
		ProteinG:           item.NfProtein,
		CarbsG:             item.NfTotalCarbs,
		FatG:               item.NfTotalFat,
		FiberG:             item.NfDietaryFiber,
		SugarG:             item.NfSugars,
		SodiumMg:           item.NfSodium,
		PotassiumMg:        item.NfPotassium,
		CholesterolMg:      item.NfCholesterol,
		ServingQty:         item.ServingQty,
		ServingUnit:        item.ServingUnit,
		ServingWeightGrams: item.ServingWeightGrams,
		FullNutrients:      item.FullNutrients,
		Photo:              photoOrEmpty(item.Photo),
	}
}

func (s *NutritionixService) post(path string, query string) ([]byte, error) {
	payload := map[string]any{
		"query":          query,
		"detailed":       true,
		"full_nutrients": true,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal lookup payload: %w", err)
	}

	req, err := http.NewRequest("POST", s.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create lookup request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-app-id", s.appID)
	req.Header.Set("x-app-key", s.appKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call Nutritionix API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Nutritionix response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nutritionix API error %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// SearchFoods calls the instant/autocomplete endpoint and normalizes each
// common-food hit.
func (s *NutritionixService) SearchFoods(query string) ([]NutritionInfo, error) {
	body, err := s.post("/search/instant", query)
	if err != nil {
		return nil, err
	}

	var sr instantSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("failed to parse instant search JSON: %w", err)
	}

	results := make([]NutritionInfo, 0, len(sr.Common))
	for _, item := range sr.Common {
		results = append(results, normalizeInstant(item))
	}
	return results, nil
}

// NutritionFromText calls the natural-language endpoint ("2 eggs and toast")
// and normalizes each parsed food.
func (s *NutritionixService) NutritionFromText(text string) ([]NutritionInfo, error) {
	body, err := s.post("/natural/nutrients", text)
	if err != nil {
		return nil, err
	}

	var nr naturalResponse
	if err := json.Unmarshal(body, &nr); err != nil {
		return nil, fmt.Errorf("failed to parse natural nutrients JSON: %w", err)
	}

	results := make([]NutritionInfo, 0, len(nr.Foods))
	for _, item := range nr.Foods {
		results = append(results, normalizeNatural(item))
	}
	return results, nil
}
