package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestNutritionix(srv *httptest.Server) *NutritionixService {
	return &NutritionixService{
		appID:   "test-id",
		appKey:  "test-key",
		client:  &http.Client{Timeout: 2 * time.Second},
		baseURL: srv.URL,
	}
}

func TestNormalizeInstant_LooksUpAttrIDs(t *testing.T) {
	item := instantFood{
		FoodName:           "cheddar cheese",
		ServingQty:         1,
		ServingUnit:        "slice",
		ServingWeightGrams: 28,
		FullNutrients: []Nutrient{
			{AttrID: attrCalories, Value: 113},
			{AttrID: attrProtein, Value: 7},
			{AttrID: attrCarbs, Value: 0.4},
			{AttrID: attrFat, Value: 9.3},
			// no sodium (307) entry on purpose
		},
		Photo: &Photo{Thumb: "https://example.com/t.jpg", Highres: "https://example.com/h.jpg"},
	}

	info := normalizeInstant(item)

	if info.Calories != 113 || info.ProteinG != 7 || info.CarbsG != 0.4 || info.FatG != 9.3 {
		t.Errorf("macro mapping wrong: %+v", info)
	}
	if info.SodiumMg != 0 {
		t.Errorf("missing attr 307 must default sodium to 0, got %v", info.SodiumMg)
	}
	if len(info.FullNutrients) != len(item.FullNutrients) {
		t.Errorf("full_nutrients must pass through untouched, got %d entries", len(info.FullNutrients))
	}
	if info.Photo.Thumb != "https://example.com/t.jpg" {
		t.Errorf("photo thumb = %q", info.Photo.Thumb)
	}
}

func TestNormalizeInstant_AbsentPhoto(t *testing.T) {
	info := normalizeInstant(instantFood{FoodName: "water"})
	if info.Photo != (Photo{}) {
		t.Errorf("absent photo must yield empty Photo, got %+v", info.Photo)
	}
}

func TestNormalizeNatural_ReadsFlattenedFields(t *testing.T) {
	item := naturalFood{
		FoodName:           "2 eggs",
		NfCalories:         143,
		NfProtein:          12.6,
		NfTotalCarbs:       0.7,
		NfTotalFat:         9.5,
		NfSodium:           142,
		ServingQty:         2,
		ServingUnit:        "large",
		ServingWeightGrams: 100,
		FullNutrients:      []Nutrient{{AttrID: attrCalories, Value: 143}},
	}

	info := normalizeNatural(item)

	if info.Name != "2 eggs" || info.Calories != 143 || info.ProteinG != 12.6 || info.SodiumMg != 142 {
		t.Errorf("natural mapping wrong: %+v", info)
	}
	// fields absent upstream stay zero
	if info.PotassiumMg != 0 || info.CholesterolMg != 0 {
		t.Errorf("absent nf_ fields must be 0, got %+v", info)
	}
	if len(info.FullNutrients) != 1 {
		t.Errorf("full_nutrients must pass through, got %v", info.FullNutrients)
	}
}

func TestSearchFoods_NormalizesCommonHits(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/instant" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("x-app-id") != "test-id" || r.Header.Get("x-app-key") != "test-key" {
			t.Error("missing app credentials headers")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"common": [
				{
					"food_name": "apple",
					"serving_qty": 1,
					"serving_unit": "medium",
					"serving_weight_grams": 182,
					"full_nutrients": [
						{"attr_id": 208, "value": 95},
						{"attr_id": 203, "value": 0.5}
					],
					"photo": {"thumb": "https://example.com/apple.jpg"}
				}
			]
		}`))
	}))
	defer srv.Close()

	results, err := newTestNutritionix(srv).SearchFoods("apple")
	if err != nil {
		t.Fatalf("SearchFoods: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Name != "apple" || results[0].Calories != 95 || results[0].ProteinG != 0.5 {
		t.Errorf("unexpected result: %+v", results[0])
	}
	if results[0].CarbsG != 0 {
		t.Errorf("missing carbs attr must default to 0, got %v", results[0].CarbsG)
	}
}

func TestSearchFoods_Non2xxSurfacesAsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "usage limits exceeded"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestNutritionix(srv).SearchFoods("apple")
	if err == nil {
		t.Fatal("expected an error for a non-2xx response")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("error should carry the status code, got %v", err)
	}
}

func TestNutritionFromText_ParsesFoods(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/natural/nutrients" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"foods": [
				{"food_name": "toast", "nf_calories": 75, "nf_total_carbohydrate": 13}
			]
		}`))
	}))
	defer srv.Close()

	results, err := newTestNutritionix(srv).NutritionFromText("a slice of toast")
	if err != nil {
		t.Fatalf("NutritionFromText: %v", err)
	}
	if len(results) != 1 || results[0].Calories != 75 || results[0].CarbsG != 13 {
		t.Errorf("unexpected results: %+v", results)
	}
}
