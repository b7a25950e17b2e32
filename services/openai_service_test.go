package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Eric-Devv/NutriScopeAI/models"
)

func newTestOpenAI(srv *httptest.Server) *OpenAIService {
	return &OpenAIService{
		apiKey:  "test-key",
		client:  &http.Client{Timeout: 2 * time.Second},
		baseURL: srv.URL,
	}
}

// chatReply builds a minimal chat-completion response body around content.
func chatReply(t *testing.T, content string) []byte {
	t.Helper()
	b, err := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestComplete_ReturnsFirstChoice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		var payload struct {
			Model    string `json:"model"`
			Messages []struct {
				Role string `json:"role"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("bad request payload: %v", err)
		}
		if payload.Model != chatModel {
			t.Errorf("model = %q, want %q", payload.Model, chatModel)
		}
		w.Write(chatReply(t, "Eat more fiber."))
	}))
	defer srv.Close()

	got, err := newTestOpenAI(srv).Complete(chatModel, []ChatMessage{
		{Role: "user", Content: "any advice?"},
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != "Eat more fiber." {
		t.Errorf("content = %q", got)
	}
}

func TestComplete_SurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "rate limit reached"}}`))
	}))
	defer srv.Close()

	_, err := newTestOpenAI(srv).Complete(chatModel, nil)
	if err == nil {
		t.Fatal("expected an error for a 429 response")
	}
}

func TestChatResponse_PrependsSystemInstruction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("bad request payload: %v", err)
		}
		if len(payload.Messages) != 2 {
			t.Fatalf("got %d messages, want 2", len(payload.Messages))
		}
		if payload.Messages[0].Role != "system" {
			t.Errorf("first message role = %q, want system", payload.Messages[0].Role)
		}
		if payload.Messages[1].Content != "hi there" {
			t.Errorf("history not forwarded: %q", payload.Messages[1].Content)
		}
		w.Write(chatReply(t, "Hello! How can I help with your nutrition goals?"))
	}))
	defer srv.Close()

	got, err := newTestOpenAI(srv).ChatResponse([]ChatMessage{
		{Role: "user", Content: "hi there"},
	})
	if err != nil {
		t.Fatalf("ChatResponse: %v", err)
	}
	if got == "" {
		t.Error("empty assistant reply")
	}
}

func TestAnalyzeMealHistory_FallsBackOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "model overloaded"}}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	got := newTestOpenAI(srv).AnalyzeMealHistory([]models.Meal{{Name: "oatmeal", Calories: 300}})
	if got != FeedbackFallback {
		t.Errorf("on failure AnalyzeMealHistory = %q, want the exact fallback %q", got, FeedbackFallback)
	}
}

func TestAnalyzeMealHistory_UnreachableServerFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	got := newTestOpenAI(srv).AnalyzeMealHistory(nil)
	if got != FeedbackFallback {
		t.Errorf("got %q, want %q", got, FeedbackFallback)
	}
}

func TestAnalyzeMealHistory_ReturnsModelFeedback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(chatReply(t, "Your protein intake looks solid; consider adding more vegetables."))
	}))
	defer srv.Close()

	got := newTestOpenAI(srv).AnalyzeMealHistory([]models.Meal{{Name: "chicken salad"}})
	if got != "Your protein intake looks solid; consider adding more vegetables." {
		t.Errorf("feedback = %q", got)
	}
}

func TestExtractFoodName(t *testing.T) {
	cases := []struct {
		name     string
		analysis string
		want     string
	}{
		{"this appears to be", "This appears to be grilled salmon. It is rich in omega-3.", "grilled salmon"},
		{"this is", "This is a Caesar salad with croutons and parmesan.", "a Caesar salad with croutons and parmesan"},
		{"i can see", "I can see pepperoni pizza. The crust looks thin.", "pepperoni pizza"},
		{"the image shows", "The image shows scrambled eggs. They contain roughly 140 calories.", "scrambled eggs"},
		{"this looks like", "This looks like beef stew. A hearty dish.", "beef stew"},
		{"case insensitive", "this appears to be chicken curry. Spicy and flavorful.", "chicken curry"},
		{"no lead-in falls back to first sentence", "A bowl of ramen with pork belly. Noodles are fresh.", "A bowl of ramen with pork belly"},
		{"no lead-in no period", "sushi platter", "sushi platter"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractFoodName(tc.analysis); got != tc.want {
				t.Errorf("ExtractFoodName(%q) = %q, want %q", tc.analysis, got, tc.want)
			}
		})
	}
}

func TestDailyTip_ParsesJSONWrappedInProse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(chatReply(t, `Sure, here is your tip:
{
  "title": "Start With Protein",
  "description": "Front-load your protein at breakfast to stay full longer.",
  "category": "Nutrition",
  "imageUrl": "https://via.placeholder.com/300x200/4CAF50/FFFFFF?text=Nutrition+Tip"
}
Hope that helps!`))
	}))
	defer srv.Close()

	tip := newTestOpenAI(srv).DailyTip(ResolveGoal(nil))
	if tip.Title != "Start With Protein" {
		t.Errorf("Title = %q", tip.Title)
	}
	if tip.Category != "Nutrition" {
		t.Errorf("Category = %q", tip.Category)
	}
}

func TestDailyTip_FallsBackOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "boom"}}`, http.StatusBadGateway)
	}))
	defer srv.Close()

	tip := newTestOpenAI(srv).DailyTip(ResolveGoal(nil))
	if tip != fallbackTip {
		t.Errorf("tip = %+v, want the hydration fallback", tip)
	}
}

func TestDailyTip_FallsBackOnMalformedReply(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"no JSON at all", "Drink water and sleep well!"},
		{"broken JSON", `{"title": "Oops", "description": `},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write(chatReply(t, tc.content))
			}))
			defer srv.Close()

			tip := newTestOpenAI(srv).DailyTip(ResolveGoal(nil))
			if tip != fallbackTip {
				t.Errorf("tip = %+v, want the hydration fallback", tip)
			}
		})
	}
}
