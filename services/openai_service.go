package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/Eric-Devv/NutriScopeAI/models"
)

const (
	openAIEndpoint = "https://api.openai.com/v1"
	chatModel      = "gpt-4-turbo"
	visionModel    = "gpt-4-vision-preview"

	// FeedbackFallback is shown instead of an error whenever meal-history
	// analysis fails. The feedback feature is advisory and must never
	// surface a collaborator failure to the UI.
	FeedbackFallback = "Unable to analyze meal history at this time. Please try again later."
)

// ChatMessage mirrors the chat-completion message shape. Content is either a
// plain string or a []ContentPart mixing text and inline images.
type ChatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type ContentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

type ImageURL struct {
	URL string `json:"url"`
}

type OpenAIService struct {
	apiKey  string
	client  *http.Client
	baseURL string
}

func NewOpenAIService() *OpenAIService {
	return &OpenAIService{
		apiKey:  os.Getenv("OPENAI_API_KEY"),
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: openAIEndpoint,
	}
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends an ordered message sequence to the chat-completion endpoint
// and returns the first choice's text verbatim.
func (s *OpenAIService) Complete(model string, messages []ChatMessage) (string, error) {
	payload := map[string]any{
		"model":       model,
		"messages":    messages,
		"max_tokens":  1000,
		"temperature": 0.7,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat payload: %w", err)
	}

	req, err := http.NewRequest("POST", s.baseURL+"/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call OpenAI API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read OpenAI response: %w", err)
	}

	var cr chatCompletionResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", fmt.Errorf("failed to parse OpenAI JSON: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if cr.Error != nil && cr.Error.Message != "" {
			return "", fmt.Errorf("openai API error %d: %s", resp.StatusCode, cr.Error.Message)
		}
		return "", fmt.Errorf("openai API error %d: %s", resp.StatusCode, string(body))
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("openai response contained no choices")
	}
	return cr.Choices[0].Message.Content, nil
}

const assistantSystemPrompt = "You are a knowledgeable nutrition assistant designed to provide accurate, helpful nutrition and dietary advice. You can explain nutritional concepts, provide information about foods, suggest recipes, and give wellness tips. Always provide evidence-based information and clarify when there are multiple perspectives or ongoing research on a topic. Be conversational, friendly, and engaging. If asked about specific medical conditions, remind the user that you are not a medical professional and they should consult with their healthcare provider."

// ChatResponse runs a free-form assistant conversation: the fixed system
// instruction followed by the client-supplied history.
func (s *OpenAIService) ChatResponse(history []ChatMessage) (string, error) {
	messages := append([]ChatMessage{
		{Role: "system", Content: assistantSystemPrompt},
	}, history...)
	return s.Complete(chatModel, messages)
}

// AnalyzeImage sends a base64-encoded food image plus a prompt to the
// vision-capable model and returns its free-text description.
func (s *OpenAIService) AnalyzeImage(base64Image, prompt string) (string, error) {
	if prompt == "" {
		prompt = "Identify the food in this image and provide detailed nutritional information."
	}
	messages := []ChatMessage{
		{
			Role:    "system",
			Content: "You are a helpful nutrition assistant that can analyze food images and provide detailed information about the food items in the image, including nutritional value and health properties.",
		},
		{
			Role: "user",
			Content: []ContentPart{
				{
					Type:     "image_url",
					ImageURL: &ImageURL{URL: "data:image/jpeg;base64," + base64Image},
				},
				{
					Type: "text",
					Text: prompt,
				},
			},
		},
	}
	return s.Complete(visionModel, messages)
}

// AnalyzeMealHistory asks for feedback on the user's full meal history. Any
// failure (network, rate limit, malformed response) yields the canned
// fallback string instead of an error. Callers should short-circuit an empty
// history with a "need more data" message; an empty list passed here is
// forwarded as-is.
func (s *OpenAIService) AnalyzeMealHistory(meals []models.Meal) string {
	serialized, err := json.Marshal(meals)
	if err != nil {
		return FeedbackFallback
	}

	messages := []ChatMessage{
		{
			Role:    "system",
			Content: "You are a nutrition expert analyzing meal patterns and providing helpful feedback. Focus on constructive advice and positive reinforcement. Limit your response to 300 words.",
		},
		{
			Role:    "user",
			Content: fmt.Sprintf("Analyze this meal history and provide helpful feedback about patterns, nutritional balance, and suggestions for improvement: %s", serialized),
		},
	}

	feedback, err := s.Complete(chatModel, messages)
	if err != nil {
		return FeedbackFallback
	}
	return feedback
}

// foodLeadIn matches the lead-in phrases the vision model typically opens
// with, capturing the food-name phrase that follows.
var foodLeadIn = regexp.MustCompile(`(?i)(?:This appears to be|This is|I can see|The image shows|This looks like) ([\w\s]+)`)

// ExtractFoodName pulls a concise food-name phrase out of a free-text image
// description, for use as a lookup query. This is a best-effort hint, not a
// parse: when no lead-in matches it falls back to the text before the first
// sentence terminator.
func ExtractFoodName(analysis string) string {
	if m := foodLeadIn.FindStringSubmatch(analysis); m != nil {
		return strings.TrimSpace(m[1])
	}
	first, _, _ := strings.Cut(analysis, ".")
	return strings.TrimSpace(first)
}

// NutritionTip is one generated daily tip.
type NutritionTip struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
}

// fallbackTip is served whenever tip generation or parsing fails; a malformed
// LLM payload must not surface as an error for a decorative feature.
var fallbackTip = NutritionTip{
	Title:       "Stay Hydrated",
	Description: "Remember to drink enough water throughout the day. Proper hydration helps maintain energy levels, supports digestion, and can even help with weight management.",
	Category:    "Hydration",
	ImageURL:    "https://via.placeholder.com/300x200/4CAF50/FFFFFF?text=Hydration+Tip",
}

var tipJSON = regexp.MustCompile(`(?s)\{.*\}`)

// DailyTip generates a personalized tip from the user's resolved goal. The
// model is asked for a bare JSON object; the first {...} block is extracted
// from the reply since models occasionally wrap JSON in prose.
func (s *OpenAIService) DailyTip(goal Goal) NutritionTip {
	messages := []ChatMessage{
		{
			Role:    "system",
			Content: `You are a nutrition expert providing helpful, accurate, and personalized daily tips. Format your response as a JSON object with title, description, category, and imageUrl properties. The imageUrl should be a placeholder with the format "https://via.placeholder.com/300x200/4CAF50/FFFFFF?text=Nutrition+Tip" that will be replaced later.`,
		},
		{
			Role: "user",
			Content: fmt.Sprintf(`Generate a daily nutrition or wellness tip. Consider these dietary restrictions: %s and diet goals: %s. Return ONLY a JSON object with the following format:
{
  "title": "The tip title",
  "description": "Detailed description of the tip (100-150 words)",
  "category": "One of: Nutrition, Hydration, Exercise, Mindfulness, Sleep",
  "imageUrl": "https://via.placeholder.com/300x200/4CAF50/FFFFFF?text=Nutrition+Tip"
}`,
				strings.Join(goal.DietaryRestrictions, ", "),
				strings.Join(goal.DietGoals, ", ")),
		},
	}

	reply, err := s.Complete(chatModel, messages)
	if err != nil {
		return fallbackTip
	}

	raw := tipJSON.FindString(reply)
	if raw == "" {
		return fallbackTip
	}
	var tip NutritionTip
	if err := json.Unmarshal([]byte(raw), &tip); err != nil {
		return fallbackTip
	}
	return tip
}
