package transport

import "github.com/Skotchmaster/vinyl_shop/services/recommender/internal/extract"

// GenerateRequest covers both request shapes of the recommendation
// endpoint: a bare prompt, or a structured preferences form.
type GenerateRequest struct {
	Prompt           *string `json:"prompt,omitempty"`
	UserPreferences  string  `json:"user_preferences,omitempty"`
	// current_books is the field name the web client has sent since the
	// bookstore days, kept for compatibility.
	CurrentBooks       []uint   `json:"current_books,omitempty"`
	GenrePreferences   []string `json:"genre_preferences,omitempty"`
	MaxRecommendations int      `json:"max_recommendations,omitempty"`
	Model              string   `json:"model,omitempty"`
}

type SimpleResponse struct {
	Response string `json:"response"`
}

type GenerateResponse struct {
	Recommendations []extract.Recommendation `json:"recommendations"`
	Reasoning       string                   `json:"reasoning"`
	Confidence      float64                  `json:"confidence_score"`
}

type DescriptionResponse struct {
	ProductID            uint   `json:"product_id"`
	GeneratedDescription string `json:"generated_description"`
	Success              bool   `json:"success"`
	Message              string `json:"message"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Message          string        `json:"message"`
	History          []ChatMessage `json:"history,omitempty"`
	CurrentProductID *uint         `json:"current_product_id,omitempty"`
	Model            string        `json:"model,omitempty"`
}

type ChatResponse struct {
	Response string `json:"response"`
	Success  bool   `json:"success"`
}

type ModelsResponse struct {
	AvailableModels map[string]string `json:"available_models"`
	DefaultModel    string            `json:"default_model"`
}
