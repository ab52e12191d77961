package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Skotchmaster/vinyl_shop/pkg/catalogclient"
	"github.com/Skotchmaster/vinyl_shop/pkg/logging"
	"github.com/Skotchmaster/vinyl_shop/services/recommender/internal/extract"
	"github.com/Skotchmaster/vinyl_shop/services/recommender/internal/llm"
	"github.com/Skotchmaster/vinyl_shop/services/recommender/internal/transport"
)

var (
	ErrValidation     = errors.New("validation error")
	ErrCatalogTimeout = errors.New("catalog request timed out")
	ErrCatalogDown    = errors.New("catalog unavailable")
)

const (
	recommendationPromptID = "recommendation_prompt"
	descriptionPromptID    = "description_prompt"
	chatConsultantPromptID = "chat_consultant_prompt"

	simpleModel       = "openai/gpt-4o-mini"
	defaultConfidence = 0.5

	simpleSystemPrompt = "Ты - эксперт по виниловым пластинкам. У тебя есть доступ к каталогу пластинок:\n\n%s\n\nТвоя задача - помочь пользователю на основе его запроса."
	fullUserPrompt     = "Сгенерируй персонализированные рекомендации виниловых пластинок на основе предоставленной информации."
	chatFallbackPrompt = "Ты - консультант магазина виниловых пластинок. Помогай покупателям выбирать музыку на основе каталога."
)

// Models used for description generation, tried in order until one
// answers.
var descriptionModels = []string{
	"openai/gpt-4o-mini",
	"openai/gpt-4-turbo",
	"google/gemini-pro-1.5",
}

type LLM interface {
	Chat(ctx context.Context, model string, messages []llm.Message, temperature float64, maxTokens int) (string, error)
}

type Catalog interface {
	ListProducts(ctx context.Context) ([]catalogclient.Product, error)
	GetProduct(ctx context.Context, id uint) (*catalogclient.Product, error)
	UpdateDescription(ctx context.Context, id uint, description string) error
}

type Prompts interface {
	GetTemplate(ctx context.Context, id string) (string, error)
}

// RecommenderService builds LLM prompts from the catalog and prompt
// templates and turns model output into structured responses.
type RecommenderService struct {
	LLM     LLM
	Catalog Catalog
	Prompts Prompts
}

// GenerateSimple answers a free-form prompt with the catalog as context.
func (s *RecommenderService) GenerateSimple(ctx context.Context, prompt, model string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("%w: prompt must not be empty", ErrValidation)
	}

	messages := []llm.Message{
		{Role: "system", Content: fmt.Sprintf(simpleSystemPrompt, s.catalogListing(ctx, 200))},
		{Role: "user", Content: prompt},
	}

	modelID := simpleModel
	if model != "" {
		modelID = llm.Resolve(model)
	}
	return s.LLM.Chat(ctx, modelID, messages, 0.7, 2000)
}

// Generate produces structured recommendations from user preferences.
func (s *RecommenderService) Generate(ctx context.Context, req transport.GenerateRequest) (transport.GenerateResponse, error) {
	log := logging.FromContext(ctx)

	template, err := s.Prompts.GetTemplate(ctx, recommendationPromptID)
	if err != nil {
		return transport.GenerateResponse{}, err
	}

	products, err := s.Catalog.ListProducts(ctx)
	if err != nil {
		log.Warn("catalog_unavailable", "error", err.Error())
		products = nil
	}

	system := template +
		"\n\nКаталог пластинок:\n" + listing(products, 200) +
		"\n\n" + preferencesBlock(req)

	messages := []llm.Message{
		{Role: "system", Content: system},
		{Role: "user", Content: fullUserPrompt},
	}

	text, err := s.LLM.Chat(ctx, llm.Resolve(req.Model), messages, 0.7, 1500)
	if err != nil {
		return transport.GenerateResponse{}, err
	}
	return parseRecommendations(text, products), nil
}

// GenerateDescription writes a marketing description for one product and
// saves it back to the catalog.
func (s *RecommenderService) GenerateDescription(ctx context.Context, productID uint) (transport.DescriptionResponse, error) {
	log := logging.FromContext(ctx)

	product, err := s.Catalog.GetProduct(ctx, productID)
	if err != nil {
		return transport.DescriptionResponse{}, classifyCatalogErr(err)
	}

	template, err := s.Prompts.GetTemplate(ctx, descriptionPromptID)
	if err != nil {
		return transport.DescriptionResponse{}, err
	}

	system := template + "\n\nПластинка:\n" + productDetails(*product, 0)
	messages := []llm.Message{
		{Role: "system", Content: system},
		{Role: "user", Content: fmt.Sprintf("Напиши описание для пластинки \"%s\" исполнителя %s.", product.Name, product.Artist)},
	}

	var text string
	var lastErr error
	for _, model := range descriptionModels {
		text, lastErr = s.LLM.Chat(ctx, model, messages, 0.7, 1500)
		if lastErr == nil {
			break
		}
		log.Warn("description_model_failed", "model", model, "error", lastErr.Error())
	}
	if lastErr != nil {
		return transport.DescriptionResponse{}, fmt.Errorf("generate description: %w", lastErr)
	}

	description := extract.CleanMarkdown(text)

	if err := s.Catalog.UpdateDescription(ctx, productID, description); err != nil {
		log.Warn("description_save_failed", "product_id", productID, "error", err.Error())
	}

	return transport.DescriptionResponse{
		ProductID:            productID,
		GeneratedDescription: description,
		Success:              true,
		Message:              fmt.Sprintf("Описание для пластинки '%s' успешно сгенерировано и обновлено", product.Name),
	}, nil
}

// Chat answers a consultant-style dialogue message.
func (s *RecommenderService) Chat(ctx context.Context, req transport.ChatRequest) (string, error) {
	log := logging.FromContext(ctx)

	if strings.TrimSpace(req.Message) == "" {
		return "", fmt.Errorf("%w: message must not be empty", ErrValidation)
	}
	for _, m := range req.History {
		if m.Role != "user" && m.Role != "assistant" {
			return "", fmt.Errorf("%w: history role must be user or assistant", ErrValidation)
		}
	}

	template, err := s.Prompts.GetTemplate(ctx, chatConsultantPromptID)
	if err != nil {
		log.Warn("chat_prompt_unavailable", "error", err.Error())
		template = chatFallbackPrompt
	}

	system := template + "\n\nКаталог пластинок:\n" + s.catalogListing(ctx, 150)

	if req.CurrentProductID != nil {
		if product, err := s.Catalog.GetProduct(ctx, *req.CurrentProductID); err == nil {
			system += "\n\nПокупатель сейчас смотрит на эту пластинку:\n" + productDetails(*product, 200)
		} else {
			log.Warn("current_product_unavailable", "product_id", *req.CurrentProductID, "error", err.Error())
		}
	}

	history := req.History
	if len(history) > 10 {
		history = history[len(history)-10:]
	}

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: "system", Content: system})
	for _, m := range history {
		messages = append(messages, llm.Message{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, llm.Message{Role: "user", Content: req.Message})

	text, err := s.LLM.Chat(ctx, llm.Resolve(req.Model), messages, 0.7, 1500)
	if err != nil {
		return "", err
	}
	return extract.CleanMarkdown(text), nil
}

// Models lists the model aliases clients may pass.
func (s *RecommenderService) Models() transport.ModelsResponse {
	return transport.ModelsResponse{
		AvailableModels: llm.Aliases,
		DefaultModel:    llm.DefaultAlias,
	}
}

func (s *RecommenderService) catalogListing(ctx context.Context, descLimit int) string {
	products, err := s.Catalog.ListProducts(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn("catalog_unavailable", "error", err.Error())
		return "Каталог временно недоступен."
	}
	return listing(products, descLimit)
}

func listing(products []catalogclient.Product, descLimit int) string {
	if len(products) == 0 {
		return "Каталог пуст."
	}
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("ID: %d | Название: %s | Исполнитель: %s | Описание: %s... | Цена: %s₽",
			p.ID, p.Name, p.Artist, truncateRunes(p.Description, descLimit), formatPrice(p.Price)))
	}
	return strings.Join(lines, "\n")
}

func productDetails(p catalogclient.Product, descLimit int) string {
	desc := p.Description
	if descLimit > 0 {
		desc = truncateRunes(desc, descLimit)
	}
	return fmt.Sprintf("Название: %s\nИсполнитель: %s\nЦена: %s₽\nОписание: %s",
		p.Name, p.Artist, formatPrice(p.Price), desc)
}

func preferencesBlock(req transport.GenerateRequest) string {
	var b strings.Builder
	b.WriteString("Информация о пользователе:\n")
	if req.UserPreferences != "" {
		b.WriteString("Предпочтения: " + req.UserPreferences + "\n")
	}
	if len(req.CurrentBooks) > 0 {
		ids := make([]string, 0, len(req.CurrentBooks))
		for _, id := range req.CurrentBooks {
			ids = append(ids, strconv.FormatUint(uint64(id), 10))
		}
		b.WriteString("Уже есть в коллекции (ID): " + strings.Join(ids, ", ") + "\n")
	}
	if len(req.GenrePreferences) > 0 {
		b.WriteString("Любимые жанры: " + strings.Join(req.GenrePreferences, ", ") + "\n")
	}
	max := req.MaxRecommendations
	if max <= 0 {
		max = 5
	}
	b.WriteString(fmt.Sprintf("Максимум рекомендаций: %d", max))
	return b.String()
}

// rawRecommendation mirrors the JSON shape the recommendation template
// demands from the model: per-item id/name/artist (author is the
// backwards-compatible alias) and a top-level confidence_score.
type rawRecommendation struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Artist     string  `json:"artist"`
	Author     string  `json:"author"`
	Reason     string  `json:"reason"`
	MatchScore float64 `json:"match_score"`
}

type rawResponse struct {
	Recommendations []rawRecommendation `json:"recommendations"`
	Reasoning       string              `json:"reasoning"`
	Confidence      float64             `json:"confidence_score"`
}

// parseRecommendations tries the JSON block first and falls back to text
// extraction when the model answered in prose.
func parseRecommendations(text string, products []catalogclient.Product) transport.GenerateResponse {
	byID := make(map[uint]catalogclient.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	parsed, ok := parseJSONBlock(text)
	if !ok {
		recs := extract.Recommendations(text, products)
		return transport.GenerateResponse{
			Recommendations: nonNil(recs),
			Reasoning:       extract.CleanMarkdown(text),
			Confidence:      extract.Confidence(text, defaultConfidence),
		}
	}

	recs := make([]extract.Recommendation, 0, len(parsed.Recommendations))
	for _, r := range parsed.Recommendations {
		p, known := byID[r.ID]
		if !known {
			// The model sometimes names a record without its id.
			p, known = findByName(products, r.Name)
		}
		if !known {
			continue
		}
		title := strings.TrimSpace(r.Name)
		if title == "" {
			title = p.Name
		}
		artist := strings.TrimSpace(r.Artist)
		if artist == "" {
			artist = strings.TrimSpace(r.Author)
		}
		if artist == "" {
			artist = p.Artist
		}
		reason := strings.TrimSpace(r.Reason)
		if reason == "" {
			reason = extract.DefaultReason
		}
		score := r.MatchScore
		if score == 0 {
			score = extract.DefaultMatchScore
		}
		recs = append(recs, extract.Recommendation{
			VinylID:    p.ID,
			Title:      title,
			Artist:     artist,
			Reason:     reason,
			MatchScore: extract.Clamp01(score),
		})
	}

	reasoning := extract.CleanMarkdown(parsed.Reasoning)

	// Valid JSON with no usable recommendations still gets the text
	// extractor, first on the reasoning and then on the whole reply.
	if len(recs) == 0 {
		recs = extract.Recommendations(parsed.Reasoning, products)
		if len(recs) == 0 {
			recs = extract.Recommendations(text, products)
		}
	}

	confidence := parsed.Confidence
	if confidence == 0 {
		confidence = defaultConfidence
	}

	return transport.GenerateResponse{
		Recommendations: nonNil(recs),
		Reasoning:       reasoning,
		Confidence:      extract.Clamp01(confidence),
	}
}

func findByName(products []catalogclient.Product, name string) (catalogclient.Product, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return catalogclient.Product{}, false
	}
	for _, p := range products {
		if strings.ToLower(p.Name) == name {
			return p, true
		}
	}
	return catalogclient.Product{}, false
}

func parseJSONBlock(text string) (rawResponse, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return rawResponse{}, false
	}
	var parsed rawResponse
	if err := json.Unmarshal([]byte(text[start:end+1]), &parsed); err != nil {
		return rawResponse{}, false
	}
	return parsed, true
}

func nonNil(recs []extract.Recommendation) []extract.Recommendation {
	if recs == nil {
		return []extract.Recommendation{}
	}
	return recs
}

func classifyCatalogErr(err error) error {
	if errors.Is(err, catalogclient.ErrNotFound) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrCatalogTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrCatalogTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrCatalogDown, err)
}

func truncateRunes(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
