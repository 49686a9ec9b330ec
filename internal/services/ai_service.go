package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"boystrip/internal/models/request_models"
	"boystrip/internal/models/response_models"
	"boystrip/pkg/logger"
	"boystrip/pkg/utils"
)

const improveSystemPrompt = `You are a helpful writing assistant helping someone improve their profile text.
Keep the tone friendly, authentic, and personal. The text should sound like it was written by the person themselves, not by an AI.
Only return the improved text, no explanations or quotes around it.`

const quoteSystemPrompt = `You are a quote curator helping someone find the perfect quote for their profile.
Return a single quote that matches their preferences. Include the attribution (author name) after the quote.
Format: "Quote text here" - Author Name
If you create an original quote, attribute it as "- Unknown" or make it feel like a timeless saying.
Only return the quote with attribution, nothing else.`

const itinerarySystemPrompt = `You plan group trips. Return ONLY a JSON array, no other text or formatting.`

var fieldContext = map[string]string{
	"shortTermGoal": "This is their short-term goal (typically for this year).",
	"longTermGoal":  "This is their long-term goal (5-10 year vision).",
	"funFact1":      "This is a fun fact about them.",
	"funFact2":      "This is a fun fact about them.",
	"funFact3":      "This is a fun fact about them.",
	"favoriteQuote": "This is their favorite quote.",
}

var improveInstructions = map[string]string{
	"expand":  "Take this text and expand it with more detail while keeping the same voice and meaning. Make it richer and more descriptive, but keep it authentic and personal. Don't make it too long - just add helpful details.",
	"rewrite": "Rewrite this text in a fresh, engaging way while preserving the core message. Make it sound natural and authentic, like the person naturally speaks.",
	"shorten": "Condense this text to be more concise while keeping the essential meaning. Make every word count, but keep the personal voice.",
}

type AIServiceInterface interface {
	ImproveText(ctx context.Context, req request_models.ImproveTextRequest) (*response_models.ImproveTextResponse, error)
	GenerateQuote(ctx context.Context, req request_models.GenerateQuoteRequest) (*response_models.QuoteResponse, error)
	GenerateItinerary(ctx context.Context) (*response_models.GenerateItineraryResponse, error)
}

type AIService struct {
	generator utils.TextGenerator
	itinerary ItineraryServiceInterface
	trip      TripSettings
}

func NewAIService(generator utils.TextGenerator, itinerary ItineraryServiceInterface, trip TripSettings) AIServiceInterface {
	return &AIService{generator: generator, itinerary: itinerary, trip: trip}
}

func (s *AIService) ImproveText(ctx context.Context, req request_models.ImproveTextRequest) (*response_models.ImproveTextResponse, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, invalid(utils.ErrInvalidInput, "text is required")
	}

	var instruction string
	switch req.Action {
	case "custom":
		if strings.TrimSpace(req.CustomPrompt) == "" {
			return nil, invalid(utils.ErrInvalidInput, "customPrompt is required for the custom action")
		}
		instruction = req.CustomPrompt
	default:
		var ok bool
		if instruction, ok = improveInstructions[req.Action]; !ok {
			return nil, invalid(utils.ErrUnknownAIAction, "%q", req.Action)
		}
	}

	prompt := fmt.Sprintf("%s\n\n%s\n\nOriginal text: %q", fieldContext[req.FieldName], instruction, req.Text)
	text, err := s.generate(ctx, "improve_text", utils.GenerateRequest{
		System:      improveSystemPrompt,
		Prompt:      strings.TrimSpace(prompt),
		Temperature: 0.7,
	})
	if err != nil {
		return nil, err
	}
	return &response_models.ImproveTextResponse{Success: true, Text: text}, nil
}

func (s *AIService) GenerateQuote(ctx context.Context, req request_models.GenerateQuoteRequest) (*response_models.QuoteResponse, error) {
	if strings.TrimSpace(req.QuoteType) == "" {
		return nil, invalid(utils.ErrInvalidInput, "quoteType is required")
	}

	var b strings.Builder
	b.WriteString("Find or create a perfect quote based on these preferences:\n\n")
	fmt.Fprintf(&b, "Type of quote: %s\n", req.QuoteType)
	fmt.Fprintf(&b, "Themes that resonate: %s\n", strings.Join(req.Themes, ", "))
	if req.CustomNotes != "" {
		fmt.Fprintf(&b, "Additional notes: %s\n", req.CustomNotes)
	}
	b.WriteString("\nProvide a meaningful quote that feels personal and authentic.")

	quote, err := s.generate(ctx, "generate_quote", utils.GenerateRequest{
		System:      quoteSystemPrompt,
		Prompt:      b.String(),
		Temperature: 0.9,
	})
	if err != nil {
		return nil, err
	}
	return &response_models.QuoteResponse{Success: true, Quote: quote}, nil
}

// GenerateItinerary asks the model for a full trip and replaces the current
// itinerary with it. Nothing is replaced when the answer does not parse.
func (s *AIService) GenerateItinerary(ctx context.Context) (*response_models.GenerateItineraryResponse, error) {
	raw, err := s.generate(ctx, "generate_itinerary", utils.GenerateRequest{
		System:      itinerarySystemPrompt,
		Prompt:      s.itineraryPrompt(),
		Temperature: 0.8,
		JSON:        true,
	})
	if err != nil {
		return nil, err
	}

	var generated []request_models.GeneratedActivity
	if err := json.Unmarshal([]byte(utils.CleanJSONArray(raw)), &generated); err != nil {
		logger.FromContext(ctx).Error().Err(err).Int("response_len", len(raw)).Msg("unparseable itinerary from text generator")
		return nil, fmt.Errorf("%w: itinerary response is not a JSON array: %w", utils.ErrAIUpstream, err)
	}

	count, err := s.itinerary.RegenerateItinerary(ctx, generated)
	if err != nil {
		return nil, err
	}
	return &response_models.GenerateItineraryResponse{Count: count}, nil
}

func (s *AIService) itineraryPrompt() string {
	days := s.trip.Calendar.TotalDays()
	dest := s.trip.Destination

	var b strings.Builder
	fmt.Fprintf(&b, "Generate a %d-day %s itinerary for a boys trip (ages 28-35).\n\n", days, dest)
	b.WriteString("Requirements:\n")
	b.WriteString("- 3 activities per day minimum (ideally 3-4 activities)\n")
	b.WriteString("- Mix categories: adventure, food/dining, nightlife, beaches, culture, day trips\n")
	fmt.Fprintf(&b, "- Include specific %s locations\n", dest)
	b.WriteString("- Time slots: Morning (8am-12pm), Afternoon (12pm-6pm), Evening (6pm-late)\n")
	b.WriteString("- Estimated cost per person in USD\n")
	b.WriteString("- 2-3 sentence description per activity\n\n")
	b.WriteString("Return a JSON array where every element has exactly these keys:\n")
	b.WriteString(`{"day": 1, "timeSlot": "Morning", "title": "...", "description": "...", "location": "...", "cost": "$25-35"}`)
	b.WriteString("\n\nImportant:\n")
	b.WriteString(`- Use only "Morning", "Afternoon", or "Evening" for timeSlot` + "\n")
	fmt.Fprintf(&b, "- day is an integer from 1 to %d\n", days)
	b.WriteString("- Return ONLY the JSON array")
	return b.String()
}

func (s *AIService) generate(ctx context.Context, op string, req utils.GenerateRequest) (string, error) {
	out, err := s.generator.Generate(ctx, req)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("op", op).Msg("text generation failed")
		return "", fmt.Errorf("%w: %w", utils.ErrAIUpstream, err)
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", fmt.Errorf("%w: empty response", utils.ErrAIUpstream)
	}
	return out, nil
}
