package ai

import (
	"context"

	"github.com/VictorKimathi/medical-ai-assistant/internal/domain"
	"google.golang.org/genai"
)

const (
	temperature      float32 = 1
	topP             float32 = 0.95
	topK             float32 = 64
	maxOutputTokens  int32   = 8192
	responseMimeType         = "text/plain"
)

type GeminiConfig struct {
	APIKey string
	Model  string
	Style  domain.SessionStyle
	// BaseURL overrides the Gemini endpoint; empty uses the public API.
	BaseURL string
}

type GeminiClient struct {
	Client *genai.Client
	model  string
	style  domain.SessionStyle
}

var _ domain.ImageAnalyzer = (*GeminiClient)(nil)

func NewGeminiClient(ctx context.Context, cfg GeminiConfig) (*GeminiClient, error) {
	style := cfg.Style
	if style == "" {
		style = domain.SessionStylePrompt
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, domain.NewDomainError(domain.ErrCodeInternal, "failed to create gemini client", err)
	}
	return &GeminiClient{Client: client, model: cfg.Model, style: style}, nil
}

func (g *GeminiClient) Model() string { return g.model }

func (g *GeminiClient) Style() domain.SessionStyle { return g.style }

// AnalyzeImage sends the image to the model using the configured session
// style and returns the response text as produced.
func (g *GeminiClient) AnalyzeImage(ctx context.Context, image domain.Image) (string, error) {
	var (
		result *genai.GenerateContentResponse
		err    error
	)

	switch g.style {
	case domain.SessionStyleChat:
		result, err = g.chat(ctx, image)
	default:
		result, err = g.prompt(ctx, image)
	}
	if err != nil {
		return "", domain.NewDomainError(domain.ErrCodeExternal, "failed to analyze image with ai model", err)
	}

	return result.Text(), nil
}

func (g *GeminiClient) prompt(ctx context.Context, image domain.Image) (*genai.GenerateContentResponse, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(image.Data, image.MimeType),
			genai.NewPartFromText(domain.ImageAnalysisPrompt),
		}, genai.RoleUser),
	}

	return g.Client.Models.GenerateContent(ctx, g.model, contents, generationConfig())
}

// chat seeds the session with the user's own image turn only.
func (g *GeminiClient) chat(ctx context.Context, image domain.Image) (*genai.GenerateContentResponse, error) {
	cfg := generationConfig()
	cfg.SystemInstruction = genai.NewContentFromText(domain.ImageAnalysisPrompt, genai.RoleUser)

	history := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(image.Data, image.MimeType),
			genai.NewPartFromText(domain.ChatSeedQuestion),
		}, genai.RoleUser),
	}

	session, err := g.Client.Chats.Create(ctx, g.model, cfg, history)
	if err != nil {
		return nil, err
	}

	return session.SendMessage(ctx, genai.Part{Text: domain.ChatAnalyzeRequest})
}

func generationConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(temperature),
		TopP:             genai.Ptr(topP),
		TopK:             genai.Ptr(topK),
		MaxOutputTokens:  maxOutputTokens,
		ResponseMIMEType: responseMimeType,
	}
}
