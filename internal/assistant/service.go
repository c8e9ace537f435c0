package assistant

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/mvsaqua/aquastore-backend/pkg/config"
	"github.com/mvsaqua/aquastore-backend/pkg/logger"
)

// systemInstruction shapes every reply AquaBuddy gives.
const systemInstruction = "You are an expert aquarium consultant named 'AquaBuddy' for MVS Aqua. " +
	"Your tone is professional, premium, and helpful. You help users choose fish, diagnose tank " +
	"issues, and give aquascaping tips. If users ask about admin access or logging in, tell them " +
	"they can use the credentials 'admin' (username) and 'admin' (password) at the /admin route. " +
	"Keep responses concise and use bullet points where helpful."

// fallbackReply is returned verbatim whenever the model call fails.
const fallbackReply = "I am currently taking a dive in the deep ocean. Please try again in a moment!"

// emptyReply covers the rare case of a successful call with no text.
const emptyReply = "I'm sorry, I'm having a little trouble thinking right now. " +
	"How else can I help with your aquarium?"

const temperature = float32(0.7)

// Service answers aquarium questions on behalf of the store.
type Service interface {
	Advice(ctx context.Context, prompt string) string
}

// generator is the slice of the genai client the service depends on.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type service struct {
	models generator
	model  string
	logg   *logger.Logger
}

// ServiceParams bundles the dependencies required to build an assistant.
type ServiceParams struct {
	Models generator
	Model  string
	Logger *logger.Logger
}

// NewService constructs an assistant backed by the provided model client.
func NewService(params ServiceParams) (Service, error) {
	if params.Models == nil {
		return nil, fmt.Errorf("model client is required")
	}
	if params.Model == "" {
		return nil, fmt.Errorf("model name is required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &service{
		models: params.Models,
		model:  params.Model,
		logg:   params.Logger,
	}, nil
}

// NewClient dials the Gemini API with the configured key.
func NewClient(ctx context.Context, cfg config.GenaiConfig) (*genai.Client, error) {
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
}

// Advice never fails: model errors collapse into a fixed apology so the
// storefront chat widget always has something to render.
func (s *service) Advice(ctx context.Context, prompt string) string {
	resp, err := s.models.GenerateContent(ctx, s.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr(temperature),
	})
	if err != nil {
		s.logg.Error(ctx, "assistant model call failed", err)
		return fallbackReply
	}
	if text := resp.Text(); text != "" {
		return text
	}
	return emptyReply
}
