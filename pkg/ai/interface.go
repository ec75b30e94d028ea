package ai

import "context"

// Summarizer is the interface for AI summarization providers.
// Implement this interface to add new providers (Gemini, Ollama, OpenAI, etc.)
type Summarizer interface {
	// Summarize generates a summary of text following the given instruction prompt
	Summarize(ctx context.Context, text, prompt string) (string, error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderGemini ProviderType = "gemini"
	ProviderOllama ProviderType = "ollama"
	ProviderAuto   ProviderType = "auto"
)
