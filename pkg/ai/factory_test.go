package ai

import (
	"testing"

	"meeting-notes-backend/pkg/gemini"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewSummarizer(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		want    interface{}
		wantErr bool
	}{
		{name: "gemini", cfg: Config{Provider: ProviderGemini, GeminiAPIKey: "key"}, want: &gemini.GeminiService{}},
		{name: "gemini without key", cfg: Config{Provider: ProviderGemini}, wantErr: true},
		{name: "ollama", cfg: Config{Provider: ProviderOllama}, want: &OllamaService{}},
		{name: "auto with key", cfg: Config{Provider: ProviderAuto, GeminiAPIKey: "key"}, want: &FallbackService{}},
		{name: "auto without key", cfg: Config{Provider: ProviderAuto}, want: &OllamaService{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewSummarizer(tt.cfg)
			if tt.wantErr {
				assert.NotNil(t, err)
				return
			}
			require.Nil(t, err)
			assert.IsType(t, tt.want, svc)
		})
	}
}
