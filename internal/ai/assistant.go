package ai

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"dianjobs/internal/config"
)

// Assistant forwards a compact dataset digest to Gemini and returns the
// model's answer verbatim. Without an API key it stays disabled; every
// other AI feature keeps working without it because nothing else
// depends on this package.
type Assistant struct {
	model llms.Model
}

func New(ctx context.Context, cfg config.Config) (*Assistant, error) {
	if !cfg.AIConfigured() {
		return &Assistant{}, nil
	}
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.GeminiAPIKey),
		googleai.WithDefaultModel(cfg.GeminiModel),
	)
	if err != nil {
		return nil, fmt.Errorf("init gemini client: %w", err)
	}
	return &Assistant{model: llm}, nil
}

func (a *Assistant) Enabled() bool {
	return a != nil && a.model != nil
}

// Summarize asks for an executive summary of the filtered dataset.
func (a *Assistant) Summarize(ctx context.Context, digest string) (string, error) {
	if !a.Enabled() {
		return "", fmt.Errorf("asistente de IA no configurado: agrega GEMINI_API_KEY")
	}
	prompt := summaryPrompt(digest)
	answer, err := llms.GenerateFromSinglePrompt(ctx, a.model, prompt)
	if err != nil {
		return "", fmt.Errorf("generar resumen: %w", err)
	}
	return answer, nil
}

// Ask answers a free-text question grounded on the dataset digest.
func (a *Assistant) Ask(ctx context.Context, question, digest string) (string, error) {
	if !a.Enabled() {
		return "", fmt.Errorf("asistente de IA no configurado: agrega GEMINI_API_KEY")
	}
	prompt := questionPrompt(question, digest)
	answer, err := llms.GenerateFromSinglePrompt(ctx, a.model, prompt)
	if err != nil {
		return "", fmt.Errorf("responder pregunta: %w", err)
	}
	return answer, nil
}

func summaryPrompt(digest string) string {
	return fmt.Sprintf(`Analiza estos datos de empleos de la DIAN en Colombia y genera un resumen ejecutivo en español (máximo 150 palabras):

%s

Incluye insights relevantes sobre patrones geográficos, distribución de cargos y tendencias salariales.`, digest)
}

func questionPrompt(question, digest string) string {
	return fmt.Sprintf(`Datos de empleos DIAN disponibles:
%s

Pregunta del usuario: %s

Responde la pregunta en español de forma clara y concisa basándote en los datos disponibles.`, digest, question)
}
