package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const defaultOpenAIURL = "https://api.openai.com/v1/responses"

// max de caracteres do e-mail enviados no prompt
const maxPromptEmail = 4000

// OpenAI gera respostas sugeridas via Responses API.
type OpenAI struct {
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	URL         string
	HTTPClient  *http.Client
}

// NewOpenAIFromEnv devolve nil quando OPENAI_API_KEY não está definido.
func NewOpenAIFromEnv(model string, temperature float64, maxTokens int) *OpenAI {
	apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if apiKey == "" {
		return nil
	}
	return &OpenAI{
		APIKey:      apiKey,
		Model:       model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
}

func buildReplyPrompt(categoria, text string) string {
	email := strings.TrimSpace(text)
	if r := []rune(email); len(r) > maxPromptEmail {
		email = string(r[:maxPromptEmail])
	}
	return fmt.Sprintf(`Você é um assistente de atendimento ao cliente do setor financeiro.
Classificação: %s.
Gere uma resposta breve, educada e objetiva em português brasileiro ao e-mail abaixo.
Inclua próximos passos claros e peça informações essenciais se estiverem faltando.
E-mail:
"""%s"""
Responda apenas com o corpo do e-mail (sem saudação inicial genérica nem assinatura).
`, categoria, email)
}

// Reply chama a Responses API e devolve o texto do assistente.
func (o *OpenAI) Reply(ctx context.Context, categoria, text string) (string, error) {
	if o.APIKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY not set")
	}

	reqBody := map[string]any{
		"model":             o.Model,
		"input":             buildReplyPrompt(categoria, text),
		"temperature":       o.Temperature,
		"max_output_tokens": o.MaxTokens,
	}

	b, _ := json.Marshal(reqBody)

	url := o.URL
	if url == "" {
		url = defaultOpenAIURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", err
	}

	req.Header.Set("Authorization", "Bearer "+o.APIKey)
	req.Header.Set("Content-Type", "application/json")

	client := o.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("openai error %d: %s", resp.StatusCode, string(body))
	}

	var parsed struct {
		Output []struct {
			Type    string `json:"type"`
			Role    string `json:"role"`
			Content []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"content"`
		} `json:"output"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, item := range parsed.Output {
		if item.Type == "message" && item.Role == "assistant" {
			for _, c := range item.Content {
				if c.Type == "output_text" && strings.TrimSpace(c.Text) != "" {
					if sb.Len() > 0 {
						sb.WriteString("\n")
					}
					sb.WriteString(c.Text)
				}
			}
		}
	}

	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "", fmt.Errorf("empty response from model (no output_text items found)")
	}
	return out, nil
}
