package insights

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"pescaderia-backend/internal/models"
)

// Client calls the Gemini generateContent API and turns catalog snapshots
// into inventory recommendations.
type Client struct {
	APIKey  string
	Model   string
	BaseURL string
	HTTP    *http.Client
}

// NewClient creates a Gemini client. An empty API key produces a client
// whose calls always fail, which callers handle via their fallback path.
func NewClient(apiKey, model string) *Client {
	return &Client{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: "https://generativelanguage.googleapis.com/v1beta",
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string          `json:"responseMimeType"`
	ResponseSchema   json.RawMessage `json:"responseSchema"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// insightSchema constrains the model output to a JSON array of
// title/description/urgency objects.
var insightSchema = json.RawMessage(`{
	"type": "ARRAY",
	"items": {
		"type": "OBJECT",
		"properties": {
			"title": {"type": "STRING"},
			"description": {"type": "STRING"},
			"urgency": {"type": "STRING", "description": "Alta, Media, Baja"}
		},
		"required": ["title", "description", "urgency"]
	}
}`)

// InventoryInsights asks the model for three short strategic
// recommendations over the current catalog.
func (c *Client) InventoryInsights(products []*models.Product) ([]models.InventoryInsight, error) {
	if c.APIKey == "" {
		return nil, fmt.Errorf("gemini API key not configured")
	}

	inventory, err := json.Marshal(products)
	if err != nil {
		return nil, fmt.Errorf("failed to encode inventory: %w", err)
	}

	prompt := fmt.Sprintf(
		"Analiza el siguiente inventario de pescadería y proporciona 3 recomendaciones estratégicas breves para el gerente.\n"+
			"Enfócate en productos con bajo stock o posibles excedentes.\n"+
			"Inventario: %s", inventory)

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   insightSchema,
		},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	apiURL := fmt.Sprintf("%s/models/%s:generateContent", c.BaseURL, c.Model)
	req, err := http.NewRequest("POST", apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.APIKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini API error (status %d): %s", resp.StatusCode, string(body))
	}

	var genResp generateResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	var out []models.InventoryInsight
	if err := json.Unmarshal([]byte(genResp.Candidates[0].Content.Parts[0].Text), &out); err != nil {
		return nil, fmt.Errorf("failed to decode insights: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("gemini returned no insights")
	}
	for i := range out {
		if !out[i].Urgency.Valid() {
			out[i].Urgency = models.UrgencyMedium
		}
	}
	return out, nil
}
